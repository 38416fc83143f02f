package market

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/coinfolio"
	"github.com/shopspring/decimal"
)

// jsonCoin is a coin as published by the market API.
type jsonCoin struct {
	ID              string          `json:"id"`
	Icon            string          `json:"icon"`
	Name            string          `json:"name"`
	Symbol          string          `json:"symbol"`
	Rank            int             `json:"rank"`
	Price           decimal.Decimal `json:"price"`
	PriceBTC        decimal.Decimal `json:"priceBtc"`
	Volume          decimal.Decimal `json:"volume"`
	MarketCap       decimal.Decimal `json:"marketCap"`
	AvailableSupply decimal.Decimal `json:"availableSupply"`
	TotalSupply     decimal.Decimal `json:"totalSupply"`
	PriceChange1h   decimal.Decimal `json:"priceChange1h"`
	PriceChange1d   decimal.Decimal `json:"priceChange1d"`
	PriceChange1w   decimal.Decimal `json:"priceChange1w"`
	WebsiteURL      string          `json:"websiteUrl"`
	ContractAddress string          `json:"contractAddress"`
}

func (j jsonCoin) coin(currency string) coinfolio.Coin {
	return coinfolio.Coin{
		ID:              j.ID,
		Name:            j.Name,
		Symbol:          j.Symbol,
		Icon:            j.Icon,
		Price:           coinfolio.M(j.Price, currency),
		Rank:            j.Rank,
		PriceBTC:        j.PriceBTC,
		PriceChange1h:   coinfolio.Percent(j.PriceChange1h.InexactFloat64()),
		PriceChange1d:   coinfolio.Percent(j.PriceChange1d.InexactFloat64()),
		PriceChange1w:   coinfolio.Percent(j.PriceChange1w.InexactFloat64()),
		MarketCap:       j.MarketCap,
		Volume:          j.Volume,
		AvailableSupply: j.AvailableSupply,
		TotalSupply:     j.TotalSupply,
		WebsiteURL:      j.WebsiteURL,
		ContractAddress: j.ContractAddress,
	}
}

// DecodeCoins reads a market JSON document from r and extracts the coin
// list found at listPath, a JSONPath expression like "$.result".
func DecodeCoins(r io.Reader, listPath, currency string) ([]coinfolio.Coin, error) {
	var jobj any
	dec := json.NewDecoder(r)
	dec.UseNumber()
	if err := dec.Decode(&jobj); err != nil {
		return nil, fmt.Errorf("cannot decode market document: %w", err)
	}
	return extractCoins(jobj, listPath, currency)
}

// extractCoins applies listPath to a decoded JSON document.
func extractCoins(jobj any, listPath, currency string) ([]coinfolio.Coin, error) {
	jval, err := jsonpath.Get(listPath, jobj)
	if err != nil {
		return nil, fmt.Errorf("error evaluating %q: %w", listPath, err)
	}
	jlist, ok := jval.([]any)
	if !ok {
		return nil, fmt.Errorf("error evaluating %q: not a list: %T", listPath, jval)
	}

	coins := make([]coinfolio.Coin, 0, len(jlist))
	seen := make(map[string]bool, len(jlist))
	for i, item := range jlist {
		// back and forth to benefit from the struct tags.
		raw, err := json.Marshal(item)
		if err != nil {
			return nil, err
		}
		var jc jsonCoin
		if err := json.Unmarshal(raw, &jc); err != nil {
			return nil, fmt.Errorf("coin #%d: %w", i, err)
		}
		if jc.ID == "" {
			return nil, fmt.Errorf("coin #%d: missing id", i)
		}
		if seen[jc.ID] {
			return nil, fmt.Errorf("coin #%d: duplicate id %q", i, jc.ID)
		}
		seen[jc.ID] = true
		coins = append(coins, jc.coin(currency))
	}
	return coins, nil
}
