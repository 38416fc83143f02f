package coinfolio

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrUnknownCoin is returned when a coin id is not in the coin list.
var ErrUnknownCoin = errors.New("unknown coin")

// Coin is a read-only record describing a tradable cryptocurrency, as
// published by a market data provider.
type Coin struct {
	ID     string // unique
	Name   string
	Symbol string
	Icon   string // URI of the coin logo
	Price  Money  // current unit price in the quote currency

	Rank            int
	PriceBTC        decimal.Decimal
	PriceChange1h   Percent
	PriceChange1d   Percent
	PriceChange1w   Percent
	MarketCap       decimal.Decimal
	Volume          decimal.Decimal
	AvailableSupply decimal.Decimal
	TotalSupply     decimal.Decimal
	WebsiteURL      string
	ContractAddress string
}

// IsZero reports whether c is the zero Coin, i.e. no coin at all.
func (c Coin) IsZero() bool { return c.ID == "" }

// CoinLister provides an ordered sequence of coins.
// Implementations may refresh their content between calls.
type CoinLister interface {
	Coins() []Coin
}

// CoinList is a static, ordered CoinLister.
type CoinList []Coin

// Coins implements CoinLister.
func (l CoinList) Coins() []Coin { return l }

// FindCoin returns the coin with the given id.
func FindCoin(coins CoinLister, id string) (Coin, error) {
	for _, c := range coins.Coins() {
		if c.ID == id {
			return c, nil
		}
	}
	return Coin{}, fmt.Errorf("%w: %q", ErrUnknownCoin, id)
}
