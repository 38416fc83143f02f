package coinfolio

import "fmt"

// Holding aggregates every asset recorded for one coin in one currency.
type Holding struct {
	CoinID string
	Name   string // coin name, the id when the coin is unknown
	Amount Quantity
	Cost   Money  // sum of amount × entry price
	Value  Money  // amount × current price, zero when not Priced
	Priced bool   // whether the coin is quoted in the cost currency
	Reason string // why a listed coin is not priced, empty otherwise

	// Excluded holdings are in another currency than the portfolio totals.
	Excluded bool
}

// Gain returns the difference between the current value and the cost.
func (h Holding) Gain() Money { return h.Value.Sub(h.Cost) }

// GainPercent returns the gain relative to the cost.
func (h Holding) GainPercent() Percent { return h.Gain().Ratio(h.Cost) }

// Grew reports whether the holding is worth more than it cost.
func (h Holding) Grew() bool { return h.Gain().IsPositive() }

// Holdings is a portfolio view: one Holding per coin and currency, in order
// of first entry, and the portfolio totals in Currency.
type Holdings struct {
	Holdings []Holding
	Currency string
	Cost     Money
	Value    Money
}

// Gain returns the portfolio gain.
func (h Holdings) Gain() Money { return h.Value.Sub(h.Cost) }

// GainPercent returns the portfolio gain relative to its cost.
func (h Holdings) GainPercent() Percent { return h.Gain().Ratio(h.Cost) }

// ComputeHoldings values assets at the current prices of coins.
//
// A coin is priced only when its price currency is the currency the assets
// were bought in. Totals are in the currency of the priced holdings, or of
// the first holding when none is priced; holdings in other currencies are
// Excluded from them.
func ComputeHoldings(assets []Asset, coins CoinLister) Holdings {
	type key struct{ coinID, currency string }
	index := make(map[key]int)
	var res Holdings
	for _, a := range assets {
		k := key{a.CoinID(), a.Price().Currency()}
		i, found := index[k]
		if !found {
			i = len(res.Holdings)
			index[k] = i
			res.Holdings = append(res.Holdings, Holding{CoinID: a.CoinID(), Name: a.CoinID(), Cost: M(0, k.currency)})
		}
		h := &res.Holdings[i]
		h.Amount = h.Amount.Add(a.Amount())
		h.Cost = h.Cost.Add(a.Cost())
	}

	for i := range res.Holdings {
		h := &res.Holdings[i]
		c, err := FindCoin(coins, h.CoinID)
		if err != nil {
			continue
		}
		h.Name = c.Name
		if !sameCurrency(c.Price.Currency(), h.Cost.Currency()) {
			h.Reason = fmt.Sprintf("bought in %s, quoted in %s", h.Cost.Currency(), c.Price.Currency())
			continue
		}
		h.Priced = true
		h.Value = c.Price.Mul(h.Amount).Round()
		if res.Currency == "" {
			res.Currency = h.Value.Currency()
		}
	}
	if res.Currency == "" && len(res.Holdings) > 0 {
		res.Currency = res.Holdings[0].Cost.Currency()
	}

	res.Cost, res.Value = M(0, res.Currency), M(0, res.Currency)
	for i := range res.Holdings {
		h := &res.Holdings[i]
		if !sameCurrency(h.Cost.Currency(), res.Cost.Currency()) || !sameCurrency(h.Value.Currency(), res.Value.Currency()) {
			h.Excluded = true
			continue
		}
		res.Cost = res.Cost.Add(h.Cost)
		res.Value = res.Value.Add(h.Value)
	}
	res.Currency = res.Cost.Currency()
	return res
}

// sameCurrency reports whether a and b are the same currency, an empty
// currency matching any.
func sameCurrency(a, b string) bool {
	return a == "" || b == "" || a == b
}
