package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/coinfolio"
)

// CoinList renders coins as a ranked table.
func CoinList(coins []coinfolio.Coin) string {
	var b strings.Builder
	if len(coins) == 0 {
		fmt.Fprintln(&b, "No coin found.")
		return b.String()
	}
	fmt.Fprintln(&b, "| # | Coin | ID | Price | 1d |")
	fmt.Fprintln(&b, "|---:|:---|:---|---:|---:|")
	for _, c := range coins {
		fmt.Fprintf(&b, "| %d | %s (%s) | %s | %s | %s |\n",
			c.Rank,
			c.Name,
			c.Symbol,
			c.ID,
			money(c.Price),
			c.PriceChange1d.SignedString(),
		)
	}
	return b.String()
}

// Options renders the choice list of a coin search.
func Options(query string, options []coinfolio.Option) string {
	var b strings.Builder
	if query != "" {
		fmt.Fprintf(&b, "Search: **%s**\n\n", query)
	}
	if len(options) == 0 {
		fmt.Fprintln(&b, "No coin found.")
		return b.String()
	}
	for _, o := range options {
		fmt.Fprintf(&b, "- %s `%s`\n", o.Label, o.Value)
	}
	return b.String()
}
