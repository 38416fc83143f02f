package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/coinfolio"
	"github.com/etnz/coinfolio/date"
)

// Records renders the stored asset entries, oldest first.
func Records(records []coinfolio.Record, coins coinfolio.CoinLister) string {
	var b strings.Builder
	fmt.Fprint(&b, "## Entries\n\n")
	if len(records) == 0 {
		fmt.Fprintln(&b, "No entry.")
		return b.String()
	}
	fmt.Fprintln(&b, "| Date | Coin | Amount | Price | Cost | ID |")
	fmt.Fprintln(&b, "|:---|:---|---:|---:|---:|:---|")
	for _, r := range records {
		a := r.Asset
		name := a.CoinID()
		if c, err := coinfolio.FindCoin(coins, a.CoinID()); err == nil {
			name = c.Name
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | `%s` |\n",
			date.Format(a.Timestamp()),
			name,
			a.Amount(),
			money(a.Price()),
			money(a.Cost()),
			r.ID,
		)
	}
	return b.String()
}
