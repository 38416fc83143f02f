package renderer

import (
	"fmt"
	"io"
	"strings"

	"github.com/etnz/coinfolio"
)

// Holdings renders the portfolio valuation.
func Holdings(h coinfolio.Holdings) string {
	var b strings.Builder
	fmt.Fprint(&b, "# Holdings\n\n")
	if len(h.Holdings) == 0 {
		fmt.Fprintln(&b, "No asset yet, use `cfo add` to add one.")
		return b.String()
	}

	fmt.Fprintln(&b, "| Coin | Amount | Cost | Value | Gain | |")
	fmt.Fprintln(&b, "|:---|---:|---:|---:|---:|---:|")
	for _, x := range h.Holdings {
		if !x.Priced {
			fmt.Fprintf(&b, "| %s | %s | %s | n/a | n/a | |\n", x.Name, x.Amount, money(x.Cost))
			continue
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s |\n",
			x.Name,
			x.Amount,
			money(x.Cost),
			money(x.Value),
			signedMoney(x.Gain()),
			x.GainPercent().SignedString(),
		)
	}
	fmt.Fprintf(&b, "| **Total** | | **%s** | **%s** | **%s** | **%s** |\n",
		money(h.Cost),
		money(h.Value),
		signedMoney(h.Gain()),
		h.GainPercent().SignedString(),
	)

	ConditionalBlock(&b, func(w io.Writer) bool {
		fmt.Fprint(w, "\nUnpriced coins:")
		unpriced := false
		for _, x := range h.Holdings {
			if !x.Priced {
				fmt.Fprintf(w, " `%s`", x.CoinID)
				if x.Reason != "" {
					fmt.Fprintf(w, " (%s)", x.Reason)
				}
				unpriced = true
			}
		}
		fmt.Fprintln(w)
		return unpriced
	})
	ConditionalBlock(&b, func(w io.Writer) bool {
		fmt.Fprintf(w, "\nNot in the %s total:", h.Currency)
		excluded := false
		for _, x := range h.Holdings {
			if x.Excluded {
				fmt.Fprintf(w, " `%s` (%s)", x.CoinID, x.Cost.Currency())
				excluded = true
			}
		}
		fmt.Fprintln(w)
		return excluded
	})
	return b.String()
}

// signedMoney formats m with a sign, "-" for zero.
func signedMoney(m coinfolio.Money) string {
	if m.Currency() == "" {
		return "-"
	}
	return m.SignedString()
}
