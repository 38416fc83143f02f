package renderer

import (
	"fmt"
	"io"
	"strings"

	"github.com/etnz/coinfolio"
	"github.com/etnz/coinfolio/date"
)

// AssetForm renders the add asset drawer: the fields and their errors while
// editing, the confirmation once submitted.
func AssetForm(f *coinfolio.AssetForm) string {
	var b strings.Builder
	c := f.Coin()
	fmt.Fprintf(&b, "## Add %s (%s)\n\n", c.Name, c.Symbol)

	if f.State() == coinfolio.Submitted {
		fmt.Fprintf(&b, "%s\n", f.Confirmation())
		return b.String()
	}

	errs := f.Errors()
	field := func(label, value, err string) {
		if value == "" {
			value = "_empty_"
		}
		fmt.Fprintf(&b, "- %s: %s", label, value)
		if err != "" {
			fmt.Fprintf(&b, " **%s**", err)
		}
		fmt.Fprintln(&b)
	}
	field("Amount", f.AmountText(), errs["amount"])
	field("Price", f.PriceText(), errs["price"])
	if d, ok := f.Date().Get(); ok {
		field("Date", date.Format(d), "")
	} else {
		field("Date", "now", "")
	}

	ConditionalBlock(&b, func(w io.Writer) bool {
		total, ok := f.Total().Get()
		fmt.Fprintf(w, "\nTotal: **%s**\n", total.Fixed())
		return ok
	})
	return b.String()
}
