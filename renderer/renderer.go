// Package renderer turns coinfolio values into markdown.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"

	"github.com/etnz/coinfolio"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//go:embed templates/*.md
var templates embed.FS

var printer = message.NewPrinter(language.English)

// funcs are the helpers available to every template.
var funcs = template.FuncMap{
	"money":  money,
	"count":  count,
	"signed": func(p coinfolio.Percent) string { return p.SignedString() },
	"quote":  quote,
}

// money formats m, "-" when it carries no currency.
func money(m coinfolio.Money) string {
	if m.Currency() == "" {
		return "-"
	}
	return m.String()
}

// quote formats d in the quote currency of c.
func quote(c coinfolio.Coin, d decimal.Decimal) string {
	return money(coinfolio.M(d, c.Price.Currency()))
}

// count formats a whole number of units with thousand separators.
func count(d decimal.Decimal) string {
	return printer.Sprintf("%d", d.Round(0).IntPart())
}

// CoinInfo renders the detail view of a coin.
func CoinInfo(c coinfolio.Coin) string {
	partials := map[string]string{
		"coin_info_market": "coin_info_market.md",
	}
	return renderTemplate("coinInfo", "coin_info.md", partials, c)
}

// renderTemplate renders a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, "templates/"+mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Funcs(funcs).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		content, err := fs.ReadFile(templates, "templates/"+file)
		if err != nil {
			return fmt.Sprintf("error reading partial template %q: %v", file, err)
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
