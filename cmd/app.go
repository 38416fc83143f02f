// Package cmd implements the CLI application to track crypto assets.
package cmd

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/coinfolio"
	"github.com/etnz/coinfolio/date"
	"github.com/etnz/coinfolio/market"
	"github.com/google/subcommands"
	"golang.org/x/term"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&coinsCmd{}, "market")
	c.Register(&coinCmd{}, "market")

	c.Register(&addCmd{}, "assets")
	c.Register(&assetsCmd{}, "assets")
	c.Register(&removeCmd{}, "assets")

	c.Register(&appCmd{}, "")
	c.Register(&topicCmd{}, "")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	assetsFile = flag.String("assets-file", "assets.jsonl", "Path to the assets file (JSONL format)")
	marketURL  = flag.String("market-url", market.DefaultURL, "Coin list address, an http(s) URL or a local JSON file")
	marketPath = flag.String("market-path", market.DefaultListPath, "JSONPath of the coin list in the market response")
	currency   = flag.String("currency", coinfolio.DefaultCurrency, "Quote currency of the market prices")
	apiKey     = flag.String("api-key", "", "Market API key")
	cacheDir   = flag.String("cache-dir", "", "Keep market responses in this folder for an hour")
	Verbose    = flag.Bool("v", false, "Print diagnostic logs")
)

// out is where commands print their result.
var out io.Writer = os.Stdout

// SetupLog discards diagnostic logs unless verbose mode is on.
func SetupLog() {
	if !*Verbose {
		log.SetOutput(io.Discard)
	}
}

// now returns the current time, or the time in COINFOLIO_TESTING_NOW when set.
func now() time.Time {
	if v := os.Getenv("COINFOLIO_TESTING_NOW"); v != "" {
		t, err := date.Parse(v, time.Now())
		if err == nil {
			return t
		}
		log.Printf("invalid COINFOLIO_TESTING_NOW %q ignored: %v", v, err)
	}
	return time.Now()
}

// openMarket returns the market client configured by the global flags.
func openMarket() *market.Client {
	opts := []market.Option{
		market.WithListPath(*marketPath),
		market.WithCurrency(*currency),
		market.WithAPIKey(*apiKey),
	}
	if *cacheDir != "" {
		opts = append(opts, market.WithDiskCache(*cacheDir, time.Hour))
	}
	return market.New(*marketURL, opts...)
}

// openStore returns the asset store configured by the global flags.
func openStore() *coinfolio.Store {
	return coinfolio.NewStore(*assetsFile)
}

// printMarkdown prints md, rendered for the terminal when out is one.
func printMarkdown(md string) {
	if f, ok := out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		rendered, err := glamour.Render(md, "auto")
		if err == nil {
			fmt.Fprint(out, rendered)
			return
		}
		log.Printf("cannot render markdown: %v", err)
	}
	fmt.Fprint(out, md)
}
