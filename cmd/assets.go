package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/coinfolio"
	"github.com/etnz/coinfolio/renderer"
	"github.com/google/subcommands"
	"github.com/google/uuid"
)

type addCmd struct {
	coin   string
	amount string
	price  string
	date   string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add an asset to the portfolio" }
func (*addCmd) Usage() string {
	return `add -c <coin> -a <amount> [-p <price>] [-d <date>]

Add an amount of a coin bought at a unit price. The price defaults to the
current market price, the date to now.
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.coin, "c", "", "coin id")
	f.StringVar(&c.amount, "a", "", "amount of coins")
	f.StringVar(&c.price, "p", "", "unit price, defaults to the market price")
	f.StringVar(&c.date, "d", "", "date of the purchase, e.g. 2025-08-01, '2025-08-01 14:30' or -2d")
}

func (c *addCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.coin == "" {
		fmt.Fprintln(os.Stderr, "Error: -c is required")
		return subcommands.ExitUsageError
	}
	coins, err := openMarket().Fetch(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading coins: %v\n", err)
		return subcommands.ExitFailure
	}
	coin, err := coinfolio.FindCoin(coinfolio.CoinList(coins), c.coin)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	store := openStore()
	var stored error
	sink := coinfolio.AssetSinkFunc(func(a coinfolio.Asset) {
		_, stored = store.Append(a)
	})
	form, err := coinfolio.NewAssetForm(coin, sink, coinfolio.WithClock(now))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	form.SetAmount(c.amount)
	if c.price != "" {
		form.SetPrice(c.price)
	}
	if err := form.SetDateText(c.date); err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid date: %v\n", err)
		return subcommands.ExitUsageError
	}

	if _, err := form.Submit(); err != nil {
		var verr *coinfolio.ValidationError
		if errors.As(err, &verr) {
			fmt.Fprintf(os.Stderr, "Error: %s\n", verr.Message)
			return subcommands.ExitUsageError
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if stored != nil {
		fmt.Fprintf(os.Stderr, "Error saving asset: %v\n", stored)
		return subcommands.ExitFailure
	}
	fmt.Fprintln(out, form.Confirmation())
	form.Close()
	return subcommands.ExitSuccess
}

type assetsCmd struct {
	entries bool
}

func (*assetsCmd) Name() string     { return "assets" }
func (*assetsCmd) Synopsis() string { return "show the portfolio holdings" }
func (*assetsCmd) Usage() string {
	return `assets [-entries]

Show the holdings valued at the current market prices. With -entries, every
stored asset is listed too, with the id to use with remove.
`
}

func (c *assetsCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.entries, "entries", false, "list the stored entries")
}

func (c *assetsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	records, err := openStore().Records()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading assets: %v\n", err)
		return subcommands.ExitFailure
	}
	coins, err := openMarket().Fetch(ctx)
	if err != nil {
		// assets are still listed, without a value.
		fmt.Fprintf(os.Stderr, "Warning: cannot load coins: %v\n", err)
	}

	assets := make([]coinfolio.Asset, 0, len(records))
	for _, r := range records {
		assets = append(assets, r.Asset)
	}
	md := renderer.Holdings(coinfolio.ComputeHoldings(assets, coinfolio.CoinList(coins)))
	if c.entries {
		md += "\n" + renderer.Records(records, coinfolio.CoinList(coins))
	}
	printMarkdown(md)
	return subcommands.ExitSuccess
}

type removeCmd struct {
	id string
}

func (*removeCmd) Name() string     { return "remove" }
func (*removeCmd) Synopsis() string { return "remove an asset entry" }
func (*removeCmd) Usage() string {
	return `remove -id <entry id>

Remove a stored asset. Ids are listed by 'assets -entries'.
`
}

func (c *removeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "entry id")
}

func (c *removeCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	id, err := uuid.Parse(c.id)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid entry id %q: %v\n", c.id, err)
		return subcommands.ExitUsageError
	}
	store := openStore()
	if err := store.Remove(id); err != nil {
		fmt.Fprintf(os.Stderr, "Error removing entry: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(out, "Removed entry %s from %s\n", id, store.Path())
	return subcommands.ExitSuccess
}
