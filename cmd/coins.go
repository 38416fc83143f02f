package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/coinfolio"
	"github.com/etnz/coinfolio/renderer"
	"github.com/google/subcommands"
)

type coinsCmd struct {
	query string
}

func (*coinsCmd) Name() string     { return "coins" }
func (*coinsCmd) Synopsis() string { return "list or search the market coins" }
func (*coinsCmd) Usage() string {
	return `coins [-q <query>]

List the coins quoted by the market, by rank. With -q, only the coins whose
name, symbol or id contains the query are listed.
`
}

func (c *coinsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.query, "q", "", "search query")
}

func (c *coinsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	coins, err := openMarket().Fetch(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading coins: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.CoinList(searchCoins(coinfolio.CoinList(coins), c.query)))
	return subcommands.ExitSuccess
}

// searchCoins returns the coins matching query, in list order.
func searchCoins(coins coinfolio.CoinList, query string) []coinfolio.Coin {
	selector := coinfolio.NewCoinSelector(coins, nil)
	var res []coinfolio.Coin
	for _, o := range selector.Options(query) {
		if coin, err := coinfolio.FindCoin(coins, o.Value); err == nil {
			res = append(res, coin)
		}
	}
	return res
}

type coinCmd struct{}

func (*coinCmd) Name() string     { return "coin" }
func (*coinCmd) Synopsis() string { return "show a coin details" }
func (*coinCmd) Usage() string {
	return `coin <id>

Show the price, price changes and market data of a coin.
`
}

func (c *coinCmd) SetFlags(f *flag.FlagSet) {}

func (c *coinCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expecting exactly one coin id")
		return subcommands.ExitUsageError
	}
	coins, err := openMarket().Fetch(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading coins: %v\n", err)
		return subcommands.ExitFailure
	}
	coin, err := coinfolio.FindCoin(coinfolio.CoinList(coins), f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.CoinInfo(coin))
	return subcommands.ExitSuccess
}
