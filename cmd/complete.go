package cmd

import (
	"context"
	"flag"
	"log"
	"strings"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion returns the shell completion of every command registered in c.
func Completion(c *subcommands.Commander) *complete.Command {
	root := &complete.Command{
		Sub:   make(map[string]*complete.Command),
		Flags: make(map[string]complete.Predictor),
	}
	c.VisitAll(func(f *flag.Flag) {
		root.Flags[f.Name] = predictFlag(f)
	})

	c.VisitCommands(func(_ *subcommands.CommandGroup, cmd subcommands.Command) {
		fs := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
		cmd.SetFlags(fs)
		sub := &complete.Command{Flags: make(map[string]complete.Predictor)}
		fs.VisitAll(func(f *flag.Flag) {
			sub.Flags[f.Name] = predictFlag(f)
		})
		switch cmd.Name() {
		case "coin":
			sub.Args = complete.PredictFunc(predictCoins)
		case "help":
			sub.Args = predict.Set(commandNames(c))
		}
		root.Sub[cmd.Name()] = sub
	})
	return root
}

// predictFlag returns the predictor of a flag value.
func predictFlag(f *flag.Flag) complete.Predictor {
	if b, ok := f.Value.(interface{ IsBoolFlag() bool }); ok && b.IsBoolFlag() {
		return predict.Nothing
	}
	switch f.Name {
	case "c":
		return complete.PredictFunc(predictCoins)
	case "assets-file":
		return predict.Files("*.jsonl")
	case "cache-dir":
		return predict.Dirs("*")
	case "currency":
		return predict.Set{"USD", "EUR", "GBP", "JPY", "CHF"}
	}
	return predict.Something
}

// predictCoins predicts coin ids from the configured market.
func predictCoins(prefix string) []string {
	coins, err := openMarket().Fetch(context.Background())
	if err != nil {
		log.Printf("cannot complete coins: %v", err)
		return nil
	}
	var ids []string
	for _, c := range coins {
		if strings.HasPrefix(c.ID, prefix) {
			ids = append(ids, c.ID)
		}
	}
	return ids
}

func commandNames(c *subcommands.Commander) []string {
	var names []string
	c.VisitCommands(func(_ *subcommands.CommandGroup, cmd subcommands.Command) {
		names = append(names, cmd.Name())
	})
	return names
}
