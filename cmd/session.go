package cmd

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/etnz/coinfolio"
	"github.com/etnz/coinfolio/renderer"
	"github.com/google/subcommands"
)

type appCmd struct{}

func (*appCmd) Name() string     { return "app" }
func (*appCmd) Synopsis() string { return "interactive session" }
func (*appCmd) Usage() string {
	return `app

Start an interactive session. Type 'help' for the list of commands.
`
}

func (c *appCmd) SetFlags(f *flag.FlagSet) {}

func (c *appCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s := newSession(openMarket(), openStore(), now)
	s.print = printMarkdown
	if err := s.run(ctx, os.Stdin); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

const sessionHelp = `Commands:

- ` + "`/`" + ` open or close the coin search, then type to filter
- ` + "`open <id>`" + ` show a coin
- ` + "`add [<id>]`" + ` add an asset of a coin, the shown one by default
- ` + "`amount <n>`, `price <n>`, `date <d>`" + ` fill the asset form
- ` + "`submit`, `reset`, `cancel`" + ` act on the asset form
- ` + "`close`" + ` close the confirmation, or the shown coin
- ` + "`holdings`" + ` show the portfolio
- ` + "`quit`" + `
`

// session is the interactive header: a coin search, a coin view opened on
// selection and an asset form opened from the coin view.
type session struct {
	coins    coinfolio.CoinLister
	store    *coinfolio.Store
	now      func() time.Time
	print    func(md string)
	selector *coinfolio.CoinSelector

	coin coinfolio.Coin       // shown coin, zero when none
	form *coinfolio.AssetForm // open form, nil when none
}

func newSession(coins coinfolio.CoinLister, store *coinfolio.Store, now func() time.Time) *session {
	s := &session{
		coins: coins,
		store: store,
		now:   now,
		print: func(md string) { fmt.Fprint(out, md) },
	}
	s.selector = coinfolio.NewCoinSelector(coins, s.show)
	return s
}

// show opens the coin view.
func (s *session) show(c coinfolio.Coin) {
	s.coin = c
	s.print(renderer.CoinInfo(c))
}

// closeForm returns to the header once the confirmation is dismissed.
func (s *session) closeForm() {
	s.form = nil
	s.coin = coinfolio.Coin{}
	s.print("Back to the coin search.\n")
}

// run reads commands from in until quit or the end of input.
func (s *session) run(ctx context.Context, in io.Reader) error {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "quit" || line == "exit" {
			return nil
		}
		s.handle(line)
	}
	return scanner.Err()
}

func (s *session) handle(line string) {
	verb, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)

	switch {
	case line == "":
		return
	case line == "help":
		s.print(sessionHelp)
	case line == "holdings":
		s.holdings()
	case s.form != nil:
		s.handleForm(verb, arg)
	case line == string(coinfolio.DefaultShortcut):
		s.selector.HandleKey(coinfolio.DefaultShortcut)
		if s.selector.IsOpen() {
			s.print(renderer.Options("", s.selector.Options("")))
		} else {
			s.print("Search closed.\n")
		}
	case verb == "open":
		if _, err := s.selector.Select(arg); err != nil {
			s.print(fmt.Sprintf("Error: %v\n", err))
		}
	case verb == "add":
		s.add(arg)
	case verb == "close" && !s.coin.IsZero():
		s.coin = coinfolio.Coin{}
	case s.selector.IsOpen():
		s.print(renderer.Options(line, s.selector.Options(line)))
	default:
		s.print(fmt.Sprintf("Unknown command %q, type 'help'.\n", line))
	}
}

// add opens the asset form of the coin id, or of the shown coin. Without
// either, it opens the coin search to pick one.
func (s *session) add(id string) {
	if id != "" {
		if _, err := s.selector.Select(id); err != nil {
			s.print(fmt.Sprintf("Error: %v\n", err))
			return
		}
	}
	if s.coin.IsZero() {
		s.selector.SetOpen(true)
		s.print(renderer.Options("", s.selector.Options("")))
		s.print("Pick a coin with `add <id>`.\n")
		return
	}
	s.openForm()
}

func (s *session) openForm() {
	form, err := coinfolio.NewAssetForm(s.coin, s.store, coinfolio.WithClock(s.now), coinfolio.WithOnClose(s.closeForm))
	if err != nil {
		s.print(fmt.Sprintf("Error: %v\n", err))
		return
	}
	s.form = form
	s.print(renderer.AssetForm(form))
}

func (s *session) handleForm(verb, arg string) {
	switch verb {
	case "amount":
		s.form.SetAmount(arg)
	case "price":
		s.form.SetPrice(arg)
	case "date":
		if err := s.form.SetDateText(arg); err != nil {
			s.print(fmt.Sprintf("Error: invalid date: %v\n", err))
			return
		}
	case "reset":
		s.form.Reset()
	case "submit":
		if _, err := s.form.Submit(); err != nil && !isValidation(err) {
			s.print(fmt.Sprintf("Error: %v\n", err))
			return
		}
	case "cancel":
		if s.form.State() == coinfolio.Submitted {
			s.form.Close()
			return
		}
		s.form = nil
		s.print("Asset discarded.\n")
		return
	case "close":
		if err := s.form.Close(); err != nil {
			s.print("Submit the asset first, or cancel.\n")
		}
		return
	default:
		s.print(fmt.Sprintf("Unknown command %q, type 'help'.\n", verb))
		return
	}
	s.print(renderer.AssetForm(s.form))
}

func (s *session) holdings() {
	assets, err := s.store.Assets()
	if err != nil {
		s.print(fmt.Sprintf("Error: %v\n", err))
		return
	}
	s.print(renderer.Holdings(coinfolio.ComputeHoldings(assets, s.coins)))
}

func isValidation(err error) bool {
	var verr *coinfolio.ValidationError
	return errors.As(err, &verr)
}
