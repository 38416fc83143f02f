package cmd

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/etnz/coinfolio"
	"github.com/etnz/coinfolio/market"
)

func newTestSession(t *testing.T) (*session, *strings.Builder) {
	t.Helper()
	coins, err := market.New("testdata/coins.json").Fetch(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	store := coinfolio.NewStore(filepath.Join(t.TempDir(), "assets.jsonl"))
	clock := func() time.Time { return time.Date(2025, time.August, 15, 10, 30, 0, 0, time.UTC) }

	s := newSession(coinfolio.CoinList(coins), store, clock)
	var b strings.Builder
	s.print = func(md string) { b.WriteString(md) }
	return s, &b
}

// play runs the script lines and returns what was printed.
func play(t *testing.T, s *session, b *strings.Builder, script ...string) string {
	t.Helper()
	b.Reset()
	if err := s.run(context.Background(), strings.NewReader(strings.Join(script, "\n"))); err != nil {
		t.Fatalf("run() unexpected error: %v", err)
	}
	return b.String()
}

func TestSession_Search(t *testing.T) {
	s, b := newTestSession(t)

	got := play(t, s, b, "/")
	if !s.selector.IsOpen() {
		t.Fatal("search is closed after /")
	}
	for _, want := range []string{"- Bitcoin `bitcoin`", "- Ethereum `ethereum`", "- Tether `tether`"} {
		if !strings.Contains(got, want) {
			t.Errorf("search output does not contain %q:\n%s", want, got)
		}
	}

	got = play(t, s, b, "BIT")
	if !strings.Contains(got, "- Bitcoin `bitcoin`") || strings.Contains(got, "Ethereum") {
		t.Errorf("filtered search output:\n%s", got)
	}

	got = play(t, s, b, "open ethereum")
	if !strings.Contains(got, "# ![ETH]") {
		t.Errorf("open output:\n%s", got)
	}
	if s.coin.ID != "ethereum" {
		t.Errorf("shown coin = %q; want ethereum", s.coin.ID)
	}
	if !s.selector.IsOpen() {
		t.Error("selection closed the search")
	}

	play(t, s, b, "close", "/")
	if !s.coin.IsZero() || s.selector.IsOpen() {
		t.Errorf("coin = %q, search open = %v after close; want none and closed", s.coin.ID, s.selector.IsOpen())
	}

	got = play(t, s, b, "open nocoin")
	if !strings.Contains(got, "unknown coin") {
		t.Errorf("open nocoin output:\n%s", got)
	}
}

func TestSession_AddAsset(t *testing.T) {
	s, b := newTestSession(t)

	got := play(t, s, b, "open bitcoin", "add")
	if !strings.Contains(got, "## Add Bitcoin (BTC)") || !strings.Contains(got, "- Price: 50000.12") {
		t.Fatalf("add output:\n%s", got)
	}

	got = play(t, s, b, "submit")
	if !strings.Contains(got, "**Amount is required**") {
		t.Errorf("empty submit output:\n%s", got)
	}
	got = play(t, s, b, "close")
	if !strings.Contains(got, "Submit the asset first") || s.form == nil {
		t.Errorf("close while editing output:\n%s", got)
	}

	got = play(t, s, b, "amount 0.5", "price 50000")
	if !strings.Contains(got, "Total: **25000.00**") {
		t.Errorf("total output:\n%s", got)
	}

	got = play(t, s, b, "submit")
	if !strings.Contains(got, "Added 0.5 of Bitcoin by price 50000.00") {
		t.Errorf("submit output:\n%s", got)
	}
	// the confirmation stays until closed.
	got = play(t, s, b, "amount 3")
	if !strings.Contains(got, "Added 0.5 of Bitcoin by price 50000.00") {
		t.Errorf("output after edit:\n%s", got)
	}

	got = play(t, s, b, "close")
	if !strings.Contains(got, "Back to the coin search.") {
		t.Errorf("close output:\n%s", got)
	}
	if s.form != nil || !s.coin.IsZero() {
		t.Error("close did not return to the coin search")
	}

	assets, err := s.store.Assets()
	if err != nil || len(assets) != 1 {
		t.Fatalf("store assets = %v, %v; want 1", assets, err)
	}
	want, _ := coinfolio.NewAsset("bitcoin", coinfolio.Q(0.5), coinfolio.M(50000, "USD"), s.now())
	if !assets[0].Equal(want) {
		t.Errorf("stored asset = %v; want %v", assets[0], want)
	}

	got = play(t, s, b, "holdings")
	if !strings.Contains(got, "| Bitcoin | 0.5 | $25,000.00 | $25,000.06 | +$0.06 | - |") {
		t.Errorf("holdings output:\n%s", got)
	}
}

func TestSession_Cancel(t *testing.T) {
	s, b := newTestSession(t)
	got := play(t, s, b, "open tether", "add", "amount 10", "cancel")
	if !strings.Contains(got, "Asset discarded.") {
		t.Errorf("cancel output:\n%s", got)
	}
	if s.form != nil || s.coin.ID != "tether" {
		t.Error("cancel did not return to the coin view")
	}
	if assets, _ := s.store.Assets(); len(assets) != 0 {
		t.Errorf("store holds %d assets after cancel; want none", len(assets))
	}
}

func TestSession_Quit(t *testing.T) {
	s, b := newTestSession(t)
	got := play(t, s, b, "quit", "/")
	if got != "" || s.selector.IsOpen() {
		t.Errorf("commands after quit were run: %q", got)
	}

	got = play(t, s, b, "dance")
	if !strings.Contains(got, `Unknown command "dance"`) {
		t.Errorf("unknown command output: %q", got)
	}
}

func TestSession_AddFromHeader(t *testing.T) {
	s, b := newTestSession(t)

	got := play(t, s, b, "add")
	if !strings.Contains(got, "Pick a coin with `add <id>`.") || !strings.Contains(got, "- Tether `tether`") {
		t.Errorf("add without coin output:\n%s", got)
	}
	if s.form != nil || !s.selector.IsOpen() {
		t.Errorf("form = %v, search open = %v; want no form and an open search", s.form, s.selector.IsOpen())
	}

	got = play(t, s, b, "add nocoin")
	if !strings.Contains(got, "unknown coin") || s.form != nil {
		t.Errorf("add nocoin output:\n%s", got)
	}

	got = play(t, s, b, "add ethereum")
	if !strings.Contains(got, "## Add Ethereum (ETH)") || s.form == nil {
		t.Fatalf("add ethereum output:\n%s", got)
	}
	if got := s.form.Coin().ID; got != "ethereum" {
		t.Errorf("form coin = %q; want ethereum", got)
	}

	got = play(t, s, b, "amount 2", "submit", "close")
	if !strings.Contains(got, "Added 2 of Ethereum by price") || !strings.Contains(got, "Back to the coin search.") {
		t.Errorf("submit output:\n%s", got)
	}
}
