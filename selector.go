package coinfolio

import "strings"

// DefaultShortcut is the key that toggles the coin list.
const DefaultShortcut = '/'

// Option is an entry of the coin choice list.
type Option struct {
	Label string // coin name
	Value string // coin id
	Icon  string // coin icon URI
}

// CoinSelector is a searchable choice list over a CoinLister.
//
// Its open flag is pure view state: it only changes through Toggle, SetOpen
// or the shortcut key, never on selection.
//
// A CoinSelector is not safe for concurrent use.
type CoinSelector struct {
	coins    CoinLister
	onSelect func(Coin)
	shortcut rune
	open     bool
}

// SelectorOption configures a CoinSelector.
type SelectorOption func(*CoinSelector)

// WithShortcut sets the key that toggles the list.
func WithShortcut(r rune) SelectorOption {
	return func(s *CoinSelector) { s.shortcut = r }
}

// NewCoinSelector returns a closed selector over coins. onSelect receives the
// full record of every selected coin, it can be nil.
func NewCoinSelector(coins CoinLister, onSelect func(Coin), opts ...SelectorOption) *CoinSelector {
	if onSelect == nil {
		onSelect = func(Coin) {}
	}
	s := &CoinSelector{coins: coins, onSelect: onSelect, shortcut: DefaultShortcut}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Options returns the choices matching query, in coin list order. A coin
// matches when its name, symbol or id contains the query, ignoring case.
// An empty query matches every coin.
func (s *CoinSelector) Options(query string) []Option {
	query = strings.ToLower(strings.TrimSpace(query))
	var options []Option
	for _, c := range s.coins.Coins() {
		if query != "" &&
			!strings.Contains(strings.ToLower(c.Name), query) &&
			!strings.Contains(strings.ToLower(c.Symbol), query) &&
			!strings.Contains(strings.ToLower(c.ID), query) {
			continue
		}
		options = append(options, Option{Label: c.Name, Value: c.ID, Icon: c.Icon})
	}
	return options
}

// Select selects the coin with the given id, passes its full record to the
// selection callback and returns it.
func (s *CoinSelector) Select(id string) (Coin, error) {
	c, err := FindCoin(s.coins, id)
	if err != nil {
		return Coin{}, err
	}
	s.onSelect(c)
	return c, nil
}

// IsOpen reports whether the list is open.
func (s *CoinSelector) IsOpen() bool { return s.open }

// SetOpen opens or closes the list.
func (s *CoinSelector) SetOpen(open bool) { s.open = open }

// Toggle opens a closed list and closes an open one.
func (s *CoinSelector) Toggle() { s.open = !s.open }

// HandleKey toggles the list if r is the shortcut key, and reports whether
// the key was consumed.
func (s *CoinSelector) HandleKey(r rune) bool {
	if r != s.shortcut {
		return false
	}
	s.Toggle()
	return true
}
