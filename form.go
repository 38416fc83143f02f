package coinfolio

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/etnz/coinfolio/date"
	"github.com/shopspring/decimal"
)

var (
	// ErrNoCoin is returned when a form is created without a coin.
	ErrNoCoin = errors.New("no coin selected")
	// ErrAlreadySubmitted is returned when submitting a form twice.
	ErrAlreadySubmitted = errors.New("asset already submitted")
	// ErrNotSubmitted is returned when closing a form that was not submitted.
	ErrNotSubmitted = errors.New("asset not submitted yet")
)

// FormState is the state of an AssetForm.
type FormState int

const (
	// Editing accepts field changes and submissions.
	Editing FormState = iota
	// Submitted is terminal: the asset was handed to the sink and the
	// confirmation is displayed until the user closes it.
	Submitted
)

func (s FormState) String() string {
	switch s {
	case Editing:
		return "editing"
	case Submitted:
		return "submitted"
	default:
		return fmt.Sprintf("FormState(%d)", int(s))
	}
}

// numberField is a form field holding a user typed number.
type numberField struct {
	text  string
	value Optional[decimal.Decimal] // None when text is empty or not a number
}

func (f *numberField) set(text string) {
	f.text = text
	f.value = None[decimal.Decimal]()
	if strings.TrimSpace(text) == "" {
		return
	}
	if d, err := parseDecimal(text); err == nil {
		f.value = Some(d)
	}
}

// AssetForm collects the amount, price and date of a new Asset for one Coin.
//
// The total field is derived: every call to SetAmount or SetPrice recomputes
// it before returning, so Total is always consistent with the fields.
//
// An AssetForm is not safe for concurrent use.
type AssetForm struct {
	coin    Coin
	sink    AssetSink
	now     func() time.Time
	onClose func()

	state  FormState
	amount numberField
	price  numberField
	date   Optional[time.Time]
	total  Optional[decimal.Decimal]
	errs   map[string]*ValidationError

	submitted Asset
	closed    bool
}

// FormOption configures an AssetForm.
type FormOption func(*AssetForm)

// WithClock sets the function returning the submission time.
func WithClock(now func() time.Time) FormOption {
	return func(f *AssetForm) { f.now = now }
}

// WithOnClose sets the function called when the user dismisses the
// confirmation.
func WithOnClose(onClose func()) FormOption {
	return func(f *AssetForm) { f.onClose = onClose }
}

// NewAssetForm returns a form in the Editing state for coin. Submitted assets
// are passed to sink.
func NewAssetForm(coin Coin, sink AssetSink, opts ...FormOption) (*AssetForm, error) {
	if coin.IsZero() {
		return nil, ErrNoCoin
	}
	if sink == nil {
		return nil, errors.New("asset sink is missing")
	}
	f := &AssetForm{
		coin:    coin,
		sink:    sink,
		now:     time.Now,
		onClose: func() {},
	}
	for _, opt := range opts {
		opt(f)
	}
	f.Reset()
	return f, nil
}

// Reset restores the initial field values and clears validation errors.
// After a submission, the state and the submitted asset are kept.
func (f *AssetForm) Reset() {
	f.amount = numberField{}
	f.price = numberField{}
	f.price.set(f.coin.Price.Round().Fixed())
	f.date = None[time.Time]()
	f.errs = make(map[string]*ValidationError)
	f.recompute()
}

// Coin returns the coin the form is bound to.
func (f *AssetForm) Coin() Coin { return f.coin }

// State returns the current state.
func (f *AssetForm) State() FormState { return f.state }

// SetAmount sets the amount field from user input. Empty text clears it.
func (f *AssetForm) SetAmount(text string) {
	f.amount.set(text)
	if _, failed := f.errs["amount"]; failed {
		if assetValidator.checkAmount(f.amount.text, f.amount.value) == nil {
			delete(f.errs, "amount")
		}
	}
	f.recompute()
}

// SetPrice sets the unit price field from user input. Empty text clears it.
func (f *AssetForm) SetPrice(text string) {
	f.price.set(text)
	f.recompute()
}

// SetDate sets the date the asset was acquired.
func (f *AssetForm) SetDate(t time.Time) { f.date = Some(t) }

// ClearDate removes the date, submission time will be used instead.
func (f *AssetForm) ClearDate() { f.date = None[time.Time]() }

// SetDateText parses and sets the date from user input. Empty text clears it.
// Relative dates are resolved against the form clock.
func (f *AssetForm) SetDateText(text string) error {
	if strings.TrimSpace(text) == "" {
		f.ClearDate()
		return nil
	}
	t, err := date.Parse(text, f.now())
	if err != nil {
		return err
	}
	f.SetDate(t)
	return nil
}

// recompute updates the derived total from the amount and price fields.
func (f *AssetForm) recompute() {
	amount, aok := f.amount.value.Get()
	price, pok := f.price.value.Get()
	if !aok || !pok {
		f.total = None[decimal.Decimal]()
		return
	}
	f.total = Some(amount.Mul(price).Round(priceDecimals))
}

// Amount returns the parsed amount, absent if empty or not a number.
func (f *AssetForm) Amount() Optional[Quantity] {
	if d, ok := f.amount.value.Get(); ok {
		return Some(Q(d))
	}
	return None[Quantity]()
}

// AmountText returns the amount as typed.
func (f *AssetForm) AmountText() string { return f.amount.text }

// Price returns the parsed unit price, absent if empty or not a number.
func (f *AssetForm) Price() Optional[Money] {
	if d, ok := f.price.value.Get(); ok {
		return Some(M(d, f.coin.Price.Currency()))
	}
	return None[Money]()
}

// PriceText returns the price as typed, initially the coin price.
func (f *AssetForm) PriceText() string { return f.price.text }

// Date returns the chosen date, if any.
func (f *AssetForm) Date() Optional[time.Time] { return f.date }

// Total returns the derived amount × price rounded to two decimals. It is
// absent when either operand is absent or not a number.
func (f *AssetForm) Total() Optional[Money] {
	if d, ok := f.total.Get(); ok {
		return Some(M(d, f.coin.Price.Currency()))
	}
	return None[Money]()
}

// Errors returns the current validation messages by field name.
func (f *AssetForm) Errors() map[string]string {
	m := make(map[string]string, len(f.errs))
	for field, err := range f.errs {
		m[field] = err.Message
	}
	return m
}

// Submit validates the fields, builds the Asset, passes it to the sink and
// moves the form to the Submitted state.
//
// On a validation failure it returns a *ValidationError, the form stays in
// the Editing state and the sink is not called.
func (f *AssetForm) Submit() (Asset, error) {
	if f.state == Submitted {
		return Asset{}, ErrAlreadySubmitted
	}
	if verr := assetValidator.checkAmount(f.amount.text, f.amount.value); verr != nil {
		f.errs[verr.Field] = verr
		return Asset{}, verr
	}
	delete(f.errs, "amount")

	amount, _ := f.amount.value.Get()
	// price has no validation rule, an empty price means a zero price.
	price := f.price.value.OrElse(decimal.Zero)
	timestamp := f.date.OrElseGet(f.now)

	asset, err := NewAsset(f.coin.ID, Q(amount), M(price, f.coin.Price.Currency()), timestamp)
	if err != nil {
		return Asset{}, err
	}
	f.submitted = asset
	f.state = Submitted
	f.sink.AddAsset(asset)
	return asset, nil
}

// Submitted returns the submitted asset. The returned value does not change
// when the fields are edited or reset afterwards.
func (f *AssetForm) Submitted() (Asset, bool) {
	return f.submitted, f.state == Submitted
}

// Confirmation returns the confirmation message of a submitted form, or ""
// while editing.
func (f *AssetForm) Confirmation() string {
	a, ok := f.Submitted()
	if !ok {
		return ""
	}
	return fmt.Sprintf("Added %s of %s by price %s", a.Amount(), f.coin.Name, a.Price().Fixed())
}

// Close dismisses the confirmation and calls the close callback, once.
// It fails with ErrNotSubmitted while the form is still being edited.
func (f *AssetForm) Close() error {
	if f.state != Submitted {
		return ErrNotSubmitted
	}
	if f.closed {
		return nil
	}
	f.closed = true
	f.onClose()
	return nil
}
