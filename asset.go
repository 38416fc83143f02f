package coinfolio

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

// ErrInvalidAmount is returned when an asset amount is not strictly positive.
var ErrInvalidAmount = errors.New("asset amount must be positive")

// Asset is a holding entered by the user: an amount of a coin bought at a
// unit price at a given time. An Asset is immutable.
type Asset struct {
	coinID    string
	amount    Quantity
	price     Money
	timestamp time.Time
}

// NewAsset returns a new Asset. amount must be strictly positive.
func NewAsset(coinID string, amount Quantity, price Money, timestamp time.Time) (Asset, error) {
	if coinID == "" {
		return Asset{}, errors.New("asset coin id is missing")
	}
	if !amount.IsPositive() {
		return Asset{}, fmt.Errorf("%w, got %s", ErrInvalidAmount, amount)
	}
	return Asset{coinID: coinID, amount: amount, price: price, timestamp: timestamp}, nil
}

// CoinID returns the id of the coin held.
func (a Asset) CoinID() string { return a.coinID }

// Amount returns the amount of coins held.
func (a Asset) Amount() Quantity { return a.amount }

// Price returns the unit price at entry time.
func (a Asset) Price() Money { return a.price }

// Timestamp returns when the asset was acquired.
func (a Asset) Timestamp() time.Time { return a.timestamp }

// Cost returns amount × price rounded to two decimals.
func (a Asset) Cost() Money { return a.price.Mul(a.amount).Round() }

// Equal reports whether a and b hold the same values.
func (a Asset) Equal(b Asset) bool {
	return a.coinID == b.coinID && a.amount.Equal(b.amount) && a.price.Equal(b.price) && a.timestamp.Equal(b.timestamp)
}

// MarshalJSON implements the json.Marshaler interface for Asset.
func (a Asset) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("coin", a.coinID)
	w.Append("amount", a.amount)
	w.EmbedFrom(a.price)
	w.Append("date", a.timestamp.Format(time.RFC3339Nano))
	return w.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for Asset.
// It enforces the same invariants as NewAsset.
func (a *Asset) UnmarshalJSON(data []byte) error {
	var temp struct {
		Coin     string          `json:"coin"`
		Amount   decimal.Decimal `json:"amount"`
		Price    decimal.Decimal `json:"price"`
		Currency string          `json:"currency"`
		Date     time.Time       `json:"date"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	asset, err := NewAsset(temp.Coin, Q(temp.Amount), M(temp.Price, temp.Currency), temp.Date)
	if err != nil {
		return err
	}
	*a = asset
	return nil
}

// AssetSink accepts newly created assets. AddAsset is fire-and-forget: the
// sink owns any failure that happens while storing the asset.
type AssetSink interface {
	AddAsset(Asset)
}

// AssetSinkFunc adapts a function to the AssetSink interface.
type AssetSinkFunc func(Asset)

// AddAsset calls f(a).
func (f AssetSinkFunc) AddAsset(a Asset) { f(a) }

// Assets is an in-memory, ordered AssetSink.
// Its zero value is ready to use.
type Assets struct {
	list []Asset
}

// AddAsset implements AssetSink.
func (s *Assets) AddAsset(a Asset) { s.list = append(s.list, a) }

// All returns a copy of the assets in insertion order.
func (s *Assets) All() []Asset { return slices.Clone(s.list) }

// Len returns the number of assets.
func (s *Assets) Len() int { return len(s.list) }
