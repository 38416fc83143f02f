package coinfolio

import (
	"time"

	"github.com/shopspring/decimal"
)

var (
	bitcoin = Coin{
		ID:       "bitcoin",
		Name:     "Bitcoin",
		Symbol:   "BTC",
		Icon:     "https://static.coinstats.app/coins/1650455588819.png",
		Price:    USD(50000),
		Rank:     1,
		PriceBTC: decimal.NewFromInt(1),
	}
	ethereum = Coin{
		ID:       "ethereum",
		Name:     "Ethereum",
		Symbol:   "ETH",
		Icon:     "https://static.coinstats.app/coins/1650455629727.png",
		Price:    USD(2345.6789),
		Rank:     2,
		PriceBTC: decimal.RequireFromString("0.0469"),
	}
	tether = Coin{
		ID:     "tether",
		Name:   "Tether",
		Symbol: "USDT",
		Price:  USD(1),
		Rank:   3,
	}

	testCoins = CoinList{bitcoin, ethereum, tether}

	// fixedNow is the clock used by forms under test.
	fixedNow = time.Date(2025, time.August, 15, 10, 30, 0, 0, time.UTC)
)

// USD is a helper for test to create usd money from const
func USD(v float64) Money { return M(v, "USD") }

func clock() time.Time { return fixedNow }

// mustAsset is NewAsset for valid test data.
func mustAsset(coinID string, amount float64, price Money, t time.Time) Asset {
	a, err := NewAsset(coinID, Q(amount), price, t)
	if err != nil {
		panic(err)
	}
	return a
}
