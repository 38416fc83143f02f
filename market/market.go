// Package market provides the list of coins quoted by a market data API.
package market

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/etnz/coinfolio"
	"github.com/patrickmn/go-cache"
)

const (
	// DefaultURL is the CoinStats coins endpoint.
	DefaultURL = "https://openapiv1.coinstats.app/coins"
	// DefaultListPath locates the coin list in DefaultURL responses.
	DefaultListPath = "$.result"
	// DefaultTTL is how long a fetched coin list is kept in memory.
	DefaultTTL = 5 * time.Minute

	apiKeyHeader = "X-API-KEY"
	coinsKey     = "coins"
)

// Client fetches coins from a market URL. The URL is either an http(s)
// address or a local JSON file.
//
// A Client is safe for concurrent use.
type Client struct {
	url      string
	listPath string
	currency string
	apiKey   string
	http     *http.Client
	cache    *cache.Cache
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets the http client used to query the market.
func WithHTTPClient(hc *http.Client) Option { return func(c *Client) { c.http = hc } }

// WithDiskCache keeps raw market responses in dir for period.
func WithDiskCache(dir string, period time.Duration) Option {
	return func(c *Client) { c.http = cachedClient(dir, period) }
}

// WithAPIKey sets the API key sent with every request.
func WithAPIKey(key string) Option { return func(c *Client) { c.apiKey = key } }

// WithListPath sets the JSONPath expression locating the coin list.
func WithListPath(path string) Option { return func(c *Client) { c.listPath = path } }

// WithCurrency sets the quote currency of coin prices.
func WithCurrency(cur string) Option { return func(c *Client) { c.currency = cur } }

// WithTTL sets how long a coin list is kept in memory.
func WithTTL(ttl time.Duration) Option {
	return func(c *Client) { c.cache = cache.New(ttl, 2*ttl) }
}

// New returns a client for the market at url.
func New(url string, opts ...Option) *Client {
	c := &Client{
		url:      url,
		listPath: DefaultListPath,
		currency: coinfolio.DefaultCurrency,
		http:     &http.Client{Timeout: 30 * time.Second},
		cache:    cache.New(DefaultTTL, 2*DefaultTTL),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// URL returns the market address.
func (c *Client) URL() string { return c.url }

func (c *Client) remote() bool {
	return strings.HasPrefix(c.url, "http://") || strings.HasPrefix(c.url, "https://")
}

// Fetch returns the coin list, from memory when it has been fetched recently.
func (c *Client) Fetch(ctx context.Context) ([]coinfolio.Coin, error) {
	if v, found := c.cache.Get(coinsKey); found {
		return v.([]coinfolio.Coin), nil
	}
	return c.Refresh(ctx)
}

// Refresh fetches the coin list from the market and stores it in memory.
func (c *Client) Refresh(ctx context.Context) ([]coinfolio.Coin, error) {
	var (
		coins []coinfolio.Coin
		err   error
	)
	if c.remote() {
		coins, err = c.fetchRemote(ctx)
	} else {
		coins, err = c.readFile()
	}
	if err != nil {
		return nil, err
	}
	c.cache.Set(coinsKey, coins, cache.DefaultExpiration)
	return coins, nil
}

func (c *Client) fetchRemote(ctx context.Context) ([]coinfolio.Coin, error) {
	header := make(http.Header)
	if c.apiKey != "" {
		header.Set(apiKeyHeader, c.apiKey)
	}
	var jobj any
	if err := jwget(ctx, c.http, c.url, header, &jobj); err != nil {
		return nil, fmt.Errorf("cannot fetch coins: %w", err)
	}
	coins, err := extractCoins(jobj, c.listPath, c.currency)
	if err != nil {
		return nil, fmt.Errorf("cannot read coins from %s: %w", c.url, err)
	}
	return coins, nil
}

func (c *Client) readFile() ([]coinfolio.Coin, error) {
	f, err := os.Open(strings.TrimPrefix(c.url, "file://"))
	if err != nil {
		return nil, fmt.Errorf("cannot open coins file: %w", err)
	}
	defer f.Close()
	coins, err := DecodeCoins(f, c.listPath, c.currency)
	if err != nil {
		return nil, fmt.Errorf("cannot read coins from %s: %w", c.url, err)
	}
	return coins, nil
}

// Coins implements coinfolio.CoinLister. Fetch errors are logged and yield
// an empty list.
func (c *Client) Coins() []coinfolio.Coin {
	coins, err := c.Fetch(context.Background())
	if err != nil {
		log.Printf("cannot list coins: %v", err)
		return nil
	}
	return coins
}
