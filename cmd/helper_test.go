package cmd

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/etnz/coinfolio"
	"github.com/etnz/coinfolio/market"
)

// setupCommands points the global flags to the test market and to a fresh
// assets file, and captures the command output.
func setupCommands(t *testing.T) *bytes.Buffer {
	t.Helper()
	t.Setenv("COINFOLIO_TESTING_NOW", "2025-08-15 10:30")

	saved := []string{*assetsFile, *marketURL, *marketPath, *currency, *apiKey, *cacheDir}
	*assetsFile = filepath.Join(t.TempDir(), "assets.jsonl")
	*marketURL = "testdata/coins.json"
	*marketPath = market.DefaultListPath
	*currency = coinfolio.DefaultCurrency
	*apiKey = ""
	*cacheDir = ""

	var buf bytes.Buffer
	savedOut := out
	out = &buf
	t.Cleanup(func() {
		out = savedOut
		*assetsFile, *marketURL, *marketPath, *currency, *apiKey, *cacheDir = saved[0], saved[1], saved[2], saved[3], saved[4], saved[5]
	})
	return &buf
}
