package cmd

import (
	"flag"
	"os"
	"testing"
)

// configFlags returns a flag set with some of the global flags.
func configFlags() (*flag.FlagSet, *string, *string, *string, *bool) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	assets := fs.String("assets-file", "assets.jsonl", "")
	cur := fs.String("currency", "USD", "")
	key := fs.String("api-key", "", "")
	verbose := fs.Bool("v", false, "")
	return fs, assets, cur, key, verbose
}

func isolateConfig(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", dir)
	for _, name := range []string{"CFO_ASSETS_FILE", "CFO_CURRENCY", "CFO_API_KEY", "CFO_VERBOSE"} {
		t.Setenv(name, "")
		os.Unsetenv(name)
	}
}

func TestLoadConfig(t *testing.T) {
	isolateConfig(t)
	content := "assets-file: from-file.jsonl\ncurrency: EUR\nverbose: true\n"
	if err := os.WriteFile("coinfolio.yaml", []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("CFO_CURRENCY", "GBP")

	fs, assets, cur, key, verbose := configFlags()
	if err := LoadConfig(fs); err != nil {
		t.Fatalf("LoadConfig() unexpected error: %v", err)
	}
	if *assets != "from-file.jsonl" {
		t.Errorf("assets-file = %q; want the config file value", *assets)
	}
	if *cur != "GBP" {
		t.Errorf("currency = %q; want the environment value", *cur)
	}
	if *key != "" {
		t.Errorf("api-key = %q; want the default", *key)
	}
	if !*verbose {
		t.Error("v = false; want true")
	}

	if err := fs.Parse([]string{"-currency", "JPY"}); err != nil {
		t.Fatal(err)
	}
	if *cur != "JPY" {
		t.Errorf("currency = %q; want the command line value", *cur)
	}
}

func TestLoadConfig_NoFile(t *testing.T) {
	isolateConfig(t)
	fs, assets, cur, _, _ := configFlags()
	if err := LoadConfig(fs); err != nil {
		t.Fatalf("LoadConfig() unexpected error: %v", err)
	}
	if *assets != "assets.jsonl" || *cur != "USD" {
		t.Errorf("flags = %q, %q; want the defaults", *assets, *cur)
	}
}

func TestLoadConfig_Invalid(t *testing.T) {
	isolateConfig(t)
	if err := os.WriteFile("coinfolio.yaml", []byte("currency: [\n"), 0644); err != nil {
		t.Fatal(err)
	}
	fs, _, _, _, _ := configFlags()
	if err := LoadConfig(fs); err == nil {
		t.Error("LoadConfig() on an invalid file succeeded")
	}

	isolateConfig(t)
	t.Setenv("CFO_VERBOSE", "maybe")
	fs, _, _, _, _ = configFlags()
	if err := LoadConfig(fs); err == nil {
		t.Error("LoadConfig() with an invalid verbose value succeeded")
	}
}
