package cmd

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes the environment variables that hold flag defaults,
// e.g. CFO_ASSETS_FILE for -assets-file.
const EnvPrefix = "CFO"

// LoadConfig sets the flags of fs from the coinfolio.yaml configuration file
// and the CFO_* environment variables. Command line values parsed afterwards
// take precedence.
//
// The configuration file is searched in the current folder, then in the user
// configuration folder.
func LoadConfig(fs *flag.FlagSet) error {
	v := viper.New()
	v.SetConfigName("coinfolio")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if dir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(dir, "coinfolio"))
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("could not read config file: %w", err)
		}
	}

	var errs []error
	fs.VisitAll(func(f *flag.Flag) {
		key := configKey(f.Name)
		if !v.IsSet(key) {
			return
		}
		if err := fs.Set(f.Name, v.GetString(key)); err != nil {
			errs = append(errs, fmt.Errorf("invalid %s value: %w", key, err))
		}
	})
	return errors.Join(errs...)
}

// configKey returns the configuration key of a flag.
func configKey(name string) string {
	if name == "v" {
		return "verbose"
	}
	return name
}
