// Package config carries runtime settings shared by the command-line
// tools. Values come from defaults, then an optional gridlock.yaml in
// the working directory, then GRIDLOCK_* environment variables; flags
// in the individual commands override all of these.
package config

import (
	"errors"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Debug           bool
	Algorithm       string
	CatalogPath     string
	CSVOut          string
	Workers         int
	MaxTableEntries int
}

func (c *Config) Load() error {
	v := viper.New()
	v.SetDefault("debug", false)
	v.SetDefault("algorithm", "astar")
	v.SetDefault("catalog-path", "./boards/catalog.yaml")
	v.SetDefault("csv-out", "")
	v.SetDefault("workers", 0)
	v.SetDefault("max-table-entries", 0)

	v.SetEnvPrefix("gridlock")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetConfigName("gridlock")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return err
		}
	}

	c.Debug = v.GetBool("debug")
	c.Algorithm = v.GetString("algorithm")
	c.CatalogPath = v.GetString("catalog-path")
	c.CSVOut = v.GetString("csv-out")
	c.Workers = v.GetInt("workers")
	c.MaxTableEntries = v.GetInt("max-table-entries")
	return nil
}
