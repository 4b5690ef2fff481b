package main

import (
	"os"

	"github.com/BurntSushi/toml"
)

const defaultConfigFile = "filtro.toml"

// Config carries CLI defaults from a TOML file. Explicit flags win over
// config values.
type Config struct {
	Backend    string `toml:"backend"`
	Catalog    string `toml:"catalog"`
	SchemaName string `toml:"schema_name"`
	Driver     string `toml:"driver"`
}

// loadConfig reads the given file, or ./filtro.toml when path is empty and
// the file exists. A missing implicit config is not an error.
func loadConfig(path string) (Config, error) {
	var cfg Config
	implicit := path == ""
	if implicit {
		path = defaultConfigFile
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if implicit && os.IsNotExist(err) {
			return Config{}, nil
		}
		return Config{}, err
	}
	return cfg, nil
}
