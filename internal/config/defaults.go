package config

import (
	_ "embed"
	"fmt"
)

//go:embed rules.yaml
var defaultRules []byte

// defaultConfig is decoded once at startup and never mutated.
var defaultConfig = mustParse(defaultRules)

func mustParse(data []byte) *Config {
	cfg, err := Parse(data)
	if err != nil {
		panic(fmt.Sprintf("embedded rules.yaml: %v", err))
	}
	return cfg
}

// GetDefault returns the default classification table.
// Callers receive their own copy.
func GetDefault() *Config {
	return defaultConfig.Clone()
}
