package main

import (
	"fmt"

	"github.com/cozy-corner/poke-lookup/internal/config"
)

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}

// resolveDictionaryPath prefers the --dict flag over the configured
// location.
func resolveDictionaryPath(cfg *config.Config) string {
	if dictPath != "" {
		return dictPath
	}
	return cfg.DictionaryPath()
}
