package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cozy-corner/poke-lookup/internal/update"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Config struct {
	Data    DataConfig    `mapstructure:"data"`
	Update  UpdateConfig  `mapstructure:"update"`
	Sprites SpritesConfig `mapstructure:"sprites"`
}

type DataConfig struct {
	Directory      string `mapstructure:"directory" validate:"required"`
	DictionaryFile string `mapstructure:"dictionary_file" validate:"required"`
}

type UpdateConfig struct {
	SourceURL string `mapstructure:"source_url" validate:"required,url"`
	UserAgent string `mapstructure:"user_agent" validate:"required"`
}

type SpritesConfig struct {
	CacheDirectory string `mapstructure:"cache_directory" validate:"required"`
	BaseURL        string `mapstructure:"base_url" validate:"required,url"`
}

// DictionaryPath resolves the dictionary file location.
func (c *Config) DictionaryPath() string {
	return filepath.Join(c.Data.Directory, c.Data.DictionaryFile)
}

// defaultDataDir follows the XDG data convention, falling back to the
// temporary directory when no home directory can be determined.
func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "poke-lookup")
	}
	return filepath.Join(home, ".local", "share", "poke-lookup")
}

func Load(configFile string) (*Config, error) {
	validate, trans, err := newValidator()
	if err != nil {
		return nil, fmt.Errorf("failed to create new validator: %w", err)
	}

	v := viper.New()

	v.SetConfigType("yaml")

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/poke-lookup")
	}

	v.SetDefault("data.directory", defaultDataDir())
	v.SetDefault("data.dictionary_file", "names.json")
	v.SetDefault("update.source_url", update.DefaultSourceURL)
	v.SetDefault("update.user_agent", "poke-lookup/0.1.0")
	v.SetDefault("sprites.cache_directory", filepath.Join(defaultDataDir(), "sprites"))
	v.SetDefault("sprites.base_url", "https://raw.githubusercontent.com/PokeAPI/sprites/master")

	// Deployment-specific locations come from the environment, not the
	// config file.
	if err := v.BindEnv("data.directory", "POKE_LOOKUP_DATA_DIR"); err != nil {
		return nil, fmt.Errorf("failed to bind POKE_LOOKUP_DATA_DIR environment variable: %w", err)
	}
	if err := v.BindEnv("update.source_url", "POKE_LOOKUP_SOURCE_URL"); err != nil {
		return nil, fmt.Errorf("failed to bind POKE_LOOKUP_SOURCE_URL environment variable: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	if err := validate.Struct(cfg); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		var errorMsgs []string
		for _, e := range validationErrors {
			errorMsgs = append(errorMsgs, e.Translate(trans))
		}
		return nil, fmt.Errorf("invalid configuration: %s", strings.Join(errorMsgs, ", "))
	}

	return &cfg, nil
}
