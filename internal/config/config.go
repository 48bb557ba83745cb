package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	Server Server `mapstructure:"server"`
	List   List   `mapstructure:"list"`
}

type Server struct {
	// BaseURL is the root of the catalog REST backend, e.g.
	// https://api.example.uz/api.
	BaseURL string `mapstructure:"base_url" validate:"required,url"`
}

type List struct {
	PageSize int `mapstructure:"page_size" validate:"gte=1"`
}

// Load reads the YAML configuration. Without an explicit file it looks in
// the working directory and $HOME/.config/dictadmin.
func Load(configFile string) (*Config, error) {
	v := viper.New()

	v.SetConfigType("yaml")

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/dictadmin")
	}

	v.SetDefault("server.base_url", "http://localhost:8080")
	v.SetDefault("list.page_size", 10)

	if err := v.BindEnv("server.base_url", "DICTADMIN_BASE_URL"); err != nil {
		return nil, fmt.Errorf("failed to bind DICTADMIN_BASE_URL environment variable: %w", err)
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

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
