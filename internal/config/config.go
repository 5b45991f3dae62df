package config

import (
	"errors"
	"fmt"
	"log"
	"round-trip-planner/internal/domain"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Port      string `mapstructure:"PORT"`
	Selection string `mapstructure:"ROUTE_SELECTION"`
	// MaxStops caps the stop list because BestRoute is factorial. Zero disables the cap.
	MaxStops int `mapstructure:"MAX_STOPS"`
}

// Load reads configuration from the environment, after merging a local .env
// file when one exists. Variables already set in the environment win.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	v := viper.New()
	v.SetDefault("PORT", "8080")
	v.SetDefault("ROUTE_SELECTION", string(domain.SelectLongest))
	v.SetDefault("MAX_STOPS", 8)
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("load config: unmarshal: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Port == "" {
		return errors.New("PORT must not be empty")
	}
	if _, err := domain.ParseSelection(c.Selection); err != nil {
		return fmt.Errorf("ROUTE_SELECTION: %w", err)
	}
	if c.MaxStops < 0 {
		return fmt.Errorf("MAX_STOPS must not be negative, got %d", c.MaxStops)
	}
	return nil
}

// RouteSelection returns the parsed selection. Validate must have passed.
func (c *Config) RouteSelection() domain.Selection {
	s, _ := domain.ParseSelection(c.Selection)
	return s
}
