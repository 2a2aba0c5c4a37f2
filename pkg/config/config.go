// Package config binds the sync binaries' settings from the environment,
// with an optional .env file for local runs. Credentials are validated here
// so a misconfigured binary fails at startup, not mid-run.
package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/Letshaveago1/burryport-uk/pkg/daypage"
	"github.com/Letshaveago1/burryport-uk/pkg/feed"
)

// Tides configures the two tide pipelines.
type Tides struct {
	DatabaseURL  string `envconfig:"DATABASE_URL" required:"true"`
	FeedURL      string `envconfig:"TIDE_FEED_URL"`
	PageBaseURL  string `envconfig:"TIDE_PAGE_BASE_URL"`
	ForecastDays int    `envconfig:"FORECAST_DAYS" default:"7"`
}

// Weather configures the forecast pipeline.
type Weather struct {
	DatabaseURL string `envconfig:"DATABASE_URL" required:"true"`
	APIKey      string `envconfig:"OPENWEATHER_API_KEY" required:"true"`
	Lat         string `envconfig:"OPENWEATHER_LAT" required:"true"`
	Lon         string `envconfig:"OPENWEATHER_LON" required:"true"`
}

// Process loads .env if one is present and fills spec from the environment.
// A missing .env is informational only; the environment may already be set.
func Process(spec interface{}) error {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}
	return envconfig.Process("", spec)
}

// The URL defaults live with their fetchers; envconfig's default tags cannot
// reference them, so they are applied after binding.
func (c *Tides) ApplyDefaults() {
	if c.FeedURL == "" {
		c.FeedURL = feed.DefaultURL
	}
	if c.PageBaseURL == "" {
		c.PageBaseURL = daypage.DefaultBaseURL
	}
}
