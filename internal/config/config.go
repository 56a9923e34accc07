// Package config holds runtime settings for the pointctl CLI. Values come
// from built-in defaults overlaid by POINT_* environment variables; the
// persisted token/device cache is a separate concern (internal/store).
package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds runtime settings for one CLI invocation.
//
// Fields:
//   - APIURL: base URL of the Minut REST API.
//   - ClientID: default OAuth client ID offered by the auth prompt.
//   - HTTPTimeout: per-request timeout for API calls.
type Config struct {
	APIURL      string        `mapstructure:"api_url"`
	ClientID    string        `mapstructure:"client_id"`
	HTTPTimeout time.Duration `mapstructure:"http_timeout"`
}

// Load constructs a Config from defaults overlaid by environment variables
// (POINT_API_URL, POINT_CLIENT_ID, POINT_HTTP_TIMEOUT).
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("POINT")
	v.AutomaticEnv()

	v.SetDefault("api_url", "https://api.minut.com/draft1")
	v.SetDefault("client_id", "")
	v.SetDefault("http_timeout", 15*time.Second)

	for _, key := range []string{"api_url", "client_id", "http_timeout"} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("binding env for %s: %w", key, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	return cfg, nil
}
