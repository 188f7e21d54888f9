// Package config loads and validates application configuration from environment variables.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/pkordes/rv-pager/internal/pager"
)

// Config holds all configuration values for the API server.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8080".
	Port string

	// DatabaseURL is the Postgres connection string. Required.
	DatabaseURL string

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// LogFormat selects the log handler: "json" (default) or "text".
	LogFormat string

	// AutoMigrate applies pending migrations at startup when true.
	AutoMigrate bool

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Defaults to ["http://localhost:5173"] (Vite dev server).
	// Set CORS_ORIGINS to a comma-separated list to override.
	CORSOrigins []string

	// Pager holds the defaults every per-request pager starts from.
	Pager PagerConfig
}

// PagerConfig mirrors the PAGER_* environment variables.
type PagerConfig struct {
	StartKey          string
	StopKey           string
	PageSizeDefault   int
	PageSizeMax       int
	LinksLimit        int
	NumerateFirstLast bool
	ClassName         string
}

// Options converts the config into pager options, starting from the pager defaults.
func (c PagerConfig) Options() pager.Options {
	o := pager.DefaultOptions()
	o.StartKey = c.StartKey
	o.StopKey = c.StopKey
	o.PageSizeDefault = c.PageSizeDefault
	o.PageSizeMax = c.PageSizeMax
	o.LinksLimit = c.LinksLimit
	o.NumerateFirstLast = c.NumerateFirstLast
	o.LinksClassName = c.ClassName
	return o
}

// Load reads configuration from environment variables and returns a Config.
// Returns an error listing any required variables that are not set, or any
// pager setting that is out of range.
func Load() (Config, error) {
	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	cfg := Config{
		Port:        v.GetString("PORT"),
		DatabaseURL: v.GetString("DATABASE_URL"),
		LogLevel:    v.GetString("LOG_LEVEL"),
		LogFormat:   strings.ToLower(v.GetString("LOG_FORMAT")),
		AutoMigrate: v.GetBool("AUTO_MIGRATE"),
		CORSOrigins: splitCSV(v.GetString("CORS_ORIGINS")),
		Pager: PagerConfig{
			StartKey:          v.GetString("PAGER_START_KEY"),
			StopKey:           v.GetString("PAGER_STOP_KEY"),
			PageSizeDefault:   v.GetInt("PAGER_PAGE_SIZE_DEFAULT"),
			PageSizeMax:       v.GetInt("PAGER_PAGE_SIZE_MAX"),
			LinksLimit:        v.GetInt("PAGER_LINKS_LIMIT"),
			NumerateFirstLast: v.GetBool("PAGER_NUMERATE_FIRST_LAST"),
			ClassName:         v.GetString("PAGER_CLASS_NAME"),
		},
	}

	var missing []string
	if cfg.DatabaseURL == "" {
		missing = append(missing, "DATABASE_URL")
	}
	if len(missing) > 0 {
		return Config{}, fmt.Errorf("required environment variables not set: %s", strings.Join(missing, ", "))
	}

	if err := cfg.Pager.validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// setDefaults registers the fallback for every optional variable.
// Variables that are set but empty also fall back to these.
func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "8080")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("AUTO_MIGRATE", false)
	v.SetDefault("CORS_ORIGINS", "http://localhost:5173")

	d := pager.DefaultOptions()
	v.SetDefault("PAGER_START_KEY", d.StartKey)
	v.SetDefault("PAGER_STOP_KEY", d.StopKey)
	v.SetDefault("PAGER_PAGE_SIZE_DEFAULT", d.PageSizeDefault)
	v.SetDefault("PAGER_PAGE_SIZE_MAX", d.PageSizeMax)
	v.SetDefault("PAGER_LINKS_LIMIT", d.LinksLimit)
	v.SetDefault("PAGER_NUMERATE_FIRST_LAST", d.NumerateFirstLast)
	v.SetDefault("PAGER_CLASS_NAME", d.LinksClassName)
}

func (c PagerConfig) validate() error {
	var bad []string
	if c.PageSizeDefault < 1 {
		bad = append(bad, "PAGER_PAGE_SIZE_DEFAULT")
	}
	if c.PageSizeMax < c.PageSizeDefault {
		bad = append(bad, "PAGER_PAGE_SIZE_MAX")
	}
	if c.LinksLimit < 1 {
		bad = append(bad, "PAGER_LINKS_LIMIT")
	}
	if c.StartKey == c.StopKey {
		bad = append(bad, "PAGER_STOP_KEY")
	}
	if len(bad) > 0 {
		return fmt.Errorf("invalid pager settings: %s", strings.Join(bad, ", "))
	}
	return nil
}

// splitCSV splits a comma-separated string into a trimmed slice, ignoring empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
