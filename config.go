package main

import (
	"flag"
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config collects startup options. Environment variables are read first and
// any flag set on the command line wins.
type Config struct {
	Content     string `env:"FOLIO_CONTENT"`
	Debug       bool   `env:"FOLIO_DEBUG"`
	Dark        bool   `env:"FOLIO_DARK"    envDefault:"true"`
	NoOpen      bool   `env:"FOLIO_NO_OPEN"`
	Watch       bool   `env:"FOLIO_WATCH"`
	TPS         int    `env:"FOLIO_TPS"     envDefault:"60"`
	BaseMonitor bool
}

// LoadConfig parses the environment and then args into a Config.
func LoadConfig(args []string) (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse env: %w", err)
	}

	fs := flag.NewFlagSet("folio", flag.ContinueOnError)
	fs.StringVar(&cfg.Content, "content", cfg.Content, "content YAML path (embedded default when empty)")
	fs.BoolVar(&cfg.Debug, "debug", cfg.Debug, "enable debug overlay")
	fs.BoolVar(&cfg.BaseMonitor, "m", cfg.BaseMonitor, "use base monitor instead of primary (for multi-monitor setups)")
	fs.BoolVar(&cfg.Dark, "dark", cfg.Dark, "start in dark theme")
	fs.BoolVar(&cfg.NoOpen, "no-open", cfg.NoOpen, "copy project links without opening a browser")
	fs.BoolVar(&cfg.Watch, "watch", cfg.Watch, "reload content when files under content/ change")
	if err := fs.Parse(args); err != nil {
		return Config{}, fmt.Errorf("config: parse flags: %w", err)
	}

	if cfg.TPS <= 0 {
		cfg.TPS = 60
	}
	return cfg, nil
}
