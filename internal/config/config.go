package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config carries everything the client needs to reach the API and render.
// Values come from an optional yaml file (SEVENT_CONFIG) overridden by the
// environment; every field has a usable default so `sevent` runs with no
// setup against a local backend.
type Config struct {
	APIURL       string        `yaml:"api_url" env:"SEVENT_API_URL" env-default:"http://localhost:5000"`
	Timeout      time.Duration `yaml:"timeout" env:"SEVENT_TIMEOUT" env-default:"10s"`
	LikeDebounce time.Duration `yaml:"like_debounce" env:"SEVENT_LIKE_DEBOUNCE" env-default:"300ms"`
	PageSize     int           `yaml:"page_size" env:"SEVENT_PAGE_SIZE" env-default:"12"`
	EventsLimit  int           `yaml:"events_limit" env:"SEVENT_EVENTS_LIMIT" env-default:"200"`
	LogFile      string        `yaml:"log_file" env:"SEVENT_LOG_FILE" env-default:""`
	DataDir      string        `yaml:"data_dir" env:"SEVENT_DATA_DIR" env-default:""`
}

// Load reads SEVENT_CONFIG if set, then the environment. It never fails on a
// missing config file, only on an unreadable one.
func Load() (*Config, error) {
	var cfg Config

	if path := os.Getenv("SEVENT_CONFIG"); path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, err
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, err
	}

	if cfg.DataDir == "" {
		cfg.DataDir = defaultDataDir()
	}
	if cfg.PageSize < 1 {
		cfg.PageSize = 12
	}
	if cfg.EventsLimit < 1 {
		cfg.EventsLimit = 200
	}
	return &cfg, nil
}

func defaultDataDir() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return filepath.Join(v, "sevent")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "sevent")
}
