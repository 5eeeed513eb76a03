package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	App struct {
		Port int `yaml:"port"`
	} `yaml:"app"`

	RateLimit struct {
		Requests      int `yaml:"requests"`
		WindowSeconds int `yaml:"window_seconds"`
	} `yaml:"rate_limit"`

	Providers struct {
		Adzuna struct {
			AppID  string `yaml:"app_id"`
			AppKey string `yaml:"app_key"`
		} `yaml:"adzuna"`
		Reed struct {
			APIKey string `yaml:"api_key"`
		} `yaml:"reed"`
		USAJobs struct {
			APIKey string `yaml:"api_key"`
		} `yaml:"usajobs"`
	} `yaml:"providers"`
}

func Default() Config {
	var cfg Config
	cfg.App.Port = 3001
	cfg.RateLimit.Requests = 10
	cfg.RateLimit.WindowSeconds = 60
	return cfg
}

// Load reads the optional YAML file at path and overlays the environment on
// top. A missing file is not an error; defaults still apply.
func Load(path string) (Config, error) {
	cfg := Default()

	b, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return cfg, fmt.Errorf("config parse %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist):
		// no file, env + defaults only
	default:
		return cfg, err
	}

	OverlayEnv(&cfg)
	return cfg, nil
}

func (c Config) Addr() string {
	return fmt.Sprintf(":%d", c.App.Port)
}

func (c Config) Window() time.Duration {
	return time.Duration(c.RateLimit.WindowSeconds) * time.Second
}
