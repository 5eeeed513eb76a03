package config

import (
	"os"
	"strconv"

	"jobboard-api/internal/secrets"
)

// OverlayEnv applies environment variables on top of cfg. Credentials also
// consult the OS keyring when the variable is unset, so precedence is
// env > keyring > config file > empty.
func OverlayEnv(cfg *Config) {
	if v := os.Getenv("PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil && p > 0 {
			cfg.App.Port = p
		}
	}

	if v := secrets.Lookup("ADZUNA_APP_ID", "adzuna:app_id"); v != "" {
		cfg.Providers.Adzuna.AppID = v
	}
	if v := secrets.Lookup("ADZUNA_APP_KEY", "adzuna:app_key"); v != "" {
		cfg.Providers.Adzuna.AppKey = v
	}
	if v := secrets.Lookup("REED_API_KEY", "reed:api_key"); v != "" {
		cfg.Providers.Reed.APIKey = v
	}
	if v := secrets.Lookup("USAJOBS_API_KEY", "usajobs:api_key"); v != "" {
		cfg.Providers.USAJobs.APIKey = v
	}
}
