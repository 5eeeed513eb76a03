package config

import "fmt"

type Validation struct {
	Errors   []string
	Warnings []string
}

func (v *Validation) addErr(format string, args ...any) {
	v.Errors = append(v.Errors, fmt.Sprintf(format, args...))
}
func (v *Validation) addWarn(format string, args ...any) {
	v.Warnings = append(v.Warnings, fmt.Sprintf(format, args...))
}
func (v Validation) OK() bool { return len(v.Errors) == 0 }

// Validate checks cfg for startup problems. Missing provider credentials are
// warnings only: the adapter will fail upstream and the fallback path covers
// the response, so the process must still start.
func Validate(cfg Config) Validation {
	var res Validation

	if cfg.App.Port <= 0 || cfg.App.Port > 65535 {
		res.addErr("app.port must be in 1..65535, got %d", cfg.App.Port)
	}
	if cfg.RateLimit.Requests <= 0 {
		res.addErr("rate_limit.requests must be > 0")
	}
	if cfg.RateLimit.WindowSeconds <= 0 {
		res.addErr("rate_limit.window_seconds must be > 0")
	}

	if cfg.Providers.Adzuna.AppID == "" || cfg.Providers.Adzuna.AppKey == "" {
		res.addWarn("adzuna credentials not set; adzuna searches will fail upstream and serve fallback data")
	}
	if cfg.Providers.Reed.APIKey == "" {
		res.addWarn("reed api key not set; reed searches will fail upstream and serve fallback data")
	}
	if cfg.Providers.USAJobs.APIKey == "" {
		res.addWarn("usajobs api key not set; usajobs searches will fail upstream and serve fallback data")
	}

	return res
}
