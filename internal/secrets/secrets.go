package secrets

import (
	"os"
	"strings"

	"github.com/zalando/go-keyring"
)

// Service groups this app's secrets in the OS keychain.
const Service = "jobboard"

// Lookup resolves one credential: environment variable first, OS keyring
// second. Returns "" when neither holds a non-empty value; callers decide
// what an unset credential means.
func Lookup(envKey, account string) string {
	if v := strings.TrimSpace(os.Getenv(envKey)); v != "" {
		return v
	}
	if v, err := keyring.Get(Service, account); err == nil {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
