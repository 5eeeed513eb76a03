package httpapi

import (
	"net/http"
	"strings"

	"jobboard-api/internal/domain"
)

// Routes mounts one endpoint per provider plus the combined search and
// health. Adding a provider means adding it to the slice in main; the path
// comes from its name.
func Routes(h *Handler, providers []domain.Provider) http.Handler {
	mux := http.NewServeMux()
	for _, p := range providers {
		mux.HandleFunc("/api/jobs/"+strings.ToLower(p.Name()), h.ProviderJobs(p))
	}
	mux.HandleFunc("/api/jobs/search", h.Search)
	mux.HandleFunc("/api/health", h.Health)
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not found")
	})
	return mux
}
