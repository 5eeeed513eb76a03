package httpapi

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"jobboard-api/internal/aggregate"
	"jobboard-api/internal/domain"
	"jobboard-api/internal/fallback"
)

// Handler carries the request-path dependencies, constructed once in main.
type Handler struct {
	Searcher *aggregate.Searcher
	Services map[string]bool // provider name (lowercase) -> credentials present
	Logger   *zap.Logger
}

func queryFrom(r *http.Request) domain.Query {
	vals := r.URL.Query()
	page, _ := strconv.Atoi(vals.Get("page"))
	per, _ := strconv.Atoi(vals.Get("resultsPerPage"))
	return domain.Query{
		Keywords:       vals.Get("keywords"),
		Location:       vals.Get("location"),
		Page:           page,
		ResultsPerPage: per,
	}.Normalize()
}

// ProviderJobs serves one source's endpoint. Upstream failure is downgraded
// to a 500 that still carries fallback jobs; the upstream detail is only
// logged.
func (h *Handler) ProviderJobs(p domain.Provider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := queryFrom(r)

		res, err := p.Search(r.Context(), q)
		if err != nil {
			h.Logger.Error("provider fetch failed",
				zap.String("provider", p.Name()),
				zap.String("request_id", RequestIDFrom(r.Context())),
				zap.Error(err),
			)
			writeJSONStatus(w, http.StatusInternalServerError, FailureResponse{
				Error: fmt.Sprintf("Failed to fetch jobs from %s", p.Name()),
				Jobs:  fallback.Jobs(q.Keywords, q.Location, p.Name()),
			})
			return
		}

		writeJSON(w, JobsResponse{Success: true, Jobs: res.Jobs, Total: res.Total})
	}
}

// Search runs the combined, deduplicated search across the requested
// sources.
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	q := queryFrom(r)

	// nil means "no sources param": every provider. A param that names
	// nothing after trimming (e.g. "sources=,,") stays non-nil so it takes
	// the no-matching-sources path instead of widening to all providers.
	var sources []string
	if r.URL.Query().Has("sources") {
		sources = []string{}
		for _, s := range strings.Split(r.URL.Query().Get("sources"), ",") {
			if s = strings.TrimSpace(s); s != "" {
				sources = append(sources, s)
			}
		}
	}

	jobs, err := h.Searcher.Search(r.Context(), q, sources)
	if err != nil {
		h.Logger.Error("combined search failed",
			zap.Strings("sources", sources),
			zap.String("request_id", RequestIDFrom(r.Context())),
			zap.Error(err),
		)
		writeJSONStatus(w, http.StatusInternalServerError, FailureResponse{
			Error: "Failed to fetch jobs from multiple sources",
			Jobs:  fallback.Jobs(q.Keywords, q.Location, "Multiple Sources"),
		})
		return
	}

	if jobs == nil {
		jobs = []domain.Job{}
	}
	requested := sources
	if len(requested) == 0 {
		requested = h.Searcher.Names()
	}

	writeJSON(w, SearchResponse{
		Success: true,
		Jobs:    jobs,
		Total:   len(jobs),
		Sources: requested,
	})
}

// Health reports which providers have credentials configured. It performs no
// network I/O: "OK" never implies a provider is reachable.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, HealthResponse{
		Status:    "OK",
		Timestamp: time.Now().Format(time.RFC3339),
		Services:  h.Services,
	})
}
