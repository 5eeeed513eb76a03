package httpapi

import "jobboard-api/internal/domain"

type JobsResponse struct {
	Success bool         `json:"success"`
	Jobs    []domain.Job `json:"jobs"`
	Total   int          `json:"total"`
}

type SearchResponse struct {
	Success bool         `json:"success"`
	Jobs    []domain.Job `json:"jobs"`
	Total   int          `json:"total"`
	Sources []string     `json:"sources"`
}

// FailureResponse still carries jobs: a failed upstream is answered with
// fallback records so consumers always have displayable content.
type FailureResponse struct {
	Success bool         `json:"success"`
	Error   string       `json:"error"`
	Jobs    []domain.Job `json:"jobs"`
}

// HealthResponse reports credential presence per provider, not upstream
// reachability.
type HealthResponse struct {
	Status    string          `json:"status"`
	Timestamp string          `json:"timestamp"`
	Services  map[string]bool `json:"services"`
}
