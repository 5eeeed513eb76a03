package domain

import "context"

// Placeholder values substituted for missing provider fields so that every
// Job field is always a non-empty string.
const (
	UnknownTitle       = "Untitled position"
	UnknownCompany     = "Unknown Company"
	UnknownLocation    = "Location not specified"
	UnknownSalary      = "Salary not specified"
	UnknownDescription = "No description available"
	UnknownPosted      = "Recently posted"
	UnknownURL         = "#"
)

// Job is the unified representation of one listing from any source.
type Job struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	Description string `json:"description"`
	Salary      string `json:"salary"`
	URL         string `json:"url"`
	Posted      string `json:"posted"`
	Source      string `json:"source"`
}

// Defaults applied by Query.Normalize.
const (
	DefaultKeywords       = "software engineer"
	DefaultLocation       = "london"
	DefaultPage           = 1
	DefaultResultsPerPage = 20
)

// Query is the generic search input shared by all providers.
type Query struct {
	Keywords       string
	Location       string
	Page           int
	ResultsPerPage int
}

// Normalize returns a copy with defaults filled in for zero values.
func (q Query) Normalize() Query {
	if q.Keywords == "" {
		q.Keywords = DefaultKeywords
	}
	if q.Location == "" {
		q.Location = DefaultLocation
	}
	if q.Page <= 0 {
		q.Page = DefaultPage
	}
	if q.ResultsPerPage <= 0 {
		q.ResultsPerPage = DefaultResultsPerPage
	}
	return q
}

// Result is one provider's answer to a Query.
type Result struct {
	Jobs  []Job
	Total int // provider-reported count, not len(Jobs)
}

// Provider searches one external job source and maps its response into the
// unified Job shape.
type Provider interface {
	Name() string
	Search(ctx context.Context, q Query) (Result, error)
}
