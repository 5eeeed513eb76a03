package reed

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"jobboard-api/internal/domain"
	"jobboard-api/internal/provider"
)

const defaultBaseURL = "https://www.reed.co.uk/api/1.0/search"

// Reed authenticates with HTTP Basic: the key as username, blank password.
const placeholderAPIKey = "your-reed-api-key"

type Config struct {
	APIKey string
}

// Client searches the Reed jobseeker API.
type Client struct {
	cfg  Config
	hc   *http.Client
	base string
}

func New(cfg Config) *Client {
	if cfg.APIKey == "" {
		cfg.APIKey = placeholderAPIKey
	}
	return &Client{
		cfg:  cfg,
		hc:   provider.NewHTTPClient(),
		base: defaultBaseURL,
	}
}

func (c *Client) Name() string { return "Reed" }

type reedResult struct {
	JobID          int64   `json:"jobId"`
	JobTitle       string  `json:"jobTitle"`
	EmployerName   string  `json:"employerName"`
	LocationName   string  `json:"locationName"`
	JobDescription string  `json:"jobDescription"`
	JobURL         string  `json:"jobUrl"`
	MinimumSalary  float64 `json:"minimumSalary"`
	MaximumSalary  float64 `json:"maximumSalary"`
	Date           string  `json:"date"`
}

type reedResponse struct {
	Results      []reedResult `json:"results"`
	TotalResults int          `json:"totalResults"`
}

// Search issues one GET against the Reed search endpoint and normalizes the
// result items. Reed already reports dates as DD/MM/YYYY, so they pass
// through untouched.
func (c *Client) Search(ctx context.Context, q domain.Query) (domain.Result, error) {
	q = q.Normalize()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base, nil)
	if err != nil {
		return domain.Result{}, fmt.Errorf("reed search: %w", err)
	}
	req.SetBasicAuth(c.cfg.APIKey, "")

	vals := url.Values{}
	vals.Set("keywords", q.Keywords)
	vals.Set("locationName", q.Location)
	vals.Set("resultsToTake", strconv.Itoa(q.ResultsPerPage))
	req.URL.RawQuery = vals.Encode()

	var resp reedResponse
	if err := provider.GetJSON(c.hc, req, &resp); err != nil {
		return domain.Result{}, fmt.Errorf("reed search: %w", err)
	}

	jobs := make([]domain.Job, 0, len(resp.Results))
	for i, r := range resp.Results {
		id := strconv.FormatInt(r.JobID, 10)
		if r.JobID == 0 {
			id = fmt.Sprintf("reed-%d", i+1)
		}

		jobs = append(jobs, domain.Job{
			ID:          id,
			Title:       provider.OrPlaceholder(r.JobTitle, domain.UnknownTitle),
			Company:     provider.OrPlaceholder(r.EmployerName, domain.UnknownCompany),
			Location:    provider.OrPlaceholder(r.LocationName, domain.UnknownLocation),
			Description: provider.CleanDescription(r.JobDescription),
			Salary:      provider.FormatSalary("£", r.MinimumSalary, r.MaximumSalary),
			URL:         provider.OrPlaceholder(r.JobURL, domain.UnknownURL),
			Posted:      provider.OrPlaceholder(r.Date, domain.UnknownPosted),
			Source:      c.Name(),
		})
	}

	return domain.Result{Jobs: jobs, Total: resp.TotalResults}, nil
}
