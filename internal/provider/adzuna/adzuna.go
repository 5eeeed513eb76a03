package adzuna

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"jobboard-api/internal/domain"
	"jobboard-api/internal/provider"
)

// GB market endpoint; page number is a path segment.
const defaultBaseURL = "https://api.adzuna.com/v1/api/jobs/gb/search"

// Placeholder credentials keep startup alive without keys. Requests made with
// them fail upstream and the HTTP layer serves fallback data instead.
const (
	placeholderAppID  = "your-adzuna-app-id"
	placeholderAppKey = "your-adzuna-app-key"
)

type Config struct {
	AppID  string
	AppKey string
}

// Client searches the Adzuna jobs API.
type Client struct {
	cfg  Config
	hc   *http.Client
	base string
}

func New(cfg Config) *Client {
	if cfg.AppID == "" {
		cfg.AppID = placeholderAppID
	}
	if cfg.AppKey == "" {
		cfg.AppKey = placeholderAppKey
	}
	return &Client{
		cfg:  cfg,
		hc:   provider.NewHTTPClient(),
		base: defaultBaseURL,
	}
}

func (c *Client) Name() string { return "Adzuna" }

type adzunaName struct {
	DisplayName string `json:"display_name"`
}

// adzunaID tolerates both id shapes the API has served: a JSON string and a
// bare number. Numbers are rendered as their literal digits.
type adzunaID string

func (a *adzunaID) UnmarshalJSON(b []byte) error {
	var n json.Number
	if err := json.Unmarshal(b, &n); err == nil {
		*a = adzunaID(n.String())
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("adzuna id: %w", err)
	}
	*a = adzunaID(s)
	return nil
}

type adzunaResult struct {
	ID          adzunaID   `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	RedirectURL string     `json:"redirect_url"`
	SalaryMin   float64    `json:"salary_min"`
	SalaryMax   float64    `json:"salary_max"`
	Created     string     `json:"created"`
	Company     adzunaName `json:"company"`
	Location    adzunaName `json:"location"`
}

type adzunaResponse struct {
	Results []adzunaResult `json:"results"`
	Count   int            `json:"count"`
}

// Search issues one GET against the Adzuna search endpoint and normalizes
// the result items.
func (c *Client) Search(ctx context.Context, q domain.Query) (domain.Result, error) {
	q = q.Normalize()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/%d", c.base, q.Page), nil)
	if err != nil {
		return domain.Result{}, fmt.Errorf("adzuna search: %w", err)
	}

	vals := url.Values{}
	vals.Set("app_id", c.cfg.AppID)
	vals.Set("app_key", c.cfg.AppKey)
	vals.Set("what", q.Keywords)
	vals.Set("where", q.Location)
	vals.Set("results_per_page", strconv.Itoa(q.ResultsPerPage))
	vals.Set("content-type", "application/json")
	req.URL.RawQuery = vals.Encode()

	var resp adzunaResponse
	if err := provider.GetJSON(c.hc, req, &resp); err != nil {
		return domain.Result{}, fmt.Errorf("adzuna search: %w", err)
	}

	jobs := make([]domain.Job, 0, len(resp.Results))
	for i, r := range resp.Results {
		id := string(r.ID)
		if id == "" {
			id = fmt.Sprintf("adzuna-%d", i+1)
		}

		posted := domain.UnknownPosted
		if t, err := time.Parse(time.RFC3339, r.Created); err == nil {
			posted = provider.FormatDate(t)
		}

		jobs = append(jobs, domain.Job{
			ID:          id,
			Title:       provider.OrPlaceholder(r.Title, domain.UnknownTitle),
			Company:     provider.OrPlaceholder(r.Company.DisplayName, domain.UnknownCompany),
			Location:    provider.OrPlaceholder(r.Location.DisplayName, domain.UnknownLocation),
			Description: provider.CleanDescription(r.Description),
			Salary:      provider.FormatSalary("£", r.SalaryMin, r.SalaryMax),
			URL:         provider.OrPlaceholder(r.RedirectURL, domain.UnknownURL),
			Posted:      posted,
			Source:      c.Name(),
		})
	}

	return domain.Result{Jobs: jobs, Total: resp.Count}, nil
}
