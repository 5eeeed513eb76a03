package usajobs

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"jobboard-api/internal/domain"
	"jobboard-api/internal/provider"
)

const (
	defaultBaseURL = "https://data.usajobs.gov/api/search"
	apiHost        = "data.usajobs.gov"
)

const placeholderAPIKey = "your-usajobs-api-key"

// Publication timestamps arrive in a few shapes depending on the feed.
var dateLayouts = []string{time.RFC3339, "2006-01-02T15:04:05.9999999", "2006-01-02"}

type Config struct {
	APIKey string
}

// Client searches the USAJobs REST API.
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

func (c *Client) Name() string { return "USAJobs" }

type remuneration struct {
	MinimumRange string `json:"MinimumRange"`
	MaximumRange string `json:"MaximumRange"`
}

type descriptor struct {
	PositionTitle           string         `json:"PositionTitle"`
	OrganizationName        string         `json:"OrganizationName"`
	PositionLocationDisplay string         `json:"PositionLocationDisplay"`
	PositionURI             string         `json:"PositionURI"`
	PublicationStartDate    string         `json:"PublicationStartDate"`
	PositionRemuneration    []remuneration `json:"PositionRemuneration"`
	UserArea                struct {
		Details struct {
			JobSummary string `json:"JobSummary"`
		} `json:"Details"`
	} `json:"UserArea"`
}

type searchItem struct {
	MatchedObjectID         string     `json:"MatchedObjectId"`
	MatchedObjectDescriptor descriptor `json:"MatchedObjectDescriptor"`
}

type searchResponse struct {
	SearchResult struct {
		SearchResultItems    []searchItem `json:"SearchResultItems"`
		SearchResultCountAll int          `json:"SearchResultCountAll"`
	} `json:"SearchResult"`
}

// Search issues one GET against the USAJobs search endpoint and normalizes
// the result items. Salaries are US-market, so the dollar symbol applies.
func (c *Client) Search(ctx context.Context, q domain.Query) (domain.Result, error) {
	q = q.Normalize()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base, nil)
	if err != nil {
		return domain.Result{}, fmt.Errorf("usajobs search: %w", err)
	}
	// USAJobs authenticates with a key header plus Host and User-Agent.
	req.Header.Set("Authorization-Key", c.cfg.APIKey)
	req.Host = apiHost

	vals := url.Values{}
	vals.Set("Keyword", q.Keywords)
	vals.Set("LocationName", q.Location)
	vals.Set("ResultsPerPage", strconv.Itoa(q.ResultsPerPage))
	req.URL.RawQuery = vals.Encode()

	var resp searchResponse
	if err := provider.GetJSON(c.hc, req, &resp); err != nil {
		return domain.Result{}, fmt.Errorf("usajobs search: %w", err)
	}

	items := resp.SearchResult.SearchResultItems
	jobs := make([]domain.Job, 0, len(items))
	for i, it := range items {
		d := it.MatchedObjectDescriptor

		id := it.MatchedObjectID
		if id == "" {
			id = fmt.Sprintf("usajobs-%d", i+1)
		}

		var min, max float64
		if len(d.PositionRemuneration) > 0 {
			min, _ = strconv.ParseFloat(d.PositionRemuneration[0].MinimumRange, 64)
			max, _ = strconv.ParseFloat(d.PositionRemuneration[0].MaximumRange, 64)
		}

		jobs = append(jobs, domain.Job{
			ID:          id,
			Title:       provider.OrPlaceholder(d.PositionTitle, domain.UnknownTitle),
			Company:     provider.OrPlaceholder(d.OrganizationName, domain.UnknownCompany),
			Location:    provider.OrPlaceholder(d.PositionLocationDisplay, domain.UnknownLocation),
			Description: provider.CleanDescription(d.UserArea.Details.JobSummary),
			Salary:      provider.FormatSalary("$", min, max),
			URL:         provider.OrPlaceholder(d.PositionURI, domain.UnknownURL),
			Posted:      formatPublication(d.PublicationStartDate),
			Source:      c.Name(),
		})
	}

	return domain.Result{Jobs: jobs, Total: resp.SearchResult.SearchResultCountAll}, nil
}

func formatPublication(raw string) string {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return provider.FormatDate(t)
		}
	}
	return domain.UnknownPosted
}
