package usajobs

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobboard-api/internal/domain"
)

const searchPayload = `{
	"SearchResult": {
		"SearchResultCountAll": 132,
		"SearchResultItems": [
			{
				"MatchedObjectId": "830001200",
				"MatchedObjectDescriptor": {
					"PositionTitle": "IT Specialist (APPSW)",
					"OrganizationName": "Department of the Treasury",
					"PositionLocationDisplay": "Washington, District of Columbia",
					"PositionURI": "https://www.usajobs.gov/job/830001200",
					"PublicationStartDate": "2026-01-10",
					"PositionRemuneration": [
						{"MinimumRange": "99200.0", "MaximumRange": "153354.0"}
					],
					"UserArea": {"Details": {"JobSummary": "Develop &amp; maintain <b>software</b> systems."}}
				}
			},
			{
				"MatchedObjectId": "830001201",
				"MatchedObjectDescriptor": {
					"PositionTitle": "Program Analyst",
					"OrganizationName": "",
					"PositionLocationDisplay": "",
					"PositionURI": "",
					"PublicationStartDate": "soon",
					"PositionRemuneration": [],
					"UserArea": {"Details": {"JobSummary": ""}}
				}
			}
		]
	}
}`

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c := New(Config{APIKey: "usajobs-key"})
	c.base = srv.URL
	c.hc = srv.Client()
	return c
}

func TestSearch_HeadersAndMapping(t *testing.T) {
	var authKey, keyword, location string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		authKey = r.Header.Get("Authorization-Key")
		keyword = r.URL.Query().Get("Keyword")
		location = r.URL.Query().Get("LocationName")
		w.Write([]byte(searchPayload))
	})

	res, err := c.Search(context.Background(), domain.Query{Keywords: "software", Location: "Washington"})
	require.NoError(t, err)

	assert.Equal(t, "usajobs-key", authKey)
	assert.Equal(t, "software", keyword)
	assert.Equal(t, "Washington", location)

	require.Len(t, res.Jobs, 2)
	assert.Equal(t, 132, res.Total)

	j := res.Jobs[0]
	assert.Equal(t, "830001200", j.ID)
	assert.Equal(t, "IT Specialist (APPSW)", j.Title)
	assert.Equal(t, "Department of the Treasury", j.Company)
	assert.Equal(t, "Washington, District of Columbia", j.Location)
	assert.Equal(t, "Develop & maintain software systems.", j.Description)
	assert.Equal(t, "$99200 - $153354", j.Salary, "US-market records use the dollar symbol")
	assert.Equal(t, "10/01/2026", j.Posted)
	assert.Equal(t, "USAJobs", j.Source)

	j = res.Jobs[1]
	assert.Equal(t, domain.UnknownCompany, j.Company)
	assert.Equal(t, domain.UnknownLocation, j.Location)
	assert.Equal(t, domain.UnknownDescription, j.Description)
	assert.Equal(t, domain.UnknownSalary, j.Salary)
	assert.Equal(t, domain.UnknownPosted, j.Posted)
	assert.Equal(t, domain.UnknownURL, j.URL)
}

func TestSearch_RFC3339Publication(t *testing.T) {
	assert.Equal(t, "15/01/2026", formatPublication("2026-01-15T08:00:00Z"))
	assert.Equal(t, "15/01/2026", formatPublication("2026-01-15T08:00:00.1234567"))
	assert.Equal(t, domain.UnknownPosted, formatPublication(""))
}

func TestSearch_UpstreamErrorSurfaces(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, err := c.Search(context.Background(), domain.Query{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "usajobs search")
}

func TestNew_PlaceholderKey(t *testing.T) {
	c := New(Config{})
	assert.Equal(t, placeholderAPIKey, c.cfg.APIKey)
}
