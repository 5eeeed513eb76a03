package fallback

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobboard-api/internal/provider"
)

func TestJobs_ShapeAndContent(t *testing.T) {
	jobs := Jobs("data", "Berlin", "X")

	require.Len(t, jobs, 3)
	for _, j := range jobs {
		assert.Contains(t, j.Title, "data")
		assert.Equal(t, "Berlin", j.Location)
		assert.Equal(t, "X", j.Source)
		assert.NotEmpty(t, j.Company)
		assert.NotEmpty(t, j.Salary)
		assert.NotEmpty(t, j.Description)
		assert.NotEmpty(t, j.URL)
	}
}

func TestJobs_PostedDatesStepBackDaily(t *testing.T) {
	jobs := Jobs("data", "Berlin", "X")
	now := time.Now()

	for i, j := range jobs {
		assert.Equal(t, provider.FormatDate(now.AddDate(0, 0, -i)), j.Posted, "record %d", i+1)
	}
}

func TestJobs_IDsShareTimestampSuffix(t *testing.T) {
	jobs := Jobs("go", "London", "Adzuna")

	var millis int64
	_, err := fmt.Sscanf(jobs[0].ID, "fallback-adzuna-%d-1", &millis)
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("fallback-adzuna-%d-2", millis), jobs[1].ID)
	assert.Equal(t, fmt.Sprintf("fallback-adzuna-%d-3", millis), jobs[2].ID)
}

func TestJobs_SourceSlugInID(t *testing.T) {
	jobs := Jobs("go", "London", "Multiple Sources")
	assert.True(t, strings.HasPrefix(jobs[0].ID, "fallback-multiple-sources-"))
	assert.Equal(t, "Multiple Sources", jobs[0].Source)
}
