// Package fallback produces synthetic job records for responses whose
// upstream provider failed, so every response still carries displayable
// content.
package fallback

import (
	"fmt"
	"strings"
	"time"

	"jobboard-api/internal/domain"
	"jobboard-api/internal/provider"
)

type template struct {
	title       string // fmt pattern taking the keywords
	company     string
	salary      string
	description string // fmt pattern taking keywords, location
}

var templates = [3]template{
	{
		title:       "Senior %s Developer",
		company:     "Tech Solutions Ltd",
		salary:      "£45000 - £65000",
		description: "We are looking for an experienced %s professional to lead projects for clients in %s.",
	},
	{
		title:       "%s Specialist",
		company:     "Digital Innovations Group",
		salary:      "£35000 - £50000",
		description: "Join our %s team and help build modern products from our %s office.",
	},
	{
		title:       "Junior %s Analyst",
		company:     "Startup Ventures",
		salary:      "£28000 - £38000",
		description: "Great first role for a %s enthusiast; hybrid working from %s.",
	},
}

// Jobs returns exactly three synthetic records for the given query and source
// tag. Content is deterministic apart from the shared millisecond id suffix;
// posted dates step back one day per record starting from today. Pure: no
// network, no shared state, never fails.
func Jobs(keywords, location, source string) []domain.Job {
	now := time.Now()
	millis := now.UnixMilli()
	slug := strings.ReplaceAll(strings.ToLower(source), " ", "-")

	jobs := make([]domain.Job, 0, len(templates))
	for i, tpl := range templates {
		jobs = append(jobs, domain.Job{
			ID:          fmt.Sprintf("fallback-%s-%d-%d", slug, millis, i+1),
			Title:       fmt.Sprintf(tpl.title, keywords),
			Company:     tpl.company,
			Location:    location,
			Description: fmt.Sprintf(tpl.description, keywords, location),
			Salary:      tpl.salary,
			URL:         domain.UnknownURL,
			Posted:      provider.FormatDate(now.AddDate(0, 0, -i)),
			Source:      source,
		})
	}
	return jobs
}
