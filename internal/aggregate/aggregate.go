// Package aggregate fans a search out across several providers and merges
// their results into one deduplicated list.
package aggregate

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"jobboard-api/internal/domain"
)

// ErrNoSources is returned when the requested source list matches no known
// provider.
var ErrNoSources = errors.New("no matching sources")

// Searcher holds the providers in their fixed merge order.
type Searcher struct {
	providers []domain.Provider
	logger    *zap.Logger
}

func New(logger *zap.Logger, providers ...domain.Provider) *Searcher {
	return &Searcher{providers: providers, logger: logger}
}

// Names lists the provider names in merge order.
func (s *Searcher) Names() []string {
	names := make([]string, 0, len(s.providers))
	for _, p := range s.providers {
		names = append(names, p.Name())
	}
	return names
}

// Search queries the selected providers concurrently and merges their
// results. sources selects providers by name (case-insensitive); a nil list
// means all of them, while a non-nil list that matches no known provider
// yields ErrNoSources. A provider error is logged and contributes zero
// jobs; it never cancels the other branches. The merged list keeps the
// constructor's provider order regardless of completion order, preserves
// per-provider item order, and drops later records whose (title, company)
// pair was already seen.
func (s *Searcher) Search(ctx context.Context, q domain.Query, sources []string) ([]domain.Job, error) {
	selected := s.selectProviders(sources)
	if len(selected) == 0 {
		return nil, ErrNoSources
	}
	q = q.Normalize()

	results := make([][]domain.Job, len(selected))
	var g errgroup.Group
	for i, p := range selected {
		i, p := i, p
		g.Go(func() error {
			res, err := p.Search(ctx, q)
			if err != nil {
				// best-effort: this branch simply contributes nothing
				s.logger.Warn("provider search failed",
					zap.String("provider", p.Name()),
					zap.Error(err),
				)
				return nil
			}
			results[i] = res.Jobs
			return nil
		})
	}
	_ = g.Wait()

	seen := make(map[string]bool)
	var merged []domain.Job
	for _, jobs := range results {
		for _, j := range jobs {
			key := j.Title + "\x00" + j.Company
			if seen[key] {
				continue
			}
			seen[key] = true
			merged = append(merged, j)
		}
	}
	return merged, nil
}

// selectProviders filters by requested name, keeping the fixed provider
// order. Unknown names are skipped.
func (s *Searcher) selectProviders(sources []string) []domain.Provider {
	if sources == nil {
		return s.providers
	}

	want := make(map[string]bool, len(sources))
	for _, src := range sources {
		if src = strings.ToLower(strings.TrimSpace(src)); src != "" {
			want[src] = true
		}
	}

	var selected []domain.Provider
	for _, p := range s.providers {
		if want[strings.ToLower(p.Name())] {
			selected = append(selected, p)
		}
	}
	return selected
}
