package livecontext

import (
	"context"
	"fmt"
	"strings"

	"concierge/models"

	"go.uber.org/zap"
)

const (
	maxBullets   = 3
	maxBulletLen = 200
	// noResults stands in for a sub-query that yielded nothing usable;
	// a single failed sub-query never aborts the other two.
	noResults = "No quick results."
)

// Fetcher gathers short weather/POI/event bullets for a booking. It never
// fails the overall request.
type Fetcher interface {
	Fetch(ctx context.Context, location, startDate, endDate string) models.LiveContext
}

// DefaultFetcher issues three independent Tavily searches. With no search
// client configured it returns deterministic placeholders so the pipeline
// still works end to end.
type DefaultFetcher struct {
	Search *TavilyClient
	Logger *zap.Logger
}

func NewDefaultFetcher(apiKey string, logger *zap.Logger) *DefaultFetcher {
	f := &DefaultFetcher{Logger: logger}
	if apiKey != "" {
		f.Search = NewTavilyClient(apiKey)
	}
	return f
}

func (f *DefaultFetcher) Fetch(ctx context.Context, location, startDate, endDate string) models.LiveContext {
	if f.Search == nil {
		return placeholderContext(location, startDate, endDate)
	}

	weatherQ := fmt.Sprintf("%s weather %s to %s forecast", location, startDate, endDate)
	poiQ := fmt.Sprintf("things to do in %s attractions", location)
	eventsQ := fmt.Sprintf("events in %s %s to %s", location, startDate, endDate)

	return models.LiveContext{
		Weather: f.brief(ctx, weatherQ),
		POIs:    f.brief(ctx, poiQ),
		Events:  f.brief(ctx, eventsQ),
	}
}

// brief runs one search and reduces it to at most 3 short bullets,
// preferring titles over content snippets.
func (f *DefaultFetcher) brief(ctx context.Context, query string) []string {
	results, err := f.Search.Search(ctx, query)
	if err != nil {
		f.Logger.Warn("Live context search failed", zap.String("query", query), zap.Error(err))
		return []string{noResults}
	}

	var bullets []string
	for _, item := range results {
		if len(bullets) >= maxBullets {
			break
		}
		txt := item.Title
		if txt == "" {
			txt = item.Content
		}
		txt = strings.TrimSpace(txt)
		if txt == "" {
			continue
		}
		if r := []rune(txt); len(r) > maxBulletLen {
			txt = string(r[:maxBulletLen])
		}
		bullets = append(bullets, txt)
	}
	if len(bullets) == 0 {
		return []string{noResults}
	}
	return bullets
}

func placeholderContext(location, startDate, endDate string) models.LiveContext {
	return models.LiveContext{
		Weather: []string{fmt.Sprintf("Weather info for %s (%s to %s) not fetched (no TAVILY_API_KEY).", location, startDate, endDate)},
		POIs:    []string{"Top attractions list placeholder."},
		Events:  []string{"Local events placeholder."},
	}
}
