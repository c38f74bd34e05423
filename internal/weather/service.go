package weather

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// Service resolves a free-text location and fetches its weather record.
type Service struct {
	provider Provider
	log      *zap.Logger
}

// NewService creates a new Service. A nil logger disables logging.
func NewService(provider Provider, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		provider: provider,
		log:      log,
	}
}

// Lookup runs the two provider requests in order: the location search, then
// the weather fetch for the identifier it produced. The weather request is
// never issued when the search finds nothing.
func (s *Service) Lookup(ctx context.Context, query string, units Units) (Record, error) {
	doc, err := s.provider.SearchLocation(ctx, query)
	if err != nil {
		return Record{}, fmt.Errorf("location search via %s: %w", s.provider.Name(), err)
	}

	id := ExtractLocationID(doc)
	if id == "" {
		return Record{}, fmt.Errorf("%w: %q", ErrLocationNotFound, query)
	}
	s.log.Debug("resolved location", zap.String("query", query), zap.String("id", id))

	doc, err = s.provider.FetchWeather(ctx, id, units)
	if err != nil {
		return Record{}, fmt.Errorf("weather fetch via %s: %w", s.provider.Name(), err)
	}

	rec := Extract(doc)
	rec.LocationID = id

	if rec.Error.Kind != "" || rec.Error.Message != "" {
		s.log.Debug("provider reported an error",
			zap.String("type", rec.Error.Kind),
			zap.String("message", rec.Error.Message),
		)
		if rec.Error.Message != "" {
			return rec, &ProviderError{Kind: rec.Error.Kind, Message: rec.Error.Message}
		}
		return rec, ErrNoWeatherData
	}

	return rec, nil
}
