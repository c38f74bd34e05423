package weather

import (
	"context"
	"errors"
	"fmt"
)

// Provider abstracts the remote weather service. Both calls return the raw
// response document; interpreting it is the extractor's job.
type Provider interface {
	Name() string
	SearchLocation(ctx context.Context, query string) (string, error)
	FetchWeather(ctx context.Context, locationID string, units Units) (string, error)
}

var (
	// ErrLocationNotFound is returned when the location search yields no identifier.
	ErrLocationNotFound = errors.New("location not found")

	// ErrNoWeatherData is returned when the provider flags an error without
	// saying what went wrong.
	ErrNoWeatherData = errors.New("failed to retrieve weather data")
)

// ProviderError carries the error block the provider embedded in its document.
type ProviderError struct {
	Kind    string
	Message string
}

func (e *ProviderError) Error() string {
	if e.Kind != "" {
		return fmt.Sprintf("weather: %s (type %s)", e.Message, e.Kind)
	}
	return "weather: " + e.Message
}
