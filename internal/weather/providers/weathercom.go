package providers

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/i474232898/wet/internal/weather"
	"github.com/sony/gobreaker"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// DefaultBaseURL is the host serving both the search and the weather documents.
const DefaultBaseURL = "http://wxdata.weather.com"

const (
	searchPath  = "/wxdata/search/search"
	weatherPath = "/wxdata/weather/local/"
)

// tripAfter is the run of consecutive failures that opens the circuit. A
// single lookup makes at most two calls, so the breaker only opens for a
// provider reused across many lookups.
const tripAfter = 6

// WeatherComProvider implements the weather.Provider interface for the
// weather.com XML data feed.
type WeatherComProvider struct {
	name    string
	baseURL string
	httpCfg HTTPClientConfig
	circuit *gobreaker.CircuitBreaker
	limiter *rate.Limiter
	log     *zap.Logger
}

// Ensure WeatherComProvider implements weather.Provider.
var _ weather.Provider = (*WeatherComProvider)(nil)

func NewWeatherComProvider(baseURL string, cfg HTTPClientConfig, log *zap.Logger) *WeatherComProvider {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if log == nil {
		log = zap.NewNop()
	}

	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "weathercom",
		MaxRequests: 1,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= tripAfter
		},
	})

	return &WeatherComProvider{
		name:    "weathercom",
		baseURL: strings.TrimRight(baseURL, "/"),
		httpCfg: cfg,
		circuit: cb,
		limiter: newLimiter(cfg.RequestsPerSecond, cfg.Burst),
		log:     log.With(zap.String("provider", "weathercom")),
	}
}

func (p *WeatherComProvider) Name() string {
	return p.name
}

// SearchLocation returns the search document for a free-text location.
func (p *WeatherComProvider) SearchLocation(ctx context.Context, query string) (string, error) {
	u := fmt.Sprintf("%s%s?where=%s", p.baseURL, searchPath, EscapeQuery(query))
	return getBody(ctx, p.httpCfg, p.circuit, p.limiter, p.log, u)
}

// FetchWeather returns the current conditions and 5-day forecast document for
// a location identifier.
func (p *WeatherComProvider) FetchWeather(ctx context.Context, locationID string, units weather.Units) (string, error) {
	unit := "m"
	if units == weather.UnitsImperial {
		unit = ""
	}

	u := fmt.Sprintf("%s%s%s?unit=%s&dayf=%d&cc=*",
		p.baseURL, weatherPath, url.PathEscape(locationID), unit, weather.ForecastDays)
	return getBody(ctx, p.httpCfg, p.circuit, p.limiter, p.log, u)
}
