package providers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// HTTPClientConfig bundles the HTTP client and request pacing settings.
type HTTPClientConfig struct {
	Client *http.Client

	// RequestsPerSecond caps outbound requests; zero disables pacing.
	RequestsPerSecond float64

	// Burst is how many requests may go out back to back before pacing
	// applies. Values below 1 are treated as 1.
	Burst int
}

var (
	// ErrUnexpectedStatus is returned for any non-2xx response.
	ErrUnexpectedStatus = errors.New("unexpected status code")

	// ErrCircuitOpen is returned once the provider has failed often enough
	// that further requests are refused without being sent.
	ErrCircuitOpen = errors.New("circuit breaker open")

	errNoHTTPClient = errors.New("http client not configured")
)

// maxBodyBytes bounds how much of a response is read into memory.
const maxBodyBytes = 4 << 20

// newLimiter returns nil when pacing is disabled.
func newLimiter(rps float64, burst int) *rate.Limiter {
	if rps <= 0 {
		return nil
	}
	if burst < 1 {
		burst = 1
	}
	return rate.NewLimiter(rate.Limit(rps), burst)
}

// getBody performs a single GET through the circuit breaker and returns the
// full response body. There are no retries: a failed request is final.
func getBody(
	ctx context.Context,
	cfg HTTPClientConfig,
	cb *gobreaker.CircuitBreaker,
	limiter *rate.Limiter,
	log *zap.Logger,
	u string,
) (string, error) {
	if cfg.Client == nil {
		return "", errNoHTTPClient
	}

	if limiter != nil {
		if err := limiter.Wait(ctx); err != nil {
			return "", fmt.Errorf("rate limit wait canceled: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	log.Debug("connecting", zap.String("url", u))

	result, err := cb.Execute(func() (interface{}, error) {
		resp, execErr := cfg.Client.Do(req)
		if execErr != nil {
			return nil, execErr
		}
		defer resp.Body.Close()

		log.Debug("http status", zap.Int("code", resp.StatusCode), zap.String("status", resp.Status))

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return nil, fmt.Errorf("%w: %s", ErrUnexpectedStatus, resp.Status)
		}

		body, readErr := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
		if readErr != nil {
			return nil, fmt.Errorf("failed to read response body: %w", readErr)
		}
		return string(body), nil
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return "", fmt.Errorf("%w: %v", ErrCircuitOpen, err)
		}
		return "", err
	}

	body, ok := result.(string)
	if !ok {
		return "", fmt.Errorf("unexpected result type from circuit breaker")
	}
	return body, nil
}
