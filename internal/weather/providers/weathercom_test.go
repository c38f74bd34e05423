package providers

import (
	"context"
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/i474232898/wet/internal/weather"
)

const searchDoc = `<search ver="3.0"><loc id="USNY0996" type="1">New York, NY</loc></search>`

// startFakeFeed serves a fiber app on a loopback port and returns its base URL.
func startFakeFeed(t *testing.T, register func(app *fiber.App)) string {
	t.Helper()

	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	register(app)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	go func() { _ = app.Listener(ln) }()
	t.Cleanup(func() { _ = app.Shutdown() })

	return "http://" + ln.Addr().String()
}

func newTestProvider(baseURL string) *WeatherComProvider {
	return NewWeatherComProvider(baseURL, HTTPClientConfig{
		Client: &http.Client{Timeout: 5 * time.Second},
	}, nil)
}

func TestSearchLocation(t *testing.T) {
	var rawQuery string
	base := startFakeFeed(t, func(app *fiber.App) {
		app.Get("/wxdata/search/search", func(c *fiber.Ctx) error {
			rawQuery = string(c.Request().URI().QueryString())
			c.Type("xml")
			return c.SendString(searchDoc)
		})
	})

	doc, err := newTestProvider(base).SearchLocation(context.Background(), "New York, NY")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc != searchDoc {
		t.Errorf("expected body to be returned verbatim, got %q", doc)
	}
	if rawQuery != "where=New%20York%2C%20NY" {
		t.Errorf("unexpected query string %q", rawQuery)
	}
}

func TestFetchWeatherUnits(t *testing.T) {
	type request struct{ id, unit, dayf, cc string }
	var got request

	base := startFakeFeed(t, func(app *fiber.App) {
		app.Get("/wxdata/weather/local/:id", func(c *fiber.Ctx) error {
			got = request{c.Params("id"), c.Query("unit"), c.Query("dayf"), c.Query("cc")}
			return c.SendString("<weather/>")
		})
	})
	p := newTestProvider(base)

	if _, err := p.FetchWeather(context.Background(), "USNY0996", weather.UnitsMetric); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != (request{"USNY0996", "m", "5", "*"}) {
		t.Errorf("unexpected metric request %+v", got)
	}

	if _, err := p.FetchWeather(context.Background(), "USNY0996", weather.UnitsImperial); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.unit != "" {
		t.Errorf("imperial request must send an empty unit, got %q", got.unit)
	}
}

func TestFollowsRedirects(t *testing.T) {
	base := startFakeFeed(t, func(app *fiber.App) {
		app.Get("/wxdata/search/search", func(c *fiber.Ctx) error {
			return c.Redirect("/moved", fiber.StatusFound)
		})
		app.Get("/moved", func(c *fiber.Ctx) error {
			return c.SendString(searchDoc)
		})
	})

	doc, err := newTestProvider(base).SearchLocation(context.Background(), "x")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc != searchDoc {
		t.Errorf("expected redirected body, got %q", doc)
	}
}

func TestNon2xxIsAnError(t *testing.T) {
	base := startFakeFeed(t, func(app *fiber.App) {
		app.Get("/wxdata/search/search", func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusServiceUnavailable).SendString("down for maintenance")
		})
	})

	_, err := newTestProvider(base).SearchLocation(context.Background(), "x")
	if !errors.Is(err, ErrUnexpectedStatus) {
		t.Fatalf("expected ErrUnexpectedStatus, got %v", err)
	}
	if !strings.Contains(err.Error(), "503") {
		t.Errorf("expected status in error, got %v", err)
	}
}

func TestConnectionFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	base := srv.URL
	srv.Close()

	_, err := newTestProvider(base).SearchLocation(context.Background(), "x")
	if err == nil {
		t.Fatal("expected a transport error")
	}
	if errors.Is(err, ErrUnexpectedStatus) {
		t.Fatalf("connection failure must not look like a status error: %v", err)
	}
}

func TestCircuitOpensAfterRepeatedFailures(t *testing.T) {
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	p := newTestProvider(srv.URL)
	for i := 0; i < tripAfter; i++ {
		if _, err := p.SearchLocation(context.Background(), "x"); !errors.Is(err, ErrUnexpectedStatus) {
			t.Fatalf("attempt %d: expected status error, got %v", i, err)
		}
	}

	_, err := p.SearchLocation(context.Background(), "x")
	if !errors.Is(err, ErrCircuitOpen) {
		t.Fatalf("expected ErrCircuitOpen, got %v", err)
	}
	if hits != tripAfter {
		t.Errorf("open circuit must not reach the server, got %d hits", hits)
	}
}

func TestRequestPacing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(searchDoc))
	}))
	defer srv.Close()

	p := NewWeatherComProvider(srv.URL, HTTPClientConfig{
		Client:            srv.Client(),
		RequestsPerSecond: 0.001,
	}, nil)

	if _, err := p.SearchLocation(context.Background(), "x"); err != nil {
		t.Fatalf("first request: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	if _, err := p.SearchLocation(ctx, "x"); err == nil {
		t.Fatal("expected the second request to be held back by the limiter")
	}
}

func TestBurstAllowsBackToBackRequests(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(searchDoc))
	}))
	defer srv.Close()

	p := NewWeatherComProvider(srv.URL, HTTPClientConfig{
		Client:            srv.Client(),
		RequestsPerSecond: 0.001,
		Burst:             2,
	}, nil)

	for i := 0; i < 2; i++ {
		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		_, err := p.SearchLocation(ctx, "x")
		cancel()
		if err != nil {
			t.Fatalf("request %d within the burst was held back: %v", i+1, err)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	if _, err := p.SearchLocation(ctx, "x"); err == nil {
		t.Fatal("expected the request after the burst to be held back")
	}
}

func TestSingleFailureKeepsCircuitClosed(t *testing.T) {
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		if hits == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte(searchDoc))
	}))
	defer srv.Close()

	p := newTestProvider(srv.URL)
	if _, err := p.SearchLocation(context.Background(), "x"); !errors.Is(err, ErrUnexpectedStatus) {
		t.Fatalf("expected status error, got %v", err)
	}
	if _, err := p.FetchWeather(context.Background(), "USNY0996", weather.UnitsMetric); err != nil {
		t.Fatalf("expected the next request to reach the server, got %v", err)
	}
	if hits != 2 {
		t.Errorf("expected 2 hits, got %d", hits)
	}
}

func TestMissingHTTPClient(t *testing.T) {
	p := NewWeatherComProvider("http://127.0.0.1:1", HTTPClientConfig{}, nil)
	if _, err := p.SearchLocation(context.Background(), "x"); !errors.Is(err, errNoHTTPClient) {
		t.Fatalf("expected errNoHTTPClient, got %v", err)
	}
}
