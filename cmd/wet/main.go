package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/i474232898/wet/internal/cli"
	"github.com/i474232898/wet/internal/config"
	"github.com/i474232898/wet/internal/display"
	"github.com/i474232898/wet/internal/weather"
	"github.com/i474232898/wet/internal/weather/providers"
)

// exitError carries the process exit code for a failure.
type exitError struct {
	Code int
	Err  error
}

func (e *exitError) Error() string { return e.Err.Error() }
func (e *exitError) Unwrap() error { return e.Err }

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes one invocation and returns the exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	err := execute(ctx, args, stdout, stderr)
	if err == nil {
		return cli.ExitSuccess
	}

	code := cli.ExitSystem
	var ee *exitError
	if errors.As(err, &ee) {
		code = ee.Code
	}

	fmt.Fprintf(stderr, "%s: error: %v\n", cli.ProgramName, err)
	if code == cli.ExitOption || code == cli.ExitLocation {
		fmt.Fprintln(stderr, cli.Usage())
	}
	return code
}

func execute(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return &exitError{cli.ExitSystem, fmt.Errorf("failed to load config: %w", err)}
	}
	for _, w := range cfg.Warnings {
		fmt.Fprintf(stderr, "%s: warning: %s\n", cli.ProgramName, w)
	}

	log, err := newLogger(cfg.Debug)
	if err != nil {
		return &exitError{cli.ExitSystem, fmt.Errorf("failed to create logger: %w", err)}
	}
	defer func() { _ = log.Sync() }()

	inv, err := cli.Parse(args, cfg.Location, cfg.Units)
	if err != nil {
		return &exitError{parseExitCode(err), err}
	}

	width := display.DefaultWidth
	if f, ok := stdout.(*os.File); ok {
		width = display.TerminalWidth(f)
	}

	switch inv.Action {
	case cli.ActionHelp:
		if err := cli.WriteHelp(stdout, width, inv.HelpTopic, inv.HelpOption); err != nil {
			return &exitError{parseExitCode(err), err}
		}
		return nil
	case cli.ActionVersion:
		if _, err := fmt.Fprintln(stdout, cli.VersionLine()); err != nil {
			return &exitError{cli.ExitSystem, err}
		}
		return nil
	}

	tc, err := config.LoadTransport()
	if err != nil {
		return &exitError{cli.ExitSystem, fmt.Errorf("failed to load config: %w", err)}
	}

	// Shared HTTP client for outbound provider calls.
	httpClient := &http.Client{
		Timeout: tc.HTTPTimeout,
	}
	provider := providers.NewWeatherComProvider(tc.BaseURL, providers.HTTPClientConfig{
		Client:            httpClient,
		RequestsPerSecond: tc.RequestsPerSecond,
		Burst:             tc.RequestBurst,
	}, log)
	service := weather.NewService(provider, log)

	log.Debug("looking up weather",
		zap.String("location", inv.Location),
		zap.String("units", string(inv.Units)),
	)
	rec, err := service.Lookup(ctx, inv.Location, inv.Units)
	if err != nil {
		return &exitError{lookupExitCode(err), err}
	}

	if err := display.NewRenderer(stdout, width).Render(rec, inv.Selection); err != nil {
		return &exitError{cli.ExitSystem, err}
	}
	return nil
}

func newLogger(debug bool) (*zap.Logger, error) {
	if !debug {
		return zap.NewNop(), nil
	}
	return zap.NewDevelopment()
}

func parseExitCode(err error) int {
	var ue *cli.UsageError
	switch {
	case errors.As(err, &ue):
		return cli.ExitOption
	case errors.Is(err, cli.ErrNoLocation):
		return cli.ExitLocation
	default:
		return cli.ExitSystem
	}
}

func lookupExitCode(err error) int {
	var pe *weather.ProviderError
	switch {
	case errors.As(err, &pe), errors.Is(err, weather.ErrLocationNotFound):
		return cli.ExitWeather
	default:
		return cli.ExitNetwork
	}
}
