package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"github.com/i474232898/wet/internal/weather"
	"github.com/i474232898/wet/internal/weather/providers"
)

type AppConfig struct {
	// Location is used when no location argument is given.
	Location string

	// Units is empty when WET_UNITS is unset or invalid.
	Units weather.Units

	Debug bool

	// Warnings collects problems that do not stop the program.
	Warnings []string
}

// TransportConfig holds the settings only needed once a lookup goes out,
// so a bad value never blocks help or version output.
type TransportConfig struct {
	BaseURL     string        `validate:"required,url"`
	HTTPTimeout time.Duration `validate:"gt=0"`

	// RequestsPerSecond paces provider calls (0 = unlimited).
	RequestsPerSecond float64 `validate:"gte=0"`
	// RequestBurst is how many calls may go out before pacing starts.
	RequestBurst int `validate:"gte=1"`
}

var validate = validator.New()

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	return LoadFiles()
}

// LoadFiles is Load with explicit .env files. A missing file is not an error.
func LoadFiles(filenames ...string) (*AppConfig, error) {
	if err := godotenv.Load(filenames...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}
	cfg := &AppConfig{}

	cfg.Location = strings.TrimSpace(os.Getenv("WET_LOCATION"))

	if v := os.Getenv("WET_UNITS"); v != "" {
		units := strings.ToLower(v)
		if err := validate.Var(units, "oneof=metric imperial"); err != nil {
			cfg.Warnings = append(cfg.Warnings, "ignoring invalid value for environment variable WET_UNITS")
		} else {
			cfg.Units = weather.Units(units)
		}
	}

	debug, err := getenvBool("WET_DEBUG", false)
	if err != nil {
		return nil, fmt.Errorf("invalid WET_DEBUG: %w", err)
	}
	cfg.Debug = debug

	return cfg, nil
}

// LoadTransport reads the provider connection settings. Call it after Load
// so values from .env are visible.
func LoadTransport() (*TransportConfig, error) {
	cfg := &TransportConfig{}

	cfg.BaseURL = getenvDefault("WET_BASE_URL", providers.DefaultBaseURL)

	timeout, err := time.ParseDuration(getenvDefault("WET_HTTP_TIMEOUT", "10s"))
	if err != nil {
		return nil, fmt.Errorf("invalid WET_HTTP_TIMEOUT: %w", err)
	}
	cfg.HTTPTimeout = timeout

	rps, err := getenvFloat("WET_RATE_LIMIT", 2)
	if err != nil {
		return nil, fmt.Errorf("invalid WET_RATE_LIMIT: %w", err)
	}
	cfg.RequestsPerSecond = rps

	// A lookup is a search plus a fetch; both fit in the default burst.
	burst, err := getenvInt("WET_RATE_BURST", 2)
	if err != nil {
		return nil, fmt.Errorf("invalid WET_RATE_BURST: %w", err)
	}
	cfg.RequestBurst = burst

	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvFloat(key string, def float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	return strconv.ParseFloat(v, 64)
}

func getenvInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	return strconv.Atoi(v)
}

func getenvBool(key string, def bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	return strconv.ParseBool(v)
}
