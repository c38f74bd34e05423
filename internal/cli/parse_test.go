package cli

import (
	"errors"
	"reflect"
	"testing"

	"github.com/i474232898/wet/internal/display"
	"github.com/i474232898/wet/internal/weather"
)

func mustParse(t *testing.T, args ...string) *Invocation {
	t.Helper()
	inv, err := Parse(args, "", "")
	if err != nil {
		t.Fatalf("Parse(%q): unexpected error: %v", args, err)
	}
	return inv
}

func wantUsageError(t *testing.T, err error) {
	t.Helper()
	var ue *UsageError
	if !errors.As(err, &ue) {
		t.Fatalf("expected a usage error, got %v", err)
	}
}

func TestParseDefaultDisplay(t *testing.T) {
	inv := mustParse(t, "Paris")

	if inv.Action != ActionWeather || !inv.Selection.Default {
		t.Errorf("expected the default display, got %+v", inv)
	}
	if inv.Location != "Paris" {
		t.Errorf("unexpected location %q", inv.Location)
	}
	if inv.Units != weather.UnitsMetric {
		t.Errorf("expected metric by default, got %q", inv.Units)
	}
}

func TestParseLocationAnywhere(t *testing.T) {
	for _, args := range [][]string{
		{"New York, NY", "cc", "temp"},
		{"cc", "New York, NY", "temp"},
		{"cc", "temp", "New York, NY"},
	} {
		inv := mustParse(t, args...)
		if inv.Location != "New York, NY" {
			t.Errorf("Parse(%q): unexpected location %q", args, inv.Location)
		}
		if inv.Selection.Current != (display.CurrentSelection{Temperature: true}) {
			t.Errorf("Parse(%q): unexpected selection %+v", args, inv.Selection.Current)
		}
	}
}

func TestParseTooManyLocations(t *testing.T) {
	_, err := Parse([]string{"Paris", "London"}, "", "")
	wantUsageError(t, err)
}

func TestParseMissingLocation(t *testing.T) {
	for _, args := range [][]string{nil, {"cc"}, {"fc", "all"}, {"imperial"}} {
		_, err := Parse(args, "", "")
		if !errors.Is(err, ErrNoLocation) {
			t.Errorf("Parse(%q): expected ErrNoLocation, got %v", args, err)
		}
	}
}

func TestParseEnvironmentDefaults(t *testing.T) {
	inv, err := Parse([]string{"cc"}, "Berlin", weather.UnitsImperial)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if inv.Location != "Berlin" || inv.Units != weather.UnitsImperial {
		t.Errorf("expected environment defaults, got %q %q", inv.Location, inv.Units)
	}

	inv, err = Parse([]string{"Oslo", "metric"}, "Berlin", weather.UnitsImperial)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if inv.Location != "Oslo" || inv.Units != weather.UnitsMetric {
		t.Errorf("expected arguments to win, got %q %q", inv.Location, inv.Units)
	}
}

func TestParseUnits(t *testing.T) {
	inv := mustParse(t, "IMPERIAL", "Paris", "loc")
	if inv.Units != weather.UnitsImperial {
		t.Errorf("expected imperial, got %q", inv.Units)
	}
	if !inv.Selection.Location.All {
		t.Errorf("expected all location fields, got %+v", inv.Selection.Location)
	}

	inv, err := Parse([]string{"Paris", "imperial", "cc"}, "", weather.UnitsMetric)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if inv.Units != weather.UnitsImperial {
		t.Errorf("expected the unit token to override the default, got %q", inv.Units)
	}
}

func TestParseSecondUnitIsNotACommand(t *testing.T) {
	for _, args := range [][]string{
		{"Paris", "imperial", "metric"},
		{"Paris", "imperial", "metric", "cc"},
	} {
		_, err := Parse(args, "", "")
		wantUsageError(t, err)
	}
}

func TestParseCurrent(t *testing.T) {
	inv := mustParse(t, "Paris", "cc")
	if !inv.Selection.Current.All {
		t.Errorf("expected all current conditions, got %+v", inv.Selection.Current)
	}

	inv = mustParse(t, "Paris", "CC", "Temperature", "wind", "feels-like", "moon")
	want := display.CurrentSelection{Temperature: true, Wind: true, FeelsLike: true, Moon: true}
	if inv.Selection.Current != want {
		t.Errorf("expected %+v, got %+v", want, inv.Selection.Current)
	}
}

func TestParseLocation(t *testing.T) {
	inv := mustParse(t, "Paris", "loc", "latitude", "name")
	want := display.LocationSelection{Latitude: true, Name: true}
	if inv.Selection.Location != want {
		t.Errorf("expected %+v, got %+v", want, inv.Selection.Location)
	}
}

func TestParseForecast(t *testing.T) {
	today := display.DaySet{Indices: [weather.ForecastDays]bool{true}}

	tests := []struct {
		name string
		args []string
		want display.ForecastSelection
	}{
		{
			name: "today by default",
			args: []string{"fc"},
			want: display.ForecastSelection{Days: today, Fields: display.DaySelection{All: true}},
		},
		{
			name: "numbered days",
			args: []string{"fc", "2", "5", "high"},
			want: display.ForecastSelection{
				Days:   display.DaySet{Indices: [weather.ForecastDays]bool{false, true, false, false, true}},
				Fields: display.DaySelection{High: true},
			},
		},
		{
			name: "named days and aliases",
			args: []string{"fc", "hi", "tomorrow", "lo", "today"},
			want: display.ForecastSelection{
				Days:   display.DaySet{Indices: [weather.ForecastDays]bool{true, true}},
				Fields: display.DaySelection{High: true, Low: true},
			},
		},
		{
			name: "all days",
			args: []string{"fc", "all", "dow", "sunrise", "sunset"},
			want: display.ForecastSelection{
				Days:   display.DaySet{All: true},
				Fields: display.DaySelection{DayOfWeek: true, Sunrise: true, Sunset: true},
			},
		},
		{
			name: "weekday",
			args: []string{"fc", "Monday", "cop"},
			want: display.ForecastSelection{
				Days:   display.DaySet{Weekdays: []string{"monday"}},
				Fields: display.DaySelection{ChanceOfPrecip: true},
			},
		},
		{
			name: "bare night",
			args: []string{"fc", "text", "night"},
			want: display.ForecastSelection{
				Days:   today,
				Fields: display.DaySelection{Text: true, Night: display.PartSelection{All: true}},
			},
		},
		{
			name: "night options",
			args: []string{"fc", "wind", "night", "text", "wind"},
			want: display.ForecastSelection{
				Days:   today,
				Fields: display.DaySelection{Wind: true, Night: display.PartSelection{Text: true, Wind: true}},
			},
		},
		{
			name: "day selector after night",
			args: []string{"fc", "night", "humidity", "3"},
			want: display.ForecastSelection{
				Days:   display.DaySet{Indices: [weather.ForecastDays]bool{false, false, true}},
				Fields: display.DaySelection{Night: display.PartSelection{Humidity: true}},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := mustParse(t, append([]string{"Paris"}, tt.args...)...)
			if !reflect.DeepEqual(inv.Selection.Forecast, tt.want) {
				t.Errorf("expected %+v, got %+v", tt.want, inv.Selection.Forecast)
			}
		})
	}
}

func TestParseOptionErrors(t *testing.T) {
	tests := [][]string{
		{"Paris", "temp"},
		{"Paris", "cc", "latitude"},
		{"Paris", "cc", "today"},
		{"Paris", "loc", "temp"},
		{"Paris", "fc", "latitude"},
		{"Paris", "fc", "night", "dow"},
		{"Paris", "fc", "night", "high"},
		{"Paris", "version", "cc"},
		{"help", "cc", "temp", "fc"},
		{"help", "version"},
		{"help", "loc", "temp"},
	}
	for _, args := range tests {
		_, err := Parse(args, "", "")
		var ue *UsageError
		if !errors.As(err, &ue) {
			t.Errorf("Parse(%q): expected a usage error, got %v", args, err)
		}
	}
}

func TestParseHelpAndVersionNeedNoLocation(t *testing.T) {
	inv := mustParse(t, "help")
	if inv.Action != ActionHelp || inv.HelpTopic != "" {
		t.Errorf("unexpected invocation %+v", inv)
	}

	inv = mustParse(t, "help", "FC", "night")
	if inv.Action != ActionHelp || inv.HelpTopic != "fc" || inv.HelpOption != "night" {
		t.Errorf("unexpected invocation %+v", inv)
	}

	inv = mustParse(t, "version")
	if inv.Action != ActionVersion {
		t.Errorf("unexpected invocation %+v", inv)
	}
}
