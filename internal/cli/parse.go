package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/i474232898/wet/internal/display"
	"github.com/i474232898/wet/internal/weather"
)

type Action int

const (
	ActionWeather Action = iota
	ActionHelp
	ActionVersion
)

// Invocation is a parsed command line.
type Invocation struct {
	Action    Action
	Location  string
	Units     weather.Units
	Selection display.Selection

	// HelpTopic and HelpOption name the help page to show; both may be empty.
	HelpTopic  string
	HelpOption string
}

// UsageError reports an invalid command line.
type UsageError struct {
	Msg string
}

func (e *UsageError) Error() string { return e.Msg }

func usagef(format string, args ...any) error {
	return &UsageError{Msg: fmt.Sprintf(format, args...)}
}

// ErrNoLocation is returned when a weather command has nothing to look up.
var ErrNoLocation = errors.New("no location given and WET_LOCATION not set")

// Parse interprets the arguments that follow the program name. Any token
// outside the command vocabularies is the location, wherever it appears;
// defaultLocation and defaultUnits apply when the arguments name neither.
func Parse(args []string, defaultLocation string, defaultUnits weather.Units) (*Invocation, error) {
	inv := &Invocation{Units: weather.UnitsMetric}
	if defaultUnits != "" {
		inv.Units = defaultUnits
	}

	var rest []string
	haveLocation := false
	for _, a := range args {
		if isKeyword(a) {
			rest = append(rest, a)
			continue
		}
		if haveLocation {
			return nil, usagef("too many location arguments given")
		}
		inv.Location, haveLocation = a, true
	}
	if inv.Location == "" {
		inv.Location = defaultLocation
	}

	for i, a := range rest {
		if u, ok := weather.ParseUnits(a); ok {
			inv.Units = u
			rest = append(rest[:i:i], rest[i+1:]...)
			break
		}
	}

	if len(rest) == 0 {
		if inv.Location == "" {
			return nil, ErrNoLocation
		}
		inv.Selection.Default = true
		return inv, nil
	}

	cmd, opts := strings.ToLower(rest[0]), rest[1:]
	switch cmd {
	case "help":
		if len(opts) > 2 {
			return nil, usagef("too many arguments for `help'")
		}
		inv.Action = ActionHelp
		if len(opts) > 0 {
			inv.HelpTopic = strings.ToLower(opts[0])
		}
		if len(opts) > 1 {
			inv.HelpOption = strings.ToLower(opts[1])
		}
		if _, _, err := lookupHelp(inv.HelpTopic, inv.HelpOption); err != nil {
			return nil, err
		}
		return inv, nil
	case "version":
		if len(opts) > 0 {
			return nil, usagef("too many arguments for `version'")
		}
		inv.Action = ActionVersion
		return inv, nil
	case "cc", "loc", "fc":
	default:
		return nil, usagef("unknown command -- `%s'", rest[0])
	}

	if inv.Location == "" {
		return nil, ErrNoLocation
	}

	var err error
	switch cmd {
	case "cc":
		inv.Selection.Current, err = parseCurrent(opts)
	case "loc":
		inv.Selection.Location, err = parseLocation(opts)
	case "fc":
		inv.Selection.Forecast, err = parseForecast(opts)
	}
	if err != nil {
		return nil, err
	}
	return inv, nil
}

func parseCurrent(opts []string) (display.CurrentSelection, error) {
	var sel display.CurrentSelection
	if len(opts) == 0 {
		sel.All = true
		return sel, nil
	}
	for _, o := range opts {
		switch strings.ToLower(o) {
		case "last-updated":
			sel.LastUpdated = true
		case "temp", "temperature":
			sel.Temperature = true
		case "dewpoint":
			sel.Dewpoint = true
		case "text":
			sel.Text = true
		case "visibility":
			sel.Visibility = true
		case "humidity":
			sel.Humidity = true
		case "station":
			sel.Station = true
		case "feels-like":
			sel.FeelsLike = true
		case "wind":
			sel.Wind = true
		case "moon":
			sel.Moon = true
		case "uv":
			sel.UV = true
		case "barometer":
			sel.Barometer = true
		default:
			return sel, usagef("unknown `cc' option -- `%s'", o)
		}
	}
	return sel, nil
}

func parseLocation(opts []string) (display.LocationSelection, error) {
	var sel display.LocationSelection
	if len(opts) == 0 {
		sel.All = true
		return sel, nil
	}
	for _, o := range opts {
		switch strings.ToLower(o) {
		case "latitude":
			sel.Latitude = true
		case "longitude":
			sel.Longitude = true
		case "name":
			sel.Name = true
		default:
			return sel, usagef("unknown `loc' option -- `%s'", o)
		}
	}
	return sel, nil
}

// parseDays removes the day selectors from opts. Today is selected when
// there are none.
func parseDays(opts []string) (display.DaySet, []string) {
	var days display.DaySet
	var rest []string
	for _, o := range opts {
		word := strings.ToLower(o)
		if !has(fcDayOptions, word) {
			rest = append(rest, o)
			continue
		}
		switch word {
		case "all":
			days.All = true
		case "1", "today":
			days.Indices[0] = true
		case "2", "tomorrow":
			days.Indices[1] = true
		case "3":
			days.Indices[2] = true
		case "4":
			days.Indices[3] = true
		case "5":
			days.Indices[4] = true
		default:
			days.Weekdays = append(days.Weekdays, word)
		}
	}
	if days.Empty() {
		days.Indices[0] = true
	}
	return days, rest
}

func parseForecast(opts []string) (display.ForecastSelection, error) {
	var sel display.ForecastSelection
	sel.Days, opts = parseDays(opts)

	f := &sel.Fields
	if len(opts) == 0 {
		f.All = true
		return sel, nil
	}
	for i, o := range opts {
		switch strings.ToLower(o) {
		case "dow":
			f.DayOfWeek = true
		case "high", "hi":
			f.High = true
		case "low", "lo":
			f.Low = true
		case "sunset":
			f.Sunset = true
		case "sunrise":
			f.Sunrise = true
		case "text":
			f.Text = true
		case "cop":
			f.ChanceOfPrecip = true
		case "humidity":
			f.Humidity = true
		case "wind":
			f.Wind = true
		case "night":
			// Everything after night belongs to it.
			night, err := parseNight(opts[i+1:])
			if err != nil {
				return sel, err
			}
			f.Night = night
			return sel, nil
		default:
			return sel, usagef("unknown `fc' option -- `%s'", o)
		}
	}
	return sel, nil
}

func parseNight(opts []string) (display.PartSelection, error) {
	var sel display.PartSelection
	if len(opts) == 0 {
		sel.All = true
		return sel, nil
	}
	for _, o := range opts {
		switch strings.ToLower(o) {
		case "text":
			sel.Text = true
		case "cop":
			sel.ChanceOfPrecip = true
		case "humidity":
			sel.Humidity = true
		case "wind":
			sel.Wind = true
		default:
			return sel, usagef("unknown `fc night' option -- `%s'", o)
		}
	}
	return sel, nil
}
