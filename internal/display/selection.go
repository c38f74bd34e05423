package display

import (
	"strings"

	"github.com/i474232898/wet/internal/weather"
)

// Selection is what the user asked to see. The zero value shows nothing.
type Selection struct {
	// Default selects the summary shown when no command is given.
	Default bool

	Current  CurrentSelection
	Location LocationSelection
	Forecast ForecastSelection
}

type CurrentSelection struct {
	All         bool
	LastUpdated bool
	Temperature bool
	Dewpoint    bool
	Text        bool
	Visibility  bool
	Humidity    bool
	Station     bool
	FeelsLike   bool
	Wind        bool
	Moon        bool
	UV          bool
	Barometer   bool
}

type LocationSelection struct {
	All       bool
	Latitude  bool
	Longitude bool
	Name      bool
}

// PartSelection picks values from the night half of a forecast day.
type PartSelection struct {
	All            bool
	Text           bool
	ChanceOfPrecip bool
	Humidity       bool
	Wind           bool
}

// DaySelection picks values from a single forecast day.
type DaySelection struct {
	All            bool
	DayOfWeek      bool
	High           bool
	Low            bool
	Sunset         bool
	Sunrise        bool
	Text           bool
	ChanceOfPrecip bool
	Humidity       bool
	Wind           bool
	Night          PartSelection
}

// ForecastSelection applies the same DaySelection to every day in Days.
type ForecastSelection struct {
	Days   DaySet
	Fields DaySelection
}

// DaySet is a set of forecast days, by position or by weekday name.
type DaySet struct {
	All     bool
	Indices [weather.ForecastDays]bool

	// Weekdays are matched case-insensitively against each forecast's
	// day of week once the record is known.
	Weekdays []string
}

// Empty reports whether no day has been selected.
func (d DaySet) Empty() bool {
	if d.All || len(d.Weekdays) > 0 {
		return false
	}
	for _, ok := range d.Indices {
		if ok {
			return false
		}
	}
	return true
}

// Includes reports whether forecast day i, whose day of week is dow, is in the set.
func (d DaySet) Includes(i int, dow weather.Field) bool {
	if i < 0 || i >= weather.ForecastDays {
		return false
	}
	if d.All || d.Indices[i] {
		return true
	}
	name, ok := dow.Value()
	if !ok {
		return false
	}
	for _, wd := range d.Weekdays {
		if strings.EqualFold(wd, name) {
			return true
		}
	}
	return false
}
