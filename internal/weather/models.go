package weather

import "strings"

// ForecastDays is the number of forecast entries every Record carries.
const ForecastDays = 5

// NotFoundText is how a field the provider did not supply is shown to users.
const NotFoundText = "(not found)"

// Units selects the measurement system requested from the provider.
type Units string

const (
	UnitsMetric   Units = "metric"
	UnitsImperial Units = "imperial"
)

// ParseUnits maps a user supplied token onto Units, case-insensitively.
func ParseUnits(s string) (Units, bool) {
	switch strings.ToLower(s) {
	case string(UnitsMetric):
		return UnitsMetric, true
	case string(UnitsImperial):
		return UnitsImperial, true
	default:
		return "", false
	}
}

type fieldState uint8

const (
	fieldUnset fieldState = iota
	fieldFound
	fieldNotFound
)

// Field is a single extracted value. The zero value is unset: the extractor
// never looked at it.
type Field struct {
	value string
	state fieldState
}

// Found returns a field holding a value copied from the document.
func Found(v string) Field {
	return Field{value: v, state: fieldFound}
}

// NotFound returns a field the document did not supply.
func NotFound() Field {
	return Field{state: fieldNotFound}
}

// Value returns the extracted text and whether it was present in the document.
func (f Field) Value() (string, bool) {
	return f.value, f.state == fieldFound
}

// IsFound reports whether the field holds a document value.
func (f Field) IsFound() bool { return f.state == fieldFound }

// IsNotFound reports whether the extractor looked for the field and missed.
func (f Field) IsNotFound() bool { return f.state == fieldNotFound }

// IsUnset reports whether the extractor never touched the field.
func (f Field) IsUnset() bool { return f.state == fieldUnset }

// String renders the field for display. Missing values render as NotFoundText,
// unset ones as the empty string.
func (f Field) String() string {
	switch f.state {
	case fieldFound:
		return f.value
	case fieldNotFound:
		return NotFoundText
	default:
		return ""
	}
}

// ErrorInfo is the provider's own error block.
type ErrorInfo struct {
	Kind    string
	Message string
}

// UnitLabels are the unit suffixes the provider uses for its values. They are
// plain strings: a label missing from the document is simply empty.
type UnitLabels struct {
	Temperature string
	Distance    string
	Speed       string
	Pressure    string
	Rainfall    string
}

type Location struct {
	Name      Field
	Latitude  Field
	Longitude Field
}

type Wind struct {
	Gust      Field
	Direction Field
	Speed     Field
	Text      Field
}

type UV struct {
	Index Field
	Text  Field
}

type Barometer struct {
	Direction Field
	Reading   Field
}

// CurrentConditions is the observation block of a weather document.
type CurrentConditions struct {
	LastUpdated   Field
	Temperature   Field
	Dewpoint      Field
	Text          Field
	Visibility    Field
	Humidity      Field
	Station       Field
	FeelsLike     Field
	MoonPhaseText Field
	UV            UV
	Barometer     Barometer
	Wind          Wind
}

// DayPart holds the values reported for one half of a forecast day.
type DayPart struct {
	Text           Field
	ChanceOfPrecip Field
	Humidity       Field
	Wind           Wind
}

// Forecast is one day of the 5-day forecast. The embedded DayPart is the
// daytime half; Night is the nighttime half.
type Forecast struct {
	DayOfWeek Field
	High      Field
	Low       Field
	Sunset    Field
	Sunrise   Field
	DayPart
	Night DayPart
}

// Record is everything extracted from one weather document.
type Record struct {
	LocationID        string
	Error             ErrorInfo
	Units             UnitLabels
	Location          Location
	CurrentConditions CurrentConditions
	Forecasts         [ForecastDays]Forecast
}

// Failed reports whether the provider answered with a complete error block.
func (r Record) Failed() bool {
	return r.Error.Kind != "" && r.Error.Message != ""
}
