package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/i474232898/wet/internal/weather"
)

const degree = "°"

// Renderer writes weather records as text.
type Renderer struct {
	w     io.Writer
	width int
}

// NewRenderer returns a Renderer writing to w and wrapping lines at width
// columns. A width of zero or less disables wrapping.
func NewRenderer(w io.Writer, width int) *Renderer {
	return &Renderer{w: w, width: width}
}

// Render writes the parts of rec picked by sel. The output is written in one
// call so that a failing writer is reported once.
func (r *Renderer) Render(rec weather.Record, sel Selection) error {
	p := &page{rec: rec}

	if sel.Default {
		p.summary()
	} else {
		p.current(sel.Current)
		p.location(sel.Location)
		p.forecasts(sel.Forecast)
	}

	out := p.String()
	if r.width > 0 {
		out = Wrap(strings.TrimSuffix(out, "\n"), r.width)
		if out != "" {
			out += "\n"
		}
	}
	if out == "" {
		return nil
	}
	if _, err := io.WriteString(r.w, out); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

type page struct {
	strings.Builder
	rec weather.Record
}

func (p *page) printf(format string, args ...any) {
	fmt.Fprintf(p, format, args...)
}

// temp formats a temperature with its unit label.
func (p *page) temp(f weather.Field) string {
	return f.String() + degree + p.rec.Units.Temperature
}

// wind writes a wind description and ends the line.
func (p *page) wind(w weather.Wind) {
	p.printf("%s%s %s", w.Direction, degree, w.Text)
	if hasSpeed(w.Speed) {
		p.printf(" at %s%s", w.Speed, p.rec.Units.Speed)
	}
	if !strings.EqualFold(w.Gust.String(), "n/a") {
		p.printf(" (%s%s gusts)", w.Gust, p.rec.Units.Speed)
	}
	p.WriteByte('\n')
}

// hasSpeed reports whether the speed starts with a non-zero number. Calm
// conditions are reported as text or as 0.
func hasSpeed(f weather.Field) bool {
	v, ok := f.Value()
	if !ok || v == "" || v[0] < '0' || v[0] > '9' {
		return false
	}
	for i := 0; i < len(v) && v[i] >= '0' && v[i] <= '9'; i++ {
		if v[i] != '0' {
			return true
		}
	}
	return false
}

func (p *page) summary() {
	rec := p.rec
	cc := rec.CurrentConditions
	today := rec.Forecasts[0]

	p.printf("%s (%s, %s)\n", rec.Location.Name, rec.Location.Latitude, rec.Location.Longitude)
	p.printf("%s and %s (feels like %s)\n", p.temp(cc.Temperature), cc.Text, p.temp(cc.FeelsLike))
	p.printf("Today's high:    %s\n", p.temp(today.High))
	p.printf("Today's low:     %s\n", p.temp(today.Low))
	p.printf("Visibility:      %s%s\n", cc.Visibility, rec.Units.Distance)
	p.printf("Humidity:        %s%%\n", cc.Humidity)
	p.printf("Dew Point:       %s\n", p.temp(cc.Dewpoint))
	p.printf("Sunrise:         %s\n", today.Sunrise)
	p.printf("Sunset:          %s\n", today.Sunset)
	p.printf("Wind Conditions: ")
	p.wind(cc.Wind)
}

func (p *page) current(sel CurrentSelection) {
	rec := p.rec
	cc := rec.CurrentConditions

	if sel.All {
		p.printf("Current Conditions - %s\n", cc.Text)
		p.printf("----------------\n")
		p.printf("Last Updated        %s\n", cc.LastUpdated)
		p.printf("Temperature         %s\n", p.temp(cc.Temperature))
		p.printf("Dew Point           %s\n", p.temp(cc.Dewpoint))
		p.printf("Visibility          %s%s\n", cc.Visibility, rec.Units.Distance)
		p.printf("Humidity            %s%%\n", cc.Humidity)
		p.printf("Local Station       %s\n", cc.Station)
		p.printf("Feels Like          %s\n", p.temp(cc.FeelsLike))
		p.printf("Moon                %s\n", cc.MoonPhaseText)
		p.printf("UV Index            %s (%s)\n", cc.UV.Index, cc.UV.Text)
		p.printf("Barometric Pressure %s%s (%s)\n", cc.Barometer.Reading, rec.Units.Rainfall, cc.Barometer.Direction)
		p.printf("Wind                ")
		p.wind(cc.Wind)
		return
	}

	if sel.LastUpdated {
		p.printf("last updated - %s\n", cc.LastUpdated)
	}
	if sel.Temperature {
		p.printf("current temperature - %s\n", p.temp(cc.Temperature))
	}
	if sel.Dewpoint {
		p.printf("current dew point - %s\n", p.temp(cc.Dewpoint))
	}
	if sel.Text {
		p.printf("%s\n", cc.Text)
	}
	if sel.Visibility {
		p.printf("current visibility - %s%s\n", cc.Visibility, rec.Units.Distance)
	}
	if sel.Humidity {
		p.printf("current humidity - %s%%\n", cc.Humidity)
	}
	if sel.Station {
		p.printf("current local station - %s\n", cc.Station)
	}
	if sel.FeelsLike {
		p.printf("currently feels like - %s\n", p.temp(cc.FeelsLike))
	}
	if sel.Wind {
		p.printf("current wind conditions - ")
		p.wind(cc.Wind)
	}
	if sel.Moon {
		p.printf("current moon phase - %s\n", cc.MoonPhaseText)
	}
	if sel.UV {
		p.printf("current uv index - %s (%s)\n", cc.UV.Index, cc.UV.Text)
	}
	if sel.Barometer {
		p.printf("current barometric pressure - %s%s (%s)\n",
			cc.Barometer.Reading, rec.Units.Rainfall, cc.Barometer.Direction)
	}
}

func (p *page) location(sel LocationSelection) {
	loc := p.rec.Location

	if sel.All {
		p.printf("%s\n----------------\nLatitude  %s\nLongitude %s\n", loc.Name, loc.Latitude, loc.Longitude)
		return
	}
	if sel.Latitude {
		p.printf("latitude - %s\n", loc.Latitude)
	}
	if sel.Longitude {
		p.printf("longitude - %s\n", loc.Longitude)
	}
	if sel.Name {
		p.printf("location name - %s\n", loc.Name)
	}
}

func (p *page) forecasts(sel ForecastSelection) {
	for i, fc := range p.rec.Forecasts {
		if sel.Days.Includes(i, fc.DayOfWeek) {
			p.forecast(i, fc, sel.Fields)
		}
	}
}

// dayName is how forecast day i is referred to in running text.
func dayName(i int, fc weather.Forecast, night bool) string {
	switch {
	case i == 0 && night:
		return "tonight"
	case i == 0:
		return "today"
	case night:
		return fc.DayOfWeek.String() + " night"
	default:
		return fc.DayOfWeek.String()
	}
}

func (p *page) forecast(i int, fc weather.Forecast, sel DaySelection) {
	if sel.All {
		p.forecastBlock(i, fc)
		return
	}

	day := dayName(i, fc, false)
	if sel.DayOfWeek {
		p.printf("%s\n", fc.DayOfWeek)
	}
	if sel.High {
		p.printf("%s's high - %s\n", day, p.temp(fc.High))
	}
	if sel.Low {
		p.printf("%s's low - %s\n", day, p.temp(fc.Low))
	}
	if sel.Sunset {
		p.printf("%s's sunset - %s\n", day, fc.Sunset)
	}
	if sel.Sunrise {
		p.printf("%s's sunrise - %s\n", day, fc.Sunrise)
	}
	if sel.Text {
		p.printf("%s's %s\n", day, fc.Text)
	}
	if sel.ChanceOfPrecip {
		p.printf("%s's chance of precipitation - %s%%\n", day, fc.ChanceOfPrecip)
	}
	if sel.Humidity {
		p.printf("%s's humidity - %s%%\n", day, fc.Humidity)
	}
	if sel.Wind {
		p.printf("%s's wind - ", day)
		p.wind(fc.Wind)
	}

	p.night(i, fc, sel.Night)
}

func (p *page) night(i int, fc weather.Forecast, sel PartSelection) {
	night := fc.Night
	prefix := dayName(i, fc, true)
	heading := prefix
	if i == 1 {
		heading = "tomorrow night"
	}

	if sel.All {
		p.printf("Forecast for %s", heading)
		if night.Text.String() != "" {
			p.printf(" - %s", night.Text)
		}
		p.printf("\n--------------\n")
		p.printf("chance of precipitation - %s%%\n", night.ChanceOfPrecip)
		p.printf("humidity                - %s%%\n", night.Humidity)
		p.printf("wind                    - ")
		p.wind(night.Wind)
		return
	}

	if sel.Text {
		p.printf("%s's %s\n", prefix, night.Text)
	}
	if sel.ChanceOfPrecip {
		p.printf("%s's chance of precipitation - %s%%\n", prefix, night.ChanceOfPrecip)
	}
	if sel.Humidity {
		p.printf("%s's humidity - %s%%\n", prefix, night.Humidity)
	}
	if sel.Wind {
		p.printf("%s's wind - ", heading)
		p.wind(night.Wind)
	}
}

// forecastBlock writes every value of a forecast day followed by its night.
func (p *page) forecastBlock(i int, fc weather.Forecast) {
	p.printf("Forecast for ")
	switch i {
	case 0:
		p.printf("today (%s)", fc.DayOfWeek)
	case 1:
		p.printf("tomorrow (%s)", fc.DayOfWeek)
	default:
		p.printf("%s", fc.DayOfWeek)
	}
	if fc.Text.String() != "" {
		p.printf(" - %s", fc.Text)
	}
	p.printf("\n--------------\n")
	p.printf("high                    - %s\n", p.temp(fc.High))
	p.printf("low                     - %s\n", p.temp(fc.Low))
	p.printf("sunset                  - %s\n", fc.Sunset)
	p.printf("sunrise                 - %s\n", fc.Sunrise)
	p.printf("chance of precipitation - %s%%\n", fc.ChanceOfPrecip)
	p.printf("humidity                - %s%%\n", fc.Humidity)
	p.printf("wind                    - ")
	p.wind(fc.Wind)
	p.WriteByte('\n')

	switch i {
	case 0:
		p.printf("  Tonight")
	case 1:
		p.printf("  Tomorrow night")
	default:
		p.printf("  %s night", fc.DayOfWeek)
	}
	if fc.Night.Text.String() != "" {
		p.printf(" - %s", fc.Night.Text)
	}
	p.printf("\n  --------------\n")
	p.printf("  chance of precipitation - %s%%\n", fc.Night.ChanceOfPrecip)
	p.printf("  humidity                - %s%%\n", fc.Night.Humidity)
	p.printf("  wind                    - ")
	p.wind(fc.Night.Wind)
	p.WriteByte('\n')
}
