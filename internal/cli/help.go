package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/i474232898/wet/internal/display"
)

// ProgramName is the name shown in help and error messages.
const ProgramName = "wet"

// Version is overridden at build time with -ldflags "-X".
var Version = "1.0"

const (
	helpCommandIndent = 1
	helpTextIndent    = 4
)

// VersionLine is what the version command prints.
func VersionLine() string {
	return ProgramName + " (WEather Tool) " + Version
}

// Usage is the one-line synopsis shown after an option error.
func Usage() string {
	return "Usage: " + ProgramName + " COMMAND [OPTION] [LOCATION]"
}

type helpCommand struct {
	usage string
	text  string

	// keys are the option words that select this entry on its own.
	keys []string
}

type helpNote struct {
	indent int
	text   string
}

type helpPage struct {
	title    string
	commands []helpCommand
	notes    []helpNote
}

var mainHelp = helpPage{
	title: "Main Options",
	commands: []helpCommand{
		{usage: "cc", text: "Shows current conditions."},
		{usage: "loc", text: "Shows information about LOCATION."},
		{usage: "fc", text: "Shows forecast predictions."},
		{usage: "imperial", text: "Causes all measurements to use imperial units (fahrenheit, miles, etc.)"},
		{usage: "metric", text: "Causes all measurements to use metric units (celsius, kilometers, etc.). " +
			"Note that this is the default if no unit command is given."},
		{usage: "help", text: "Shows help information and exits. Use `" + ProgramName +
			" help COMMAND' for help with the specific COMMAND."},
		{usage: "version", text: "Shows the version information of this program."},
	},
	notes: []helpNote{
		{0, "If no option commands are given, a default set of basic weather data will be displayed."},
		{6, "NOTE: Instead of providing a LOCATION argument every time, you can set the WET_LOCATION " +
			"environment variable to your desired location (e.g. WET_LOCATION=\"New York City\")."},
		{6, "NOTE: You can also set the WET_UNITS environment variable to your preferred set of units " +
			"(e.g. WET_UNITS=imperial or WET_UNITS=metric)."},
		{0, "All weather data is obtained from www.weather.com."},
	},
}

var ccHelp = helpPage{
	title: "Current Conditions Options",
	commands: []helpCommand{
		{"cc last-updated", "Shows when the current conditions data was last updated.", []string{"last-updated"}},
		{"cc temp", "Shows the current temperature.", []string{"temp", "temperature"}},
		{"cc dewpoint", "Shows the current dewpoint temperature.", []string{"dewpoint"}},
		{"cc text", "Shows a short, general description of the current conditions (e.g. \"Partly Cloudy\").", []string{"text"}},
		{"cc visibility", "Shows the current visibility.", []string{"visibility"}},
		{"cc humidity", "Shows the current humidity.", []string{"humidity"}},
		{"cc station", "Shows the station name from which local weather is obtained.", []string{"station"}},
		{"cc feels-like", "Shows the temperature that it currently \"feels like\".", []string{"feels-like"}},
		{"cc moon", "Shows the current phase of the Moon.", []string{"moon"}},
		{"cc uv", "Shows current ultra-violet data from the sun.", []string{"uv"}},
		{"cc barometer", "Shows current atmospheric pressure data.", []string{"barometer"}},
		{"cc wind", "Shows current wind conditions.", []string{"wind"}},
	},
	notes: []helpNote{
		{0, "If none of the `cc' options are provided, then ALL current conditions data will be displayed."},
	},
}

var locHelp = helpPage{
	title: "Location Options",
	commands: []helpCommand{
		{"loc latitude", "Shows the latitude of LOCATION.", []string{"latitude"}},
		{"loc longitude", "Shows the longitude of LOCATION.", []string{"longitude"}},
		{"loc name", "Shows the proper name of LOCATION.", []string{"name"}},
	},
}

var fcHelp = helpPage{
	title: "Forecast Options",
	commands: []helpCommand{
		{"fc [1-5|today|tomorrow|DAY]", "Shows forecast data for a specific day out of a 5 day forecast " +
			"(1=today, 2=tomorrow, etc.). DAY is the name of a weekday (e.g. monday). If this option " +
			"is not given, only the forecast data for today will be used.",
			append([]string{"1", "2", "3", "4", "5", "today", "tomorrow"}, weekdays...)},
		{"fc all", "Shows forecast data for all days in the 5 day forecast.", []string{"all"}},
		{"fc dow", "Shows the name for the day of the week of the forecast day.", []string{"dow"}},
		{"fc high", "Shows the highest forecasted temperature.", []string{"high", "hi"}},
		{"fc low", "Shows the lowest forecasted temperature.", []string{"low", "lo"}},
		{"fc sunrise", "Shows the time of sunrise.", []string{"sunrise"}},
		{"fc sunset", "Shows the time of sunset.", []string{"sunset"}},
		{"fc text", "Shows a brief description of the forecast.", []string{"text"}},
		{"fc cop", "Shows the chance of precipitation.", []string{"cop"}},
		{"fc humidity", "Shows the humidity.", []string{"humidity"}},
		{"fc night", "Shows forecast information for the night of the forecast day. Note that this " +
			"command has 4 of its own options (use `" + ProgramName + " help fc night' to see them).", nil},
		{"fc wind", "Shows wind forecasts for the forecast day.", []string{"wind"}},
	},
}

// fcNightHelp is shown for `help fc night'.
var fcNightHelp = []helpCommand{
	{usage: "fc night text", text: "Shows a brief description of the night forecast."},
	{usage: "fc night cop", text: "Shows the chance of precipitation for the night."},
	{usage: "fc night humidity", text: "Shows the humidity for the night."},
	{usage: "fc night wind", text: "Shows wind conditions for the night."},
}

var helpTopics = map[string]*helpPage{
	"cc":  &ccHelp,
	"loc": &locHelp,
	"fc":  &fcHelp,
}

// lookupHelp resolves a help request to either a whole page or the entries
// for a single option.
func lookupHelp(topic, option string) (*helpPage, []helpCommand, error) {
	if topic == "" {
		return &mainHelp, nil, nil
	}
	page, ok := helpTopics[topic]
	if !ok {
		return nil, nil, usagef("unknown command -- `%s'", topic)
	}
	if option == "" {
		return page, nil, nil
	}
	if topic == "fc" && option == "night" {
		return nil, fcNightHelp, nil
	}
	for _, c := range page.commands {
		for _, k := range c.keys {
			if k == option {
				return nil, []helpCommand{c}, nil
			}
		}
	}
	return nil, nil, usagef("unknown option for `%s' -- `%s'", topic, option)
}

// WriteHelp writes the help for topic and option, wrapped to width columns.
func WriteHelp(w io.Writer, width int, topic, option string) error {
	page, entries, err := lookupHelp(strings.ToLower(topic), strings.ToLower(option))
	if err != nil {
		return err
	}

	var b strings.Builder
	if page == nil {
		for _, c := range entries {
			writeCommand(&b, width, c)
		}
	} else {
		writePage(&b, width, page)
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("write help: %w", err)
	}
	return nil
}

func writePage(b *strings.Builder, width int, page *helpPage) {
	fmt.Fprintf(b, "Weather Tool (%s) %s\n", Version, page.title)
	writeSeparator(b, width)
	for _, c := range page.commands {
		writeCommand(b, width, c)
	}
	writeSeparator(b, width)
	for i, n := range page.notes {
		if i > 0 {
			b.WriteByte('\n')
		}
		writeLines(b, display.WrapLine(n.text, width, n.indent))
	}
}

func writeCommand(b *strings.Builder, width int, c helpCommand) {
	b.WriteString(strings.Repeat(" ", helpCommandIndent))
	b.WriteString(ProgramName + " " + c.usage + "\n")
	text := strings.Repeat(" ", helpTextIndent) + c.text
	writeLines(b, display.WrapLine(text, width, helpTextIndent))
}

func writeSeparator(b *strings.Builder, width int) {
	b.WriteString(strings.Repeat("-", width/4))
	b.WriteByte('\n')
}

func writeLines(b *strings.Builder, lines []string) {
	for _, l := range lines {
		b.WriteString(l)
		b.WriteByte('\n')
	}
}
