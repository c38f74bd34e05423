package cli

import "strings"

// Exit codes.
const (
	ExitSuccess  = 0
	ExitOption   = 1
	ExitLocation = 2
	ExitNetwork  = 3
	ExitSystem   = 4
	ExitWeather  = 5
)

var commands = set("cc", "loc", "fc", "imperial", "metric", "help", "version")

var ccOptions = set(
	"last-updated", "temp", "temperature", "dewpoint", "text", "visibility",
	"humidity", "station", "feels-like", "wind", "moon", "uv", "barometer",
)

var locOptions = set("latitude", "longitude", "name")

var weekdays = []string{"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday"}

var fcDayOptions = set(append([]string{"all", "1", "today", "2", "tomorrow", "3", "4", "5"}, weekdays...)...)

var fcOptions = set(
	"dow", "high", "hi", "low", "lo", "sunset", "sunrise",
	"text", "cop", "humidity", "wind", "night",
)

var fcNightOptions = set("text", "cop", "humidity", "wind")

func set(words ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return m
}

func has(m map[string]struct{}, word string) bool {
	_, ok := m[strings.ToLower(word)]
	return ok
}

// isKeyword reports whether word belongs to any command vocabulary. Every
// other token is taken to be the location.
func isKeyword(word string) bool {
	return has(commands, word) || has(ccOptions, word) || has(locOptions, word) ||
		has(fcOptions, word) || has(fcDayOptions, word) || has(fcNightOptions, word)
}
