package util

import (
	"strings"
	"time"
)

const layout = "2006-01-02T15:04:05"

const dateLayout = "2006-01-02"

var saoPauloLocation *time.Location

func init() {
	var err error
	saoPauloLocation, err = time.LoadLocation("America/Sao_Paulo")
	if err != nil {
		saoPauloLocation = time.FixedZone("BRT", -3*60*60)
	}
}

// DefaultLocation is the zone used when APP_TIMEZONE is not set.
func DefaultLocation() *time.Location {
	return saoPauloLocation
}

// LoadLocation resolves name, falling back to DefaultLocation for an empty
// or unknown zone.
func LoadLocation(name string) *time.Location {
	if name == "" {
		return saoPauloLocation
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return saoPauloLocation
	}
	return loc
}

// ParseTimestamp accepts the formats the clients have written over time.
// Zoneless values are read in loc. ok is false for anything unparsable.
func ParseTimestamp(s string, loc *time.Location) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	if loc == nil {
		loc = saoPauloLocation
	}

	for _, l := range []string{time.RFC3339Nano, time.RFC3339} {
		if t, err := time.Parse(l, s); err == nil {
			return t, true
		}
	}
	for _, l := range []string{layout, dateLayout} {
		if t, err := time.ParseInLocation(l, s, loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// ParseDate parses a YYYY-MM-DD calendar date at midnight in loc.
func ParseDate(s string, loc *time.Location) (time.Time, bool) {
	if loc == nil {
		loc = saoPauloLocation
	}
	t, err := time.ParseInLocation(dateLayout, strings.TrimSpace(s), loc)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
