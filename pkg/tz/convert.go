package tz

import (
	"fmt"
	"regexp"
	"strconv"
	"sync"
	"time"

	"tzcal/internal/domain"
)

var (
	locations sync.Map // zone id -> *time.Location

	// now is swapped in tests.
	now = time.Now

	clockPattern = regexp.MustCompile(`^([0-1]?[0-9]|2[0-3]):([0-5][0-9])$`)
)

// Load returns the location for an IANA zone id. Locations are cached; the
// offset rules they carry are evaluated per instant, so caching is safe.
func Load(zone string) (*time.Location, error) {
	if v, ok := locations.Load(zone); ok {
		return v.(*time.Location), nil
	}
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return nil, fmt.Errorf("load location %q: %w", zone, err)
	}
	locations.Store(zone, loc)
	return loc, nil
}

// location assumes zone was validated upstream and degrades to UTC otherwise.
func location(zone string) *time.Location {
	loc, err := Load(zone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// ToZoned reads w as civil time in from and returns the same instant as civil
// time in to. The offset used is the one in force at that date in from.
// Zone ids must be validated before calling.
func ToZoned(w WallTime, from, to string) WallTime {
	if from == to {
		return w
	}
	instant := w.In(location(from))
	return FromTime(instant.In(location(to)))
}

// Now is the current instant expressed as civil time in zone.
func Now(zone string) WallTime {
	return FromTime(now().In(location(zone)))
}

func FormatClock(w WallTime) string {
	return fmt.Sprintf("%02d:%02d", w.Hour, w.Minute)
}

func FormatDate(w WallTime) string {
	return fmt.Sprintf("%04d-%02d-%02d", w.Year, int(w.Month), w.Day)
}

func FormatDateTime(w WallTime) string {
	return fmt.Sprintf("%s %s:%02d", FormatDate(w), FormatClock(w), w.Second)
}

// ParseClock parses a 24-hour HH:mm clock. A single-digit hour is accepted.
func ParseClock(s string) (hour, minute int, err error) {
	m := clockPattern.FindStringSubmatch(s)
	if m == nil {
		return 0, 0, domain.ErrInvalidClock
	}
	hour, _ = strconv.Atoi(m[1])
	minute, _ = strconv.Atoi(m[2])
	return hour, minute, nil
}

// ParseDate parses a YYYY-MM-DD calendar date.
func ParseDate(s string) (WallTime, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return WallTime{}, domain.ErrInvalidDate
	}
	return FromTime(t), nil
}
