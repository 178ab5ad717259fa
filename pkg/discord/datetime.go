package discord

import (
	"strings"
	"time"

	"tzcal/internal/domain"
	"tzcal/pkg/tz"
)

// ParseWallDateTime combines a YYYY-MM-DD date and an HH:mm clock.
func ParseWallDateTime(dateStr, clockStr string) (tz.WallTime, error) {
	date, err := tz.ParseDate(strings.TrimSpace(dateStr))
	if err != nil {
		return tz.WallTime{}, err
	}
	h, m, err := tz.ParseClock(strings.TrimSpace(clockStr))
	if err != nil {
		return tz.WallTime{}, err
	}
	return date.WithClock(h, m), nil
}

// ParseMovedSpan reads the date and clocks typed in the move modal. Both
// clocks apply to the same date, as in the create modal; an end clock
// earlier than the start clock is rejected.
func ParseMovedSpan(dateStr, startClock, endClock string) (start, end tz.WallTime, err error) {
	start, err = ParseWallDateTime(dateStr, startClock)
	if err != nil {
		return start, end, err
	}
	end, err = ParseWallDateTime(dateStr, endClock)
	if err != nil {
		return start, end, err
	}
	if end.Before(start) {
		return start, end, domain.ErrInvertedRange
	}
	return start, end, nil
}

// FormatWhen is the short "date clock" form used in menus.
func FormatWhen(w tz.WallTime, allDay bool) string {
	if allDay {
		return tz.FormatDate(w)
	}
	return tz.FormatDate(w) + " " + tz.FormatClock(w)
}

// DaysBetween is the number of calendar days from a's date to b's date.
func DaysBetween(a, b tz.WallTime) int {
	d := b.Date().In(time.UTC).Sub(a.Date().In(time.UTC))
	return int(d.Hours() / 24)
}
