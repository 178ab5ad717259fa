package tz

import (
	"fmt"
	"time"
)

// WallTime is a civil date-time with no offset. It only means something
// relative to a named zone.
type WallTime struct {
	Year   int
	Month  time.Month
	Day    int
	Hour   int
	Minute int
	Second int
}

// Wall builds a WallTime, normalising out-of-range fields the way time.Date does.
func Wall(year int, month time.Month, day, hour, minute, second int) WallTime {
	return FromTime(time.Date(year, month, day, hour, minute, second, 0, time.UTC))
}

// FromTime drops the location of t and keeps its clock reading.
func FromTime(t time.Time) WallTime {
	return WallTime{
		Year:   t.Year(),
		Month:  t.Month(),
		Day:    t.Day(),
		Hour:   t.Hour(),
		Minute: t.Minute(),
		Second: t.Second(),
	}
}

// In resolves w as civil time in loc.
func (w WallTime) In(loc *time.Location) time.Time {
	return time.Date(w.Year, w.Month, w.Day, w.Hour, w.Minute, w.Second, 0, loc)
}

// utc reads w on a fixed timeline so civil values can be compared.
func (w WallTime) utc() time.Time {
	return w.In(time.UTC)
}

// Compare returns -1, 0 or +1.
func (w WallTime) Compare(o WallTime) int {
	return w.utc().Compare(o.utc())
}

func (w WallTime) Before(o WallTime) bool { return w.Compare(o) < 0 }
func (w WallTime) After(o WallTime) bool  { return w.Compare(o) > 0 }
func (w WallTime) Equal(o WallTime) bool  { return w.Compare(o) == 0 }

func (w WallTime) IsZero() bool { return w == WallTime{} }

// Date keeps the calendar date and resets the clock to midnight.
func (w WallTime) Date() WallTime {
	return WallTime{Year: w.Year, Month: w.Month, Day: w.Day}
}

// AddDays shifts the date by n calendar days, leaving the clock alone.
func (w WallTime) AddDays(n int) WallTime {
	return FromTime(w.utc().AddDate(0, 0, n))
}

// Add moves w along the civil timeline by d.
func (w WallTime) Add(d time.Duration) WallTime {
	return FromTime(w.utc().Add(d))
}

// Sub is the civil distance from o to w, ignoring any zone offsets.
func (w WallTime) Sub(o WallTime) time.Duration {
	return w.utc().Sub(o.utc())
}

// WithClock replaces the time of day.
func (w WallTime) WithClock(hour, minute int) WallTime {
	return WallTime{Year: w.Year, Month: w.Month, Day: w.Day, Hour: hour, Minute: minute}
}

// String renders the ISO-8601 local form, e.g. 2024-10-21T15:00:00.
func (w WallTime) String() string {
	return fmt.Sprintf("%04d-%02d-%02dT%02d:%02d:%02d", w.Year, int(w.Month), w.Day, w.Hour, w.Minute, w.Second)
}
