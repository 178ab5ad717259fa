package discord

import (
	"errors"
	"testing"

	"tzcal/internal/domain"
	"tzcal/pkg/tz"
)

func TestParseWallDateTime(t *testing.T) {
	got, err := ParseWallDateTime(" 2024-10-21 ", "9:05")
	if err != nil || got != tz.Wall(2024, 10, 21, 9, 5, 0) {
		t.Fatalf("ParseWallDateTime = %s, %v", got, err)
	}
	if _, err := ParseWallDateTime("21/10/2024", "09:00"); !errors.Is(err, domain.ErrInvalidDate) {
		t.Fatalf("bad date: err = %v", err)
	}
	if _, err := ParseWallDateTime("2024-10-21", "9h"); !errors.Is(err, domain.ErrInvalidClock) {
		t.Fatalf("bad clock: err = %v", err)
	}
}

func TestParseMovedSpan(t *testing.T) {
	start, end, err := ParseMovedSpan("2024-10-21", "11:00", "12:00")
	if err != nil || start != tz.Wall(2024, 10, 21, 11, 0, 0) || end != tz.Wall(2024, 10, 21, 12, 0, 0) {
		t.Fatalf("same day = %s-%s, %v", start, end, err)
	}
	if _, _, err := ParseMovedSpan("2024-10-31", "23:00", "01:00"); !errors.Is(err, domain.ErrInvertedRange) {
		t.Fatalf("end before start: err = %v", err)
	}
}

func TestFormatWhen(t *testing.T) {
	w := tz.Wall(2024, 10, 21, 9, 5, 0)
	if got := FormatWhen(w, false); got != "2024-10-21 09:05" {
		t.Fatalf("timed = %q", got)
	}
	if got := FormatWhen(w, true); got != "2024-10-21" {
		t.Fatalf("all day = %q", got)
	}
}

func TestEventID(t *testing.T) {
	if id, ok := EventID("btn_move_abc", PrefixMove); !ok || id != "abc" {
		t.Fatalf("EventID = %q, %v", id, ok)
	}
	if _, ok := EventID("btn_move_", PrefixMove); ok {
		t.Fatal("empty suffix accepted")
	}
	if _, ok := EventID("btn_delete_abc", PrefixMove); ok {
		t.Fatal("wrong prefix accepted")
	}
}

func TestErrorKey(t *testing.T) {
	if got := ErrorKey(domain.ErrEventNotFound); got != "errors.event_not_found" {
		t.Fatalf("ErrorKey = %q", got)
	}
	if got := ErrorKey(errors.New("boom")); got != "errors.generic" {
		t.Fatalf("ErrorKey = %q", got)
	}
	if got := ErrorKey(nil); got != "" {
		t.Fatalf("ErrorKey(nil) = %q", got)
	}
}

func TestDaysBetween(t *testing.T) {
	a := tz.Wall(2024, 10, 30, 23, 0, 0)
	if got := DaysBetween(a, tz.Wall(2024, 11, 2, 1, 0, 0)); got != 3 {
		t.Fatalf("forward = %d", got)
	}
	if got := DaysBetween(a, tz.Wall(2024, 10, 28, 0, 0, 0)); got != -2 {
		t.Fatalf("backward = %d", got)
	}
}
