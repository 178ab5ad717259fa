package entities

import (
	"time"

	"tzcal/pkg/tz"
)

// Event is a calendar entry anchored to a zone. WallStart and WallEnd are
// civil times read in AnchorZone; any other reading is derived.
type Event struct {
	ID         string
	Title      string
	AnchorZone string
	WallStart  tz.WallTime
	WallEnd    tz.WallTime
	AllDay     bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// ViewEvent is an event as shown in a display zone.
type ViewEvent struct {
	ID              string
	Title           string
	Start           tz.WallTime
	End             tz.WallTime
	AllDay          bool
	SourceZone      string
	SourceZoneLabel string
	// AnchorStart and AnchorEnd are the stored civil times, untouched.
	AnchorStart tz.WallTime
	AnchorEnd   tz.WallTime
}

// View is everything a host needs to render the calendar.
type View struct {
	Zone      string
	ZoneLabel string
	Now       tz.WallTime
	Events    []ViewEvent
}
