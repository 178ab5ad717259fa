package application

import (
	"tzcal/internal/domain/entities"
	"tzcal/pkg/tz"
)

// Project reads every event in displayZone, one ViewEvent per event, in the
// order given. All-day events keep their civil dates. The input is not
// modified.
func Project(events []entities.Event, displayZone string) []entities.ViewEvent {
	out := make([]entities.ViewEvent, 0, len(events))
	for _, e := range events {
		start, end := e.WallStart, e.WallEnd
		if !e.AllDay {
			start = tz.ToZoned(e.WallStart, e.AnchorZone, displayZone)
			end = tz.ToZoned(e.WallEnd, e.AnchorZone, displayZone)
		}
		out = append(out, entities.ViewEvent{
			ID:              e.ID,
			Title:           e.Title,
			Start:           start,
			End:             end,
			AllDay:          e.AllDay,
			SourceZone:      e.AnchorZone,
			SourceZoneLabel: tz.Label(e.AnchorZone),
			AnchorStart:     e.WallStart,
			AnchorEnd:       e.WallEnd,
		})
	}
	return out
}
