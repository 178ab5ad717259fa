// Package ics encodes a projected calendar view as an iCalendar document.
package ics

import (
	"fmt"
	"time"

	ical "github.com/arran4/golang-ical"

	"tzcal/internal/domain/entities"
	"tzcal/pkg/tz"
)

const productID = "-//tzcal//Time Zone Calendar//EN"

// Encode renders view as VCALENDAR text. Timed events are written as UTC
// instants; all-day events keep their civil dates.
func Encode(view entities.View, stamp time.Time) string {
	cal := ical.NewCalendar()
	cal.SetProductId(productID)
	cal.SetMethod(ical.MethodPublish)
	cal.SetXWRCalName(fmt.Sprintf("Calendar (%s)", view.ZoneLabel))
	cal.SetXWRTimezone(view.Zone)

	loc, err := tz.Load(view.Zone)
	if err != nil {
		loc = time.UTC
	}

	for _, e := range view.Events {
		ev := cal.AddEvent(e.ID + "@tzcal")
		ev.SetSummary(e.Title)
		ev.SetDtStampTime(stamp)
		if e.AllDay {
			ev.SetAllDayStartAt(e.Start.In(time.UTC))
			ev.SetAllDayEndAt(e.End.In(time.UTC))
		} else {
			ev.SetStartAt(e.Start.In(loc))
			ev.SetEndAt(e.End.In(loc))
		}
		ev.SetDescription(fmt.Sprintf("Original (%s): %s %s-%s",
			e.SourceZone, tz.FormatDate(e.AnchorStart), tz.FormatClock(e.AnchorStart), tz.FormatClock(e.AnchorEnd)))
	}
	return cal.Serialize()
}
