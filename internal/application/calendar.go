package application

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"

	"tzcal/internal/domain"
	"tzcal/internal/domain/entities"
	"tzcal/internal/ports/input"
	"tzcal/internal/ports/output"
	"tzcal/pkg/tz"
)

// Clocks suggested when a range is selected.
const (
	DefaultStartClock = "09:00"
	DefaultEndClock   = "10:00"
)

var _ input.CalendarUseCase = (*CalendarController)(nil)

// CalendarController turns widget gestures into event store operations and
// pushes the re-projected calendar to the sink after each of them.
//
// Gestures and clock ticks are serialised: each one runs to completion,
// render included, before the next starts.
type CalendarController struct {
	mu        sync.Mutex
	events    input.EventUseCase
	selection *entities.DisplaySelection
	sink      output.ViewSink
}

func NewCalendarController(events input.EventUseCase, selection *entities.DisplaySelection, sink output.ViewSink) *CalendarController {
	return &CalendarController{
		events:    events,
		selection: selection,
		sink:      sink,
	}
}

// SelectRange creates an event on the selected range, anchored to the display
// zone. A cancelled or blank title aborts without error.
func (c *CalendarController) SelectRange(ctx context.Context, sel input.RangeSelection, p output.Prompter) (*entities.Event, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if sel.End.Before(sel.Start) {
		return nil, domain.ErrInvertedRange
	}

	title, ok := p.Prompt(ctx, output.FieldTitle, "")
	title = strings.TrimSpace(title)
	if !ok || title == "" {
		return nil, nil
	}

	startClock, ok := p.Prompt(ctx, output.FieldStartClock, DefaultStartClock)
	if !ok {
		return nil, nil
	}
	startClock = strings.TrimSpace(startClock)
	if startClock != "" {
		if _, _, err := tz.ParseClock(startClock); err != nil {
			return nil, err
		}
	}
	endClock, ok := p.Prompt(ctx, output.FieldEndClock, DefaultEndClock)
	if !ok {
		return nil, nil
	}

	start, end, allDay, err := resolveRange(sel, startClock, strings.TrimSpace(endClock))
	if err != nil {
		return nil, err
	}

	zone := c.selection.Zone()
	event, err := c.events.CreateEvent(ctx, title, start, end, zone, allDay)
	if err != nil {
		return nil, err
	}
	log.Printf("✅ Event %s created (%s → %s, %s)", event.ID, start, end, zone)
	c.publish(ctx)
	return event, nil
}

// resolveRange applies the typed clocks to the selection. With both clocks
// left blank the selection keeps its own times and all-day flag. An all-day
// selection ends the day before its exclusive end.
func resolveRange(sel input.RangeSelection, startClock, endClock string) (start, end tz.WallTime, allDay bool, err error) {
	if startClock == "" && endClock == "" {
		return sel.Start, sel.End, sel.AllDay, nil
	}
	sh, sm, err := tz.ParseClock(startClock)
	if err != nil {
		return start, end, false, err
	}
	eh, em, err := tz.ParseClock(endClock)
	if err != nil {
		return start, end, false, err
	}

	startDate := sel.Start.Date()
	endDate := startDate
	if sel.AllDay {
		endDate = sel.End.AddDays(-1).Date()
		if endDate.Before(startDate) {
			endDate = startDate
		}
	}
	return startDate.WithClock(sh, sm), endDate.WithClock(eh, em), false, nil
}

// DragEvent re-anchors a moved or resized event to the display zone. An event
// deleted in the meantime is ignored.
func (c *CalendarController) DragEvent(ctx context.Context, id string, newStart, newEnd tz.WallTime) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	zone := c.selection.Zone()
	if _, err := c.events.ReanchorEvent(ctx, id, newStart, newEnd, zone); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			log.Printf("⚠️ Drag on missing event %s ignored", id)
			return nil
		}
		return err
	}
	log.Printf("✅ Event %s re-anchored to %s (%s → %s)", id, zone, newStart, newEnd)
	c.publish(ctx)
	return nil
}

// ClickEvent deletes the event once the user confirms.
func (c *CalendarController) ClickEvent(ctx context.Context, id string, p output.Prompter) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	event, err := c.events.GetEvent(ctx, id)
	if err != nil {
		return err
	}
	if !p.Confirm(ctx, *event) {
		return nil
	}
	if err := c.events.DeleteEvent(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil
		}
		return err
	}
	log.Printf("🗑️ Event %s deleted", id)
	c.publish(ctx)
	return nil
}

// ChangeZone switches the display zone. Unknown ids leave it unchanged.
func (c *CalendarController) ChangeZone(ctx context.Context, zone string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !tz.IsValid(zone) {
		return fmt.Errorf("%w: %q", domain.ErrUnknownZone, zone)
	}
	c.selection.Set(zone)
	c.publish(ctx)
	return nil
}

// Refresh re-renders the current view.
func (c *CalendarController) Refresh(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.render(ctx)
}

// Tick re-renders so the current-time line follows the clock.
func (c *CalendarController) Tick(ctx context.Context) error {
	return c.Refresh(ctx)
}

func (c *CalendarController) View(ctx context.Context) (entities.View, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.view(ctx)
}

func (c *CalendarController) Zone() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.selection.Zone()
}

func (c *CalendarController) view(ctx context.Context) (entities.View, error) {
	events, err := c.events.ListEvents(ctx)
	if err != nil {
		return entities.View{}, fmt.Errorf("list events: %w", err)
	}
	zone := c.selection.Zone()
	return entities.View{
		Zone:      zone,
		ZoneLabel: tz.Label(zone),
		Now:       tz.Now(zone),
		Events:    Project(events, zone),
	}, nil
}

func (c *CalendarController) render(ctx context.Context) error {
	v, err := c.view(ctx)
	if err != nil {
		return err
	}
	if err := c.sink.Render(ctx, v); err != nil {
		return fmt.Errorf("render view: %w", err)
	}
	return nil
}

// publish renders after a mutation. The mutation stands even if the host
// fails to display it.
func (c *CalendarController) publish(ctx context.Context) {
	if err := c.render(ctx); err != nil {
		log.Printf("❌ Calendar render failed: %v", err)
	}
}
