package input

import (
	"context"

	"tzcal/internal/domain/entities"
	"tzcal/internal/ports/output"
	"tzcal/pkg/tz"
)

// RangeSelection is a range picked on the calendar grid, already expressed in
// the display zone. End is exclusive for all-day selections.
type RangeSelection struct {
	Start  tz.WallTime
	End    tz.WallTime
	AllDay bool
}

// CalendarUseCase receives gestures from the host calendar widget.
type CalendarUseCase interface {
	SelectRange(ctx context.Context, sel RangeSelection, p output.Prompter) (*entities.Event, error)
	DragEvent(ctx context.Context, id string, newStart, newEnd tz.WallTime) error
	ClickEvent(ctx context.Context, id string, p output.Prompter) error
	ChangeZone(ctx context.Context, zone string) error
	Refresh(ctx context.Context) error
	Tick(ctx context.Context) error
	View(ctx context.Context) (entities.View, error)
	Zone() string
}
