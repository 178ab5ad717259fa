package input

import (
	"context"

	"tzcal/internal/domain/entities"
	"tzcal/pkg/tz"
)

// EventUseCase is the event store: the authoritative, ordered set of events.
type EventUseCase interface {
	CreateEvent(ctx context.Context, title string, wallStart, wallEnd tz.WallTime, anchorZone string, allDay bool) (*entities.Event, error)
	DeleteEvent(ctx context.Context, id string) error
	ReanchorEvent(ctx context.Context, id string, wallStart, wallEnd tz.WallTime, observedInZone string) (*entities.Event, error)
	GetEvent(ctx context.Context, id string) (*entities.Event, error)
	ListEvents(ctx context.Context) ([]entities.Event, error)
}
