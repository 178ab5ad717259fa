package output

import (
	"context"

	"tzcal/internal/domain/entities"
)

// EventRepository keeps events in insertion order. Find and Update return
// domain.ErrEventNotFound for unknown ids.
type EventRepository interface {
	Create(ctx context.Context, event *entities.Event) error
	FindByID(ctx context.Context, id string) (*entities.Event, error)
	FindAll(ctx context.Context) ([]entities.Event, error)
	Update(ctx context.Context, event *entities.Event) error
	Delete(ctx context.Context, id string) error
}
