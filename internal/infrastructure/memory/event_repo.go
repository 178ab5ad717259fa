package memory

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"tzcal/internal/domain"
	"tzcal/internal/domain/entities"
	"tzcal/internal/ports/output"
)

var _ output.EventRepository = (*EventRepository)(nil)

// EventRepository implements output.EventRepository in process memory.
// Events are kept in insertion order; nothing survives a restart.
type EventRepository struct {
	mu     sync.RWMutex
	events []entities.Event
	index  map[string]int // id -> position in events
	now    func() time.Time
}

func NewEventRepository() *EventRepository {
	return &EventRepository{
		index: make(map[string]int),
		now:   time.Now,
	}
}

func (r *EventRepository) Create(ctx context.Context, event *entities.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if event.ID == "" {
		return errors.New("create event: missing id")
	}
	if _, exists := r.index[event.ID]; exists {
		return fmt.Errorf("create event: duplicate id %s", event.ID)
	}
	ts := r.now()
	event.CreatedAt = ts
	event.UpdatedAt = ts
	r.index[event.ID] = len(r.events)
	r.events = append(r.events, *event)
	return nil
}

func (r *EventRepository) FindByID(ctx context.Context, id string) (*entities.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	pos, ok := r.index[id]
	if !ok {
		return nil, domain.ErrEventNotFound
	}
	e := r.events[pos]
	return &e, nil
}

func (r *EventRepository) FindAll(ctx context.Context) ([]entities.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entities.Event, len(r.events))
	copy(out, r.events)
	return out, nil
}

func (r *EventRepository) Update(ctx context.Context, event *entities.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	pos, ok := r.index[event.ID]
	if !ok {
		return domain.ErrEventNotFound
	}
	event.CreatedAt = r.events[pos].CreatedAt
	event.UpdatedAt = r.now()
	r.events[pos] = *event
	return nil
}

func (r *EventRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	pos, ok := r.index[id]
	if !ok {
		return domain.ErrEventNotFound
	}
	r.events = append(r.events[:pos], r.events[pos+1:]...)
	delete(r.index, id)
	for i := pos; i < len(r.events); i++ {
		r.index[r.events[i].ID] = i
	}
	return nil
}
