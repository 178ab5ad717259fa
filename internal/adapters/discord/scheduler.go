package discord

import (
	"context"
	"fmt"
	"log"

	"github.com/robfig/cron/v3"

	"tzcal/internal/ports/input"
)

// newClock schedules calendar ticks so the displayed current time follows
// the wall clock. The returned scheduler is not started.
func newClock(schedule string, calendar input.CalendarUseCase) (*cron.Cron, error) {
	c := cron.New()
	if _, err := c.AddFunc(schedule, func() {
		if err := calendar.Tick(context.Background()); err != nil {
			log.Printf("❌ Calendar tick failed: %v", err)
		}
	}); err != nil {
		return nil, fmt.Errorf("clock schedule %q: %w", schedule, err)
	}
	return c, nil
}
