package output

import (
	"context"

	"tzcal/internal/domain/entities"
)

// ViewSink receives the refreshed calendar after every mutation or zone change.
type ViewSink interface {
	Render(ctx context.Context, view entities.View) error
}

// PromptField names a value the controller asks the user for.
type PromptField string

const (
	FieldTitle      PromptField = "title"
	FieldStartClock PromptField = "start"
	FieldEndClock   PromptField = "end"
)

// Prompter collects answers for a single gesture. ok is false when the user
// cancelled.
type Prompter interface {
	Prompt(ctx context.Context, field PromptField, defaultValue string) (value string, ok bool)
	Confirm(ctx context.Context, event entities.Event) bool
}
