package discord

import (
	"context"

	"tzcal/internal/domain/entities"
	"tzcal/internal/ports/output"
)

// modalPrompter answers the controller's prompts from a submitted modal.
// Fields absent from the modal count as cancelled.
type modalPrompter struct {
	answers map[output.PromptField]string
}

var _ output.Prompter = modalPrompter{}

func (p modalPrompter) Prompt(_ context.Context, field output.PromptField, _ string) (string, bool) {
	v, ok := p.answers[field]
	return v, ok
}

func (p modalPrompter) Confirm(context.Context, entities.Event) bool {
	return false
}

// confirmPrompter carries the button the user pressed on a delete prompt.
type confirmPrompter struct {
	confirmed bool
}

var _ output.Prompter = confirmPrompter{}

func (p confirmPrompter) Prompt(context.Context, output.PromptField, string) (string, bool) {
	return "", false
}

func (p confirmPrompter) Confirm(context.Context, entities.Event) bool {
	return p.confirmed
}
