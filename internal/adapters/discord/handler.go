package discord

import (
	"github.com/bwmarrin/discordgo"

	"tzcal/internal/ports/input"
	"tzcal/internal/ports/output"
)

// Handler handles Discord interactions using use cases.
type Handler struct {
	calendar   input.CalendarUseCase
	translator output.T
}

// NewHandler creates a Handler.
func NewHandler(calendar input.CalendarUseCase, translator output.T) *Handler {
	return &Handler{
		calendar:   calendar,
		translator: translator,
	}
}

// translate renders key in the locale of the user who triggered i.
func (h *Handler) translate(i *discordgo.InteractionCreate, key string, data map[string]any) string {
	return h.translator.T(string(i.Locale), key, data)
}
