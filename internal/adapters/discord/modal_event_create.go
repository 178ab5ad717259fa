package discord

import (
	"context"

	"github.com/bwmarrin/discordgo"

	"tzcal/internal/application"
	"tzcal/internal/ports/input"
	"tzcal/internal/ports/output"
	pkgdiscord "tzcal/pkg/discord"
	"tzcal/pkg/tz"
)

// Text input ids of the event modals.
const (
	fieldDate  = "date"
	fieldTitle = string(output.FieldTitle)
	fieldStart = string(output.FieldStartClock)
	fieldEnd   = string(output.FieldEndClock)
)

func (h *Handler) textInput(i *discordgo.InteractionCreate, id, labelKey, placeholderKey, value string, required bool) discordgo.ActionsRow {
	return discordgo.ActionsRow{Components: []discordgo.MessageComponent{
		discordgo.TextInput{
			CustomID:    id,
			Label:       h.translate(i, labelKey, nil),
			Style:       discordgo.TextInputShort,
			Required:    required,
			Value:       value,
			Placeholder: h.translate(i, placeholderKey, nil),
		},
	}}
}

// HandleNewEvent opens the creation modal on today's date in the display zone.
func (h *Handler) HandleNewEvent(s *discordgo.Session, i *discordgo.InteractionCreate) {
	today := tz.FormatDate(tz.Now(h.calendar.Zone()))
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseModal,
		Data: &discordgo.InteractionResponseData{
			CustomID: pkgdiscord.CustomIDCreateModal,
			Title:    h.translate(i, "ui.modal_create_title", nil),
			Components: []discordgo.MessageComponent{
				h.textInput(i, fieldTitle, "ui.label_title", "ui.placeholder_title", "", true),
				h.textInput(i, fieldDate, "ui.label_date", "ui.placeholder_date", today, true),
				h.textInput(i, fieldStart, "ui.label_start", "ui.placeholder_clock", application.DefaultStartClock, false),
				h.textInput(i, fieldEnd, "ui.label_end", "ui.placeholder_clock", application.DefaultEndClock, false),
			},
		},
	})
	if err != nil {
		h.respondError(s, i, err)
	}
}

// handleCreateEventModalSubmit selects the whole typed day and lets the
// controller read the title and clocks from the modal. Blank clocks keep
// the event all-day.
func (h *Handler) handleCreateEventModalSubmit(s *discordgo.Session, i *discordgo.InteractionCreate, data discordgo.ModalSubmitInteractionData) {
	values := pkgdiscord.ModalValues(data)

	day, err := tz.ParseDate(values[fieldDate])
	if err != nil {
		h.respondError(s, i, err)
		return
	}
	sel := input.RangeSelection{Start: day, End: day.AddDays(1), AllDay: true}
	prompter := modalPrompter{answers: map[output.PromptField]string{
		output.FieldTitle:      values[fieldTitle],
		output.FieldStartClock: values[fieldStart],
		output.FieldEndClock:   values[fieldEnd],
	}}

	event, err := h.calendar.SelectRange(context.Background(), sel, prompter)
	if err != nil {
		h.respondError(s, i, err)
		return
	}
	if event == nil {
		respondEphemeral(s, i.Interaction, h.translate(i, "info.nothing_created", nil))
		return
	}
	respondEphemeral(s, i.Interaction, "✅ "+h.translate(i, "info.event_created", nil))
}
