package discord

import (
	"context"
	"strings"

	"github.com/bwmarrin/discordgo"

	"tzcal/internal/domain"
	"tzcal/internal/domain/entities"
	pkgdiscord "tzcal/pkg/discord"
	"tzcal/pkg/tz"
)

// findEvent looks id up in the current projection.
func (h *Handler) findEvent(ctx context.Context, id string) (entities.ViewEvent, error) {
	view, err := h.calendar.View(ctx)
	if err != nil {
		return entities.ViewEvent{}, err
	}
	for _, e := range view.Events {
		if e.ID == id {
			return e, nil
		}
	}
	return entities.ViewEvent{}, domain.ErrEventNotFound
}

// HandleMoveEvent opens the move modal prefilled with the event as displayed.
func (h *Handler) HandleMoveEvent(s *discordgo.Session, i *discordgo.InteractionCreate) {
	id, ok := pkgdiscord.EventID(i.MessageComponentData().CustomID, pkgdiscord.PrefixMove)
	if !ok {
		return
	}
	event, err := h.findEvent(context.Background(), id)
	if err != nil {
		h.respondError(s, i, err)
		return
	}

	startClock, endClock := tz.FormatClock(event.Start), tz.FormatClock(event.End)
	if event.AllDay {
		startClock, endClock = "", ""
	}
	err = s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseModal,
		Data: &discordgo.InteractionResponseData{
			CustomID: pkgdiscord.PrefixMoveModal + id,
			Title:    h.translate(i, "ui.modal_move_title", nil),
			Components: []discordgo.MessageComponent{
				h.textInput(i, fieldDate, "ui.label_date", "ui.placeholder_date", tz.FormatDate(event.Start), true),
				h.textInput(i, fieldStart, "ui.label_start", "ui.placeholder_clock", startClock, false),
				h.textInput(i, fieldEnd, "ui.label_end", "ui.placeholder_clock", endClock, false),
			},
		},
	})
	if err != nil {
		h.respondError(s, i, err)
	}
}

// movedSpan turns the move modal into the new wall span, read in the display
// zone. All-day events are shifted by whole days and keep their length. A
// timed event whose end clock is left as prefilled keeps its duration, so
// events spanning several days survive a move.
func movedSpan(event entities.ViewEvent, values map[string]string) (start, end tz.WallTime, err error) {
	dateStr := strings.TrimSpace(values[fieldDate])
	startClock := strings.TrimSpace(values[fieldStart])
	endClock := strings.TrimSpace(values[fieldEnd])
	if event.AllDay && startClock == "" && endClock == "" {
		day, err := tz.ParseDate(dateStr)
		if err != nil {
			return start, end, err
		}
		shift := pkgdiscord.DaysBetween(event.Start, day)
		return event.Start.AddDays(shift), event.End.AddDays(shift), nil
	}
	if !event.AllDay && endClock == tz.FormatClock(event.End) {
		start, err = pkgdiscord.ParseWallDateTime(dateStr, startClock)
		if err != nil {
			return start, end, err
		}
		return start, start.Add(event.End.Sub(event.Start)), nil
	}
	return pkgdiscord.ParseMovedSpan(dateStr, startClock, endClock)
}

func (h *Handler) handleMoveEventModalSubmit(s *discordgo.Session, i *discordgo.InteractionCreate, id string, data discordgo.ModalSubmitInteractionData) {
	ctx := context.Background()
	event, err := h.findEvent(ctx, id)
	if err != nil {
		h.respondError(s, i, err)
		return
	}
	start, end, err := movedSpan(event, pkgdiscord.ModalValues(data))
	if err != nil {
		h.respondError(s, i, err)
		return
	}
	if err := h.calendar.DragEvent(ctx, id, start, end); err != nil {
		h.respondError(s, i, err)
		return
	}
	respondEphemeral(s, i.Interaction, "✅ "+h.translate(i, "info.event_moved", map[string]any{"Zone": h.calendar.Zone()}))
}
