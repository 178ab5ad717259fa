package discord

import (
	"context"
	"log"

	"github.com/bwmarrin/discordgo"

	pkgdiscord "tzcal/pkg/discord"
)

// HandleDelete asks for confirmation before deleting an event.
func (h *Handler) HandleDelete(s *discordgo.Session, i *discordgo.InteractionCreate) {
	id, ok := pkgdiscord.EventID(i.MessageComponentData().CustomID, pkgdiscord.PrefixDelete)
	if !ok {
		return
	}
	event, err := h.findEvent(context.Background(), id)
	if err != nil {
		h.respondError(s, i, err)
		return
	}
	respond(s, i.Interaction, &discordgo.InteractionResponseData{
		Content: h.translate(i, "ui.confirm_delete", map[string]any{"Title": event.Title}),
		Flags:   discordgo.MessageFlagsEphemeral,
		Components: []discordgo.MessageComponent{
			discordgo.ActionsRow{Components: []discordgo.MessageComponent{
				discordgo.Button{Label: h.translate(i, "ui.button_confirm_delete", nil), Style: discordgo.DangerButton, CustomID: pkgdiscord.PrefixConfirmDelete + id},
				discordgo.Button{Label: h.translate(i, "ui.button_cancel", nil), Style: discordgo.SecondaryButton, CustomID: pkgdiscord.PrefixCancelDelete + id},
			}},
		},
	})
}

// HandleDeleteAnswer runs the click gesture with the button the user pressed
// and replaces the confirmation prompt with the outcome.
func (h *Handler) HandleDeleteAnswer(s *discordgo.Session, i *discordgo.InteractionCreate) {
	customID := i.MessageComponentData().CustomID
	id, confirmed := pkgdiscord.EventID(customID, pkgdiscord.PrefixConfirmDelete)
	if !confirmed {
		var ok bool
		if id, ok = pkgdiscord.EventID(customID, pkgdiscord.PrefixCancelDelete); !ok {
			return
		}
	}

	if err := h.calendar.ClickEvent(context.Background(), id, confirmPrompter{confirmed: confirmed}); err != nil {
		h.respondError(s, i, err)
		return
	}
	key := "info.delete_cancelled"
	if confirmed {
		key = "info.event_deleted"
	}
	h.updatePrompt(s, i, h.translate(i, key, nil))
}

// updatePrompt rewrites the ephemeral message the component belongs to.
func (h *Handler) updatePrompt(s *discordgo.Session, i *discordgo.InteractionCreate, content string) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: &discordgo.InteractionResponseData{
			Content:    content,
			Components: []discordgo.MessageComponent{},
		},
	})
	if err != nil {
		log.Printf("❌ Interaction update failed: %v", err)
	}
}
