package discord

import (
	"context"
	"log"

	"github.com/bwmarrin/discordgo"

	pkgdiscord "tzcal/pkg/discord"
	"tzcal/pkg/tz"
)

// HandleSelectZone switches the display zone. The calendar message is
// re-rendered by the sink.
func (h *Handler) HandleSelectZone(s *discordgo.Session, i *discordgo.InteractionCreate) {
	data := i.MessageComponentData()
	if len(data.Values) == 0 {
		return
	}
	if err := h.calendar.ChangeZone(context.Background(), data.Values[0]); err != nil {
		h.respondError(s, i, err)
		return
	}
	acknowledge(s, i.Interaction)
}

// HandleSelectEvent offers the actions available on the picked event.
func (h *Handler) HandleSelectEvent(s *discordgo.Session, i *discordgo.InteractionCreate) {
	data := i.MessageComponentData()
	if len(data.Values) == 0 {
		return
	}
	id := data.Values[0]
	event, err := h.findEvent(context.Background(), id)
	if err != nil {
		h.respondError(s, i, err)
		return
	}

	respond(s, i.Interaction, &discordgo.InteractionResponseData{
		Content: h.translate(i, "ui.event_actions", map[string]any{
			"Title": event.Title,
			"When":  pkgdiscord.FormatWhen(event.Start, event.AllDay),
			"Zone":  tz.City(event.SourceZone),
		}),
		Flags: discordgo.MessageFlagsEphemeral,
		Components: []discordgo.MessageComponent{
			discordgo.ActionsRow{Components: []discordgo.MessageComponent{
				discordgo.Button{Label: h.translate(i, "ui.button_move", nil), Style: discordgo.SecondaryButton, CustomID: pkgdiscord.PrefixMove + id},
				discordgo.Button{Label: h.translate(i, "ui.button_delete", nil), Style: discordgo.DangerButton, CustomID: pkgdiscord.PrefixDelete + id},
			}},
		},
	})
}

// HandleEventPage shows another page of the event picker. Opened from the
// calendar message it answers privately; inside that answer it turns the page.
func (h *Handler) HandleEventPage(s *discordgo.Session, i *discordgo.InteractionCreate) {
	offset, ok := pkgdiscord.PageOffset(i.MessageComponentData().CustomID)
	if !ok {
		return
	}
	view, err := h.calendar.View(context.Background())
	if err != nil {
		h.respondError(s, i, err)
		return
	}
	content, components := pkgdiscord.BuildEventPage(view, offset, h.translator, string(i.Locale))

	responseType := discordgo.InteractionResponseChannelMessageWithSource
	if i.Message != nil && i.Message.Flags&discordgo.MessageFlagsEphemeral != 0 {
		responseType = discordgo.InteractionResponseUpdateMessage
	}
	if components == nil {
		components = []discordgo.MessageComponent{}
	}
	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: responseType,
		Data: &discordgo.InteractionResponseData{
			Content:    content,
			Flags:      discordgo.MessageFlagsEphemeral,
			Components: components,
		},
	}); err != nil {
		log.Printf("❌ Event page response failed: %v", err)
	}
}
