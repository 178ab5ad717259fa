package discord

import (
	"log"

	"github.com/bwmarrin/discordgo"

	pkgdiscord "tzcal/pkg/discord"
)

func respondEphemeral(s *discordgo.Session, i *discordgo.Interaction, content string) {
	respond(s, i, &discordgo.InteractionResponseData{
		Content: content,
		Flags:   discordgo.MessageFlagsEphemeral,
	})
}

func respond(s *discordgo.Session, i *discordgo.Interaction, data *discordgo.InteractionResponseData) {
	if err := s.InteractionRespond(i, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: data,
	}); err != nil {
		log.Printf("❌ Interaction response failed: %v", err)
	}
}

// acknowledge closes a component interaction without touching its message.
func acknowledge(s *discordgo.Session, i *discordgo.Interaction) {
	if err := s.InteractionRespond(i, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredMessageUpdate,
	}); err != nil {
		log.Printf("❌ Interaction acknowledge failed: %v", err)
	}
}

// respondError shows the localized message of err to the user only.
func (h *Handler) respondError(s *discordgo.Session, i *discordgo.InteractionCreate, err error) {
	if pkgdiscord.ErrorKey(err) == "errors.generic" {
		log.Printf("❌ Interaction %s failed: %v", i.ID, err)
	}
	respondEphemeral(s, i.Interaction, "❌ "+h.translate(i, pkgdiscord.ErrorKey(err), nil))
}
