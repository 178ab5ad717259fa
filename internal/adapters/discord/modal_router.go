package discord

import (
	"github.com/bwmarrin/discordgo"

	pkgdiscord "tzcal/pkg/discord"
)

// HandleModalSubmit routes submitted modals by CustomID.
func (h *Handler) HandleModalSubmit(s *discordgo.Session, i *discordgo.InteractionCreate) {
	data := i.ModalSubmitData()
	if data.CustomID == pkgdiscord.CustomIDCreateModal {
		h.handleCreateEventModalSubmit(s, i, data)
		return
	}
	if id, ok := pkgdiscord.EventID(data.CustomID, pkgdiscord.PrefixMoveModal); ok {
		h.handleMoveEventModalSubmit(s, i, id, data)
	}
	// Unknown modals are ignored.
}
