package discord

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"tzcal/internal/infrastructure/ics"
	"tzcal/internal/ports/output"
)

const (
	commandName       = "calendar"
	subcommandShow    = "show"
	subcommandExport  = "export"
	exportFileName    = "calendar.ics"
	exportContentType = "text/calendar"
)

// calendarCommand describes /calendar in the default locale.
func calendarCommand(t output.T, locale string) *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        commandName,
		Description: t.T(locale, "ui.command_description", nil),
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        subcommandShow,
				Description: t.T(locale, "ui.command_show", nil),
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        subcommandExport,
				Description: t.T(locale, "ui.command_export", nil),
			},
		},
	}
}

func (h *Handler) HandleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	data := i.ApplicationCommandData()
	sub := subcommandShow
	if len(data.Options) > 0 {
		sub = data.Options[0].Name
	}
	switch sub {
	case subcommandExport:
		h.handleExport(s, i)
	default:
		h.handleShow(s, i)
	}
}

func (h *Handler) handleShow(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if err := h.calendar.Refresh(context.Background()); err != nil {
		h.respondError(s, i, err)
		return
	}
	respondEphemeral(s, i.Interaction, h.translate(i, "info.calendar_refreshed", nil))
}

func (h *Handler) handleExport(s *discordgo.Session, i *discordgo.InteractionCreate) {
	view, err := h.calendar.View(context.Background())
	if err != nil {
		h.respondError(s, i, err)
		return
	}
	doc := ics.Encode(view, time.Now())
	respond(s, i.Interaction, &discordgo.InteractionResponseData{
		Content: h.translate(i, "info.export_ready", map[string]any{"Zone": view.Zone}),
		Flags:   discordgo.MessageFlagsEphemeral,
		Files: []*discordgo.File{{
			Name:        exportFileName,
			ContentType: exportContentType,
			Reader:      strings.NewReader(doc),
		}},
	})
}
