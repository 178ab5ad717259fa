package discord

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/bwmarrin/discordgo"
	"github.com/robfig/cron/v3"

	"tzcal/internal/application"
	"tzcal/internal/config"
	"tzcal/internal/domain/entities"
	"tzcal/internal/ports/input"
	"tzcal/internal/ports/output"
	pkgdiscord "tzcal/pkg/discord"
)

// Bot is the Discord adapter.
type Bot struct {
	session    *discordgo.Session
	config     *config.Config
	handler    *Handler
	calendar   input.CalendarUseCase
	translator output.T
	clock      *cron.Cron
}

// NewBot creates a Bot and wires ports: the channel sink -> calendar
// controller (use case) -> handler.
func NewBot(cfg *config.Config, eventUC input.EventUseCase, translator output.T) (*Bot, error) {
	s, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("create discord session: %w", err)
	}
	// Interactions are handled in arrival order.
	s.SyncEvents = true

	sink := NewChannelSink(s, cfg.ChannelID, translator, cfg.Locale)
	selection := entities.NewDisplaySelection(cfg.DisplayZone())
	calendarUC := application.NewCalendarController(eventUC, selection, sink)

	clock, err := newClock(cfg.ClockSchedule, calendarUC)
	if err != nil {
		return nil, err
	}

	bot := &Bot{
		session:    s,
		config:     cfg,
		handler:    NewHandler(calendarUC, translator),
		calendar:   calendarUC,
		translator: translator,
		clock:      clock,
	}
	bot.setupHandlers()
	return bot, nil
}

func (b *Bot) setupHandlers() {
	b.session.AddHandler(b.handleInteraction)
}

func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		if i.ApplicationCommandData().Name == commandName {
			b.handler.HandleCommand(s, i)
		}
	case discordgo.InteractionModalSubmit:
		b.handler.HandleModalSubmit(s, i)
	case discordgo.InteractionMessageComponent:
		customID := i.MessageComponentData().CustomID

		switch {
		case customID == pkgdiscord.CustomIDNewEvent:
			b.handler.HandleNewEvent(s, i)
		case customID == pkgdiscord.CustomIDSelectZone:
			b.handler.HandleSelectZone(s, i)
		case customID == pkgdiscord.CustomIDSelectEvent:
			b.handler.HandleSelectEvent(s, i)
		case strings.HasPrefix(customID, pkgdiscord.PrefixEventPage):
			b.handler.HandleEventPage(s, i)
		case strings.HasPrefix(customID, pkgdiscord.PrefixMove):
			b.handler.HandleMoveEvent(s, i)
		case strings.HasPrefix(customID, pkgdiscord.PrefixDelete):
			b.handler.HandleDelete(s, i)
		case strings.HasPrefix(customID, pkgdiscord.PrefixConfirmDelete),
			strings.HasPrefix(customID, pkgdiscord.PrefixCancelDelete):
			b.handler.HandleDeleteAnswer(s, i)
		}
	}
}

// Start posts the calendar and runs the bot until interrupted.
func (b *Bot) Start() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("open discord session: %w", err)
	}
	defer b.session.Close()

	cmd := calendarCommand(b.translator, b.config.Locale)
	if _, err := b.session.ApplicationCommandCreate(b.session.State.User.ID, b.config.GuildID, cmd); err != nil {
		log.Printf("⚠️ Registering command %s failed: %v", cmd.Name, err)
	}

	if err := b.calendar.Refresh(context.Background()); err != nil {
		log.Printf("❌ Initial calendar render failed: %v", err)
	}
	b.clock.Start()
	defer b.clock.Stop()

	log.Printf("🤖 Calendar online in channel %s (%s). Press CTRL+C to quit.", b.config.ChannelID, b.calendar.Zone())
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	return nil
}
