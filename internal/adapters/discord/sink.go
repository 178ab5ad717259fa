package discord

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/bwmarrin/discordgo"

	"tzcal/internal/domain/entities"
	"tzcal/internal/ports/output"
	pkgdiscord "tzcal/pkg/discord"
)

// messenger is the part of the Discord session the sink needs.
type messenger interface {
	ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend, options ...discordgo.RequestOption) (*discordgo.Message, error)
	ChannelMessageEditComplex(m *discordgo.MessageEdit, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// ChannelSink keeps a single calendar message up to date in a channel. The
// message is posted on the first render and edited afterwards. A new one is
// posted only when Discord reports the old one as deleted.
type ChannelSink struct {
	mu         sync.Mutex
	session    messenger
	channelID  string
	messageID  string
	translator output.T
	locale     string
}

var _ output.ViewSink = (*ChannelSink)(nil)

func NewChannelSink(session messenger, channelID string, translator output.T, locale string) *ChannelSink {
	return &ChannelSink{
		session:    session,
		channelID:  channelID,
		translator: translator,
		locale:     locale,
	}
}

func (c *ChannelSink) Render(_ context.Context, view entities.View) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	embeds := []*discordgo.MessageEmbed{pkgdiscord.BuildCalendarEmbed(view, c.translator, c.locale)}
	components := pkgdiscord.BuildCalendarComponents(view, c.translator, c.locale)

	if c.messageID != "" {
		_, err := c.session.ChannelMessageEditComplex(&discordgo.MessageEdit{
			ID:         c.messageID,
			Channel:    c.channelID,
			Embeds:     &embeds,
			Components: &components,
		})
		if err == nil {
			return nil
		}
		if !isUnknownMessage(err) {
			return fmt.Errorf("edit calendar message: %w", err)
		}
		log.Printf("⚠️ Calendar message %s is gone, posting a new one", c.messageID)
	}

	msg, err := c.session.ChannelMessageSendComplex(c.channelID, &discordgo.MessageSend{
		Embeds:     embeds,
		Components: components,
	})
	if err != nil {
		return fmt.Errorf("send calendar message: %w", err)
	}
	c.messageID = msg.ID
	return nil
}

func isUnknownMessage(err error) bool {
	var restErr *discordgo.RESTError
	return errors.As(err, &restErr) && restErr.Message != nil &&
		restErr.Message.Code == discordgo.ErrCodeUnknownMessage
}

// MessageID is the id of the calendar message, empty before the first render.
func (c *ChannelSink) MessageID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.messageID
}
