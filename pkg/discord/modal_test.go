package discord

import (
	"testing"

	"github.com/bwmarrin/discordgo"
)

func TestModalValues(t *testing.T) {
	data := discordgo.ModalSubmitInteractionData{
		CustomID: CustomIDCreateModal,
		Components: []discordgo.MessageComponent{
			&discordgo.ActionsRow{Components: []discordgo.MessageComponent{
				&discordgo.TextInput{CustomID: "title", Value: "Standup"},
			}},
			&discordgo.ActionsRow{Components: []discordgo.MessageComponent{
				&discordgo.TextInput{CustomID: "start", Value: "09:00"},
			}},
		},
	}
	got := ModalValues(data)
	if got["title"] != "Standup" || got["start"] != "09:00" || len(got) != 2 {
		t.Fatalf("ModalValues = %v", got)
	}
}
