package discord

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"tzcal/internal/domain/entities"
	"tzcal/internal/ports/output"
	"tzcal/pkg/tz"
)

const (
	embedColor = 0x0866FF

	// Discord caps embeds at 25 fields and select menus at 25 options.
	maxEmbedFields  = 25
	maxMenuOptions  = 25
	maxOptionLength = 100
)

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

func eventLine(t output.T, locale string, e entities.ViewEvent) string {
	if e.AllDay {
		return fmt.Sprintf("%s · %s", t.T(locale, "ui.all_day", nil), e.SourceZoneLabel)
	}
	return t.T(locale, "ui.event_line", map[string]any{
		"Local":    tz.FormatClock(e.Start),
		"City":     tz.City(e.SourceZone),
		"Original": tz.FormatClock(e.AnchorStart),
	})
}

// BuildCalendarEmbed renders the view: zone, current local time and one field
// per event.
func BuildCalendarEmbed(view entities.View, t output.T, locale string) *discordgo.MessageEmbed {
	desc := t.T(locale, "ui.current_zone", map[string]any{"Zone": view.Zone, "Label": view.ZoneLabel}) +
		"\n" + t.T(locale, "ui.local_time", map[string]any{"Now": tz.FormatDateTime(view.Now)})
	if len(view.Events) == 0 {
		desc += "\n\n" + t.T(locale, "ui.no_events", nil)
	}

	embed := &discordgo.MessageEmbed{
		Title:       t.T(locale, "ui.calendar_title", map[string]any{"Zone": view.Zone}),
		Description: desc,
		Color:       embedColor,
	}
	for i, e := range view.Events {
		if i == maxEmbedFields {
			embed.Footer = &discordgo.MessageEmbedFooter{Text: fmt.Sprintf("+%d", len(view.Events)-maxEmbedFields)}
			break
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  truncate(fmt.Sprintf("%s · %s", e.Title, FormatWhen(e.Start, e.AllDay)), 256),
			Value: eventLine(t, locale, e),
		})
	}
	return embed
}

// ZoneOptions lists the catalog zones for the selector, marking current as
// the default. A current zone outside the catalog is appended.
func ZoneOptions(current string) []discordgo.SelectMenuOption {
	found := false
	options := make([]discordgo.SelectMenuOption, 0, len(tz.Zones())+1)
	for _, z := range tz.Zones() {
		isCurrent := z.ID == current
		found = found || isCurrent
		options = append(options, discordgo.SelectMenuOption{
			Label:       z.Label,
			Value:       z.ID,
			Description: z.ID,
			Default:     isCurrent,
		})
	}
	if !found && current != "" {
		options = append(options, discordgo.SelectMenuOption{
			Label:       tz.Label(current),
			Value:       current,
			Description: current,
			Default:     true,
		})
	}
	return options
}

// pageStart clamps offset to the first event of an existing page.
func pageStart(total, offset int) int {
	if offset <= 0 || total == 0 {
		return 0
	}
	if offset >= total {
		offset = total - 1
	}
	return offset - offset%maxMenuOptions
}

// EventOptions lists the events of the page starting at offset.
func EventOptions(view entities.View, offset int) []discordgo.SelectMenuOption {
	from := pageStart(len(view.Events), offset)
	to := min(from+maxMenuOptions, len(view.Events))
	options := make([]discordgo.SelectMenuOption, 0, to-from)
	for _, e := range view.Events[from:to] {
		options = append(options, discordgo.SelectMenuOption{
			Label:       truncate(e.Title, maxOptionLength),
			Value:       e.ID,
			Description: FormatWhen(e.Start, e.AllDay),
		})
	}
	return options
}

func eventSelect(view entities.View, offset int, t output.T, locale string) discordgo.ActionsRow {
	return discordgo.ActionsRow{Components: []discordgo.MessageComponent{
		discordgo.SelectMenu{
			MenuType:    discordgo.StringSelectMenu,
			CustomID:    CustomIDSelectEvent,
			Placeholder: t.T(locale, "ui.select_event_placeholder", nil),
			Options:     EventOptions(view, offset),
		},
	}}
}

// pageButtons links the page at offset to its neighbours.
func pageButtons(view entities.View, offset int, t output.T, locale string) []discordgo.MessageComponent {
	from := pageStart(len(view.Events), offset)
	var buttons []discordgo.MessageComponent
	if from > 0 {
		buttons = append(buttons, discordgo.Button{
			Label:    t.T(locale, "ui.button_previous_events", nil),
			Style:    discordgo.SecondaryButton,
			CustomID: fmt.Sprintf("%s%d", PrefixEventPage, from-maxMenuOptions),
		})
	}
	if from+maxMenuOptions < len(view.Events) {
		buttons = append(buttons, discordgo.Button{
			Label:    t.T(locale, "ui.button_next_events", nil),
			Style:    discordgo.SecondaryButton,
			CustomID: fmt.Sprintf("%s%d", PrefixEventPage, from+maxMenuOptions),
		})
	}
	return buttons
}

// BuildCalendarComponents returns the zone selector, the first page of the
// event picker (when there are events) and the new-event button, followed by
// a link to the next page when the events do not fit.
func BuildCalendarComponents(view entities.View, t output.T, locale string) []discordgo.MessageComponent {
	rows := []discordgo.MessageComponent{
		discordgo.ActionsRow{Components: []discordgo.MessageComponent{
			discordgo.SelectMenu{
				MenuType:    discordgo.StringSelectMenu,
				CustomID:    CustomIDSelectZone,
				Placeholder: t.T(locale, "ui.select_zone_placeholder", nil),
				Options:     ZoneOptions(view.Zone),
			},
		}},
	}
	if len(view.Events) > 0 {
		rows = append(rows, eventSelect(view, 0, t, locale))
	}
	buttons := []discordgo.MessageComponent{
		discordgo.Button{
			Label:    t.T(locale, "ui.button_new_event", nil),
			Style:    discordgo.PrimaryButton,
			CustomID: CustomIDNewEvent,
		},
	}
	buttons = append(buttons, pageButtons(view, 0, t, locale)...)
	return append(rows, discordgo.ActionsRow{Components: buttons})
}

// BuildEventPage renders the event picker page starting at offset with its
// navigation buttons.
func BuildEventPage(view entities.View, offset int, t output.T, locale string) (string, []discordgo.MessageComponent) {
	total := len(view.Events)
	if total == 0 {
		return t.T(locale, "ui.no_events", nil), nil
	}
	from := pageStart(total, offset)
	to := min(from+maxMenuOptions, total)
	content := t.T(locale, "ui.event_page", map[string]any{"From": from + 1, "To": to, "Total": total})
	rows := []discordgo.MessageComponent{eventSelect(view, from, t, locale)}
	if buttons := pageButtons(view, from, t, locale); len(buttons) > 0 {
		rows = append(rows, discordgo.ActionsRow{Components: buttons})
	}
	return content, rows
}
