package discord

import (
	"strconv"
	"strings"
)

// Component and modal custom IDs. Prefixed IDs carry an event id suffix.
const (
	CustomIDNewEvent    = "btn_new_event"
	CustomIDSelectZone  = "select_zone"
	CustomIDSelectEvent = "select_event"
	CustomIDCreateModal = "create_event_modal"

	PrefixMove          = "btn_move_"
	PrefixDelete        = "btn_delete_"
	PrefixConfirmDelete = "btn_confirm_delete_"
	PrefixCancelDelete  = "btn_cancel_delete_"
	PrefixMoveModal     = "move_event_modal_"
	PrefixEventPage     = "btn_event_page_"
)

// EventID returns the suffix of customID after prefix.
func EventID(customID, prefix string) (string, bool) {
	if !strings.HasPrefix(customID, prefix) {
		return "", false
	}
	id := strings.TrimPrefix(customID, prefix)
	return id, id != ""
}

// PageOffset returns the event offset carried by a page button.
func PageOffset(customID string) (int, bool) {
	raw, ok := EventID(customID, PrefixEventPage)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}
