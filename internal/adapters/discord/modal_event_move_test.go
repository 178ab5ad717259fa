package discord

import (
	"context"
	"errors"
	"testing"

	"tzcal/internal/domain"
	"tzcal/internal/domain/entities"
	"tzcal/internal/ports/output"
	"tzcal/pkg/tz"
)

func TestMovedSpan(t *testing.T) {
	timed := entities.ViewEvent{
		ID:    "a",
		Start: tz.Wall(2024, 10, 21, 10, 0, 0),
		End:   tz.Wall(2024, 10, 21, 11, 0, 0),
	}
	multiDay := entities.ViewEvent{
		ID:    "c",
		Start: tz.Wall(2024, 10, 2, 14, 0, 0),
		End:   tz.Wall(2024, 10, 3, 15, 0, 0),
	}
	allDay := entities.ViewEvent{
		ID:     "b",
		Start:  tz.Wall(2024, 12, 24, 0, 0, 0),
		End:    tz.Wall(2024, 12, 26, 0, 0, 0),
		AllDay: true,
	}

	tests := []struct {
		name      string
		event     entities.ViewEvent
		values    map[string]string
		wantStart tz.WallTime
		wantEnd   tz.WallTime
		wantErr   error
	}{
		{
			name:      "timed",
			event:     timed,
			values:    map[string]string{fieldDate: "2024-10-22", fieldStart: "11:00", fieldEnd: "12:30"},
			wantStart: tz.Wall(2024, 10, 22, 11, 0, 0),
			wantEnd:   tz.Wall(2024, 10, 22, 12, 30, 0),
		},
		{
			name:      "multi-day event submitted unchanged",
			event:     multiDay,
			values:    map[string]string{fieldDate: "2024-10-02", fieldStart: "14:00", fieldEnd: "15:00"},
			wantStart: tz.Wall(2024, 10, 2, 14, 0, 0),
			wantEnd:   tz.Wall(2024, 10, 3, 15, 0, 0),
		},
		{
			name:      "multi-day event moved keeps its length",
			event:     multiDay,
			values:    map[string]string{fieldDate: "2024-10-05", fieldStart: "09:30", fieldEnd: "15:00"},
			wantStart: tz.Wall(2024, 10, 5, 9, 30, 0),
			wantEnd:   tz.Wall(2024, 10, 6, 10, 30, 0),
		},
		{
			name:      "untouched end clock shifts with the start",
			event:     timed,
			values:    map[string]string{fieldDate: "2024-10-21", fieldStart: "10:30", fieldEnd: "11:00"},
			wantStart: tz.Wall(2024, 10, 21, 10, 30, 0),
			wantEnd:   tz.Wall(2024, 10, 21, 11, 30, 0),
		},
		{
			name:    "edited end before start",
			event:   timed,
			values:  map[string]string{fieldDate: "2024-10-22", fieldStart: "23:00", fieldEnd: "01:00"},
			wantErr: domain.ErrInvertedRange,
		},
		{
			name:      "all day keeps its length",
			event:     allDay,
			values:    map[string]string{fieldDate: "2024-12-30"},
			wantStart: tz.Wall(2024, 12, 30, 0, 0, 0),
			wantEnd:   tz.Wall(2025, 1, 1, 0, 0, 0),
		},
		{
			name:    "bad date",
			event:   allDay,
			values:  map[string]string{fieldDate: "30/12/2024"},
			wantErr: domain.ErrInvalidDate,
		},
		{
			name:    "blank clocks on a timed event",
			event:   timed,
			values:  map[string]string{fieldDate: "2024-10-22"},
			wantErr: domain.ErrInvalidClock,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end, err := movedSpan(tt.event, tt.values)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("err = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if start != tt.wantStart || end != tt.wantEnd {
				t.Fatalf("span = %s → %s, want %s → %s", start, end, tt.wantStart, tt.wantEnd)
			}
		})
	}
}

func TestPrompters(t *testing.T) {
	ctx := context.Background()
	p := modalPrompter{answers: map[output.PromptField]string{output.FieldTitle: "Standup"}}
	if v, ok := p.Prompt(ctx, output.FieldTitle, ""); !ok || v != "Standup" {
		t.Fatalf("title = %q, %v", v, ok)
	}
	if _, ok := p.Prompt(ctx, output.FieldStartClock, "09:00"); ok {
		t.Fatal("missing field answered")
	}
	if p.Confirm(ctx, entities.Event{}) {
		t.Fatal("modal prompter confirmed")
	}

	if !(confirmPrompter{confirmed: true}).Confirm(ctx, entities.Event{}) {
		t.Fatal("confirm not carried")
	}
	if _, ok := (confirmPrompter{}).Prompt(ctx, output.FieldTitle, ""); ok {
		t.Fatal("confirm prompter answered a prompt")
	}
}
