// Package seed loads the events a session starts with from TOML.
package seed

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"

	"tzcal/internal/ports/input"
	"tzcal/pkg/tz"
)

//go:embed default.toml
var builtin []byte

type Event struct {
	Title  string             `toml:"title"`
	Zone   string             `toml:"zone"`
	Start  toml.LocalDateTime `toml:"start"`
	End    toml.LocalDateTime `toml:"end"`
	AllDay bool               `toml:"all_day"`
}

type file struct {
	Events []Event `toml:"events"`
}

// Load reads the seed file at path, or the built-in demo seed when path is "".
func Load(path string) ([]Event, error) {
	data := builtin
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read seed file: %w", err)
		}
		data = b
	}
	return Parse(data)
}

func Parse(data []byte) ([]Event, error) {
	var f file
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse seed: %w", err)
	}
	return f.Events, nil
}

// Apply creates every seed event. It stops at the first rejected entry.
func Apply(ctx context.Context, events input.EventUseCase, seeds []Event) (int, error) {
	for i, s := range seeds {
		if _, err := events.CreateEvent(ctx, s.Title, wall(s.Start), wall(s.End), s.Zone, s.AllDay); err != nil {
			return i, fmt.Errorf("seed event %d (%q): %w", i+1, s.Title, err)
		}
	}
	return len(seeds), nil
}

func wall(d toml.LocalDateTime) tz.WallTime {
	return tz.WallTime{
		Year:   d.Year,
		Month:  time.Month(d.Month),
		Day:    d.Day,
		Hour:   d.Hour,
		Minute: d.Minute,
		Second: d.Second,
	}
}
