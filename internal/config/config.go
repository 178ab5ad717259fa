package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"

	"tzcal/pkg/tz"
)

// SeedNone disables the startup seed.
const SeedNone = "none"

type Config struct {
	Token         string `env:"TZCAL_DISCORD_TOKEN"`
	ChannelID     string `env:"TZCAL_CHANNEL_ID"`
	GuildID       string `env:"TZCAL_GUILD_ID"`
	Locale        string `env:"TZCAL_LOCALE" envDefault:"en"`
	DefaultZone   string `env:"TZCAL_DEFAULT_ZONE"`
	ClockSchedule string `env:"TZCAL_CLOCK_SCHEDULE" envDefault:"@every 1m"`
	SeedFile      string `env:"TZCAL_SEED_FILE"`
}

// Load reads the configuration from the environment and validates it.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// .env is optional when variables come from the environment (Docker, CI, ...).
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: parse env: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate applies every rule to the loaded configuration.
func (c *Config) validate() error {
	if strings.TrimSpace(c.Token) == "" {
		return fmt.Errorf("config: TZCAL_DISCORD_TOKEN is required")
	}

	if strings.TrimSpace(c.ChannelID) == "" {
		return fmt.Errorf("config: TZCAL_CHANNEL_ID is required")
	}
	if !isSnowflake(c.ChannelID) {
		return fmt.Errorf("config: TZCAL_CHANNEL_ID must be a Discord channel id (digits only)")
	}
	if c.GuildID != "" && !isSnowflake(c.GuildID) {
		return fmt.Errorf("config: TZCAL_GUILD_ID must be a Discord guild id (digits only)")
	}

	if strings.TrimSpace(c.Locale) == "" {
		c.Locale = "en"
	}

	if c.DefaultZone != "" && !tz.IsValid(c.DefaultZone) {
		return fmt.Errorf("config: TZCAL_DEFAULT_ZONE %q is not a known time zone", c.DefaultZone)
	}

	if _, err := cron.ParseStandard(c.ClockSchedule); err != nil {
		return fmt.Errorf("config: TZCAL_CLOCK_SCHEDULE invalid (%q): %w", c.ClockSchedule, err)
	}

	return nil
}

// DisplayZone is the initial display zone: the pinned one, else the host's.
func (c *Config) DisplayZone() string {
	if c.DefaultZone != "" {
		return c.DefaultZone
	}
	return tz.DetectDefault()
}

func isSnowflake(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
