package main

import (
	"context"
	"log"
	"os"

	"tzcal/internal/adapters/discord"
	"tzcal/internal/application"
	"tzcal/internal/config"
	"tzcal/internal/infrastructure/i18n"
	"tzcal/internal/infrastructure/memory"
	"tzcal/internal/infrastructure/seed"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Invalid configuration: %v", err)
	}

	translator := i18n.NewTranslator(cfg.Locale)
	eventRepo := memory.NewEventRepository()
	eventUC := application.NewEventService(eventRepo)

	if cfg.SeedFile != config.SeedNone {
		seeds, err := seed.Load(cfg.SeedFile)
		if err != nil {
			log.Fatalf("❌ Loading seed events failed: %v", err)
		}
		n, err := seed.Apply(context.Background(), eventUC, seeds)
		if err != nil {
			log.Fatalf("❌ Seeding events failed: %v", err)
		}
		log.Printf("✅ %d seed events loaded", n)
	}

	bot, err := discord.NewBot(cfg, eventUC, translator)
	if err != nil {
		log.Fatalf("❌ Creating the bot failed: %v", err)
	}
	if err := bot.Start(); err != nil {
		log.Printf("❌ Bot stopped: %v", err)
		os.Exit(1)
	}
}
