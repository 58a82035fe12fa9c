package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"builds-bot/config"
	telegram "builds-bot/internal/api"
	"builds-bot/internal/container"
	"builds-bot/internal/infrastructure/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if cfg.BotToken == "" {
		log.Fatal("BOT_TOKEN is required")
	}

	// Загружаем каталог и таблицу псевдонимов один раз при старте.
	catalog, err := storage.LoadCatalog(cfg.HeroesFile)
	if err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}
	log.Printf("Catalog loaded: %d heroes", len(catalog.Names()))

	aliases, err := storage.LoadAliases(cfg.AliasesFile, catalog)
	if err != nil {
		log.Fatalf("Failed to load aliases: %v", err)
	}

	// Собираем сервисы приложения
	services := container.New(catalog, aliases, cfg.FuzzyThreshold)

	// Создаём бота
	bot, err := telegram.NewBot(cfg.BotToken, services, telegram.Options{
		WebhookURL:          cfg.WebhookURL,
		Port:                cfg.Port,
		DeleteWebhookOnStop: cfg.DeleteWebhookOnStop,
	})
	if err != nil {
		log.Fatalf("Failed to create bot: %v", err)
	}

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		bot.Stop()
	}()

	log.Println("Bot is running...")
	if err := bot.Run(); err != nil {
		log.Fatalf("Bot error: %v", err)
	}
}
