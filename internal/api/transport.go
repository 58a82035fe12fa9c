package telegram

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const webhookPath = "/webhook"

// Run выбирает способ доставки обновлений один раз при старте:
// задан внешний адрес — вебхук со встроенным HTTP-сервером,
// иначе — длинный опрос. Блокируется до остановки.
func (b *Bot) Run() error {
	if b.opts.WebhookURL != "" {
		return b.runWebhook()
	}
	return b.runPolling()
}

// runPolling крутит длинный опрос до закрытия канала обновлений.
func (b *Bot) runPolling() error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	log.Println("Long polling enabled")
	for update := range b.api.GetUpdatesChan(u) {
		b.HandleUpdate(update)
	}

	return nil
}

// runWebhook регистрирует вебхук у Telegram и поднимает сервер приёма
// обновлений с маршрутом живости для платформы хостинга.
// Неудачная регистрация — фатальная ошибка старта.
func (b *Bot) runWebhook() error {
	wh, err := tgbotapi.NewWebhook(strings.TrimRight(b.opts.WebhookURL, "/") + webhookPath)
	if err != nil {
		return fmt.Errorf("webhook config: %w", err)
	}
	if _, err := b.api.Request(wh); err != nil {
		return fmt.Errorf("register webhook: %w", err)
	}

	info, err := b.api.GetWebhookInfo()
	if err != nil {
		return fmt.Errorf("webhook info: %w", err)
	}
	if info.LastErrorDate != 0 {
		log.Printf("Telegram reported webhook error: %s", info.LastErrorMessage)
	}

	mux := http.NewServeMux()
	mux.HandleFunc(webhookPath, func(w http.ResponseWriter, r *http.Request) {
		update, err := b.api.HandleUpdate(r)
		if err != nil {
			log.Printf("Bad webhook payload: %v", err)
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		b.HandleUpdate(*update)
	})
	// Маршрут живости: хостинг проверяет им, что процесс жив.
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	b.server = &http.Server{
		Addr:              ":" + b.opts.Port,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	log.Printf("Webhook server listening on %s%s", b.server.Addr, webhookPath)
	if err := b.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}

	return nil
}

// Stop останавливает приём обновлений. Снятие регистрации вебхука —
// настраиваемая политика, по умолчанию регистрация остаётся.
func (b *Bot) Stop() {
	if b.server != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := b.server.Shutdown(ctx); err != nil {
			log.Printf("Error shutting down webhook server: %v", err)
		}
	}

	if b.opts.DeleteWebhookOnStop {
		if _, err := b.api.Request(tgbotapi.DeleteWebhookConfig{}); err != nil {
			log.Printf("Error deleting webhook: %v", err)
		}
	}

	b.api.StopReceivingUpdates()
}
