package telegram

import (
	"errors"
	"log"
	"net/http"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"builds-bot/internal/container"
	"builds-bot/internal/domain/entity"
)

const (
	msgGreeting  = "Hi! Pick a game:"
	msgLoLLater  = "LoL support is coming later. Pick Dota 2!"
	msgListTitle = "Dota 2 heroes:\n"
	msgPrompt    = "\n\nEnter a hero number or name:"

	msgEmptyInput = "Enter a hero number or name:"
	msgBadNumber  = "No hero with that number! Enter a hero number or name:"
	msgNotFound   = "Hero not found! Check the spelling or pick a number from the list:"
	msgInternal   = "Something went wrong. Try another hero."

	btnDota = "Dota 2"
	btnLoL  = "LoL"
)

// intent — закрытое множество намерений пользователя. Классификация
// идёт в фиксированном порядке: команда, кнопка меню, свободный текст.
type intent int

const (
	intentStart intent = iota
	intentShowCatalog
	intentGameStub
	intentFreeText
)

// classify относит сообщение ровно к одному намерению.
// Свободный текст — всегда последний вариант: туда попадают
// и номера, и имена персонажей.
func classify(msg *tgbotapi.Message) intent {
	switch {
	case msg.IsCommand() && msg.Command() == "start":
		return intentStart
	case msg.Text == btnDota:
		return intentShowCatalog
	case msg.Text == btnLoL:
		return intentGameStub
	default:
		return intentFreeText
	}
}

// Resolver разрешает пользовательский ввод в персонажа каталога.
type Resolver interface {
	Resolve(raw string) (*entity.ResolvedHero, error)
}

// Renderer форматирует билд и список персонажей.
type Renderer interface {
	Render(hero *entity.ResolvedHero) (string, error)
	CatalogList() string
}

// Options — транспортные настройки бота.
type Options struct {
	// WebhookURL — внешний базовый адрес. Пусто — длинный опрос.
	WebhookURL          string
	Port                string
	DeleteWebhookOnStop bool
}

// Bot связывает транспорт Telegram с конвейером разрешения
// и рендеринга билдов. Между сообщениями состояния не держит.
type Bot struct {
	api      *tgbotapi.BotAPI
	resolver Resolver
	builds   Renderer
	opts     Options

	server *http.Server
}

// NewBot создаёт нового бота
func NewBot(token string, services *container.Container, opts Options) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}

	log.Printf("Authorized on account %s", api.Self.UserName)

	return &Bot{
		api:      api,
		resolver: services.Resolver,
		builds:   services.Builds,
		opts:     opts,
	}, nil
}

// HandleUpdate обрабатывает одно входящее обновление.
// Паника в конвейере гасится здесь: одно плохое сообщение
// не должно останавливать цикл доставки.
func (b *Bot) HandleUpdate(update tgbotapi.Update) {
	if update.Message == nil {
		return
	}
	msg := update.Message

	defer func() {
		if r := recover(); r != nil {
			log.Printf("Panic while handling message in chat %d: %v", msg.Chat.ID, r)
			b.reply(msg, msgInternal, nil)
		}
	}()

	switch classify(msg) {
	case intentStart:
		b.reply(msg, msgGreeting, gameKeyboard())

	case intentGameStub:
		b.reply(msg, msgLoLLater, gameKeyboard())

	case intentShowCatalog:
		text := msgListTitle + b.builds.CatalogList() + msgPrompt
		b.reply(msg, text, tgbotapi.NewRemoveKeyboard(false))

	case intentFreeText:
		b.handleHeroRequest(msg)
	}
}

// handleHeroRequest прогоняет свободный текст через резолвер и рендер.
func (b *Bot) handleHeroRequest(msg *tgbotapi.Message) {
	hero, err := b.resolver.Resolve(msg.Text)
	if err != nil {
		b.reply(msg, retryPrompt(err), nil)
		return
	}

	text, err := b.builds.Render(hero)
	if err != nil {
		// Битая запись каталога: логируем, пользователю общий ответ.
		log.Printf("Render failed: %v", err)
		b.reply(msg, msgInternal, nil)
		return
	}

	b.reply(msg, text, nil)
}

// retryPrompt подбирает подсказку по причине отказа.
// Баллы похожести наружу не выходят.
func retryPrompt(err error) string {
	var resErr *entity.ResolutionError
	if errors.As(err, &resErr) {
		switch resErr.Reason {
		case entity.FailureEmptyInput:
			return msgEmptyInput
		case entity.FailureOutOfRange:
			return msgBadNumber
		}
	}
	return msgNotFound
}

// gameKeyboard — клавиатура выбора игры под приветствием.
func gameKeyboard() tgbotapi.ReplyKeyboardMarkup {
	kbd := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(btnDota),
			tgbotapi.NewKeyboardButton(btnLoL),
		),
	)
	kbd.ResizeKeyboard = true
	return kbd
}

// reply отвечает на сообщение пользователя.
func (b *Bot) reply(msg *tgbotapi.Message, text string, markup interface{}) {
	out := tgbotapi.NewMessage(msg.Chat.ID, text)
	out.ReplyToMessageID = msg.MessageID
	if markup != nil {
		out.ReplyMarkup = markup
	}

	if _, err := b.api.Send(out); err != nil {
		log.Printf("Error sending message: %v", err)
	}
}
