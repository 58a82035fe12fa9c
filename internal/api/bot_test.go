package telegram

import (
	"errors"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/require"

	"builds-bot/internal/domain/entity"
)

func textMessage(text string) *tgbotapi.Message {
	return &tgbotapi.Message{Text: text}
}

func commandMessage(text string) *tgbotapi.Message {
	return &tgbotapi.Message{
		Text: text,
		Entities: []tgbotapi.MessageEntity{
			{Type: "bot_command", Offset: 0, Length: len(text)},
		},
	}
}

func TestClassify(t *testing.T) {
	require.Equal(t, intentStart, classify(commandMessage("/start")))
	require.Equal(t, intentShowCatalog, classify(textMessage("Dota 2")))
	require.Equal(t, intentGameStub, classify(textMessage("LoL")))

	// Всё остальное — свободный текст: номера, имена, чужие команды.
	require.Equal(t, intentFreeText, classify(textMessage("3")))
	require.Equal(t, intentFreeText, classify(textMessage("Pudge")))
	require.Equal(t, intentFreeText, classify(textMessage("dota 2")))
	require.Equal(t, intentFreeText, classify(commandMessage("/help")))
}

func TestRetryPrompt(t *testing.T) {
	require.Equal(t, msgEmptyInput,
		retryPrompt(&entity.ResolutionError{Reason: entity.FailureEmptyInput}))
	require.Equal(t, msgBadNumber,
		retryPrompt(&entity.ResolutionError{Reason: entity.FailureOutOfRange}))
	require.Equal(t, msgNotFound,
		retryPrompt(&entity.ResolutionError{Reason: entity.FailureNotFound, BestScore: 42}))
	require.Equal(t, msgNotFound, retryPrompt(errors.New("boom")))
}

func TestRetryPrompt_NeverLeaksScore(t *testing.T) {
	prompt := retryPrompt(&entity.ResolutionError{Reason: entity.FailureNotFound, BestScore: 42})
	require.NotContains(t, prompt, "42")
}
