package notifier

import (
	"context"

	"consent_governance_system/internal/db/models"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

type telegram struct {
	bot    sender
	chatID int64
}

func NewTelegram(bot *tgbotapi.BotAPI, chatID int64) Notifier {
	return &telegram{bot: bot, chatID: chatID}
}

func (t *telegram) Notify(_ context.Context, proposal *models.Proposal) error {
	message := tgbotapi.NewMessage(t.chatID, OutcomeMessage(proposal))
	message.DisableWebPagePreview = true

	_, err := t.bot.Send(message)
	return err
}
