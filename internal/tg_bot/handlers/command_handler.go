package handlers

import (
	"context"
	"strings"

	"consent_governance_system/internal/tg_bot/commands"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

type CommandHandler interface {
	Handle(ctx context.Context, update tgbotapi.Update) []tgbotapi.Chattable
}

type consentBotCommandHandler struct {
	logger   *zap.SugaredLogger
	commands []commands.Command
}

func NewConsentBotCommandHandler(logger *zap.SugaredLogger, commands []commands.Command) CommandHandler {
	return &consentBotCommandHandler{
		logger:   logger,
		commands: commands,
	}
}

func (h *consentBotCommandHandler) Handle(ctx context.Context, update tgbotapi.Update) []tgbotapi.Chattable {
	message := update.Message
	if message == nil || message.From == nil {
		h.logger.Debug("received unknown update")
		return []tgbotapi.Chattable{}
	}

	if !message.IsCommand() {
		return []tgbotapi.Chattable{}
	}

	command := message.Command()
	account := accountName(message.From)
	if account == "" {
		return []tgbotapi.Chattable{
			tgbotapi.NewMessage(message.Chat.ID, "Set a Telegram username to take part in voting."),
		}
	}

	for _, handler := range h.commands {
		if handler.CanHandle(command) {
			h.logger.Infow("handling command", "command", command, "account", account)
			return handler.Handle(ctx, message.CommandArguments(), account, message.Chat.ID)
		}
	}

	h.logger.Warnw("received unknown command", "command", command)
	return []tgbotapi.Chattable{
		tgbotapi.NewMessage(message.Chat.ID, "Unknown command. Send /help for the list of commands."),
	}
}

// accountName is the identity the engine sees for a Telegram user.
func accountName(user *tgbotapi.User) string {
	return strings.ToLower(user.UserName)
}
