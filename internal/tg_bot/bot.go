package tgbot

import (
	"context"

	"consent_governance_system/configs"
	"consent_governance_system/internal/tg_bot/handlers"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

type bot struct {
	handler handlers.CommandHandler
}

type Bot interface {
	Start(ctx context.Context, config configs.Bot, logger *zap.SugaredLogger)
}

func NewBot(handler handlers.CommandHandler) Bot {
	return &bot{handler: handler}
}

func (b *bot) Start(ctx context.Context, config configs.Bot, logger *zap.SugaredLogger) {
	logger.Info("creating bot")
	bot, updates, err := b.createBot(config)
	if err != nil {
		logger.Fatalw("failed to create bot", "error", err)
	}
	logger.Info("bot created")

	for {
		select {
		case <-ctx.Done():
			bot.StopReceivingUpdates()
			logger.Info("bot stopped")
			return
		case update := <-updates:
			for _, message := range b.handler.Handle(ctx, update) {
				if _, err := bot.Send(message); err != nil {
					logger.Errorw("failed to send message", "error", err)
				}
			}
		}
	}
}

func (b *bot) createBot(config configs.Bot) (*tgbotapi.BotAPI, tgbotapi.UpdatesChannel, error) {
	bot, err := tgbotapi.NewBotAPI(config.Token)
	if err != nil {
		return nil, nil, err
	}

	bot.Debug = config.Debug

	u := tgbotapi.NewUpdate(0)
	u.Timeout = config.UpdateTimeout

	return bot, bot.GetUpdatesChan(u), nil
}
