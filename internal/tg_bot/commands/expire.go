package commands

import (
	"context"

	tgbot "consent_governance_system/internal/tg_bot/extension"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

const expireCommandName = "expire"

type expireCommand struct {
	writer ProposalWriter
	logger *zap.SugaredLogger
}

func NewExpireCommand(writer ProposalWriter, logger *zap.SugaredLogger) Command {
	return &expireCommand{
		writer: writer,
		logger: logger,
	}
}

func (c *expireCommand) CanHandle(command string) bool {
	return command == expireCommandName
}

func (c *expireCommand) Handle(ctx context.Context, arguments, _ string, chatID int64) []tgbotapi.Chattable {
	id, err := tgbot.ParseProposalID(arguments)
	if err != nil {
		return reply(chatID, "Usage: /expire <id>")
	}

	proposal, err := c.writer.ExpirePreVote(ctx, id)
	if err != nil {
		return replyError(chatID, err, c.logger, "expire proposal")
	}

	return reply(chatID, "Proposal settled.\n\n"+formatProposal(proposal))
}
