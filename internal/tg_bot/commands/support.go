package commands

import (
	"context"

	"consent_governance_system/internal/db/models"
	tgbot "consent_governance_system/internal/tg_bot/extension"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

const supportCommandName = "support"

type supportCommand struct {
	writer ProposalWriter
	logger *zap.SugaredLogger
}

func NewSupportCommand(writer ProposalWriter, logger *zap.SugaredLogger) Command {
	return &supportCommand{
		writer: writer,
		logger: logger,
	}
}

func (c *supportCommand) CanHandle(command string) bool {
	return command == supportCommandName
}

func (c *supportCommand) Handle(ctx context.Context, arguments, account string, chatID int64) []tgbotapi.Chattable {
	id, err := tgbot.ParseProposalID(arguments)
	if err != nil {
		return reply(chatID, "Usage: /support <id>")
	}

	proposal, err := c.writer.Support(ctx, account, id)
	if err != nil {
		return replyError(chatID, err, c.logger, "support proposal")
	}

	if proposal.Phase == models.PhaseActive {
		return reply(chatID, "Support recorded. The proposal moved to voting.\n\n"+formatProposal(proposal))
	}
	return reply(chatID, "Support recorded.\n\n"+formatProposal(proposal))
}
