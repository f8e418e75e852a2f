package commands

import (
	"context"

	tgbot "consent_governance_system/internal/tg_bot/extension"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

const proposalCommandName = "proposal"

type proposalCommand struct {
	reader ProposalReader
	logger *zap.SugaredLogger
}

func NewProposalCommand(reader ProposalReader, logger *zap.SugaredLogger) Command {
	return &proposalCommand{
		reader: reader,
		logger: logger,
	}
}

func (c *proposalCommand) CanHandle(command string) bool {
	return command == proposalCommandName
}

func (c *proposalCommand) Handle(ctx context.Context, arguments, _ string, chatID int64) []tgbotapi.Chattable {
	id, err := tgbot.ParseProposalID(arguments)
	if err != nil {
		return reply(chatID, "Usage: /proposal <id>")
	}

	proposal, err := c.reader.Get(ctx, id)
	if err != nil {
		return replyError(chatID, err, c.logger, "get proposal")
	}

	return reply(chatID, formatProposal(proposal))
}
