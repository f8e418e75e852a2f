package commands

import (
	"context"

	tgbot "consent_governance_system/internal/tg_bot/extension"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

const markSpamCommandName = "mark_spam"

type markSpamCommand struct {
	writer ProposalWriter
	logger *zap.SugaredLogger
}

func NewMarkSpamCommand(writer ProposalWriter, logger *zap.SugaredLogger) Command {
	return &markSpamCommand{
		writer: writer,
		logger: logger,
	}
}

func (c *markSpamCommand) CanHandle(command string) bool {
	return command == markSpamCommandName
}

func (c *markSpamCommand) Handle(ctx context.Context, arguments, account string, chatID int64) []tgbotapi.Chattable {
	id, err := tgbot.ParseProposalID(arguments)
	if err != nil {
		return reply(chatID, "Usage: /mark_spam <id>")
	}

	proposal, err := c.writer.MarkSpam(ctx, account, id)
	if err != nil {
		return replyError(chatID, err, c.logger, "mark proposal as spam")
	}

	return reply(chatID, "Proposal marked as spam.\n\n"+formatProposal(proposal))
}
