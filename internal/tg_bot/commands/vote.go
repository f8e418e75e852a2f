package commands

import (
	"context"
	"strings"

	"consent_governance_system/internal/db/models"
	tgbot "consent_governance_system/internal/tg_bot/extension"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

const (
	voteCommandName = "vote"
	voteUsage       = "Usage: /vote <id> <for|against|abstain>"
)

type voteCommand struct {
	writer ProposalWriter
	logger *zap.SugaredLogger
}

func NewVoteCommand(writer ProposalWriter, logger *zap.SugaredLogger) Command {
	return &voteCommand{
		writer: writer,
		logger: logger,
	}
}

func (c *voteCommand) CanHandle(command string) bool {
	return command == voteCommandName
}

func (c *voteCommand) Handle(ctx context.Context, arguments, account string, chatID int64) []tgbotapi.Chattable {
	fields := strings.Fields(arguments)
	if len(fields) != 2 {
		return reply(chatID, voteUsage)
	}

	id, err := tgbot.ParseProposalID(fields[0])
	if err != nil {
		return reply(chatID, voteUsage)
	}

	proposal, err := c.writer.CastConsent(ctx, account, id, models.VoteValue(strings.ToLower(fields[1])))
	if err != nil {
		return replyError(chatID, err, c.logger, "cast vote")
	}

	return reply(chatID, "Vote recorded.\n\n"+formatProposal(proposal))
}
