package commands

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"consent_governance_system/internal/db/models"
	"consent_governance_system/internal/engine"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

const (
	createProposalCommandName = "create_proposal"
	createProposalUsage       = "Usage: /create_proposal <category> <bond> <title> | <description> | <link>"
)

var errCreateProposalUsage = errors.New(createProposalUsage)

type createProposalCommand struct {
	writer ProposalWriter
	reader ProposalReader
	logger *zap.SugaredLogger
}

func NewCreateProposalCommand(writer ProposalWriter, reader ProposalReader, logger *zap.SugaredLogger) Command {
	return &createProposalCommand{
		writer: writer,
		reader: reader,
		logger: logger,
	}
}

func (c *createProposalCommand) CanHandle(command string) bool {
	return command == createProposalCommandName
}

func (c *createProposalCommand) Handle(ctx context.Context, arguments, account string, chatID int64) []tgbotapi.Chattable {
	request, err := parseCreateRequest(arguments, account)
	if err != nil {
		return reply(chatID, err.Error())
	}

	id, err := c.writer.Create(ctx, request)
	if err != nil {
		return replyError(chatID, err, c.logger, "create proposal")
	}

	proposal, err := c.reader.Get(ctx, id)
	if err != nil {
		c.logger.Errorw("failed to get created proposal", "id", id, "error", err)
		return reply(chatID, fmt.Sprintf("Proposal #%d created.", id))
	}

	return reply(chatID, "Proposal created.\n\n"+formatProposal(proposal))
}

func parseCreateRequest(arguments, account string) (engine.CreateRequest, error) {
	parts := strings.SplitN(arguments, "|", 3)

	head := strings.Fields(parts[0])
	if len(head) < 3 {
		return engine.CreateRequest{}, errCreateProposalUsage
	}

	bond, err := strconv.ParseUint(head[1], 10, 64)
	if err != nil {
		return engine.CreateRequest{}, fmt.Errorf("invalid bond %q\n%s", head[1], createProposalUsage)
	}

	request := engine.CreateRequest{
		Proposer: account,
		Bond:     bond,
		Category: models.Category(strings.ToLower(head[0])),
		Title:    strings.Join(head[2:], " "),
	}
	if len(parts) > 1 {
		request.Description = strings.TrimSpace(parts[1])
	}
	if len(parts) > 2 {
		request.Link = strings.TrimSpace(parts[2])
	}

	return request, nil
}
