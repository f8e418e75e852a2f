package commands

import (
	"context"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

const (
	proposalsCommandName = "proposals"
	proposalsUsage       = "Usage: /proposals [from] [limit] [forward]"

	defaultPageSize = 10
	maxPageSize     = 50
)

type page struct {
	from    uint32
	limit   uint32
	reverse bool
}

type proposalsCommand struct {
	reader ProposalReader
	logger *zap.SugaredLogger
}

func NewProposalsCommand(reader ProposalReader, logger *zap.SugaredLogger) Command {
	return &proposalsCommand{
		reader: reader,
		logger: logger,
	}
}

func (c *proposalsCommand) CanHandle(command string) bool {
	return command == proposalsCommandName
}

func (c *proposalsCommand) Handle(ctx context.Context, arguments, _ string, chatID int64) []tgbotapi.Chattable {
	p, ok := parsePage(arguments)
	if !ok {
		return reply(chatID, proposalsUsage)
	}

	proposals, err := c.reader.List(ctx, p.from, p.limit, p.reverse)
	if err != nil {
		return replyError(chatID, err, c.logger, "list proposals")
	}

	if len(proposals) == 0 {
		return reply(chatID, "No proposals yet.")
	}

	lines := make([]string, 0, len(proposals))
	for _, proposal := range proposals {
		lines = append(lines, formatProposalLine(proposal))
	}

	return reply(chatID, strings.Join(lines, "\n"))
}

func parsePage(arguments string) (page, bool) {
	p := page{limit: defaultPageSize, reverse: true}
	fields := strings.Fields(arguments)

	if len(fields) > 3 {
		return page{}, false
	}
	if len(fields) > 0 {
		from, err := strconv.ParseUint(fields[0], 10, 32)
		if err != nil {
			return page{}, false
		}
		p.from = uint32(from)
	}
	if len(fields) > 1 {
		limit, err := strconv.ParseUint(fields[1], 10, 32)
		if err != nil {
			return page{}, false
		}
		p.limit = uint32(limit)
		if p.limit > maxPageSize {
			p.limit = maxPageSize
		}
	}
	if len(fields) > 2 {
		switch strings.ToLower(fields[2]) {
		case "forward":
			p.reverse = false
		case "reverse":
		default:
			return page{}, false
		}
	}

	return p, true
}
