package commands

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

const configCommandName = "config"

type configCommand struct {
	reader ProposalReader
	logger *zap.SugaredLogger
}

func NewConfigCommand(reader ProposalReader, logger *zap.SugaredLogger) Command {
	return &configCommand{
		reader: reader,
		logger: logger,
	}
}

func (c *configCommand) CanHandle(command string) bool {
	return command == configCommandName
}

func (c *configCommand) Handle(ctx context.Context, _, _ string, chatID int64) []tgbotapi.Chattable {
	config, err := c.reader.Config(ctx)
	if err != nil {
		return replyError(chatID, err, c.logger, "get config")
	}

	early := "off"
	if config.EarlyRejection {
		early = "on"
	}

	return reply(chatID, fmt.Sprintf(`Proposals so far: %d
Pre-vote bond: %d
Active queue bond: %d
Support needed: %d within %s
Voting: %s
Simple consent: %.0f%% for, %.0f%% quorum
Super consent: %.0f%% for, %.0f%% quorum
Early rejection: %s
Community treasury: %s
Credential registry: %s`,
		config.PropCounter,
		config.PreVoteBond,
		config.ActiveQueueBond,
		config.SupportThreshold, config.PreVoteDuration,
		config.VotingDuration,
		config.SimpleConsent.ForRatio*100, config.SimpleConsent.Quorum*100,
		config.SuperConsent.ForRatio*100, config.SuperConsent.Quorum*100,
		early,
		config.CommunityTreasury,
		config.CredentialRegistry,
	))
}
