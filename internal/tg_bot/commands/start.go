package commands

import (
	"context"
	"fmt"

	"consent_governance_system/configs"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const startCommandName = "start"

type startCommand struct {
	appConfig configs.App
}

func NewStartCommand(appConfig configs.App) Command {
	return &startCommand{appConfig: appConfig}
}

func (c *startCommand) CanHandle(command string) bool {
	return command == startCommandName || command == "help"
}

func (c *startCommand) Handle(_ context.Context, _, _ string, chatID int64) []tgbotapi.Chattable {
	return reply(chatID, fmt.Sprintf(`Hi! I run the proposals of %s.

/create_proposal <category> <bond> <title> | <description> | <link> - create a proposal
/support <id> - support a pre-vote proposal
/vote <id> <for|against|abstain> - vote on an active proposal
/expire <id> - settle a pre-vote proposal that missed its deadline
/mark_spam <id> - mark a proposal as spam (moderators only)
/proposal <id> - show a proposal
/proposals [from] [limit] [forward] - list proposals, newest first
/config - show the voting rules

Categories: text, funding_request, recurrent_funding_request, veto (simple consent); approve_budget, dismiss, update_bonds (super consent).`, c.appConfig.CommunityName))
}
