package commands

import (
	"fmt"
	"strings"

	"consent_governance_system/internal"
	"consent_governance_system/internal/consent"
	"consent_governance_system/internal/db/models"
	tgbot "consent_governance_system/internal/tg_bot/extension"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

func reply(chatID int64, text string) []tgbotapi.Chattable {
	message := tgbotapi.NewMessage(chatID, text)
	message.DisableWebPagePreview = true
	return []tgbotapi.Chattable{message}
}

func replyError(chatID int64, err error, logger *zap.SugaredLogger, operation string) []tgbotapi.Chattable {
	if message, ok := tgbot.EngineErrorMessage(chatID, err); ok {
		return []tgbotapi.Chattable{message}
	}

	logger.Errorw("failed to "+operation, "error", err)
	return []tgbotapi.Chattable{tgbot.DefaultErrorMessage(chatID)}
}

func phaseName(phase models.Phase) string {
	if phase == models.PhaseActive {
		return "active"
	}
	return "pre-vote"
}

func formatProposal(proposal *models.Proposal) string {
	var b strings.Builder

	fmt.Fprintf(&b, "#%d %s\n", proposal.ID, proposal.Title)
	fmt.Fprintf(&b, "Status: %s (%s)\n", proposal.Status.CapitalizedString(), phaseName(proposal.Phase))
	fmt.Fprintf(&b, "Category: %s, %s consent\n", proposal.Category.CapitalizedString(), proposal.Consent)
	fmt.Fprintf(&b, "Proposer: %s\n", proposal.Proposer)
	fmt.Fprintf(&b, "Deadline: %s\n", internal.Format(proposal.PhaseDeadline))

	if proposal.Phase == models.PhaseActive {
		tally := consent.NewTally(proposal.ConsentVotes)
		fmt.Fprintf(&b, "Votes: %d for, %d against, %d abstain of %d eligible\n",
			tally.For, tally.Against, tally.Abstain, proposal.EligiblePopulation)
	} else {
		fmt.Fprintf(&b, "Support: %d\n", len(proposal.SupportVotes))
	}

	if proposal.Description != "" {
		fmt.Fprintf(&b, "\n%s\n", proposal.Description)
	}
	if proposal.Link != "" {
		fmt.Fprintf(&b, "%s\n", proposal.Link)
	}

	return strings.TrimSuffix(b.String(), "\n")
}

func formatProposalLine(proposal *models.Proposal) string {
	return fmt.Sprintf("#%d %s: %s (%s)", proposal.ID, proposal.Title, proposal.Status.CapitalizedString(), phaseName(proposal.Phase))
}
