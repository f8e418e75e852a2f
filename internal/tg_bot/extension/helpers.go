package extension

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"consent_governance_system/internal/engine"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

var userFacingErrors = []struct {
	err  error
	text string
}{
	{engine.ErrNotEligible, "You do not hold a valid credential for this action."},
	{engine.ErrNotFound, "Proposal not found in this phase."},
	{engine.ErrAlreadySupported, "You already support this proposal."},
	{engine.ErrAlreadyVoted, "You already voted on this proposal."},
	{engine.ErrInsufficientBond, "The bond is lower than required."},
	{engine.ErrUnauthorized, "You are not allowed to do this."},
	{engine.ErrPhaseClosed, "This phase is closed."},
	{engine.ErrPhaseOpen, "The deadline has not passed yet."},
	{engine.ErrUnknownCategory, "Unknown category."},
	{engine.ErrInvalidVote, "A vote must be one of: for, against, abstain."},
	{engine.ErrConflict, "The proposal changed while you were acting on it, please try again."},
}

func DefaultErrorMessage(chatID int64) tgbotapi.Chattable {
	return ErrorMessage(chatID, "Something went wrong, please try again")
}

func ErrorMessage(chatID int64, text string) tgbotapi.Chattable {
	return tgbotapi.NewMessage(chatID, text)
}

// EngineErrorMessage explains a rejected call, or returns ok=false when the
// error is not a rejection the user can act on.
func EngineErrorMessage(chatID int64, err error) (tgbotapi.Chattable, bool) {
	if errors.Is(err, engine.ErrInvalidProposal) {
		return ErrorMessage(chatID, strings.TrimPrefix(err.Error(), engine.ErrInvalidProposal.Error()+": ")), true
	}

	for _, e := range userFacingErrors {
		if errors.Is(err, e.err) {
			return ErrorMessage(chatID, e.text), true
		}
	}

	return nil, false
}

func ParseProposalID(argument string) (uint32, error) {
	id, err := strconv.ParseUint(strings.TrimPrefix(strings.TrimSpace(argument), "#"), 10, 32)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid proposal id %q", argument)
	}
	return uint32(id), nil
}
