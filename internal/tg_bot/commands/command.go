package commands

import (
	"context"

	"consent_governance_system/internal/db/models"
	"consent_governance_system/internal/engine"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type Command interface {
	CanHandle(command string) bool
	Handle(ctx context.Context, arguments, account string, chatID int64) []tgbotapi.Chattable
}

// ProposalWriter is satisfied by *engine.Controller.
type ProposalWriter interface {
	Create(ctx context.Context, request engine.CreateRequest) (uint32, error)
	Support(ctx context.Context, voter string, id uint32) (*models.Proposal, error)
	ExpirePreVote(ctx context.Context, id uint32) (*models.Proposal, error)
	CastConsent(ctx context.Context, voter string, id uint32, value models.VoteValue) (*models.Proposal, error)
	MarkSpam(ctx context.Context, marker string, id uint32) (*models.Proposal, error)
}

// ProposalReader is satisfied by *engine.Query.
type ProposalReader interface {
	Get(ctx context.Context, id uint32) (*models.Proposal, error)
	List(ctx context.Context, from, limit uint32, reverse bool) ([]*models.Proposal, error)
	Config(ctx context.Context) (engine.ConfigOutput, error)
}
