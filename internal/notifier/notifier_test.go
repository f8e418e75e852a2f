package notifier

import (
	"context"
	"errors"
	"testing"

	"consent_governance_system/internal/db/models"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSender struct {
	sent []tgbotapi.Chattable
	err  error
}

func (s *recordingSender) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	s.sent = append(s.sent, c)
	return tgbotapi.Message{}, s.err
}

type notifierFunc func(ctx context.Context, proposal *models.Proposal) error

func (f notifierFunc) Notify(ctx context.Context, proposal *models.Proposal) error {
	return f(ctx, proposal)
}

func approvedProposal() *models.Proposal {
	return &models.Proposal{
		ID:       7,
		Title:    "Fund the garden",
		Category: models.CategoryFundingRequest,
		Status:   models.StatusApproved,
		ConsentVotes: map[string]models.VoteValue{
			"bob":   models.VoteFor,
			"carol": models.VoteFor,
			"dave":  models.VoteAbstain,
		},
		EligiblePopulation: 10,
		BondAmount:         100,
		BondDisposed:       true,
		BondDestination:    "alice",
		Link:               "https://forum.example.org/t/7",
	}
}

func TestOutcomeMessage_Approved(t *testing.T) {
	expected := "Proposal #7 \"Fund the garden\" is Approved.\n" +
		"Category: Funding Request\n" +
		"Votes: 2 for, 0 against, 1 abstain of 10 eligible\n" +
		"Bond of 100 returned to alice\n" +
		"https://forum.example.org/t/7"

	assert.Equal(t, expected, OutcomeMessage(approvedProposal()))
}

func TestOutcomeMessage_Expired(t *testing.T) {
	proposal := &models.Proposal{
		ID:           3,
		Title:        "Paint the fence",
		Category:     models.CategoryText,
		Status:       models.StatusExpired,
		SupportVotes: []string{"bob"},
	}

	assert.Equal(t, "Proposal #3 \"Paint the fence\" is Expired.\nCategory: Text\nSupport: 1", OutcomeMessage(proposal))
}

func TestOutcomeMessage_SpamForfeitsBond(t *testing.T) {
	proposal := approvedProposal()
	proposal.Status = models.StatusSpam
	proposal.IsSpam = true
	proposal.BondDestination = "treasury"

	message := OutcomeMessage(proposal)

	assert.Contains(t, message, "is Spam.")
	assert.Contains(t, message, "Bond of 100 forfeited to treasury")
	assert.NotContains(t, message, "returned")
	assert.NotContains(t, message, "Votes:")
}

func TestTelegram_Notify(t *testing.T) {
	sender := &recordingSender{}
	notifier := &telegram{bot: sender, chatID: -100123}

	require.NoError(t, notifier.Notify(context.Background(), approvedProposal()))
	require.Len(t, sender.sent, 1)

	message, ok := sender.sent[0].(tgbotapi.MessageConfig)
	require.True(t, ok)
	assert.Equal(t, int64(-100123), message.ChatID)
	assert.Contains(t, message.Text, "Fund the garden")
}

func TestMulti_JoinsErrors(t *testing.T) {
	first := errors.New("telegram down")
	calls := 0

	notifier := Multi(
		notifierFunc(func(context.Context, *models.Proposal) error { calls++; return first }),
		notifierFunc(func(context.Context, *models.Proposal) error { calls++; return nil }),
	)

	err := notifier.Notify(context.Background(), approvedProposal())
	assert.ErrorIs(t, err, first)
	assert.Equal(t, 2, calls)
}
