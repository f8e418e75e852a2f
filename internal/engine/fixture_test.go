package engine_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"consent_governance_system/internal/consent"
	"consent_governance_system/internal/db/models"
	"consent_governance_system/internal/engine"
	mock_engine "consent_governance_system/internal/engine/mocks"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type testClock struct {
	now time.Time
}

func (c *testClock) Now() time.Time {
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

func testConfig() engine.Config {
	return engine.Config{
		PreVoteBond:      100,
		ActiveQueueBond:  1000,
		SupportThreshold: 3,
		Policy: consent.Policy{
			Simple:         consent.Threshold{ForRatio: 0.5, Quorum: 0.2},
			Super:          consent.Threshold{ForRatio: 0.6, Quorum: 0.6},
			EarlyRejection: true,
		},
		PreVoteDuration:    24 * time.Hour,
		VotingDuration:     72 * time.Hour,
		CredentialRegistry: "https://registry.example.org",
		ProposerClass:      "proposer",
		VoterClass:         "voter",
		CommunityTreasury:  "treasury",
		SpamMarkers:        []string{"moderator"},
		EligiblePopulation: 10,
	}
}

type fixture struct {
	ctx        context.Context
	config     engine.Config
	oracle     *mock_engine.MockCredentialOracle
	ledger     *mock_engine.MockBondLedger
	store      *engine.MemoryStore
	clock      *testClock
	controller *engine.Controller
	query      *engine.Query
	receipts   int
}

func newFixture(t *testing.T, config engine.Config) *fixture {
	ctrl := gomock.NewController(t)

	f := &fixture{
		ctx:    context.Background(),
		config: config,
		oracle: mock_engine.NewMockCredentialOracle(ctrl),
		ledger: mock_engine.NewMockBondLedger(ctrl),
		store:  engine.NewMemoryStore(),
		clock:  &testClock{now: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)},
	}
	f.controller = engine.NewController(config, f.store, f.oracle, f.ledger, f.clock, zap.NewNop().Sugar())
	f.query = engine.NewQuery(config, f.store, f.clock)
	return f
}

// allowCredentials must be called after any expectation that denies a credential.
func (f *fixture) allowCredentials() {
	f.oracle.EXPECT().IsValid(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil).AnyTimes()
}

func (f *fixture) create(t *testing.T, proposer string, bond uint64, category models.Category) uint32 {
	t.Helper()

	f.receipts++
	receipt := fmt.Sprintf("receipt-%d", f.receipts)
	f.ledger.EXPECT().Lock(gomock.Any(), proposer, bond).Return(receipt, nil)

	id, err := f.controller.Create(f.ctx, engine.CreateRequest{
		Proposer: proposer,
		Bond:     bond,
		Category: category,
		Title:    "Fund the community garden",
	})
	require.NoError(t, err)
	return id
}

func (f *fixture) promote(t *testing.T, id uint32) {
	t.Helper()

	for i := 1; i <= int(f.config.SupportThreshold); i++ {
		_, err := f.controller.Support(f.ctx, fmt.Sprintf("supporter-%d", i), id)
		require.NoError(t, err)
	}
}

func (f *fixture) get(t *testing.T, id uint32) *models.Proposal {
	t.Helper()

	proposal, err := f.query.Get(f.ctx, id)
	require.NoError(t, err)
	return proposal
}
