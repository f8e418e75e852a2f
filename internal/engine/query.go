package engine

import (
	"context"
	"fmt"

	"consent_governance_system/internal/db/models"
)

// Query is the read side of the engine. It never writes to the store and
// never disposes bonds.
type Query struct {
	config Config
	store  Store
	clock  Clock
}

func NewQuery(config Config, store Store, clock Clock) *Query {
	return &Query{
		config: config,
		store:  store,
		clock:  clock,
	}
}

func (q *Query) Get(ctx context.Context, id uint32) (*models.Proposal, error) {
	located, err := q.store.Locate(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to locate proposal: %w", err)
	}
	if !located.Found() {
		return nil, ErrNotFound
	}

	proposal := located.Proposal
	proposal.Status = StatusAt(q.config.Policy, proposal, q.clock.Now())
	return proposal, nil
}

// List returns the proposals of one page. Forward pages cover
// [max(from, 1), min(counter, from+limit)] ascending. Reverse pages end at
// from (the counter when from is 0) and hold at most limit ids, descending.
func (q *Query) List(ctx context.Context, from, limit uint32, reverse bool) ([]*models.Proposal, error) {
	counter, err := q.store.Counter(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get proposal counter: %w", err)
	}

	now := q.clock.Now()
	ids := PageIDs(counter, from, limit, reverse)
	proposals := make([]*models.Proposal, 0, len(ids))

	for _, id := range ids {
		located, err := q.store.Locate(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("failed to locate proposal %d: %w", id, err)
		}
		if !located.Found() {
			continue
		}

		proposal := located.Proposal
		proposal.Status = StatusAt(q.config.Policy, proposal, now)
		proposals = append(proposals, proposal)
	}

	return proposals, nil
}

func (q *Query) NumberOfProposals(ctx context.Context) (uint32, error) {
	counter, err := q.store.Counter(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to get proposal counter: %w", err)
	}
	return counter, nil
}

func (q *Query) Config(ctx context.Context) (ConfigOutput, error) {
	counter, err := q.store.Counter(ctx)
	if err != nil {
		return ConfigOutput{}, fmt.Errorf("failed to get proposal counter: %w", err)
	}

	return ConfigOutput{
		PropCounter:        counter,
		PreVoteBond:        q.config.PreVoteBond,
		ActiveQueueBond:    q.config.ActiveQueueBond,
		SupportThreshold:   q.config.SupportThreshold,
		SimpleConsent:      q.config.Policy.Simple,
		SuperConsent:       q.config.Policy.Super,
		EarlyRejection:     q.config.Policy.EarlyRejection,
		PreVoteDuration:    q.config.PreVoteDuration,
		VotingDuration:     q.config.VotingDuration,
		CredentialRegistry: q.config.CredentialRegistry,
		CommunityTreasury:  q.config.CommunityTreasury,
	}, nil
}

// PageIDs computes the ids of one page over the dense range [1, counter].
func PageIDs(counter, from, limit uint32, reverse bool) []uint32 {
	if limit == 0 || counter == 0 {
		return nil
	}

	if reverse {
		anchor := uint64(counter)
		if from != 0 && uint64(from) < anchor {
			anchor = uint64(from)
		}

		low := uint64(1)
		if anchor > uint64(limit) {
			low = anchor - uint64(limit) + 1
		}

		ids := make([]uint32, 0, anchor-low+1)
		for id := anchor; id >= low; id-- {
			ids = append(ids, uint32(id))
		}
		return ids
	}

	low := uint64(from)
	if low < 1 {
		low = 1
	}
	high := uint64(from) + uint64(limit)
	if high > uint64(counter) {
		high = uint64(counter)
	}
	if low > high {
		return nil
	}

	ids := make([]uint32, 0, high-low+1)
	for id := low; id <= high; id++ {
		ids = append(ids, uint32(id))
	}
	return ids
}
