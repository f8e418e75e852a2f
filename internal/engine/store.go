package engine

import (
	"context"
	"sort"
	"sync"

	"consent_governance_system/internal/db/models"
)

type Partition int

const (
	PartitionMissing Partition = iota
	PartitionPreVote
	PartitionActive
)

func (p Partition) String() string {
	switch p {
	case PartitionPreVote:
		return "pre_vote"
	case PartitionActive:
		return "active"
	default:
		return "missing"
	}
}

// Located is the result of a lookup across both partitions.
type Located struct {
	Partition Partition
	Proposal  *models.Proposal
}

func Missing() Located {
	return Located{Partition: PartitionMissing}
}

func InPreVote(proposal *models.Proposal) Located {
	return Located{Partition: PartitionPreVote, Proposal: proposal}
}

func InActive(proposal *models.Proposal) Located {
	return Located{Partition: PartitionActive, Proposal: proposal}
}

func (l Located) Found() bool {
	return l.Partition != PartitionMissing
}

// MemoryStore is an in-memory Store. Records are copied on the way in and out.
type MemoryStore struct {
	mutex   sync.RWMutex
	counter uint32
	preVote map[uint32]*models.Proposal
	active  map[uint32]*models.Proposal
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		preVote: make(map[uint32]*models.Proposal),
		active:  make(map[uint32]*models.Proposal),
	}
}

func (s *MemoryStore) Create(_ context.Context, proposal *models.Proposal) (uint32, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.counter++
	proposal.ID = s.counter
	s.partition(proposal.Phase)[proposal.ID] = proposal.Clone()
	return proposal.ID, nil
}

func (s *MemoryStore) Locate(_ context.Context, id uint32) (Located, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if proposal, ok := s.active[id]; ok {
		return InActive(proposal.Clone()), nil
	}
	if proposal, ok := s.preVote[id]; ok {
		return InPreVote(proposal.Clone()), nil
	}
	return Missing(), nil
}

func (s *MemoryStore) Update(_ context.Context, proposal *models.Proposal) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	partition := s.partition(proposal.Phase)
	stored, ok := partition[proposal.ID]
	if !ok {
		return ErrNotFound
	}
	if stored.Version != proposal.Version {
		return ErrConflict
	}

	proposal.Version++
	record := proposal.Clone()
	record.Announced = stored.Announced
	partition[proposal.ID] = record
	return nil
}

func (s *MemoryStore) Promote(_ context.Context, proposal *models.Proposal) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	stored, ok := s.preVote[proposal.ID]
	if !ok {
		return ErrNotFound
	}
	if stored.Version != proposal.Version {
		return ErrConflict
	}

	proposal.Version++
	delete(s.preVote, proposal.ID)
	s.active[proposal.ID] = proposal.Clone()
	return nil
}

func (s *MemoryStore) Counter(_ context.Context) (uint32, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return s.counter, nil
}

func (s *MemoryStore) Undisposed(_ context.Context) ([]uint32, error) {
	return s.ids(func(p *models.Proposal) bool {
		return !p.BondDisposed
	}), nil
}

func (s *MemoryStore) Unannounced(_ context.Context) ([]uint32, error) {
	return s.ids(func(p *models.Proposal) bool {
		return p.BondDisposed && !p.Announced
	}), nil
}

func (s *MemoryStore) MarkAnnounced(_ context.Context, id uint32) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	for _, partition := range []map[uint32]*models.Proposal{s.preVote, s.active} {
		if proposal, ok := partition[id]; ok {
			proposal.Announced = true
			return nil
		}
	}
	return ErrNotFound
}

func (s *MemoryStore) ids(match func(*models.Proposal) bool) []uint32 {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	ids := make([]uint32, 0)
	for _, partition := range []map[uint32]*models.Proposal{s.preVote, s.active} {
		for id, proposal := range partition {
			if match(proposal) {
				ids = append(ids, id)
			}
		}
	}
	sort.Slice(ids, func(i, j int) bool {
		return ids[i] < ids[j]
	})
	return ids
}

func (s *MemoryStore) partition(phase models.Phase) map[uint32]*models.Proposal {
	if phase == models.PhaseActive {
		return s.active
	}
	return s.preVote
}
