package engine

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mock_engine

import (
	"context"
	"time"

	"consent_governance_system/internal/db/models"
)

type CredentialOracle interface {
	IsValid(ctx context.Context, account, class string, at time.Time) (bool, error)
}

// Census is implemented by oracles that can count the holders of a credential
// class. The count becomes the eligible population of a proposal when it is promoted.
type Census interface {
	Holders(ctx context.Context, class string, at time.Time) (uint64, error)
}

// BondLedger holds bonds on behalf of proposers. Release of an already
// released receipt must fail with ErrBondReleased.
type BondLedger interface {
	Lock(ctx context.Context, account string, amount uint64) (receipt string, err error)
	Release(ctx context.Context, receipt, destination string) error
}

// Store keeps proposals in a pre-vote and an active partition.
type Store interface {
	// Create assigns the next id and inserts the proposal into the partition of its phase.
	Create(ctx context.Context, proposal *models.Proposal) (uint32, error)
	Locate(ctx context.Context, id uint32) (Located, error)
	// Update writes the record if its stored version still equals
	// proposal.Version and bumps proposal.Version. A stale version fails with
	// ErrConflict. The announced flag is left untouched.
	Update(ctx context.Context, proposal *models.Proposal) error
	// Promote moves a pre-vote record into the active partition under the
	// same id, with the same version check as Update.
	Promote(ctx context.Context, proposal *models.Proposal) error
	Counter(ctx context.Context) (uint32, error)
	// Undisposed lists ids whose bond has not been disposed yet, ascending.
	Undisposed(ctx context.Context) ([]uint32, error)
	// Unannounced lists ids whose bond was disposed but whose outcome has not
	// been announced yet, ascending.
	Unannounced(ctx context.Context) ([]uint32, error)
	MarkAnnounced(ctx context.Context, id uint32) error
}

type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

func SystemClock() Clock {
	return systemClock{}
}
