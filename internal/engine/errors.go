package engine

import "errors"

var (
	ErrNotEligible      = errors.New("account does not hold a valid credential")
	ErrNotFound         = errors.New("proposal not found")
	ErrAlreadySupported = errors.New("proposal already supported")
	ErrAlreadyVoted     = errors.New("account already voted")
	ErrInsufficientBond = errors.New("insufficient bond")
	ErrUnauthorized     = errors.New("unauthorized")
	ErrPhaseClosed      = errors.New("phase is closed")
	ErrPhaseOpen        = errors.New("phase deadline has not passed")
	// ErrConflict is returned by a Store when the record changed since it was read.
	ErrConflict = errors.New("proposal changed concurrently")

	ErrUnknownCategory = errors.New("unknown proposal category")
	ErrInvalidVote     = errors.New("invalid vote value")
	ErrInvalidProposal = errors.New("invalid proposal")

	// ErrBondReleased is returned by a BondLedger asked to release a receipt twice.
	ErrBondReleased = errors.New("bond already released")
)
