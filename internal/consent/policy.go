// Package consent decides active proposals from their vote tally.
package consent

import (
	"consent_governance_system/internal/db/models"
)

type Outcome int

const (
	Undecided Outcome = iota
	Passed
	Rejected
)

func (o Outcome) String() string {
	switch o {
	case Passed:
		return "passed"
	case Rejected:
		return "rejected"
	default:
		return "undecided"
	}
}

// Threshold is a (for ratio, quorum) pair. Both are fractions in (0, 1].
type Threshold struct {
	ForRatio float64 `json:"for_ratio"`
	Quorum   float64 `json:"quorum"`
}

type Tally struct {
	For     uint64 `json:"for"`
	Against uint64 `json:"against"`
	Abstain uint64 `json:"abstain"`
}

func (t Tally) Cast() uint64 {
	return t.For + t.Against + t.Abstain
}

func NewTally(votes map[string]models.VoteValue) Tally {
	var t Tally
	for _, v := range votes {
		switch v {
		case models.VoteFor:
			t.For++
		case models.VoteAgainst:
			t.Against++
		case models.VoteAbstain:
			t.Abstain++
		}
	}
	return t
}

type Policy struct {
	Simple Threshold `json:"simple_consent"`
	Super  Threshold `json:"super_consent"`

	// EarlyRejection rejects before the deadline once passing is out of reach.
	EarlyRejection bool `json:"early_rejection"`
}

func (p Policy) Threshold(kind models.ConsentKind) Threshold {
	if kind == models.ConsentSuper {
		return p.Super
	}
	return p.Simple
}

// Evaluate maps a tally and the eligible population to an outcome under the
// threshold selected by kind.
func (p Policy) Evaluate(tally Tally, eligible uint64, kind models.ConsentKind, deadlinePassed bool) Outcome {
	threshold := p.Threshold(kind)

	// nobody can have voted without being eligible
	population := eligible
	if cast := tally.Cast(); cast > population {
		population = cast
	}

	if meets(tally.For, tally.Cast(), population, threshold) {
		return Passed
	}
	if deadlinePassed {
		return Rejected
	}
	if p.EarlyRejection && !reachable(tally, population, threshold) {
		return Rejected
	}
	return Undecided
}

func meets(votesFor, cast, population uint64, threshold Threshold) bool {
	if population == 0 {
		return false
	}
	participation := float64(cast) / float64(population)
	forRatio := float64(votesFor) / float64(maxUint64(cast, 1))
	return participation >= threshold.Quorum && forRatio >= threshold.ForRatio
}

// reachable reports whether the threshold can still be met if every remaining
// eligible voter votes for.
func reachable(tally Tally, population uint64, threshold Threshold) bool {
	remaining := population - tally.Cast()
	return meets(tally.For+remaining, population, population, threshold)
}

func maxUint64(a, b uint64) uint64 {
	if a > b {
		return a
	}
	return b
}
