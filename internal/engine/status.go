package engine

import (
	"time"

	"consent_governance_system/internal/consent"
	"consent_governance_system/internal/db/models"
)

// StatusAt derives the status of a proposal at the given instant. It reads
// only stored fields, so two calls with the same arguments agree.
func StatusAt(policy consent.Policy, proposal *models.Proposal, now time.Time) models.Status {
	if proposal.IsSpam {
		return models.StatusSpam
	}

	deadlinePassed := !now.Before(proposal.PhaseDeadline)

	switch proposal.Phase {
	case models.PhasePreVote:
		if deadlinePassed {
			return models.StatusExpired
		}
		return models.StatusInProgress
	case models.PhaseActive:
		tally := consent.NewTally(proposal.ConsentVotes)
		switch policy.Evaluate(tally, proposal.EligiblePopulation, proposal.Consent, deadlinePassed) {
		case consent.Passed:
			return models.StatusApproved
		case consent.Rejected:
			return models.StatusRejected
		}
	}
	return models.StatusInProgress
}
