package notifier

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"consent_governance_system/internal/db/models"
)

type Notifier interface {
	Notify(ctx context.Context, proposal *models.Proposal) error
}

type multi []Notifier

// Multi notifies every target and joins their errors.
func Multi(notifiers ...Notifier) Notifier {
	return multi(notifiers)
}

func (m multi) Notify(ctx context.Context, proposal *models.Proposal) error {
	var errs []error
	for _, n := range m {
		if err := n.Notify(ctx, proposal); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// OutcomeMessage renders the announcement of a decided proposal.
func OutcomeMessage(proposal *models.Proposal) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Proposal #%d \"%s\" is %s.\n", proposal.ID, proposal.Title, proposal.Status.CapitalizedString())
	fmt.Fprintf(&b, "Category: %s\n", proposal.Category.CapitalizedString())

	switch proposal.Status {
	case models.StatusApproved, models.StatusRejected:
		var votesFor, against, abstain int
		for _, v := range proposal.ConsentVotes {
			switch v {
			case models.VoteFor:
				votesFor++
			case models.VoteAgainst:
				against++
			case models.VoteAbstain:
				abstain++
			}
		}
		fmt.Fprintf(&b, "Votes: %d for, %d against, %d abstain of %d eligible\n", votesFor, against, abstain, proposal.EligiblePopulation)
	case models.StatusExpired:
		fmt.Fprintf(&b, "Support: %d\n", len(proposal.SupportVotes))
	}

	switch {
	case !proposal.BondDisposed:
	case proposal.Status == models.StatusSpam:
		fmt.Fprintf(&b, "Bond of %d forfeited to %s\n", proposal.BondAmount, proposal.BondDestination)
	default:
		fmt.Fprintf(&b, "Bond of %d returned to %s\n", proposal.BondAmount, proposal.BondDestination)
	}
	if proposal.Link != "" {
		fmt.Fprintf(&b, "%s\n", proposal.Link)
	}

	return strings.TrimSuffix(b.String(), "\n")
}
