package consent

import (
	"testing"

	"consent_governance_system/internal/db/models"

	"github.com/stretchr/testify/assert"
)

var testPolicy = Policy{
	Simple: Threshold{ForRatio: 0.5, Quorum: 0.2},
	Super:  Threshold{ForRatio: 0.6, Quorum: 0.6},
}

func TestEvaluate_PassedBeforeDeadline(t *testing.T) {
	outcome := testPolicy.Evaluate(Tally{For: 3}, 10, models.ConsentSimple, false)
	assert.Equal(t, Passed, outcome)
}

func TestEvaluate_UndecidedWithoutQuorum(t *testing.T) {
	outcome := testPolicy.Evaluate(Tally{For: 1}, 10, models.ConsentSimple, false)
	assert.Equal(t, Undecided, outcome)
}

func TestEvaluate_RejectedAtDeadlineWithoutQuorum(t *testing.T) {
	outcome := testPolicy.Evaluate(Tally{For: 1}, 10, models.ConsentSimple, true)
	assert.Equal(t, Rejected, outcome)
}

func TestEvaluate_RejectedAtDeadlineWithLowForRatio(t *testing.T) {
	outcome := testPolicy.Evaluate(Tally{For: 1, Against: 2}, 10, models.ConsentSimple, true)
	assert.Equal(t, Rejected, outcome)
}

func TestEvaluate_AbstainCountsTowardsQuorumOnly(t *testing.T) {
	assert.Equal(t, Passed, testPolicy.Evaluate(Tally{For: 1, Abstain: 1}, 10, models.ConsentSimple, false))
	assert.Equal(t, Undecided, testPolicy.Evaluate(Tally{For: 1, Abstain: 2}, 10, models.ConsentSimple, false))
}

func TestEvaluate_SuperConsentIsStricter(t *testing.T) {
	tally := Tally{For: 3}
	assert.Equal(t, Passed, testPolicy.Evaluate(tally, 10, models.ConsentSimple, false))
	assert.Equal(t, Undecided, testPolicy.Evaluate(tally, 10, models.ConsentSuper, false))
	assert.Equal(t, Passed, testPolicy.Evaluate(Tally{For: 6}, 10, models.ConsentSuper, false))
}

func TestEvaluate_NoEligiblePopulationNeverPasses(t *testing.T) {
	assert.Equal(t, Undecided, testPolicy.Evaluate(Tally{}, 0, models.ConsentSimple, false))
	assert.Equal(t, Rejected, testPolicy.Evaluate(Tally{}, 0, models.ConsentSimple, true))
}

func TestEvaluate_EarlyRejection(t *testing.T) {
	policy := testPolicy
	policy.EarlyRejection = true

	// 6 against out of 10: at most 4 for out of 10 remains possible
	tally := Tally{Against: 6}
	assert.Equal(t, Rejected, policy.Evaluate(tally, 10, models.ConsentSimple, false))
	assert.Equal(t, Undecided, testPolicy.Evaluate(tally, 10, models.ConsentSimple, false))

	// 5 against out of 10 still leaves a 5/10 pass
	assert.Equal(t, Undecided, policy.Evaluate(Tally{Against: 5}, 10, models.ConsentSimple, false))
}

// An early rejection must agree with every way the remaining voters could still vote.
func TestEvaluate_EarlyRejectionNeverChangesFinalOutcome(t *testing.T) {
	early := testPolicy
	early.EarlyRejection = true

	const population = 8
	for _, kind := range []models.ConsentKind{models.ConsentSimple, models.ConsentSuper} {
		for votesFor := uint64(0); votesFor <= population; votesFor++ {
			for against := uint64(0); votesFor+against <= population; against++ {
				for abstain := uint64(0); votesFor+against+abstain <= population; abstain++ {
					tally := Tally{For: votesFor, Against: against, Abstain: abstain}

					assert.Equal(t,
						testPolicy.Evaluate(tally, population, kind, true),
						early.Evaluate(tally, population, kind, true),
						"deadline outcome differs for %+v", tally)

					if early.Evaluate(tally, population, kind, false) != Rejected {
						continue
					}
					remaining := population - tally.Cast()
					for extraFor := uint64(0); extraFor <= remaining; extraFor++ {
						final := Tally{For: votesFor + extraFor, Against: against, Abstain: abstain + remaining - extraFor}
						assert.Equal(t, Rejected, testPolicy.Evaluate(final, population, kind, true),
							"early rejection of %+v contradicted by %+v", tally, final)
					}
				}
			}
		}
	}
}
