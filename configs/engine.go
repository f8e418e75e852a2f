package configs

import (
	"errors"
	"fmt"
	"time"
)

type Engine struct {
	PreVoteBond      uint64 `env:"PRE_VOTE_BOND,notEmpty"`
	ActiveQueueBond  uint64 `env:"ACTIVE_QUEUE_BOND" envDefault:"0"`
	SupportThreshold uint32 `env:"PRE_VOTE_SUPPORT_THRESHOLD,notEmpty"`

	SimpleConsentForRatio float64 `env:"SIMPLE_CONSENT_FOR_RATIO" envDefault:"0.5"`
	SimpleConsentQuorum   float64 `env:"SIMPLE_CONSENT_QUORUM" envDefault:"0.2"`
	SuperConsentForRatio  float64 `env:"SUPER_CONSENT_FOR_RATIO" envDefault:"0.6"`
	SuperConsentQuorum    float64 `env:"SUPER_CONSENT_QUORUM" envDefault:"0.6"`
	EarlyRejection        bool    `env:"EARLY_REJECTION" envDefault:"true"`

	PreVoteDuration time.Duration `env:"PRE_VOTE_DURATION" envDefault:"72h"`
	VotingDuration  time.Duration `env:"VOTING_DURATION" envDefault:"168h"`

	CredentialRegistryURL string `env:"CREDENTIAL_REGISTRY_URL,notEmpty"`
	ProposerClass         string `env:"PROPOSER_CREDENTIAL_CLASS" envDefault:"verified_human"`
	VoterClass            string `env:"VOTER_CREDENTIAL_CLASS" envDefault:"verified_human"`

	CommunityTreasury  string   `env:"COMMUNITY_TREASURY,notEmpty"`
	SpamMarkers        []string `env:"SPAM_MARKERS" envSeparator:","`
	EligiblePopulation uint64   `env:"ELIGIBLE_POPULATION" envDefault:"0"`
}

func (c Engine) Validate() error {
	ratios := map[string]float64{
		"SIMPLE_CONSENT_FOR_RATIO": c.SimpleConsentForRatio,
		"SIMPLE_CONSENT_QUORUM":    c.SimpleConsentQuorum,
		"SUPER_CONSENT_FOR_RATIO":  c.SuperConsentForRatio,
		"SUPER_CONSENT_QUORUM":     c.SuperConsentQuorum,
	}
	for name, value := range ratios {
		if value <= 0 || value > 1 {
			return fmt.Errorf("%s must be in (0, 1], got %v", name, value)
		}
	}

	if c.SupportThreshold == 0 {
		return errors.New("PRE_VOTE_SUPPORT_THRESHOLD must be positive")
	}
	if c.PreVoteDuration <= 0 || c.VotingDuration <= 0 {
		return errors.New("PRE_VOTE_DURATION and VOTING_DURATION must be positive")
	}
	if c.ActiveQueueBond != 0 && c.ActiveQueueBond < c.PreVoteBond {
		return fmt.Errorf("ACTIVE_QUEUE_BOND (%d) is lower than PRE_VOTE_BOND (%d)", c.ActiveQueueBond, c.PreVoteBond)
	}

	return nil
}
