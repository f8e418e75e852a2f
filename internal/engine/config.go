package engine

import (
	"time"

	"consent_governance_system/internal/consent"
)

const (
	MaxTitleLength = 200
	MaxLinkLength  = 500
)

type Config struct {
	PreVoteBond      uint64
	ActiveQueueBond  uint64
	SupportThreshold uint32
	Policy           consent.Policy
	PreVoteDuration  time.Duration
	VotingDuration   time.Duration

	CredentialRegistry string
	ProposerClass      string
	VoterClass         string

	CommunityTreasury string
	SpamMarkers       []string

	// EligiblePopulation is used when the oracle cannot count credential holders.
	EligiblePopulation uint64
}

func (c Config) isSpamMarker(account string) bool {
	for _, marker := range c.SpamMarkers {
		if marker == account {
			return true
		}
	}
	return false
}

// ConfigOutput is the read-only view returned by Query.Config.
type ConfigOutput struct {
	PropCounter        uint32            `json:"prop_counter"`
	PreVoteBond        uint64            `json:"pre_vote_bond"`
	ActiveQueueBond    uint64            `json:"active_queue_bond"`
	SupportThreshold   uint32            `json:"pre_vote_support_threshold"`
	SimpleConsent      consent.Threshold `json:"simple_consent"`
	SuperConsent       consent.Threshold `json:"super_consent"`
	EarlyRejection     bool              `json:"early_rejection"`
	PreVoteDuration    time.Duration     `json:"pre_vote_duration"`
	VotingDuration     time.Duration     `json:"voting_duration"`
	CredentialRegistry string            `json:"credential_registry"`
	CommunityTreasury  string            `json:"community_treasury"`
}
