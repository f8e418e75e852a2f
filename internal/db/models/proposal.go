package models

import (
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type (
	Phase       string
	Status      string
	VoteValue   string
	Category    string
	ConsentKind string
)

func (p Phase) String() string {
	return string(p)
}

func (s Status) String() string {
	return string(s)
}

func (s Status) CapitalizedString() string {
	return cases.Title(language.English).String(s.String())
}

// IsTerminal reports whether no further phase transition can happen.
func (s Status) IsTerminal() bool {
	return s != StatusInProgress
}

func (v VoteValue) String() string {
	return string(v)
}

func (v VoteValue) IsValid() bool {
	switch v {
	case VoteFor, VoteAgainst, VoteAbstain:
		return true
	}
	return false
}

func (c Category) String() string {
	return string(c)
}

func (c Category) CapitalizedString() string {
	return cases.Title(language.English).String(strings.ReplaceAll(c.String(), "_", " "))
}

func (k ConsentKind) String() string {
	return string(k)
}

const (
	PhasePreVote Phase = "pre_vote"
	PhaseActive  Phase = "active"

	StatusInProgress Status = "in progress"
	StatusApproved   Status = "approved"
	StatusRejected   Status = "rejected"
	StatusSpam       Status = "spam"
	StatusExpired    Status = "expired"

	VoteFor     VoteValue = "for"
	VoteAgainst VoteValue = "against"
	VoteAbstain VoteValue = "abstain"

	ConsentSimple ConsentKind = "simple"
	ConsentSuper  ConsentKind = "super"

	CategoryText                    Category = "text"
	CategoryFundingRequest          Category = "funding_request"
	CategoryRecurrentFundingRequest Category = "recurrent_funding_request"
	CategoryVeto                    Category = "veto"
	CategoryApproveBudget           Category = "approve_budget"
	CategoryDismiss                 Category = "dismiss"
	CategoryUpdateBonds             Category = "update_bonds"
)

var categoryConsent = map[Category]ConsentKind{
	CategoryText:                    ConsentSimple,
	CategoryFundingRequest:          ConsentSimple,
	CategoryRecurrentFundingRequest: ConsentSimple,
	CategoryVeto:                    ConsentSimple,
	CategoryApproveBudget:           ConsentSuper,
	CategoryDismiss:                 ConsentSuper,
	CategoryUpdateBonds:             ConsentSuper,
}

// Consent returns the consent level a category is decided by.
func (c Category) Consent() (ConsentKind, bool) {
	kind, ok := categoryConsent[c]
	return kind, ok
}

type Proposal struct {
	ID                 uint32               `json:"id" pg:",pk"`
	Proposer           string               `json:"proposer" pg:",notnull"`
	Category           Category             `json:"category" pg:",notnull"`
	Consent            ConsentKind          `json:"consent" pg:",notnull"`
	Title              string               `json:"title" pg:",notnull"`
	Description        string               `json:"description"`
	Link               string               `json:"link"`
	Phase              Phase                `json:"phase" pg:",notnull"`
	CreatedAt          time.Time            `json:"created_at" pg:",notnull"`
	PhaseDeadline      time.Time            `json:"phase_deadline" pg:",notnull"`
	BondAmount         uint64               `json:"bond_amount" pg:",notnull,use_zero"`
	BondReceipt        string               `json:"bond_receipt" pg:",notnull"`
	BondDisposed       bool                 `json:"bond_disposed" pg:",notnull,use_zero"`
	BondDestination    string               `json:"bond_destination"`
	SupportVotes       []string             `json:"support_votes" pg:",array"`
	ConsentVotes       map[string]VoteValue `json:"consent_votes" pg:"type:jsonb"`
	EligiblePopulation uint64               `json:"eligible_population" pg:",use_zero"`
	IsSpam             bool                 `json:"is_spam" pg:",notnull,use_zero"`
	Announced          bool                 `json:"announced" pg:",notnull,use_zero"`
	Version            uint32               `json:"version" pg:",notnull,use_zero"`
	Status             Status               `json:"status" pg:"-"`
}

func (p *Proposal) Clone() *Proposal {
	c := *p
	if p.SupportVotes != nil {
		c.SupportVotes = make([]string, len(p.SupportVotes))
		copy(c.SupportVotes, p.SupportVotes)
	}
	if p.ConsentVotes != nil {
		c.ConsentVotes = make(map[string]VoteValue, len(p.ConsentVotes))
		for voter, value := range p.ConsentVotes {
			c.ConsentVotes[voter] = value
		}
	}
	return &c
}

func (p *Proposal) HasSupported(voter string) bool {
	for _, v := range p.SupportVotes {
		if v == voter {
			return true
		}
	}
	return false
}

func (p *Proposal) HasVoted(voter string) bool {
	_, ok := p.ConsentVotes[voter]
	return ok
}
