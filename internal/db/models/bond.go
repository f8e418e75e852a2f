package models

import "time"

type Bond struct {
	ID         string     `json:"id" pg:",pk"`
	Account    string     `json:"account" pg:",notnull"`
	Amount     uint64     `json:"amount" pg:",notnull,use_zero"`
	LockedAt   time.Time  `json:"locked_at" pg:"default:now()"`
	ReleasedTo string     `json:"released_to"`
	ReleasedAt *time.Time `json:"released_at"`
}

type ProposalCounter struct {
	ID    int    `json:"id" pg:",pk"`
	Value uint32 `json:"value" pg:",notnull,use_zero"`
}
