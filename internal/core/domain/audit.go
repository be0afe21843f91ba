package domain

import "github.com/google/uuid"

type EntityKind string

const (
	KindDebate   EntityKind = "debate"
	KindPoll     EntityKind = "poll"
	KindPetition EntityKind = "petition"
)

// Drift is an aggregate whose stored counters disagree with its ledger.
type Drift struct {
	Kind   EntityKind `json:"kind"`
	ID     uuid.UUID  `json:"id"`
	Stored string     `json:"stored"`
	Ledger string     `json:"ledger"`
}
