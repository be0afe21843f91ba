package domain

import (
	"time"

	"github.com/google/uuid"
)

type Reaction string

const (
	ReactionAgree    Reaction = "agree"
	ReactionDisagree Reaction = "disagree"
	ReactionNeutral  Reaction = "neutral"
)

func (r Reaction) Valid() bool {
	return r == ReactionAgree || r == ReactionDisagree || r == ReactionNeutral
}

type Debate struct {
	ID            uuid.UUID `json:"id"`
	PostID        uuid.UUID `json:"post_id"`
	AuthorID      uuid.UUID `json:"author_id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Topic         string    `json:"topic"`
	TopicKey      string    `json:"-"`
	AgreeCount    int64     `json:"agree_count"`
	DisagreeCount int64     `json:"disagree_count"`
	NeutralCount  int64     `json:"neutral_count"`
	CommentCount  int64     `json:"comment_count"`
	Links         Links     `json:"links"`
	IsArchived    bool      `json:"is_archived"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// DebateReaction is the single live ledger row of a user on a debate.
type DebateReaction struct {
	DebateID  uuid.UUID `json:"debate_id"`
	UserID    uuid.UUID `json:"user_id"`
	Reaction  Reaction  `json:"reaction"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type OutcomeKind string

const (
	OutcomeCreated   OutcomeKind = "created"
	OutcomeUnchanged OutcomeKind = "unchanged"
	OutcomeChanged   OutcomeKind = "changed"
)

// ReactionOutcome reports what recording a reaction did to the ledger.
// From is only set for OutcomeChanged.
type ReactionOutcome struct {
	Kind OutcomeKind `json:"kind"`
	From Reaction    `json:"from,omitempty"`
	To   Reaction    `json:"to"`
}

// ResolveReaction decides how a reaction lands given the user's current ledger row, if any.
func ResolveReaction(existing *DebateReaction, next Reaction) ReactionOutcome {
	switch {
	case existing == nil:
		return ReactionOutcome{Kind: OutcomeCreated, To: next}
	case existing.Reaction == next:
		return ReactionOutcome{Kind: OutcomeUnchanged, To: next}
	default:
		return ReactionOutcome{Kind: OutcomeChanged, From: existing.Reaction, To: next}
	}
}

func NewDebate(post *Post, description, topic string) *Debate {
	return &Debate{
		ID:          uuid.New(),
		PostID:      post.ID,
		AuthorID:    post.AuthorID,
		Title:       post.Title,
		Description: description,
		Topic:       topic,
		TopicKey:    TopicKey(topic),
		Links:       post.Links,
		CreatedAt:   post.CreatedAt,
		UpdatedAt:   post.CreatedAt,
	}
}

func (d *Debate) AcceptsReactions() error {
	if d.IsArchived {
		return ErrDebateArchived
	}
	return nil
}

// Apply moves the reaction buckets for an outcome. A change is a single step:
// the old bucket loses exactly what the new one gains.
func (d *Debate) Apply(o ReactionOutcome, at time.Time) {
	switch o.Kind {
	case OutcomeCreated:
		*d.bucket(o.To)++
	case OutcomeChanged:
		*d.bucket(o.From)--
		*d.bucket(o.To)++
	default:
		return
	}
	d.UpdatedAt = at
}

func (d *Debate) TotalReactions() int64 {
	return d.AgreeCount + d.DisagreeCount + d.NeutralCount
}

func (d *Debate) bucket(r Reaction) *int64 {
	switch r {
	case ReactionAgree:
		return &d.AgreeCount
	case ReactionDisagree:
		return &d.DisagreeCount
	default:
		return &d.NeutralCount
	}
}

// ReactionTally is a debate's bucket counts recomputed from the ledger.
type ReactionTally struct {
	Agree    int64
	Disagree int64
	Neutral  int64
}

func (t ReactionTally) Matches(d *Debate) bool {
	return t.Agree == d.AgreeCount && t.Disagree == d.DisagreeCount && t.Neutral == d.NeutralCount
}
