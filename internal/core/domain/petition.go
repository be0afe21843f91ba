package domain

import (
	"time"

	"github.com/google/uuid"
)

type PetitionStatus string

const (
	PetitionActive     PetitionStatus = "active"
	PetitionSuccessful PetitionStatus = "successful"
	PetitionExpired    PetitionStatus = "expired"
	PetitionCompleted  PetitionStatus = "completed"
)

func (s PetitionStatus) Valid() bool {
	switch s {
	case PetitionActive, PetitionSuccessful, PetitionExpired, PetitionCompleted:
		return true
	}
	return false
}

type Petition struct {
	ID                uuid.UUID      `json:"id"`
	PostID            uuid.UUID      `json:"post_id"`
	AuthorID          uuid.UUID      `json:"author_id"`
	Title             string         `json:"title"`
	Description       string         `json:"description"`
	Goal              int64          `json:"goal"`
	CurrentSignatures int64          `json:"current_signatures"`
	TargetDeadline    time.Time      `json:"target_deadline"`
	Status            PetitionStatus `json:"status"`
	Links             Links          `json:"links"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
}

type PetitionSignature struct {
	PetitionID uuid.UUID `json:"petition_id"`
	UserID     uuid.UUID `json:"user_id"`
	SignedAt   time.Time `json:"signed_at"`
}

type SignResult struct {
	CurrentSignatures int64          `json:"current_signatures"`
	Status            PetitionStatus `json:"status"`
}

func NewPetition(post *Post, description string, goal int64, deadline time.Time) *Petition {
	return &Petition{
		ID:             uuid.New(),
		PostID:         post.ID,
		AuthorID:       post.AuthorID,
		Title:          post.Title,
		Description:    description,
		Goal:           goal,
		TargetDeadline: deadline,
		Status:         PetitionActive,
		Links:          post.Links,
		CreatedAt:      post.CreatedAt,
		UpdatedAt:      post.CreatedAt,
	}
}

// Sign counts one signature and fires the goal transition.
// When the deadline has passed the petition moves to expired and ErrPetitionExpired
// is returned; that status change must still be persisted.
func (p *Petition) Sign(now time.Time) error {
	if p.Status != PetitionActive {
		return ErrPetitionNotActive
	}
	if now.After(p.TargetDeadline) {
		p.Status = PetitionExpired
		p.UpdatedAt = now
		return ErrPetitionExpired
	}

	p.CurrentSignatures++
	if p.CurrentSignatures >= p.Goal {
		p.Status = PetitionSuccessful
	}
	p.UpdatedAt = now
	return nil
}

// Complete is the administrative close. Expired petitions cannot be completed.
func (p *Petition) Complete(now time.Time) error {
	switch p.Status {
	case PetitionCompleted:
		return nil
	case PetitionActive, PetitionSuccessful:
		p.Status = PetitionCompleted
		p.UpdatedAt = now
		return nil
	default:
		return ErrPetitionNotActive
	}
}
