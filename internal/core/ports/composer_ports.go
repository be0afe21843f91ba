package ports

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/manifesto/internal/core/domain"
)

type CreateDebateInput struct {
	AuthorID    uuid.UUID
	Title       string
	Description string
	Topic       string
	Links       domain.Links
}

type CreatePollInput struct {
	AuthorID         uuid.UUID
	Title            string
	Description      string
	Options          []string
	IsMultipleChoice bool
	EndDate          *time.Time
	Links            domain.Links
}

type CreatePetitionInput struct {
	AuthorID       uuid.UUID
	Title          string
	Description    string
	Goal           int64
	TargetDeadline time.Time
	Links          domain.Links
}

// ComposerService creates a feed post together with its linked entity.
// Either both become visible or neither does.
type ComposerService interface {
	CreateDebate(ctx context.Context, input CreateDebateInput) (*domain.Created, error)
	CreatePoll(ctx context.Context, input CreatePollInput) (*domain.Created, error)
	CreatePetition(ctx context.Context, input CreatePetitionInput) (*domain.Created, error)
}
