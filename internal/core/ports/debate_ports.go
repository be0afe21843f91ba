package ports

import (
	"context"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/manifesto/internal/core/domain"
)

type ReactInput struct {
	DebateID uuid.UUID
	UserID   uuid.UUID
	Reaction domain.Reaction
}

type DebateService interface {
	React(ctx context.Context, input ReactInput) (*domain.ReactionOutcome, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.DebateView, error)
	List(ctx context.Context, filter DebateFilter) ([]*domain.DebateView, error)
	Archive(ctx context.Context, id uuid.UUID) error
}
