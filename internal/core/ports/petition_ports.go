package ports

import (
	"context"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/manifesto/internal/core/domain"
)

type SignInput struct {
	PetitionID uuid.UUID
	UserID     uuid.UUID
}

type PetitionService interface {
	Sign(ctx context.Context, input SignInput) (*domain.SignResult, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.PetitionView, error)
	List(ctx context.Context, filter PetitionFilter) ([]*domain.PetitionView, error)
	Complete(ctx context.Context, id uuid.UUID) error
}
