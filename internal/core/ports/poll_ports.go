package ports

import (
	"context"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/manifesto/internal/core/domain"
)

type VoteInput struct {
	PollID    uuid.UUID
	UserID    uuid.UUID
	OptionIDs []string
}

type PollService interface {
	Vote(ctx context.Context, input VoteInput) (*domain.Poll, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.PollView, error)
	List(ctx context.Context, filter PollFilter) ([]*domain.PollView, error)
	MyVote(ctx context.Context, pollID, userID uuid.UUID) (*domain.PollVote, error)
	Close(ctx context.Context, id uuid.UUID) error
}
