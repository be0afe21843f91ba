package ports

import (
	"context"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/manifesto/internal/core/domain"
)

// CreatePostInput creates a standalone feed post. Only media and update posts
// are standalone; the others come with their linked entity from the composer.
type CreatePostInput struct {
	AuthorID  uuid.UUID
	Type      domain.PostType
	Title     string
	Body      string
	Tags      []string
	MediaURLs []string
	Links     domain.Links
}

type FeedService interface {
	Create(ctx context.Context, input CreatePostInput) (*domain.FeedPost, error)
	List(ctx context.Context, filter PostFilter) ([]*domain.FeedPost, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.FeedPost, error)
	Like(ctx context.Context, id uuid.UUID) (*domain.FeedPost, error)
}
