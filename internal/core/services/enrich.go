package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/manifesto/internal/core/domain"
	"github.com/vncsmyrnk/manifesto/internal/core/ports"
)

type enricher struct {
	posts   ports.PostRepository
	authors ports.AuthorDirectory
}

// enrich joins entities with their posts and author snapshots using one batched
// lookup for each.
func enrich[T any](ctx context.Context, e enricher, entities []T, postID, authorID func(T) uuid.UUID) ([]*domain.View[T], error) {
	postIDs := make([]uuid.UUID, 0, len(entities))
	authorIDs := make([]uuid.UUID, 0, len(entities))
	seen := map[uuid.UUID]bool{}
	for _, entity := range entities {
		postIDs = append(postIDs, postID(entity))
		if id := authorID(entity); !seen[id] {
			seen[id] = true
			authorIDs = append(authorIDs, id)
		}
	}

	posts, err := e.posts.GetByIDs(ctx, postIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load posts: %w", err)
	}

	authors, err := e.authors.Summaries(ctx, authorIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load authors: %w", err)
	}

	views := make([]*domain.View[T], 0, len(entities))
	for _, entity := range entities {
		view := &domain.View[T]{Entity: entity, Post: posts[postID(entity)]}
		if author, ok := authors[authorID(entity)]; ok {
			view.Author = &author
		}
		views = append(views, view)
	}
	return views, nil
}

func enrichOne[T any](ctx context.Context, e enricher, entity T, postID, authorID func(T) uuid.UUID) (*domain.View[T], error) {
	views, err := enrich(ctx, e, []T{entity}, postID, authorID)
	if err != nil {
		return nil, err
	}
	return views[0], nil
}

func newEnricher(uow ports.UnitOfWork, authors ports.AuthorDirectory) enricher {
	repos := uow.Repositories()
	if authors == nil {
		authors = repos.Users
	}
	return enricher{posts: repos.Posts, authors: authors}
}
