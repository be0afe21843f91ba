package services

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/manifesto/internal/core/domain"
	"github.com/vncsmyrnk/manifesto/internal/core/ports"
	"go.uber.org/zap"
)

type feedService struct {
	uow     ports.UnitOfWork
	authors ports.AuthorDirectory
	options
}

// NewFeedService resolves authors through the given directory, or through the
// store's users when it is nil.
func NewFeedService(uow ports.UnitOfWork, authors ports.AuthorDirectory, opts ...Option) ports.FeedService {
	if authors == nil {
		authors = uow.Repositories().Users
	}
	return &feedService{
		uow:     uow,
		authors: authors,
		options: newOptions(opts),
	}
}

func (s *feedService) Create(ctx context.Context, input ports.CreatePostInput) (*domain.FeedPost, error) {
	title, err := requireBasics(input.AuthorID, input.Title)
	if err != nil {
		return nil, err
	}

	switch input.Type {
	case domain.PostTypeMedia, domain.PostTypeUpdate:
	case domain.PostTypeDebate, domain.PostTypePoll, domain.PostTypePetition:
		return nil, domain.Invalid("%s posts are created with their %s", input.Type, input.Type)
	default:
		return nil, domain.Invalid("unknown post type %q", input.Type)
	}

	mediaURLs, err := normalizeMediaURLs(input.MediaURLs)
	if err != nil {
		return nil, err
	}
	if input.Type == domain.PostTypeMedia && len(mediaURLs) == 0 {
		return nil, domain.Invalid("media posts need at least one media url")
	}

	post := domain.NewPost(input.AuthorID, input.Type, title, strings.TrimSpace(input.Body), normalizeTags(input.Tags), input.Links, s.now())
	post.MediaURLs = mediaURLs

	if err := s.uow.Repositories().Posts.Insert(ctx, post); err != nil {
		return nil, err
	}

	s.log.Info("post created",
		zap.String("type", string(post.Type)),
		zap.Stringer("post_id", post.ID),
	)
	return s.withAuthor(ctx, post)
}

func (s *feedService) List(ctx context.Context, filter ports.PostFilter) ([]*domain.FeedPost, error) {
	if filter.Type != "" && !filter.Type.Valid() {
		return nil, domain.Invalid("unknown post type %q", filter.Type)
	}
	posts, err := s.uow.Repositories().Posts.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return s.withAuthors(ctx, posts)
}

func (s *feedService) Get(ctx context.Context, id uuid.UUID) (*domain.FeedPost, error) {
	post, err := s.uow.Repositories().Posts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.withAuthor(ctx, post)
}

func (s *feedService) Like(ctx context.Context, id uuid.UUID) (*domain.FeedPost, error) {
	var post *domain.Post
	err := s.uow.WithinTx(ctx, func(r ports.Repositories) error {
		if err := r.Posts.IncrementLikes(ctx, id, s.now()); err != nil {
			return err
		}
		var err error
		post, err = r.Posts.GetByID(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return s.withAuthor(ctx, post)
}

func (s *feedService) withAuthor(ctx context.Context, post *domain.Post) (*domain.FeedPost, error) {
	items, err := s.withAuthors(ctx, []*domain.Post{post})
	if err != nil {
		return nil, err
	}
	return items[0], nil
}

func (s *feedService) withAuthors(ctx context.Context, posts []*domain.Post) ([]*domain.FeedPost, error) {
	ids := make([]uuid.UUID, 0, len(posts))
	seen := map[uuid.UUID]bool{}
	for _, post := range posts {
		if !seen[post.AuthorID] {
			seen[post.AuthorID] = true
			ids = append(ids, post.AuthorID)
		}
	}

	authors, err := s.authors.Summaries(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load authors: %w", err)
	}

	items := make([]*domain.FeedPost, 0, len(posts))
	for _, post := range posts {
		item := &domain.FeedPost{Post: post}
		if author, ok := authors[post.AuthorID]; ok {
			item.Author = &author
		}
		items = append(items, item)
	}
	return items, nil
}

// normalizeTags trims tags and drops blanks and case-insensitive repeats,
// keeping the first spelling and the caller's order.
func normalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := map[string]bool{}
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		key := domain.TopicKey(tag)
		if tag == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, tag)
	}
	return out
}

// normalizeMediaURLs accepts absolute http(s) links to media hosted elsewhere.
func normalizeMediaURLs(raw []string) ([]string, error) {
	out := make([]string, 0, len(raw))
	for _, link := range raw {
		link = strings.TrimSpace(link)
		u, err := url.Parse(link)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return nil, domain.Invalid("invalid media url %q", link)
		}
		out = append(out, link)
	}
	return out, nil
}
