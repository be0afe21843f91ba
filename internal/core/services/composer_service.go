package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/manifesto/internal/core/domain"
	"github.com/vncsmyrnk/manifesto/internal/core/ports"
	"go.uber.org/zap"
)

type composerService struct {
	uow ports.UnitOfWork
	options
}

func NewComposerService(uow ports.UnitOfWork, opts ...Option) ports.ComposerService {
	return &composerService{
		uow:     uow,
		options: newOptions(opts),
	}
}

func (s *composerService) CreateDebate(ctx context.Context, input ports.CreateDebateInput) (*domain.Created, error) {
	title, err := requireBasics(input.AuthorID, input.Title)
	if err != nil {
		return nil, err
	}
	topic := strings.TrimSpace(input.Topic)
	if topic == "" {
		return nil, domain.Invalid("topic is required")
	}

	post := domain.NewPost(input.AuthorID, domain.PostTypeDebate, title, input.Description, []string{topic}, input.Links, s.now())
	debate := domain.NewDebate(post, input.Description, topic)

	return s.compose(ctx, post, debate.ID, func(r ports.Repositories) error {
		return r.Debates.Insert(ctx, debate)
	})
}

func (s *composerService) CreatePoll(ctx context.Context, input ports.CreatePollInput) (*domain.Created, error) {
	title, err := requireBasics(input.AuthorID, input.Title)
	if err != nil {
		return nil, err
	}

	var texts []string
	for _, text := range input.Options {
		if strings.TrimSpace(text) == "" {
			continue
		}
		texts = append(texts, text)
	}
	if len(texts) == 0 {
		return nil, domain.Invalid("at least one option is required")
	}

	now := s.now()
	var endDate *time.Time
	if input.EndDate != nil {
		end := input.EndDate.UTC()
		if !end.After(now) {
			return nil, domain.Invalid("end date must be in the future")
		}
		endDate = &end
	}

	post := domain.NewPost(input.AuthorID, domain.PostTypePoll, title, input.Description, nil, input.Links, now)
	poll := domain.NewPoll(post, input.Description, texts, input.IsMultipleChoice, endDate)

	return s.compose(ctx, post, poll.ID, func(r ports.Repositories) error {
		return r.Polls.Insert(ctx, poll)
	})
}

func (s *composerService) CreatePetition(ctx context.Context, input ports.CreatePetitionInput) (*domain.Created, error) {
	title, err := requireBasics(input.AuthorID, input.Title)
	if err != nil {
		return nil, err
	}
	if input.Goal <= 0 {
		return nil, domain.Invalid("goal must be positive")
	}

	now := s.now()
	deadline := input.TargetDeadline.UTC()
	if !deadline.After(now) {
		return nil, domain.Invalid("target deadline must be in the future")
	}

	post := domain.NewPost(input.AuthorID, domain.PostTypePetition, title, input.Description, nil, input.Links, now)
	petition := domain.NewPetition(post, input.Description, input.Goal, deadline)

	return s.compose(ctx, post, petition.ID, func(r ports.Repositories) error {
		return r.Petitions.Insert(ctx, petition)
	})
}

// compose writes the post and its linked entity in one transaction.
func (s *composerService) compose(ctx context.Context, post *domain.Post, entityID uuid.UUID, insertEntity func(r ports.Repositories) error) (*domain.Created, error) {
	err := s.uow.WithinTx(ctx, func(r ports.Repositories) error {
		if err := r.Posts.Insert(ctx, post); err != nil {
			return err
		}
		return insertEntity(r)
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("post composed",
		zap.String("type", string(post.Type)),
		zap.Stringer("post_id", post.ID),
		zap.Stringer("entity_id", entityID),
	)
	return &domain.Created{EntityID: entityID, PostID: post.ID}, nil
}

func requireBasics(authorID uuid.UUID, title string) (string, error) {
	if authorID == uuid.Nil {
		return "", domain.Invalid("author is required")
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return "", domain.Invalid("title is required")
	}
	return title, nil
}
