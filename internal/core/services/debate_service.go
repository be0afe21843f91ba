package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/manifesto/internal/core/domain"
	"github.com/vncsmyrnk/manifesto/internal/core/ports"
	"go.uber.org/zap"
)

type debateService struct {
	uow ports.UnitOfWork
	enricher
	options
}

// NewDebateService builds the debate service. A nil authors falls back to the store's user directory.
func NewDebateService(uow ports.UnitOfWork, authors ports.AuthorDirectory, opts ...Option) ports.DebateService {
	return &debateService{
		uow:      uow,
		enricher: newEnricher(uow, authors),
		options:  newOptions(opts),
	}
}

func (s *debateService) React(ctx context.Context, input ports.ReactInput) (*domain.ReactionOutcome, error) {
	if !input.Reaction.Valid() {
		return nil, domain.ErrInvalidReaction
	}

	var outcome domain.ReactionOutcome
	err := s.uow.WithinTx(ctx, func(r ports.Repositories) error {
		debate, err := r.Debates.GetForUpdate(ctx, input.DebateID)
		if err != nil {
			return err
		}
		if err := debate.AcceptsReactions(); err != nil {
			return err
		}

		existing, err := r.Debates.GetReaction(ctx, debate.ID, input.UserID)
		if err != nil {
			return err
		}

		now := s.now()
		outcome = domain.ResolveReaction(existing, input.Reaction)
		switch outcome.Kind {
		case domain.OutcomeUnchanged:
			return nil
		case domain.OutcomeCreated:
			err = r.Debates.InsertReaction(ctx, &domain.DebateReaction{
				DebateID:  debate.ID,
				UserID:    input.UserID,
				Reaction:  input.Reaction,
				CreatedAt: now,
				UpdatedAt: now,
			})
		case domain.OutcomeChanged:
			existing.Reaction = input.Reaction
			existing.UpdatedAt = now
			err = r.Debates.UpdateReaction(ctx, existing)
		}
		if err != nil {
			return err
		}

		debate.Apply(outcome, now)
		return r.Debates.UpdateCounters(ctx, debate)
	})
	if err != nil {
		return nil, err
	}

	return &outcome, nil
}

func (s *debateService) Get(ctx context.Context, id uuid.UUID) (*domain.DebateView, error) {
	debate, err := s.uow.Repositories().Debates.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return enrichOne(ctx, s.enricher, debate, debatePostID, debateAuthorID)
}

func (s *debateService) List(ctx context.Context, filter ports.DebateFilter) ([]*domain.DebateView, error) {
	filter.TopicKey = domain.TopicKey(filter.TopicKey)
	debates, err := s.uow.Repositories().Debates.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return enrich(ctx, s.enricher, debates, debatePostID, debateAuthorID)
}

func (s *debateService) Archive(ctx context.Context, id uuid.UUID) error {
	if err := s.uow.Repositories().Debates.SetArchived(ctx, id, true, s.now()); err != nil {
		return err
	}
	s.log.Info("debate archived", zap.Stringer("debate_id", id))
	return nil
}

func debatePostID(d *domain.Debate) uuid.UUID   { return d.PostID }
func debateAuthorID(d *domain.Debate) uuid.UUID { return d.AuthorID }
