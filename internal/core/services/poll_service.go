package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/manifesto/internal/core/domain"
	"github.com/vncsmyrnk/manifesto/internal/core/ports"
	"go.uber.org/zap"
)

type pollService struct {
	uow ports.UnitOfWork
	enricher
	options
}

func NewPollService(uow ports.UnitOfWork, authors ports.AuthorDirectory, opts ...Option) ports.PollService {
	return &pollService{
		uow:      uow,
		enricher: newEnricher(uow, authors),
		options:  newOptions(opts),
	}
}

// Vote records one final ballot. A vote arriving after the end date closes the
// poll, and that closure is committed even though the vote is rejected.
func (s *pollService) Vote(ctx context.Context, input ports.VoteInput) (*domain.Poll, error) {
	var (
		poll      *domain.Poll
		rejection error
	)

	err := s.uow.WithinTx(ctx, func(r ports.Repositories) error {
		p, err := r.Polls.GetForUpdate(ctx, input.PollID)
		if err != nil {
			return err
		}

		existing, err := r.Polls.GetVote(ctx, p.ID, input.UserID)
		if err != nil {
			return err
		}
		if existing != nil {
			return domain.ErrAlreadyVoted
		}

		now := s.now()
		wasActive := p.IsActive
		if err := p.AcceptsVotes(now); err != nil {
			if !wasActive {
				return err
			}
			if err := r.Polls.SetActive(ctx, p.ID, false, now); err != nil {
				return err
			}
			s.log.Info("poll closed by end date", zap.Stringer("poll_id", p.ID))
			rejection = err
			return nil
		}

		ballot, err := p.NormalizeBallot(input.OptionIDs)
		if err != nil {
			return err
		}

		err = r.Polls.InsertVote(ctx, &domain.PollVote{
			PollID:    p.ID,
			UserID:    input.UserID,
			OptionIDs: ballot,
			CreatedAt: now,
		})
		if err != nil {
			return err
		}

		p.Tally(ballot, now)
		if err := r.Polls.UpdateTally(ctx, p); err != nil {
			return err
		}
		poll = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	if rejection != nil {
		return nil, rejection
	}

	return poll, nil
}

func (s *pollService) Get(ctx context.Context, id uuid.UUID) (*domain.PollView, error) {
	poll, err := s.uow.Repositories().Polls.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return enrichOne(ctx, s.enricher, poll, pollPostID, pollAuthorID)
}

func (s *pollService) List(ctx context.Context, filter ports.PollFilter) ([]*domain.PollView, error) {
	if filter.ActiveOnly && filter.Now.IsZero() {
		filter.Now = s.now()
	}

	polls, err := s.uow.Repositories().Polls.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return enrich(ctx, s.enricher, polls, pollPostID, pollAuthorID)
}

func (s *pollService) MyVote(ctx context.Context, pollID, userID uuid.UUID) (*domain.PollVote, error) {
	repos := s.uow.Repositories()
	if _, err := repos.Polls.GetByID(ctx, pollID); err != nil {
		return nil, err
	}

	vote, err := repos.Polls.GetVote(ctx, pollID, userID)
	if err != nil {
		return nil, err
	}
	if vote == nil {
		return nil, domain.ErrVoteNotFound
	}
	return vote, nil
}

func (s *pollService) Close(ctx context.Context, id uuid.UUID) error {
	return s.uow.WithinTx(ctx, func(r ports.Repositories) error {
		poll, err := r.Polls.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if !poll.IsActive {
			return nil
		}
		if err := r.Polls.SetActive(ctx, id, false, s.now()); err != nil {
			return err
		}
		s.log.Info("poll closed", zap.Stringer("poll_id", id))
		return nil
	})
}

func pollPostID(p *domain.Poll) uuid.UUID   { return p.PostID }
func pollAuthorID(p *domain.Poll) uuid.UUID { return p.AuthorID }
