package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/manifesto/internal/core/domain"
	"github.com/vncsmyrnk/manifesto/internal/core/ports"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const auditConcurrency = 8

type auditService struct {
	uow ports.UnitOfWork
	options
}

func NewAuditService(uow ports.UnitOfWork, opts ...Option) ports.AuditService {
	return &auditService{
		uow:     uow,
		options: newOptions(opts),
	}
}

// AuditAll recounts every ledger and compares it with the stored aggregates.
// Multiple-choice polls are compared per option and per ballot, never by sum.
// A mismatch seen without locks is only reported if it survives a recount
// under the entity's row lock.
func (s *auditService) AuditAll(ctx context.Context) ([]domain.Drift, error) {
	repos := s.uow.Repositories()

	debates, err := repos.Debates.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch all debates: %w", err)
	}
	polls, err := repos.Polls.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch all polls: %w", err)
	}
	petitions, err := repos.Petitions.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch all petitions: %w", err)
	}

	var (
		mu     sync.Mutex
		drifts []domain.Drift
	)
	report := func(d *domain.Drift) {
		if d == nil {
			return
		}
		mu.Lock()
		defer mu.Unlock()
		drifts = append(drifts, *d)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(auditConcurrency)

	for _, debate := range debates {
		g.Go(func() error {
			tally, err := repos.Debates.TallyReactions(gctx, debate.ID)
			if err != nil {
				return fmt.Errorf("failed to audit debate %s: %w", debate.ID, err)
			}
			if tally.Matches(debate) {
				return nil
			}
			drift, err := s.recheckDebate(gctx, debate.ID)
			if err != nil {
				return fmt.Errorf("failed to audit debate %s: %w", debate.ID, err)
			}
			report(drift)
			return nil
		})
	}

	for _, poll := range polls {
		g.Go(func() error {
			votes, err := repos.Polls.ListVotes(gctx, poll.ID)
			if err != nil {
				return fmt.Errorf("failed to audit poll %s: %w", poll.ID, err)
			}
			if domain.TallyBallots(votes).Matches(poll) {
				return nil
			}
			drift, err := s.recheckPoll(gctx, poll.ID)
			if err != nil {
				return fmt.Errorf("failed to audit poll %s: %w", poll.ID, err)
			}
			report(drift)
			return nil
		})
	}

	for _, petition := range petitions {
		g.Go(func() error {
			n, err := repos.Petitions.CountSignatures(gctx, petition.ID)
			if err != nil {
				return fmt.Errorf("failed to audit petition %s: %w", petition.ID, err)
			}
			if n == petition.CurrentSignatures {
				return nil
			}
			drift, err := s.recheckPetition(gctx, petition.ID)
			if err != nil {
				return fmt.Errorf("failed to audit petition %s: %w", petition.ID, err)
			}
			report(drift)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(drifts, func(i, j int) bool {
		if drifts[i].Kind != drifts[j].Kind {
			return drifts[i].Kind < drifts[j].Kind
		}
		return drifts[i].ID.String() < drifts[j].ID.String()
	})

	s.log.Info("audit finished",
		zap.Int("debates", len(debates)),
		zap.Int("polls", len(polls)),
		zap.Int("petitions", len(petitions)),
		zap.Int("drifts", len(drifts)),
	)
	return drifts, nil
}

// The recheck helpers return nil when the locked recount agrees with the row.

func (s *auditService) recheckDebate(ctx context.Context, id uuid.UUID) (*domain.Drift, error) {
	var drift *domain.Drift
	err := s.uow.WithinTx(ctx, func(r ports.Repositories) error {
		debate, err := r.Debates.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		tally, err := r.Debates.TallyReactions(ctx, id)
		if err != nil {
			return err
		}
		if !tally.Matches(debate) {
			drift = &domain.Drift{
				Kind:   domain.KindDebate,
				ID:     id,
				Stored: fmt.Sprintf("agree=%d disagree=%d neutral=%d", debate.AgreeCount, debate.DisagreeCount, debate.NeutralCount),
				Ledger: fmt.Sprintf("agree=%d disagree=%d neutral=%d", tally.Agree, tally.Disagree, tally.Neutral),
			}
		}
		return nil
	})
	return drift, err
}

func (s *auditService) recheckPoll(ctx context.Context, id uuid.UUID) (*domain.Drift, error) {
	var drift *domain.Drift
	err := s.uow.WithinTx(ctx, func(r ports.Repositories) error {
		poll, err := r.Polls.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		votes, err := r.Polls.ListVotes(ctx, id)
		if err != nil {
			return err
		}
		if tally := domain.TallyBallots(votes); !tally.Matches(poll) {
			drift = &domain.Drift{
				Kind:   domain.KindPoll,
				ID:     id,
				Stored: describePoll(poll.TotalVotes, poll.Options, nil),
				Ledger: describePoll(tally.Ballots, poll.Options, tally.Options),
			}
		}
		return nil
	})
	return drift, err
}

func (s *auditService) recheckPetition(ctx context.Context, id uuid.UUID) (*domain.Drift, error) {
	var drift *domain.Drift
	err := s.uow.WithinTx(ctx, func(r ports.Repositories) error {
		petition, err := r.Petitions.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		n, err := r.Petitions.CountSignatures(ctx, id)
		if err != nil {
			return err
		}
		if n != petition.CurrentSignatures {
			drift = &domain.Drift{
				Kind:   domain.KindPetition,
				ID:     id,
				Stored: fmt.Sprintf("signatures=%d", petition.CurrentSignatures),
				Ledger: fmt.Sprintf("signatures=%d", n),
			}
		}
		return nil
	})
	return drift, err
}

// describePoll renders ballots and per-option counts. With counts nil the stored
// option counters are used.
func describePoll(ballots int64, options []domain.PollOption, counts map[string]int64) string {
	parts := []string{fmt.Sprintf("ballots=%d", ballots)}
	for _, opt := range options {
		n := opt.VoteCount
		if counts != nil {
			n = counts[opt.ID]
		}
		parts = append(parts, fmt.Sprintf("%s=%d", opt.ID, n))
	}
	return strings.Join(parts, " ")
}
