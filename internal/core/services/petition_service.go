package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/manifesto/internal/core/domain"
	"github.com/vncsmyrnk/manifesto/internal/core/ports"
	"go.uber.org/zap"
)

type petitionService struct {
	uow ports.UnitOfWork
	enricher
	options
}

func NewPetitionService(uow ports.UnitOfWork, authors ports.AuthorDirectory, opts ...Option) ports.PetitionService {
	return &petitionService{
		uow:      uow,
		enricher: newEnricher(uow, authors),
		options:  newOptions(opts),
	}
}

// Sign adds one signature. A signature arriving after the deadline moves the
// petition to expired; that transition is committed and the signature rejected.
func (s *petitionService) Sign(ctx context.Context, input ports.SignInput) (*domain.SignResult, error) {
	var (
		result    *domain.SignResult
		rejection error
	)

	err := s.uow.WithinTx(ctx, func(r ports.Repositories) error {
		petition, err := r.Petitions.GetForUpdate(ctx, input.PetitionID)
		if err != nil {
			return err
		}

		signed, err := r.Petitions.HasSigned(ctx, petition.ID, input.UserID)
		if err != nil {
			return err
		}
		if signed {
			return domain.ErrAlreadySigned
		}

		now := s.now()
		if err := petition.Sign(now); err != nil {
			if !errors.Is(err, domain.ErrPetitionExpired) {
				return err
			}
			if err := r.Petitions.UpdateProgress(ctx, petition); err != nil {
				return err
			}
			s.log.Info("petition expired", zap.Stringer("petition_id", petition.ID))
			rejection = err
			return nil
		}

		err = r.Petitions.InsertSignature(ctx, &domain.PetitionSignature{
			PetitionID: petition.ID,
			UserID:     input.UserID,
			SignedAt:   now,
		})
		if err != nil {
			return err
		}
		if err := r.Petitions.UpdateProgress(ctx, petition); err != nil {
			return err
		}

		if petition.Status == domain.PetitionSuccessful {
			s.log.Info("petition reached goal",
				zap.Stringer("petition_id", petition.ID),
				zap.Int64("signatures", petition.CurrentSignatures),
			)
		}
		result = &domain.SignResult{CurrentSignatures: petition.CurrentSignatures, Status: petition.Status}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if rejection != nil {
		return nil, rejection
	}

	return result, nil
}

func (s *petitionService) Get(ctx context.Context, id uuid.UUID) (*domain.PetitionView, error) {
	petition, err := s.uow.Repositories().Petitions.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return enrichOne(ctx, s.enricher, petition, petitionPostID, petitionAuthorID)
}

func (s *petitionService) List(ctx context.Context, filter ports.PetitionFilter) ([]*domain.PetitionView, error) {
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, domain.Invalid("unknown petition status %q", filter.Status)
	}

	petitions, err := s.uow.Repositories().Petitions.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return enrich(ctx, s.enricher, petitions, petitionPostID, petitionAuthorID)
}

func (s *petitionService) Complete(ctx context.Context, id uuid.UUID) error {
	return s.uow.WithinTx(ctx, func(r ports.Repositories) error {
		petition, err := r.Petitions.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if petition.Status == domain.PetitionCompleted {
			return nil
		}
		if err := petition.Complete(s.now()); err != nil {
			return err
		}
		if err := r.Petitions.UpdateProgress(ctx, petition); err != nil {
			return err
		}
		s.log.Info("petition completed", zap.Stringer("petition_id", id))
		return nil
	})
}

func petitionPostID(p *domain.Petition) uuid.UUID   { return p.PostID }
func petitionAuthorID(p *domain.Petition) uuid.UUID { return p.AuthorID }
