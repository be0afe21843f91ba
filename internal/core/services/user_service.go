package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/manifesto/internal/core/domain"
	"github.com/vncsmyrnk/manifesto/internal/core/ports"
)

// userNamespace derives stable ids for imported users that do not carry one.
var userNamespace = uuid.MustParse("6f1c7a52-3b8e-4d57-9a51-2f0e6c9d8b14")

type userService struct {
	uow ports.UnitOfWork
	options
}

func NewUserService(uow ports.UnitOfWork, opts ...Option) ports.UserService {
	return &userService{
		uow:     uow,
		options: newOptions(opts),
	}
}

func (s *userService) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	user, err := s.uow.Repositories().Users.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

// Import upserts users in one transaction. Users without an id get one derived
// from their email, so importing the same file twice is harmless.
func (s *userService) Import(ctx context.Context, users []*domain.User) (int, error) {
	for _, u := range users {
		u.Email = strings.TrimSpace(strings.ToLower(u.Email))
		if u.Email == "" || strings.TrimSpace(u.Name) == "" {
			return 0, domain.Invalid("user needs an email and a name")
		}
		if u.ID == uuid.Nil {
			u.ID = uuid.NewSHA1(userNamespace, []byte(u.Email))
		}
		if u.CreatedAt.IsZero() {
			u.CreatedAt = s.now()
		}
	}

	err := s.uow.WithinTx(ctx, func(r ports.Repositories) error {
		for _, u := range users {
			if err := r.Users.Upsert(ctx, u); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return len(users), nil
}
