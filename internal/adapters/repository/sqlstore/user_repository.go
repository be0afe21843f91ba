package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/manifesto/internal/core/domain"
	"github.com/vncsmyrnk/manifesto/internal/core/ports"
)

type userRepository struct {
	q querier
	d Dialect
}

func NewUserRepository(db *sql.DB, d Dialect) ports.UserRepository {
	return &userRepository{q: db, d: d}
}

func (r *userRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	query := `SELECT id, email, name, avatar_url, created_at FROM users WHERE id = $1`
	user := &domain.User{}
	err := r.q.QueryRowContext(ctx, query, id).Scan(&user.ID, &user.Email, &user.Name, &user.AvatarURL, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

func (r *userRepository) Upsert(ctx context.Context, user *domain.User) error {
	query := `
		INSERT INTO users (id, email, name, avatar_url, created_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE
		SET email = excluded.email, name = excluded.name, avatar_url = excluded.avatar_url
	`
	_, err := r.q.ExecContext(ctx, query, user.ID, user.Email, user.Name, user.AvatarURL, user.CreatedAt)
	if err != nil {
		// The id conflict is handled above, so this can only be the email.
		if r.d.uniqueViolation(err) {
			return domain.Invalid("email %s already belongs to another user", user.Email)
		}
		return fmt.Errorf("failed to upsert user: %w", err)
	}
	return nil
}

func (r *userRepository) Summaries(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]domain.AuthorSummary, error) {
	summaries := make(map[uuid.UUID]domain.AuthorSummary, len(ids))
	if len(ids) == 0 {
		return summaries, nil
	}

	in, args := inList(ids)
	rows, err := r.q.QueryContext(ctx, `SELECT id, name, avatar_url FROM users WHERE id IN `+in, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get authors: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var s domain.AuthorSummary
		if err := rows.Scan(&s.ID, &s.Name, &s.AvatarURL); err != nil {
			return nil, fmt.Errorf("failed to scan author: %w", err)
		}
		summaries[s.ID] = s
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating authors: %w", err)
	}
	return summaries, nil
}
