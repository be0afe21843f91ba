package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/manifesto/internal/core/domain"
	"github.com/vncsmyrnk/manifesto/internal/core/ports"
)

const debateColumns = `id, post_id, author_id, title, description, topic, topic_key, agree_count,
	disagree_count, neutral_count, comment_count, linked_project_id, linked_policy_id, is_archived,
	created_at, updated_at`

type debateRepository struct {
	q querier
	d Dialect
}

func NewDebateRepository(db *sql.DB, d Dialect) ports.DebateRepository {
	return &debateRepository{q: db, d: d}
}

func (r *debateRepository) Insert(ctx context.Context, debate *domain.Debate) error {
	query := `
		INSERT INTO debates (` + debateColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
	`
	_, err := r.q.ExecContext(ctx, query,
		debate.ID, debate.PostID, debate.AuthorID, debate.Title, debate.Description,
		debate.Topic, debate.TopicKey, debate.AgreeCount, debate.DisagreeCount,
		debate.NeutralCount, debate.CommentCount, debate.Links.ProjectID, debate.Links.PolicyID,
		debate.IsArchived, debate.CreatedAt, debate.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert debate: %w", err)
	}
	return nil
}

func (r *debateRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Debate, error) {
	return r.get(ctx, `SELECT `+debateColumns+` FROM debates WHERE id = $1`, id)
}

func (r *debateRepository) GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Debate, error) {
	return r.get(ctx, r.d.locking(`SELECT `+debateColumns+` FROM debates WHERE id = $1`), id)
}

func (r *debateRepository) get(ctx context.Context, query string, id uuid.UUID) (*domain.Debate, error) {
	debate, err := scanDebate(r.q.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrDebateNotFound
		}
		return nil, fmt.Errorf("failed to get debate: %w", err)
	}
	return debate, nil
}

func (r *debateRepository) List(ctx context.Context, filter ports.DebateFilter) ([]*domain.Debate, error) {
	var c conditions
	c.add("is_archived = ?", false)
	if filter.TopicKey != "" {
		c.add("topic_key = ?", filter.TopicKey)
	}
	if filter.ProjectID != nil {
		c.add("linked_project_id = ?", *filter.ProjectID)
	}
	query := `SELECT ` + debateColumns + ` FROM debates` + c.where() + ` ORDER BY created_at DESC, id DESC` + c.limit(ports.ClampLimit(filter.Limit))

	return r.query(ctx, query, c.args...)
}

func (r *debateRepository) GetAll(ctx context.Context) ([]*domain.Debate, error) {
	return r.query(ctx, `SELECT `+debateColumns+` FROM debates ORDER BY created_at`)
}

func (r *debateRepository) query(ctx context.Context, query string, args ...any) ([]*domain.Debate, error) {
	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list debates: %w", err)
	}
	defer rows.Close()

	debates := []*domain.Debate{}
	for rows.Next() {
		debate, err := scanDebate(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan debate: %w", err)
		}
		debates = append(debates, debate)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating debates: %w", err)
	}
	return debates, nil
}

func (r *debateRepository) UpdateCounters(ctx context.Context, debate *domain.Debate) error {
	query := `
		UPDATE debates
		SET agree_count = $1, disagree_count = $2, neutral_count = $3, updated_at = $4
		WHERE id = $5
	`
	res, err := r.q.ExecContext(ctx, query, debate.AgreeCount, debate.DisagreeCount, debate.NeutralCount, debate.UpdatedAt, debate.ID)
	if err != nil {
		return fmt.Errorf("failed to update debate counters: %w", err)
	}
	return expectAffected(res, domain.ErrDebateNotFound)
}

func (r *debateRepository) SetArchived(ctx context.Context, id uuid.UUID, archived bool, at time.Time) error {
	res, err := r.q.ExecContext(ctx, `UPDATE debates SET is_archived = $1, updated_at = $2 WHERE id = $3`, archived, at, id)
	if err != nil {
		return fmt.Errorf("failed to archive debate: %w", err)
	}
	return expectAffected(res, domain.ErrDebateNotFound)
}

func (r *debateRepository) GetReaction(ctx context.Context, debateID, userID uuid.UUID) (*domain.DebateReaction, error) {
	query := `
		SELECT debate_id, user_id, reaction, created_at, updated_at
		FROM debate_reactions
		WHERE debate_id = $1 AND user_id = $2
	`
	var reaction domain.DebateReaction
	err := r.q.QueryRowContext(ctx, query, debateID, userID).Scan(
		&reaction.DebateID, &reaction.UserID, &reaction.Reaction, &reaction.CreatedAt, &reaction.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get reaction: %w", err)
	}
	return &reaction, nil
}

func (r *debateRepository) InsertReaction(ctx context.Context, reaction *domain.DebateReaction) error {
	query := `
		INSERT INTO debate_reactions (debate_id, user_id, reaction, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.q.ExecContext(ctx, query, reaction.DebateID, reaction.UserID, reaction.Reaction, reaction.CreatedAt, reaction.UpdatedAt)
	if err != nil {
		if r.d.uniqueViolation(err) {
			return domain.ErrAlreadyReacted
		}
		return fmt.Errorf("failed to insert reaction: %w", err)
	}
	return nil
}

func (r *debateRepository) UpdateReaction(ctx context.Context, reaction *domain.DebateReaction) error {
	query := `UPDATE debate_reactions SET reaction = $1, updated_at = $2 WHERE debate_id = $3 AND user_id = $4`
	_, err := r.q.ExecContext(ctx, query, reaction.Reaction, reaction.UpdatedAt, reaction.DebateID, reaction.UserID)
	if err != nil {
		return fmt.Errorf("failed to update reaction: %w", err)
	}
	return nil
}

func (r *debateRepository) TallyReactions(ctx context.Context, debateID uuid.UUID) (domain.ReactionTally, error) {
	var tally domain.ReactionTally

	rows, err := r.q.QueryContext(ctx, `SELECT reaction, COUNT(*) FROM debate_reactions WHERE debate_id = $1 GROUP BY reaction`, debateID)
	if err != nil {
		return tally, fmt.Errorf("failed to tally reactions: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var reaction domain.Reaction
		var count int64
		if err := rows.Scan(&reaction, &count); err != nil {
			return tally, fmt.Errorf("failed to scan tally: %w", err)
		}
		switch reaction {
		case domain.ReactionAgree:
			tally.Agree = count
		case domain.ReactionDisagree:
			tally.Disagree = count
		case domain.ReactionNeutral:
			tally.Neutral = count
		}
	}
	if err := rows.Err(); err != nil {
		return tally, fmt.Errorf("error iterating tally: %w", err)
	}
	return tally, nil
}

func scanDebate(row rowScanner) (*domain.Debate, error) {
	var d domain.Debate
	err := row.Scan(
		&d.ID, &d.PostID, &d.AuthorID, &d.Title, &d.Description, &d.Topic, &d.TopicKey,
		&d.AgreeCount, &d.DisagreeCount, &d.NeutralCount, &d.CommentCount,
		&d.Links.ProjectID, &d.Links.PolicyID, &d.IsArchived, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
