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

// Options live as JSON on the poll row so one row read is a consistent snapshot
// of every counter.
const pollColumns = `id, post_id, author_id, title, description, options, total_votes,
	is_multiple_choice, end_date, linked_project_id, linked_leader_id, is_active, created_at, updated_at`

type pollRepository struct {
	q querier
	d Dialect
}

func NewPollRepository(db *sql.DB, d Dialect) ports.PollRepository {
	return &pollRepository{q: db, d: d}
}

func (r *pollRepository) Insert(ctx context.Context, poll *domain.Poll) error {
	options, err := encodeJSON(poll.Options)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO polls (` + pollColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`
	_, err = r.q.ExecContext(ctx, query,
		poll.ID, poll.PostID, poll.AuthorID, poll.Title, poll.Description, options,
		poll.TotalVotes, poll.IsMultipleChoice, poll.EndDate, poll.Links.ProjectID,
		poll.Links.LeaderID, poll.IsActive, poll.CreatedAt, poll.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert poll: %w", err)
	}
	return nil
}

func (r *pollRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Poll, error) {
	return r.get(ctx, `SELECT `+pollColumns+` FROM polls WHERE id = $1`, id)
}

func (r *pollRepository) GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Poll, error) {
	return r.get(ctx, r.d.locking(`SELECT `+pollColumns+` FROM polls WHERE id = $1`), id)
}

func (r *pollRepository) get(ctx context.Context, query string, id uuid.UUID) (*domain.Poll, error) {
	poll, err := scanPoll(r.q.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPollNotFound
		}
		return nil, fmt.Errorf("failed to get poll: %w", err)
	}
	return poll, nil
}

func (r *pollRepository) List(ctx context.Context, filter ports.PollFilter) ([]*domain.Poll, error) {
	var c conditions
	if filter.ProjectID != nil {
		c.add("linked_project_id = ?", *filter.ProjectID)
	}
	if filter.ActiveOnly {
		c.add("is_active = ?", true)
		c.add("(end_date IS NULL OR end_date > ?)", filter.Now)
	}
	query := `SELECT ` + pollColumns + ` FROM polls` + c.where() + ` ORDER BY created_at DESC, id DESC` + c.limit(ports.ClampLimit(filter.Limit))

	return r.query(ctx, query, c.args...)
}

func (r *pollRepository) GetAll(ctx context.Context) ([]*domain.Poll, error) {
	return r.query(ctx, `SELECT `+pollColumns+` FROM polls ORDER BY created_at`)
}

func (r *pollRepository) query(ctx context.Context, query string, args ...any) ([]*domain.Poll, error) {
	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list polls: %w", err)
	}
	defer rows.Close()

	polls := []*domain.Poll{}
	for rows.Next() {
		poll, err := scanPoll(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan poll: %w", err)
		}
		polls = append(polls, poll)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating polls: %w", err)
	}
	return polls, nil
}

func (r *pollRepository) UpdateTally(ctx context.Context, poll *domain.Poll) error {
	options, err := encodeJSON(poll.Options)
	if err != nil {
		return err
	}

	query := `UPDATE polls SET options = $1, total_votes = $2, updated_at = $3 WHERE id = $4`
	res, err := r.q.ExecContext(ctx, query, options, poll.TotalVotes, poll.UpdatedAt, poll.ID)
	if err != nil {
		return fmt.Errorf("failed to update poll tally: %w", err)
	}
	return expectAffected(res, domain.ErrPollNotFound)
}

func (r *pollRepository) SetActive(ctx context.Context, id uuid.UUID, active bool, at time.Time) error {
	res, err := r.q.ExecContext(ctx, `UPDATE polls SET is_active = $1, updated_at = $2 WHERE id = $3`, active, at, id)
	if err != nil {
		return fmt.Errorf("failed to update poll state: %w", err)
	}
	return expectAffected(res, domain.ErrPollNotFound)
}

func (r *pollRepository) GetVote(ctx context.Context, pollID, userID uuid.UUID) (*domain.PollVote, error) {
	query := `SELECT poll_id, user_id, option_ids, created_at FROM poll_votes WHERE poll_id = $1 AND user_id = $2`

	vote, err := scanVote(r.q.QueryRowContext(ctx, query, pollID, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to check existing vote: %w", err)
	}
	return vote, nil
}

func (r *pollRepository) InsertVote(ctx context.Context, vote *domain.PollVote) error {
	optionIDs, err := encodeJSON(vote.OptionIDs)
	if err != nil {
		return err
	}

	query := `INSERT INTO poll_votes (poll_id, user_id, option_ids, created_at) VALUES ($1, $2, $3, $4)`
	_, err = r.q.ExecContext(ctx, query, vote.PollID, vote.UserID, optionIDs, vote.CreatedAt)
	if err != nil {
		if r.d.uniqueViolation(err) {
			return domain.ErrAlreadyVoted
		}
		return fmt.Errorf("failed to save vote: %w", err)
	}
	return nil
}

func (r *pollRepository) ListVotes(ctx context.Context, pollID uuid.UUID) ([]*domain.PollVote, error) {
	query := `SELECT poll_id, user_id, option_ids, created_at FROM poll_votes WHERE poll_id = $1`
	rows, err := r.q.QueryContext(ctx, query, pollID)
	if err != nil {
		return nil, fmt.Errorf("failed to list votes: %w", err)
	}
	defer rows.Close()

	var votes []*domain.PollVote
	for rows.Next() {
		vote, err := scanVote(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan vote: %w", err)
		}
		votes = append(votes, vote)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating votes: %w", err)
	}
	return votes, nil
}

func scanPoll(row rowScanner) (*domain.Poll, error) {
	var p domain.Poll
	var options []byte
	err := row.Scan(
		&p.ID, &p.PostID, &p.AuthorID, &p.Title, &p.Description, &options, &p.TotalVotes,
		&p.IsMultipleChoice, &p.EndDate, &p.Links.ProjectID, &p.Links.LeaderID, &p.IsActive,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := decodeJSON(options, &p.Options); err != nil {
		return nil, err
	}
	return &p, nil
}

func scanVote(row rowScanner) (*domain.PollVote, error) {
	var v domain.PollVote
	var optionIDs []byte
	if err := row.Scan(&v.PollID, &v.UserID, &optionIDs, &v.CreatedAt); err != nil {
		return nil, err
	}
	if err := decodeJSON(optionIDs, &v.OptionIDs); err != nil {
		return nil, err
	}
	return &v, nil
}
