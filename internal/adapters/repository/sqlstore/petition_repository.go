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

const petitionColumns = `id, post_id, author_id, title, description, goal, current_signatures,
	target_deadline, status, linked_project_id, linked_leader_id, created_at, updated_at`

type petitionRepository struct {
	q querier
	d Dialect
}

func NewPetitionRepository(db *sql.DB, d Dialect) ports.PetitionRepository {
	return &petitionRepository{q: db, d: d}
}

func (r *petitionRepository) Insert(ctx context.Context, petition *domain.Petition) error {
	query := `
		INSERT INTO petitions (` + petitionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`
	_, err := r.q.ExecContext(ctx, query,
		petition.ID, petition.PostID, petition.AuthorID, petition.Title, petition.Description,
		petition.Goal, petition.CurrentSignatures, petition.TargetDeadline, petition.Status,
		petition.Links.ProjectID, petition.Links.LeaderID, petition.CreatedAt, petition.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert petition: %w", err)
	}
	return nil
}

func (r *petitionRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Petition, error) {
	return r.get(ctx, `SELECT `+petitionColumns+` FROM petitions WHERE id = $1`, id)
}

func (r *petitionRepository) GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Petition, error) {
	return r.get(ctx, r.d.locking(`SELECT `+petitionColumns+` FROM petitions WHERE id = $1`), id)
}

func (r *petitionRepository) get(ctx context.Context, query string, id uuid.UUID) (*domain.Petition, error) {
	petition, err := scanPetition(r.q.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPetitionNotFound
		}
		return nil, fmt.Errorf("failed to get petition: %w", err)
	}
	return petition, nil
}

func (r *petitionRepository) List(ctx context.Context, filter ports.PetitionFilter) ([]*domain.Petition, error) {
	var c conditions
	if filter.Status != "" {
		c.add("status = ?", filter.Status)
	}
	if filter.ProjectID != nil {
		c.add("linked_project_id = ?", *filter.ProjectID)
	}
	query := `SELECT ` + petitionColumns + ` FROM petitions` + c.where() + ` ORDER BY created_at DESC, id DESC` + c.limit(ports.ClampLimit(filter.Limit))

	return r.query(ctx, query, c.args...)
}

func (r *petitionRepository) GetAll(ctx context.Context) ([]*domain.Petition, error) {
	return r.query(ctx, `SELECT `+petitionColumns+` FROM petitions ORDER BY created_at`)
}

func (r *petitionRepository) query(ctx context.Context, query string, args ...any) ([]*domain.Petition, error) {
	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list petitions: %w", err)
	}
	defer rows.Close()

	petitions := []*domain.Petition{}
	for rows.Next() {
		petition, err := scanPetition(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan petition: %w", err)
		}
		petitions = append(petitions, petition)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating petitions: %w", err)
	}
	return petitions, nil
}

func (r *petitionRepository) UpdateProgress(ctx context.Context, petition *domain.Petition) error {
	query := `UPDATE petitions SET current_signatures = $1, status = $2, updated_at = $3 WHERE id = $4`
	res, err := r.q.ExecContext(ctx, query, petition.CurrentSignatures, petition.Status, petition.UpdatedAt, petition.ID)
	if err != nil {
		return fmt.Errorf("failed to update petition: %w", err)
	}
	return expectAffected(res, domain.ErrPetitionNotFound)
}

func (r *petitionRepository) HasSigned(ctx context.Context, petitionID, userID uuid.UUID) (bool, error) {
	query := `SELECT 1 FROM petition_signatures WHERE petition_id = $1 AND user_id = $2`
	var exists int
	err := r.q.QueryRowContext(ctx, query, petitionID, userID).Scan(&exists)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check existing signature: %w", err)
	}
	return true, nil
}

func (r *petitionRepository) InsertSignature(ctx context.Context, signature *domain.PetitionSignature) error {
	query := `INSERT INTO petition_signatures (petition_id, user_id, signed_at) VALUES ($1, $2, $3)`
	_, err := r.q.ExecContext(ctx, query, signature.PetitionID, signature.UserID, signature.SignedAt)
	if err != nil {
		if r.d.uniqueViolation(err) {
			return domain.ErrAlreadySigned
		}
		return fmt.Errorf("failed to save signature: %w", err)
	}
	return nil
}

func (r *petitionRepository) CountSignatures(ctx context.Context, petitionID uuid.UUID) (int64, error) {
	var n int64
	err := r.q.QueryRowContext(ctx, `SELECT COUNT(*) FROM petition_signatures WHERE petition_id = $1`, petitionID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count signatures: %w", err)
	}
	return n, nil
}

func scanPetition(row rowScanner) (*domain.Petition, error) {
	var p domain.Petition
	err := row.Scan(
		&p.ID, &p.PostID, &p.AuthorID, &p.Title, &p.Description, &p.Goal, &p.CurrentSignatures,
		&p.TargetDeadline, &p.Status, &p.Links.ProjectID, &p.Links.LeaderID, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
