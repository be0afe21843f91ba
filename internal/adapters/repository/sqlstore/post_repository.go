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

const postColumns = `id, author_id, type, title, body, tags, media_urls, linked_project_id, linked_leader_id,
	linked_department_id, likes, comments, shares, verification_status, created_at, updated_at`

type postRepository struct {
	q querier
	d Dialect
}

func NewPostRepository(db *sql.DB, d Dialect) ports.PostRepository {
	return &postRepository{q: db, d: d}
}

func (r *postRepository) Insert(ctx context.Context, post *domain.Post) error {
	tags, err := encodeJSON(post.Tags)
	if err != nil {
		return err
	}
	mediaURLs, err := encodeJSON(post.MediaURLs)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO posts (` + postColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
	`
	_, err = r.q.ExecContext(ctx, query,
		post.ID, post.AuthorID, post.Type, post.Title, post.Body, tags, mediaURLs,
		post.Links.ProjectID, post.Links.LeaderID, post.Links.DepartmentID,
		post.Likes, post.Comments, post.Shares, post.VerificationStatus,
		post.CreatedAt, post.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert post: %w", err)
	}
	return nil
}

func (r *postRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts WHERE id = $1`

	post, err := scanPost(r.q.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to get post: %w", err)
	}
	return post, nil
}

func (r *postRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*domain.Post, error) {
	posts := make(map[uuid.UUID]*domain.Post, len(ids))
	if len(ids) == 0 {
		return posts, nil
	}

	in, args := inList(ids)
	rows, err := r.q.QueryContext(ctx, `SELECT `+postColumns+` FROM posts WHERE id IN `+in, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get posts: %w", err)
	}
	defer rows.Close()

	list, err := scanPosts(rows)
	if err != nil {
		return nil, err
	}
	for _, post := range list {
		posts[post.ID] = post
	}
	return posts, nil
}

func (r *postRepository) List(ctx context.Context, filter ports.PostFilter) ([]*domain.Post, error) {
	var c conditions
	if filter.Type != "" {
		c.add("type = ?", filter.Type)
	}
	query := `SELECT ` + postColumns + ` FROM posts` + c.where() + ` ORDER BY created_at DESC, id DESC` + c.limit(ports.ClampLimit(filter.Limit))

	rows, err := r.q.QueryContext(ctx, query, c.args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	defer rows.Close()

	return scanPosts(rows)
}

func (r *postRepository) IncrementLikes(ctx context.Context, id uuid.UUID, at time.Time) error {
	query := `UPDATE posts SET likes = likes + 1, updated_at = $1 WHERE id = $2`
	res, err := r.q.ExecContext(ctx, query, at, id)
	if err != nil {
		return fmt.Errorf("failed to like post: %w", err)
	}
	return expectAffected(res, domain.ErrPostNotFound)
}

func scanPost(row rowScanner) (*domain.Post, error) {
	var post domain.Post
	var tags, mediaURLs []byte
	err := row.Scan(
		&post.ID, &post.AuthorID, &post.Type, &post.Title, &post.Body, &tags, &mediaURLs,
		&post.Links.ProjectID, &post.Links.LeaderID, &post.Links.DepartmentID,
		&post.Likes, &post.Comments, &post.Shares, &post.VerificationStatus,
		&post.CreatedAt, &post.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := decodeJSON(tags, &post.Tags); err != nil {
		return nil, err
	}
	if err := decodeJSON(mediaURLs, &post.MediaURLs); err != nil {
		return nil, err
	}
	if post.Tags == nil {
		post.Tags = []string{}
	}
	if post.MediaURLs == nil {
		post.MediaURLs = []string{}
	}
	return &post, nil
}

func scanPosts(rows *sql.Rows) ([]*domain.Post, error) {
	posts := []*domain.Post{}
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}
		posts = append(posts, post)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating posts: %w", err)
	}
	return posts, nil
}

// expectAffected maps an UPDATE that matched no row to notFound.
func expectAffected(res sql.Result, notFound error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return notFound
	}
	return nil
}
