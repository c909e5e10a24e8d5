package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"xintern-backend/internal/domain"
)

type CommentRepository interface {
	Create(ctx context.Context, comment *domain.Comment) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Comment, error)
	UpdateContent(ctx context.Context, id uuid.UUID, content string) error
	Tombstone(ctx context.Context, id uuid.UUID) error
	DeleteByReview(ctx context.Context, reviewID uuid.UUID) error
	ListByReview(ctx context.Context, reviewID uuid.UUID) ([]domain.Comment, error)
}

type commentRepository struct {
	db *sqlx.DB
}

func NewCommentRepository(db *sqlx.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(ctx context.Context, comment *domain.Comment) error {
	query := `
		INSERT INTO comments (comment_id, review_id, author_id, parent_id, content)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at`

	return r.db.QueryRowxContext(ctx, query,
		comment.ID, comment.ReviewID, comment.AuthorID, comment.ParentID, comment.Content,
	).Scan(&comment.CreatedAt, &comment.UpdatedAt)
}

func (r *commentRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Comment, error) {
	var comment domain.Comment
	query := `SELECT comment_id, review_id, author_id, parent_id, content, created_at, updated_at
		FROM comments WHERE comment_id = $1`

	err := r.db.GetContext(ctx, &comment, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

func (r *commentRepository) UpdateContent(ctx context.Context, id uuid.UUID, content string) error {
	query := `UPDATE comments SET content = $2, updated_at = NOW() WHERE comment_id = $1`
	result, err := r.db.ExecContext(ctx, query, id, content)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.NotFoundErr("Comment does not exist.")
	}
	return nil
}

// Tombstone detaches authorship and swaps the content for the removal
// marker. The row stays so the thread keeps its shape.
func (r *commentRepository) Tombstone(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE comments
		SET author_id = NULL, content = $2, updated_at = NOW()
		WHERE comment_id = $1`
	result, err := r.db.ExecContext(ctx, query, id, domain.TombstoneContent)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.NotFoundErr("Comment does not exist.")
	}
	return nil
}

// DeleteByReview physically removes a review's whole comment list. Used
// only by the review delete cascade.
func (r *commentRepository) DeleteByReview(ctx context.Context, reviewID uuid.UUID) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM comments WHERE review_id = $1`, reviewID)
	return err
}

// ListByReview returns the flat comment list in insertion order.
func (r *commentRepository) ListByReview(ctx context.Context, reviewID uuid.UUID) ([]domain.Comment, error) {
	var comments []domain.Comment
	query := `
		SELECT comment_id, review_id, author_id, parent_id, content, created_at, updated_at
		FROM comments
		WHERE review_id = $1
		ORDER BY seq`

	err := r.db.SelectContext(ctx, &comments, query, reviewID)
	return comments, err
}
