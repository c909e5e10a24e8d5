package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"xintern-backend/internal/domain"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *domain.Review) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Review, error)
	Update(ctx context.Context, review *domain.Review) error
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
	SetFlagged(ctx context.Context, id uuid.UUID, flagged bool) error
	ListFlagged(ctx context.Context, params domain.PaginationParams) ([]domain.Review, int64, error)
}

type reviewRepository struct {
	db *sqlx.DB
}

func NewReviewRepository(db *sqlx.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) Create(ctx context.Context, review *domain.Review) error {
	query := `
		INSERT INTO reviews (review_id, salary, content, position, rating_id, user_id, company_id, flagged)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at, updated_at`

	return r.db.QueryRowxContext(ctx, query,
		review.ID, review.Salary, review.Content, review.Position,
		review.RatingID, review.UserID, review.CompanyID, review.Flagged,
	).Scan(&review.CreatedAt, &review.UpdatedAt)
}

func (r *reviewRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Review, error) {
	var review domain.Review
	query := `SELECT * FROM reviews WHERE review_id = $1`

	err := r.db.GetContext(ctx, &review, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &review, nil
}

// Update persists the three mutable fields only.
func (r *reviewRepository) Update(ctx context.Context, review *domain.Review) error {
	query := `
		UPDATE reviews
		SET salary = $2, content = $3, position = $4, updated_at = NOW()
		WHERE review_id = $1
		RETURNING company_id, rating_id, updated_at`

	err := r.db.QueryRowxContext(ctx, query,
		review.ID, review.Salary, review.Content, review.Position,
	).Scan(&review.CompanyID, &review.RatingID, &review.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.NotFoundErr("Review does not exist.")
	}
	return err
}

func (r *reviewRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM reviews WHERE review_id = $1`, id)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (r *reviewRepository) SetFlagged(ctx context.Context, id uuid.UUID, flagged bool) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE reviews SET flagged = $2, updated_at = NOW() WHERE review_id = $1`, id, flagged)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.NotFoundErr("Review does not exist.")
	}
	return nil
}

func (r *reviewRepository) ListFlagged(ctx context.Context, params domain.PaginationParams) ([]domain.Review, int64, error) {
	params.Normalize()

	var total int64
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM reviews WHERE flagged`); err != nil {
		return nil, 0, err
	}

	var reviews []domain.Review
	query := `
		SELECT * FROM reviews
		WHERE flagged
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`
	err := r.db.SelectContext(ctx, &reviews, query, params.PageSize, params.Offset())
	return reviews, total, err
}
