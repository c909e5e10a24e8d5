package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"xintern-backend/internal/domain"
)

type RatingRepository interface {
	Create(ctx context.Context, rating *domain.Rating) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Rating, error)
	Update(ctx context.Context, rating *domain.Rating) error
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

type ratingRepository struct {
	db *sqlx.DB
}

func NewRatingRepository(db *sqlx.DB) RatingRepository {
	return &ratingRepository{db: db}
}

func (r *ratingRepository) Create(ctx context.Context, rating *domain.Rating) error {
	query := `
		INSERT INTO ratings (rating_id, culture, mentorship, impact, interview)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at`

	return r.db.QueryRowxContext(ctx, query,
		rating.ID, rating.Culture, rating.Mentorship, rating.Impact, rating.Interview,
	).Scan(&rating.CreatedAt, &rating.UpdatedAt)
}

func (r *ratingRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Rating, error) {
	var rating domain.Rating
	query := `SELECT * FROM ratings WHERE rating_id = $1`

	err := r.db.GetContext(ctx, &rating, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rating, nil
}

func (r *ratingRepository) Update(ctx context.Context, rating *domain.Rating) error {
	query := `
		UPDATE ratings
		SET culture = $2, mentorship = $3, impact = $4, interview = $5, updated_at = NOW()
		WHERE rating_id = $1
		RETURNING updated_at`

	err := r.db.QueryRowxContext(ctx, query,
		rating.ID, rating.Culture, rating.Mentorship, rating.Impact, rating.Interview,
	).Scan(&rating.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.NotFoundErr("Rating does not exist.")
	}
	return err
}

func (r *ratingRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM ratings WHERE rating_id = $1`, id)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}
