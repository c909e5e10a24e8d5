package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// VoteSets are the upvote/downvote user-identity sets of one entity.
type VoteSets struct {
	Upvotes   []uuid.UUID
	Downvotes []uuid.UUID
}

type VoteRepository interface {
	CastReviewVote(ctx context.Context, reviewID, userID uuid.UUID, value int) error
	CastCommentVote(ctx context.Context, commentID, userID uuid.UUID, value int) error
	ReviewVotes(ctx context.Context, reviewID uuid.UUID) (VoteSets, error)
	CommentVotes(ctx context.Context, commentIDs []uuid.UUID) (map[uuid.UUID]VoteSets, error)
}

type voteRepository struct {
	db *sqlx.DB
}

func NewVoteRepository(db *sqlx.DB) VoteRepository {
	return &voteRepository{db: db}
}

// One vote per user per entity; re-voting flips the direction.
func (r *voteRepository) CastReviewVote(ctx context.Context, reviewID, userID uuid.UUID, value int) error {
	query := `
		INSERT INTO review_votes (review_id, user_id, value)
		VALUES ($1, $2, $3)
		ON CONFLICT (review_id, user_id) DO UPDATE SET value = EXCLUDED.value`
	_, err := r.db.ExecContext(ctx, query, reviewID, userID, value)
	return err
}

func (r *voteRepository) CastCommentVote(ctx context.Context, commentID, userID uuid.UUID, value int) error {
	query := `
		INSERT INTO comment_votes (comment_id, user_id, value)
		VALUES ($1, $2, $3)
		ON CONFLICT (comment_id, user_id) DO UPDATE SET value = EXCLUDED.value`
	_, err := r.db.ExecContext(ctx, query, commentID, userID, value)
	return err
}

func (r *voteRepository) ReviewVotes(ctx context.Context, reviewID uuid.UUID) (VoteSets, error) {
	rows, err := r.db.QueryxContext(ctx,
		`SELECT user_id, value FROM review_votes WHERE review_id = $1 ORDER BY created_at`, reviewID)
	if err != nil {
		return VoteSets{}, err
	}
	defer rows.Close()

	sets := VoteSets{Upvotes: []uuid.UUID{}, Downvotes: []uuid.UUID{}}
	for rows.Next() {
		var userID uuid.UUID
		var value int
		if err := rows.Scan(&userID, &value); err != nil {
			return VoteSets{}, err
		}
		if value > 0 {
			sets.Upvotes = append(sets.Upvotes, userID)
		} else {
			sets.Downvotes = append(sets.Downvotes, userID)
		}
	}
	return sets, rows.Err()
}

func (r *voteRepository) CommentVotes(ctx context.Context, commentIDs []uuid.UUID) (map[uuid.UUID]VoteSets, error) {
	byComment := make(map[uuid.UUID]VoteSets, len(commentIDs))
	if len(commentIDs) == 0 {
		return byComment, nil
	}

	ids := make([]string, len(commentIDs))
	for i, id := range commentIDs {
		ids[i] = id.String()
	}

	rows, err := r.db.QueryxContext(ctx,
		`SELECT comment_id, user_id, value FROM comment_votes
		 WHERE comment_id = ANY($1) ORDER BY created_at`, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var commentID, userID uuid.UUID
		var value int
		if err := rows.Scan(&commentID, &userID, &value); err != nil {
			return nil, err
		}
		sets := byComment[commentID]
		if value > 0 {
			sets.Upvotes = append(sets.Upvotes, userID)
		} else {
			sets.Downvotes = append(sets.Downvotes, userID)
		}
		byComment[commentID] = sets
	}
	return byComment, rows.Err()
}
