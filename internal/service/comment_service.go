package service

import (
	"context"
	"log"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"xintern-backend/internal/domain"
	"xintern-backend/internal/repository"
	"xintern-backend/internal/validate"
)

// CommentService handles the comment sub-lifecycle. Creation keys the
// comment to its owning review; deletion is logical (tombstone), so a
// thread never loses its shape.
type CommentService interface {
	Create(ctx context.Context, reviewID uuid.UUID, authorID uuid.UUID, input domain.CreateCommentInput) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, payload map[string]any) error
	Delete(ctx context.Context, id uuid.UUID) error
	Vote(ctx context.Context, commentID, userID uuid.UUID, upvote bool) error
}

type commentService struct {
	commentRepo repository.CommentRepository
	reviewRepo  repository.ReviewRepository
	voteRepo    repository.VoteRepository
	redis       *redis.Client
}

func NewCommentService(
	commentRepo repository.CommentRepository,
	reviewRepo repository.ReviewRepository,
	voteRepo repository.VoteRepository,
	redis *redis.Client,
) CommentService {
	return &commentService{
		commentRepo: commentRepo,
		reviewRepo:  reviewRepo,
		voteRepo:    voteRepo,
		redis:       redis,
	}
}

func (s *commentService) Create(ctx context.Context, reviewID uuid.UUID, authorID uuid.UUID, input domain.CreateCommentInput) (uuid.UUID, error) {
	if input.Content == "" {
		return uuid.Nil, domain.CreateFailedErr("Comment could not be created.")
	}

	review, err := s.reviewRepo.GetByID(ctx, reviewID)
	if err != nil {
		return uuid.Nil, err
	}
	if review == nil {
		return uuid.Nil, domain.NotFoundErr("Review does not exist.")
	}

	// The tree invariant: a parent must be another comment on the same
	// review's list.
	if input.ParentCommentID != nil {
		parent, err := s.commentRepo.GetByID(ctx, *input.ParentCommentID)
		if err != nil {
			return uuid.Nil, err
		}
		if parent == nil || parent.ReviewID != reviewID {
			return uuid.Nil, domain.ValidationErr("Parent comment does not belong to this review.")
		}
	}

	comment := &domain.Comment{
		ID:       uuid.New(),
		ReviewID: reviewID,
		AuthorID: &authorID,
		ParentID: input.ParentCommentID,
		Content:  input.Content,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		log.Printf("create comment on review %s: %v", reviewID, err)
		return uuid.Nil, domain.CreateFailedErr("Comment could not be created.")
	}

	dropCacheKeys(ctx, s.redis, populatedReviewKey(reviewID))
	return comment.ID, nil
}

func (s *commentService) Update(ctx context.Context, id uuid.UUID, payload map[string]any) error {
	if err := validate.CommentUpdate.Check(payload); err != nil {
		log.Printf("update comment %s: %v", id, err)
		return domain.ValidationErr("payload does not match model.")
	}

	comment, err := s.commentRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if comment == nil {
		return domain.NotFoundErr("Comment does not exist.")
	}

	if err := s.commentRepo.UpdateContent(ctx, id, payload["content"].(string)); err != nil {
		return err
	}

	dropCacheKeys(ctx, s.redis, populatedReviewKey(comment.ReviewID))
	return nil
}

// Delete tombstones: content becomes the removal marker, authorship is
// detached, the identity stays on the review's list.
func (s *commentService) Delete(ctx context.Context, id uuid.UUID) error {
	comment, err := s.commentRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if comment == nil {
		return domain.NotFoundErr("Comment does not exist.")
	}

	if err := s.commentRepo.Tombstone(ctx, id); err != nil {
		return err
	}

	dropCacheKeys(ctx, s.redis, populatedReviewKey(comment.ReviewID))
	return nil
}

func (s *commentService) Vote(ctx context.Context, commentID, userID uuid.UUID, upvote bool) error {
	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return err
	}
	if comment == nil {
		return domain.NotFoundErr("Comment does not exist.")
	}

	value := -1
	if upvote {
		value = 1
	}
	if err := s.voteRepo.CastCommentVote(ctx, commentID, userID, value); err != nil {
		return err
	}

	dropCacheKeys(ctx, s.redis, populatedReviewKey(comment.ReviewID))
	return nil
}
