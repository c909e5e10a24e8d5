package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"xintern-backend/internal/domain"
	"xintern-backend/internal/repository"
	"xintern-backend/internal/validate"
)

// ReviewService coordinates the review lifecycle: a review owns exactly
// one rating (created right before it, removed with it) and a list of
// comments that assemble into a reply forest on the read path.
type ReviewService interface {
	Create(ctx context.Context, input domain.CreateReviewInput) (uuid.UUID, error)
	GetPopulated(ctx context.Context, id uuid.UUID) (*domain.Review, error)
	Update(ctx context.Context, id uuid.UUID, payload map[string]any) (*domain.Review, error)
	UpdateRating(ctx context.Context, id uuid.UUID, payload map[string]any) error
	Delete(ctx context.Context, id uuid.UUID) error
	Flag(ctx context.Context, id uuid.UUID, flagged bool) error
	ListFlagged(ctx context.Context, params domain.PaginationParams) (domain.Page[domain.Review], error)
	Vote(ctx context.Context, reviewID, userID uuid.UUID, upvote bool) error
}

type reviewService struct {
	reviewRepo  repository.ReviewRepository
	ratingRepo  repository.RatingRepository
	commentRepo repository.CommentRepository
	companyRepo repository.CompanyRepository
	userRepo    repository.UserRepository
	voteRepo    repository.VoteRepository
	threads     *ThreadAssembler
	redis       *redis.Client
}

func NewReviewService(
	repos *repository.Repositories,
	threads *ThreadAssembler,
	redis *redis.Client,
) ReviewService {
	return &reviewService{
		reviewRepo:  repos.Review,
		ratingRepo:  repos.Rating,
		commentRepo: repos.Comment,
		companyRepo: repos.Company,
		userRepo:    repos.User,
		voteRepo:    repos.Vote,
		threads:     threads,
		redis:       redis,
	}
}

func populatedReviewKey(id uuid.UUID) string {
	return fmt.Sprintf("review:%s:populated", id)
}

// Create resolves the referenced user, persists the dependent rating,
// resolves the company by name and persists the review, in that order.
// Each step is a hard precondition for the next; the persisting steps
// run in a saga so a failure after the rating write removes the rating
// instead of leaving it orphaned.
func (s *reviewService) Create(ctx context.Context, input domain.CreateReviewInput) (uuid.UUID, error) {
	user, err := s.userRepo.GetByID(ctx, input.UserID)
	if err != nil {
		return uuid.Nil, err
	}
	if user == nil {
		return uuid.Nil, domain.NotFoundErr("User not found.")
	}

	if err := checkRatingPayload(input.Rating()); err != nil {
		log.Printf("create review: %v", err)
		return uuid.Nil, domain.ValidationErr("payload does not match model.")
	}

	rating := &domain.Rating{
		ID:         uuid.New(),
		Culture:    input.Culture,
		Mentorship: input.Mentorship,
		Impact:     input.Impact,
		Interview:  input.Interview,
	}
	review := &domain.Review{
		ID:       uuid.New(),
		Salary:   input.Salary,
		Content:  input.Content,
		Position: input.Position,
		UserID:   user.ID,
	}
	var company *domain.Company

	create := &saga{name: "review-create", steps: []sagaStep{
		{
			name: "create rating",
			run: func(ctx context.Context) error {
				if err := s.ratingRepo.Create(ctx, rating); err != nil {
					log.Printf("create review: rating write failed: %v", err)
					return domain.CreateFailedErr("Rating could not be created.")
				}
				return nil
			},
			compensate: func(ctx context.Context) error {
				_, err := s.ratingRepo.Delete(ctx, rating.ID)
				return err
			},
		},
		{
			name: "resolve company",
			run: func(ctx context.Context) error {
				found, err := s.companyRepo.ResolveByName(ctx, input.CompanyName)
				if err != nil {
					return err
				}
				if found == nil {
					return domain.NotFoundErr("Could not find Company.")
				}
				company = found
				return nil
			},
		},
		{
			name: "create review",
			run: func(ctx context.Context) error {
				review.RatingID = rating.ID
				review.CompanyID = company.ID
				return s.reviewRepo.Create(ctx, review)
			},
		},
	}}

	if err := create.execute(ctx); err != nil {
		return uuid.Nil, err
	}

	dropCacheKeys(ctx, s.redis, "companies:top")
	return review.ID, nil
}

// GetPopulated returns the review with its rating, company, vote sets
// and the comment list assembled into a reply forest.
func (s *reviewService) GetPopulated(ctx context.Context, id uuid.UUID) (*domain.Review, error) {
	cacheKey := populatedReviewKey(id)
	if s.redis != nil {
		if cached, err := s.redis.Get(ctx, cacheKey).Result(); err == nil {
			var review domain.Review
			if json.Unmarshal([]byte(cached), &review) == nil {
				return &review, nil
			}
		}
	}

	review, err := s.reviewRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if review == nil {
		return nil, domain.NotFoundErr("Review does not exist.")
	}

	review.Rating, err = s.ratingRepo.GetByID(ctx, review.RatingID)
	if err != nil {
		return nil, err
	}
	review.Company, err = s.companyRepo.GetByID(ctx, review.CompanyID)
	if err != nil {
		return nil, err
	}

	votes, err := s.voteRepo.ReviewVotes(ctx, id)
	if err != nil {
		return nil, err
	}
	review.Upvotes, review.Downvotes = votes.Upvotes, votes.Downvotes

	comments, err := s.commentRepo.ListByReview(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.attachCommentVotes(ctx, comments); err != nil {
		return nil, err
	}

	roots, err := s.threads.Assemble(comments)
	if err != nil {
		return nil, err
	}
	review.Comments = roots

	if s.redis != nil {
		if raw, err := json.Marshal(review); err == nil {
			_ = s.redis.Set(ctx, cacheKey, raw, cacheTTL).Err()
		}
	}

	return review, nil
}

func (s *reviewService) attachCommentVotes(ctx context.Context, comments []domain.Comment) error {
	ids := make([]uuid.UUID, len(comments))
	for i := range comments {
		ids[i] = comments[i].ID
	}
	votes, err := s.voteRepo.CommentVotes(ctx, ids)
	if err != nil {
		return err
	}
	for i := range comments {
		sets := votes[comments[i].ID]
		comments[i].Upvotes, comments[i].Downvotes = sets.Upvotes, sets.Downvotes
	}
	return nil
}

// Update mutates the three mutable fields only, after a structural
// payload check.
func (s *reviewService) Update(ctx context.Context, id uuid.UUID, payload map[string]any) (*domain.Review, error) {
	if err := validate.ReviewUpdate.Check(payload); err != nil {
		log.Printf("update review %s: %v", id, err)
		return nil, domain.ValidationErr("payload does not match model.")
	}

	review := &domain.Review{
		ID:       id,
		Salary:   int(payload["salary"].(float64)),
		Content:  payload["content"].(string),
		Position: payload["position"].(string),
	}
	if err := s.reviewRepo.Update(ctx, review); err != nil {
		return nil, err
	}

	dropCacheKeys(ctx, s.redis, populatedReviewKey(id))
	return review, nil
}

func (s *reviewService) UpdateRating(ctx context.Context, id uuid.UUID, payload map[string]any) error {
	if err := validate.Rating.Check(payload); err != nil {
		log.Printf("update rating %s: %v", id, err)
		return domain.ValidationErr("payload does not match model.")
	}

	rating := &domain.Rating{
		ID:         id,
		Culture:    int(payload["culture"].(float64)),
		Mentorship: int(payload["mentorship"].(float64)),
		Impact:     int(payload["impact"].(float64)),
		Interview:  int(payload["interview"].(float64)),
	}
	return s.ratingRepo.Update(ctx, rating)
}

// Delete cascades to the dependent rating and the whole comment list
// before removing the review row. The cascade steps are deliberately
// lenient: a stale rating reference or a failed comment sweep is logged
// and the review is still removed.
func (s *reviewService) Delete(ctx context.Context, id uuid.UUID) error {
	review, err := s.reviewRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if review == nil {
		return domain.NotFoundErr("Review does not exist.")
	}

	if deleted, err := s.ratingRepo.Delete(ctx, review.RatingID); err != nil {
		log.Printf("delete review %s: rating %s not removed: %v", id, review.RatingID, err)
	} else if deleted {
		log.Printf("Rating successfully DELETED: %s", review.RatingID)
	}

	if err := s.commentRepo.DeleteByReview(ctx, id); err != nil {
		log.Printf("delete review %s: comment sweep failed: %v", id, err)
	}

	deleted, err := s.reviewRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.NotFoundErr("Review does not exist.")
	}

	dropCacheKeys(ctx, s.redis, populatedReviewKey(id), "companies:top")
	return nil
}

func (s *reviewService) Flag(ctx context.Context, id uuid.UUID, flagged bool) error {
	if err := s.reviewRepo.SetFlagged(ctx, id, flagged); err != nil {
		return err
	}
	dropCacheKeys(ctx, s.redis, populatedReviewKey(id))
	return nil
}

func (s *reviewService) ListFlagged(ctx context.Context, params domain.PaginationParams) (domain.Page[domain.Review], error) {
	params.Normalize()
	reviews, total, err := s.reviewRepo.ListFlagged(ctx, params)
	if err != nil {
		return domain.Page[domain.Review]{}, err
	}
	return domain.NewPage(reviews, params, total), nil
}

func (s *reviewService) Vote(ctx context.Context, reviewID, userID uuid.UUID, upvote bool) error {
	review, err := s.reviewRepo.GetByID(ctx, reviewID)
	if err != nil {
		return err
	}
	if review == nil {
		return domain.NotFoundErr("Review does not exist.")
	}

	value := -1
	if upvote {
		value = 1
	}
	if err := s.voteRepo.CastReviewVote(ctx, reviewID, userID, value); err != nil {
		return err
	}

	dropCacheKeys(ctx, s.redis, populatedReviewKey(reviewID))
	return nil
}

// checkRatingPayload runs the declarative rating schema against the
// scored fields; missing fields arrive as zero and fail the 1..5 bound.
func checkRatingPayload(in domain.RatingInput) error {
	return validate.Rating.Check(map[string]any{
		"culture":    float64(in.Culture),
		"mentorship": float64(in.Mentorship),
		"impact":     float64(in.Impact),
		"interview":  float64(in.Interview),
	})
}
