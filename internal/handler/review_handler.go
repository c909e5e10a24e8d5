package handler

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"xintern-backend/internal/domain"
	"xintern-backend/internal/middleware"
	"xintern-backend/internal/service"
)

type ReviewHandler struct {
	reviewService service.ReviewService
}

func NewReviewHandler(reviewService service.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService}
}

func (h *ReviewHandler) Create(c *fiber.Ctx) error {
	var input domain.CreateReviewInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	reviewID, err := h.reviewService.Create(c.Context(), input)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"review_id": reviewID,
		"message":   "Review successfully CREATED.",
	})
}

// Get returns the review with its comment list assembled into reply
// trees.
func (h *ReviewHandler) Get(c *fiber.Ctx) error {
	reviewID, err := uuid.Parse(c.Params("reviewId"))
	if err != nil {
		return middleware.BadRequest("Invalid review ID")
	}

	review, err := h.reviewService.GetPopulated(c.Context(), reviewID)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(review)
}

func (h *ReviewHandler) Update(c *fiber.Ctx) error {
	reviewID, err := uuid.Parse(c.Params("reviewId"))
	if err != nil {
		return middleware.BadRequest("Invalid review ID")
	}

	payload, err := parsePayload(c)
	if err != nil {
		return err
	}

	review, err := h.reviewService.Update(c.Context(), reviewID, payload)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"review_id":  reviewID,
		"company_id": review.CompanyID,
		"rating_id":  review.RatingID,
		"message":    "Review fields successfully UPDATED.",
	})
}

func (h *ReviewHandler) UpdateRating(c *fiber.Ctx) error {
	ratingID, err := uuid.Parse(c.Params("ratingId"))
	if err != nil {
		return middleware.BadRequest("Invalid rating ID")
	}

	payload, err := parsePayload(c)
	if err != nil {
		return err
	}

	if err := h.reviewService.UpdateRating(c.Context(), ratingID, payload); err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *ReviewHandler) Delete(c *fiber.Ctx) error {
	reviewID, err := uuid.Parse(c.Params("reviewId"))
	if err != nil {
		return middleware.BadRequest("Invalid review ID")
	}

	if err := h.reviewService.Delete(c.Context(), reviewID); err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"review_id": reviewID,
		"message":   "Review successfully DELETED.",
	})
}

type flagReviewInput struct {
	Flagged bool `json:"flagged"`
}

func (h *ReviewHandler) Flag(c *fiber.Ctx) error {
	reviewID, err := uuid.Parse(c.Params("reviewId"))
	if err != nil {
		return middleware.BadRequest("Invalid review ID")
	}

	var input flagReviewInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	if err := h.reviewService.Flag(c.Context(), reviewID, input.Flagged); err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *ReviewHandler) ListFlagged(c *fiber.Ctx) error {
	params := getPaginationParams(c)

	result, err := h.reviewService.ListFlagged(c.Context(), params)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(result)
}

func (h *ReviewHandler) Vote(c *fiber.Ctx) error {
	reviewID, err := uuid.Parse(c.Params("reviewId"))
	if err != nil {
		return middleware.BadRequest("Invalid review ID")
	}

	upvote, err := parseVoteDirection(c)
	if err != nil {
		return err
	}

	if err := h.reviewService.Vote(c.Context(), reviewID, middleware.GetCurrentUserID(c), upvote); err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// parsePayload decodes the raw body for the endpoints that validate
// payload shape against a declarative schema.
func parsePayload(c *fiber.Ctx) (map[string]any, error) {
	var payload map[string]any
	if err := json.Unmarshal(c.Body(), &payload); err != nil {
		return nil, middleware.BadRequest("Invalid request body")
	}
	return payload, nil
}

type voteInput struct {
	Direction string `json:"direction"`
}

func parseVoteDirection(c *fiber.Ctx) (bool, error) {
	var input voteInput
	if err := c.BodyParser(&input); err != nil {
		return false, middleware.BadRequest("Invalid request body")
	}
	switch input.Direction {
	case "up":
		return true, nil
	case "down":
		return false, nil
	}
	return false, middleware.BadRequest("Vote direction must be up or down")
}

func getPaginationParams(c *fiber.Ctx) domain.PaginationParams {
	params := domain.PaginationParams{
		Page:     c.QueryInt("page", 1),
		PageSize: c.QueryInt("page_size", 20),
	}
	params.Normalize()
	return params
}
