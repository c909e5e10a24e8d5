package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"xintern-backend/internal/domain"
	"xintern-backend/internal/middleware"
	"xintern-backend/internal/service"
)

type CommentHandler struct {
	commentService service.CommentService
}

func NewCommentHandler(commentService service.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

func (h *CommentHandler) Create(c *fiber.Ctx) error {
	reviewID, err := uuid.Parse(c.Params("reviewId"))
	if err != nil {
		return middleware.BadRequest("Invalid review ID")
	}

	var input domain.CreateCommentInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	commentID, err := h.commentService.Create(c.Context(), reviewID, middleware.GetCurrentUserID(c), input)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"comment_id": commentID,
		"message":    "Comment successfully CREATED.",
	})
}

func (h *CommentHandler) Update(c *fiber.Ctx) error {
	commentID, err := uuid.Parse(c.Params("commentId"))
	if err != nil {
		return middleware.BadRequest("Invalid comment ID")
	}

	payload, err := parsePayload(c)
	if err != nil {
		return err
	}

	if err := h.commentService.Update(c.Context(), commentID, payload); err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *CommentHandler) Delete(c *fiber.Ctx) error {
	commentID, err := uuid.Parse(c.Params("commentId"))
	if err != nil {
		return middleware.BadRequest("Invalid comment ID")
	}

	if err := h.commentService.Delete(c.Context(), commentID); err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"comment_id": commentID,
		"message":    "Comment successfully DELETED.",
	})
}

func (h *CommentHandler) Vote(c *fiber.Ctx) error {
	commentID, err := uuid.Parse(c.Params("commentId"))
	if err != nil {
		return middleware.BadRequest("Invalid comment ID")
	}

	upvote, err := parseVoteDirection(c)
	if err != nil {
		return err
	}

	if err := h.commentService.Vote(c.Context(), commentID, middleware.GetCurrentUserID(c), upvote); err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}
