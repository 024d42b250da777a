package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/ChrisRistoff/RecipeHub/internal/api/dto"
	"github.com/ChrisRistoff/RecipeHub/internal/auth"
	"github.com/ChrisRistoff/RecipeHub/internal/service"
	apperrors "github.com/ChrisRistoff/RecipeHub/pkg/util"
)

// CommentsHandler manages comment endpoints. Mutating handlers pass the claims
// through unchecked; the service runs the existence, credential and ownership
// checks in that order.
type CommentsHandler struct {
	service *service.CommentService
}

// NewCommentsHandler constructs handler.
func NewCommentsHandler(commentService *service.CommentService) *CommentsHandler {
	return &CommentsHandler{service: commentService}
}

// Create handles POST /api/comments.
func (h *CommentsHandler) Create(c *fiber.Ctx) error {
	var req dto.CommentCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.RecipeID <= 0 {
		return apperrors.NewValidationError("recipe_id required", nil)
	}

	claims, _ := auth.ClaimsFromContext(c)
	comment, err := h.service.CreateComment(c.UserContext(), claims, req.RecipeID, req.Comment)
	if err != nil {
		return credentialErr(c, err)
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewCommentResponse(comment)})
}

// ListByRecipe handles GET /api/comments/:recipeId.
func (h *CommentsHandler) ListByRecipe(c *fiber.Ctx) error {
	recipeID, err := parseID(c, "recipeId")
	if err != nil {
		return err
	}

	comments, err := h.service.ListCommentsByRecipe(c.UserContext(), recipeID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewCommentResponses(comments)})
}

// Update handles PATCH /api/comments/:commentId.
func (h *CommentsHandler) Update(c *fiber.Ctx) error {
	commentID, err := parseID(c, "commentId")
	if err != nil {
		return err
	}
	var req dto.CommentUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	claims, _ := auth.ClaimsFromContext(c)
	comment, err := h.service.UpdateComment(c.UserContext(), claims, commentID, req.Comment)
	if err != nil {
		return credentialErr(c, err)
	}
	return c.JSON(fiber.Map{"data": dto.NewCommentResponse(comment)})
}

// Delete handles DELETE /api/comments/:commentId.
func (h *CommentsHandler) Delete(c *fiber.Ctx) error {
	commentID, err := parseID(c, "commentId")
	if err != nil {
		return err
	}

	claims, _ := auth.ClaimsFromContext(c)
	if err := h.service.DeleteComment(c.UserContext(), claims, commentID); err != nil {
		return credentialErr(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}
