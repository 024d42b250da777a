package service

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/jackc/pgx/v5"

	"github.com/ChrisRistoff/RecipeHub/internal/auth"
	"github.com/ChrisRistoff/RecipeHub/internal/domain"
	"github.com/ChrisRistoff/RecipeHub/internal/events"
	"github.com/ChrisRistoff/RecipeHub/internal/repository"
	apperrors "github.com/ChrisRistoff/RecipeHub/pkg/util"
)

const commentPreviewLen = 80

// CommentService coordinates comment workflows. Mutations follow a fixed
// check order: resource existence, then credential presence, then ownership.
type CommentService struct {
	comments   repository.CommentRepository
	recipes    repository.RecipeRepository
	dispatcher events.Dispatcher
}

// CommentDependencies bundles collaborators for the comment service.
type CommentDependencies struct {
	CommentRepo repository.CommentRepository
	RecipeRepo  repository.RecipeRepository
	Dispatcher  events.Dispatcher
}

// NewCommentService constructs the service.
func NewCommentService(deps CommentDependencies) *CommentService {
	return &CommentService{
		comments:   deps.CommentRepo,
		recipes:    deps.RecipeRepo,
		dispatcher: deps.Dispatcher,
	}
}

// CreateComment posts a comment on a recipe. The author identity comes from
// the validated claims, never from the payload.
func (s *CommentService) CreateComment(ctx context.Context, claims *auth.Claims, recipeID int64, body string) (*domain.Comment, error) {
	if _, err := s.recipes.GetByID(ctx, recipeID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("recipe", map[string]any{"recipe_id": recipeID})
		}
		return nil, err
	}
	if claims == nil {
		return nil, auth.ErrNoCredential
	}
	if strings.TrimSpace(body) == "" {
		return nil, apperrors.NewValidationError("comment cannot be empty", nil)
	}

	comment := &domain.Comment{
		RecipeID: recipeID,
		UserID:   claims.UserID,
		Author:   claims.Username,
		Body:     body,
	}
	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, err
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, newEvent(events.EventCommentAdded, claims.UserID, events.CommentAddedPayload{
			CommentID:   comment.ID,
			RecipeID:    comment.RecipeID,
			Author:      comment.Author,
			BodyPreview: preview(comment.Body),
		}))
	}
	return comment, nil
}

// ListCommentsByRecipe returns a recipe's comments; the recipe must exist.
func (s *CommentService) ListCommentsByRecipe(ctx context.Context, recipeID int64) ([]domain.Comment, error) {
	if _, err := s.recipes.GetByID(ctx, recipeID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("recipe", map[string]any{"recipe_id": recipeID})
		}
		return nil, err
	}
	return s.comments.ListByRecipe(ctx, recipeID)
}

// UpdateComment edits a comment body. Existence is checked before the
// credential so a missing comment is a 404 even for anonymous callers.
func (s *CommentService) UpdateComment(ctx context.Context, claims *auth.Claims, commentID int64, body string) (*domain.Comment, error) {
	comment, err := s.getComment(ctx, commentID)
	if err != nil {
		return nil, err
	}
	if err := auth.Authorize(claims, comment.UserID); err != nil {
		return nil, err
	}
	if strings.TrimSpace(body) == "" {
		return nil, apperrors.NewValidationError("comment cannot be empty", nil)
	}
	return s.comments.UpdateBody(ctx, commentID, body)
}

// DeleteComment removes a comment, subject to the same check order.
func (s *CommentService) DeleteComment(ctx context.Context, claims *auth.Claims, commentID int64) error {
	comment, err := s.getComment(ctx, commentID)
	if err != nil {
		return err
	}
	if err := auth.Authorize(claims, comment.UserID); err != nil {
		return err
	}
	return s.comments.Delete(ctx, commentID)
}

func (s *CommentService) getComment(ctx context.Context, commentID int64) (*domain.Comment, error) {
	comment, err := s.comments.GetByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("comment", map[string]any{"comment_id": commentID})
		}
		return nil, err
	}
	return comment, nil
}

func preview(body string) string {
	if len(body) <= commentPreviewLen {
		return body
	}
	// Back off to a rune boundary so the cut never splits a multi-byte rune.
	cut := commentPreviewLen
	for cut > 0 && !utf8.RuneStart(body[cut]) {
		cut--
	}
	return body[:cut]
}
