package service

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/ChrisRistoff/RecipeHub/internal/auth"
	"github.com/ChrisRistoff/RecipeHub/internal/domain"
	"github.com/ChrisRistoff/RecipeHub/internal/events"
	"github.com/ChrisRistoff/RecipeHub/internal/repository"
	apperrors "github.com/ChrisRistoff/RecipeHub/pkg/util"
)

// RecipeService coordinates recipe workflows.
type RecipeService struct {
	recipes    repository.RecipeRepository
	cuisines   repository.CuisineRepository
	dispatcher events.Dispatcher
}

// RecipeDependencies bundles collaborators for the recipe service.
type RecipeDependencies struct {
	RecipeRepo  repository.RecipeRepository
	CuisineRepo repository.CuisineRepository
	Dispatcher  events.Dispatcher
}

// RecipeCreateInput describes recipe creation payload.
type RecipeCreateInput struct {
	Title         string
	TagLine       string
	Difficulty    int
	TimeToPrepare int
	Method        string
	RecipeImg     string
	CuisineID     int64
}

// NewRecipeService constructs the service.
func NewRecipeService(deps RecipeDependencies) *RecipeService {
	return &RecipeService{
		recipes:    deps.RecipeRepo,
		cuisines:   deps.CuisineRepo,
		dispatcher: deps.Dispatcher,
	}
}

// CreateRecipe publishes a new recipe owned by the caller.
func (s *RecipeService) CreateRecipe(ctx context.Context, claims *auth.Claims, input RecipeCreateInput) (*domain.Recipe, error) {
	if claims == nil {
		return nil, auth.ErrNoCredential
	}
	if err := validateRecipeInput(input); err != nil {
		return nil, err
	}

	cuisine, err := s.cuisines.GetByID(ctx, input.CuisineID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewValidationError("unknown cuisine", map[string]any{"cuisine_id": input.CuisineID})
		}
		return nil, err
	}

	recipe := &domain.Recipe{
		Title:         input.Title,
		TagLine:       input.TagLine,
		Difficulty:    input.Difficulty,
		TimeToPrepare: input.TimeToPrepare,
		Method:        input.Method,
		RecipeImg:     input.RecipeImg,
		CuisineID:     cuisine.ID,
		Cuisine:       cuisine.Name,
		UserID:        claims.UserID,
	}
	if err := s.recipes.Create(ctx, recipe); err != nil {
		return nil, err
	}

	s.publish(ctx, events.EventRecipeCreated, claims.UserID, events.RecipeCreatedPayload{
		RecipeID: recipe.ID,
		Title:    recipe.Title,
		Cuisine:  recipe.Cuisine,
	})
	return recipe, nil
}

// ForkRecipe copies an existing recipe into the caller's collection, recording
// the direct parent and the root of the fork chain.
func (s *RecipeService) ForkRecipe(ctx context.Context, claims *auth.Claims, recipeID int64) (*domain.Recipe, error) {
	source, err := s.recipes.GetByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("recipe", map[string]any{"recipe_id": recipeID})
		}
		return nil, err
	}
	if claims == nil {
		return nil, auth.ErrNoCredential
	}

	originalID := source.ID
	if source.OriginalRecipeID != nil {
		originalID = *source.OriginalRecipeID
	}

	fork := &domain.Recipe{
		Title:            source.Title,
		TagLine:          source.TagLine,
		Difficulty:       source.Difficulty,
		TimeToPrepare:    source.TimeToPrepare,
		Method:           source.Method,
		RecipeImg:        source.RecipeImg,
		CuisineID:        source.CuisineID,
		Cuisine:          source.Cuisine,
		UserID:           claims.UserID,
		ForkedFromID:     &source.ID,
		OriginalRecipeID: &originalID,
	}
	if err := s.recipes.Create(ctx, fork); err != nil {
		return nil, err
	}

	s.publish(ctx, events.EventRecipeForked, claims.UserID, events.RecipeForkedPayload{
		RecipeID:         fork.ID,
		ForkedFromID:     source.ID,
		OriginalRecipeID: originalID,
	})
	return fork, nil
}

// GetRecipe returns a recipe by id.
func (s *RecipeService) GetRecipe(ctx context.Context, recipeID int64) (*domain.Recipe, error) {
	recipe, err := s.recipes.GetByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("recipe", map[string]any{"recipe_id": recipeID})
		}
		return nil, err
	}
	return recipe, nil
}

// ListRecipes returns all recipes, newest first.
func (s *RecipeService) ListRecipes(ctx context.Context) ([]domain.Recipe, error) {
	return s.recipes.ListAll(ctx)
}

// ListRecipesByUser returns the recipes owned by one user.
func (s *RecipeService) ListRecipesByUser(ctx context.Context, userID int64) ([]domain.Recipe, error) {
	return s.recipes.ListByUser(ctx, userID)
}

// ListCuisines returns the cuisine reference entries.
func (s *RecipeService) ListCuisines(ctx context.Context) ([]domain.Cuisine, error) {
	return s.cuisines.ListAll(ctx)
}

func (s *RecipeService) publish(ctx context.Context, eventType events.EventType, userID int64, payload interface{}) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, newEvent(eventType, userID, payload))
}

func validateRecipeInput(input RecipeCreateInput) error {
	details := map[string]any{}
	if strings.TrimSpace(input.Title) == "" {
		details["title"] = "required"
	}
	if strings.TrimSpace(input.Method) == "" {
		details["method"] = "required"
	}
	if input.Difficulty < domain.DifficultyMin || input.Difficulty > domain.DifficultyMax {
		details["difficulty"] = "must be between 1 and 3"
	}
	if input.TimeToPrepare < 1 || input.TimeToPrepare > 1000 {
		details["time_to_prepare"] = "must be between 1 and 1000 minutes"
	}
	if len(details) > 0 {
		return apperrors.NewValidationError("invalid recipe", details)
	}
	return nil
}
