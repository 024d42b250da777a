package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/ChrisRistoff/RecipeHub/internal/api/dto"
	"github.com/ChrisRistoff/RecipeHub/internal/auth"
	"github.com/ChrisRistoff/RecipeHub/internal/service"
	apperrors "github.com/ChrisRistoff/RecipeHub/pkg/util"
)

// RecipesHandler manages recipe endpoints.
type RecipesHandler struct {
	service *service.RecipeService
}

// NewRecipesHandler constructs handler.
func NewRecipesHandler(recipeService *service.RecipeService) *RecipesHandler {
	return &RecipesHandler{service: recipeService}
}

// Create handles POST /api/recipes.
func (h *RecipesHandler) Create(c *fiber.Ctx) error {
	var req dto.RecipeCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	claims, _ := auth.ClaimsFromContext(c)
	recipe, err := h.service.CreateRecipe(c.UserContext(), claims, service.RecipeCreateInput{
		Title:         req.Title,
		TagLine:       req.TagLine,
		Difficulty:    req.Difficulty,
		TimeToPrepare: req.TimeToPrepare,
		Method:        req.Method,
		RecipeImg:     req.RecipeImg,
		CuisineID:     req.CuisineID,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewRecipeResponse(recipe)})
}

// List handles GET /api/recipes.
func (h *RecipesHandler) List(c *fiber.Ctx) error {
	recipes, err := h.service.ListRecipes(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewRecipeResponses(recipes)})
}

// Get handles GET /api/recipes/:recipeId.
func (h *RecipesHandler) Get(c *fiber.Ctx) error {
	recipeID, err := parseID(c, "recipeId")
	if err != nil {
		return err
	}

	recipe, err := h.service.GetRecipe(c.UserContext(), recipeID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewRecipeResponse(recipe)})
}

// ListByUser handles GET /api/users/:userId/recipes.
func (h *RecipesHandler) ListByUser(c *fiber.Ctx) error {
	userID, err := parseID(c, "userId")
	if err != nil {
		return err
	}

	recipes, err := h.service.ListRecipesByUser(c.UserContext(), userID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewRecipeResponses(recipes)})
}

// Fork handles POST /api/recipes/:recipeId/fork.
func (h *RecipesHandler) Fork(c *fiber.Ctx) error {
	recipeID, err := parseID(c, "recipeId")
	if err != nil {
		return err
	}

	claims, _ := auth.ClaimsFromContext(c)
	fork, err := h.service.ForkRecipe(c.UserContext(), claims, recipeID)
	if err != nil {
		return credentialErr(c, err)
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewRecipeResponse(fork)})
}

// ListCuisines handles GET /api/cuisines.
func (h *RecipesHandler) ListCuisines(c *fiber.Ctx) error {
	cuisines, err := h.service.ListCuisines(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewCuisineResponses(cuisines)})
}
