package dto

import (
	"time"

	"github.com/ChrisRistoff/RecipeHub/internal/domain"
)

// RecipeCreateRequest payload for new recipes.
type RecipeCreateRequest struct {
	Title         string `json:"title"`
	TagLine       string `json:"tag_line"`
	Difficulty    int    `json:"difficulty"`
	TimeToPrepare int    `json:"time_to_prepare"`
	Method        string `json:"method"`
	RecipeImg     string `json:"recipe_img"`
	CuisineID     int64  `json:"cuisine_id"`
}

// RecipeResponse is the API view of a recipe.
type RecipeResponse struct {
	ID               int64     `json:"id"`
	Title            string    `json:"title"`
	TagLine          string    `json:"tag_line"`
	Difficulty       int       `json:"difficulty"`
	TimeToPrepare    int       `json:"time_to_prepare"`
	Method           string    `json:"method"`
	RecipeImg        string    `json:"recipe_img"`
	Cuisine          string    `json:"cuisine"`
	CuisineID        int64     `json:"cuisine_id"`
	UserID           int64     `json:"user_id"`
	ForkedFromID     *int64    `json:"forked_from_id,omitempty"`
	OriginalRecipeID *int64    `json:"original_recipe_id,omitempty"`
	PostedOn         time.Time `json:"posted_on"`
}

// CuisineResponse is the API view of a cuisine entry.
type CuisineResponse struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	CuisineImg string `json:"cuisine_img"`
}

// NewRecipeResponse maps a domain recipe to its API view.
func NewRecipeResponse(recipe *domain.Recipe) RecipeResponse {
	return RecipeResponse{
		ID:               recipe.ID,
		Title:            recipe.Title,
		TagLine:          recipe.TagLine,
		Difficulty:       recipe.Difficulty,
		TimeToPrepare:    recipe.TimeToPrepare,
		Method:           recipe.Method,
		RecipeImg:        recipe.RecipeImg,
		Cuisine:          recipe.Cuisine,
		CuisineID:        recipe.CuisineID,
		UserID:           recipe.UserID,
		ForkedFromID:     recipe.ForkedFromID,
		OriginalRecipeID: recipe.OriginalRecipeID,
		PostedOn:         recipe.PostedOn,
	}
}

// NewRecipeResponses maps a recipe slice.
func NewRecipeResponses(recipes []domain.Recipe) []RecipeResponse {
	out := make([]RecipeResponse, 0, len(recipes))
	for i := range recipes {
		out = append(out, NewRecipeResponse(&recipes[i]))
	}
	return out
}

// NewCuisineResponses maps a cuisine slice.
func NewCuisineResponses(cuisines []domain.Cuisine) []CuisineResponse {
	out := make([]CuisineResponse, 0, len(cuisines))
	for _, cuisine := range cuisines {
		out = append(out, CuisineResponse{ID: cuisine.ID, Name: cuisine.Name, CuisineImg: cuisine.CuisineImg})
	}
	return out
}
