package domain

import "time"

// Difficulty bounds for a recipe, inclusive.
const (
	DifficultyMin = 1
	DifficultyMax = 3
)

// Recipe is the domain model for a published recipe. A forked recipe records
// both its direct parent and the root of the fork chain.
type Recipe struct {
	ID               int64
	Title            string
	TagLine          string
	Difficulty       int
	TimeToPrepare    int
	Method           string
	RecipeImg        string
	CuisineID        int64
	Cuisine          string
	UserID           int64
	ForkedFromID     *int64
	OriginalRecipeID *int64
	PostedOn         time.Time
}

// Cuisine is a reference entry recipes point at.
type Cuisine struct {
	ID         int64
	Name       string
	CuisineImg string
}
