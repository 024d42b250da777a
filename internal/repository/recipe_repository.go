package repository

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/ChrisRistoff/RecipeHub/internal/domain"
)

// RecipeRepository defines persistence access for recipes.
type RecipeRepository interface {
	Create(ctx context.Context, recipe *domain.Recipe) error
	GetByID(ctx context.Context, id int64) (*domain.Recipe, error)
	ListAll(ctx context.Context) ([]domain.Recipe, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Recipe, error)
}

type recipeRepository struct {
	db DB
}

// NewRecipeRepository returns a Postgres-backed implementation.
func NewRecipeRepository(db DB) RecipeRepository {
	return &recipeRepository{db: db}
}

const recipeColumns = `
        r.id, r.title, r.tag_line, r.difficulty, r.time_to_prepare, r.method,
        r.recipe_img, r.cuisine_id, c.name, r.user_id, r.forked_from_id,
        r.original_recipe_id, r.posted_on`

func (r *recipeRepository) Create(ctx context.Context, recipe *domain.Recipe) error {
	const query = `
        INSERT INTO recipes
            (title, tag_line, difficulty, time_to_prepare, method, recipe_img,
             cuisine_id, user_id, forked_from_id, original_recipe_id)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
        RETURNING id, posted_on`

	return r.db.QueryRow(ctx, query,
		recipe.Title,
		recipe.TagLine,
		recipe.Difficulty,
		recipe.TimeToPrepare,
		recipe.Method,
		recipe.RecipeImg,
		recipe.CuisineID,
		recipe.UserID,
		recipe.ForkedFromID,
		recipe.OriginalRecipeID,
	).Scan(&recipe.ID, &recipe.PostedOn)
}

func (r *recipeRepository) GetByID(ctx context.Context, id int64) (*domain.Recipe, error) {
	const query = `
        SELECT ` + recipeColumns + `
        FROM recipes r JOIN cuisines c ON c.id = r.cuisine_id
        WHERE r.id=$1`

	recipe, err := scanRecipe(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, err
	}
	return recipe, nil
}

func (r *recipeRepository) ListAll(ctx context.Context) ([]domain.Recipe, error) {
	const query = `
        SELECT ` + recipeColumns + `
        FROM recipes r JOIN cuisines c ON c.id = r.cuisine_id
        ORDER BY r.posted_on DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectRecipes(rows)
}

func (r *recipeRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Recipe, error) {
	const query = `
        SELECT ` + recipeColumns + `
        FROM recipes r JOIN cuisines c ON c.id = r.cuisine_id
        WHERE r.user_id=$1
        ORDER BY r.posted_on DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectRecipes(rows)
}

func scanRecipe(row pgx.Row) (*domain.Recipe, error) {
	var recipe domain.Recipe
	if err := row.Scan(
		&recipe.ID,
		&recipe.Title,
		&recipe.TagLine,
		&recipe.Difficulty,
		&recipe.TimeToPrepare,
		&recipe.Method,
		&recipe.RecipeImg,
		&recipe.CuisineID,
		&recipe.Cuisine,
		&recipe.UserID,
		&recipe.ForkedFromID,
		&recipe.OriginalRecipeID,
		&recipe.PostedOn,
	); err != nil {
		return nil, err
	}
	return &recipe, nil
}

func collectRecipes(rows pgx.Rows) ([]domain.Recipe, error) {
	recipes := make([]domain.Recipe, 0)
	for rows.Next() {
		recipe, err := scanRecipe(rows)
		if err != nil {
			return nil, err
		}
		recipes = append(recipes, *recipe)
	}
	return recipes, rows.Err()
}
