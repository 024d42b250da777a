package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ChrisRistoff/RecipeHub/internal/api/http/handlers"
	"github.com/ChrisRistoff/RecipeHub/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health   *handlers.HealthHandler
	Users    *handlers.UsersHandler
	Recipes  *handlers.RecipesHandler
	Comments *handlers.CommentsHandler
	Auth     *auth.Middleware
}

// RegisterRoutes wires HTTP routes. Every /api route runs Authenticate so
// validated claims are available; RequireAuth guards the routes that make no
// sense anonymously. Routes addressing an owned resource (profile patches,
// comment edits and deletes, forks) intentionally omit RequireAuth: the
// service checks existence before the credential so a missing resource is
// reported as not found rather than unauthorized.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	api := app.Group("/api", cfg.Auth.Authenticate)

	api.Post("/users", cfg.Users.Register)
	api.Post("/users/login", cfg.Users.Login)
	api.Get("/users/:userId", cfg.Users.GetProfile)
	api.Get("/users/:userId/recipes", cfg.Recipes.ListByUser)
	api.Patch("/users/:userId/bio", cfg.Users.UpdateBio)
	api.Patch("/users/:userId/img", cfg.Users.UpdateProfileImg)
	api.Patch("/users/:userId/name", cfg.Users.UpdateName)

	api.Get("/cuisines", cfg.Recipes.ListCuisines)

	api.Get("/recipes", cfg.Recipes.List)
	api.Post("/recipes", cfg.Auth.RequireAuth, cfg.Recipes.Create)
	api.Get("/recipes/:recipeId", cfg.Recipes.Get)
	api.Post("/recipes/:recipeId/fork", cfg.Recipes.Fork)

	api.Post("/comments", cfg.Comments.Create)
	api.Get("/comments/:recipeId", cfg.Comments.ListByRecipe)
	api.Patch("/comments/:commentId", cfg.Comments.Update)
	api.Delete("/comments/:commentId", cfg.Comments.Delete)
}
