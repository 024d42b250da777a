package events

import "time"

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventUserRegistered EventType = "user_registered"
	EventRecipeCreated  EventType = "recipe_created"
	EventRecipeForked   EventType = "recipe_forked"
	EventCommentAdded   EventType = "comment_added"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	UserID    int64       `json:"user_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// UserRegisteredPayload payload.
type UserRegisteredPayload struct {
	Username string `json:"username"`
}

// RecipeCreatedPayload payload.
type RecipeCreatedPayload struct {
	RecipeID int64  `json:"recipe_id"`
	Title    string `json:"title"`
	Cuisine  string `json:"cuisine"`
}

// RecipeForkedPayload payload.
type RecipeForkedPayload struct {
	RecipeID         int64 `json:"recipe_id"`
	ForkedFromID     int64 `json:"forked_from_id"`
	OriginalRecipeID int64 `json:"original_recipe_id"`
}

// CommentAddedPayload payload.
type CommentAddedPayload struct {
	CommentID   int64  `json:"comment_id"`
	RecipeID    int64  `json:"recipe_id"`
	Author      string `json:"author"`
	BodyPreview string `json:"body_preview"`
}
