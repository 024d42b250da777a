package domain

import "time"

// Comment is the domain model for a recipe comment. UserID records the owner
// and gates edits and deletes; Author is the owner's username at post time.
type Comment struct {
	ID        int64
	RecipeID  int64
	UserID    int64
	Author    string
	Body      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
