package dto

import (
	"time"

	"github.com/ChrisRistoff/RecipeHub/internal/domain"
)

// CommentCreateRequest payload for new comments. The author identity comes
// from the bearer token, so the payload carries none.
type CommentCreateRequest struct {
	RecipeID int64  `json:"recipe_id"`
	Comment  string `json:"comment"`
}

// CommentUpdateRequest payload for comment edits.
type CommentUpdateRequest struct {
	Comment string `json:"comment"`
}

// CommentResponse is the API view of a comment.
type CommentResponse struct {
	ID        int64     `json:"id"`
	RecipeID  int64     `json:"recipe_id"`
	UserID    int64     `json:"user_id"`
	Author    string    `json:"author"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewCommentResponse maps a domain comment to its API view.
func NewCommentResponse(comment *domain.Comment) CommentResponse {
	return CommentResponse{
		ID:        comment.ID,
		RecipeID:  comment.RecipeID,
		UserID:    comment.UserID,
		Author:    comment.Author,
		Comment:   comment.Body,
		CreatedAt: comment.CreatedAt,
		UpdatedAt: comment.UpdatedAt,
	}
}

// NewCommentResponses maps a comment slice.
func NewCommentResponses(comments []domain.Comment) []CommentResponse {
	out := make([]CommentResponse, 0, len(comments))
	for i := range comments {
		out = append(out, NewCommentResponse(&comments[i]))
	}
	return out
}
