package dto

import (
	"time"

	"github.com/ChrisRistoff/RecipeHub/internal/domain"
)

// UserRegisterRequest payload for new users.
type UserRegisterRequest struct {
	Username   string `json:"username"`
	Name       string `json:"name"`
	ProfileImg string `json:"profile_img"`
	Password   string `json:"password"`
	Bio        string `json:"bio"`
}

// UserLoginRequest payload for login.
type UserLoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AuthResponse standard response for auth endpoints.
type AuthResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// UpdateBioRequest payload for bio updates.
type UpdateBioRequest struct {
	Bio string `json:"bio"`
}

// UpdateProfileImgRequest payload for profile image updates.
type UpdateProfileImgRequest struct {
	ProfileImg string `json:"profile_img"`
}

// UpdateNameRequest payload for display name updates.
type UpdateNameRequest struct {
	Name string `json:"name"`
}

// UserResponse is the public view of a user. The password hash never appears
// in any response shape.
type UserResponse struct {
	ID         int64  `json:"id"`
	Username   string `json:"username"`
	Name       string `json:"name"`
	ProfileImg string `json:"profile_img"`
	Bio        string `json:"bio"`
}

// NewUserResponse maps a domain user to its public view.
func NewUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:         user.ID,
		Username:   user.Username,
		Name:       user.Name,
		ProfileImg: user.ProfileImg,
		Bio:        user.Bio,
	}
}
