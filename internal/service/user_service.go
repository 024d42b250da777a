package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/ChrisRistoff/RecipeHub/internal/auth"
	"github.com/ChrisRistoff/RecipeHub/internal/domain"
	"github.com/ChrisRistoff/RecipeHub/internal/repository"
	apperrors "github.com/ChrisRistoff/RecipeHub/pkg/util"
)

// UserService serves public profiles and self-service profile updates.
type UserService struct {
	users repository.UserRepository
}

// NewUserService constructs the service.
func NewUserService(users repository.UserRepository) *UserService {
	return &UserService{users: users}
}

// GetProfile returns a user's public profile.
func (s *UserService) GetProfile(ctx context.Context, userID int64) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("user", map[string]any{"user_id": userID})
		}
		return nil, err
	}
	return user, nil
}

// UpdateBio changes the caller's bio. A user mutates only their own record.
func (s *UserService) UpdateBio(ctx context.Context, claims *auth.Claims, userID int64, bio string) (*domain.User, error) {
	if err := s.authorizeSelf(ctx, claims, userID); err != nil {
		return nil, err
	}
	return s.users.UpdateBio(ctx, userID, bio)
}

// UpdateProfileImg changes the caller's profile image.
func (s *UserService) UpdateProfileImg(ctx context.Context, claims *auth.Claims, userID int64, img string) (*domain.User, error) {
	if err := s.authorizeSelf(ctx, claims, userID); err != nil {
		return nil, err
	}
	return s.users.UpdateProfileImg(ctx, userID, img)
}

// UpdateName changes the caller's display name.
func (s *UserService) UpdateName(ctx context.Context, claims *auth.Claims, userID int64, name string) (*domain.User, error) {
	if err := s.authorizeSelf(ctx, claims, userID); err != nil {
		return nil, err
	}
	return s.users.UpdateName(ctx, userID, name)
}

func (s *UserService) authorizeSelf(ctx context.Context, claims *auth.Claims, userID int64) error {
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("user", map[string]any{"user_id": userID})
		}
		return err
	}
	return auth.Authorize(claims, userID)
}
