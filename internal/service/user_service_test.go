package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ChrisRistoff/RecipeHub/internal/auth"
	"github.com/ChrisRistoff/RecipeHub/internal/domain"
)

// Profile updates follow the same check order as every owned resource:
// existence, then credential presence, then ownership.
func TestUpdateBioCheckOrdering(t *testing.T) {
	users := new(MockUserRepo)
	svc := NewUserService(users)

	users.On("GetByID", mock.Anything, int64(404)).Return(nil, pgx.ErrNoRows)
	users.On("GetByID", mock.Anything, int64(5)).Return(&domain.User{ID: 5, Username: "alice"}, nil)

	// Missing user is 404 even without a credential.
	_, err := svc.UpdateBio(context.Background(), nil, 404, "hi")
	assertStatus(t, err, http.StatusNotFound)

	// Existing user without a credential is unauthenticated.
	_, err = svc.UpdateBio(context.Background(), nil, 5, "hi")
	assert.ErrorIs(t, err, auth.ErrNoCredential)

	// Someone else's profile is forbidden.
	_, err = svc.UpdateBio(context.Background(), &auth.Claims{UserID: 9, Username: "mallory"}, 5, "hi")
	assert.ErrorIs(t, err, auth.ErrForbidden)

	users.AssertNotCalled(t, "UpdateBio", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateBioSelf(t *testing.T) {
	users := new(MockUserRepo)
	svc := NewUserService(users)

	users.On("GetByID", mock.Anything, int64(5)).Return(&domain.User{ID: 5, Username: "alice"}, nil)
	users.On("UpdateBio", mock.Anything, int64(5), "new bio").
		Return(&domain.User{ID: 5, Username: "alice", Bio: "new bio"}, nil)

	user, err := svc.UpdateBio(context.Background(), &auth.Claims{UserID: 5, Username: "alice"}, 5, "new bio")
	require.NoError(t, err)
	assert.Equal(t, "new bio", user.Bio)
}
