package service

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/ChrisRistoff/RecipeHub/internal/auth"
	"github.com/ChrisRistoff/RecipeHub/internal/config"
	"github.com/ChrisRistoff/RecipeHub/internal/domain"
	"github.com/ChrisRistoff/RecipeHub/internal/observability"
)

// MockUserRepo is a mock implementation of repository.UserRepository.
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	if args.Error(0) == nil {
		user.ID = 1
	}
	return args.Error(0)
}

func (m *MockUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepo) UpdateBio(ctx context.Context, id int64, bio string) (*domain.User, error) {
	args := m.Called(ctx, id, bio)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepo) UpdateProfileImg(ctx context.Context, id int64, img string) (*domain.User, error) {
	args := m.Called(ctx, id, img)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepo) UpdateName(ctx context.Context, id int64, name string) (*domain.User, error) {
	args := m.Called(ctx, id, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func testAuthConfig() config.Config {
	return config.Config{
		Auth: config.AuthConfig{
			JWTSecret:             "test-secret",
			JWTIssuer:             "recipehub-test",
			JWTAudience:           "recipehub-test-clients",
			AccessTokenTTLMinutes: 30,
			BcryptCost:            bcrypt.MinCost,
		},
	}
}

func newTestAuthService(repo *MockUserRepo) *AuthService {
	return NewAuthService(testAuthConfig(), AuthDependencies{
		UserRepo: repo,
		Logger:   zap.NewNop(),
		Metrics:  observability.NewMetrics(),
	})
}

func TestRegisterIssuesValidToken(t *testing.T) {
	repo := new(MockUserRepo)
	svc := newTestAuthService(repo)

	repo.On("GetByUsername", mock.Anything, "alice").Return(nil, pgx.ErrNoRows)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
		// The plaintext must never reach the store.
		return u.Username == "alice" &&
			u.PasswordHash != "hunter22" &&
			auth.ComparePassword(u.PasswordHash, "hunter22") == nil
	})).Return(nil)

	user, token, _, err := svc.Register(context.Background(), RegisterInput{
		Username: "alice",
		Name:     "Alice",
		Password: "hunter22",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)

	claims, err := svc.TokenManager().Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, int64(1), claims.UserID)
	repo.AssertExpectations(t)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	repo := new(MockUserRepo)
	svc := newTestAuthService(repo)

	repo.On("GetByUsername", mock.Anything, "alice").
		Return(&domain.User{ID: 1, Username: "alice"}, nil)

	_, _, _, err := svc.Register(context.Background(), RegisterInput{Username: "alice", Password: "pw"})
	assert.ErrorIs(t, err, auth.ErrDuplicateUsername)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRegisterCanceledContextSkipsWrite(t *testing.T) {
	repo := new(MockUserRepo)
	svc := newTestAuthService(repo)

	repo.On("GetByUsername", mock.Anything, "alice").Return(nil, pgx.ErrNoRows)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, _, err := svc.Register(ctx, RegisterInput{Username: "alice", Password: "pw"})
	assert.ErrorIs(t, err, context.Canceled)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestLoginSuccess(t *testing.T) {
	repo := new(MockUserRepo)
	svc := newTestAuthService(repo)

	hash, err := auth.HashPassword("hunter22", bcrypt.MinCost)
	require.NoError(t, err)
	repo.On("GetByUsername", mock.Anything, "alice").
		Return(&domain.User{ID: 7, Username: "alice", PasswordHash: hash}, nil)

	user, token, _, err := svc.Login(context.Background(), "alice", "hunter22")
	require.NoError(t, err)
	assert.Equal(t, int64(7), user.ID)

	claims, err := svc.TokenManager().Parse(token)
	require.NoError(t, err)
	assert.Equal(t, int64(7), claims.UserID)
}

func TestLoginFailureKindsStayDistinct(t *testing.T) {
	repo := new(MockUserRepo)
	svc := newTestAuthService(repo)

	hash, err := auth.HashPassword("correct", bcrypt.MinCost)
	require.NoError(t, err)
	repo.On("GetByUsername", mock.Anything, "alice").
		Return(&domain.User{ID: 7, Username: "alice", PasswordHash: hash}, nil)
	repo.On("GetByUsername", mock.Anything, "nobody").Return(nil, pgx.ErrNoRows)

	_, _, _, err = svc.Login(context.Background(), "alice", "wrong")
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)

	_, _, _, err = svc.Login(context.Background(), "nobody", "x")
	assert.ErrorIs(t, err, auth.ErrUserNotFound)

	failures := svc.metrics.AuthFailures()
	assert.Equal(t, int64(1), failures["invalid_password"])
	assert.Equal(t, int64(1), failures["user_not_found"])
}
