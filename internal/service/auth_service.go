package service

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/ChrisRistoff/RecipeHub/internal/auth"
	"github.com/ChrisRistoff/RecipeHub/internal/config"
	"github.com/ChrisRistoff/RecipeHub/internal/domain"
	"github.com/ChrisRistoff/RecipeHub/internal/events"
	"github.com/ChrisRistoff/RecipeHub/internal/observability"
	"github.com/ChrisRistoff/RecipeHub/internal/repository"
)

// AuthService coordinates registration and login flows.
type AuthService struct {
	users      repository.UserRepository
	tokenMgr   *auth.TokenManager
	throttle   *LoginThrottle
	dispatcher events.Dispatcher
	logger     *zap.Logger
	metrics    *observability.Metrics
	bcryptCost int
}

// AuthDependencies encapsulates collaborators for the auth service.
type AuthDependencies struct {
	UserRepo   repository.UserRepository
	Throttle   *LoginThrottle
	Dispatcher events.Dispatcher
	Logger     *zap.Logger
	Metrics    *observability.Metrics
}

// RegisterInput is the registration payload.
type RegisterInput struct {
	Username   string
	Name       string
	ProfileImg string
	Password   string
	Bio        string
}

// NewAuthService builds the service. The token manager is constructed here
// from explicit config values so every component shares one signing key
// without ambient globals.
func NewAuthService(cfg config.Config, deps AuthDependencies) *AuthService {
	return &AuthService{
		users: deps.UserRepo,
		tokenMgr: auth.NewTokenManager(
			cfg.Auth.JWTSecret,
			cfg.Auth.JWTIssuer,
			cfg.Auth.JWTAudience,
			cfg.Auth.AccessTokenTTL(),
		),
		throttle:   deps.Throttle,
		dispatcher: deps.Dispatcher,
		logger:     deps.Logger,
		metrics:    deps.Metrics,
		bcryptCost: cfg.Auth.BcryptCost,
	}
}

// Register creates a new account and issues a token for it. Not idempotent: a
// second registration with the same username fails with ErrDuplicateUsername.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*domain.User, string, time.Time, error) {
	if _, err := s.users.GetByUsername(ctx, input.Username); err == nil {
		return nil, "", time.Time{}, auth.ErrDuplicateUsername
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, "", time.Time{}, err
	}

	hash, err := auth.HashPassword(input.Password, s.bcryptCost)
	if err != nil {
		return nil, "", time.Time{}, err
	}

	// A canceled request must not reach the store write.
	if err := ctx.Err(); err != nil {
		return nil, "", time.Time{}, err
	}

	user := &domain.User{
		Username:     input.Username,
		Name:         input.Name,
		ProfileImg:   input.ProfileImg,
		Bio:          input.Bio,
		PasswordHash: hash,
		Status:       true,
	}
	if err := s.users.Create(ctx, user); err != nil {
		// The uniqueness pre-check races with concurrent registrations; the
		// store's constraint is authoritative.
		return nil, "", time.Time{}, err
	}

	token, exp, err := s.tokenMgr.Generate(user.ID, user.Username)
	if err != nil {
		return nil, "", time.Time{}, err
	}

	s.publish(ctx, events.EventUserRegistered, user.ID, events.UserRegisteredPayload{Username: user.Username})
	return user, token, exp, nil
}

// Login authenticates a user and issues a fresh token. Idempotent and side
// effect free beyond the token. ErrUserNotFound and ErrInvalidCredentials stay
// distinct here for logging and metrics; the HTTP boundary collapses them into
// one uniform response.
func (s *AuthService) Login(ctx context.Context, username, password string) (*domain.User, string, time.Time, error) {
	if err := s.throttle.Check(ctx, username); err != nil {
		s.metrics.RecordAuthFailure("throttled")
		return nil, "", time.Time{}, err
	}

	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			s.metrics.RecordAuthFailure("user_not_found")
			s.logger.Info("login failed: unknown username", zap.String("username", username))
			return nil, "", time.Time{}, auth.ErrUserNotFound
		}
		return nil, "", time.Time{}, err
	}

	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			s.metrics.RecordAuthFailure("invalid_password")
			s.logger.Info("login failed: bad password", zap.Int64("user_id", user.ID))
			return nil, "", time.Time{}, auth.ErrInvalidCredentials
		}
		return nil, "", time.Time{}, err
	}

	token, exp, err := s.tokenMgr.Generate(user.ID, user.Username)
	if err != nil {
		return nil, "", time.Time{}, err
	}

	s.throttle.Reset(ctx, username)
	return user, token, exp, nil
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}

func (s *AuthService) publish(ctx context.Context, eventType events.EventType, userID int64, payload interface{}) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, newEvent(eventType, userID, payload))
}
