package http

import (
	"context"
	"errors"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/ChrisRistoff/RecipeHub/internal/auth"
	"github.com/ChrisRistoff/RecipeHub/internal/observability"
	apperrors "github.com/ChrisRistoff/RecipeHub/pkg/util"
)

// RegisterMiddlewares attaches global middlewares such as error handling and
// logging. The request logger wraps the error handler so it observes the
// status the error handler wrote, not the pre-mapping default.
func RegisterMiddlewares(app *fiber.App, logger *zap.Logger, metrics *observability.Metrics, timeout time.Duration) {
	if timeout > 0 {
		app.Use(requestTimeoutMiddleware(timeout))
	}
	app.Use(observability.RequestLogger(logger, metrics))
	app.Use(errorHandlingMiddleware(logger, metrics))
}

func requestTimeoutMiddleware(timeout time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), timeout)
		defer cancel()
		c.SetUserContext(ctx)
		return c.Next()
	}
}

func errorHandlingMiddleware(logger *zap.Logger, metrics *observability.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("panic recovered", zap.Any("panic", r), zap.ByteString("stack", debug.Stack()))
				err = apperrors.NewInternalError(nil)
			}
			if err != nil {
				domainErr := mapSentinel(err)
				if metrics != nil {
					metrics.RecordError(c.Path(), c.Method(), domainErr.Code)
				}
				response := fiber.Map{"error": fiber.Map{
					"code":    domainErr.Code,
					"message": domainErr.Message,
				}}
				if len(domainErr.Details) > 0 {
					response["error"].(fiber.Map)["details"] = domainErr.Details
				}
				if domainErr.HTTPStatus >= 500 {
					logger.Error("request failed", zap.Error(domainErr))
				}
				c.Status(domainErr.HTTPStatus)
				_ = c.JSON(response)
				err = nil
			}
		}()
		return c.Next()
	}
}

// mapSentinel translates auth sentinel errors into client-facing DomainErrors.
// ErrUserNotFound and ErrInvalidCredentials deliberately collapse into one
// uniform response so login failures do not reveal whether a username exists;
// they stay distinct inside the service for logs and metrics.
func mapSentinel(err error) *apperrors.DomainError {
	switch {
	case errors.Is(err, auth.ErrDuplicateUsername):
		return apperrors.NewDomainError("DUPLICATE_USERNAME", "username already taken", http.StatusConflict, nil)
	case errors.Is(err, auth.ErrUserNotFound), errors.Is(err, auth.ErrInvalidCredentials):
		return apperrors.NewDomainError("INVALID_CREDENTIALS", "invalid username or password", http.StatusUnauthorized, nil)
	case errors.Is(err, auth.ErrNoCredential):
		return apperrors.NewDomainError("UNAUTHENTICATED", "authentication required", http.StatusUnauthorized, nil)
	case errors.Is(err, auth.ErrTokenExpired):
		return apperrors.NewDomainError("TOKEN_EXPIRED", "token expired", http.StatusUnauthorized, nil)
	case errors.Is(err, auth.ErrTokenInvalid):
		return apperrors.NewDomainError("TOKEN_INVALID", "invalid token", http.StatusUnauthorized, nil)
	case errors.Is(err, auth.ErrForbidden):
		return apperrors.NewDomainError("FORBIDDEN", "not the resource owner", http.StatusForbidden, nil)
	case errors.Is(err, auth.ErrTooManyAttempts):
		return apperrors.NewDomainError("TOO_MANY_ATTEMPTS", "too many login attempts, try again later", http.StatusTooManyRequests, nil)
	default:
		return apperrors.ToDomainError(err)
	}
}
