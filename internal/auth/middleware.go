package auth

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	apperrors "github.com/ChrisRistoff/RecipeHub/pkg/util"
)

const (
	claimsKey  = "auth_claims"
	credErrKey = "auth_credential_error"
)

// Middleware attaches validated claims to requests. Claims come solely from
// the token payload; the identity store is not consulted here.
type Middleware struct {
	tokens *TokenManager
}

// NewMiddleware constructs middleware around a token manager.
func NewMiddleware(tokens *TokenManager) *Middleware {
	return &Middleware{tokens: tokens}
}

// Authenticate extracts and validates a bearer token if one is present. It
// never aborts the request: routes that tolerate anonymous access run the
// handler regardless, and the handler decides when authentication is required
// (after resource existence checks, so a missing resource is a 404 and not a
// 401). The typed credential failure is kept for that decision.
func (m *Middleware) Authenticate(c *fiber.Ctx) error {
	tokenStr, err := BearerToken(c.Get(fiber.HeaderAuthorization))
	if err != nil {
		c.Locals(credErrKey, err)
		return c.Next()
	}

	claims, err := m.tokens.Parse(tokenStr)
	if err != nil {
		c.Locals(credErrKey, err)
		return c.Next()
	}

	c.Locals(claimsKey, claims)
	return c.Next()
}

// RequireAuth enforces a validated credential. Run after Authenticate.
func (m *Middleware) RequireAuth(c *fiber.Ctx) error {
	if _, ok := ClaimsFromContext(c); ok {
		return c.Next()
	}
	return apperrors.NewUnauthorized(credentialMessage(CredentialError(c)))
}

// ClaimsFromContext retrieves the validated claims, if any.
func ClaimsFromContext(c *fiber.Ctx) (*Claims, bool) {
	claims, ok := c.Locals(claimsKey).(*Claims)
	return claims, ok && claims != nil
}

// CredentialError reports why no claims are attached: ErrNoCredential,
// ErrTokenInvalid or ErrTokenExpired. Nil when valid claims are present.
func CredentialError(c *fiber.Ctx) error {
	if _, ok := ClaimsFromContext(c); ok {
		return nil
	}
	if err, ok := c.Locals(credErrKey).(error); ok {
		return err
	}
	return ErrNoCredential
}

func credentialMessage(err error) string {
	switch {
	case errors.Is(err, ErrTokenExpired):
		return "token expired"
	case errors.Is(err, ErrTokenInvalid):
		return "invalid token"
	default:
		return "missing authorization header"
	}
}
