package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/ChrisRistoff/RecipeHub/internal/api/dto"
	"github.com/ChrisRistoff/RecipeHub/internal/auth"
	"github.com/ChrisRistoff/RecipeHub/internal/service"
	apperrors "github.com/ChrisRistoff/RecipeHub/pkg/util"
)

// UsersHandler exposes registration, login and profile endpoints.
type UsersHandler struct {
	auth  *service.AuthService
	users *service.UserService
}

// NewUsersHandler constructs handler.
func NewUsersHandler(authService *service.AuthService, userService *service.UserService) *UsersHandler {
	return &UsersHandler{auth: authService, users: userService}
}

// Register handles POST /api/users.
func (h *UsersHandler) Register(c *fiber.Ctx) error {
	var req dto.UserRegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Username == "" || req.Password == "" || req.Name == "" {
		return apperrors.NewValidationError("username, name, password required", nil)
	}

	user, token, exp, err := h.auth.Register(c.UserContext(), service.RegisterInput{
		Username:   req.Username,
		Name:       req.Name,
		ProfileImg: req.ProfileImg,
		Password:   req.Password,
		Bio:        req.Bio,
	})
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"data": fiber.Map{
			"user": dto.NewUserResponse(user),
			"auth": dto.AuthResponse{Token: token, ExpiresAt: exp},
		},
	})
}

// Login handles POST /api/users/login.
func (h *UsersHandler) Login(c *fiber.Ctx) error {
	var req dto.UserLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Username == "" || req.Password == "" {
		return apperrors.NewValidationError("username and password required", nil)
	}

	user, token, exp, err := h.auth.Login(c.UserContext(), req.Username, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"user": dto.NewUserResponse(user),
			"auth": dto.AuthResponse{Token: token, ExpiresAt: exp},
		},
	})
}

// GetProfile handles GET /api/users/:userId.
func (h *UsersHandler) GetProfile(c *fiber.Ctx) error {
	userID, err := parseID(c, "userId")
	if err != nil {
		return err
	}

	user, err := h.users.GetProfile(c.UserContext(), userID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewUserResponse(user)})
}

// UpdateBio handles PATCH /api/users/:userId/bio.
func (h *UsersHandler) UpdateBio(c *fiber.Ctx) error {
	var req dto.UpdateBioRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	return h.updateProfile(c, func(claims *auth.Claims, userID int64) (err error) {
		user, err := h.users.UpdateBio(c.UserContext(), claims, userID, req.Bio)
		if err != nil {
			return err
		}
		return c.JSON(fiber.Map{"data": dto.NewUserResponse(user)})
	})
}

// UpdateProfileImg handles PATCH /api/users/:userId/img.
func (h *UsersHandler) UpdateProfileImg(c *fiber.Ctx) error {
	var req dto.UpdateProfileImgRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	return h.updateProfile(c, func(claims *auth.Claims, userID int64) error {
		user, err := h.users.UpdateProfileImg(c.UserContext(), claims, userID, req.ProfileImg)
		if err != nil {
			return err
		}
		return c.JSON(fiber.Map{"data": dto.NewUserResponse(user)})
	})
}

// UpdateName handles PATCH /api/users/:userId/name.
func (h *UsersHandler) UpdateName(c *fiber.Ctx) error {
	var req dto.UpdateNameRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Name == "" {
		return apperrors.NewValidationError("name required", nil)
	}
	return h.updateProfile(c, func(claims *auth.Claims, userID int64) error {
		user, err := h.users.UpdateName(c.UserContext(), claims, userID, req.Name)
		if err != nil {
			return err
		}
		return c.JSON(fiber.Map{"data": dto.NewUserResponse(user)})
	})
}

func (h *UsersHandler) updateProfile(c *fiber.Ctx, apply func(*auth.Claims, int64) error) error {
	userID, err := parseID(c, "userId")
	if err != nil {
		return err
	}
	claims, _ := auth.ClaimsFromContext(c)
	return credentialErr(c, apply(claims, userID))
}

func parseID(c *fiber.Ctx, param string) (int64, error) {
	id, err := strconv.ParseInt(c.Params(param), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.NewValidationError("invalid "+param, nil)
	}
	return id, nil
}

// credentialErr swaps the generic missing-credential error for the concrete
// token failure recorded by Authenticate, so a request carrying an expired or
// malformed token is reported as such rather than as absent.
func credentialErr(c *fiber.Ctx, err error) error {
	if errors.Is(err, auth.ErrNoCredential) {
		return auth.CredentialError(c)
	}
	return err
}
