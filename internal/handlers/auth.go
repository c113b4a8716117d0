package handlers

import (
	"errors"
	"net/mail"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/example/maya-portal/internal/auth"
	"github.com/example/maya-portal/internal/config"
	"github.com/example/maya-portal/internal/middleware"
	"github.com/example/maya-portal/internal/models"
	"github.com/example/maya-portal/internal/store"
	"github.com/example/maya-portal/internal/utils"
)

// AuthHandler bundles dependencies for authentication endpoints.
type AuthHandler struct {
	users store.Users
	cfg   *config.Config
}

// NewAuthHandler constructs an AuthHandler.
func NewAuthHandler(users store.Users, cfg *config.Config) *AuthHandler {
	return &AuthHandler{users: users, cfg: cfg}
}

type registerRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

func (r *registerRequest) validate() string {
	if len(r.FirstName) < 2 || len(r.FirstName) > 50 {
		return "first_name must be between 2 and 50 characters"
	}
	if len(r.LastName) < 2 || len(r.LastName) > 50 {
		return "last_name must be between 2 and 50 characters"
	}
	if _, err := mail.ParseAddress(r.Email); err != nil {
		return "email must be a valid email address"
	}
	if len(r.Password) < 6 {
		return "password must be at least 6 characters"
	}
	return ""
}

// Register creates a new customer account and issues a session token.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if msg := req.validate(); msg != "" {
		return fiber.NewError(fiber.StatusBadRequest, msg)
	}

	if _, err := h.users.FindByEmail(c.Context(), req.Email); err == nil {
		return fiber.NewError(fiber.StatusConflict, "email already registered")
	} else if !errors.Is(err, store.ErrNotFound) {
		return err
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to hash password")
	}

	user := models.User{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		PasswordHash: passwordHash,
		Role:         models.RoleCustomer,
	}

	if err := h.users.Insert(c.Context(), &user); err != nil {
		if errors.Is(err, store.ErrDuplicateEmail) {
			return fiber.NewError(fiber.StatusConflict, "email already registered")
		}
		return err
	}

	token, err := h.issueToken(user)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to generate token")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"user":    userResponse(user),
		"token":   token,
	})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login authenticates an existing user. Unknown emails and wrong
// passwords produce identical responses.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if req.Email == "" || req.Password == "" {
		return fiber.NewError(fiber.StatusBadRequest, "email and password are required")
	}

	user, err := h.users.FindByEmail(c.Context(), req.Email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid email or password")
		}
		return err
	}

	if !utils.CheckPassword(user.PasswordHash, req.Password) {
		return fiber.NewError(fiber.StatusUnauthorized, "invalid email or password")
	}

	token, err := h.issueToken(*user)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to generate token")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"user":    userResponse(*user),
		"token":   token,
	})
}

// Me returns the authenticated user's profile.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	identity, ok := middleware.GetCurrentUser(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	user, err := h.users.FindByID(c.Context(), identity.ID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
		}
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"user":    userResponse(*user),
	})
}

func (h *AuthHandler) issueToken(user models.User) (string, error) {
	identity := auth.Identity{ID: user.ID, Email: user.Email, Role: user.Role}
	return auth.GenerateToken(h.cfg.JWTSecret, identity, h.cfg.TokenExpires, time.Now())
}

func userResponse(user models.User) fiber.Map {
	return fiber.Map{
		"id":         user.ID,
		"first_name": user.FirstName,
		"last_name":  user.LastName,
		"email":      user.Email,
		"role":       user.Role,
	}
}
