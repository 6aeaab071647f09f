package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/repairconnect/api/internal/api/dto"
	"github.com/repairconnect/api/internal/domain"
	"github.com/repairconnect/api/internal/service"
	apperrors "github.com/repairconnect/api/pkg/util"
)

// AuthHandler exposes registration and login endpoints.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: authService}
}

// Register handles POST /auth/register.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidation("invalid payload")
	}

	user, err := h.auth.Register(c.Context(), req.Name, req.Email, req.Password, domain.Role(req.Role))
	if err != nil {
		var domainErr *apperrors.DomainError
		if errors.As(err, &domainErr) && domainErr.HTTPStatus == fiber.StatusBadRequest {
			return err
		}
		// Duplicate emails and storage failures alike surface as a generic
		// failure; the cause is logged server-side.
		return apperrors.NewInternal("registration failed", err)
	}

	return c.JSON(fiber.Map{
		"message": "User registered",
		"user": dto.RegisteredUser{
			ID:    user.ID,
			Email: user.Email,
			Role:  string(user.Role),
		},
	})
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidation("invalid payload")
	}

	token, _, err := h.auth.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(dto.TokenResponse{Token: token})
}

// AdminLogin handles POST /auth/admin/login.
func (h *AuthHandler) AdminLogin(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidation("invalid payload")
	}

	token, _, err := h.auth.AdminLogin(req.Email, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(dto.TokenResponse{Token: token})
}
