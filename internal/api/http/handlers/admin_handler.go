package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/repairconnect/api/internal/api/dto"
	"github.com/repairconnect/api/internal/service"
	apperrors "github.com/repairconnect/api/pkg/util"
)

// AdminHandler exposes admin user management endpoints.
type AdminHandler struct {
	admin *service.AdminService
}

// NewAdminHandler constructs handler.
func NewAdminHandler(adminService *service.AdminService) *AdminHandler {
	return &AdminHandler{admin: adminService}
}

// Summary handles GET /admin/summary.
func (h *AdminHandler) Summary(c *fiber.Ctx) error {
	stats, err := h.admin.Summary(c.Context())
	if err != nil {
		return apperrors.NewInternal("failed to load summary", err)
	}
	return c.JSON(fiber.Map{
		"message": "Welcome, Admin!",
		"stats":   stats,
	})
}

// ListUsers handles GET /admin/users.
func (h *AdminHandler) ListUsers(c *fiber.Ctx) error {
	users, err := h.admin.ListUsers(c.Context())
	if err != nil {
		return apperrors.NewInternal("failed to load users", err)
	}
	return c.JSON(dto.NewUserListResponse(users))
}

// DeleteUser handles DELETE /admin/users/:id.
func (h *AdminHandler) DeleteUser(c *fiber.Ctx) error {
	id, err := parseUserID(c)
	if err != nil {
		return err
	}

	deletedID, err := h.admin.DeleteUser(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "User deleted", "id": deletedID})
}

// SuspendUser handles POST /admin/users/:id/suspend.
func (h *AdminHandler) SuspendUser(c *fiber.Ctx) error {
	id, err := parseUserID(c)
	if err != nil {
		return err
	}

	var req dto.SuspendRequest
	_ = c.BodyParser(&req)

	user, err := h.admin.SuspendUser(c.Context(), id, durationHours(req.Duration))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewUserResponse(user))
}

// BanUser handles POST /admin/users/:id/ban.
func (h *AdminHandler) BanUser(c *fiber.Ctx) error {
	id, err := parseUserID(c)
	if err != nil {
		return err
	}

	user, err := h.admin.BanUser(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewUserResponse(user))
}

// ActivateUser handles POST /admin/users/:id/activate.
func (h *AdminHandler) ActivateUser(c *fiber.Ctx) error {
	id, err := parseUserID(c)
	if err != nil {
		return err
	}

	user, err := h.admin.ActivateUser(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewUserResponse(user))
}

func parseUserID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return 0, apperrors.NewValidation("invalid user id")
	}
	return id, nil
}

// durationHours extracts suspension hours from a loosely typed request value.
// Absent or non-numeric values fall back to the default.
func durationHours(v any) int {
	switch d := v.(type) {
	case float64:
		if d > 0 {
			return int(d)
		}
	case string:
		if n, err := strconv.Atoi(d); err == nil && n > 0 {
			return n
		}
	}
	return service.DefaultSuspendHours
}
