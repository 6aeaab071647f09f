package dto

import (
	"time"

	"github.com/repairconnect/api/internal/domain"
)

// SuspendRequest carries the optional suspension duration. The frontend sends
// the duration as a number, but absent or malformed values fall back to the
// default, so the field is decoded loosely.
type SuspendRequest struct {
	Duration any `json:"duration"`
}

// UserResponse is the client-facing account shape. The password hash never
// leaves the server.
type UserResponse struct {
	ID             int64      `json:"id"`
	Name           string     `json:"name"`
	Email          string     `json:"email"`
	Role           string     `json:"role"`
	Status         string     `json:"status"`
	SuspendedUntil *time.Time `json:"suspended_until"`
}

// NewUserResponse maps a domain user to its client-facing shape.
func NewUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:             user.ID,
		Name:           user.Name,
		Email:          user.Email,
		Role:           string(user.Role),
		Status:         string(user.Status),
		SuspendedUntil: user.SuspendedUntil,
	}
}

// NewUserListResponse maps a slice of domain users.
func NewUserListResponse(users []domain.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for i := range users {
		out = append(out, NewUserResponse(&users[i]))
	}
	return out
}
