package domain

import "time"

// Role identifies what kind of account a stored user holds. Admin is not a
// stored role: admin identity exists only in tokens issued against the
// statically configured credentials.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleProvider Role = "provider"
	RoleAdmin    Role = "admin"
)

// UserStatus represents lifecycle states for an account.
type UserStatus string

const (
	UserStatusActive    UserStatus = "active"
	UserStatusSuspended UserStatus = "suspended"
	UserStatusBanned    UserStatus = "banned"
)

// User is the domain model for registered accounts.
type User struct {
	ID             int64
	Name           string
	Email          string
	PasswordHash   string
	Role           Role
	Status         UserStatus
	SuspendedUntil *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// ValidRegistrationRole reports whether a role may be assigned at registration.
func ValidRegistrationRole(r Role) bool {
	return r == RoleCustomer || r == RoleProvider
}
