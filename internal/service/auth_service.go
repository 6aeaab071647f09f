package service

import (
	"context"
	"crypto/subtle"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/repairconnect/api/internal/auth"
	"github.com/repairconnect/api/internal/config"
	"github.com/repairconnect/api/internal/domain"
	"github.com/repairconnect/api/internal/events"
	"github.com/repairconnect/api/internal/repository"
	apperrors "github.com/repairconnect/api/pkg/util"
)

// AuthService coordinates registration and login flows.
type AuthService struct {
	users      repository.UserRepository
	tokenMgr   *auth.TokenManager
	dispatcher events.Dispatcher
	admin      config.AdminConfig
	bcryptCost int
	now        func() time.Time
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, users repository.UserRepository, dispatcher events.Dispatcher) *AuthService {
	return &AuthService{
		users:      users,
		tokenMgr:   auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTLMinutes),
		dispatcher: dispatcher,
		admin:      cfg.Admin,
		bcryptCost: cfg.Auth.BcryptCost,
		now:        time.Now,
	}
}

// Register creates a new account with status active. An empty role defaults
// to customer; admin is never a stored role and is rejected.
func (s *AuthService) Register(ctx context.Context, name, email, password string, role domain.Role) (*domain.User, error) {
	if name == "" || email == "" || password == "" {
		return nil, apperrors.NewValidation("name, email, password required")
	}
	if role == "" {
		role = domain.RoleCustomer
	}
	if !domain.ValidRegistrationRole(role) {
		return nil, apperrors.NewValidation(fmt.Sprintf("invalid role %q", role))
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		Status:       domain.UserStatusActive,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if err == repository.ErrDuplicateEmail {
			return nil, apperrors.NewConflict("email already registered")
		}
		return nil, err
	}

	s.publish(ctx, events.EventUserRegistered, user, events.UserRegisteredPayload{Role: user.Role})
	return user, nil
}

// Login authenticates a stored account. The status gate runs before password
// verification: banned accounts are rejected outright, active suspensions are
// rejected with the remaining whole hours, and expired suspensions are
// reactivated in place (lazy expiry).
func (s *AuthService) Login(ctx context.Context, email, password string) (string, time.Time, error) {
	if email == "" || password == "" {
		return "", time.Time{}, apperrors.NewValidation("email and password required")
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if err == pgx.ErrNoRows {
			return "", time.Time{}, apperrors.NewUnauthorized("user not found")
		}
		return "", time.Time{}, err
	}

	switch user.Status {
	case domain.UserStatusBanned:
		return "", time.Time{}, apperrors.NewForbidden("your account has been permanently banned")
	case domain.UserStatusSuspended:
		now := s.now()
		if user.SuspendedUntil != nil && user.SuspendedUntil.After(now) {
			remaining := int(math.Ceil(user.SuspendedUntil.Sub(now).Hours()))
			return "", time.Time{}, apperrors.NewForbidden(
				fmt.Sprintf("your account is suspended for another %d hour(s)", remaining))
		}
		// Suspension expired: reactivate before issuing a token.
		if err := s.users.ClearExpiredSuspension(ctx, user.ID); err != nil {
			return "", time.Time{}, err
		}
		user.Status = domain.UserStatusActive
		user.SuspendedUntil = nil
		s.publish(ctx, events.EventUserReactivated, user, nil)
	}

	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		return "", time.Time{}, apperrors.NewUnauthorized("invalid password")
	}

	return s.tokenMgr.GenerateUserToken(user)
}

// AdminLogin checks the supplied credentials against the configured admin
// values and issues a role=admin token. The comparison is against plaintext
// configuration, a known limitation of this auth path.
func (s *AuthService) AdminLogin(email, password string) (string, time.Time, error) {
	emailOK := subtle.ConstantTimeCompare([]byte(email), []byte(s.admin.Email)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(s.admin.Password)) == 1
	if !emailOK || !passOK {
		return "", time.Time{}, apperrors.NewUnauthorized("invalid credentials")
	}
	return s.tokenMgr.GenerateAdminToken(email)
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}

func (s *AuthService) publish(ctx context.Context, eventType events.EventType, user *domain.User, payload interface{}) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		UserID:    user.ID,
		Email:     user.Email,
		Timestamp: s.now(),
		Payload:   payload,
	})
}
