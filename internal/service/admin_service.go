package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/repairconnect/api/internal/domain"
	"github.com/repairconnect/api/internal/events"
	"github.com/repairconnect/api/internal/persistence"
	"github.com/repairconnect/api/internal/repository"
	apperrors "github.com/repairconnect/api/pkg/util"
)

// DefaultSuspendHours applies when a suspend request carries no usable duration.
const DefaultSuspendHours = 24

const (
	summaryCacheKey = "admin:summary"
	summaryCacheTTL = 30 * time.Second
)

// SummaryStats aggregates account counts for the admin dashboard.
type SummaryStats struct {
	TotalUsers     int64 `json:"totalUsers"`
	ActiveUsers    int64 `json:"activeUsers"`
	SuspendedUsers int64 `json:"suspendedUsers"`
	BannedUsers    int64 `json:"bannedUsers"`
}

// AdminService implements admin user management.
type AdminService struct {
	users      repository.UserRepository
	cache      *persistence.Redis
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewAdminService builds the service. cache may be nil; the summary then
// always hits the database.
func NewAdminService(users repository.UserRepository, cache *persistence.Redis, dispatcher events.Dispatcher, logger *zap.Logger) *AdminService {
	return &AdminService{users: users, cache: cache, dispatcher: dispatcher, logger: logger}
}

// ListUsers returns all accounts ordered by id ascending.
func (s *AdminService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.users.List(ctx)
}

// DeleteUser hard-deletes an account and returns the deleted id.
func (s *AdminService) DeleteUser(ctx context.Context, id int64) (int64, error) {
	if err := s.users.Delete(ctx, id); err != nil {
		if err == pgx.ErrNoRows {
			return 0, apperrors.NewNotFound("user")
		}
		return 0, err
	}
	s.publish(ctx, events.EventUserDeleted, id, "", nil)
	return id, nil
}

// SuspendUser sets status=suspended until now plus the given hours.
// Non-positive hours fall back to the default of 24.
func (s *AdminService) SuspendUser(ctx context.Context, id int64, durationHours int) (*domain.User, error) {
	if durationHours <= 0 {
		durationHours = DefaultSuspendHours
	}
	until := time.Now().Add(time.Duration(durationHours) * time.Hour)

	user, err := s.setStatus(ctx, id, domain.UserStatusSuspended, &until)
	if err != nil {
		return nil, err
	}
	s.logger.Warn("user suspended",
		zap.Int64("user_id", id),
		zap.Int("duration_hours", durationHours),
		zap.Time("suspended_until", until))
	s.publish(ctx, events.EventUserSuspended, user.ID, user.Email, events.UserSuspendedPayload{
		DurationHours:  durationHours,
		SuspendedUntil: until,
	})
	return user, nil
}

// BanUser sets status=banned and clears any suspension expiry.
func (s *AdminService) BanUser(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.setStatus(ctx, id, domain.UserStatusBanned, nil)
	if err != nil {
		return nil, err
	}
	s.publish(ctx, events.EventUserBanned, user.ID, user.Email, nil)
	return user, nil
}

// ActivateUser sets status=active and clears any suspension expiry.
func (s *AdminService) ActivateUser(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.setStatus(ctx, id, domain.UserStatusActive, nil)
	if err != nil {
		return nil, err
	}
	s.publish(ctx, events.EventUserReactivated, user.ID, user.Email, nil)
	return user, nil
}

// Summary returns account counts by status, cached briefly in redis.
func (s *AdminService) Summary(ctx context.Context) (*SummaryStats, error) {
	if cached, ok := s.cache.GetString(ctx, summaryCacheKey); ok {
		var stats SummaryStats
		if err := json.Unmarshal([]byte(cached), &stats); err == nil {
			return &stats, nil
		}
	}

	counts, err := s.users.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}

	stats := &SummaryStats{
		ActiveUsers:    counts[domain.UserStatusActive],
		SuspendedUsers: counts[domain.UserStatusSuspended],
		BannedUsers:    counts[domain.UserStatusBanned],
	}
	stats.TotalUsers = stats.ActiveUsers + stats.SuspendedUsers + stats.BannedUsers

	if encoded, err := json.Marshal(stats); err == nil {
		s.cache.SetString(ctx, summaryCacheKey, string(encoded), summaryCacheTTL)
	}
	return stats, nil
}

func (s *AdminService) setStatus(ctx context.Context, id int64, status domain.UserStatus, until *time.Time) (*domain.User, error) {
	user, err := s.users.SetStatus(ctx, id, status, until)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("user")
		}
		return nil, err
	}
	return user, nil
}

func (s *AdminService) publish(ctx context.Context, eventType events.EventType, userID int64, email string, payload interface{}) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		UserID:    userID,
		Email:     email,
		Timestamp: time.Now(),
		Payload:   payload,
	})
}
