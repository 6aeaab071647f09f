package auth

import (
	"errors"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/repairconnect/api/internal/domain"
)

// TokenManager handles issuing and validating JWT tokens.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenManager builds a new manager. Tokens default to a 2 hour lifetime.
func NewTokenManager(secret string, ttlMinutes int) *TokenManager {
	if ttlMinutes <= 0 {
		ttlMinutes = 120
	}
	return &TokenManager{secret: []byte(secret), ttl: time.Duration(ttlMinutes) * time.Minute}
}

// Claims describes the JWT payload. UserID is nil for admin tokens, which are
// issued against configured credentials rather than a stored account. Status
// is the account status at issuance time and is empty for admin tokens.
type Claims struct {
	UserID *int64            `json:"id,omitempty"`
	Email  string            `json:"email"`
	Role   domain.Role       `json:"role"`
	Status domain.UserStatus `json:"status,omitempty"`
	jwt.RegisteredClaims
}

// GenerateUserToken signs a token for a stored account.
func (tm *TokenManager) GenerateUserToken(user *domain.User) (string, time.Time, error) {
	id := user.ID
	return tm.generate(&Claims{
		UserID: &id,
		Email:  user.Email,
		Role:   user.Role,
		Status: user.Status,
	})
}

// GenerateAdminToken signs a role=admin token carrying no account id.
func (tm *TokenManager) GenerateAdminToken(email string) (string, time.Time, error) {
	return tm.generate(&Claims{
		Email: email,
		Role:  domain.RoleAdmin,
	})
}

func (tm *TokenManager) generate(claims *Claims) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(tm.ttl)
	claims.RegisteredClaims = jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(expiresAt),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(tm.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return tokenString, expiresAt, nil
}

// ParseToken validates signature and expiry and returns the decoded claims.
func (tm *TokenManager) ParseToken(tokenStr string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return tm.secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, errors.New("invalid token claims")
	}
	return claims, nil
}
