// Package session owns the authenticated-admin lifecycle: token issuance at
// login, validation on every request, and revocation at logout. Tokens are
// HS256 JWTs; the client keeps the token, so a reload presents the same
// session without re-authenticating.
package session

import (
	"errors"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/nadhifr/quizadmin/internal/models"
)

var (
	ErrInvalidToken = errors.New("invalid or expired token")
	ErrRevoked      = errors.New("session has been logged out")
)

const (
	purposeSession = "session"
	purposeReset   = "reset"
)

// Identity is the authenticated admin carried by a valid session token.
type Identity struct {
	AdminID uuid.UUID
	Email   string
	Name    string
	TokenID string
}

type Store struct {
	secret []byte
	ttl    time.Duration

	mu      sync.RWMutex
	revoked map[string]time.Time
}

func NewStore(secret string, ttl time.Duration) *Store {
	return &Store{
		secret:  []byte(secret),
		ttl:     ttl,
		revoked: make(map[string]time.Time),
	}
}

// Issue signs a session token for the admin.
func (s *Store) Issue(admin *models.Admin) (string, error) {
	return s.sign(admin, purposeSession, s.ttl)
}

// IssueReset signs a short-lived token usable only for a password reset.
func (s *Store) IssueReset(admin *models.Admin) (string, error) {
	return s.sign(admin, purposeReset, time.Hour)
}

func (s *Store) sign(admin *models.Admin, purpose string, ttl time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"admin_id": admin.ID.String(),
		"email":    admin.Email,
		"name":     admin.Name,
		"purpose":  purpose,
		"jti":      uuid.NewString(),
		"iat":      now.Unix(),
		"exp":      now.Add(ttl).Unix(),
	})
	return token.SignedString(s.secret)
}

// Validate parses a session token and returns the identity it carries.
// Reset tokens are rejected here; they never grant a session.
func (s *Store) Validate(tokenString string) (*Identity, error) {
	claims, err := s.parse(tokenString, purposeSession)
	if err != nil {
		return nil, err
	}

	jti, _ := claims["jti"].(string)
	s.mu.RLock()
	_, isRevoked := s.revoked[jti]
	s.mu.RUnlock()
	if isRevoked {
		return nil, ErrRevoked
	}

	adminID, err := uuid.Parse(claimString(claims, "admin_id"))
	if err != nil {
		return nil, ErrInvalidToken
	}

	return &Identity{
		AdminID: adminID,
		Email:   claimString(claims, "email"),
		Name:    claimString(claims, "name"),
		TokenID: jti,
	}, nil
}

// ValidateReset returns the admin id a reset token was issued for.
func (s *Store) ValidateReset(tokenString string) (uuid.UUID, error) {
	claims, err := s.parse(tokenString, purposeReset)
	if err != nil {
		return uuid.Nil, err
	}
	adminID, err := uuid.Parse(claimString(claims, "admin_id"))
	if err != nil {
		return uuid.Nil, ErrInvalidToken
	}
	return adminID, nil
}

// Revoke invalidates a token id. Expired entries are pruned opportunistically
// so the revocation list does not grow without bound.
func (s *Store) Revoke(tokenID string) {
	if tokenID == "" {
		return
	}
	now := time.Now()
	s.mu.Lock()
	defer s.mu.Unlock()
	for jti, at := range s.revoked {
		if now.Sub(at) > s.ttl {
			delete(s.revoked, jti)
		}
	}
	s.revoked[tokenID] = now
}

func (s *Store) parse(tokenString, purpose string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}
	if claimString(claims, "purpose") != purpose {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

func claimString(claims jwt.MapClaims, key string) string {
	v, _ := claims[key].(string)
	return v
}
