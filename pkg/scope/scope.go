// Package scope issues and verifies the JWTs that carry a caller's identity.
package scope

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	DefaultTTL = 24 * time.Hour
	issuer     = "api-scaffold"
)

var (
	ErrInvalidToken = errors.New("scope: invalid token")
	ErrMissingKey   = errors.New("scope: secret key is required")
)

// Payload is the authenticated caller.
type Payload struct {
	UserID int64
	Email  string
	Role   string
}

type claims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// Manager issues and verifies tokens.
type Manager interface {
	CreateToken(p Payload) (string, error)
	Verify(token string) (Payload, error)
}

type implManager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// New returns an HS256 Manager.
func New(secretKey string, ttl time.Duration) (Manager, error) {
	if secretKey == "" {
		return nil, ErrMissingKey
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &implManager{secret: []byte(secretKey), ttl: ttl, now: time.Now}, nil
}

func (m *implManager) CreateToken(p Payload) (string, error) {
	now := m.now()
	c := claims{
		Email: p.Email,
		Role:  p.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(p.UserID, 10),
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("scope: sign token: %w", err)
	}
	return token, nil
}

func (m *implManager) Verify(token string) (Payload, error) {
	var c claims
	_, err := jwt.ParseWithClaims(token, &c, func(t *jwt.Token) (any, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		return Payload{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	id, err := strconv.ParseInt(c.Subject, 10, 64)
	if err != nil {
		return Payload{}, fmt.Errorf("%w: subject %q", ErrInvalidToken, c.Subject)
	}
	return Payload{UserID: id, Email: c.Email, Role: c.Role}, nil
}

type payloadKey struct{}

// SetPayloadToContext stores p on ctx.
func SetPayloadToContext(ctx context.Context, p Payload) context.Context {
	return context.WithValue(ctx, payloadKey{}, p)
}

// GetPayloadFromContext returns the payload stored by SetPayloadToContext.
func GetPayloadFromContext(ctx context.Context) (Payload, bool) {
	p, ok := ctx.Value(payloadKey{}).(Payload)
	return p, ok
}
