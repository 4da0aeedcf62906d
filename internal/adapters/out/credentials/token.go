package credentials

import (
	"errors"
	"fmt"
	"time"

	"laborders/internal/core/domain/model/kernel"
	"laborders/internal/core/ports"

	"github.com/golang-jwt/jwt/v5"
)

const issuer = "laborders"

// JWTIssuer implements ports.TokenIssuer with HS256-signed tokens whose subject is the user id.
type JWTIssuer struct {
	secret    []byte
	expiresIn time.Duration
	now       func() time.Time
}

// Option customizes a JWTIssuer.
type Option func(*JWTIssuer)

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(i *JWTIssuer) {
		i.now = now
	}
}

func NewJWTIssuer(secret string, expiresIn time.Duration, opts ...Option) (*JWTIssuer, error) {
	if secret == "" {
		return nil, errors.New("jwt secret is required")
	}
	if expiresIn <= 0 {
		return nil, fmt.Errorf("jwt expiration must be positive, got %s", expiresIn)
	}

	issuerInstance := &JWTIssuer{secret: []byte(secret), expiresIn: expiresIn, now: time.Now}
	for _, opt := range opts {
		opt(issuerInstance)
	}
	return issuerInstance, nil
}

func (i *JWTIssuer) Issue(userID kernel.UUID) (string, error) {
	if err := userID.Validate(); err != nil {
		return "", err
	}

	now := i.now()
	claims := jwt.RegisteredClaims{
		Subject:   userID.String(),
		Issuer:    issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(i.expiresIn)),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify returns ports.ErrInvalidToken for any malformed, tampered, expired or foreign token.
func (i *JWTIssuer) Verify(token string) (kernel.UUID, error) {
	var claims jwt.RegisteredClaims
	parsed, err := jwt.ParseWithClaims(token, &claims,
		func(*jwt.Token) (any, error) { return i.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(i.now),
	)
	if err != nil || !parsed.Valid {
		return kernel.UUID{}, fmt.Errorf("%w: %w", ports.ErrInvalidToken, err)
	}

	userID, err := kernel.UUIDFromString(claims.Subject)
	if err != nil {
		return kernel.UUID{}, fmt.Errorf("%w: %w", ports.ErrInvalidToken, err)
	}
	return userID, nil
}
