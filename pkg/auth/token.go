package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/ecoechos/backend/pkg/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const issuer = "ecoechos"

// Claims are the claims of an access token. The subject is the user ID.
type Claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// UserID returns the subject as UUID.
func (c Claims) UserID() (uuid.UUID, error) {
	return uuid.Parse(c.Subject)
}

// Token is an issued access token.
type Token struct {
	Token     string    `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."` // HS256 signed JWT
	Type      string    `json:"type" example:"Bearer"`                                   // Always "Bearer"
	ExpiresAt time.Time `json:"expiresAt" example:"2025-03-15T12:00:00Z"`                // Time the token expires
}

// Issuer signs and verifies access tokens.
type Issuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewIssuer(secret string, ttl time.Duration) *Issuer {
	return &Issuer{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// Issue creates a token for the user.
func (i *Issuer) Issue(user models.User) (Token, error) {
	now := i.now()
	expires := now.Add(i.ttl)

	claims := Claims{
		Username: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expires),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return Token{}, fmt.Errorf("failed to generate token: %w", err)
	}

	return Token{
		Token:     signed,
		Type:      "Bearer",
		ExpiresAt: expires.UTC().Truncate(time.Second),
	}, nil
}

// Verify checks the signature and expiry of a token and returns its claims.
func (i *Issuer) Verify(token string) (Claims, error) {
	var claims Claims

	_, err := jwt.ParseWithClaims(token, &claims, func(_ *jwt.Token) (any, error) {
		return i.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(i.now),
	)
	if err != nil {
		return Claims{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	if _, err := claims.UserID(); err != nil {
		return Claims{}, fmt.Errorf("%w: %w", ErrInvalidToken, errors.New("subject is not a user ID"))
	}

	return claims, nil
}
