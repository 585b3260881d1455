// Package tokens mints and validates the bearer tokens that carry a
// session's user identity.
package tokens

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/rsalas/taskdeck/sdk/environment"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("expired token")
)

// Claims is the JWT payload. UserID identifies the session owner.
type Claims struct {
	UserID string `json:"uid"`
	jwt.RegisteredClaims
}

// Options is the exportable configuration struct.
type Options struct {
	SigningKey string        `env:"JWT_SIGNING_KEY" required:"true"`
	Issuer     string        `env:"JWT_ISSUER" default:"taskdeck"`
	TTL        time.Duration `env:"JWT_TTL" default:"24h"`
}

// Tokens signs and parses session tokens with a shared HMAC key.
type Tokens struct {
	signingKey []byte
	issuer     string
	ttl        time.Duration
}

// NewFromEnv creates a Tokens instance configured from prefixed environment
// variables.
func NewFromEnv(prefix string) (*Tokens, error) {
	var opts Options
	if err := environment.ParseEnvTags(prefix, &opts); err != nil {
		return nil, fmt.Errorf("parsing tokens config: %w", err)
	}
	return New(opts), nil
}

// New creates a Tokens instance from explicit options.
func New(opts Options) *Tokens {
	ttl := opts.TTL
	if ttl == 0 {
		ttl = 24 * time.Hour
	}
	return &Tokens{
		signingKey: []byte(opts.SigningKey),
		issuer:     opts.Issuer,
		ttl:        ttl,
	}
}

// Generate mints a signed token for the given user id.
func (t *Tokens) Generate(userID string) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    t.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(t.signingKey)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}
	return signed, nil
}

// Parse validates a signed token and returns its claims.
func (t *Tokens) Parse(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(tok *jwt.Token) (any, error) {
		if _, ok := tok.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", tok.Header["alg"])
		}
		return t.signingKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.UserID == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
