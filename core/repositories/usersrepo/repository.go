// Package usersrepo manages user accounts and credential verification.
package usersrepo

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/rsalas/taskdeck/sdk/logger"
)

var (
	ErrNotFound             = errors.New("user not found")
	ErrEmailTaken           = errors.New("email already registered")
	ErrAuthenticationFailed = errors.New("authentication failed")
	ErrInvalidEmail         = errors.New("invalid email address")
	ErrPasswordTooShort     = errors.New("password must be at least 8 characters")
)

const minPasswordLength = 8

// bcryptCost stays at the library default; raising it is a config change,
// not a code change, if hashing latency becomes a concern.
const bcryptCost = bcrypt.DefaultCost

type Storer interface {
	Create(ctx context.Context, user User) (User, error)
	GetByID(ctx context.Context, userID string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
}

type Repository struct {
	log    *logger.Logger
	storer Storer
}

func NewRepository(log *logger.Logger, storer Storer) *Repository {
	return &Repository{
		log:    log,
		storer: storer,
	}
}

// Register creates an account with a hashed password. The email is
// normalized to lower case so lookups are case-insensitive.
func (r *Repository) Register(ctx context.Context, nu NewUser) (User, error) {
	email := strings.ToLower(strings.TrimSpace(nu.Email))
	if _, err := mail.ParseAddress(email); err != nil {
		return User{}, ErrInvalidEmail
	}

	if len(nu.Password) < minPasswordLength {
		return User{}, ErrPasswordTooShort
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(nu.Password), bcryptCost)
	if err != nil {
		return User{}, fmt.Errorf("hashing password: %w", err)
	}

	user, err := r.storer.Create(ctx, User{
		Email:        email,
		PasswordHash: string(hash),
	})
	if err != nil {
		return User{}, fmt.Errorf("creating user: %w", err)
	}

	r.log.Info("registered user", "user_id", user.UserID)

	return user, nil
}

// Authenticate verifies the credentials and returns the matching user.
// A missing account and a wrong password both produce
// ErrAuthenticationFailed so callers cannot probe for registered emails.
func (r *Repository) Authenticate(ctx context.Context, creds Credentials) (User, error) {
	email := strings.ToLower(strings.TrimSpace(creds.Email))

	user, err := r.storer.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return User{}, ErrAuthenticationFailed
		}
		return User{}, fmt.Errorf("fetching user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(creds.Password)); err != nil {
		return User{}, ErrAuthenticationFailed
	}

	return user, nil
}

func (r *Repository) GetByID(ctx context.Context, userID string) (User, error) {
	user, err := r.storer.GetByID(ctx, userID)
	if err != nil {
		return User{}, fmt.Errorf("fetching user %s: %w", userID, err)
	}

	return user, nil
}
