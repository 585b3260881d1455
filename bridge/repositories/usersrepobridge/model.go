package usersrepobridge

import (
	"errors"
	"strings"
)

// SignupInput is the request shape for creating an account.
type SignupInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate checks the input for required fields.
func (i SignupInput) Validate() error {
	if strings.TrimSpace(i.Email) == "" {
		return errors.New("email is required")
	}

	if i.Password == "" {
		return errors.New("password is required")
	}

	return nil
}

// SignupResponse is returned on successful registration.
type SignupResponse struct {
	Message string `json:"message"`
	UserID  string `json:"userId"`
}

// LoginInput is the request shape for authenticating.
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate checks the input for required fields.
func (i LoginInput) Validate() error {
	if strings.TrimSpace(i.Email) == "" {
		return errors.New("email is required")
	}

	if i.Password == "" {
		return errors.New("password is required")
	}

	return nil
}

// LoginResponse carries the bearer token for subsequent requests.
type LoginResponse struct {
	Token string `json:"token"`
}
