package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"sync/atomic"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAdminLoginDisabled = errors.New("admin password is not configured")
)

type AdminCredentials struct {
	Username string
	Password string
}

// AuthService checks submitted credentials against the single shared admin
// credential. The pair can be swapped at runtime with SetCredentials.
type AuthService struct {
	creds atomic.Pointer[AdminCredentials]
}

func NewAuthService(creds AdminCredentials) *AuthService {
	s := &AuthService{}
	s.SetCredentials(creds)

	return s
}

func (s *AuthService) SetCredentials(creds AdminCredentials) {
	s.creds.Store(&creds)
}

// LoginEnabled reports whether a password is configured at all.
func (s *AuthService) LoginEnabled() bool {
	return s.creds.Load().Password != ""
}

func (s *AuthService) Login(_ context.Context, username, password string) error {
	creds := s.creds.Load()
	if creds.Password == "" {
		return ErrAdminLoginDisabled
	}

	// Compare both fields so the outcome does not reveal which one was wrong.
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(creds.Username))
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(creds.Password))
	if userOK&passOK != 1 {
		return ErrInvalidCredentials
	}

	return nil
}
