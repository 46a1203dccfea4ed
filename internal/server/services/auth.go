// Package services contains the server-side business logic, one service per
// concern, each depending only on repository interfaces and the user table.
package services

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/rashii/rashii/internal/common"
	"github.com/rashii/rashii/internal/server/users"
)

// AuthService verifies a submitted PIN against the fixed user table. There
// is no rate limiting and no lockout; both are documented absences.
type AuthService struct {
	registry *users.Registry
}

func NewAuthService(registry *users.Registry) *AuthService {
	return &AuthService{registry: registry}
}

// Login returns the user on a successful PIN check. Unknown user ids and
// wrong PINs are indistinguishable to the caller: both are unauthorized.
func (s *AuthService) Login(ctx context.Context, userID, pin string) (users.User, error) {
	user, ok := s.registry.Get(userID)
	if !ok {
		return users.User{}, common.ErrorUnauthorized
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PinHash), []byte(pin)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return users.User{}, common.ErrorUnauthorized
		}
		return users.User{}, common.ErrorInternal
	}

	return user, nil
}
