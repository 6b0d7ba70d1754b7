package auth

import (
	"context"
	"errors"

	"github.com/vibeventz/ms-go-vendor-admin/app/entity"
)

var ErrUnknownIdentity = errors.New("unknown identity")

type userFinder interface {
	FindByAuthID(ctx context.Context, authUserID string) (*entity.User, error)
}

type tokenVerifier interface {
	Subject(tokenString string) (string, error)
}

// Service resolves bearer tokens to store identities. The role carried on an
// Identity always comes from the users table, never from token claims.
type Service struct {
	verifier tokenVerifier
	users    userFinder
}

func NewService(verifier tokenVerifier, users userFinder) *Service {
	return &Service{verifier: verifier, users: users}
}

func (s *Service) ResolveIdentity(ctx context.Context, tokenString string) (Identity, error) {
	subject, err := s.verifier.Subject(tokenString)
	if err != nil {
		return Identity{}, err
	}

	user, err := s.users.FindByAuthID(ctx, subject)
	if err != nil {
		return Identity{}, err
	}
	if user == nil {
		return Identity{}, ErrUnknownIdentity
	}

	return Identity{
		UserID:     user.ID,
		AuthUserID: user.AuthUserID,
		Email:      user.Email,
		Role:       user.Role,
	}, nil
}
