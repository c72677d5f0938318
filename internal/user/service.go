// Package user resolves accounts: credential lookup, login and the current caller.
package user

import (
	"context"
	"errors"
	"time"

	"github.com/MikeMC777/commerce-api/internal/apperr"
	"github.com/MikeMC777/commerce-api/internal/auth"
	"github.com/MikeMC777/commerce-api/internal/validation"
)

type TokenIssuer interface {
	Issue(p auth.Principal) (string, error)
	TTL() time.Duration
}

type Service struct {
	repo   Repository
	tokens TokenIssuer
}

func NewService(repo Repository, tokens TokenIssuer) *Service {
	return &Service{repo: repo, tokens: tokens}
}

// LoadUserByUsername returns the credentials and roles for email, or ErrNotFound.
func (s *Service) LoadUserByUsername(ctx context.Context, email string) (*User, error) {
	return s.repo.GetByEmail(ctx, email)
}

// Authenticated resolves the caller carried by ctx to a stored user.
func (s *Service) Authenticated(ctx context.Context) (*User, error) {
	p, ok := auth.PrincipalFrom(ctx)
	if !ok {
		return nil, apperr.Unauthenticated("invalid user", ErrNotFound)
	}
	u, err := s.repo.GetByEmail(ctx, p.Email)
	if errors.Is(err, ErrNotFound) {
		return nil, apperr.Unauthenticated("invalid user", err)
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (s *Service) GetMe(ctx context.Context) (*Profile, error) {
	u, err := s.Authenticated(ctx)
	if err != nil {
		return nil, err
	}
	p := u.Profile()
	return &p, nil
}

// Login checks the password against the stored hash and issues a bearer token.
// Unknown email and wrong password are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, in Credentials) (*Token, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	u, err := s.repo.GetByEmail(ctx, in.Email)
	if errors.Is(err, ErrNotFound) {
		return nil, apperr.Unauthenticated("bad credentials", nil)
	}
	if err != nil {
		return nil, err
	}
	if !CheckPassword(u.PasswordHash, in.Password) {
		return nil, apperr.Unauthenticated("bad credentials", nil)
	}
	tok, err := s.tokens.Issue(u.Principal())
	if err != nil {
		return nil, err
	}
	return &Token{
		AccessToken: tok,
		TokenType:   "Bearer",
		ExpiresIn:   int64(s.tokens.TTL() / time.Second),
	}, nil
}
