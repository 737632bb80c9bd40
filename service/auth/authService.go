package authsvc

import (
	"context"
	"errors"

	"glamrent/util/hash"
	jwtutil "glamrent/util/jwt"
)

var ErrInvalidCreds = errors.New("invalid credentials")

// Service authenticates the single admin principal and hands out the bearer
// token the admin routes require.
type Service interface {
	Login(ctx context.Context, username, password string) (string, error)
}

type service struct {
	username     string
	passwordHash string
	secret       string
}

func New(username, passwordHash, secret string) Service {
	return &service{username: username, passwordHash: passwordHash, secret: secret}
}

func (s *service) Login(ctx context.Context, username, password string) (string, error) {
	if username != s.username || !hash.Check(s.passwordHash, password) {
		return "", ErrInvalidCreds
	}
	return jwtutil.Issue(s.secret, username, "admin", 24)
}
