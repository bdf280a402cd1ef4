package auth

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// AuthUseCase describes recruiter login.
type AuthUseCase interface {
	Login(ctx context.Context, password string) (AuthResult, error)
}

type AuthResult struct {
	Principal Principal
	Token     string
}

type authService struct {
	passwordHash []byte
	tokens       TokenGenerator
}

// NewAuthService returns default implementation of AuthUseCase. passwordHash is a
// bcrypt hash; when it is empty a plain password is hashed instead. With neither,
// every login fails with ErrLoginDisabled.
func NewAuthService(passwordHash, password string, tokens TokenGenerator) (AuthUseCase, error) {
	s := &authService{tokens: tokens}
	switch {
	case passwordHash != "":
		if _, err := bcrypt.Cost([]byte(passwordHash)); err != nil {
			return nil, fmt.Errorf("recruiter password hash: %w", err)
		}
		s.passwordHash = []byte(passwordHash)
	case password != "":
		h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		s.passwordHash = h
	}
	return s, nil
}

func (s *authService) Login(ctx context.Context, password string) (AuthResult, error) {
	if len(s.passwordHash) == 0 {
		return AuthResult{}, ErrLoginDisabled
	}
	if password == "" || bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)) != nil {
		return AuthResult{}, ErrInvalidCredentials
	}
	p := Principal{Subject: RoleRecruiter, Role: RoleRecruiter}
	token, err := s.tokens.Generate(ctx, p)
	if err != nil {
		return AuthResult{}, err
	}
	return AuthResult{Principal: p, Token: token}, nil
}
