package service

import (
	"context"
	"errors"

	"notes-app/models"
	"notes-app/store"
	"notes-app/token"

	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	users  store.UserStore
	tokens *token.Service
}

func NewAuthService(users store.UserStore, tokens *token.Service) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

// Signup registers a new USER account. The raw password is hashed before it
// is persisted and never logged.
func (s *AuthService) Signup(ctx context.Context, name, email, password string) (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	u := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         models.RoleUser,
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// Signin checks credentials and issues a session token with the email as
// subject. Unknown email and wrong password fail identically.
func (s *AuthService) Signin(ctx context.Context, email, password string) (string, *models.User, error) {
	u, err := s.users.ByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return "", nil, ErrInvalidCredentials
	}
	signed, err := s.tokens.Issue(u.Email)
	if err != nil {
		return "", nil, err
	}
	return signed, u, nil
}
