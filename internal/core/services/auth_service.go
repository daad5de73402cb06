package services

import (
	"context"
	"fmt"

	"github.com/alazar/finance-backend/internal/apperrors"
	"github.com/alazar/finance-backend/internal/core/ports"
	"github.com/alazar/finance-backend/internal/utils"
)

// AuthService verifies the shared admin credential and manages the
// active-token set.
type AuthService struct {
	authRepo ports.AuthRepository
	tokens   ports.TokenStore
}

func NewAuthService(authRepo ports.AuthRepository, tokens ports.TokenStore) *AuthService {
	return &AuthService{authRepo: authRepo, tokens: tokens}
}

// Login checks the credential pair against the stored record. On success
// it mints a new token, adds it to the active set and returns it together
// with the canonical username. A mismatch yields apperrors.ErrUnauthorized.
func (s *AuthService) Login(ctx context.Context, username, password string) (token, user string, err error) {
	rec, err := s.authRepo.Load(ctx)
	if err != nil {
		return "", "", fmt.Errorf("failed to load auth record: %w", err)
	}

	if username != rec.Username || !utils.CheckPassword(password, rec.PasswordHash) {
		return "", "", apperrors.ErrUnauthorized
	}

	token = utils.GenerateToken()
	if err := s.tokens.Add(ctx, token); err != nil {
		return "", "", fmt.Errorf("failed to persist token: %w", err)
	}
	return token, rec.Username, nil
}

// Verify reports whether the token is in the active set.
func (s *AuthService) Verify(ctx context.Context, token string) bool {
	return s.tokens.Contains(ctx, token)
}

// Logout revokes the token. Revoking an unknown token is not an error.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	return s.tokens.Remove(ctx, token)
}
