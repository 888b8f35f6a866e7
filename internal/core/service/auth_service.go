package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/electroleed/project-office/internal/core/domain"
	"github.com/electroleed/project-office/internal/core/ports"
	"github.com/electroleed/project-office/internal/security"
)

// AuthService implements login and registration over the credential store.
type AuthService struct {
	repo   ports.CredentialRepository
	codec  *security.Codec
	logger zerolog.Logger
}

func NewAuthService(repo ports.CredentialRepository, codec *security.Codec, logger zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, codec: codec, logger: logger}
}

// Login authenticates the login/password pair and issues a session token.
// An unknown login and a wrong password both collapse to
// domain.ErrInvalidCredentials so the response cannot be used to enumerate
// accounts. The token payload carries requestedRole verbatim when given;
// the returned role is always the stored one.
func (s *AuthService) Login(ctx context.Context, login, password, requestedRole string) (*ports.LoginResult, error) {
	if login == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	cred, err := s.repo.FindByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !security.VerifyPassword(password, cred.PasswordHash) {
		s.logger.Warn().Str("login", login).Msg("password mismatch")
		return nil, domain.ErrInvalidCredentials
	}

	tokenRole := requestedRole
	if tokenRole == "" {
		tokenRole = string(cred.Role)
	}

	token, err := s.codec.Issue(cred.Login, tokenRole)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("login", login).Str("role", string(cred.Role)).Msg("login succeeded")
	return &ports.LoginResult{Token: token, Role: cred.Role}, nil
}

// Register creates a credential and issues a token for it. Login uniqueness
// is enforced by the repository's storage-level constraint, so a concurrent
// duplicate registration surfaces as domain.ErrUserExists here.
func (s *AuthService) Register(ctx context.Context, login, password string, role domain.Role) (*ports.LoginResult, error) {
	if login == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}
	if _, err := domain.ParseRole(string(role)); err != nil {
		return nil, err
	}

	hash, err := security.HashPassword(password)
	if err != nil {
		return nil, err
	}

	cred := &domain.Credential{Login: login, PasswordHash: hash, Role: role}
	if err := s.repo.Create(ctx, cred); err != nil {
		return nil, err
	}

	token, err := s.codec.Issue(cred.Login, string(cred.Role))
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("login", login).Str("role", string(role)).Msg("user registered")
	return &ports.LoginResult{Token: token, Role: cred.Role}, nil
}
