package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/electroleed/project-office/internal/core/domain"
	"github.com/electroleed/project-office/internal/core/ports"
	"github.com/electroleed/project-office/internal/security"
)

// AccountService is the administrative surface over user accounts.
type AccountService struct {
	creds     ports.CredentialRepository
	employees ports.EmployeeRepository
	logger    zerolog.Logger
}

func NewAccountService(creds ports.CredentialRepository, employees ports.EmployeeRepository, logger zerolog.Logger) *AccountService {
	return &AccountService{creds: creds, employees: employees, logger: logger}
}

func (s *AccountService) Get(ctx context.Context, login string) (*domain.Credential, error) {
	return s.creds.FindByLogin(ctx, login)
}

func (s *AccountService) List(ctx context.Context, opts ports.ListOptions) ([]domain.Credential, error) {
	return s.creds.List(ctx, opts)
}

// Update changes the password and/or role of an existing account. Empty
// fields are left untouched.
func (s *AccountService) Update(ctx context.Context, login string, upd ports.AccountUpdate) (*domain.Credential, error) {
	cred, err := s.creds.FindByLogin(ctx, login)
	if err != nil {
		return nil, err
	}

	if upd.Password != "" {
		hash, err := security.HashPassword(upd.Password)
		if err != nil {
			return nil, err
		}
		cred.PasswordHash = hash
	}
	if upd.Role != "" {
		role, err := domain.ParseRole(upd.Role)
		if err != nil {
			return nil, err
		}
		cred.Role = role
	}

	if err := s.creds.Update(ctx, cred); err != nil {
		return nil, err
	}
	s.logger.Info().Str("login", login).Msg("account updated")
	return cred, nil
}

// Delete removes the account and cascades to the 1:1 employee profile.
func (s *AccountService) Delete(ctx context.Context, login string) error {
	if err := s.creds.Delete(ctx, login); err != nil {
		return err
	}
	if err := s.employees.DeleteByAccountLogin(ctx, login); err != nil {
		return err
	}
	s.logger.Info().Str("login", login).Msg("account deleted")
	return nil
}
