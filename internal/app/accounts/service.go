package accounts

import (
	"context"
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"cervejaria-pos/internal/adapter/logger"
	"cervejaria-pos/internal/domain"
	"cervejaria-pos/internal/interfaces"
)

// Service manages login accounts. Passwords are stored as bcrypt
// hashes only.
type Service struct {
	users  interfaces.UserRepository
	logger logger.Logger
}

func NewService(users interfaces.UserRepository, logger logger.Logger) *Service {
	return &Service{users: users, logger: logger}
}

func (s *Service) CreateUser(ctx context.Context, cmd interfaces.CreateUserCommand) (*domain.User, error) {
	if len(cmd.Password) < domain.MinPasswordLength {
		return nil, domain.ErrValidation
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cmd.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Name:         cmd.Name,
		Email:        strings.ToLower(strings.TrimSpace(cmd.Email)),
		PasswordHash: string(hash),
		Role:         cmd.Role,
		Active:       true,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	if err := s.users.Create(ctx, user); err != nil {
		s.logger.Error("user_create_failed", "Failed to create user", "", nil, err)
		return nil, err
	}

	return user, nil
}

func (s *Service) GetUser(ctx context.Context, id int) (*domain.User, error) {
	return s.users.FindByID(ctx, id)
}

func (s *Service) ListUsers(ctx context.Context, activeOnly bool) ([]*domain.User, error) {
	return s.users.FindAll(ctx, activeOnly)
}

func (s *Service) UpdateUser(ctx context.Context, id int, cmd interfaces.CreateUserCommand) (*domain.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if cmd.Name != "" {
		user.Name = cmd.Name
	}
	if cmd.Email != "" {
		user.Email = strings.ToLower(strings.TrimSpace(cmd.Email))
	}
	if cmd.Role != "" {
		user.Role = cmd.Role
	}
	if cmd.Password != "" {
		if len(cmd.Password) < domain.MinPasswordLength {
			return nil, domain.ErrValidation
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(cmd.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *Service) DeactivateUser(ctx context.Context, id int) error {
	return s.users.SetActive(ctx, id, false)
}

// Authenticate returns the active user matching the credentials. A
// missing user, an inactive one and a bad password all collapse into
// ErrInvalidCredentials so callers cannot probe for accounts.
func (s *Service) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.users.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}
	if !user.Active {
		return nil, domain.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	return user, nil
}
