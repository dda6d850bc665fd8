package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-item-keeper/internal/config"
	"github.com/MKhiriev/go-item-keeper/internal/logger"
	"github.com/MKhiriev/go-item-keeper/internal/notify"
	"github.com/MKhiriev/go-item-keeper/internal/store"
	"github.com/MKhiriev/go-item-keeper/models"
)

// userService is the concrete implementation of UserService.
type userService struct {
	userRepository   store.UserRepository
	notifier         notify.Notifier
	openRegistration bool
	logger           *logger.Logger
}

// NewUserService constructs a [UserService] over the user repository.
func NewUserService(userRepository store.UserRepository, notifier notify.Notifier, cfg config.App, logger *logger.Logger) UserService {
	return &userService{
		userRepository:   userRepository,
		notifier:         notifier,
		openRegistration: cfg.OpenRegistration,
		logger:           logger,
	}
}

// GetMulti returns a page of all user accounts.
func (s *userService) GetMulti(ctx context.Context, offset, limit int) ([]models.User, error) {
	return s.userRepository.GetMulti(ctx, offset, limit)
}

// Create registers a new account on behalf of an administrator.
// The email is checked for prior registration before the insert; a new
// account email is sent best-effort and never fails the operation.
func (s *userService) Create(ctx context.Context, in models.UserCreate) (models.User, error) {
	log := logger.FromContext(ctx)

	_, found, err := s.userRepository.GetByEmail(ctx, in.Email)
	if err != nil {
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}
	if found {
		return models.User{}, store.ErrEmailAlreadyExists
	}

	user, err := s.userRepository.Create(ctx, in)
	if err != nil {
		log.Err(err).Str("email", in.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	if err := s.notifier.SendNewAccountEmail(ctx, in.Email, in.Password); err != nil {
		log.Err(err).Str("email", in.Email).Msg("error sending new account email")
	}

	return user, nil
}

// OpenRegister registers a new account without authentication.
// Privilege flags in the payload are discarded: self-registered accounts
// are always active and never superusers.
func (s *userService) OpenRegister(ctx context.Context, in models.UserCreate) (models.User, error) {
	log := logger.FromContext(ctx)

	if !s.openRegistration {
		return models.User{}, ErrOpenRegistrationForbidden
	}

	_, found, err := s.userRepository.GetByEmail(ctx, in.Email)
	if err != nil {
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}
	if found {
		return models.User{}, store.ErrEmailAlreadyExists
	}

	user, err := s.userRepository.Create(ctx, models.UserCreate{
		Email:    in.Email,
		Password: in.Password,
		FullName: in.FullName,
	})
	if err != nil {
		log.Err(err).Str("email", in.Email).Msg("user registration ended with error")
		return models.User{}, fmt.Errorf("user registration ended with error: %w", err)
	}

	return user, nil
}

// GetByID returns the requested account subject to the self-or-superuser
// rule: users may read themselves, superusers may read anyone.
//
// The privilege check fires before the existence check, so a non-superuser
// probing a foreign id always gets a privilege failure, not a not-found.
func (s *userService) GetByID(ctx context.Context, current models.User, id int64) (models.User, error) {
	user, found, err := s.userRepository.Get(ctx, id)
	if err != nil {
		return models.User{}, fmt.Errorf("user lookup failed: %w", err)
	}

	if found && user.ID == current.ID {
		return user, nil
	}
	if !current.IsSuperuser {
		return models.User{}, ErrNotEnoughPrivileges
	}
	if !found {
		return models.User{}, ErrUserNotFound
	}

	return user, nil
}

// Update applies an administrative partial update to the account with the
// given id.
func (s *userService) Update(ctx context.Context, id int64, patch models.UserUpdate) (models.User, error) {
	user, found, err := s.userRepository.Get(ctx, id)
	if err != nil {
		return models.User{}, fmt.Errorf("user lookup failed: %w", err)
	}
	if !found {
		return models.User{}, ErrUserNotFound
	}

	return s.userRepository.Update(ctx, user, patch)
}

// UpdateMe applies a self-service partial update to the calling account.
// Only email, full name and password are writable: privilege flags in the
// payload are discarded, so users cannot activate or promote themselves.
func (s *userService) UpdateMe(ctx context.Context, current models.User, patch models.UserUpdate) (models.User, error) {
	return s.userRepository.Update(ctx, current, models.UserUpdate{
		Email:    patch.Email,
		FullName: patch.FullName,
		Password: patch.Password,
	})
}

// Delete removes the account with the given id and returns its pre-deletion
// snapshot. Owned items are removed by the schema's cascade rule.
func (s *userService) Delete(ctx context.Context, current models.User, id int64) (models.User, error) {
	user, err := s.GetByID(ctx, current, id)
	if err != nil {
		return models.User{}, err
	}

	return s.userRepository.Remove(ctx, user)
}
