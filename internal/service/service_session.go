package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-item-keeper/internal/logger"
	"github.com/MKhiriev/go-item-keeper/internal/store"
	"github.com/MKhiriev/go-item-keeper/models"
)

// sessionService implements the session resolver chain.
//
// The chain is a strict linear pipeline with no branching:
//
//	verify token → resolve user → require active → require superuser
//
// Each stage is a pure function of the previous stage's output except the
// user lookup, which is the chain's only storage access.
type sessionService struct {
	authService    AuthService
	userRepository store.UserRepository
	logger         *logger.Logger
}

// NewSessionService constructs a [SessionService] on top of the token
// verifier and the user repository.
func NewSessionService(authService AuthService, userRepository store.UserRepository, logger *logger.Logger) SessionService {
	return &sessionService{
		authService:    authService,
		userRepository: userRepository,
		logger:         logger,
	}
}

// CurrentUser verifies the raw token and resolves its subject to a stored
// user.
func (s *sessionService) CurrentUser(ctx context.Context, tokenString string) (models.User, error) {
	log := logger.FromContext(ctx)

	token, err := s.authService.ParseToken(ctx, tokenString)
	if err != nil {
		return models.User{}, err
	}

	user, found, err := s.userRepository.Get(ctx, token.UserID)
	if err != nil {
		log.Err(err).Int64("id", token.UserID).Msg("error resolving user from token subject")
		return models.User{}, fmt.Errorf("error resolving user from token subject: %w", err)
	}
	if !found {
		return models.User{}, ErrUserNotFound
	}

	return user, nil
}

// CurrentActiveUser resolves the user and additionally requires the active
// flag.
func (s *sessionService) CurrentActiveUser(ctx context.Context, tokenString string) (models.User, error) {
	user, err := s.CurrentUser(ctx, tokenString)
	if err != nil {
		return models.User{}, err
	}

	if !user.IsActive {
		return models.User{}, ErrInactiveUser
	}

	return user, nil
}

// CurrentActiveSuperuser resolves an active user and additionally requires
// the superuser flag.
func (s *sessionService) CurrentActiveSuperuser(ctx context.Context, tokenString string) (models.User, error) {
	user, err := s.CurrentActiveUser(ctx, tokenString)
	if err != nil {
		return models.User{}, err
	}

	if !user.IsSuperuser {
		return models.User{}, ErrNotEnoughPrivileges
	}

	return user, nil
}
