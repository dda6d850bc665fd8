package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-item-keeper/internal/config"
	"github.com/MKhiriev/go-item-keeper/internal/logger"
	"github.com/MKhiriev/go-item-keeper/internal/notify"
	"github.com/MKhiriev/go-item-keeper/internal/store"
	"github.com/MKhiriev/go-item-keeper/internal/utils"
	"github.com/MKhiriev/go-item-keeper/models"
)

// authService is the concrete implementation of AuthService.
// It handles credential verification and JWT token lifecycle using a
// UserRepository for persistence; password hashing itself lives behind the
// repository boundary.
type authService struct {
	// userRepository is the data-access layer used to look up and update users.
	userRepository store.UserRepository

	// notifier delivers the password recovery email.
	notifier notify.Notifier

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued access token remains valid.
	tokenDuration time.Duration

	// resetTokenDuration controls how long a password reset token remains valid.
	resetTokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// UserRepository and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, notifier notify.Notifier, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:     userRepository,
		notifier:           notifier,
		tokenSignKey:       cfg.TokenSignKey,
		tokenIssuer:        cfg.TokenIssuer,
		tokenDuration:      cfg.TokenDuration,
		resetTokenDuration: cfg.ResetTokenDuration,
		logger:             logger,
	}
}

// Authenticate verifies an email/password pair against the stored account.
//
// The repository reports unknown email and wrong password identically, so
// both surface as ErrIncorrectEmailOrPassword. A correct pair on a
// deactivated account fails with ErrInactiveUser.
func (a *authService) Authenticate(ctx context.Context, email, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	user, found, err := a.userRepository.Authenticate(ctx, email, password)
	if err != nil {
		log.Err(err).Msg("credential verification failed")
		return models.User{}, fmt.Errorf("credential verification failed: %w", err)
	}
	if !found {
		return models.User{}, ErrIncorrectEmailOrPassword
	}

	if !user.IsActive {
		return models.User{}, ErrInactiveUser
	}

	return user, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim, and expires after tokenDuration.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.ID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature and
// the issuer claim. Any validation failure (expired, wrong issuer, malformed)
// is normalised to ErrTokenIsExpiredOrInvalid so that callers do not need to
// inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

// RecoverPassword issues a reset token scoped to the account's email and
// mails it to the user.
func (a *authService) RecoverPassword(ctx context.Context, email string) error {
	log := logger.FromContext(ctx)

	user, found, err := a.userRepository.GetByEmail(ctx, email)
	if err != nil {
		log.Err(err).Msg("user search by email failed")
		return fmt.Errorf("user search by email failed: %w", err)
	}
	if !found {
		return ErrUserNotFound
	}

	token, err := utils.GeneratePasswordResetToken(a.tokenIssuer, user.Email, a.resetTokenDuration, a.tokenSignKey)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	if err := a.notifier.SendPasswordResetEmail(ctx, user.Email, token); err != nil {
		log.Err(err).Str("email", user.Email).Msg("error sending password reset email")
		return fmt.Errorf("error sending password reset email: %w", err)
	}

	return nil
}

// ResetPassword exchanges a valid reset token for a password change on the
// account whose email is carried in the token's subject. The new password
// goes through the repository's hashing path; plaintext is never stored.
func (a *authService) ResetPassword(ctx context.Context, tokenString, newPassword string) error {
	log := logger.FromContext(ctx)

	email, err := utils.ValidatePasswordResetToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return ErrInvalidResetToken
	}

	user, found, err := a.userRepository.GetByEmail(ctx, email)
	if err != nil {
		log.Err(err).Msg("user search by email failed")
		return fmt.Errorf("user search by email failed: %w", err)
	}
	if !found {
		return ErrUserNotFound
	}

	if !user.IsActive {
		return ErrInactiveUser
	}

	if _, err := a.userRepository.Update(ctx, user, models.UserUpdate{Password: &newPassword}); err != nil {
		log.Err(err).Int64("id", user.ID).Msg("error updating password")
		return fmt.Errorf("error updating password: %w", err)
	}

	return nil
}
