package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-item-keeper/models"
)

// AuthService handles credential verification and the full token lifecycle:
// access tokens for authenticated requests and single-purpose reset tokens
// for password recovery.
type AuthService interface {
	// Authenticate verifies an email/password pair. Unknown email and wrong
	// password both yield ErrIncorrectEmailOrPassword; a correct pair on a
	// deactivated account yields ErrInactiveUser.
	Authenticate(ctx context.Context, email, password string) (models.User, error)

	// CreateToken issues a signed access token for the given user.
	CreateToken(ctx context.Context, user models.User) (models.Token, error)

	// ParseToken validates and parses a raw access token string.
	// Any validation failure is normalised to ErrTokenIsExpiredOrInvalid.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)

	// RecoverPassword issues a reset token for the account registered under
	// email and sends it by mail. Returns ErrUserNotFound for an unknown
	// email; see DESIGN.md on enumeration-safety.
	RecoverPassword(ctx context.Context, email string) error

	// ResetPassword exchanges a valid reset token for a password change.
	ResetPassword(ctx context.Context, tokenString, newPassword string) error
}

// SessionService is the session resolver chain: the ordered authorization
// checks from a raw bearer token to a privilege level. Each stage builds on
// the previous one; handlers pick the stage they require.
type SessionService interface {
	// CurrentUser resolves the token's subject to a stored user.
	// Fails with ErrTokenIsExpiredOrInvalid or ErrUserNotFound.
	CurrentUser(ctx context.Context, tokenString string) (models.User, error)

	// CurrentActiveUser is CurrentUser plus the active-flag check
	// (ErrInactiveUser).
	CurrentActiveUser(ctx context.Context, tokenString string) (models.User, error)

	// CurrentActiveSuperuser is CurrentActiveUser plus the superuser-flag
	// check (ErrNotEnoughPrivileges).
	CurrentActiveSuperuser(ctx context.Context, tokenString string) (models.User, error)
}

// UserService orchestrates account management on top of the user repository:
// duplicate-email guards, self-or-superuser read rules, and notification of
// new accounts.
type UserService interface {
	GetMulti(ctx context.Context, offset, limit int) ([]models.User, error)
	Create(ctx context.Context, in models.UserCreate) (models.User, error)
	OpenRegister(ctx context.Context, in models.UserCreate) (models.User, error)
	GetByID(ctx context.Context, current models.User, id int64) (models.User, error)
	Update(ctx context.Context, id int64, patch models.UserUpdate) (models.User, error)
	UpdateMe(ctx context.Context, current models.User, patch models.UserUpdate) (models.User, error)
	Delete(ctx context.Context, current models.User, id int64) (models.User, error)
}

// ItemService orchestrates item access on top of the item repository,
// enforcing the owner-or-superuser rule on reads and mutations.
type ItemService interface {
	GetMulti(ctx context.Context, current models.User, offset, limit int) ([]models.Item, error)
	Create(ctx context.Context, current models.User, in models.ItemCreate) (models.Item, error)
	GetByID(ctx context.Context, current models.User, id int64) (models.Item, error)
	Update(ctx context.Context, current models.User, id int64, patch models.ItemUpdate) (models.Item, error)
	Delete(ctx context.Context, current models.User, id int64) (models.Item, error)
}
