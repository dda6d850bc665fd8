package service

import "errors"

var (
	// ErrTokenIsExpiredOrInvalid normalises every access-token validation
	// failure (malformed, bad signature, expired, wrong issuer). A failed
	// decode is deterministic and final for that token.
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	// ErrTokenCreationFailed indicates that signing a new JWT failed.
	ErrTokenCreationFailed = errors.New("token creation failed")

	// ErrIncorrectEmailOrPassword is returned by login when the email is
	// unknown or the password does not match. The two cases are never
	// distinguished.
	ErrIncorrectEmailOrPassword = errors.New("incorrect email or password")

	// ErrInvalidResetToken is returned when a password reset token fails
	// validation.
	ErrInvalidResetToken = errors.New("invalid password reset token")

	// ErrUserNotFound is returned when a user referenced by id or email
	// does not exist.
	ErrUserNotFound = errors.New("user not found")

	// ErrItemNotFound is returned when an item referenced by id does not
	// exist.
	ErrItemNotFound = errors.New("item not found")

	// ErrInactiveUser is returned by the resolver chain and the login flow
	// when the account's active flag is false.
	ErrInactiveUser = errors.New("inactive user")

	// ErrNotEnoughPrivileges is returned when an operation requires the
	// superuser flag and the caller does not have it.
	ErrNotEnoughPrivileges = errors.New("the user doesn't have enough privileges")

	// ErrNotEnoughPermissions is returned when a caller reads or mutates an
	// item they do not own without being a superuser.
	ErrNotEnoughPermissions = errors.New("not enough permissions")

	// ErrOpenRegistrationForbidden is returned by self-service registration
	// when the open-registration toggle is off.
	ErrOpenRegistrationForbidden = errors.New("open user registration is forbidden on this server")
)
