package models

// User represents an account entity used for authentication and authorization.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the unique identifier of the user, assigned by the database.
	ID int64 `json:"id"`

	// Email is the unique address the user authenticates with.
	Email string `json:"email"`

	// FullName is the optional display name of the user.
	// It is non-sensitive and may be shown in UI.
	FullName string `json:"full_name,omitempty"`

	// IsActive gates all authenticated access. Deactivated accounts keep
	// their data but cannot use the API. Defaults to true on creation.
	IsActive bool `json:"is_active"`

	// IsSuperuser grants administrative access to all entities.
	// Defaults to false on creation.
	IsSuperuser bool `json:"is_superuser"`

	// HashedPassword stores the bcrypt hash of the user's password.
	// Never plaintext, never serialized.
	HashedPassword string `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// UserCreate carries the fields accepted when creating a new user account.
// Password is plaintext on the wire and is discarded after hashing.
type UserCreate struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name,omitempty"`

	// IsActive and IsSuperuser are optional; absent values take the
	// defaults (active, non-privileged).
	IsActive    *bool `json:"is_active,omitempty"`
	IsSuperuser *bool `json:"is_superuser,omitempty"`
}

// UserUpdate is a partial-update patch for a user record.
// Nil fields are left untouched. A non-nil Password is rehashed and stored
// as HashedPassword, never as given.
type UserUpdate struct {
	Email       *string `json:"email,omitempty"`
	Password    *string `json:"password,omitempty"`
	FullName    *string `json:"full_name,omitempty"`
	IsActive    *bool   `json:"is_active,omitempty"`
	IsSuperuser *bool   `json:"is_superuser,omitempty"`
}
