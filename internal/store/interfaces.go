package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-item-keeper/models"
)

// UserRepository provides storage operations for user accounts: the generic
// CRUD surface plus user-specific lookups and credential handling.
//
// Create and Update never persist a plaintext password; the password field of
// the input is hashed before it reaches the database.
type UserRepository interface {
	Get(ctx context.Context, id int64) (models.User, bool, error)
	GetMulti(ctx context.Context, offset, limit int) ([]models.User, error)
	GetByEmail(ctx context.Context, email string) (models.User, bool, error)
	Create(ctx context.Context, in models.UserCreate) (models.User, error)
	Update(ctx context.Context, existing models.User, patch models.UserUpdate) (models.User, error)
	Remove(ctx context.Context, existing models.User) (models.User, error)

	// Authenticate looks up the account by email and verifies the password
	// against the stored hash. Unknown email and wrong password produce the
	// same outward result (found == false) to avoid user enumeration.
	Authenticate(ctx context.Context, email, password string) (models.User, bool, error)
}

// ItemRepository provides storage operations for items. Creation always goes
// through CreateWithOwner, which forces the owner from the authenticated
// caller rather than trusting client input.
type ItemRepository interface {
	Get(ctx context.Context, id int64) (models.Item, bool, error)
	GetMulti(ctx context.Context, offset, limit int) ([]models.Item, error)
	GetMultiByOwner(ctx context.Context, ownerID int64, offset, limit int) ([]models.Item, error)
	CreateWithOwner(ctx context.Context, in models.ItemCreate, ownerID int64) (models.Item, error)
	Update(ctx context.Context, existing models.Item, patch models.ItemUpdate) (models.Item, error)
	Remove(ctx context.Context, existing models.Item) (models.Item, error)
}
