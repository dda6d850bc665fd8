package store

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-item-keeper/internal/logger"
	"github.com/MKhiriev/go-item-keeper/internal/utils"
	"github.com/MKhiriev/go-item-keeper/models"
)

// userMapping maps [models.User] onto the "users" table for the generic
// repository.
type userMapping struct{}

func (userMapping) Table() string {
	return models.User{}.TableName()
}

func (userMapping) Columns() []string {
	return []string{"id", "email", "hashed_password", "full_name", "is_active", "is_superuser"}
}

func (userMapping) ScanRow(row RowScanner) (models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.Email, &u.HashedPassword, &u.FullName, &u.IsActive, &u.IsSuperuser)
	return u, err
}

// InsertMap expects in.Password to already hold the bcrypt hash; hashing is
// done by [userRepository.Create] before the payload reaches the mapping.
func (userMapping) InsertMap(in models.UserCreate) map[string]any {
	active, superuser := true, false
	if in.IsActive != nil {
		active = *in.IsActive
	}
	if in.IsSuperuser != nil {
		superuser = *in.IsSuperuser
	}

	return map[string]any{
		"email":           in.Email,
		"hashed_password": in.Password,
		"full_name":       in.FullName,
		"is_active":       active,
		"is_superuser":    superuser,
	}
}

// UpdateMap renames a present Password field (already rehashed by
// [userRepository.Update]) to the hashed-storage column.
func (userMapping) UpdateMap(patch models.UserUpdate) map[string]any {
	setMap := make(map[string]any, 5)

	if patch.Email != nil {
		setMap["email"] = *patch.Email
	}
	if patch.Password != nil {
		setMap["hashed_password"] = *patch.Password
	}
	if patch.FullName != nil {
		setMap["full_name"] = *patch.FullName
	}
	if patch.IsActive != nil {
		setMap["is_active"] = *patch.IsActive
	}
	if patch.IsSuperuser != nil {
		setMap["is_superuser"] = *patch.IsSuperuser
	}

	return setMap
}

func (userMapping) ID(entity models.User) int64 {
	return entity.ID
}

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It composes the generic repository with user-specific behavior: email
// lookup, password hashing on create/update, and credential verification.
type userRepository struct {
	*repository[models.User, models.UserCreate, models.UserUpdate]
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		repository: newRepository[models.User, models.UserCreate, models.UserUpdate](db, userMapping{}, logger),
	}
}

// GetByEmail retrieves the account registered under the given email.
// Absence is reported via the bool result, not as an error.
func (r *userRepository) GetByEmail(ctx context.Context, email string) (models.User, bool, error) {
	return r.getWhere(ctx, sq.Eq{"email": email})
}

// Create hashes the plaintext password and persists the new account.
// A unique violation on the email column is reported as
// [ErrEmailAlreadyExists].
func (r *userRepository) Create(ctx context.Context, in models.UserCreate) (models.User, error) {
	hash, err := utils.HashPassword(in.Password)
	if err != nil {
		return models.User{}, fmt.Errorf("error hashing password for new user: %w", err)
	}
	in.Password = hash

	user, err := r.repository.Create(ctx, in)
	if errors.Is(err, ErrDuplicateRecord) {
		return models.User{}, ErrEmailAlreadyExists
	}
	if err != nil {
		return models.User{}, err
	}

	return user, nil
}

// Update rehashes a present password field before delegating to the generic
// partial update; the mapping stores it under hashed_password.
func (r *userRepository) Update(ctx context.Context, existing models.User, patch models.UserUpdate) (models.User, error) {
	if patch.Password != nil {
		hash, err := utils.HashPassword(*patch.Password)
		if err != nil {
			return models.User{}, fmt.Errorf("error hashing password for user update: %w", err)
		}
		patch.Password = &hash
	}

	user, err := r.repository.Update(ctx, existing, patch)
	if errors.Is(err, ErrDuplicateRecord) {
		return models.User{}, ErrEmailAlreadyExists
	}
	if err != nil {
		return models.User{}, err
	}

	return user, nil
}

// Authenticate verifies the given credentials.
//
// Unknown email and wrong password both return found == false with no error;
// callers cannot distinguish the two cases, which keeps the storage layer
// enumeration-safe.
func (r *userRepository) Authenticate(ctx context.Context, email, password string) (models.User, bool, error) {
	log := logger.FromContext(ctx)

	user, found, err := r.GetByEmail(ctx, email)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.Authenticate").Msg("error looking up user by email")
		return models.User{}, false, err
	}
	if !found {
		return models.User{}, false, nil
	}

	if !utils.VerifyPassword(password, user.HashedPassword) {
		return models.User{}, false, nil
	}

	return user, true, nil
}
