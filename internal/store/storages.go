package store

import (
	"github.com/MKhiriev/go-item-keeper/internal/logger"
)

// Storages aggregates all repositories sharing one database connection pool.
type Storages struct {
	UserRepository UserRepository
	ItemRepository ItemRepository
}

// NewStorages constructs every repository over the given database handle.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository: NewUserRepository(db, logger),
		ItemRepository: NewItemRepository(db, logger),
	}
}
