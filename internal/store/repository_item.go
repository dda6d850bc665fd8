package store

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-item-keeper/internal/logger"
	"github.com/MKhiriev/go-item-keeper/models"
)

// itemMapping maps [models.Item] onto the "items" table for the generic
// repository.
type itemMapping struct{}

func (itemMapping) Table() string {
	return models.Item{}.TableName()
}

func (itemMapping) Columns() []string {
	return []string{"id", "title", "description", "owner_id"}
}

func (itemMapping) ScanRow(row RowScanner) (models.Item, error) {
	var i models.Item
	err := row.Scan(&i.ID, &i.Title, &i.Description, &i.OwnerID)
	return i, err
}

func (itemMapping) InsertMap(in models.ItemCreate) map[string]any {
	return map[string]any{
		"title":       in.Title,
		"description": in.Description,
		"owner_id":    in.OwnerID,
	}
}

func (itemMapping) UpdateMap(patch models.ItemUpdate) map[string]any {
	setMap := make(map[string]any, 3)

	if patch.Title != nil {
		setMap["title"] = *patch.Title
	}
	if patch.Description != nil {
		setMap["description"] = *patch.Description
	}
	if patch.OwnerID != nil {
		setMap["owner_id"] = *patch.OwnerID
	}

	return setMap
}

func (itemMapping) ID(entity models.Item) int64 {
	return entity.ID
}

// itemRepository is the PostgreSQL-backed implementation of [ItemRepository].
type itemRepository struct {
	*repository[models.Item, models.ItemCreate, models.ItemUpdate]
}

// NewItemRepository constructs an [ItemRepository] backed by the provided
// database connection and logger.
func NewItemRepository(db *DB, logger *logger.Logger) ItemRepository {
	logger.Debug().Msg("creating item repository")
	return &itemRepository{
		repository: newRepository[models.Item, models.ItemCreate, models.ItemUpdate](db, itemMapping{}, logger),
	}
}

// CreateWithOwner persists a new item owned by ownerID. Any owner value
// present in the client payload is overwritten with the argument.
func (r *itemRepository) CreateWithOwner(ctx context.Context, in models.ItemCreate, ownerID int64) (models.Item, error) {
	in.OwnerID = ownerID
	return r.repository.Create(ctx, in)
}

// GetMultiByOwner returns a page of the items owned by ownerID.
func (r *itemRepository) GetMultiByOwner(ctx context.Context, ownerID int64, offset, limit int) ([]models.Item, error) {
	return r.getMultiWhere(ctx, sq.Eq{"owner_id": ownerID}, offset, limit)
}
