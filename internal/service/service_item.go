package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-item-keeper/internal/logger"
	"github.com/MKhiriev/go-item-keeper/internal/store"
	"github.com/MKhiriev/go-item-keeper/models"
)

// itemService is the concrete implementation of ItemService.
type itemService struct {
	itemRepository store.ItemRepository
	logger         *logger.Logger
}

// NewItemService constructs an [ItemService] over the item repository.
func NewItemService(itemRepository store.ItemRepository, logger *logger.Logger) ItemService {
	return &itemService{itemRepository: itemRepository, logger: logger}
}

// GetMulti returns a page of items. Superusers see all items, regular users
// only the items they own.
func (s *itemService) GetMulti(ctx context.Context, current models.User, offset, limit int) ([]models.Item, error) {
	if current.IsSuperuser {
		return s.itemRepository.GetMulti(ctx, offset, limit)
	}

	return s.itemRepository.GetMultiByOwner(ctx, current.ID, offset, limit)
}

// Create stores a new item owned by the calling user. Any owner supplied in
// the payload is replaced with the caller's id.
func (s *itemService) Create(ctx context.Context, current models.User, in models.ItemCreate) (models.Item, error) {
	item, err := s.itemRepository.CreateWithOwner(ctx, in, current.ID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("owner_id", current.ID).Msg("item creation ended with error")
		return models.Item{}, fmt.Errorf("item creation ended with error: %w", err)
	}

	return item, nil
}

// GetByID returns the item with the given id if the caller owns it or is a
// superuser.
func (s *itemService) GetByID(ctx context.Context, current models.User, id int64) (models.Item, error) {
	item, found, err := s.itemRepository.Get(ctx, id)
	if err != nil {
		return models.Item{}, fmt.Errorf("item lookup failed: %w", err)
	}
	if !found {
		return models.Item{}, ErrItemNotFound
	}
	if !current.IsSuperuser && item.OwnerID != current.ID {
		return models.Item{}, ErrNotEnoughPermissions
	}

	return item, nil
}

// Update applies a partial update to an item the caller may access.
func (s *itemService) Update(ctx context.Context, current models.User, id int64, patch models.ItemUpdate) (models.Item, error) {
	item, err := s.GetByID(ctx, current, id)
	if err != nil {
		return models.Item{}, err
	}

	return s.itemRepository.Update(ctx, item, patch)
}

// Delete removes an item the caller may access and returns its snapshot.
func (s *itemService) Delete(ctx context.Context, current models.User, id int64) (models.Item, error) {
	item, err := s.GetByID(ctx, current, id)
	if err != nil {
		return models.Item{}, err
	}

	return s.itemRepository.Remove(ctx, item)
}
