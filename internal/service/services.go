package service

import (
	"github.com/MKhiriev/go-item-keeper/internal/config"
	"github.com/MKhiriev/go-item-keeper/internal/logger"
	"github.com/MKhiriev/go-item-keeper/internal/notify"
	"github.com/MKhiriev/go-item-keeper/internal/store"
)

// Services bundles all business-logic services consumed by the HTTP layer.
type Services struct {
	AuthService
	SessionService
	UserService
	ItemService

	Notifier notify.Notifier
}

// NewServices wires services over the given storages and configuration.
func NewServices(storages *store.Storages, cfg config.App, notifier notify.Notifier, logger *logger.Logger) *Services {
	authService := NewAuthService(storages.UserRepository, notifier, cfg, logger)

	return &Services{
		AuthService:    authService,
		SessionService: NewSessionService(authService, storages.UserRepository, logger),
		UserService:    NewUserService(storages.UserRepository, notifier, cfg, logger),
		ItemService:    NewItemService(storages.ItemRepository, logger),
		Notifier:       notifier,
	}
}
