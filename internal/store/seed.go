package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-item-keeper/internal/config"
	"github.com/MKhiriev/go-item-keeper/internal/logger"
	"github.com/MKhiriev/go-item-keeper/models"
)

// EnsureFirstSuperuser creates the configured initial superuser account if no
// account with that email exists yet. It is a no-op when the bootstrap
// credentials are not configured, so repeated startups are idempotent.
func EnsureFirstSuperuser(ctx context.Context, users UserRepository, cfg config.App, log *logger.Logger) error {
	if cfg.FirstSuperuserEmail == "" || cfg.FirstSuperuserPassword == "" {
		log.Debug().Msg("first superuser is not configured, skipping seed")
		return nil
	}

	_, found, err := users.GetByEmail(ctx, cfg.FirstSuperuserEmail)
	if err != nil {
		return fmt.Errorf("error checking for first superuser: %w", err)
	}
	if found {
		return nil
	}

	active, superuser := true, true
	_, err = users.Create(ctx, models.UserCreate{
		Email:       cfg.FirstSuperuserEmail,
		Password:    cfg.FirstSuperuserPassword,
		IsActive:    &active,
		IsSuperuser: &superuser,
	})
	if err != nil {
		return fmt.Errorf("error creating first superuser: %w", err)
	}

	log.Info().Str("email", cfg.FirstSuperuserEmail).Msg("first superuser created")
	return nil
}
