// Package http implements the HTTP transport layer of the application.
// It provides middleware, route handlers, and request/response utilities
// for the REST API. Session resolution, logging, and tracing concerns are
// all handled at this layer before requests are forwarded to the service
// layer.
package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-item-keeper/internal/logger"
	"github.com/MKhiriev/go-item-keeper/internal/utils"
	"github.com/MKhiriev/go-item-keeper/models"
)

// sessionResolver is one stage of the session resolver chain: it turns a raw
// bearer token into a stored user or fails with a session error.
type sessionResolver func(ctx context.Context, tokenString string) (models.User, error)

// withSession builds an authentication middleware around the given resolver
// stage.
//
// It inspects the incoming "Authorization" header, extracts the bearer token
// and resolves it to a user. On success the user is stored in the request
// context under [utils.CurrentUserCtxKey] before delegating to the next
// handler.
//
// A missing or malformed header is rejected with HTTP 403 Forbidden; resolver
// failures are mapped through the shared error-to-status table, so an invalid
// token yields 403, an unknown subject 404, and an inactive account or a
// missing superuser flag 400.
func (h *Handler) withSession(resolve sessionResolver, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			http.Error(w, ErrEmptyAuthorizationHeader.Error(), http.StatusForbidden)
			return
		}

		tokenString, err := getTokenFromAuthHeader(authHeader)
		if err != nil {
			log.Err(err).Send()
			http.Error(w, err.Error(), http.StatusForbidden)
			return
		}

		ctx := r.Context()
		user, err := resolve(ctx, tokenString)
		if err != nil {
			log.Err(err).Msg("session resolution failed")
			http.Error(w, err.Error(), statusFromError(err))
			return
		}

		// Downstream handlers read the resolved user from the context
		// instead of re-parsing the token.
		ctx = context.WithValue(ctx, utils.CurrentUserCtxKey, user)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// auth admits any bearer of a valid token, active or not.
func (h *Handler) auth(next http.Handler) http.Handler {
	return h.withSession(h.services.SessionService.CurrentUser, next)
}

// authActiveUser admits only active accounts.
func (h *Handler) authActiveUser(next http.Handler) http.Handler {
	return h.withSession(h.services.SessionService.CurrentActiveUser, next)
}

// authActiveSuperuser admits only active superusers.
func (h *Handler) authActiveSuperuser(next http.Handler) http.Handler {
	return h.withSession(h.services.SessionService.CurrentActiveSuperuser, next)
}

// getTokenFromAuthHeader extracts the bearer token string from a raw
// "Authorization" HTTP header value.
//
// The header is expected to follow the standard format:
//
//	Authorization: <scheme> <token>
//
// It returns [ErrInvalidAuthorizationHeader] if the header contains fewer
// than two space-separated parts, and [ErrEmptyToken] if the second part is
// an empty string.
func getTokenFromAuthHeader(authHeader string) (string, error) {
	parts := strings.Split(authHeader, " ")
	if len(parts) < 2 {
		return "", ErrInvalidAuthorizationHeader
	}

	tokenString := parts[1]
	if tokenString == "" {
		return "", ErrEmptyToken
	}

	return tokenString, nil
}
