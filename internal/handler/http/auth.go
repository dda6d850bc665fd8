package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-item-keeper/internal/logger"
	"github.com/MKhiriev/go-item-keeper/internal/utils"
	"github.com/MKhiriev/go-item-keeper/models"
)

// loginAccessToken exchanges form-encoded credentials for a bearer token.
//
// The request body follows the OAuth2 password flow: a form with `username`
// (the account email) and `password` fields.
func (h *Handler) loginAccessToken(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if err := r.ParseForm(); err != nil {
		log.Err(err).Msg("invalid login form")
		http.Error(w, "invalid login form", http.StatusBadRequest)
		return
	}

	email := r.PostFormValue("username")
	password := r.PostFormValue("password")

	user, err := h.services.AuthService.Authenticate(ctx, email, password)
	if err != nil {
		log.Err(err).Str("email", email).Msg("login failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, user)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.AccessToken{AccessToken: token.SignedString, TokenType: "bearer"}, http.StatusOK)
}

// testToken echoes the account behind the presented token. Reached only
// through the auth middleware, so the user is already in the context.
func (h *Handler) testToken(w http.ResponseWriter, r *http.Request) {
	user, ok := utils.GetCurrentUserFromContext(r.Context())
	if !ok {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

// recoverPassword issues a password reset token for the account registered
// under the email path parameter and sends it by mail.
func (h *Handler) recoverPassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	email := chi.URLParam(r, "email")

	if err := h.services.AuthService.RecoverPassword(ctx, email); err != nil {
		log.Err(err).Str("email", email).Msg("password recovery failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.Msg{Msg: "Password recovery email sent"}, http.StatusOK)
}

// resetPassword exchanges a valid reset token for a password change.
func (h *Handler) resetPassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var body models.NewPassword
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.AuthService.ResetPassword(ctx, body.Token, body.NewPassword); err != nil {
		log.Err(err).Msg("password reset failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.Msg{Msg: "Password updated successfully"}, http.StatusOK)
}
