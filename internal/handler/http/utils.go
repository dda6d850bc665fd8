package http

import (
	"net/http"

	"github.com/MKhiriev/go-item-keeper/internal/logger"
	"github.com/MKhiriev/go-item-keeper/internal/utils"
	"github.com/MKhiriev/go-item-keeper/models"
)

func (h *Handler) ping(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, "OK", http.StatusOK)
}

// testEmail sends a test message to the address in the `email_to` query
// parameter. Superuser only; used to verify SMTP configuration.
func (h *Handler) testEmail(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	emailTo := r.URL.Query().Get("email_to")
	if emailTo == "" {
		http.Error(w, "`email_to` query parameter is required", http.StatusBadRequest)
		return
	}

	if err := h.services.Notifier.SendTestEmail(ctx, emailTo); err != nil {
		log.Err(err).Str("email_to", emailTo).Msg("sending test email failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.Msg{Msg: "Test email sent"}, http.StatusCreated)
}
