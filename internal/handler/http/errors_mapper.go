package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-item-keeper/internal/service"
	"github.com/MKhiriev/go-item-keeper/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrTokenIsExpiredOrInvalid:   http.StatusForbidden,
	service.ErrOpenRegistrationForbidden: http.StatusForbidden,

	service.ErrUserNotFound: http.StatusNotFound,
	service.ErrItemNotFound: http.StatusNotFound,

	service.ErrIncorrectEmailOrPassword: http.StatusBadRequest,
	service.ErrInactiveUser:             http.StatusBadRequest,
	service.ErrNotEnoughPrivileges:      http.StatusBadRequest,
	service.ErrNotEnoughPermissions:     http.StatusBadRequest,
	service.ErrInvalidResetToken:        http.StatusBadRequest,

	service.ErrTokenCreationFailed: http.StatusInternalServerError,

	store.ErrEmailAlreadyExists: http.StatusBadRequest,
	store.ErrOwnerNotFound:      http.StatusBadRequest,
	store.ErrDuplicateRecord:    http.StatusBadRequest,

	store.ErrRecordVanished:     http.StatusInternalServerError,
	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
