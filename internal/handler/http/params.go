package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

const (
	defaultPageLimit = 100
)

// pagination reads the `offset` and `limit` query parameters. Absent or
// unparsable values fall back to offset 0 and limit 100.
func pagination(r *http.Request) (offset, limit int) {
	offset = 0
	limit = defaultPageLimit

	if v := r.URL.Query().Get("offset"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			offset = parsed
		}
	}
	if v := r.URL.Query().Get("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			limit = parsed
		}
	}

	return offset, limit
}

// pathID parses the `{id}` route parameter.
func pathID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}
