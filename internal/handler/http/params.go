package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// idParam parses the {id} path parameter as a positive integer.
func idParam(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidID, raw)
	}
	if id <= 0 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidID, id)
	}

	return id, nil
}
