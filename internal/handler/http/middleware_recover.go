package http

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/MKhiriev/go-blog-keeper/internal/app"
	"github.com/MKhiriev/go-blog-keeper/internal/utils"
	"github.com/MKhiriev/go-blog-keeper/models"
)

// withRecover turns a panic in any later handler into a 500 with an
// ErrorResponse body. http.ErrAbortHandler is re-raised.
func (h *Handler) withRecover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rw := &responseWriter{ResponseWriter: w}

		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			h.logger.Error().
				Str("func", "*Handler.withRecover").
				Str("panic", fmt.Sprint(rec)).
				Bytes("stack", debug.Stack()).
				Str("uri", r.RequestURI).
				Msg("recovered from panic")

			if rw.wroteHeader {
				return
			}
			utils.WriteJSON(rw, models.ErrorResponse{
				Title:   http.StatusText(http.StatusInternalServerError),
				Message: app.MsgInternalServerError,
			}, http.StatusInternalServerError)
		}()

		next.ServeHTTP(rw, r)
	})
}
