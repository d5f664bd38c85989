package http

import (
	"bytes"
	"io"
	"net/http"

	"github.com/MKhiriev/go-blog-keeper/internal/adapter"
	"github.com/MKhiriev/go-blog-keeper/internal/app"
	"github.com/MKhiriev/go-blog-keeper/internal/logger"
	"github.com/MKhiriev/go-blog-keeper/internal/utils"
)

// withHashCheck verifies the HashSHA256 header against an HMAC of the raw
// request body. It is a no-op without a configured hash key or when the
// request carries no signature.
func (h *Handler) withHashCheck(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		signature := r.Header.Get(adapter.HashHeader)
		if h.signer == nil || signature == "" || r.Body == nil {
			next.ServeHTTP(w, r)
			return
		}

		log := logger.FromRequest(r)

		body, err := io.ReadAll(r.Body)
		if err != nil {
			log.Err(err).Str("func", "*Handler.withHashCheck").Msg("failed to read request body")
			utils.WriteMessage(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
			return
		}
		// restore request body
		r.Body = io.NopCloser(bytes.NewReader(body))

		if !h.signer.Verify(body, signature) {
			log.Error().Str("func", "*Handler.withHashCheck").
				Str("hash from request", signature).
				Msg("hashes are not equal")
			utils.WriteMessage(w, app.MsgInvalidSignature, http.StatusBadRequest)
			return
		}

		next.ServeHTTP(w, r)
	})
}
