package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-blog-keeper/internal/app"
	"github.com/MKhiriev/go-blog-keeper/internal/logger"
	"github.com/MKhiriev/go-blog-keeper/internal/service"
	"github.com/MKhiriev/go-blog-keeper/internal/store"
	"github.com/MKhiriev/go-blog-keeper/internal/utils"
	"github.com/MKhiriev/go-blog-keeper/internal/validators"
	"github.com/MKhiriev/go-blog-keeper/models"
)

type errorStatus struct {
	err     error
	status  int
	message string
}

// errorStatusTable is checked in order; the first entry matching the error
// chain wins. Store errors may carry both ErrStoreUnavailable and a query
// error, so availability comes first.
var errorStatusTable = []errorStatus{
	{store.ErrStoreUnavailable, http.StatusServiceUnavailable, app.MsgServiceUnavailable},

	{validators.ErrValidation, http.StatusBadRequest, ""},
	{service.ErrInvalidDataProvided, http.StatusBadRequest, app.MsgAllFieldsMandatory},
	{store.ErrEmailAlreadyExists, http.StatusBadRequest, app.MsgUserAlreadyRegistered},
	{ErrInvalidJSON, http.StatusBadRequest, app.MsgInvalidDataProvided},
	{ErrInvalidID, http.StatusBadRequest, app.MsgInvalidID},

	{service.ErrWrongPassword, http.StatusUnauthorized, app.MsgInvalidLoginPassword},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid},
	{ErrNoUserInContext, http.StatusUnauthorized, app.MsgUnauthorized},

	{store.ErrUserNotFound, http.StatusNotFound, app.MsgUserNotFound},
	{store.ErrPostNotFound, http.StatusNotFound, app.MsgBlogNotFound},

	{service.ErrTokenCreationFailed, http.StatusInternalServerError, app.MsgInternalServerError},
	{store.ErrBuildingSQLQuery, http.StatusInternalServerError, app.MsgInternalServerError},
	{store.ErrExecutingQuery, http.StatusInternalServerError, app.MsgInternalServerError},
	{store.ErrExecutingStatement, http.StatusInternalServerError, app.MsgInternalServerError},
	{store.ErrScanningRow, http.StatusInternalServerError, app.MsgInternalServerError},
	{store.ErrScanningRows, http.StatusInternalServerError, app.MsgInternalServerError},
}

func lookupError(err error) (errorStatus, bool) {
	for _, entry := range errorStatusTable {
		if errors.Is(err, entry.err) {
			return entry, true
		}
	}
	return errorStatus{}, false
}

func statusFromError(err error) int {
	if entry, ok := lookupError(err); ok {
		return entry.status
	}
	return http.StatusInternalServerError
}

// messageFromError returns the text written into the response body.
// Validation errors carry their own first-violation message.
func messageFromError(err error) string {
	entry, ok := lookupError(err)
	if !ok {
		return app.MsgInternalServerError
	}
	if entry.message == "" {
		return validators.Message(err)
	}
	return entry.message
}

// writeError logs err and writes the matching status. Client errors get a
// {"message"} body, server errors an {"title","message"} one.
func writeError(w http.ResponseWriter, r *http.Request, funcName string, err error) {
	log := logger.FromRequest(r)

	status := statusFromError(err)
	message := messageFromError(err)

	if status >= http.StatusInternalServerError {
		log.Err(err).Str("func", funcName).Int("status", status).Msg("request failed")
		utils.WriteJSON(w, models.ErrorResponse{Title: http.StatusText(status), Message: message}, status)
		return
	}

	log.Debug().Err(err).Str("func", funcName).Int("status", status).Msg("request rejected")
	utils.WriteMessage(w, message, status)
}
