package adapter

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-blog-keeper/models"
	"github.com/go-resty/resty/v2"
)

// mapHTTPError converts a non-2xx response into a *ResponseError.
// 2xx responses yield nil.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	return NewResponseError(resp.StatusCode(), responseMessage(resp))
}

// NewResponseError builds the error for a response with status and the
// server-provided message.
func NewResponseError(status int, message string) *ResponseError {
	return &ResponseError{
		StatusCode: status,
		Message:    message,
		kind:       kindFromStatus(status),
	}
}

func kindFromStatus(status int) error {
	switch {
	case status == http.StatusBadRequest, status == http.StatusUnprocessableEntity:
		return ErrBadRequest
	case status == http.StatusUnauthorized:
		return ErrUnauthorized
	case status == http.StatusForbidden:
		return ErrForbidden
	case status == http.StatusNotFound:
		return ErrNotFound
	case status == http.StatusConflict:
		return ErrConflict
	case status == http.StatusTooManyRequests:
		return ErrTooManyRequests
	case status >= http.StatusInternalServerError:
		return ErrServerUnavailable
	default:
		return ErrBadRequest
	}
}

// responseMessage extracts {"message"} from a JSON body, falling back to the
// raw body and then to the status text.
func responseMessage(resp *resty.Response) string {
	body := strings.TrimSpace(string(resp.Body()))

	var msg models.MessageResponse
	if err := json.Unmarshal(resp.Body(), &msg); err == nil && msg.Message != "" {
		return msg.Message
	}

	if body == "" {
		return http.StatusText(resp.StatusCode())
	}
	return body
}
