package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-blog-keeper/internal/logger"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithTraceID_GeneratesID(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{logger: &logger.Logger{Logger: zerolog.New(&buf)}}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.FromRequest(r).Info().Msg("inside")
	})
	rr := httptest.NewRecorder()

	h.withTraceID(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/blog", nil))

	traceID := rr.Header().Get(traceIDHeader)
	require.NotEmpty(t, traceID)
	_, err := uuid.Parse(traceID)
	assert.NoError(t, err)
	assert.Contains(t, buf.String(), `"trace_id":"`+traceID+`"`)
}

func TestWithTraceID_KeepsIncomingID(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{logger: &logger.Logger{Logger: zerolog.New(&buf)}}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.FromRequest(r).Info().Send()
	})
	req := httptest.NewRequest(http.MethodGet, "/api/blog", nil)
	req.Header.Set(traceIDHeader, "trace-123")
	rr := httptest.NewRecorder()

	h.withTraceID(next).ServeHTTP(rr, req)

	assert.Equal(t, "trace-123", rr.Header().Get(traceIDHeader))
	assert.Contains(t, buf.String(), `"trace_id":"trace-123"`)
}
