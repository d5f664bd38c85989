package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponseWriter_FirstStatusWins(t *testing.T) {
	tests := []struct {
		name        string
		statusCodes []int
		want        int
	}{
		{name: "single 201", statusCodes: []int{http.StatusCreated}, want: http.StatusCreated},
		{name: "single 404", statusCodes: []int{http.StatusNotFound}, want: http.StatusNotFound},
		{name: "202 then 400", statusCodes: []int{http.StatusAccepted, http.StatusBadRequest}, want: http.StatusAccepted},
		{name: "200 then 201 then 404", statusCodes: []int{http.StatusOK, http.StatusCreated, http.StatusNotFound}, want: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			w := &responseWriter{ResponseWriter: rr}

			for _, code := range tt.statusCodes {
				w.WriteHeader(code)
			}

			assert.Equal(t, tt.want, w.status)
			assert.Equal(t, tt.want, rr.Code)
			assert.True(t, w.wroteHeader)
		})
	}
}

func TestResponseWriter_WriteCountsBytes(t *testing.T) {
	rr := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rr}

	for _, chunk := range []string{"foo", "bar", ""} {
		_, err := w.Write([]byte(chunk))
		require.NoError(t, err)
	}

	// Write без WriteHeader означает 200
	assert.Equal(t, http.StatusOK, w.status)
	assert.Equal(t, 6, w.size)
	assert.Equal(t, "foobar", rr.Body.String())
}

func TestResponseWriter_WriteAfterExplicitStatus(t *testing.T) {
	rr := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rr}

	w.Header().Set("X-Custom", "value")
	w.WriteHeader(http.StatusTeapot)
	_, err := w.Write([]byte("short and stout"))
	require.NoError(t, err)

	assert.Equal(t, http.StatusTeapot, rr.Code)
	assert.Equal(t, "value", rr.Header().Get("X-Custom"))
	assert.Equal(t, 15, w.size)
}
