package http

import (
	"net/http"
	"testing"

	"github.com/MKhiriev/go-blog-keeper/internal/config"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestGetServerVersion(t *testing.T) {
	router, m := newTestRouter(t, config.StructuredConfig{})
	m.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("v1.2.3")

	rr := doRequest(t, router, http.MethodGet, "/version", nil, "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "v1.2.3", rr.Body.String())
	assert.Contains(t, rr.Header().Get("Content-Type"), "text/plain")
}

// /version доступен без токена и не проходит через rate limiter.
func TestGetServerVersion_NoAuthNoLimit(t *testing.T) {
	cfg := config.StructuredConfig{Server: config.Server{RateLimitRPS: 0.001, RateLimitBurst: 1}}
	router, m := newTestRouter(t, cfg)
	m.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("v").Times(3)

	for range 3 {
		rr := doRequest(t, router, http.MethodGet, "/version", nil, "")
		assert.Equal(t, http.StatusOK, rr.Code)
	}
}
