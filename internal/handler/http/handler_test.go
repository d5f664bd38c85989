package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-blog-keeper/internal/config"
	"github.com/MKhiriev/go-blog-keeper/internal/logger"
	"github.com/MKhiriev/go-blog-keeper/internal/mock"
	"github.com/MKhiriev/go-blog-keeper/internal/service"
	"github.com/MKhiriev/go-blog-keeper/internal/utils"
	"github.com/MKhiriev/go-blog-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ── helpers ──────────────────────────────────────────────────────────────────

const testToken = "valid-token"

type testMocks struct {
	auth    *mock.MockAuthService
	users   *mock.MockUserService
	posts   *mock.MockPostService
	appInfo *mock.MockAppInfoService
}

// newTestRouter собирает полный роутер с моками сервисов.
func newTestRouter(t *testing.T, cfg config.StructuredConfig) (http.Handler, testMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := testMocks{
		auth:    mock.NewMockAuthService(ctrl),
		users:   mock.NewMockUserService(ctrl),
		posts:   mock.NewMockPostService(ctrl),
		appInfo: mock.NewMockAppInfoService(ctrl),
	}
	services := &service.Services{
		AuthService:    m.auth,
		UserService:    m.users,
		PostService:    m.posts,
		AppInfoService: m.appInfo,
	}

	return NewHandler(services, cfg, logger.Nop()).Init(), m
}

// expectAuthorized разрешает testToken для пользователя userID.
func (m testMocks) expectAuthorized(userID int64) {
	m.auth.EXPECT().ParseToken(gomock.Any(), testToken).Return(models.Token{UserID: userID}, nil).AnyTimes()
}

func doRequest(t *testing.T, h http.Handler, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func decodeMessage(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	var resp models.MessageResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	return resp.Message
}

// injectNopLogger кладёт nop-логгер в контекст запроса.
func injectNopLogger(r *http.Request) *http.Request {
	nop := logger.Nop()
	return r.WithContext(nop.Logger.WithContext(r.Context()))
}

// ── NewHandler ───────────────────────────────────────────────────────────────

func TestNewHandler(t *testing.T) {
	svc := &service.Services{}
	log := logger.Nop()

	h := NewHandler(svc, config.StructuredConfig{}, log)
	require.NotNil(t, h)
	assert.Equal(t, svc, h.services)
	assert.Equal(t, log, h.logger)
	assert.Nil(t, h.limiter, "limiter is disabled without RPS")
	assert.Nil(t, h.signer)
}

func TestNewHandler_WithLimiterAndHashKey(t *testing.T) {
	cfg := config.StructuredConfig{
		App:    config.App{HashKey: "k"},
		Server: config.Server{RateLimitRPS: 5, RateLimitBurst: 10},
	}

	h := NewHandler(&service.Services{}, cfg, logger.Nop())
	require.NotNil(t, h.limiter)
	assert.Equal(t, 10, h.limiter.burst)
	assert.Equal(t, utils.HashString("x", "k"), h.signer.Sign([]byte("x")))
}
