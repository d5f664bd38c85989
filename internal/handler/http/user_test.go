package http

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-blog-keeper/internal/app"
	"github.com/MKhiriev/go-blog-keeper/internal/config"
	"github.com/MKhiriev/go-blog-keeper/internal/store"
	"github.com/MKhiriev/go-blog-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestListUsers(t *testing.T) {
	router, m := newTestRouter(t, config.StructuredConfig{})
	m.expectAuthorized(1)

	m.users.EXPECT().ListUsers(gomock.Any()).Return([]models.UserInfo{
		{ID: 1, Name: "Ann", Email: "ann@example.com"},
		{ID: 2, Name: "Bob", Email: "bob@example.com"},
	}, nil)

	rr := doRequest(t, router, http.MethodGet, "/api/user", nil, testToken)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.NotContains(t, rr.Body.String(), "password")

	var users []models.UserInfo
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &users))
	assert.Len(t, users, 2)
}

func TestGetUser(t *testing.T) {
	router, m := newTestRouter(t, config.StructuredConfig{})
	m.expectAuthorized(1)

	m.users.EXPECT().GetUser(gomock.Any(), int64(2)).Return(models.UserInfo{ID: 2, Name: "Bob"}, nil)
	m.users.EXPECT().GetUser(gomock.Any(), int64(9)).Return(models.UserInfo{}, store.ErrUserNotFound)

	rr := doRequest(t, router, http.MethodGet, "/api/user/2", nil, testToken)
	require.Equal(t, http.StatusOK, rr.Code)

	var user models.UserInfo
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &user))
	assert.Equal(t, "Bob", user.Name)

	rr = doRequest(t, router, http.MethodGet, "/api/user/9", nil, testToken)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, app.MsgUserNotFound, decodeMessage(t, rr))

	rr = doRequest(t, router, http.MethodGet, "/api/user/-1", nil, testToken)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, app.MsgInvalidID, decodeMessage(t, rr))
}

func TestDeleteUser(t *testing.T) {
	router, m := newTestRouter(t, config.StructuredConfig{})
	m.expectAuthorized(1)

	m.users.EXPECT().DeleteUser(gomock.Any(), int64(2)).Return(nil)

	rr := doRequest(t, router, http.MethodDelete, "/api/user/2", nil, testToken)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, app.MsgUserDeleted, decodeMessage(t, rr))
}
