// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-blog-keeper/internal/config"
	"github.com/MKhiriev/go-blog-keeper/internal/logger"
	"github.com/MKhiriev/go-blog-keeper/internal/utils"
	"github.com/MKhiriev/go-blog-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestAdapter создаёт httpServerAdapter, направленный на тестовый сервер
func newTestAdapter(t *testing.T, serverURL, hashKey string) *httpServerAdapter {
	t.Helper()
	cfg := config.ClientAdapter{ServerURL: serverURL, HashKey: hashKey, RequestTimeout: 2 * time.Second}

	a, err := NewHTTPServerAdapter(cfg, logger.Nop())
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

// ── constructor ─────────────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"localhost:8080", "http://localhost:8080", false},
		{"https://blog.example.com/", "https://blog.example.com", false},
		{"  http://127.0.0.1:9000  ", "http://127.0.0.1:9000", false},
		{"", "", true},
		{"http://", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewHTTPServerAdapter_InvalidURL(t *testing.T) {
	_, err := NewHTTPServerAdapter(config.ClientAdapter{}, logger.Nop())
	assert.Error(t, err)
}

// ── auth ────────────────────────────────────────────────────────────────────

func TestSignUp_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/user/signup", r.URL.Path)

		var req models.SignUpRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "alice@example.com", req.Email)

		writeJSON(t, w, http.StatusCreated, models.MessageResponse{Message: "User registered successfully"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, "")
	msg, err := a.SignUp(context.Background(), models.SignUpRequest{Name: "Alice", Email: "alice@example.com", Password: "secret1"})

	require.NoError(t, err)
	assert.Equal(t, "User registered successfully", msg)
}

func TestSignUp_AlreadyRegistered(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusBadRequest, models.MessageResponse{Message: "User already registered!"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, "")
	_, err := a.SignUp(context.Background(), models.SignUpRequest{})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBadRequest)
	assert.Equal(t, "User already registered!", err.Error())
	assert.Equal(t, "User already registered!", ServerMessage(err))
}

func TestLogin_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/user/login", r.URL.Path)
		writeJSON(t, w, http.StatusOK, models.LoginResponse{AccessToken: "a.b.c"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, "")
	token, err := a.Login(context.Background(), models.LoginRequest{Email: "a@b.c", Password: "x"})

	require.NoError(t, err)
	assert.Equal(t, "a.b.c", token)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusUnauthorized, models.MessageResponse{Message: "Email or Password is not valid"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, "")
	_, err := a.Login(context.Background(), models.LoginRequest{Email: "a@b.c", Password: "x"})

	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Equal(t, "Email or Password is not valid", ServerMessage(err))
}

func TestLogin_EmptyToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, models.LoginResponse{})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, "")
	_, err := a.Login(context.Background(), models.LoginRequest{})
	assert.Error(t, err)
}

// ── posts ───────────────────────────────────────────────────────────────────

func TestListPosts_SendsBearer(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Second)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/blog", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))

		writeJSON(t, w, http.StatusOK, []models.Post{{ID: 1, Title: "A", CreatedAt: now}})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, "")
	posts, err := a.ListPosts(context.Background(), "tok")

	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "A", posts[0].Title)
	assert.True(t, now.Equal(posts[0].CreatedAt))
}

func TestListPosts_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusUnauthorized, models.MessageResponse{Message: "User is not authorized"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, "")
	_, err := a.ListPosts(context.Background(), "expired")

	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestGetPost_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/blog/42", r.URL.Path)
		writeJSON(t, w, http.StatusNotFound, models.MessageResponse{Message: "Blog not found"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, "")
	_, err := a.GetPost(context.Background(), "tok", 42)

	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, "Blog not found", err.Error())
}

// TestCreatePost_SignsBody проверяет что подпись тела совпадает с HMAC отправленных байт.
func TestCreatePost_SignsBody(t *testing.T) {
	const key = "adapter-test-key"

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)

		assert.Equal(t, utils.HashString(string(body), key), r.Header.Get(HashHeader))
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))

		var in models.PostInput
		require.NoError(t, json.Unmarshal(body, &in))
		post := in.Post()
		post.ID = 7

		writeJSON(t, w, http.StatusCreated, models.PostResponse{Message: "Blog created successfully", Blog: post})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, key)
	published := true
	created, err := a.CreatePost(context.Background(), "tok", models.PostInput{Title: "Hello", Published: &published})

	require.NoError(t, err)
	assert.Equal(t, int64(7), created.ID)
	assert.True(t, created.Published)
}

func TestCreatePost_NoHashHeaderWithoutKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get(HashHeader))
		writeJSON(t, w, http.StatusCreated, models.PostResponse{})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, "")
	_, err := a.CreatePost(context.Background(), "tok", models.PostInput{})
	assert.NoError(t, err)
}

func TestUpdatePost(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/blog/3", r.URL.Path)
		writeJSON(t, w, http.StatusOK, models.MessageResponse{Message: "Blog updated successfully"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, "")
	assert.NoError(t, a.UpdatePost(context.Background(), "tok", 3, models.PostInput{}))
}

func TestDeletePost_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, "")
	err := a.DeletePost(context.Background(), "tok", 3)

	assert.ErrorIs(t, err, ErrServerUnavailable)
	// empty body falls back to the status text
	assert.Equal(t, http.StatusText(http.StatusInternalServerError), err.Error())
}

func TestVersion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/version", r.URL.Path)
		_, _ = w.Write([]byte("1.2.3\n"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, "")
	v, err := a.Version(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "1.2.3", v)
}

func TestTransportError_ServerDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	a := newTestAdapter(t, url, "")
	_, err := a.ListPosts(context.Background(), "tok")

	assert.ErrorIs(t, err, ErrServerUnavailable)
}

// ── error mapping ───────────────────────────────────────────────────────────

func TestKindFromStatus(t *testing.T) {
	tests := map[int]error{
		http.StatusBadRequest:          ErrBadRequest,
		http.StatusUnauthorized:        ErrUnauthorized,
		http.StatusForbidden:           ErrForbidden,
		http.StatusNotFound:            ErrNotFound,
		http.StatusConflict:            ErrConflict,
		http.StatusTooManyRequests:     ErrTooManyRequests,
		http.StatusBadGateway:          ErrServerUnavailable,
		http.StatusServiceUnavailable:  ErrServerUnavailable,
		http.StatusUnprocessableEntity: ErrBadRequest,
	}

	for status, want := range tests {
		assert.ErrorIs(t, kindFromStatus(status), want, "status %d", status)
	}
}

func TestServerMessage_PlainError(t *testing.T) {
	assert.Equal(t, assert.AnError.Error(), ServerMessage(assert.AnError))
}
