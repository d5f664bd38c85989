package service

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/go-blog-keeper/internal/adapter"
	"github.com/MKhiriev/go-blog-keeper/internal/app"
	"github.com/MKhiriev/go-blog-keeper/internal/logger"
	"github.com/MKhiriev/go-blog-keeper/internal/mock"
	"github.com/MKhiriev/go-blog-keeper/internal/store"
	"github.com/MKhiriev/go-blog-keeper/internal/validators"
	"github.com/MKhiriev/go-blog-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestClientPostSvc(t *testing.T) (*clientPostService, *mock.MockServerAdapter, *mock.MockSession) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	mockSession := mock.NewMockSession(ctrl)
	svc := NewClientPostService(mockSession, mockAdapter, logger.Nop()).(*clientPostService)
	return svc, mockAdapter, mockSession
}

// ── no credential ────────────────────────────────────────────────────────────

// Без токена ни один запрос не уходит в сеть: адаптер не ожидает вызовов.
func TestClientPostService_NoCredential(t *testing.T) {
	svc, _, mockSession := newTestClientPostSvc(t)
	ctx := context.Background()

	mockSession.EXPECT().Token(ctx).Return("", false).Times(5)

	_, err := svc.FetchPosts(ctx)
	assert.ErrorIs(t, err, ErrUnauthenticated)

	_, err = svc.GetPost(ctx, 1)
	assert.ErrorIs(t, err, ErrUnauthenticated)

	_, err = svc.CreatePost(ctx, validPostInput())
	assert.ErrorIs(t, err, ErrUnauthenticated)

	_, err = svc.UpdatePost(ctx, validPostInput().Post())
	assert.ErrorIs(t, err, ErrUnauthenticated)

	assert.ErrorIs(t, svc.DeletePost(ctx, 1), ErrUnauthenticated)
}

// ── server rejects credential ────────────────────────────────────────────────

func TestClientPostService_Unauthorized_SignsOut(t *testing.T) {
	svc, mockAdapter, mockSession := newTestClientPostSvc(t)
	ctx := context.Background()

	gomock.InOrder(
		mockSession.EXPECT().Token(ctx).Return("stale", true),
		mockAdapter.EXPECT().ListPosts(ctx, "stale").
			Return(nil, adapter.NewResponseError(http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid)),
		mockSession.EXPECT().SignOut(ctx).Return(nil),
	)

	_, err := svc.FetchPosts(ctx)
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestClientPostService_Unauthorized_SignOutFails(t *testing.T) {
	svc, mockAdapter, mockSession := newTestClientPostSvc(t)
	ctx := context.Background()

	mockSession.EXPECT().Token(ctx).Return("stale", true)
	mockAdapter.EXPECT().DeletePost(ctx, "stale", int64(3)).
		Return(adapter.NewResponseError(http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid))
	mockSession.EXPECT().SignOut(ctx).Return(errors.New("locked"))

	assert.ErrorIs(t, svc.DeletePost(ctx, 3), ErrUnauthenticated)
}

// ── happy paths ──────────────────────────────────────────────────────────────

func TestClientPostService_FetchPosts(t *testing.T) {
	svc, mockAdapter, mockSession := newTestClientPostSvc(t)
	ctx := context.Background()

	posts := []models.Post{{ID: 2, Title: "B"}, {ID: 1, Title: "A"}}
	mockSession.EXPECT().Token(ctx).Return("tok", true)
	mockAdapter.EXPECT().ListPosts(ctx, "tok").Return(posts, nil)

	got, err := svc.FetchPosts(ctx)
	require.NoError(t, err)
	assert.Equal(t, posts, got)
}

func TestClientPostService_CreatePost(t *testing.T) {
	svc, mockAdapter, mockSession := newTestClientPostSvc(t)
	ctx := context.Background()

	input := validPostInput()
	created := input.Post()
	created.ID = 9

	mockSession.EXPECT().Token(ctx).Return("tok", true)
	mockAdapter.EXPECT().CreatePost(ctx, "tok", input).Return(created, nil)

	got, err := svc.CreatePost(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, int64(9), got.ID)
}

func TestClientPostService_UpdatePost(t *testing.T) {
	svc, mockAdapter, mockSession := newTestClientPostSvc(t)
	ctx := context.Background()

	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	post := validPostInput().Post()
	post.ID = 4

	mockSession.EXPECT().Token(ctx).Return("tok", true)
	mockAdapter.EXPECT().UpdatePost(ctx, "tok", int64(4), post.Input()).Return(nil)

	got, err := svc.UpdatePost(ctx, post)
	require.NoError(t, err)
	assert.Equal(t, now, got.UpdatedAt)
	assert.Equal(t, post.Title, got.Title)
}

// ── failures ─────────────────────────────────────────────────────────────────

// Ошибка валидации блокирует отправку формы до сетевого запроса.
func TestClientPostService_CreatePost_Invalid(t *testing.T) {
	svc, _, _ := newTestClientPostSvc(t)

	input := validPostInput()
	input.Author = "   "
	input.Tags = ""

	_, err := svc.CreatePost(context.Background(), input)
	fields := validators.FieldErrors(err)
	assert.Contains(t, fields, validators.FieldAuthor)
	assert.Contains(t, fields, validators.FieldTags)
}

func TestClientPostService_GetPost_NotFound(t *testing.T) {
	svc, mockAdapter, mockSession := newTestClientPostSvc(t)
	ctx := context.Background()

	mockSession.EXPECT().Token(ctx).Return("tok", true)
	mockAdapter.EXPECT().GetPost(ctx, "tok", int64(77)).
		Return(models.Post{}, adapter.NewResponseError(http.StatusNotFound, app.MsgBlogNotFound))

	_, err := svc.GetPost(ctx, 77)
	assert.ErrorIs(t, err, store.ErrPostNotFound)
	assert.Equal(t, app.MsgBlogNotFound, adapter.ServerMessage(err))
}

func TestClientPostService_ServerDown(t *testing.T) {
	svc, mockAdapter, mockSession := newTestClientPostSvc(t)
	ctx := context.Background()

	downErr := adapter.NewResponseError(http.StatusServiceUnavailable, app.MsgServiceUnavailable)
	mockSession.EXPECT().Token(ctx).Return("tok", true)
	mockAdapter.EXPECT().ListPosts(ctx, "tok").Return(nil, downErr)

	_, err := svc.FetchPosts(ctx)
	assert.ErrorIs(t, err, adapter.ErrServerUnavailable)
	assert.NotErrorIs(t, err, ErrUnauthenticated)
}

func TestClientInfoService_ServerVersion(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	svc := NewClientInfoService(mockAdapter)

	mockAdapter.EXPECT().Version(gomock.Any()).Return("1.2.3", nil)

	version, err := svc.ServerVersion(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "1.2.3", version)
}

func TestMapAdapterError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{name: "nil", err: nil, want: nil},
		{name: "wrong password", err: adapter.NewResponseError(http.StatusUnauthorized, app.MsgInvalidLoginPassword), want: ErrWrongPassword},
		{name: "expired token", err: adapter.NewResponseError(http.StatusUnauthorized, app.MsgUnauthorized), want: ErrUnauthenticated},
		{name: "missing fields", err: adapter.NewResponseError(http.StatusBadRequest, app.MsgAllFieldsMandatory), want: ErrInvalidDataProvided},
		{name: "already registered", err: adapter.NewResponseError(http.StatusBadRequest, app.MsgUserAlreadyRegistered), want: store.ErrEmailAlreadyExists},
		{name: "user not found", err: adapter.NewResponseError(http.StatusNotFound, app.MsgUserNotFound), want: store.ErrUserNotFound},
		{name: "other bad request", err: adapter.NewResponseError(http.StatusBadRequest, `"title" is required`), want: adapter.ErrBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapAdapterError(tt.err)
			if tt.want == nil {
				assert.NoError(t, got)
				return
			}
			assert.ErrorIs(t, got, tt.want)
		})
	}
}
