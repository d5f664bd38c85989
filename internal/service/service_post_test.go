package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-blog-keeper/internal/logger"
	"github.com/MKhiriev/go-blog-keeper/internal/mock"
	"github.com/MKhiriev/go-blog-keeper/internal/store"
	"github.com/MKhiriev/go-blog-keeper/internal/validators"
	"github.com/MKhiriev/go-blog-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func boolPtr(b bool) *bool { return &b }

func validPostInput() models.PostInput {
	return models.PostInput{
		Title:     "Hello Go",
		Content:   "Some **markdown** here",
		Author:    "Ann",
		Category:  models.CategoryTechnology,
		Tags:      "go, blog",
		Published: boolPtr(true),
	}
}

func newTestPostService(t *testing.T) (PostService, *mock.MockPostRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockPostRepository(ctrl)
	svc := NewPostValidationService().Wrap(NewPostService(repo, logger.Nop()))
	return svc, repo
}

// ── CreatePost ───────────────────────────────────────────────────────────────

func TestPostService_CreatePost(t *testing.T) {
	svc, repo := newTestPostService(t)

	input := validPostInput()
	input.Title = "  Hello Go  "

	repo.EXPECT().CreatePost(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p models.Post) (models.Post, error) {
			assert.Equal(t, "Hello Go", p.Title)
			assert.Equal(t, int64(4), p.UserID)
			assert.True(t, p.Published)
			p.ID = 100
			return p, nil
		},
	)

	created, err := svc.CreatePost(context.Background(), 4, input)
	require.NoError(t, err)
	assert.Equal(t, int64(100), created.ID)
}

// Невалидный пост не должен доходить до репозитория.
func TestPostService_CreatePost_Invalid(t *testing.T) {
	svc, _ := newTestPostService(t)

	input := validPostInput()
	input.Title = "Go"
	input.Category = "Sports"

	_, err := svc.CreatePost(context.Background(), 1, input)
	require.Error(t, err)
	assert.ErrorIs(t, err, validators.ErrTitleTooShort)
	assert.ErrorIs(t, err, validators.ErrCategoryInvalid)
}

func TestPostService_CreatePost_PublishedMissing(t *testing.T) {
	svc, _ := newTestPostService(t)

	input := validPostInput()
	input.Published = nil

	_, err := svc.CreatePost(context.Background(), 1, input)
	assert.ErrorIs(t, err, validators.ErrPublishedRequired)
}

// ── UpdatePost ───────────────────────────────────────────────────────────────

func TestPostService_UpdatePost(t *testing.T) {
	svc, repo := newTestPostService(t)

	repo.EXPECT().UpdatePost(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p models.Post) (models.Post, error) {
			assert.Equal(t, int64(8), p.ID)
			return p, nil
		},
	)

	updated, err := svc.UpdatePost(context.Background(), 8, validPostInput())
	require.NoError(t, err)
	assert.Equal(t, "Hello Go", updated.Title)
}

func TestPostService_UpdatePost_NotFound(t *testing.T) {
	svc, repo := newTestPostService(t)

	repo.EXPECT().UpdatePost(gomock.Any(), gomock.Any()).Return(models.Post{}, store.ErrPostNotFound)

	_, err := svc.UpdatePost(context.Background(), 8, validPostInput())
	assert.ErrorIs(t, err, store.ErrPostNotFound)
}

func TestPostService_UpdatePost_Invalid(t *testing.T) {
	svc, _ := newTestPostService(t)

	input := validPostInput()
	input.Content = ""

	_, err := svc.UpdatePost(context.Background(), 8, input)
	assert.ErrorIs(t, err, validators.ErrContentRequired)
}

// ── reads and deletes ────────────────────────────────────────────────────────

func TestPostService_PassThrough(t *testing.T) {
	svc, repo := newTestPostService(t)
	ctx := context.Background()

	posts := []models.Post{{ID: 2}, {ID: 1}}
	repo.EXPECT().ListPosts(ctx).Return(posts, nil)
	repo.EXPECT().GetPost(ctx, int64(2)).Return(posts[0], nil)
	repo.EXPECT().DeletePost(ctx, int64(1)).Return(store.ErrPostNotFound)

	got, err := svc.ListPosts(ctx)
	require.NoError(t, err)
	assert.Equal(t, posts, got)

	post, err := svc.GetPost(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(2), post.ID)

	assert.ErrorIs(t, svc.DeletePost(ctx, 1), store.ErrPostNotFound)
}
