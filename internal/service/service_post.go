package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-blog-keeper/internal/logger"
	"github.com/MKhiriev/go-blog-keeper/internal/store"
	"github.com/MKhiriev/go-blog-keeper/models"
)

type postService struct {
	postRepository store.PostRepository

	logger *logger.Logger
}

func NewPostService(postRepository store.PostRepository, logger *logger.Logger) PostService {
	return &postService{
		postRepository: postRepository,
		logger:         logger,
	}
}

// ListPosts returns all posts, newest first.
func (p *postService) ListPosts(ctx context.Context) ([]models.Post, error) {
	return p.postRepository.ListPosts(ctx)
}

func (p *postService) GetPost(ctx context.Context, postID int64) (models.Post, error) {
	return p.postRepository.GetPost(ctx, postID)
}

// CreatePost stores input as a new post owned by userID.
func (p *postService) CreatePost(ctx context.Context, userID int64, input models.PostInput) (models.Post, error) {
	post := normalizePost(input.Post())
	post.UserID = userID

	return p.postRepository.CreatePost(ctx, post)
}

// UpdatePost overwrites the writable fields of the post with postID.
func (p *postService) UpdatePost(ctx context.Context, postID int64, input models.PostInput) (models.Post, error) {
	post := normalizePost(input.Post())
	post.ID = postID

	return p.postRepository.UpdatePost(ctx, post)
}

func (p *postService) DeletePost(ctx context.Context, postID int64) error {
	return p.postRepository.DeletePost(ctx, postID)
}

func normalizePost(post models.Post) models.Post {
	post.Title = strings.TrimSpace(post.Title)
	post.Author = strings.TrimSpace(post.Author)
	post.Tags = strings.TrimSpace(post.Tags)
	return post
}
