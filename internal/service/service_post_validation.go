package service

import (
	"context"

	"github.com/MKhiriev/go-blog-keeper/internal/logger"
	"github.com/MKhiriev/go-blog-keeper/internal/validators"
	"github.com/MKhiriev/go-blog-keeper/models"
)

// PostValidationService rejects invalid post bodies before they reach the
// wrapped PostService. Reads pass straight through.
type PostValidationService struct {
	inner     PostService
	validator validators.Validator
}

func NewPostValidationService() PostServiceWrapper {
	return &PostValidationService{
		validator: validators.NewPostValidator(),
	}
}

func (v *PostValidationService) ListPosts(ctx context.Context) ([]models.Post, error) {
	return v.inner.ListPosts(ctx)
}

func (v *PostValidationService) GetPost(ctx context.Context, postID int64) (models.Post, error) {
	return v.inner.GetPost(ctx, postID)
}

func (v *PostValidationService) CreatePost(ctx context.Context, userID int64, input models.PostInput) (models.Post, error) {
	if err := v.validator.Validate(ctx, input); err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("post rejected by validation before saving")
		return models.Post{}, err
	}

	return v.inner.CreatePost(ctx, userID, input)
}

func (v *PostValidationService) UpdatePost(ctx context.Context, postID int64, input models.PostInput) (models.Post, error) {
	if err := v.validator.Validate(ctx, input); err != nil {
		logger.FromContext(ctx).Debug().Err(err).Int64("id", postID).Msg("post rejected by validation before updating")
		return models.Post{}, err
	}

	return v.inner.UpdatePost(ctx, postID, input)
}

func (v *PostValidationService) DeletePost(ctx context.Context, postID int64) error {
	return v.inner.DeletePost(ctx, postID)
}

func (v *PostValidationService) Wrap(wrapped PostService) PostService {
	v.inner = wrapped
	return v
}
