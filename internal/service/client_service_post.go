package service

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/go-blog-keeper/internal/adapter"
	"github.com/MKhiriev/go-blog-keeper/internal/logger"
	"github.com/MKhiriev/go-blog-keeper/internal/validators"
	"github.com/MKhiriev/go-blog-keeper/models"
)

type clientPostService struct {
	session   Session
	adapter   adapter.ServerAdapter
	validator validators.Validator
	now       func() time.Time

	logger *logger.Logger
}

func NewClientPostService(session Session, serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientPostService {
	return &clientPostService{
		session:   session,
		adapter:   serverAdapter,
		validator: validators.NewPostValidator(),
		now:       time.Now,
		logger:    logger,
	}
}

func (s *clientPostService) FetchPosts(ctx context.Context) ([]models.Post, error) {
	token, err := s.token(ctx)
	if err != nil {
		return nil, err
	}

	posts, err := s.adapter.ListPosts(ctx, token)
	if err != nil {
		return nil, s.handleError(ctx, "FetchPosts", err)
	}
	return posts, nil
}

func (s *clientPostService) GetPost(ctx context.Context, postID int64) (models.Post, error) {
	token, err := s.token(ctx)
	if err != nil {
		return models.Post{}, err
	}

	post, err := s.adapter.GetPost(ctx, token, postID)
	if err != nil {
		return models.Post{}, s.handleError(ctx, "GetPost", err)
	}
	return post, nil
}

func (s *clientPostService) CreatePost(ctx context.Context, input models.PostInput) (models.Post, error) {
	if err := s.validator.Validate(ctx, input); err != nil {
		return models.Post{}, err
	}

	token, err := s.token(ctx)
	if err != nil {
		return models.Post{}, err
	}

	created, err := s.adapter.CreatePost(ctx, token, input)
	if err != nil {
		return models.Post{}, s.handleError(ctx, "CreatePost", err)
	}
	return created, nil
}

func (s *clientPostService) UpdatePost(ctx context.Context, post models.Post) (models.Post, error) {
	if err := s.validator.Validate(ctx, post); err != nil {
		return models.Post{}, err
	}

	token, err := s.token(ctx)
	if err != nil {
		return models.Post{}, err
	}

	if err = s.adapter.UpdatePost(ctx, token, post.ID, post.Input()); err != nil {
		return models.Post{}, s.handleError(ctx, "UpdatePost", err)
	}

	post.UpdatedAt = s.now()
	return post, nil
}

func (s *clientPostService) DeletePost(ctx context.Context, postID int64) error {
	token, err := s.token(ctx)
	if err != nil {
		return err
	}

	if err = s.adapter.DeletePost(ctx, token, postID); err != nil {
		return s.handleError(ctx, "DeletePost", err)
	}
	return nil
}

func (s *clientPostService) token(ctx context.Context) (string, error) {
	token, ok := s.session.Token(ctx)
	if !ok {
		return "", ErrUnauthenticated
	}
	return token, nil
}

// handleError maps err and signs the user out when the server no longer
// accepts the credential.
func (s *clientPostService) handleError(ctx context.Context, op string, err error) error {
	mapped := mapAdapterError(err)

	if errors.Is(mapped, ErrUnauthenticated) {
		s.logger.Info().Str("op", op).Msg("server rejected credential, signing out")
		if signOutErr := s.session.SignOut(ctx); signOutErr != nil {
			s.logger.Err(signOutErr).Str("op", op).Msg("failed to clear rejected credential")
		}
		return mapped
	}

	s.logger.Err(err).Str("op", op).Msg("post request failed")
	return mapped
}
