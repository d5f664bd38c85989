package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-blog-keeper/internal/adapter"
	"github.com/MKhiriev/go-blog-keeper/internal/logger"
	"github.com/MKhiriev/go-blog-keeper/internal/validators"
	"github.com/MKhiriev/go-blog-keeper/models"
)

type clientAuthService struct {
	session   Session
	adapter   adapter.ServerAdapter
	validator validators.Validator

	logger *logger.Logger
}

func NewClientAuthService(session Session, serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{
		session:   session,
		adapter:   serverAdapter,
		validator: validators.NewUserValidator(),
		logger:    logger,
	}
}

func (a *clientAuthService) SignUp(ctx context.Context, req models.SignUpRequest) (string, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.ProfileURL = strings.TrimSpace(req.ProfileURL)

	if err := a.validator.Validate(ctx, req); err != nil {
		return "", err
	}

	msg, err := a.adapter.SignUp(ctx, req)
	if err != nil {
		a.logger.Err(err).Str("func", "*clientAuthService.SignUp").Str("email", req.Email).Msg("sign-up failed")
		return "", mapAdapterError(err)
	}

	return msg, nil
}

func (a *clientAuthService) SignIn(ctx context.Context, email, password string) error {
	req := models.LoginRequest{Email: strings.TrimSpace(email), Password: password}

	if err := a.validator.Validate(ctx, req); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	token, err := a.adapter.Login(ctx, req)
	if err != nil {
		a.logger.Err(err).Str("func", "*clientAuthService.SignIn").Str("email", req.Email).Msg("sign-in failed")
		return mapAdapterError(err)
	}

	if err = a.session.SignIn(ctx, token); err != nil {
		return fmt.Errorf("error saving credential: %w", err)
	}

	return nil
}

func (a *clientAuthService) SignOut(ctx context.Context) error {
	return a.session.SignOut(ctx)
}
