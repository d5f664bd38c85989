package service

import (
	"context"

	"github.com/MKhiriev/go-blog-keeper/internal/logger"
	"github.com/MKhiriev/go-blog-keeper/internal/store"
	"github.com/MKhiriev/go-blog-keeper/models"
)

type userService struct {
	userRepository store.UserRepository

	logger *logger.Logger
}

func NewUserService(userRepository store.UserRepository, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		logger:         logger,
	}
}

// ListUsers returns the public projection of every user, sorted by name.
func (s *userService) ListUsers(ctx context.Context) ([]models.UserInfo, error) {
	users, err := s.userRepository.ListUsers(ctx)
	if err != nil {
		return nil, err
	}

	infos := make([]models.UserInfo, 0, len(users))
	for _, u := range users {
		infos = append(infos, u.Info())
	}
	return infos, nil
}

func (s *userService) GetUser(ctx context.Context, userID int64) (models.UserInfo, error) {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		return models.UserInfo{}, err
	}
	return user.Info(), nil
}

func (s *userService) DeleteUser(ctx context.Context, userID int64) error {
	return s.userRepository.DeleteUser(ctx, userID)
}
