package service

import (
	"context"

	"github.com/MKhiriev/go-blog-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock -exclude_interfaces=PostServiceWrapper

type AuthService interface {
	RegisterUser(ctx context.Context, req models.SignUpRequest) (models.User, error)
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type UserService interface {
	ListUsers(ctx context.Context) ([]models.UserInfo, error)
	GetUser(ctx context.Context, userID int64) (models.UserInfo, error)
	DeleteUser(ctx context.Context, userID int64) error
}

type PostService interface {
	ListPosts(ctx context.Context) ([]models.Post, error)
	GetPost(ctx context.Context, postID int64) (models.Post, error)
	CreatePost(ctx context.Context, userID int64, input models.PostInput) (models.Post, error)
	UpdatePost(ctx context.Context, postID int64, input models.PostInput) (models.Post, error)
	DeletePost(ctx context.Context, postID int64) error
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// PostServiceWrapper defines middleware composition for PostService.
// Implementations wrap an existing PostService to add behavior such as
// validating.
type PostServiceWrapper interface {
	Wrap(PostService) PostService
}
