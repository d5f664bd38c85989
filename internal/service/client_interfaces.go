package service

import (
	"context"

	"github.com/MKhiriev/go-blog-keeper/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// Session is the client credential holder the services read the bearer
// token from. *session.Gate implements it.
type Session interface {
	// Token returns the current valid credential.
	Token(ctx context.Context) (string, bool)

	// SignIn stores a new credential and notifies observers.
	SignIn(ctx context.Context, credential string) error

	// SignOut clears the credential and notifies observers.
	SignOut(ctx context.Context) error
}

// ClientAuthService defines the client-side contract for registration and
// authentication against the blog server.
type ClientAuthService interface {
	// SignUp registers a new account. The request is validated locally
	// first; on success the server acknowledgement is returned.
	SignUp(ctx context.Context, req models.SignUpRequest) (string, error)

	// SignIn exchanges email and password for an access token and hands it
	// to the session. Returns ErrWrongPassword when the server rejects the
	// pair.
	SignIn(ctx context.Context, email, password string) error

	// SignOut forgets the stored credential.
	SignOut(ctx context.Context) error
}

// ClientPostService defines the client-side contract for managing posts.
// Every call needs a valid credential; without one ErrUnauthenticated is
// returned and nothing is sent. A 401 from the server signs the user out.
type ClientPostService interface {
	FetchPosts(ctx context.Context) ([]models.Post, error)
	GetPost(ctx context.Context, postID int64) (models.Post, error)

	// CreatePost validates input and returns the post created by the server.
	CreatePost(ctx context.Context, input models.PostInput) (models.Post, error)

	// UpdatePost validates post and returns it as it should now be shown.
	UpdatePost(ctx context.Context, post models.Post) (models.Post, error)

	DeletePost(ctx context.Context, postID int64) error
}

// ClientInfoService reports facts about the server the client talks to.
type ClientInfoService interface {
	ServerVersion(ctx context.Context) (string, error)
}
