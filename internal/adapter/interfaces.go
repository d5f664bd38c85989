// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"

	"github.com/MKhiriev/go-blog-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// ServerAdapter is the client-side gateway to the blog API.
//
// The adapter keeps no session state: authenticated calls take the bearer
// token as an argument, so the session gate stays the only owner of the
// credential.
type ServerAdapter interface {
	// SignUp registers a new account and returns the server acknowledgement.
	SignUp(ctx context.Context, req models.SignUpRequest) (string, error)

	// Login exchanges credentials for an access token.
	Login(ctx context.Context, req models.LoginRequest) (string, error)

	// ListPosts returns all posts, newest first.
	ListPosts(ctx context.Context, token string) ([]models.Post, error)

	// GetPost returns a single post.
	GetPost(ctx context.Context, token string, postID int64) (models.Post, error)

	// CreatePost stores a new post and returns it as saved by the server.
	CreatePost(ctx context.Context, token string, in models.PostInput) (models.Post, error)

	// UpdatePost overwrites the post's writable fields.
	UpdatePost(ctx context.Context, token string, postID int64, in models.PostInput) error

	// DeletePost removes a post.
	DeletePost(ctx context.Context, token string, postID int64) error

	// Version returns the server build version.
	Version(ctx context.Context) (string, error)
}
