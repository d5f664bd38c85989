package models

import "time"

// User represents an account entity used for authentication and authorization.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"-"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// Email is the unique login identifier of the user.
	Email string `json:"email"`

	// Password holds the plaintext password on the way in and the bcrypt
	// hash once loaded from storage. It is never written to responses.
	Password string `json:"password,omitempty"`

	// ProfileURL is an optional link to the user's profile image.
	ProfileURL string `json:"profile_url,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Info returns the public projection of the user.
func (u User) Info() UserInfo {
	return UserInfo{
		ID:         u.UserID,
		Name:       u.Name,
		Email:      u.Email,
		ProfileURL: u.ProfileURL,
		CreatedAt:  u.CreatedAt,
		UpdatedAt:  u.UpdatedAt,
	}
}

// UserInfo is the representation of a user returned by the API.
type UserInfo struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	ProfileURL string    `json:"profile_url"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// SignUpRequest is the body of the registration endpoint.
type SignUpRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	ProfileURL string `json:"profile_url,omitempty"`
}

// User converts the request into a [User] ready for registration.
func (r SignUpRequest) User() User {
	return User{
		Name:       r.Name,
		Email:      r.Email,
		Password:   r.Password,
		ProfileURL: r.ProfileURL,
	}
}

// LoginRequest is the body of the login endpoint.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
