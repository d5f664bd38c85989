package models

// MessageResponse is the generic body returned by the API for
// acknowledgements and errors.
type MessageResponse struct {
	Message string `json:"message"`
}

// LoginResponse carries the access token issued on a successful login.
type LoginResponse struct {
	AccessToken string `json:"accessToken"`
}

// PostResponse is returned on post creation.
type PostResponse struct {
	Message string `json:"message"`
	Blog    Post   `json:"blog"`
}

// ErrorResponse is written when a request fails unexpectedly on the server
// side. Title is a short class of the failure ("Server Error", "Not Found").
type ErrorResponse struct {
	Title   string `json:"title"`
	Message string `json:"message"`
}
