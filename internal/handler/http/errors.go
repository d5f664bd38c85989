// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors raised by the transport layer itself. Callers can match
// against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidJSON is returned when a request body can not be decoded.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrInvalidID is returned when the {id} path parameter is not a
	// positive integer.
	ErrInvalidID = errors.New("invalid id path parameter")

	// ErrNoUserInContext means the auth middleware did not run before a
	// handler that needs the caller's ID.
	ErrNoUserInContext = errors.New("no user ID in request context")
)
