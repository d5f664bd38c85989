// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// blog keeper server handlers, middleware and the client adapter.
//
// All Msg* constants are human-readable message strings written into the
// {"message": ...} body of HTTP responses. The client compares against the
// same constants, so wording changes stay consistent on both ends.
package app

const (
	// MsgUserRegistered acknowledges a successful sign-up.
	MsgUserRegistered = "User registered successfully"

	// MsgUserAlreadyRegistered is returned when the email is taken.
	MsgUserAlreadyRegistered = "User already registered!"

	// MsgAllFieldsMandatory is returned by login when email or password is missing.
	MsgAllFieldsMandatory = "All fields are mandatory!"

	// MsgInvalidLoginPassword is returned when the email/password pair does
	// not match any user.
	MsgInvalidLoginPassword = "Email or Password is not valid"

	// MsgUserNotFound is returned when a user lookup by ID finds nothing.
	MsgUserNotFound = "User not found"

	// MsgUserDeleted acknowledges a user removal.
	MsgUserDeleted = "User deleted successfully"

	// MsgBlogCreated acknowledges a new post.
	MsgBlogCreated = "Blog created successfully"

	// MsgBlogUpdated acknowledges a post update.
	MsgBlogUpdated = "Blog updated successfully"

	// MsgBlogDeleted acknowledges a post removal.
	MsgBlogDeleted = "Blog deleted successfully"

	// MsgBlogNotFound is returned when a post lookup by ID finds nothing.
	MsgBlogNotFound = "Blog not found"

	// MsgInvalidID is returned when a path ID is not a positive integer.
	MsgInvalidID = "Invalid ID"

	// MsgInvalidDataProvided is returned when the request body cannot be decoded.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgUnauthorized is returned when no usable bearer token is present.
	MsgUnauthorized = "User is not authorized or token is missing"

	// MsgTokenIsExpiredOrInvalid is returned when the bearer token fails
	// signature, issuer or expiry checks.
	MsgTokenIsExpiredOrInvalid = "User is not authorized"

	// MsgTooManyRequests is returned by the rate limiter.
	MsgTooManyRequests = "Too many requests, please try again later"

	// MsgInvalidSignature is returned when the HashSHA256 header does not
	// match the request body.
	MsgInvalidSignature = "invalid request signature"

	// MsgServiceUnavailable is returned when the database is temporarily unreachable.
	MsgServiceUnavailable = "Service temporarily unavailable"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"
)
