// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides abstractions for input validation and
// enforcement of business rules across the application.
//
// Core concepts:
//   - Validator: generic interface to validate arbitrary values or structures.
//     Supports optional field-level scoping for targeted validation.
//   - FieldError: a single violated rule, carrying the field it belongs to.
//     All violations of one call are joined with [errors.Join], so the
//     server can answer with the first message and a form can show every
//     field at once.
//
// The same validators run on both sides: the client rejects a bad post form
// before any request is sent, the server never trusts the client.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
