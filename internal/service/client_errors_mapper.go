// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-blog-keeper/internal/adapter"
	"github.com/MKhiriev/go-blog-keeper/internal/app"
	"github.com/MKhiriev/go-blog-keeper/internal/store"
)

// mapAdapterError translates the adapter's transport error into a service
// business error. The original error stays in the chain so
// adapter.ServerMessage still finds the server-provided text.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	msg := adapter.ServerMessage(err)

	switch {
	case errors.Is(err, adapter.ErrUnauthorized):
		if msg == app.MsgInvalidLoginPassword {
			return fmt.Errorf("%w: %w", ErrWrongPassword, err)
		}
		return fmt.Errorf("%w: %w", ErrUnauthenticated, err)

	case errors.Is(err, adapter.ErrBadRequest):
		switch msg {
		case app.MsgAllFieldsMandatory, app.MsgInvalidDataProvided:
			return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
		case app.MsgUserAlreadyRegistered:
			return fmt.Errorf("%w: %w", store.ErrEmailAlreadyExists, err)
		}

	case errors.Is(err, adapter.ErrNotFound):
		switch msg {
		case app.MsgBlogNotFound:
			return fmt.Errorf("%w: %w", store.ErrPostNotFound, err)
		case app.MsgUserNotFound:
			return fmt.Errorf("%w: %w", store.ErrUserNotFound, err)
		}
	}

	return err
}
