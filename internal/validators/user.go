package validators

import (
	"context"
	"errors"
	"net/mail"
	"strings"

	"github.com/MKhiriev/go-blog-keeper/models"
)

// User field names.
const (
	FieldName     = "name"
	FieldEmail    = "email"
	FieldPassword = "password"
)

const (
	NameMinLength     = 3
	NameMaxLength     = 30
	PasswordMinLength = 6
)

// UserValidator checks sign-up and login bodies.
type UserValidator struct{}

// NewUserValidator constructs a UserValidator.
func NewUserValidator() Validator {
	return &UserValidator{}
}

func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.SignUpRequest:
		return v.validateSignUp(value, fields...)
	case *models.SignUpRequest:
		return v.validateSignUp(*value, fields...)
	case models.LoginRequest:
		return v.validateLogin(value, fields...)
	case *models.LoginRequest:
		return v.validateLogin(*value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *UserValidator) validateSignUp(req models.SignUpRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldEmail, FieldPassword}
	}

	var errs []error
	for _, f := range fields {
		switch f {
		case FieldName:
			errs = append(errs, checkLength(req.Name, ErrNameRequired, ErrNameTooShort, NameMinLength, ErrNameTooLong, NameMaxLength))
		case FieldEmail:
			errs = append(errs, checkEmail(req.Email))
		case FieldPassword:
			if req.Password == "" {
				errs = append(errs, ErrPasswordRequired)
			} else if len([]rune(req.Password)) < PasswordMinLength {
				errs = append(errs, ErrPasswordTooShort)
			}
		default:
			return ErrUnknownField
		}
	}

	return errors.Join(errs...)
}

// validateLogin only checks presence; a wrong password is an
// authentication failure, not a validation one.
func (v *UserValidator) validateLogin(req models.LoginRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	var errs []error
	for _, f := range fields {
		switch f {
		case FieldEmail:
			if strings.TrimSpace(req.Email) == "" {
				errs = append(errs, ErrEmailRequired)
			}
		case FieldPassword:
			if req.Password == "" {
				errs = append(errs, ErrPasswordRequired)
			}
		default:
			return ErrUnknownField
		}
	}

	return errors.Join(errs...)
}

// checkEmail accepts a bare address whose domain has at least one dot.
func checkEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return ErrEmailRequired
	}

	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email || addr.Name != "" {
		return ErrEmailInvalid
	}

	at := strings.LastIndexByte(email, '@')
	domain := email[at+1:]
	if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return ErrEmailInvalid
	}

	return nil
}
