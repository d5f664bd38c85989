package validators

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-blog-keeper/models"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	// ErrValidation matches every rule violation produced by this package.
	ErrValidation = errors.New("validation failed")
)

// FieldError is a single rule violation. Values are comparable, so the
// package-level rule errors below can be matched with [errors.Is].
type FieldError struct {
	Field   string
	Message string
}

func (e FieldError) Error() string {
	return e.Message
}

// Is makes every FieldError match [ErrValidation].
func (e FieldError) Is(target error) bool {
	return target == ErrValidation
}

func tooShort(field string, min int) FieldError {
	return FieldError{Field: field, Message: fmt.Sprintf("%q length must be at least %d characters long", field, min)}
}

func tooLong(field string, max int) FieldError {
	return FieldError{Field: field, Message: fmt.Sprintf("%q length must be less than or equal to %d characters long", field, max)}
}

func required(field string) FieldError {
	return FieldError{Field: field, Message: fmt.Sprintf("%q is required", field)}
}

func categoryChoices() string {
	names := make([]string, 0, len(models.AllCategories()))
	for _, c := range models.AllCategories() {
		names = append(names, string(c))
	}
	return strings.Join(names, ", ")
}

// Post rules.
var (
	ErrTitleRequired     = required(FieldTitle)
	ErrTitleTooShort     = tooShort(FieldTitle, TitleMinLength)
	ErrTitleTooLong      = tooLong(FieldTitle, TitleMaxLength)
	ErrContentRequired   = required(FieldContent)
	ErrContentTooShort   = tooShort(FieldContent, ContentMinLength)
	ErrAuthorRequired    = required(FieldAuthor)
	ErrTagsRequired      = required(FieldTags)
	ErrCategoryRequired  = required(FieldCategory)
	ErrCategoryInvalid   = FieldError{Field: FieldCategory, Message: fmt.Sprintf("%q must be one of [%s]", FieldCategory, categoryChoices())}
	ErrPublishedRequired = required(FieldPublished)
)

// User rules.
var (
	ErrNameRequired     = required(FieldName)
	ErrNameTooShort     = tooShort(FieldName, NameMinLength)
	ErrNameTooLong      = tooLong(FieldName, NameMaxLength)
	ErrEmailRequired    = required(FieldEmail)
	ErrEmailInvalid     = FieldError{Field: FieldEmail, Message: fmt.Sprintf("%q must be a valid email", FieldEmail)}
	ErrPasswordRequired = required(FieldPassword)
	ErrPasswordTooShort = tooShort(FieldPassword, PasswordMinLength)
)

// FieldErrors returns the violations contained in err keyed by field.
// Only the first violation per field is kept.
func FieldErrors(err error) map[string]string {
	out := make(map[string]string)
	collectFieldErrors(err, out)
	return out
}

func collectFieldErrors(err error, out map[string]string) {
	if err == nil {
		return
	}

	var fe FieldError
	if errors.As(err, &fe) {
		if _, seen := out[fe.Field]; !seen {
			out[fe.Field] = fe.Message
		}
	}

	switch wrapped := err.(type) {
	case interface{ Unwrap() []error }:
		for _, e := range wrapped.Unwrap() {
			collectFieldErrors(e, out)
		}
	case interface{ Unwrap() error }:
		collectFieldErrors(wrapped.Unwrap(), out)
	}
}

// Message returns the text of the first violation in err, or err.Error()
// when err carries none.
func Message(err error) string {
	var fe FieldError
	if errors.As(err, &fe) {
		return fe.Message
	}
	return err.Error()
}
