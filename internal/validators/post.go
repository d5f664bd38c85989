package validators

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-blog-keeper/models"
)

// Post field names, as they appear in JSON bodies.
const (
	FieldTitle     = "title"
	FieldContent   = "content"
	FieldAuthor    = "author"
	FieldCategory  = "category"
	FieldTags      = "tags"
	FieldPublished = "published"
)

const (
	TitleMinLength   = 3
	TitleMaxLength   = 100
	ContentMinLength = 3
)

// PostValidator checks post bodies. It accepts [models.PostInput] and
// [models.Post] (value or pointer); a Post always has Published set.
type PostValidator struct{}

// NewPostValidator constructs a PostValidator.
func NewPostValidator() Validator {
	return &PostValidator{}
}

func (v *PostValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.PostInput:
		return v.validatePostInput(value, fields...)
	case *models.PostInput:
		return v.validatePostInput(*value, fields...)
	case models.Post:
		return v.validatePostInput(value.Input(), fields...)
	case *models.Post:
		return v.validatePostInput(value.Input(), fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *PostValidator) validatePostInput(in models.PostInput, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldContent, FieldAuthor, FieldCategory, FieldTags, FieldPublished}
	}

	var errs []error
	for _, f := range fields {
		switch f {
		case FieldTitle:
			errs = append(errs, checkLength(in.Title, ErrTitleRequired, ErrTitleTooShort, TitleMinLength, ErrTitleTooLong, TitleMaxLength))
		case FieldContent:
			errs = append(errs, checkLength(in.Content, ErrContentRequired, ErrContentTooShort, ContentMinLength, nil, 0))
		case FieldAuthor:
			if strings.TrimSpace(in.Author) == "" {
				errs = append(errs, ErrAuthorRequired)
			}
		case FieldCategory:
			switch {
			case strings.TrimSpace(string(in.Category)) == "":
				errs = append(errs, ErrCategoryRequired)
			case !in.Category.IsValid():
				errs = append(errs, ErrCategoryInvalid)
			}
		case FieldTags:
			if strings.TrimSpace(in.Tags) == "" {
				errs = append(errs, ErrTagsRequired)
			}
		case FieldPublished:
			if in.Published == nil {
				errs = append(errs, ErrPublishedRequired)
			}
		default:
			return ErrUnknownField
		}
	}

	return errors.Join(errs...)
}

// checkLength trims s and checks it against the bounds. A zero max means
// unbounded.
func checkLength(s string, requiredErr, shortErr error, min int, longErr error, max int) error {
	s = strings.TrimSpace(s)
	n := utf8.RuneCountInString(s)

	switch {
	case n == 0:
		return requiredErr
	case n < min:
		return shortErr
	case max > 0 && n > max:
		return longErr
	}
	return nil
}
