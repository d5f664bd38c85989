package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/MKhiriev/go-blog-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSignUp() models.SignUpRequest {
	return models.SignUpRequest{Name: "Alice", Email: "alice@example.com", Password: "secret1"}
}

func TestUserValidator_SignUp(t *testing.T) {
	tests := []struct {
		name   string
		modify func(r *models.SignUpRequest)
		want   error
	}{
		{"valid", func(r *models.SignUpRequest) {}, nil},
		{"short name", func(r *models.SignUpRequest) { r.Name = "Al" }, ErrNameTooShort},
		{"long name", func(r *models.SignUpRequest) { r.Name = strings.Repeat("a", 31) }, ErrNameTooLong},
		{"no name", func(r *models.SignUpRequest) { r.Name = "" }, ErrNameRequired},
		{"no email", func(r *models.SignUpRequest) { r.Email = "" }, ErrEmailRequired},
		{"bad email", func(r *models.SignUpRequest) { r.Email = "alice" }, ErrEmailInvalid},
		{"email without tld", func(r *models.SignUpRequest) { r.Email = "alice@localhost" }, ErrEmailInvalid},
		{"email with display name", func(r *models.SignUpRequest) { r.Email = "Alice <alice@example.com>" }, ErrEmailInvalid},
		{"no password", func(r *models.SignUpRequest) { r.Password = "" }, ErrPasswordRequired},
		{"short password", func(r *models.SignUpRequest) { r.Password = "12345" }, ErrPasswordTooShort},
		{"profile url is optional", func(r *models.SignUpRequest) { r.ProfileURL = "" }, nil},
	}

	v := NewUserValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := validSignUp()
			tt.modify(&r)

			err := v.Validate(context.Background(), &r)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestUserValidator_Login(t *testing.T) {
	v := NewUserValidator()

	assert.NoError(t, v.Validate(context.Background(), models.LoginRequest{Email: "a@b.c", Password: "x"}))

	err := v.Validate(context.Background(), models.LoginRequest{})
	assert.ErrorIs(t, err, ErrEmailRequired)
	assert.ErrorIs(t, err, ErrPasswordRequired)

	// login does not enforce format or length
	assert.NoError(t, v.Validate(context.Background(), models.LoginRequest{Email: "not-an-email", Password: "1"}))
}

func TestUserValidator_Messages(t *testing.T) {
	assert.Equal(t, `"name" length must be at least 3 characters long`, ErrNameTooShort.Error())
	assert.Equal(t, `"password" length must be at least 6 characters long`, ErrPasswordTooShort.Error())
	assert.Equal(t, `"email" must be a valid email`, ErrEmailInvalid.Error())
}

func TestUserValidator_Unsupported(t *testing.T) {
	v := NewUserValidator()
	assert.ErrorIs(t, v.Validate(context.Background(), 42), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(context.Background(), models.LoginRequest{}, FieldName), ErrUnknownField)
}
