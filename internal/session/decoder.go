package session

import (
	"github.com/MKhiriev/go-blog-keeper/internal/utils"
	"github.com/MKhiriev/go-blog-keeper/models"
)

// Decoder extracts the identity and expiry embedded in a credential.
type Decoder interface {
	Decode(credential string) (models.Identity, error)
}

// JWTDecoder decodes JWT claims without verifying the signature. The client
// has no signing key; the server rejects forged tokens on first use.
type JWTDecoder struct{}

func (JWTDecoder) Decode(credential string) (models.Identity, error) {
	return utils.ParseIdentityFromJWT(credential)
}
