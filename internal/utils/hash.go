package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"sync"
)

// PayloadSigner computes and checks the HashSHA256 signature of request
// bodies. A nil *PayloadSigner means signing is disabled: Sign returns ""
// and Verify accepts everything.
type PayloadSigner struct {
	pool sync.Pool
}

// NewPayloadSigner returns nil for an empty key.
func NewPayloadSigner(key string) *PayloadSigner {
	if key == "" {
		return nil
	}

	s := &PayloadSigner{}
	s.pool.New = func() any {
		return hmac.New(sha256.New, []byte(key))
	}
	return s
}

// Sign returns the hex HMAC-SHA256 of payload.
func (s *PayloadSigner) Sign(payload []byte) string {
	if s == nil {
		return ""
	}

	h := s.pool.Get().(hash.Hash)
	defer s.pool.Put(h)

	h.Reset()
	h.Write(payload)
	return hex.EncodeToString(h.Sum(nil))
}

// Verify compares signature with the signature of payload in constant time.
func (s *PayloadSigner) Verify(payload []byte, signature string) bool {
	if s == nil {
		return true
	}
	return hmac.Equal([]byte(s.Sign(payload)), []byte(signature))
}

// HashString is a one-off hex HMAC-SHA256 of data.
func HashString(data string, hashKey string) string {
	h := hmac.New(sha256.New, []byte(hashKey))
	h.Write([]byte(data))
	return hex.EncodeToString(h.Sum(nil))
}
