package store

import "context"

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// CredentialRepository is the client's single-slot credential storage.
// Read reports ok == false when the slot is empty.
type CredentialRepository interface {
	Read(ctx context.Context) (credential string, ok bool, err error)
	Write(ctx context.Context, credential string) error
	Clear(ctx context.Context) error
}
