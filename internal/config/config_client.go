package config

import (
	"fmt"
	"time"
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// ServerURL is the blog API base URL.
	ServerURL string
	// HashKey signs outgoing post payloads when non-empty.
	HashKey string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// CredentialDBPath is the SQLite file holding the credential slot.
	CredentialDBPath string
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// ExpiryCheckInterval defines how often the stored credential is
	// re-checked for expiry.
	ExpiryCheckInterval time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	Adapter  ClientAdapter
	Storage  ClientStorage
	Workers  ClientWorkers
	LogFile  string
	LogLevel string
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := loadStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		Adapter: ClientAdapter{
			ServerURL:      cfg.Client.ServerURL,
			HashKey:        cfg.App.HashKey,
			RequestTimeout: cfg.Client.RequestTimeout,
		},
		Storage: ClientStorage{
			CredentialDBPath: cfg.Client.CredentialDBPath,
		},
		Workers: ClientWorkers{
			ExpiryCheckInterval: cfg.Client.ExpiryCheckInterval,
		},
		LogFile:  cfg.Client.LogFile,
		LogLevel: cfg.App.LogLevel,
	}
}
