package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validServerConfig() *StructuredConfig {
	cfg := defaultConfig()
	cfg.Storage.DB.DSN = "postgres://localhost/blog"
	cfg.App.TokenSignKey = "secret"
	return cfg
}

func TestStructuredConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{"valid", func(*StructuredConfig) {}, nil},
		{"no dsn", func(cfg *StructuredConfig) { cfg.Storage.DB.DSN = "" }, ErrInvalidStorageConfigs},
		{"no sign key", func(cfg *StructuredConfig) { cfg.App.TokenSignKey = "" }, ErrInvalidAppConfigs},
		{"no issuer", func(cfg *StructuredConfig) { cfg.App.TokenIssuer = "" }, ErrInvalidAppConfigs},
		{"zero token duration", func(cfg *StructuredConfig) { cfg.App.TokenDuration = 0 }, ErrInvalidAppConfigs},
		{"no listeners", func(cfg *StructuredConfig) { cfg.Server.HTTPAddress = "" }, ErrInvalidServerConfigs},
		{"grpc only", func(cfg *StructuredConfig) {
			cfg.Server.HTTPAddress = ""
			cfg.Server.GRPCAddress = "localhost:9090"
		}, nil},
		{"negative rate limit", func(cfg *StructuredConfig) { cfg.Server.RateLimitRPS = -1 }, ErrInvalidServerConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validServerConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestClientConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *ClientConfig)
		wantErr error
	}{
		{"defaults are valid", func(*ClientConfig) {}, nil},
		{"in-memory credential db", func(cfg *ClientConfig) { cfg.Storage.CredentialDBPath = ":memory:" }, ErrInvalidStorageConfigs},
		{"no credential db", func(cfg *ClientConfig) { cfg.Storage.CredentialDBPath = "" }, ErrInvalidStorageConfigs},
		{"no server url", func(cfg *ClientConfig) { cfg.Adapter.ServerURL = "" }, ErrInvalidAdapterConfigs},
		{"no timeout", func(cfg *ClientConfig) { cfg.Adapter.RequestTimeout = 0 }, ErrInvalidAdapterConfigs},
		{"no expiry interval", func(cfg *ClientConfig) { cfg.Workers.ExpiryCheckInterval = 0 }, ErrInvalidWorkerConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := newClientConfig(defaultConfig())
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestNewClientConfig_MapsFields(t *testing.T) {
	cfg := &StructuredConfig{
		App: App{HashKey: "hk", LogLevel: "info"},
		Client: Client{
			ServerURL:           "http://blog.local",
			CredentialDBPath:    "cred.db",
			LogFile:             "client.log",
			RequestTimeout:      3 * time.Second,
			ExpiryCheckInterval: 7 * time.Second,
		},
	}

	clientCfg := newClientConfig(cfg)

	assert.Equal(t, "http://blog.local", clientCfg.Adapter.ServerURL)
	assert.Equal(t, "hk", clientCfg.Adapter.HashKey)
	assert.Equal(t, 3*time.Second, clientCfg.Adapter.RequestTimeout)
	assert.Equal(t, "cred.db", clientCfg.Storage.CredentialDBPath)
	assert.Equal(t, 7*time.Second, clientCfg.Workers.ExpiryCheckInterval)
	assert.Equal(t, "client.log", clientCfg.LogFile)
	assert.Equal(t, "info", clientCfg.LogLevel)
}
