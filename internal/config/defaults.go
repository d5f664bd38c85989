package config

import "time"

const (
	defaultHTTPAddress         = "localhost:8080"
	defaultTokenIssuer         = "go-blog-keeper"
	defaultTokenDuration       = 24 * time.Hour
	defaultRequestTimeout      = 30 * time.Second
	defaultRateLimitRPS        = 5
	defaultRateLimitBurst      = 10
	defaultServerURL           = "http://localhost:8080"
	defaultCredentialDBPath    = "blog-keeper.db"
	defaultClientTimeout       = 10 * time.Second
	defaultExpiryCheckInterval = time.Minute
	defaultVersion             = "N/A"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   defaultTokenIssuer,
			TokenDuration: defaultTokenDuration,
			Version:       defaultVersion,
		},
		Server: Server{
			HTTPAddress:    defaultHTTPAddress,
			RequestTimeout: defaultRequestTimeout,
			RateLimitRPS:   defaultRateLimitRPS,
			RateLimitBurst: defaultRateLimitBurst,
		},
		Client: Client{
			ServerURL:           defaultServerURL,
			CredentialDBPath:    defaultCredentialDBPath,
			RequestTimeout:      defaultClientTimeout,
			ExpiryCheckInterval: defaultExpiryCheckInterval,
		},
	}
}
