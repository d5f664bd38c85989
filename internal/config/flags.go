package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"time"
)

// NetAddress is a host:port flag value. An empty host listens on all
// interfaces.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses the configuration flags from args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-grpc-address grpc server address in format [host]:[port]
//	-d database DSN
//	-c/-config json or yaml file path with configs
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "24h")
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-rate-limit-rps, -rate-limit-burst per-IP limit of the auth routes
//	-hash-key request signature key
//	-log-level zerolog level name
//	-server-url blog API base URL used by the client
//	-credential-db client credential SQLite file
//	-log-file client log file
//	-expiry-check-interval how often the client re-checks its token
func ParseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("go-blog-keeper", flag.ContinueOnError)

	var (
		cfg            StructuredConfig
		httpAddress    NetAddress
		grpcAddress    NetAddress
		requestTimeout time.Duration
	)

	fs.Var(&httpAddress, "a", "Net address host:port")
	fs.Var(&grpcAddress, "grpc-address", "Net grpc server address host:port")
	fs.StringVar(&cfg.Storage.DB.DSN, "d", "", "Database DSN")
	fs.StringVar(&cfg.ConfigFilePath, "c", "", "Config file path (json or yaml)")
	fs.StringVar(&cfg.ConfigFilePath, "config", "", "Config file path (alias)")
	fs.StringVar(&cfg.App.TokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&cfg.App.TokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&cfg.App.TokenDuration, "token-duration", 0, "Token duration (e.g., 24h)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.Float64Var(&cfg.Server.RateLimitRPS, "rate-limit-rps", 0, "Sign-up/login requests per second per IP")
	fs.IntVar(&cfg.Server.RateLimitBurst, "rate-limit-burst", 0, "Sign-up/login burst per IP")
	fs.StringVar(&cfg.App.HashKey, "hash-key", "", "Request signature key")
	fs.StringVar(&cfg.App.LogLevel, "log-level", "", "Log level")
	fs.StringVar(&cfg.Client.ServerURL, "server-url", "", "Blog API base URL")
	fs.StringVar(&cfg.Client.CredentialDBPath, "credential-db", "", "Client credential database path")
	fs.StringVar(&cfg.Client.LogFile, "log-file", "", "Client log file")
	fs.DurationVar(&cfg.Client.ExpiryCheckInterval, "expiry-check-interval", 0, "Token expiry check interval")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	cfg.Server.HTTPAddress = httpAddress.String()
	cfg.Server.GRPCAddress = grpcAddress.String()
	cfg.Server.RequestTimeout = requestTimeout
	cfg.Client.RequestTimeout = requestTimeout

	return &cfg, nil
}

func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set accepts "host:port", ":port" and "[ipv6]:port". The host must be
// "localhost" or an IP literal.
func (a *NetAddress) Set(s string) error {
	host, rawPort, err := net.SplitHostPort(s)
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(rawPort)
	if err != nil {
		return err
	}
	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "" && host != "localhost" && net.ParseIP(host) == nil {
		return errors.New("incorrect IP-address provided")
	}

	a.Host = host
	a.Port = port
	return nil
}
