package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// fileConfig mirrors [StructuredConfig] in the layout accepted by config
// files. The same tags serve both the JSON and the YAML decoder.
type fileConfig struct {
	Auth struct {
		TokenSignKey  string   `json:"token_sign_key" yaml:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer" yaml:"token_issuer"`
		TokenDuration Duration `json:"token_duration" yaml:"token_duration"`
	} `json:"auth" yaml:"auth"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn" yaml:"dsn"`
		} `json:"db" yaml:"db"`
	} `json:"storage" yaml:"storage"`

	Server struct {
		HTTPAddress    string   `json:"http_address" yaml:"http_address"`
		GRPCAddress    string   `json:"grpc_address" yaml:"grpc_address"`
		RequestTimeout Duration `json:"request_timeout" yaml:"request_timeout"`
		RateLimitRPS   float64  `json:"rate_limit_rps" yaml:"rate_limit_rps"`
		RateLimitBurst int      `json:"rate_limit_burst" yaml:"rate_limit_burst"`
	} `json:"server" yaml:"server"`

	Security struct {
		HashKey string `json:"hash_key" yaml:"hash_key"`
	} `json:"security" yaml:"security"`

	Log struct {
		Level string `json:"level" yaml:"level"`
	} `json:"log" yaml:"log"`

	Client struct {
		ServerURL           string   `json:"server_url" yaml:"server_url"`
		CredentialDBPath    string   `json:"credential_db" yaml:"credential_db"`
		LogFile             string   `json:"log_file" yaml:"log_file"`
		RequestTimeout      Duration `json:"request_timeout" yaml:"request_timeout"`
		ExpiryCheckInterval Duration `json:"expiry_check_interval" yaml:"expiry_check_interval"`
	} `json:"client" yaml:"client"`
}

var errUnsupportedConfigFormat = errors.New("unsupported config file format")

// parseFile reads a JSON (.json) or YAML (.yaml, .yml) config file.
func parseFile(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading a config file: %w", err)
	}

	var fc fileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		err = json.Unmarshal(data, &fc)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fc)
	default:
		return nil, fmt.Errorf("%w: %s", errUnsupportedConfigFormat, path)
	}
	if err != nil {
		return nil, fmt.Errorf("error decoding config file: %w", err)
	}

	return fc.toStructured(), nil
}

func (fc fileConfig) toStructured() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenSignKey:  fc.Auth.TokenSignKey,
			TokenIssuer:   fc.Auth.TokenIssuer,
			TokenDuration: time.Duration(fc.Auth.TokenDuration),
			HashKey:       fc.Security.HashKey,
			LogLevel:      fc.Log.Level,
		},
		Storage: Storage{
			DB: DB{
				DSN: fc.Storage.DB.DSN,
			},
		},
		Server: Server{
			HTTPAddress:    fc.Server.HTTPAddress,
			GRPCAddress:    fc.Server.GRPCAddress,
			RequestTimeout: time.Duration(fc.Server.RequestTimeout),
			RateLimitRPS:   fc.Server.RateLimitRPS,
			RateLimitBurst: fc.Server.RateLimitBurst,
		},
		Client: Client{
			ServerURL:           fc.Client.ServerURL,
			CredentialDBPath:    fc.Client.CredentialDBPath,
			LogFile:             fc.Client.LogFile,
			RequestTimeout:      time.Duration(fc.Client.RequestTimeout),
			ExpiryCheckInterval: time.Duration(fc.Client.ExpiryCheckInterval),
		},
	}
}

// Duration is a wrapper around time.Duration that decodes from strings like
// "1h" or "30s" in both JSON and YAML. Plain numbers are nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration: %s", string(b))
	}
}

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var n int64
	if err := node.Decode(&n); err == nil {
		*d = Duration(time.Duration(n))
		return nil
	}

	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	tmp, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(tmp)
	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
