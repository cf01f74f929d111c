package config

import (
	"fmt"
	"time"
)

// ClientConfig is the operator CLI view of [StructuredConfig].
type ClientConfig struct {
	// ServerURL is the API base URL.
	ServerURL string
	// Token is the bearer token for authenticated calls. It may be empty
	// when the CLI mints one itself from TokenSignKey.
	Token string
	// RequestTimeout bounds each outbound request.
	RequestTimeout time.Duration

	// TokenSignKey, TokenIssuer and TokenDuration are used by the "token"
	// subcommand.
	TokenSignKey  string
	TokenIssuer   string
	TokenDuration time.Duration

	// LogLevel of the CLI logger.
	LogLevel string
}

// GetClientConfig builds the CLI config from env, the CLI global flags in
// args, the JSON file and defaults. It returns the arguments left after the
// global flags, i.e. the subcommand and its arguments.
func GetClientConfig(args []string) (*ClientConfig, []string, error) {
	b := newConfigBuilder().
		withEnv().
		withClientFlags(args).
		withJSON().
		withDefaults()

	cfg, err := b.build()
	if err != nil {
		return nil, nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		ServerURL:      cfg.Client.ServerURL,
		Token:          cfg.Client.Token,
		RequestTimeout: cfg.Client.RequestTimeout,
		TokenSignKey:   cfg.App.TokenSignKey,
		TokenIssuer:    cfg.App.TokenIssuer,
		TokenDuration:  cfg.App.TokenDuration,
		LogLevel:       cfg.App.LogLevel,
	}

	return clientCfg, b.args, clientCfg.validate()
}
