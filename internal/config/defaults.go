package config

import "time"

const (
	DefaultHTTPAddress    = "localhost:8080"
	DefaultServerURL      = "http://localhost:8080"
	DefaultDSN            = "lock-keeper.db"
	DefaultTokenIssuer    = "go-lock-keeper"
	DefaultTokenDuration  = time.Hour
	DefaultRequestTimeout = 30 * time.Second
	DefaultCacheTTL       = 30 * time.Second
	DefaultLogLevel       = "debug"
)

func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   DefaultTokenIssuer,
			TokenDuration: DefaultTokenDuration,
			LogLevel:      DefaultLogLevel,
		},
		Storage: Storage{
			DB:    DB{DSN: DefaultDSN},
			Cache: Cache{TTL: DefaultCacheTTL},
		},
		Server: Server{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
		Client: Client{
			ServerURL:      DefaultServerURL,
			RequestTimeout: DefaultRequestTimeout,
		},
	}
}
