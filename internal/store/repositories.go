package store

import (
	"context"

	"github.com/MKhiriev/go-lock-keeper/internal/config"
	"github.com/MKhiriev/go-lock-keeper/internal/logger"
)

// Repositories groups the repositories served by one database connection.
type Repositories struct {
	VaultRepository VaultRepository

	db *DB
}

// NewRepositories connects to the configured database, applies migrations
// and builds the repositories.
func NewRepositories(ctx context.Context, cfg config.DB, log *logger.Logger) (*Repositories, error) {
	db, err := NewConnect(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewRepositories").Msg("error applying migrations")
		_ = db.Close()
		return nil, err
	}

	return &Repositories{
		VaultRepository: NewVaultRepository(db, log),
		db:              db,
	}, nil
}

// Close releases the database connection.
func (r *Repositories) Close() error {
	if r.db == nil {
		return nil
	}
	return r.db.Close()
}
