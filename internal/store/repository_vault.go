package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/MKhiriev/go-lock-keeper/internal/logger"
	"github.com/MKhiriev/go-lock-keeper/models"
)

// vaultRepository is the SQL implementation of [VaultRepository] shared by
// the PostgreSQL and SQLite dialects.
type vaultRepository struct {
	*DB
	logger *logger.Logger
}

// NewVaultRepository constructs a [VaultRepository] backed by db.
func NewVaultRepository(db *DB, logger *logger.Logger) VaultRepository {
	logger.Debug().Msg("creating vault repository")
	return &vaultRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateVault inserts the vault row and its beneficiaries in one transaction.
//
// Error handling:
//   - unique or primary key violation → [ErrVaultAlreadyExists].
//   - any other failure → wrapped low-level sentinel.
func (r *vaultRepository) CreateVault(ctx context.Context, def models.VaultDefinition) error {
	log := logger.FromContext(ctx)

	if def.CreatedAt > math.MaxInt64 {
		return fmt.Errorf("%w: created_at %d out of range", ErrBuildingSQLQuery, def.CreatedAt)
	}
	schedule, err := json.Marshal(def.Schedule)
	if err != nil {
		log.Err(err).Str("func", "*vaultRepository.CreateVault").Msg("failed to encode schedule")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.withRetry(ctx, func() error {
		tx, err := r.BeginTx(ctx, nil)
		if err != nil {
			log.Err(err).Str("func", "*vaultRepository.CreateVault").Msg("failed to begin transaction")
			return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
		}
		defer tx.Rollback() //nolint:errcheck

		_, err = tx.ExecContext(ctx, r.rebind(insertVault),
			def.ID, def.Name, def.Owner, def.Asset, string(schedule), def.Deposit, def.Weighted, int64(def.CreatedAt), def.Salt)
		if err != nil {
			log.Err(err).Str("func", "*vaultRepository.CreateVault").Str("vault", def.ID).Msg("failed to insert vault")
			if isUniqueViolation(err) {
				return ErrVaultAlreadyExists
			}
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		for i, b := range def.Beneficiaries {
			if _, err = tx.ExecContext(ctx, r.rebind(insertBeneficiary), def.ID, i, b.Address, b.Share); err != nil {
				log.Err(err).
					Str("func", "*vaultRepository.CreateVault").
					Str("vault", def.ID).
					Int("position", i).
					Msg("failed to insert beneficiary")
				return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
			}
		}

		if err = tx.Commit(); err != nil {
			log.Err(err).Str("func", "*vaultRepository.CreateVault").Msg("failed to commit transaction")
			return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
		}
		return nil
	})
}

// GetVault loads the vault row and its beneficiaries in declaration order.
func (r *vaultRepository) GetVault(ctx context.Context, id string) (models.VaultDefinition, error) {
	log := logger.FromContext(ctx)

	def, err := scanVault(r.QueryRowContext(ctx, r.rebind(selectVaultByID), id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.VaultDefinition{}, ErrVaultNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*vaultRepository.GetVault").Str("vault", id).Msg("failed to scan vault")
		return models.VaultDefinition{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if def.Beneficiaries, err = r.beneficiaries(ctx, id); err != nil {
		return models.VaultDefinition{}, err
	}

	return def, nil
}

// ListVaults runs the squirrel-built listing query, then loads the
// beneficiaries of every returned vault.
func (r *vaultRepository) ListVaults(ctx context.Context, filter models.VaultFilter) ([]models.VaultDefinition, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListVaultsQuery(r.builder, filter)
	if err != nil {
		log.Err(err).Str("func", "*vaultRepository.ListVaults").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*vaultRepository.ListVaults").Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	defs := make([]models.VaultDefinition, 0, 16)
	for rows.Next() {
		def, scanErr := scanVault(rows)
		if scanErr != nil {
			_ = rows.Close()
			log.Err(scanErr).Str("func", "*vaultRepository.ListVaults").Msg("failed to scan vault")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		defs = append(defs, def)
	}
	if err = rows.Err(); err != nil {
		_ = rows.Close()
		log.Err(err).Str("func", "*vaultRepository.ListVaults").Msg("rows iteration error")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}
	// closed before the nested queries: sqlite runs on a single connection
	_ = rows.Close()

	for i := range defs {
		if defs[i].Beneficiaries, err = r.beneficiaries(ctx, defs[i].ID); err != nil {
			return nil, err
		}
	}

	return defs, nil
}

func (r *vaultRepository) beneficiaries(ctx context.Context, vaultID string) ([]models.ShareSpec, error) {
	log := logger.FromContext(ctx)

	rows, err := r.QueryContext(ctx, r.rebind(selectBeneficiaries), vaultID)
	if err != nil {
		log.Err(err).Str("func", "*vaultRepository.beneficiaries").Str("vault", vaultID).Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	shares := make([]models.ShareSpec, 0, 4)
	for rows.Next() {
		var s models.ShareSpec
		if err = rows.Scan(&s.Address, &s.Share); err != nil {
			log.Err(err).Str("func", "*vaultRepository.beneficiaries").Msg("failed to scan beneficiary")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		shares = append(shares, s)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return shares, nil
}

// SaveWithdrawal journals w.
//
// Error handling:
//   - foreign key violation → [ErrVaultNotFound].
//   - unique or primary key violation → [ErrWithdrawalAlreadyExists].
func (r *vaultRepository) SaveWithdrawal(ctx context.Context, w models.Withdrawal) error {
	log := logger.FromContext(ctx)

	if w.PaidAt > math.MaxInt64 {
		return fmt.Errorf("%w: paid_at %d out of range", ErrBuildingSQLQuery, w.PaidAt)
	}
	if w.CreatedAt.IsZero() {
		w.CreatedAt = time.Now().UTC()
	}

	return r.withRetry(ctx, func() error {
		_, err := r.ExecContext(ctx, r.rebind(insertWithdrawal),
			w.ID, w.VaultID, w.Kind, w.Recipient, w.Amount, int64(w.PaidAt), w.CreatedAt)
		if err == nil {
			return nil
		}

		log.Err(err).
			Str("func", "*vaultRepository.SaveWithdrawal").
			Str("vault", w.VaultID).
			Str("withdrawal", w.ID).
			Msg("failed to insert withdrawal")
		switch {
		case isForeignKeyViolation(err):
			return ErrVaultNotFound
		case isUniqueViolation(err):
			return ErrWithdrawalAlreadyExists
		default:
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	})
}

// DeleteWithdrawal removes the journal entry with the given id.
func (r *vaultRepository) DeleteWithdrawal(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	return r.withRetry(ctx, func() error {
		result, err := r.ExecContext(ctx, r.rebind(deleteWithdrawal), id)
		if err != nil {
			log.Err(err).Str("func", "*vaultRepository.DeleteWithdrawal").Str("withdrawal", id).Msg("failed to delete withdrawal")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		affected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		if affected == 0 {
			return ErrWithdrawalNotFound
		}
		return nil
	})
}

// ListWithdrawals returns the journal of vaultID ordered by payment time.
func (r *vaultRepository) ListWithdrawals(ctx context.Context, vaultID string) ([]models.Withdrawal, error) {
	log := logger.FromContext(ctx)

	rows, err := r.QueryContext(ctx, r.rebind(selectWithdrawals), vaultID)
	if err != nil {
		log.Err(err).Str("func", "*vaultRepository.ListWithdrawals").Str("vault", vaultID).Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	withdrawals := make([]models.Withdrawal, 0, 16)
	for rows.Next() {
		var (
			w      models.Withdrawal
			paidAt int64
		)
		if err = rows.Scan(&w.ID, &w.VaultID, &w.Kind, &w.Recipient, &w.Amount, &paidAt, &w.CreatedAt); err != nil {
			log.Err(err).Str("func", "*vaultRepository.ListWithdrawals").Msg("failed to scan withdrawal")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		if paidAt < 0 {
			return nil, fmt.Errorf("%w: negative paid_at in withdrawal %s", ErrScanningRows, w.ID)
		}
		w.PaidAt = uint64(paidAt)
		withdrawals = append(withdrawals, w)
	}
	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*vaultRepository.ListWithdrawals").Msg("rows iteration error")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return withdrawals, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanVault(row rowScanner) (models.VaultDefinition, error) {
	var (
		def       models.VaultDefinition
		schedule  string
		createdAt int64
	)
	err := row.Scan(&def.ID, &def.Name, &def.Owner, &def.Asset, &schedule, &def.Deposit, &def.Weighted, &createdAt, &def.Salt)
	if err != nil {
		return models.VaultDefinition{}, err
	}
	if createdAt < 0 {
		return models.VaultDefinition{}, fmt.Errorf("negative created_at in vault %s", def.ID)
	}
	def.CreatedAt = uint64(createdAt)

	if err = json.Unmarshal([]byte(schedule), &def.Schedule); err != nil {
		return models.VaultDefinition{}, fmt.Errorf("decode schedule of vault %s: %w", def.ID, err)
	}

	return def, nil
}
