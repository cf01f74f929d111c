package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"

	"github.com/MKhiriev/go-lock-keeper/internal/asset"
	"github.com/MKhiriev/go-lock-keeper/internal/cache"
	"github.com/MKhiriev/go-lock-keeper/internal/logger"
	"github.com/MKhiriev/go-lock-keeper/internal/manifest"
	"github.com/MKhiriev/go-lock-keeper/internal/store"
	"github.com/MKhiriev/go-lock-keeper/internal/vault"
	"github.com/MKhiriev/go-lock-keeper/models"
)

type liveVault struct {
	name  string
	vault *vault.Vault
}

// vaultService keeps every vault of the process in memory. The repository
// holds the definitions and the payout journal; the book holds balances.
type vaultService struct {
	repo      store.VaultRepository
	snapshots cache.SnapshotCache
	book      *asset.Book
	ids       IDGenerator
	clock     func() time.Time

	mu     sync.RWMutex
	vaults map[common.Address]*liveVault

	logger *logger.Logger
}

// NewVaultService wires a VaultService. A nil clock means time.Now.
func NewVaultService(
	repo store.VaultRepository,
	snapshots cache.SnapshotCache,
	book *asset.Book,
	ids IDGenerator,
	clock func() time.Time,
	logger *logger.Logger,
) VaultService {
	logger.Debug().Msg("creating vault service")
	if clock == nil {
		clock = time.Now
	}
	if snapshots == nil {
		snapshots = cache.NopSnapshotCache{}
	}
	return &vaultService{
		repo:      repo,
		snapshots: snapshots,
		book:      book,
		ids:       ids,
		clock:     clock,
		vaults:    make(map[common.Address]*liveVault),
		logger:    logger,
	}
}

func (s *vaultService) now() uint64 {
	sec := s.clock().Unix()
	if sec < 0 {
		return 0
	}
	return uint64(sec)
}

func (s *vaultService) CreateFixedLock(ctx context.Context, caller common.Address, req models.FixedLockRequest) (models.CreateVaultResponse, error) {
	if req.Owner == "" {
		req.Owner = caller.Hex()
	}
	p, err := req.Params(s.now())
	if err != nil {
		return models.CreateVaultResponse{}, err
	}
	return s.CreateVault(ctx, req.Name, p)
}

func (s *vaultService) CreateVesting(ctx context.Context, caller common.Address, req models.VestingRequest) (models.CreateVaultResponse, error) {
	if req.Owner == "" {
		req.Owner = caller.Hex()
	}
	p, err := req.Params(s.now())
	if err != nil {
		return models.CreateVaultResponse{}, err
	}
	return s.CreateVault(ctx, req.Name, p)
}

// CreateVault validates p, persists its definition and funds the vault
// account with the deposit. Constructing an existing ID is a no-op.
func (s *vaultService) CreateVault(ctx context.Context, name string, p vault.Params) (models.CreateVaultResponse, error) {
	log := logger.FromContext(ctx)
	id := p.ID()

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, found := s.vaults[id]; found {
		return models.CreateVaultResponse{ID: id.Hex(), Created: false}, nil
	}

	v, err := s.build(p)
	if err != nil {
		log.Err(err).Str("func", "*vaultService.CreateVault").Str("vault", id.Hex()).Msg("invalid vault parameters")
		return models.CreateVaultResponse{}, err
	}

	def := models.NewVaultDefinition(name, p)
	err = s.repo.CreateVault(ctx, def)
	if errors.Is(err, store.ErrVaultAlreadyExists) {
		// persisted by another process sharing the database
		if err = s.restoreLocked(ctx, def); err != nil {
			return models.CreateVaultResponse{}, err
		}
		return models.CreateVaultResponse{ID: id.Hex(), Created: false}, nil
	}
	if err != nil {
		log.Err(err).Str("func", "*vaultService.CreateVault").Str("vault", id.Hex()).Msg("failed to persist vault")
		return models.CreateVaultResponse{}, fmt.Errorf("persist vault: %w", err)
	}

	if err = s.book.Credit(v.Asset(), id, v.Remaining()); err != nil {
		log.Err(err).Str("func", "*vaultService.CreateVault").Str("vault", id.Hex()).Msg("failed to fund vault")
		return models.CreateVaultResponse{}, fmt.Errorf("fund vault: %w", err)
	}

	s.vaults[id] = &liveVault{name: name, vault: v}
	log.Info().Str("vault", id.Hex()).Str("name", name).Str("schedule", string(p.Schedule.Kind())).Msg("vault constructed")

	return models.CreateVaultResponse{ID: id.Hex(), Created: true}, nil
}

func (s *vaultService) build(p vault.Params) (*vault.Vault, error) {
	transfer := newJournalingTransfer(s.repo, s.ids, asset.ForAsset(s.book, p.Asset), s.logger)
	return vault.New(p, transfer, s.logger)
}

// Restore loads every persisted vault. A vault whose journal does not replay
// cleanly stays registered in the faulted state.
func (s *vaultService) Restore(ctx context.Context) error {
	defs, err := s.repo.ListVaults(ctx, models.VaultFilter{})
	if err != nil {
		return fmt.Errorf("list persisted vaults: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, def := range defs {
		if err = s.restoreLocked(ctx, def); err != nil {
			return err
		}
	}

	s.logger.Info().Int("vaults", len(defs)).Msg("vaults restored")
	return nil
}

// restoreLocked rebuilds def and replays its journal. Must hold s.mu.
func (s *vaultService) restoreLocked(ctx context.Context, def models.VaultDefinition) error {
	log := logger.FromContext(ctx)

	p, err := def.Params()
	if err != nil {
		return fmt.Errorf("vault %s: %w", def.ID, err)
	}
	if p.ID().Hex() != def.ID {
		return fmt.Errorf("%w: %s derives %s", ErrVaultIDMismatch, def.ID, p.ID().Hex())
	}
	if _, found := s.vaults[p.ID()]; found {
		return nil
	}

	v, err := s.build(p)
	if err != nil {
		return fmt.Errorf("vault %s: %w", def.ID, err)
	}

	journal, err := s.repo.ListWithdrawals(ctx, def.ID)
	if err != nil {
		return fmt.Errorf("vault %s journal: %w", def.ID, err)
	}
	records := make([]vault.Record, 0, len(journal))
	for _, w := range journal {
		r, recErr := w.Record()
		if recErr != nil {
			return recErr
		}
		records = append(records, r)
	}

	if err = v.Restore(records...); err != nil {
		log.Err(err).
			Str("func", "*vaultService.restoreLocked").
			Str("vault", def.ID).
			Msg("journal replay failed, vault is faulted")
	}

	if err = s.book.Credit(v.Asset(), v.ID(), v.Remaining()); err != nil {
		return fmt.Errorf("fund vault %s: %w", def.ID, err)
	}

	s.vaults[v.ID()] = &liveVault{name: def.Name, vault: v}
	return nil
}

// ApplyManifest constructs each manifest entry unless it already exists.
func (s *vaultService) ApplyManifest(ctx context.Context, m manifest.Manifest) error {
	log := logger.FromContext(ctx)

	for _, entry := range m.Vaults {
		p, err := entry.Params()
		if err != nil {
			return fmt.Errorf("manifest vault %q: %w", entry.Name(), err)
		}

		resp, err := s.CreateVault(ctx, entry.Name(), p)
		if err != nil {
			return fmt.Errorf("manifest vault %q: %w", entry.Name(), err)
		}
		log.Info().
			Str("vault", resp.ID).
			Str("name", entry.Name()).
			Bool("created", resp.Created).
			Msg("manifest vault applied")
	}

	return nil
}

func (s *vaultService) lookup(id string) (*liveVault, error) {
	addr, err := models.ParseAddress(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", store.ErrVaultNotFound, id)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	lv, found := s.vaults[addr]
	if !found {
		return nil, fmt.Errorf("%w: %s", store.ErrVaultNotFound, id)
	}
	return lv, nil
}

// GetVault serves the cached snapshot, rendering and caching it on a miss.
func (s *vaultService) GetVault(ctx context.Context, id string) (models.VaultView, error) {
	log := logger.FromContext(ctx)

	lv, err := s.lookup(id)
	if err != nil {
		return models.VaultView{}, err
	}
	key := lv.vault.ID().Hex()

	view, err := s.snapshots.Get(ctx, key)
	if err == nil {
		return view, nil
	}
	if !errors.Is(err, cache.ErrNotFound) {
		log.Warn().Err(err).Str("vault", key).Msg("snapshot cache read failed")
	}

	view = models.NewVaultView(lv.name, lv.vault.Snapshot())
	if err = s.snapshots.Set(ctx, view); err != nil {
		log.Warn().Err(err).Str("vault", key).Msg("snapshot cache write failed")
		return view, nil
	}

	// a payout may have invalidated the key while view was being stored
	if lv.vault.Revision() != view.Revision {
		log.Debug().Str("vault", key).Uint64("revision", view.Revision).Msg("stale snapshot stored, invalidating")
		if err = s.snapshots.Invalidate(ctx, key); err != nil {
			log.Warn().Err(err).Str("vault", key).Msg("snapshot cache invalidation failed")
		}
	}

	return view, nil
}

// ListVaults narrows by owner and beneficiary in the repository and by status
// in memory.
func (s *vaultService) ListVaults(ctx context.Context, filter models.VaultFilter) ([]models.VaultView, error) {
	normalized, status, err := normalizeFilter(filter)
	if err != nil {
		return nil, err
	}

	defs, err := s.repo.ListVaults(ctx, normalized)
	if err != nil {
		return nil, err
	}

	views := make([]models.VaultView, 0, len(defs))
	for _, def := range defs {
		lv, lookupErr := s.lookup(def.ID)
		if lookupErr != nil {
			continue
		}
		snapshot := lv.vault.Snapshot()
		if status != nil && snapshot.Status != *status {
			continue
		}
		views = append(views, models.NewVaultView(lv.name, snapshot))
	}

	return views, nil
}

func normalizeFilter(filter models.VaultFilter) (models.VaultFilter, *vault.Status, error) {
	var out models.VaultFilter
	if filter.Owner != "" {
		addr, err := models.ParseAddress(filter.Owner)
		if err != nil {
			return out, nil, fmt.Errorf("%w: owner: %w", ErrInvalidFilter, err)
		}
		out.Owner = addr.Hex()
	}
	if filter.Beneficiary != "" {
		addr, err := models.ParseAddress(filter.Beneficiary)
		if err != nil {
			return out, nil, fmt.Errorf("%w: beneficiary: %w", ErrInvalidFilter, err)
		}
		out.Beneficiary = addr.Hex()
	}
	if filter.Status == "" {
		return out, nil, nil
	}
	status, err := vault.ParseStatus(strings.ToLower(strings.TrimSpace(filter.Status)))
	if err != nil {
		return out, nil, fmt.Errorf("%w: %w", ErrInvalidFilter, err)
	}
	out.Status = status.String()
	return out, &status, nil
}

// instant resolves an optional caller-supplied time.
func (s *vaultService) instant(at *uint64) uint64 {
	if at == nil {
		return s.now()
	}
	return *at
}

func (s *vaultService) BeneficiaryState(ctx context.Context, id string, addr common.Address, atOpt *uint64) (models.BeneficiaryState, error) {
	lv, err := s.lookup(id)
	if err != nil {
		return models.BeneficiaryState{}, err
	}
	at := s.instant(atOpt)

	unlocked, err := lv.vault.UnlockedAmount(addr, at)
	if err != nil {
		return models.BeneficiaryState{}, err
	}
	claimable, err := lv.vault.Claimable(addr, at)
	if err != nil {
		return models.BeneficiaryState{}, err
	}

	state := models.BeneficiaryState{
		VaultID:   lv.vault.ID().Hex(),
		Address:   addr.Hex(),
		At:        at,
		Unlocked:  unlocked.Dec(),
		Claimable: claimable.Dec(),
	}
	for _, b := range lv.vault.Snapshot().Beneficiaries {
		if b.Address == addr {
			state.Allocated = b.Allocated.Dec()
			state.Withdrawn = b.Withdrawn.Dec()
			state.Progress = lv.vault.Schedule().UnlockedFraction(at, b.Allocated).Float64()
			break
		}
	}

	return state, nil
}

func (s *vaultService) OwnerState(ctx context.Context, id string, atOpt *uint64) (models.OwnerState, error) {
	lv, err := s.lookup(id)
	if err != nil {
		return models.OwnerState{}, err
	}
	at := s.instant(atOpt)

	return models.OwnerState{
		VaultID:     lv.vault.ID().Hex(),
		Owner:       lv.vault.Owner().Hex(),
		At:          at,
		Unallocated: lv.vault.Unallocated().Dec(),
		Reclaimed:   lv.vault.Reclaimed().Dec(),
		Reclaimable: lv.vault.Reclaimable(at).Dec(),
	}, nil
}

// Withdraw pays the caller everything claimable now.
func (s *vaultService) Withdraw(ctx context.Context, id string, caller common.Address) (models.PayoutResponse, error) {
	return s.payout(ctx, id, caller, vault.PayoutWithdraw)
}

// Reclaim pays the owner the reclaimable unallocated remainder.
func (s *vaultService) Reclaim(ctx context.Context, id string, caller common.Address) (models.PayoutResponse, error) {
	return s.payout(ctx, id, caller, vault.PayoutReclaim)
}

func (s *vaultService) payout(ctx context.Context, id string, caller common.Address, kind vault.PayoutKind) (models.PayoutResponse, error) {
	log := logger.FromContext(ctx)

	lv, err := s.lookup(id)
	if err != nil {
		return models.PayoutResponse{}, err
	}
	v := lv.vault
	now := s.now()

	var amount *uint256.Int
	switch kind {
	case vault.PayoutReclaim:
		amount, err = v.ReclaimUnallocated(ctx, caller, now)
	default:
		amount, err = v.Withdraw(ctx, caller, now)
	}

	// status may change on failure too (fault)
	if cacheErr := s.snapshots.Invalidate(ctx, v.ID().Hex()); cacheErr != nil {
		log.Warn().Err(cacheErr).Str("vault", v.ID().Hex()).Msg("snapshot cache invalidation failed")
	}

	if err != nil {
		log.Debug().Err(err).
			Str("vault", v.ID().Hex()).
			Str("caller", caller.Hex()).
			Str("kind", string(kind)).
			Msg("payout refused")
		return models.PayoutResponse{}, err
	}

	return models.PayoutResponse{
		VaultID:   v.ID().Hex(),
		Recipient: caller.Hex(),
		Amount:    amount.Dec(),
		Kind:      string(kind),
		At:        now,
		Status:    v.Status().String(),
	}, nil
}
