// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package vault

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"golang.org/x/crypto/sha3"

	"github.com/MKhiriev/go-lock-keeper/internal/logger"
)

// Status is the lifecycle state of a vault.
type Status uint8

const (
	StatusUninitialized Status = iota
	StatusActive
	StatusDrained
	StatusFaulted
)

var statusStrings = map[Status]string{
	StatusUninitialized: "uninitialized",
	StatusActive:        "active",
	StatusDrained:       "drained",
	StatusFaulted:       "faulted",
}

func (s Status) String() string {
	str, ok := statusStrings[s]
	if !ok {
		return fmt.Sprintf("unknownStatus(%d)", s)
	}
	return str
}

// ParseStatus is the inverse of Status.String.
func ParseStatus(s string) (Status, error) {
	for status, str := range statusStrings {
		if str == s {
			return status, nil
		}
	}
	return StatusUninitialized, fmt.Errorf("unknown vault status %q", s)
}

// Allocation is a beneficiary address with its share. In fixed mode Share is
// an amount of base units; in weighted mode it is a relative weight.
type Allocation struct {
	Address common.Address
	Share   *uint256.Int
}

// Params are the construction parameters of a vault.
type Params struct {
	Owner         common.Address
	Asset         Asset
	Schedule      Schedule
	Deposit       *uint256.Int // nil in fixed mode means the sum of shares
	Beneficiaries []Allocation
	Weighted      bool
	CreatedAt     uint64
	Salt          string
}

// ID returns the deterministic vault identifier derived from p.
func (p Params) ID() common.Address {
	h := sha3.NewLegacyKeccak256()

	var b []byte
	b = append(b, p.Owner.Bytes()...)
	b = binary.BigEndian.AppendUint64(b, p.CreatedAt)
	b = append(b, p.Salt...)
	b = append(b, byte(p.Asset.Kind))
	b = append(b, p.Asset.Address().Bytes()...)
	if p.Schedule != nil {
		b = p.Schedule.appendBytes(b)
	}
	deposit := p.resolvedDeposit().Bytes32()
	b = append(b, deposit[:]...)
	if p.Weighted {
		b = append(b, 1)
	} else {
		b = append(b, 0)
	}
	for _, a := range p.Beneficiaries {
		share := cloneOrZero(a.Share).Bytes32()
		b = append(b, a.Address.Bytes()...)
		b = append(b, share[:]...)
	}

	h.Write(b)
	return common.BytesToAddress(h.Sum(nil)[12:])
}

func (p Params) resolvedDeposit() *uint256.Int {
	if p.Deposit != nil || p.Weighted {
		return cloneOrZero(p.Deposit)
	}

	shares := make([]*uint256.Int, 0, len(p.Beneficiaries))
	for _, a := range p.Beneficiaries {
		shares = append(shares, a.Share)
	}
	total, overflow := sumAmounts(shares...)
	if overflow {
		return new(uint256.Int)
	}
	return total
}

// allocations resolves the deposit and the per-beneficiary amounts.
func (p Params) allocations() (*uint256.Int, []Allocation, error) {
	if len(p.Beneficiaries) == 0 {
		return nil, nil, fmt.Errorf("%w: no beneficiaries", ErrInvalidAllocationSet)
	}

	shares := make([]*uint256.Int, 0, len(p.Beneficiaries))
	for _, a := range p.Beneficiaries {
		if a.Share == nil || a.Share.IsZero() {
			return nil, nil, fmt.Errorf("%w: zero share for %s", ErrInvalidAllocationSet, a.Address.Hex())
		}
		shares = append(shares, a.Share)
	}
	sum, overflow := sumAmounts(shares...)
	if overflow {
		return nil, nil, fmt.Errorf("%w: shares overflow 256 bits", ErrAllocationOverflow)
	}

	if !p.Weighted {
		deposit := sum
		if p.Deposit != nil {
			deposit = p.Deposit.Clone()
		}
		if deposit.IsZero() {
			return nil, nil, fmt.Errorf("%w: zero deposit", ErrInvalidAllocationSet)
		}
		return deposit, p.Beneficiaries, nil
	}

	if p.Deposit == nil || p.Deposit.IsZero() {
		return nil, nil, fmt.Errorf("%w: weighted mode requires a deposit", ErrInvalidAllocationSet)
	}

	out := make([]Allocation, len(p.Beneficiaries))
	distributed := new(uint256.Int)
	for i, a := range p.Beneficiaries {
		amount, _ := new(uint256.Int).MulDivOverflow(p.Deposit, a.Share, sum)
		out[i] = Allocation{Address: a.Address, Share: amount}
		distributed.Add(distributed, amount)
	}
	// rounding dust goes to the first beneficiary
	dust := new(uint256.Int).Sub(p.Deposit, distributed)
	out[0].Share = new(uint256.Int).Add(out[0].Share, dust)

	return p.Deposit.Clone(), out, nil
}

// Vault is a timelock vault. All methods are safe for concurrent use.
type Vault struct {
	mu sync.RWMutex

	id        common.Address
	owner     common.Address
	asset     Asset
	schedule  Schedule
	createdAt uint64

	registry    *Registry
	ledger      *Ledger
	unallocated uint256.Int
	reclaimed   uint256.Int
	status      Status
	inflight    int
	revision    uint64

	transfer TransferAdapter
	logger   *logger.Logger
}

// New validates p and returns an active vault holding the deposit.
func New(p Params, transfer TransferAdapter, log *logger.Logger) (*Vault, error) {
	if transfer == nil {
		return nil, ErrNoTransferAdapter
	}
	if log == nil {
		log = logger.Nop()
	}
	if p.Owner == (common.Address{}) {
		return nil, fmt.Errorf("%w: zero owner address", ErrInvalidOwner)
	}
	if p.Schedule == nil {
		return nil, fmt.Errorf("%w: missing schedule", ErrInvalidSchedule)
	}
	if err := p.Schedule.Validate(); err != nil {
		return nil, err
	}

	deposit, allocations, err := p.allocations()
	if err != nil {
		return nil, err
	}

	registry := NewRegistry(deposit)
	for _, a := range allocations {
		if err = registry.Register(a.Address, a.Share); err != nil {
			return nil, err
		}
	}

	v := &Vault{
		id:        p.ID(),
		owner:     p.Owner,
		asset:     p.Asset,
		schedule:  p.Schedule,
		createdAt: p.CreatedAt,
		registry:  registry,
		ledger:    NewLedger(deposit),
		status:    StatusActive,
		transfer:  transfer,
	}
	v.unallocated.Set(registry.Unallocated())
	v.logger = log.WithField("vault", v.id.Hex())

	v.logger.Debug().
		Str("schedule", string(p.Schedule.Kind())).
		Str("deposit", deposit.Dec()).
		Int("beneficiaries", registry.Len()).
		Msg("vault created")

	return v, nil
}

// Withdraw pays addr everything unlocked for it at now and not yet
// withdrawn, and returns the amount paid.
func (v *Vault) Withdraw(ctx context.Context, addr common.Address, now uint64) (*uint256.Int, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	v.mu.Lock()
	amount, err := v.prepareWithdrawal(addr, now)
	v.mu.Unlock()
	if err != nil {
		return nil, err
	}

	err = v.transfer.Transfer(ctx, Payout{
		Vault:  v.id,
		Asset:  v.asset,
		To:     addr,
		Amount: amount.Clone(),
		Kind:   PayoutWithdraw,
		At:     now,
	})

	v.mu.Lock()
	defer v.mu.Unlock()
	v.inflight--

	if err != nil {
		v.rollback(err, func() error { return v.registry.RevertWithdrawal(addr, amount) }, amount)
		return nil, fmt.Errorf("%w: %w", ErrTransferFailed, err)
	}

	v.settle()
	v.logger.Info().Str("beneficiary", addr.Hex()).Str("amount", amount.Dec()).Uint64("at", now).Msg("withdrawal paid")

	return amount, nil
}

// prepareWithdrawal records the effects of a withdrawal. Must hold v.mu.
func (v *Vault) prepareWithdrawal(addr common.Address, now uint64) (*uint256.Int, error) {
	if err := v.writable(); err != nil {
		return nil, err
	}

	b, found := v.registry.Get(addr)
	if !found {
		return nil, fmt.Errorf("%w: %s", ErrUnknownBeneficiary, addr.Hex())
	}

	unlocked := v.schedule.UnlockedAmount(now, b.Allocated)
	if !unlocked.Gt(b.Withdrawn) {
		return nil, ErrNothingToClaim
	}

	amount := v.clamp(new(uint256.Int).Sub(unlocked, b.Withdrawn))
	if amount.IsZero() {
		return nil, ErrNothingToClaim
	}

	if err := v.registry.RecordWithdrawal(addr, amount); err != nil {
		return nil, err
	}
	if err := v.ledger.RecordWithdrawal(amount); err != nil {
		_ = v.registry.RevertWithdrawal(addr, amount)
		v.fault(err)
		return nil, err
	}

	v.inflight++
	v.revision++
	return amount, nil
}

// ReclaimUnallocated pays the owner the unlocked part of the deposit that was
// never allocated to a beneficiary.
func (v *Vault) ReclaimUnallocated(ctx context.Context, caller common.Address, now uint64) (*uint256.Int, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	v.mu.Lock()
	amount, err := v.prepareReclaim(caller, now)
	v.mu.Unlock()
	if err != nil {
		return nil, err
	}

	err = v.transfer.Transfer(ctx, Payout{
		Vault:  v.id,
		Asset:  v.asset,
		To:     v.owner,
		Amount: amount.Clone(),
		Kind:   PayoutReclaim,
		At:     now,
	})

	v.mu.Lock()
	defer v.mu.Unlock()
	v.inflight--

	if err != nil {
		v.rollback(err, func() error { return v.revertReclaim(amount) }, amount)
		return nil, fmt.Errorf("%w: %w", ErrTransferFailed, err)
	}

	v.settle()
	v.logger.Info().Str("owner", v.owner.Hex()).Str("amount", amount.Dec()).Uint64("at", now).Msg("unallocated funds reclaimed")

	return amount, nil
}

func (v *Vault) prepareReclaim(caller common.Address, now uint64) (*uint256.Int, error) {
	if caller != v.owner {
		return nil, fmt.Errorf("%w: %s", ErrNotOwner, caller.Hex())
	}
	if err := v.writable(); err != nil {
		return nil, err
	}

	amount := v.reclaimable(now)
	if amount.IsZero() {
		return nil, ErrNothingToClaim
	}

	if err := v.ledger.RecordWithdrawal(amount); err != nil {
		v.fault(err)
		return nil, err
	}
	v.reclaimed.Add(&v.reclaimed, amount)

	v.inflight++
	v.revision++
	return amount, nil
}

func (v *Vault) revertReclaim(amount *uint256.Int) error {
	if amount.Gt(&v.reclaimed) {
		return fmt.Errorf("%w: cannot revert reclaim of %s", ErrInternalFault, amount.Dec())
	}
	v.reclaimed.Sub(&v.reclaimed, amount)
	return nil
}

// reclaimable returns the clamped amount the owner may reclaim at now.
// Must hold v.mu.
func (v *Vault) reclaimable(now uint64) *uint256.Int {
	unlocked := v.schedule.UnlockedAmount(now, &v.unallocated)
	if !unlocked.Gt(&v.reclaimed) {
		return new(uint256.Int)
	}
	return v.clamp(new(uint256.Int).Sub(unlocked, &v.reclaimed))
}

// rollback reverts a failed payout. Must hold v.mu.
func (v *Vault) rollback(cause error, revertEntry func() error, amount *uint256.Int) {
	v.revision++
	entryErr := revertEntry()
	ledgerErr := v.ledger.RevertWithdrawal(amount)

	if err := errors.Join(entryErr, ledgerErr); err != nil {
		v.fault(err)
		return
	}
	if errors.Is(cause, ErrInternalFault) {
		v.fault(cause)
		return
	}

	v.logger.Warn().Err(cause).Str("amount", amount.Dec()).Msg("transfer failed, payout reverted")
}

func (v *Vault) fault(cause error) {
	v.status = StatusFaulted
	v.revision++
	v.logger.Error().Err(cause).Msg("vault faulted, refusing further writes")
}

// settle faults the vault when the books disagree and moves it to Drained
// once nothing is left and no payout is in flight. Must hold v.mu.
func (v *Vault) settle() {
	if err := v.conserved(); err != nil {
		if v.status != StatusFaulted {
			v.fault(err)
		}
		return
	}
	if v.status == StatusActive && v.inflight == 0 && v.ledger.IsDrained() {
		v.status = StatusDrained
		v.revision++
		v.logger.Info().Msg("vault drained")
	}
}

// conserved checks that the registry totals add up to the ledger totals.
// Must hold v.mu.
func (v *Vault) conserved() error {
	if v.ledger.Faulted() {
		return fmt.Errorf("%w: ledger is faulted", ErrLedgerOverrun)
	}

	allocated := new(uint256.Int).Add(v.registry.Allocated(), &v.unallocated)
	if deposited := v.ledger.Deposited(); !allocated.Eq(deposited) {
		return fmt.Errorf("%w: allocations total %s, deposit is %s", ErrInternalFault, allocated.Dec(), deposited.Dec())
	}

	paid := new(uint256.Int).Add(v.registry.Withdrawn(), &v.reclaimed)
	if withdrawn := v.ledger.Withdrawn(); !paid.Eq(withdrawn) {
		return fmt.Errorf("%w: payouts total %s, ledger recorded %s", ErrLedgerOverrun, paid.Dec(), withdrawn.Dec())
	}

	return nil
}

// clamp bounds amount by the ledger balance. Must hold v.mu.
func (v *Vault) clamp(amount *uint256.Int) *uint256.Int {
	remaining := v.ledger.Remaining()
	if amount.Gt(remaining) {
		v.logger.Warn().
			Str("func", "*Vault.clamp").
			Str("requested", amount.Dec()).
			Str("remaining", remaining.Dec()).
			Msg("payout clamped to ledger balance")
		return remaining
	}
	return amount
}

func (v *Vault) writable() error {
	switch v.status {
	case StatusActive:
		return nil
	case StatusDrained:
		return ErrVaultDrained
	case StatusFaulted:
		return fmt.Errorf("%w: vault is faulted", ErrLedgerOverrun)
	default:
		return fmt.Errorf("%w: vault is %s", ErrInternalFault, v.status)
	}
}

// Record is a persisted payout replayed by Restore.
type Record struct {
	Kind   PayoutKind
	To     common.Address
	Amount *uint256.Int
	At     uint64
}

// Restore replays previously paid records without transferring anything.
// Replay enforces the same registry and ledger invariants as live payouts;
// a violation faults the vault.
func (v *Vault) Restore(records ...Record) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	for _, r := range records {
		if r.Amount == nil || r.Amount.IsZero() {
			continue
		}
		if err := v.replay(r); err != nil {
			v.fault(err)
			return err
		}
		v.revision++
	}

	v.settle()
	if v.status == StatusFaulted {
		return fmt.Errorf("%w: restored vault is faulted", ErrLedgerOverrun)
	}
	return nil
}

func (v *Vault) replay(r Record) error {
	switch r.Kind {
	case PayoutWithdraw:
		if err := v.registry.RecordWithdrawal(r.To, r.Amount); err != nil {
			return err
		}
	case PayoutReclaim:
		if r.To != v.owner {
			return fmt.Errorf("%w: reclaim paid to %s", ErrNotOwner, r.To.Hex())
		}
		next := new(uint256.Int).Add(&v.reclaimed, r.Amount)
		if next.Gt(&v.unallocated) {
			return fmt.Errorf("%w: reclaimed %s exceeds unallocated %s", ErrLedgerOverrun, next.Dec(), v.unallocated.Dec())
		}
		v.reclaimed.Set(next)
	default:
		return fmt.Errorf("%w: unknown payout kind %q", ErrInternalFault, r.Kind)
	}

	return v.ledger.RecordWithdrawal(r.Amount)
}

// ID returns the vault identifier.
func (v *Vault) ID() common.Address {
	return v.id
}

// Owner returns the vault owner.
func (v *Vault) Owner() common.Address {
	return v.owner
}

// Asset returns the held asset.
func (v *Vault) Asset() Asset {
	return v.asset
}

// Schedule returns the release schedule.
func (v *Vault) Schedule() Schedule {
	return v.schedule
}

// Remaining returns the deposit minus everything paid out.
func (v *Vault) Remaining() *uint256.Int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.ledger.Remaining()
}

// UnlockedAmount returns how much of addr's allocation is unlocked at now,
// including what was already withdrawn.
func (v *Vault) UnlockedAmount(addr common.Address, now uint64) (*uint256.Int, error) {
	v.mu.RLock()
	defer v.mu.RUnlock()

	b, found := v.registry.Get(addr)
	if !found {
		return nil, fmt.Errorf("%w: %s", ErrUnknownBeneficiary, addr.Hex())
	}
	return v.schedule.UnlockedAmount(now, b.Allocated), nil
}

// Claimable returns what Withdraw would pay addr at now.
func (v *Vault) Claimable(addr common.Address, now uint64) (*uint256.Int, error) {
	v.mu.RLock()
	defer v.mu.RUnlock()

	b, found := v.registry.Get(addr)
	if !found {
		return nil, fmt.Errorf("%w: %s", ErrUnknownBeneficiary, addr.Hex())
	}
	if v.status != StatusActive {
		return new(uint256.Int), nil
	}

	unlocked := v.schedule.UnlockedAmount(now, b.Allocated)
	if !unlocked.Gt(b.Withdrawn) {
		return new(uint256.Int), nil
	}
	claimable := new(uint256.Int).Sub(unlocked, b.Withdrawn)
	if remaining := v.ledger.Remaining(); claimable.Gt(remaining) {
		return remaining, nil
	}
	return claimable, nil
}

// Reclaimable returns what ReclaimUnallocated would pay the owner at now.
func (v *Vault) Reclaimable(now uint64) *uint256.Int {
	v.mu.RLock()
	defer v.mu.RUnlock()

	if v.status != StatusActive {
		return new(uint256.Int)
	}
	return v.reclaimable(now)
}

// Unallocated returns the part of the deposit not assigned to a beneficiary.
func (v *Vault) Unallocated() *uint256.Int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.unallocated.Clone()
}

// Reclaimed returns the total already paid back to the owner.
func (v *Vault) Reclaimed() *uint256.Int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.reclaimed.Clone()
}

// IsDrained reports whether the whole deposit has been paid out.
func (v *Vault) IsDrained() bool {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.status == StatusDrained
}

// Status returns the lifecycle state.
func (v *Vault) Status() Status {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.status
}

// Revision increases on every state change, including reverted payouts.
func (v *Vault) Revision() uint64 {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.revision
}

// Snapshot is a consistent point-in-time copy of a vault's state.
type Snapshot struct {
	ID            common.Address
	Owner         common.Address
	Asset         Asset
	Schedule      Schedule
	CreatedAt     uint64
	Status        Status
	Revision      uint64
	Deposited     *uint256.Int
	Withdrawn     *uint256.Int
	Reclaimed     *uint256.Int
	Unallocated   *uint256.Int
	Remaining     *uint256.Int
	Beneficiaries []Beneficiary
}

// Snapshot returns a copy of the current state.
func (v *Vault) Snapshot() Snapshot {
	v.mu.RLock()
	defer v.mu.RUnlock()

	return Snapshot{
		ID:            v.id,
		Owner:         v.owner,
		Asset:         v.asset,
		Schedule:      v.schedule,
		CreatedAt:     v.createdAt,
		Status:        v.status,
		Revision:      v.revision,
		Deposited:     v.ledger.Deposited(),
		Withdrawn:     v.ledger.Withdrawn(),
		Reclaimed:     v.reclaimed.Clone(),
		Unallocated:   v.unallocated.Clone(),
		Remaining:     v.ledger.Remaining(),
		Beneficiaries: v.registry.Entries(),
	}
}
