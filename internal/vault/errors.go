// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package vault

import "errors"

// Construction errors. A vault is never created when one of these is returned.
var (
	// ErrInvalidSchedule is returned when a schedule violates its invariants
	// (zero duration, cliff longer than duration, zero period length, ...).
	ErrInvalidSchedule = errors.New("invalid schedule")

	// ErrInvalidAllocationSet is returned when the beneficiary set is empty,
	// the lists have different lengths, an allocation is zero or the deposit
	// is zero.
	ErrInvalidAllocationSet = errors.New("invalid allocation set")

	// ErrInvalidOwner is returned when the owner address is missing.
	ErrInvalidOwner = errors.New("invalid owner")

	// ErrDuplicateBeneficiary is returned when the same address is registered twice.
	ErrDuplicateBeneficiary = errors.New("duplicate beneficiary")

	// ErrAllocationOverflow is returned when cumulative allocations exceed the deposit.
	ErrAllocationOverflow = errors.New("allocation overflow")

	// ErrInvalidAmount is returned when an amount cannot be parsed as an
	// unsigned 256-bit decimal integer.
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrInvalidAsset is returned when an asset reference is not a valid address.
	ErrInvalidAsset = errors.New("invalid asset")
)

// Runtime errors returned by withdrawal and reclaim.
var (
	// ErrUnknownBeneficiary is returned when the address is not registered.
	ErrUnknownBeneficiary = errors.New("unknown beneficiary")

	// ErrInsufficientAllocation is returned when a withdrawal would push a
	// beneficiary's withdrawn amount above its allocation.
	ErrInsufficientAllocation = errors.New("insufficient allocation")

	// ErrLedgerOverrun is returned when total withdrawals would exceed the
	// deposit. The vault refuses every further write once it was observed.
	ErrLedgerOverrun = errors.New("ledger overrun")

	// ErrNothingToClaim signals that nothing is claimable at the given instant.
	// It is benign: the schedule may unlock more later.
	ErrNothingToClaim = errors.New("nothing to claim")

	// ErrVaultDrained is returned once the whole deposit has been withdrawn.
	ErrVaultDrained = errors.New("vault drained")

	// ErrNotOwner is returned when an owner-only operation is called by
	// another identity.
	ErrNotOwner = errors.New("caller is not the owner")

	// ErrTransferFailed is returned when the asset transfer was rejected.
	// All bookkeeping of the attempt has been rolled back.
	ErrTransferFailed = errors.New("transfer failed")

	// ErrInternalFault marks a transfer failure that can only be explained by
	// broken internal invariants (e.g. the vault holds less native value than
	// its ledger says). Adapters wrap it; the vault then fails closed.
	ErrInternalFault = errors.New("internal consistency fault")

	// ErrNoTransferAdapter is returned by New when no adapter is given.
	ErrNoTransferAdapter = errors.New("transfer adapter is required")
)

// IsRetryable reports whether a failed operation may succeed when retried
// later by the same caller.
func IsRetryable(err error) bool {
	if errors.Is(err, ErrInternalFault) {
		return false
	}
	return errors.Is(err, ErrNothingToClaim) || errors.Is(err, ErrTransferFailed)
}
