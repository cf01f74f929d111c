package vault

import (
	"fmt"

	"github.com/holiman/uint256"
)

// Ledger tracks the vault-wide totals. The deposit is fixed at construction
// and total withdrawals never exceed it. Once an overrun is observed the
// ledger is faulted and refuses every further write.
//
// Ledger is not safe for concurrent use; [Vault] serializes access.
type Ledger struct {
	deposited uint256.Int
	withdrawn uint256.Int
	faulted   bool
}

// NewLedger returns a ledger holding deposit.
func NewLedger(deposit *uint256.Int) *Ledger {
	l := &Ledger{}
	l.deposited.Set(cloneOrZero(deposit))
	return l
}

// RecordWithdrawal increases the withdrawn total by amount.
func (l *Ledger) RecordWithdrawal(amount *uint256.Int) error {
	if l.faulted {
		return fmt.Errorf("%w: ledger is faulted", ErrLedgerOverrun)
	}

	next, overflow := new(uint256.Int).AddOverflow(&l.withdrawn, amount)
	if overflow || next.Gt(&l.deposited) {
		l.faulted = true
		return fmt.Errorf("%w: withdrawing %s with %s remaining", ErrLedgerOverrun, amount.Dec(), l.Remaining().Dec())
	}

	l.withdrawn.Set(next)
	return nil
}

// RevertWithdrawal undoes a previous RecordWithdrawal of amount.
func (l *Ledger) RevertWithdrawal(amount *uint256.Int) error {
	if amount.Gt(&l.withdrawn) {
		l.faulted = true
		return fmt.Errorf("%w: cannot revert %s of %s withdrawn", ErrInternalFault, amount.Dec(), l.withdrawn.Dec())
	}

	l.withdrawn.Sub(&l.withdrawn, amount)
	return nil
}

// Deposited returns the fixed deposit.
func (l *Ledger) Deposited() *uint256.Int {
	return l.deposited.Clone()
}

// Withdrawn returns the total withdrawn so far.
func (l *Ledger) Withdrawn() *uint256.Int {
	return l.withdrawn.Clone()
}

// Remaining returns deposited - withdrawn.
func (l *Ledger) Remaining() *uint256.Int {
	return new(uint256.Int).Sub(&l.deposited, &l.withdrawn)
}

// IsDrained reports whether everything has been withdrawn.
func (l *Ledger) IsDrained() bool {
	return l.withdrawn.Eq(&l.deposited)
}

// Faulted reports whether an overrun was observed.
func (l *Ledger) Faulted() bool {
	return l.faulted
}
