package vault

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

// Beneficiary is a read-only view of one registry entry.
type Beneficiary struct {
	Address   common.Address
	Allocated *uint256.Int
	Withdrawn *uint256.Int
}

// Remaining returns the part of the allocation not yet withdrawn.
func (b Beneficiary) Remaining() *uint256.Int {
	return new(uint256.Int).Sub(b.Allocated, b.Withdrawn)
}

type entry struct {
	allocated uint256.Int
	withdrawn uint256.Int
}

// Registry maps beneficiaries to their allocation and the amount they have
// already withdrawn. Cumulative allocations never exceed the capacity (the
// vault deposit) and withdrawn never exceeds allocated.
//
// Registry is not safe for concurrent use; [Vault] serializes access.
type Registry struct {
	capacity  uint256.Int
	allocated uint256.Int
	entries   map[common.Address]*entry
	order     []common.Address
}

// NewRegistry returns an empty registry accepting at most capacity in
// cumulative allocations.
func NewRegistry(capacity *uint256.Int) *Registry {
	r := &Registry{entries: make(map[common.Address]*entry)}
	r.capacity.Set(cloneOrZero(capacity))
	return r
}

// Register adds a beneficiary with a fixed allocation.
func (r *Registry) Register(addr common.Address, allocation *uint256.Int) error {
	if addr == (common.Address{}) {
		return fmt.Errorf("%w: zero beneficiary address", ErrInvalidAllocationSet)
	}
	if allocation == nil || allocation.IsZero() {
		return fmt.Errorf("%w: zero allocation for %s", ErrInvalidAllocationSet, addr.Hex())
	}
	if _, found := r.entries[addr]; found {
		return fmt.Errorf("%w: %s", ErrDuplicateBeneficiary, addr.Hex())
	}

	next, overflow := new(uint256.Int).AddOverflow(&r.allocated, allocation)
	if overflow || next.Gt(&r.capacity) {
		return fmt.Errorf("%w: %s would allocate beyond deposit %s", ErrAllocationOverflow, addr.Hex(), r.capacity.Dec())
	}

	e := &entry{}
	e.allocated.Set(allocation)
	r.entries[addr] = e
	r.order = append(r.order, addr)
	r.allocated.Set(next)

	return nil
}

// RecordWithdrawal marks amount of addr's allocation as spent. It performs no
// transfer.
func (r *Registry) RecordWithdrawal(addr common.Address, amount *uint256.Int) error {
	e, found := r.entries[addr]
	if !found {
		return fmt.Errorf("%w: %s", ErrUnknownBeneficiary, addr.Hex())
	}

	next, overflow := new(uint256.Int).AddOverflow(&e.withdrawn, amount)
	if overflow || next.Gt(&e.allocated) {
		return fmt.Errorf("%w: %s withdrawing %s of remaining %s",
			ErrInsufficientAllocation, addr.Hex(), amount.Dec(), new(uint256.Int).Sub(&e.allocated, &e.withdrawn).Dec())
	}

	e.withdrawn.Set(next)
	return nil
}

// RevertWithdrawal undoes a previous RecordWithdrawal of amount.
func (r *Registry) RevertWithdrawal(addr common.Address, amount *uint256.Int) error {
	e, found := r.entries[addr]
	if !found {
		return fmt.Errorf("%w: %s", ErrUnknownBeneficiary, addr.Hex())
	}
	if amount.Gt(&e.withdrawn) {
		return fmt.Errorf("%w: cannot revert %s of %s withdrawn by %s",
			ErrInternalFault, amount.Dec(), e.withdrawn.Dec(), addr.Hex())
	}

	e.withdrawn.Sub(&e.withdrawn, amount)
	return nil
}

// Get returns a copy of the entry for addr.
func (r *Registry) Get(addr common.Address) (Beneficiary, bool) {
	e, found := r.entries[addr]
	if !found {
		return Beneficiary{}, false
	}
	return Beneficiary{Address: addr, Allocated: e.allocated.Clone(), Withdrawn: e.withdrawn.Clone()}, true
}

// Entries returns copies of all entries in registration order.
func (r *Registry) Entries() []Beneficiary {
	out := make([]Beneficiary, 0, len(r.order))
	for _, addr := range r.order {
		b, _ := r.Get(addr)
		out = append(out, b)
	}
	return out
}

// Len returns the number of registered beneficiaries.
func (r *Registry) Len() int {
	return len(r.order)
}

// Allocated returns the sum of all allocations.
func (r *Registry) Allocated() *uint256.Int {
	return r.allocated.Clone()
}

// Unallocated returns the part of the capacity not assigned to anyone.
func (r *Registry) Unallocated() *uint256.Int {
	return new(uint256.Int).Sub(&r.capacity, &r.allocated)
}

// Withdrawn returns the sum of all withdrawn amounts.
func (r *Registry) Withdrawn() *uint256.Int {
	total := new(uint256.Int)
	for _, e := range r.entries {
		total.Add(total, &e.withdrawn)
	}
	return total
}
