// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"

	"github.com/MKhiriev/go-lock-keeper/internal/vault"
)

// ShareSpec is one beneficiary with its share as a decimal string. In
// weighted vaults the share is a weight, otherwise an amount of base units.
type ShareSpec struct {
	Address string `json:"address" msgpack:"address"`
	Share   string `json:"share" msgpack:"share"`
}

// VaultDefinition is the persisted, immutable construction record of a vault.
// Replaying it through vault.New yields the same vault with the same ID.
type VaultDefinition struct {
	ID            string       `json:"id"`
	Name          string       `json:"name,omitempty"`
	Owner         string       `json:"owner"`
	Asset         string       `json:"asset"`
	Schedule      ScheduleSpec `json:"schedule"`
	Deposit       string       `json:"deposit,omitempty"`
	Weighted      bool         `json:"weighted,omitempty"`
	CreatedAt     uint64       `json:"created_at"`
	Salt          string       `json:"salt,omitempty"`
	Beneficiaries []ShareSpec  `json:"beneficiaries"`
}

// NewVaultDefinition builds the persisted record of p.
func NewVaultDefinition(name string, p vault.Params) VaultDefinition {
	def := VaultDefinition{
		ID:            p.ID().Hex(),
		Name:          name,
		Owner:         p.Owner.Hex(),
		Asset:         p.Asset.String(),
		Schedule:      NewScheduleSpec(p.Schedule),
		Weighted:      p.Weighted,
		CreatedAt:     p.CreatedAt,
		Salt:          p.Salt,
		Beneficiaries: make([]ShareSpec, 0, len(p.Beneficiaries)),
	}
	if p.Deposit != nil {
		def.Deposit = p.Deposit.Dec()
	}
	for _, b := range p.Beneficiaries {
		share := ShareSpec{Address: b.Address.Hex()}
		if b.Share != nil {
			share.Share = b.Share.Dec()
		}
		def.Beneficiaries = append(def.Beneficiaries, share)
	}
	return def
}

// Params converts the record back into construction parameters.
func (d VaultDefinition) Params() (vault.Params, error) {
	if !common.IsHexAddress(d.Owner) {
		return vault.Params{}, fmt.Errorf("%w: %q", vault.ErrInvalidOwner, d.Owner)
	}

	asset, err := vault.ParseAsset(d.Asset)
	if err != nil {
		return vault.Params{}, err
	}

	schedule, err := d.Schedule.Schedule()
	if err != nil {
		return vault.Params{}, err
	}

	p := vault.Params{
		Owner:         common.HexToAddress(d.Owner),
		Asset:         asset,
		Schedule:      schedule,
		Weighted:      d.Weighted,
		CreatedAt:     d.CreatedAt,
		Salt:          d.Salt,
		Beneficiaries: make([]vault.Allocation, 0, len(d.Beneficiaries)),
	}
	if d.Deposit != "" {
		if p.Deposit, err = vault.ParseAmount(d.Deposit); err != nil {
			return vault.Params{}, err
		}
	}
	for _, b := range d.Beneficiaries {
		addr, err := ParseAddress(b.Address)
		if err != nil {
			return vault.Params{}, fmt.Errorf("%w: %w", vault.ErrInvalidAllocationSet, err)
		}
		share, err := vault.ParseAmount(b.Share)
		if err != nil {
			return vault.Params{}, err
		}
		p.Beneficiaries = append(p.Beneficiaries, vault.Allocation{Address: addr, Share: share})
	}

	return p, nil
}

// ParseAddress parses a hex account address.
func ParseAddress(s string) (common.Address, error) {
	if !common.IsHexAddress(s) {
		return common.Address{}, fmt.Errorf("invalid address %q", s)
	}
	return common.HexToAddress(s), nil
}

// BeneficiaryView is the read-only state of one beneficiary.
type BeneficiaryView struct {
	Address   string `json:"address" msgpack:"address"`
	Allocated string `json:"allocated" msgpack:"allocated"`
	Withdrawn string `json:"withdrawn" msgpack:"withdrawn"`
}

// VaultView is the read-only snapshot of a vault served by the API and kept
// in the snapshot cache.
type VaultView struct {
	ID            string            `json:"id" msgpack:"id"`
	Name          string            `json:"name,omitempty" msgpack:"name,omitempty"`
	Owner         string            `json:"owner" msgpack:"owner"`
	Asset         string            `json:"asset" msgpack:"asset"`
	Schedule      ScheduleSpec      `json:"schedule" msgpack:"schedule"`
	CreatedAt     uint64            `json:"created_at" msgpack:"created_at"`
	Status        string            `json:"status" msgpack:"status"`
	Revision      uint64            `json:"revision" msgpack:"revision"`
	Deposited     string            `json:"deposited" msgpack:"deposited"`
	Withdrawn     string            `json:"withdrawn" msgpack:"withdrawn"`
	Reclaimed     string            `json:"reclaimed" msgpack:"reclaimed"`
	Unallocated   string            `json:"unallocated" msgpack:"unallocated"`
	Remaining     string            `json:"remaining" msgpack:"remaining"`
	Beneficiaries []BeneficiaryView `json:"beneficiaries" msgpack:"beneficiaries"`
}

// NewVaultView renders a snapshot.
func NewVaultView(name string, s vault.Snapshot) VaultView {
	view := VaultView{
		ID:            s.ID.Hex(),
		Name:          name,
		Owner:         s.Owner.Hex(),
		Asset:         s.Asset.String(),
		Schedule:      NewScheduleSpec(s.Schedule),
		CreatedAt:     s.CreatedAt,
		Status:        s.Status.String(),
		Revision:      s.Revision,
		Deposited:     s.Deposited.Dec(),
		Withdrawn:     s.Withdrawn.Dec(),
		Reclaimed:     s.Reclaimed.Dec(),
		Unallocated:   s.Unallocated.Dec(),
		Remaining:     s.Remaining.Dec(),
		Beneficiaries: make([]BeneficiaryView, 0, len(s.Beneficiaries)),
	}
	for _, b := range s.Beneficiaries {
		view.Beneficiaries = append(view.Beneficiaries, BeneficiaryView{
			Address:   b.Address.Hex(),
			Allocated: b.Allocated.Dec(),
			Withdrawn: b.Withdrawn.Dec(),
		})
	}
	return view
}

// VaultFilter narrows a vault listing. Empty fields match everything.
type VaultFilter struct {
	Owner       string `json:"owner,omitempty"`
	Beneficiary string `json:"beneficiary,omitempty"`
	Status      string `json:"status,omitempty"`
}
