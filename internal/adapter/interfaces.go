// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the client side of the vault HTTP API.
//
// [VaultAdapter] decouples the operator CLI from the transport. Error
// statuses are mapped back to sentinel values by mapHTTPError so callers can
// use [errors.Is] (e.g. vault.ErrNothingToClaim for 409).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-lock-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// VaultAdapter talks to the vault API.
type VaultAdapter interface {
	// SetToken stores the bearer token attached to authenticated requests.
	SetToken(token string)

	// Token returns the stored bearer token, or "" if none was set.
	Token() string

	Version(ctx context.Context) (string, error)
	ListVaults(ctx context.Context, filter models.VaultFilter) ([]models.VaultView, error)
	GetVault(ctx context.Context, id string) (models.VaultView, error)

	// BeneficiaryState reads the claimable state of address. A nil at asks
	// for the server's current time.
	BeneficiaryState(ctx context.Context, id, address string, at *uint64) (models.BeneficiaryState, error)

	// OwnerState reads what the owner may reclaim. A nil at asks for the
	// server's current time.
	OwnerState(ctx context.Context, id string, at *uint64) (models.OwnerState, error)

	CreateFixedLock(ctx context.Context, req models.FixedLockRequest) (models.CreateVaultResponse, error)
	CreateVesting(ctx context.Context, req models.VestingRequest) (models.CreateVaultResponse, error)

	// Withdraw and Reclaim act for the subject of the stored token.
	Withdraw(ctx context.Context, id string) (models.PayoutResponse, error)
	Reclaim(ctx context.Context, id string) (models.PayoutResponse, error)
}
