// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package vault implements the timelock vault engine: a closed lock that holds
// a deposit of native currency or a fungible token and releases it to
// beneficiaries according to a time-based schedule.
//
// The package is split into four collaborating parts:
//   - [Schedule] and its variants compute the unlocked share for an instant;
//   - [Registry] tracks per-beneficiary allocations and withdrawals;
//   - [Ledger] tracks the vault-wide deposit and withdrawals;
//   - [Vault] orchestrates them and moves funds through a [TransferAdapter].
//
// Time is never sampled inside the package. Every operation that depends on
// time receives "now" as Unix seconds from the caller.
package vault
