// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package asset settles vault payouts. A [Book] keeps per-asset balances of
// every account, and [NativeTransfer] and [TokenTransfer] move value out of
// a vault account inside it.
package asset
