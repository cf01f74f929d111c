// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the operator command line of go-lock-keeper.
//
// [App] dispatches one subcommand per invocation against the vault API
// through an [adapter.VaultAdapter] and prints the result as JSON:
//
//	token -sub <address>            mint a bearer token with the shared sign key
//	version                         print the server version
//	list [-owner a] [-beneficiary b] [-status s]
//	status <vault>                  print the vault snapshot
//	claimable <vault> <address> [-at unix]
//	reclaimable <vault> [-at unix]  print what the owner may reclaim
//	withdraw <vault>                withdraw for the token subject
//	reclaim <vault>                 reclaim the residual as the owner
package client
