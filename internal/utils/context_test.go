// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"

	"github.com/ethereum/go-ethereum/common"
)

func TestContextKeyString(t *testing.T) {
	key := contextKey("testKey")
	if key.String() != "testKey" {
		t.Errorf("expected 'testKey', got '%s'", key.String())
	}
}

func TestCallerCtxKey(t *testing.T) {
	if CallerCtxKey.String() != "caller" {
		t.Errorf("expected 'caller', got '%s'", CallerCtxKey.String())
	}
}

func TestGetCallerFromContext_Success(t *testing.T) {
	addr := common.HexToAddress("0x00000000000000000000000000000000000000a1")
	ctx := WithCaller(context.Background(), addr)

	caller, ok := GetCallerFromContext(ctx)
	if !ok {
		t.Fatal("expected ok=true, got false")
	}
	if caller != addr {
		t.Errorf("expected caller=%s, got %s", addr, caller)
	}
}

func TestGetCallerFromContext_Missing(t *testing.T) {
	caller, ok := GetCallerFromContext(context.Background())
	if ok {
		t.Fatal("expected ok=false, got true")
	}
	if caller != (common.Address{}) {
		t.Errorf("expected zero address, got %s", caller)
	}
}

func TestGetCallerFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), CallerCtxKey, "0xa1")

	if _, ok := GetCallerFromContext(ctx); ok {
		t.Fatal("expected ok=false for wrong type, got true")
	}
}
