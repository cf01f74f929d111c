// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, HTTP response
// writing, HTTP client initialization, JWT token generation and validation,
// and ID generation.
package utils

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// CallerCtxKey is the key used to store the authenticated caller address in
// the context.
var CallerCtxKey = contextKey("caller")

// WithCaller returns a copy of ctx carrying the caller address.
func WithCaller(ctx context.Context, caller common.Address) context.Context {
	return context.WithValue(ctx, CallerCtxKey, caller)
}

// GetCallerFromContext retrieves the authenticated caller address.
//
// Returns ok == false when the value is missing or has an unexpected type.
func GetCallerFromContext(ctx context.Context) (common.Address, bool) {
	caller, ok := ctx.Value(CallerCtxKey).(common.Address)
	return caller, ok
}
