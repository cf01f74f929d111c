// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks the shape of API requests before they reach the
// vault service.
//
// Shape means presence, lengths and encodings: a request that passes may
// still be rejected by vault construction, which owns the semantic rules
// (share totals, schedule bounds, duplicates).
package validators

import "context"

// Validator validates obj. When fields are given only those fields are
// checked.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
