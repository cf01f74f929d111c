package adapter

import "errors"

// Transport errors without a vault counterpart. Statuses that carry a vault
// outcome (409, 410, 403, 503) map to the vault sentinels instead, so callers
// can use vault.IsRetryable on adapter errors.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrNotFound            = errors.New("not found")
	ErrInternalServerError = errors.New("internal server error")
	ErrUnexpectedResponse  = errors.New("unexpected response")
)
