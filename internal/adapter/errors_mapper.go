package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-lock-keeper/internal/vault"
	"github.com/MKhiriev/go-lock-keeper/models"
)

var statusErrors = map[int]error{
	http.StatusBadRequest:          ErrBadRequest,
	http.StatusUnauthorized:        ErrUnauthorized,
	http.StatusForbidden:           vault.ErrNotOwner,
	http.StatusNotFound:            ErrNotFound,
	http.StatusConflict:            vault.ErrNothingToClaim,
	http.StatusGone:                vault.ErrVaultDrained,
	http.StatusServiceUnavailable:  vault.ErrTransferFailed,
	http.StatusInternalServerError: ErrInternalServerError,
}

// mapHTTPError returns nil for 2xx responses and a wrapped sentinel otherwise.
// The message of a models.ErrorResponse body is kept in the error text.
func mapHTTPError(resp *resty.Response) error {
	status := resp.StatusCode()
	if status >= http.StatusOK && status < http.StatusMultipleChoices {
		return nil
	}

	message := strings.TrimSpace(string(resp.Body()))
	var body models.ErrorResponse
	if err := json.Unmarshal(resp.Body(), &body); err == nil && body.Error != "" {
		message = body.Error
	}
	if message == "" {
		message = http.StatusText(status)
	}

	if sentinel, ok := statusErrors[status]; ok {
		return fmt.Errorf("%w: %s", sentinel, message)
	}
	return fmt.Errorf("%w: http %d: %s", ErrUnexpectedResponse, status, message)
}
