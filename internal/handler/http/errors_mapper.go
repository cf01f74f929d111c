package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-lock-keeper/internal/logger"
	"github.com/MKhiriev/go-lock-keeper/internal/service"
	"github.com/MKhiriev/go-lock-keeper/internal/store"
	"github.com/MKhiriev/go-lock-keeper/internal/utils"
	"github.com/MKhiriev/go-lock-keeper/internal/vault"
	"github.com/MKhiriev/go-lock-keeper/models"
)

type errorStatus struct {
	err    error
	status int
}

// errorStatuses is ordered: an error wrapping several sentinels gets the
// status of the first match, so faults come before transfer failures.
var errorStatuses = []errorStatus{
	{vault.ErrInternalFault, http.StatusInternalServerError},
	{vault.ErrLedgerOverrun, http.StatusInternalServerError},
	{vault.ErrInsufficientAllocation, http.StatusInternalServerError},
	{vault.ErrTransferFailed, http.StatusServiceUnavailable},

	{vault.ErrNothingToClaim, http.StatusConflict},
	{vault.ErrVaultDrained, http.StatusGone},
	{vault.ErrUnknownBeneficiary, http.StatusNotFound},
	{vault.ErrNotOwner, http.StatusForbidden},

	{vault.ErrInvalidSchedule, http.StatusBadRequest},
	{vault.ErrInvalidAllocationSet, http.StatusBadRequest},
	{vault.ErrInvalidOwner, http.StatusBadRequest},
	{vault.ErrDuplicateBeneficiary, http.StatusBadRequest},
	{vault.ErrAllocationOverflow, http.StatusBadRequest},
	{vault.ErrInvalidAmount, http.StatusBadRequest},
	{vault.ErrInvalidAsset, http.StatusBadRequest},
	{service.ErrInvalidDataProvided, http.StatusBadRequest},
	{service.ErrInvalidFilter, http.StatusBadRequest},

	{ErrEmptyAuthorizationHeader, http.StatusUnauthorized},
	{ErrInvalidAuthorizationHeader, http.StatusUnauthorized},
	{ErrNoCaller, http.StatusUnauthorized},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized},

	{store.ErrVaultNotFound, http.StatusNotFound},
	{store.ErrVaultAlreadyExists, http.StatusConflict},

	{context.DeadlineExceeded, http.StatusGatewayTimeout},
}

func statusFromError(err error) int {
	for _, e := range errorStatuses {
		if errors.Is(err, e.err) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}

// writeError logs err and writes it as a models.ErrorResponse. Messages of
// unclassified internal errors are not exposed.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	status := statusFromError(err)

	body := models.ErrorResponse{
		Error:     err.Error(),
		Retryable: vault.IsRetryable(err),
	}

	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Str("path", r.URL.Path).Msg("request failed")
		if status == http.StatusInternalServerError && !errors.Is(err, vault.ErrLedgerOverrun) && !errors.Is(err, vault.ErrInternalFault) {
			body.Error = http.StatusText(status)
		}
	} else {
		log.Debug().Err(err).Int("status", status).Str("path", r.URL.Path).Msg("request refused")
	}

	utils.WriteJSON(w, body, status)
}
