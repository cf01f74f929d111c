package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-lock-keeper/internal/service"
	"github.com/MKhiriev/go-lock-keeper/internal/utils"
	"github.com/MKhiriev/go-lock-keeper/models"
)

func (h *Handler) listVaults(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := models.VaultFilter{
		Owner:       query.Get("owner"),
		Beneficiary: query.Get("beneficiary"),
		Status:      query.Get("status"),
	}
	if err := h.validator.Validate(r.Context(), filter); err != nil {
		h.writeError(w, r, fmt.Errorf("%w: %w", service.ErrInvalidFilter, err))
		return
	}

	views, err := h.services.VaultService.ListVaults(r.Context(), filter)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, views, http.StatusOK)
}

func (h *Handler) getVault(w http.ResponseWriter, r *http.Request) {
	view, err := h.services.VaultService.GetVault(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, view, http.StatusOK)
}

// beneficiaryState serves the unlocked and claimable amounts of a
// beneficiary. The optional "at" query parameter is a unix timestamp.
func (h *Handler) beneficiaryState(w http.ResponseWriter, r *http.Request) {
	addr, err := models.ParseAddress(chi.URLParam(r, "address"))
	if err != nil {
		h.writeError(w, r, fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, err))
		return
	}

	at, err := instantFromRequest(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	state, err := h.services.VaultService.BeneficiaryState(r.Context(), chi.URLParam(r, "id"), addr, at)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, state, http.StatusOK)
}

// ownerState serves what the owner may reclaim at the optional "at" instant.
func (h *Handler) ownerState(w http.ResponseWriter, r *http.Request) {
	at, err := instantFromRequest(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	state, err := h.services.VaultService.OwnerState(r.Context(), chi.URLParam(r, "id"), at)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, state, http.StatusOK)
}

// instantFromRequest parses the "at" query parameter. Absent means now.
func instantFromRequest(r *http.Request) (*uint64, error) {
	if !r.URL.Query().Has("at") {
		return nil, nil
	}
	at, err := strconv.ParseUint(r.URL.Query().Get("at"), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: at: %w", service.ErrInvalidDataProvided, err)
	}
	return &at, nil
}

func (h *Handler) createFixedLock(w http.ResponseWriter, r *http.Request) {
	caller, err := callerFromRequest(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	var req models.FixedLockRequest
	if err = json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, r, fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, err))
		return
	}

	if err = h.validator.Validate(r.Context(), req); err != nil {
		h.writeError(w, r, fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, err))
		return
	}

	resp, err := h.services.VaultService.CreateFixedLock(r.Context(), caller, req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, resp, createdStatus(resp))
}

func (h *Handler) createVesting(w http.ResponseWriter, r *http.Request) {
	caller, err := callerFromRequest(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	var req models.VestingRequest
	if err = json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, r, fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, err))
		return
	}

	if err = h.validator.Validate(r.Context(), req); err != nil {
		h.writeError(w, r, fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, err))
		return
	}

	resp, err := h.services.VaultService.CreateVesting(r.Context(), caller, req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, resp, createdStatus(resp))
}

// createdStatus is 201 for a new vault and 200 when the ID already existed.
func createdStatus(resp models.CreateVaultResponse) int {
	if resp.Created {
		return http.StatusCreated
	}
	return http.StatusOK
}

func (h *Handler) withdraw(w http.ResponseWriter, r *http.Request) {
	caller, err := callerFromRequest(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	resp, err := h.services.VaultService.Withdraw(r.Context(), chi.URLParam(r, "id"), caller)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}

func (h *Handler) reclaim(w http.ResponseWriter, r *http.Request) {
	caller, err := callerFromRequest(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	resp, err := h.services.VaultService.Reclaim(r.Context(), chi.URLParam(r, "id"), caller)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}
