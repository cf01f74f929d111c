package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-lock-keeper/internal/config"
	"github.com/MKhiriev/go-lock-keeper/internal/logger"
	"github.com/MKhiriev/go-lock-keeper/internal/utils"
	"github.com/MKhiriev/go-lock-keeper/models"
)

type httpVaultAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPVaultAdapter constructs the REST implementation of [VaultAdapter].
// The base URL is normalised from cfg.ServerURL; a missing scheme means http.
func NewHTTPVaultAdapter(cfg config.ClientConfig, logger *logger.Logger) (VaultAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.ServerURL)
	if err != nil {
		return nil, fmt.Errorf("invalid server url: %w", err)
	}

	a := &httpVaultAdapter{
		client: utils.NewAPIClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}
	a.SetToken(cfg.Token)

	return a, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", errors.New("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", errors.New("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpVaultAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpVaultAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Version reads GET /api/version/.
func (h *httpVaultAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/plain").
		Get("/api/version/")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}

func (h *httpVaultAdapter) ListVaults(ctx context.Context, filter models.VaultFilter) ([]models.VaultView, error) {
	var views []models.VaultView

	req := h.client.R().SetContext(ctx).SetResult(&views)
	for key, value := range map[string]string{
		"owner":       filter.Owner,
		"beneficiary": filter.Beneficiary,
		"status":      filter.Status,
	} {
		if value != "" {
			req.SetQueryParam(key, value)
		}
	}

	resp, err := req.Get("/api/vaults/")
	if err != nil {
		return nil, fmt.Errorf("list vaults request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return views, nil
}

func (h *httpVaultAdapter) GetVault(ctx context.Context, id string) (models.VaultView, error) {
	var view models.VaultView

	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("id", id).
		SetResult(&view).
		Get("/api/vaults/{id}")
	if err != nil {
		return models.VaultView{}, fmt.Errorf("get vault request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.VaultView{}, err
	}

	return view, nil
}

func (h *httpVaultAdapter) BeneficiaryState(ctx context.Context, id, address string, at *uint64) (models.BeneficiaryState, error) {
	var state models.BeneficiaryState

	req := h.client.R().
		SetContext(ctx).
		SetPathParams(map[string]string{"id": id, "address": address}).
		SetResult(&state)
	setInstant(req, at)

	resp, err := req.Get("/api/vaults/{id}/beneficiaries/{address}")
	if err != nil {
		return models.BeneficiaryState{}, fmt.Errorf("beneficiary state request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.BeneficiaryState{}, err
	}

	return state, nil
}

func (h *httpVaultAdapter) OwnerState(ctx context.Context, id string, at *uint64) (models.OwnerState, error) {
	var state models.OwnerState

	req := h.client.R().
		SetContext(ctx).
		SetPathParam("id", id).
		SetResult(&state)
	setInstant(req, at)

	resp, err := req.Get("/api/vaults/{id}/owner")
	if err != nil {
		return models.OwnerState{}, fmt.Errorf("owner state request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.OwnerState{}, err
	}

	return state, nil
}

func setInstant(req *resty.Request, at *uint64) {
	if at != nil {
		req.SetQueryParam("at", strconv.FormatUint(*at, 10))
	}
}

func (h *httpVaultAdapter) CreateFixedLock(ctx context.Context, req models.FixedLockRequest) (models.CreateVaultResponse, error) {
	return h.create(ctx, "/api/vaults/fixed", req)
}

func (h *httpVaultAdapter) CreateVesting(ctx context.Context, req models.VestingRequest) (models.CreateVaultResponse, error) {
	return h.create(ctx, "/api/vaults/vesting", req)
}

func (h *httpVaultAdapter) create(ctx context.Context, path string, body any) (models.CreateVaultResponse, error) {
	var created models.CreateVaultResponse

	resp, err := h.authedRequest(ctx).
		SetBody(body).
		SetResult(&created).
		Post(path)
	if err != nil {
		return models.CreateVaultResponse{}, fmt.Errorf("create vault request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.CreateVaultResponse{}, err
	}

	return created, nil
}

func (h *httpVaultAdapter) Withdraw(ctx context.Context, id string) (models.PayoutResponse, error) {
	return h.payout(ctx, id, "withdraw")
}

func (h *httpVaultAdapter) Reclaim(ctx context.Context, id string) (models.PayoutResponse, error) {
	return h.payout(ctx, id, "reclaim")
}

func (h *httpVaultAdapter) payout(ctx context.Context, id, action string) (models.PayoutResponse, error) {
	log := logger.FromContext(ctx)
	var payout models.PayoutResponse

	resp, err := h.authedRequest(ctx).
		SetPathParams(map[string]string{"id": id, "action": action}).
		SetResult(&payout).
		Post("/api/vaults/{id}/{action}")
	if err != nil {
		return models.PayoutResponse{}, fmt.Errorf("%s request: %w", action, err)
	}
	if err = mapHTTPError(resp); err != nil {
		log.Debug().Err(err).Str("vault", id).Str("action", action).Msg("payout refused")
		return models.PayoutResponse{}, err
	}

	return payout, nil
}

func (h *httpVaultAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}
