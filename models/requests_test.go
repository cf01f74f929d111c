package models

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-lock-keeper/internal/vault"
)

const (
	ownerHex = "0x0000000000000000000000000000000000000001"
	aliceHex = "0x0000000000000000000000000000000000000002"
	bobHex   = "0x0000000000000000000000000000000000000003"
	tokenHex = "0x00000000000000000000000000000000000000ff"
)

func TestFixedLockRequest_Params(t *testing.T) {
	req := FixedLockRequest{
		Owner:         ownerHex,
		Duration:      100,
		Beneficiaries: []string{aliceHex, bobHex},
		Shares:        []string{"60", "40"},
		Deposit:       "120",
		CreatedAt:     1000,
		Salt:          "s1",
	}

	p, err := req.Params(5000)
	require.NoError(t, err)

	assert.Equal(t, common.HexToAddress(ownerHex), p.Owner)
	assert.Equal(t, vault.NativeAsset(), p.Asset)
	assert.Equal(t, vault.SingleMaturity{UnlockAt: 1100}, p.Schedule)
	assert.Equal(t, uint64(1000), p.CreatedAt)
	assert.Equal(t, "120", p.Deposit.Dec())
	require.Len(t, p.Beneficiaries, 2)
	assert.Equal(t, common.HexToAddress(bobHex), p.Beneficiaries[1].Address)
	assert.Equal(t, "40", p.Beneficiaries[1].Share.Dec())
}

func TestFixedLockRequest_Params_DefaultsCreatedAtToNow(t *testing.T) {
	req := FixedLockRequest{
		Owner:         ownerHex,
		Duration:      10,
		Beneficiaries: []string{aliceHex},
		Shares:        []string{"1"},
	}

	p, err := req.Params(7000)
	require.NoError(t, err)
	assert.Equal(t, uint64(7000), p.CreatedAt)
	assert.Equal(t, vault.SingleMaturity{UnlockAt: 7010}, p.Schedule)
	assert.Nil(t, p.Deposit)
}

func TestFixedLockRequest_Params_Errors(t *testing.T) {
	base := func() FixedLockRequest {
		return FixedLockRequest{
			Owner:         ownerHex,
			Duration:      10,
			Beneficiaries: []string{aliceHex},
			Shares:        []string{"1"},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*FixedLockRequest)
		wantErr error
	}{
		{"missing owner", func(r *FixedLockRequest) { r.Owner = "" }, vault.ErrInvalidOwner},
		{"bad asset", func(r *FixedLockRequest) { r.Asset = "gold" }, vault.ErrInvalidAsset},
		{"bad beneficiary", func(r *FixedLockRequest) { r.Beneficiaries[0] = "alice" }, vault.ErrInvalidAllocationSet},
		{"bad share", func(r *FixedLockRequest) { r.Shares[0] = "x" }, vault.ErrInvalidAmount},
		{"bad deposit", func(r *FixedLockRequest) { r.Deposit = "-5" }, vault.ErrInvalidAmount},
		{"mismatch", func(r *FixedLockRequest) { r.Shares = nil }, vault.ErrInvalidAllocationSet},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := base()
			tt.mutate(&req)
			_, err := req.Params(1)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestVestingRequest_Params(t *testing.T) {
	tests := []struct {
		name         string
		req          VestingRequest
		wantSchedule vault.Schedule
		wantBenef    string
	}{
		{
			name: "linear defaults beneficiary to owner",
			req: VestingRequest{
				Owner: ownerHex, TokenAddress: tokenHex, TotalAmount: "1000",
				Duration: 1000, Cliff: 100, CreatedAt: 500,
			},
			wantSchedule: vault.LinearVesting{Start: 500, Duration: 1000, Cliff: 100},
			wantBenef:    ownerHex,
		},
		{
			name: "periodic",
			req: VestingRequest{
				Owner: ownerHex, TokenAddress: tokenHex, TotalAmount: "1000",
				Duration: 60, ReleaseRatePerPeriod: "10", Beneficiary: aliceHex, CreatedAt: 500,
			},
			wantSchedule: vault.PeriodicRate{Start: 500, PeriodLength: 60, AmountPerPeriod: mustAmount(t, "10")},
			wantBenef:    aliceHex,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := tt.req.Params(9999)
			require.NoError(t, err)

			assert.Equal(t, vault.TokenAsset(common.HexToAddress(tokenHex)), p.Asset)
			assert.Equal(t, tt.wantSchedule, p.Schedule)
			assert.Equal(t, "1000", p.Deposit.Dec())
			require.Len(t, p.Beneficiaries, 1)
			assert.Equal(t, common.HexToAddress(tt.wantBenef), p.Beneficiaries[0].Address)
			assert.Equal(t, "1000", p.Beneficiaries[0].Share.Dec())
		})
	}
}

func TestVestingRequest_Params_Errors(t *testing.T) {
	tests := []struct {
		name    string
		req     VestingRequest
		wantErr error
	}{
		{"zero total", VestingRequest{Owner: ownerHex, TokenAddress: tokenHex, TotalAmount: "0", Duration: 1}, vault.ErrInvalidAllocationSet},
		{"cliff with rate", VestingRequest{Owner: ownerHex, TokenAddress: tokenHex, TotalAmount: "10", Duration: 1, ReleaseRatePerPeriod: "1", Cliff: 1}, vault.ErrInvalidSchedule},
		{"bad beneficiary", VestingRequest{Owner: ownerHex, TokenAddress: tokenHex, TotalAmount: "10", Duration: 1, Beneficiary: "0x1"}, vault.ErrInvalidAllocationSet},
		{"bad owner", VestingRequest{Owner: "root", TokenAddress: tokenHex, TotalAmount: "10", Duration: 1}, vault.ErrInvalidOwner},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.req.Params(1)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestNewTokenResponse(t *testing.T) {
	tok := Token{SignedString: "a.b.c", Address: common.HexToAddress(aliceHex)}

	resp := NewTokenResponse(tok)

	assert.Equal(t, "a.b.c", resp.Token)
	assert.Equal(t, aliceHex, resp.Subject)
	assert.Zero(t, resp.ExpiresAt)
}
