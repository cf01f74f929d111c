package client

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-lock-keeper/internal/config"
	"github.com/MKhiriev/go-lock-keeper/internal/logger"
	"github.com/MKhiriev/go-lock-keeper/internal/mock"
	"github.com/MKhiriev/go-lock-keeper/internal/utils"
	"github.com/MKhiriev/go-lock-keeper/internal/vault"
	"github.com/MKhiriev/go-lock-keeper/models"
)

const (
	testVault   = "0x00000000000000000000000000000000000000aa"
	testAddress = "0x0000000000000000000000000000000000000002"
)

func newTestApp(t *testing.T, cfg *config.ClientConfig) (*App, *mock.MockVaultAdapter, *bytes.Buffer) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := mock.NewMockVaultAdapter(ctrl)
	if cfg == nil {
		cfg = &config.ClientConfig{ServerURL: "http://localhost:8080"}
	}
	if cfg.Token != "" {
		m.EXPECT().SetToken(cfg.Token)
	}
	out := &bytes.Buffer{}
	return NewApp(m, cfg, out, logger.Nop()), m, out
}

func TestApp_Run_NoCommand(t *testing.T) {
	app, _, _ := newTestApp(t, nil)
	assert.ErrorIs(t, app.Run(context.Background(), nil), ErrNoCommand)
}

func TestApp_Run_UnknownCommand(t *testing.T) {
	app, _, _ := newTestApp(t, nil)
	assert.ErrorIs(t, app.Run(context.Background(), []string{"deploy"}), ErrUnknownCommand)
}

func TestApp_Token(t *testing.T) {
	cfg := &config.ClientConfig{
		TokenSignKey:  "secret",
		TokenIssuer:   "go-lock-keeper",
		TokenDuration: time.Hour,
	}
	app, _, out := newTestApp(t, cfg)

	require.NoError(t, app.Run(context.Background(), []string{"token", "-sub", testAddress}))

	var resp models.TokenResponse
	require.NoError(t, json.Unmarshal(out.Bytes(), &resp))
	assert.Equal(t, "0x0000000000000000000000000000000000000002", resp.Subject)
	assert.NotZero(t, resp.ExpiresAt)

	parsed, err := utils.ValidateAndParseJWTToken(resp.Token, "secret", "go-lock-keeper")
	require.NoError(t, err)
	assert.Equal(t, resp.Subject, parsed.Address.Hex())
}

func TestApp_Token_Errors(t *testing.T) {
	tests := []struct {
		name    string
		signKey string
		args    []string
		wantErr error
	}{
		{"missing sub", "secret", []string{"token"}, ErrMissingArgument},
		{"no sign key", "", []string{"token", "-sub", testAddress}, ErrNoSignKey},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, _, _ := newTestApp(t, &config.ClientConfig{
				TokenSignKey:  tt.signKey,
				TokenIssuer:   "go-lock-keeper",
				TokenDuration: time.Hour,
			})
			assert.ErrorIs(t, app.Run(context.Background(), tt.args), tt.wantErr)
		})
	}

	app, _, _ := newTestApp(t, &config.ClientConfig{TokenSignKey: "s", TokenIssuer: "i", TokenDuration: time.Hour})
	assert.Error(t, app.Run(context.Background(), []string{"token", "-sub", "not-an-address"}))
}

func TestApp_Version(t *testing.T) {
	app, m, out := newTestApp(t, nil)
	m.EXPECT().Version(gomock.Any()).Return("1.2.3", nil)

	require.NoError(t, app.Run(context.Background(), []string{"version"}))
	assert.Equal(t, "1.2.3\n", out.String())
}

func TestApp_List(t *testing.T) {
	app, m, out := newTestApp(t, nil)
	m.EXPECT().
		ListVaults(gomock.Any(), models.VaultFilter{Owner: testAddress, Status: "active"}).
		Return([]models.VaultView{{ID: testVault}}, nil)

	require.NoError(t, app.Run(context.Background(), []string{"list", "-owner", testAddress, "-status", "active"}))

	var views []models.VaultView
	require.NoError(t, json.Unmarshal(out.Bytes(), &views))
	require.Len(t, views, 1)
	assert.Equal(t, testVault, views[0].ID)
}

func TestApp_Status(t *testing.T) {
	app, m, out := newTestApp(t, nil)
	m.EXPECT().GetVault(gomock.Any(), testVault).Return(models.VaultView{ID: testVault, Status: "active"}, nil)

	require.NoError(t, app.Run(context.Background(), []string{"status", testVault}))

	var view models.VaultView
	require.NoError(t, json.Unmarshal(out.Bytes(), &view))
	assert.Equal(t, "active", view.Status)
}

func TestApp_Status_MissingVault(t *testing.T) {
	app, _, _ := newTestApp(t, nil)
	assert.ErrorIs(t, app.Run(context.Background(), []string{"status"}), ErrMissingArgument)
}

func instant(v uint64) *uint64 {
	return &v
}

func TestApp_Claimable(t *testing.T) {
	tests := []struct {
		name   string
		flags  []string
		wantAt *uint64
	}{
		{"explicit instant", []string{"-at", "1500"}, instant(1500)},
		{"epoch", []string{"-at", "0"}, instant(0)},
		{"server time", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, m, out := newTestApp(t, nil)
			m.EXPECT().
				BeneficiaryState(gomock.Any(), testVault, testAddress, gomock.Eq(tt.wantAt)).
				Return(models.BeneficiaryState{VaultID: testVault, Address: testAddress, At: 1500, Claimable: "500"}, nil)

			args := append([]string{"claimable", testVault, testAddress}, tt.flags...)
			require.NoError(t, app.Run(context.Background(), args))

			var state models.BeneficiaryState
			require.NoError(t, json.Unmarshal(out.Bytes(), &state))
			assert.Equal(t, "500", state.Claimable)
		})
	}
}

func TestApp_Reclaimable(t *testing.T) {
	app, m, out := newTestApp(t, nil)
	m.EXPECT().OwnerState(gomock.Any(), testVault, gomock.Eq(instant(1100))).
		Return(models.OwnerState{VaultID: testVault, Reclaimable: "20"}, nil)

	require.NoError(t, app.Run(context.Background(), []string{"reclaimable", testVault, "-at", "1100"}))

	var state models.OwnerState
	require.NoError(t, json.Unmarshal(out.Bytes(), &state))
	assert.Equal(t, "20", state.Reclaimable)

	assert.ErrorIs(t, app.Run(context.Background(), []string{"reclaimable"}), ErrMissingArgument)
}

func TestApp_Claimable_MissingAddress(t *testing.T) {
	app, _, _ := newTestApp(t, nil)
	assert.ErrorIs(t, app.Run(context.Background(), []string{"claimable", testVault}), ErrMissingArgument)
}

func TestApp_Withdraw(t *testing.T) {
	app, m, out := newTestApp(t, &config.ClientConfig{Token: "bearer"})
	m.EXPECT().Token().Return("bearer")
	m.EXPECT().Withdraw(gomock.Any(), testVault).
		Return(models.PayoutResponse{VaultID: testVault, Recipient: testAddress, Amount: "72", Kind: "withdrawal"}, nil)

	require.NoError(t, app.Run(context.Background(), []string{"withdraw", testVault}))

	var resp models.PayoutResponse
	require.NoError(t, json.Unmarshal(out.Bytes(), &resp))
	assert.Equal(t, "72", resp.Amount)
}

func TestApp_Withdraw_NoToken(t *testing.T) {
	app, m, _ := newTestApp(t, nil)
	m.EXPECT().Token().Return("")

	assert.ErrorIs(t, app.Run(context.Background(), []string{"withdraw", testVault}), ErrNoToken)
}

func TestApp_Reclaim_PropagatesSentinel(t *testing.T) {
	app, m, out := newTestApp(t, &config.ClientConfig{Token: "bearer"})
	m.EXPECT().Token().Return("bearer")
	m.EXPECT().Reclaim(gomock.Any(), testVault).Return(models.PayoutResponse{}, vault.ErrNothingToClaim)

	err := app.Run(context.Background(), []string{"reclaim", testVault})
	require.ErrorIs(t, err, vault.ErrNothingToClaim)
	assert.True(t, vault.IsRetryable(err))
	assert.Empty(t, out.String())
}
