package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-lock-keeper/internal/config"
	"github.com/MKhiriev/go-lock-keeper/internal/logger"
	"github.com/MKhiriev/go-lock-keeper/models"
)

func newSQLiteRepositories(t *testing.T) *Repositories {
	t.Helper()

	repos, err := NewRepositories(context.Background(), config.DB{DSN: ":memory:"}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = repos.Close() })
	return repos
}

func TestSQLite_VaultRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := newSQLiteRepositories(t).VaultRepository

	def := testDefinition()
	def.Weighted = true
	require.NoError(t, repo.CreateVault(ctx, def))
	assert.ErrorIs(t, repo.CreateVault(ctx, def), ErrVaultAlreadyExists)

	got, err := repo.GetVault(ctx, def.ID)
	require.NoError(t, err)
	assert.Equal(t, def, got)

	_, err = repo.GetVault(ctx, "0xmissing")
	assert.ErrorIs(t, err, ErrVaultNotFound)

	other := testDefinition()
	other.ID = "0x00000000000000000000000000000000000000bb"
	other.CreatedAt = 20
	other.Beneficiaries = other.Beneficiaries[:1]
	require.NoError(t, repo.CreateVault(ctx, other))

	all, err := repo.ListVaults(ctx, models.VaultFilter{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, def.ID, all[0].ID)

	byBeneficiary, err := repo.ListVaults(ctx, models.VaultFilter{Beneficiary: def.Beneficiaries[1].Address})
	require.NoError(t, err)
	require.Len(t, byBeneficiary, 1)
	assert.Equal(t, def.ID, byBeneficiary[0].ID)

	none, err := repo.ListVaults(ctx, models.VaultFilter{Owner: "0xnobody"})
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestSQLite_WithdrawalJournal(t *testing.T) {
	ctx := context.Background()
	repo := newSQLiteRepositories(t).VaultRepository

	def := testDefinition()
	require.NoError(t, repo.CreateVault(ctx, def))

	first := testWithdrawal()
	second := testWithdrawal()
	second.ID = "w-2"
	second.PaidAt = 1001
	second.CreatedAt = first.CreatedAt.Add(time.Second)

	require.NoError(t, repo.SaveWithdrawal(ctx, second))
	require.NoError(t, repo.SaveWithdrawal(ctx, first))
	assert.ErrorIs(t, repo.SaveWithdrawal(ctx, first), ErrWithdrawalAlreadyExists)

	orphan := testWithdrawal()
	orphan.ID = "w-3"
	orphan.VaultID = "0xmissing"
	assert.ErrorIs(t, repo.SaveWithdrawal(ctx, orphan), ErrVaultNotFound)

	got, err := repo.ListWithdrawals(ctx, def.ID)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "w-1", got[0].ID)
	assert.Equal(t, uint64(1000), got[0].PaidAt)
	assert.True(t, first.CreatedAt.Equal(got[0].CreatedAt))

	require.NoError(t, repo.DeleteWithdrawal(ctx, "w-1"))
	assert.ErrorIs(t, repo.DeleteWithdrawal(ctx, "w-1"), ErrWithdrawalNotFound)

	got, err = repo.ListWithdrawals(ctx, def.ID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "w-2", got[0].ID)
}
