package manifest

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-lock-keeper/internal/vault"
)

const sampleManifest = `
vaults:
  - name: team
    kind: fixed
    owner: "0x0000000000000000000000000000000000000001"
    duration: 100
    beneficiaries:
      - "0x0000000000000000000000000000000000000002"
      - "0x0000000000000000000000000000000000000003"
    shares: ["60", "40"]
    created_at: 1000
  - name: grant
    kind: Vesting
    owner: "0x0000000000000000000000000000000000000001"
    token_address: "0x00000000000000000000000000000000000000ff"
    total_amount: "1000000000000000000"
    duration: 1000
    cliff: 100
    created_at: 1000
`

func TestParse(t *testing.T) {
	m, err := Parse([]byte(sampleManifest))
	require.NoError(t, err)
	require.Len(t, m.Vaults, 2)

	fixed := m.Vaults[0]
	assert.Equal(t, KindFixed, fixed.Kind)
	require.NotNil(t, fixed.Fixed)
	assert.Nil(t, fixed.Vesting)
	assert.Equal(t, "team", fixed.Name())
	assert.Equal(t, []string{"60", "40"}, fixed.Fixed.Shares)

	p, err := fixed.Params()
	require.NoError(t, err)
	assert.Equal(t, vault.SingleMaturity{UnlockAt: 1100}, p.Schedule)
	assert.True(t, p.Asset.IsNative())

	vesting := m.Vaults[1]
	assert.Equal(t, KindVesting, vesting.Kind)
	require.NotNil(t, vesting.Vesting)
	assert.Equal(t, "grant", vesting.Name())

	p, err = vesting.Params()
	require.NoError(t, err)
	assert.Equal(t, vault.LinearVesting{Start: 1000, Duration: 1000, Cliff: 100}, p.Schedule)
	assert.False(t, p.Asset.IsNative())
}

func TestParse_IDsAreStable(t *testing.T) {
	first, err := Parse([]byte(sampleManifest))
	require.NoError(t, err)
	second, err := Parse([]byte(sampleManifest))
	require.NoError(t, err)

	for i := range first.Vaults {
		a, err := first.Vaults[i].Params()
		require.NoError(t, err)
		b, err := second.Vaults[i].Params()
		require.NoError(t, err)
		assert.Equal(t, a.ID(), b.ID())
	}
}

func TestParse_Errors(t *testing.T) {
	_, err := Parse([]byte("   \n"))
	assert.ErrorIs(t, err, ErrEmptyManifest)

	_, err = Parse([]byte("vaults:\n  - kind: bond\n"))
	assert.ErrorIs(t, err, ErrUnknownKind)

	_, err = Parse([]byte("vaults: [\n"))
	assert.Error(t, err)
}

func TestEntry_RequiresCreatedAt(t *testing.T) {
	m, err := Parse([]byte(strings.ReplaceAll(sampleManifest, "created_at: 1000", "created_at: 0")))
	require.NoError(t, err)

	for _, e := range m.Vaults {
		_, err = e.Params()
		assert.ErrorIs(t, err, ErrMissingCreatedAt)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vaults.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleManifest), 0o600))

	m, err := LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, m.Vaults, 2)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestExampleManifest(t *testing.T) {
	m, err := LoadFile(filepath.Join("..", "..", "deploy", "vaults.example.yaml"))
	require.NoError(t, err)
	require.Len(t, m.Vaults, 3)

	for _, e := range m.Vaults {
		_, err := e.Params()
		assert.NoError(t, err, e.Name())
	}

	p, err := m.Vaults[2].Params()
	require.NoError(t, err)
	assert.Equal(t, vault.KindPeriodicRate, p.Schedule.Kind())
}
