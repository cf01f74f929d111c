// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"testing"

	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-lock-keeper/models"
)

func TestBuildListVaultsQuery(t *testing.T) {
	const columns = "SELECT id, name, owner, asset, schedule, deposit, weighted, created_at, salt FROM vaults"

	tests := []struct {
		name      string
		format    sq.PlaceholderFormat
		filter    models.VaultFilter
		wantQuery string
		wantArgs  []any
	}{
		{
			name:      "no filter",
			format:    sq.Question,
			wantQuery: columns + " ORDER BY created_at, id",
		},
		{
			name:      "owner",
			format:    sq.Question,
			filter:    models.VaultFilter{Owner: "0xA"},
			wantQuery: columns + " WHERE owner = ? ORDER BY created_at, id",
			wantArgs:  []any{"0xA"},
		},
		{
			name:   "owner and beneficiary in postgres",
			format: sq.Dollar,
			filter: models.VaultFilter{Owner: "0xA", Beneficiary: "0xB", Status: "active"},
			wantQuery: columns + " WHERE owner = $1 AND id IN (SELECT vault_id FROM vault_beneficiaries WHERE address = $2)" +
				" ORDER BY created_at, id",
			wantArgs: []any{"0xA", "0xB"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildListVaultsQuery(sq.StatementBuilder.PlaceholderFormat(tt.format), tt.filter)
			require.NoError(t, err)
			assert.Equal(t, tt.wantQuery, query)
			if tt.wantArgs == nil {
				assert.Empty(t, args)
			} else {
				assert.Equal(t, tt.wantArgs, args)
			}
		})
	}
}

func TestRebind(t *testing.T) {
	pg := &DB{dialect: dialectPostgres}
	lite := &DB{dialect: dialectSQLite}

	assert.Equal(t, "DELETE FROM t WHERE a = $1 AND b = $2", pg.rebind("DELETE FROM t WHERE a = ? AND b = ?"))
	assert.Equal(t, "DELETE FROM t WHERE a = ?", lite.rebind("DELETE FROM t WHERE a = ?"))
}

func TestSQLiteDSN(t *testing.T) {
	assert.Equal(t, ":memory:?_foreign_keys=on", sqliteDSN(":memory:"))
	assert.Equal(t, "vaults.db?cache=shared&_foreign_keys=on", sqliteDSN("sqlite3://vaults.db?cache=shared"))
	assert.Equal(t, "vaults.db?_fk=1", sqliteDSN("vaults.db?_fk=1"))
	assert.True(t, isPostgresDSN("postgres://u:p@localhost/db"))
	assert.True(t, isPostgresDSN("postgresql://localhost/db"))
	assert.False(t, isPostgresDSN("lock-keeper.db"))
}
