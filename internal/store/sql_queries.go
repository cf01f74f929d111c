// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-lock-keeper/models"
)

// Static queries use '?' placeholders and are rebound per dialect.
const (
	insertVault = `INSERT INTO vaults (id, name, owner, asset, schedule, deposit, weighted, created_at, salt)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?);`

	insertBeneficiary = `INSERT INTO vault_beneficiaries (vault_id, position, address, share)
		VALUES (?, ?, ?, ?);`

	selectVaultByID = `SELECT id, name, owner, asset, schedule, deposit, weighted, created_at, salt
		FROM vaults
		WHERE id = ?;`

	selectBeneficiaries = `SELECT address, share
		FROM vault_beneficiaries
		WHERE vault_id = ?
		ORDER BY position;`

	insertWithdrawal = `INSERT INTO vault_withdrawals (id, vault_id, kind, recipient, amount, paid_at, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?);`

	deleteWithdrawal = `DELETE FROM vault_withdrawals
		WHERE id = ?;`

	selectWithdrawals = `SELECT id, vault_id, kind, recipient, amount, paid_at, created_at
		FROM vault_withdrawals
		WHERE vault_id = ?
		ORDER BY paid_at, created_at, id;`
)

var vaultColumns = []string{"id", "name", "owner", "asset", "schedule", "deposit", "weighted", "created_at", "salt"}

// buildListVaultsQuery narrows the vault listing by owner and beneficiary.
func buildListVaultsQuery(builder sq.StatementBuilderType, filter models.VaultFilter) (string, []any, error) {
	query := builder.
		Select(vaultColumns...).
		From("vaults").
		OrderBy("created_at", "id")

	if filter.Owner != "" {
		query = query.Where(sq.Eq{"owner": filter.Owner})
	}
	if filter.Beneficiary != "" {
		query = query.Where("id IN (SELECT vault_id FROM vault_beneficiaries WHERE address = ?)", filter.Beneficiary)
	}

	return query.ToSql()
}
