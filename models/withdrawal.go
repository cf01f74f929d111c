package models

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-lock-keeper/internal/vault"
)

// Withdrawal is a journaled payout. The journal is the source of truth for
// vault totals after a restart.
type Withdrawal struct {
	ID        string    `json:"id"`
	VaultID   string    `json:"vault_id"`
	Kind      string    `json:"kind"`
	Recipient string    `json:"recipient"`
	Amount    string    `json:"amount"`
	PaidAt    uint64    `json:"paid_at"`
	CreatedAt time.Time `json:"created_at"`
}

// NewWithdrawal builds the journal entry of p.
func NewWithdrawal(id string, p vault.Payout) Withdrawal {
	return Withdrawal{
		ID:        id,
		VaultID:   p.Vault.Hex(),
		Kind:      string(p.Kind),
		Recipient: p.To.Hex(),
		Amount:    p.Amount.Dec(),
		PaidAt:    p.At,
	}
}

// Record converts the entry into a replayable vault record.
func (w Withdrawal) Record() (vault.Record, error) {
	to, err := ParseAddress(w.Recipient)
	if err != nil {
		return vault.Record{}, fmt.Errorf("withdrawal %s: %w", w.ID, err)
	}
	amount, err := vault.ParseAmount(w.Amount)
	if err != nil {
		return vault.Record{}, fmt.Errorf("withdrawal %s: %w", w.ID, err)
	}
	return vault.Record{Kind: vault.PayoutKind(w.Kind), To: to, Amount: amount, At: w.PaidAt}, nil
}
