package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-lock-keeper/internal/logger"
	"github.com/MKhiriev/go-lock-keeper/internal/store"
	"github.com/MKhiriev/go-lock-keeper/internal/vault"
	"github.com/MKhiriev/go-lock-keeper/models"
)

// journalingTransfer persists every payout before handing it to the
// settlement adapter, so a restarted process replays exactly what was paid.
type journalingTransfer struct {
	repo   store.VaultRepository
	ids    IDGenerator
	next   vault.TransferAdapter
	logger *logger.Logger
}

func newJournalingTransfer(repo store.VaultRepository, ids IDGenerator, next vault.TransferAdapter, log *logger.Logger) *journalingTransfer {
	return &journalingTransfer{repo: repo, ids: ids, next: next, logger: log}
}

// Transfer journals p, then settles it. A failed settlement removes the
// journal entry again; if that removal fails too the journal no longer
// matches the vault and the error wraps vault.ErrInternalFault.
func (j *journalingTransfer) Transfer(ctx context.Context, p vault.Payout) error {
	log := logger.FromContext(ctx)

	w := models.NewWithdrawal(j.ids.Generate(), p)
	if err := j.repo.SaveWithdrawal(ctx, w); err != nil {
		log.Err(err).
			Str("func", "*journalingTransfer.Transfer").
			Str("vault", w.VaultID).
			Msg("failed to journal payout")
		return fmt.Errorf("journal payout: %w", err)
	}

	transferErr := j.next.Transfer(ctx, p)
	if transferErr == nil {
		return nil
	}

	if err := j.repo.DeleteWithdrawal(context.WithoutCancel(ctx), w.ID); err != nil {
		log.Err(err).
			Str("func", "*journalingTransfer.Transfer").
			Str("vault", w.VaultID).
			Str("withdrawal", w.ID).
			Msg("failed to remove journal entry of a failed payout")
		return fmt.Errorf("%w: journal keeps unpaid entry %s: %w", vault.ErrInternalFault, w.ID, transferErr)
	}

	return transferErr
}
