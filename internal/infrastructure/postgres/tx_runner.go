package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/voyagetech/voyagecrm-api/internal/application/usecase"
	"github.com/voyagetech/voyagecrm-api/internal/domain/repository"
)

var _ usecase.AgreementTxRunner = (*TxRunner)(nil)

// TxRunner executes callbacks inside a PostgreSQL transaction.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner builds the runner with the pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunAgreement begins a transaction, runs fn with agreement and notification
// repos bound to the tx, and commits or rolls back. Used so the agreement row
// and its notification side effect land atomically.
func (r *TxRunner) RunAgreement(ctx context.Context, fn func(
	agreementRepo repository.AgreementRepository,
	notificationRepo repository.NotificationRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	agreementRepo := NewAgreementRepository(tx)
	notificationRepo := NewNotificationRepository(tx)

	if err := fn(agreementRepo, notificationRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
