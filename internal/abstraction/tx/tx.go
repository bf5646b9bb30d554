package tx

import (
	"context"

	app_errors "github.com/DevITJAX/FlowOps/internal/errors"
)

// Tx und TxManager entkoppeln die Services von pgx, damit die
// Konsistenzoperationen (Sprint-Abschluss, Zeitaggregation, Mitglieder-Sync)
// mit gemockten Transaktionen getestet werden können.
type Tx interface {
	Commit(ctx context.Context) *app_errors.AppError
	Rollback(ctx context.Context) *app_errors.AppError
}

type TxManager interface {
	Begin(ctx context.Context) (Tx, *app_errors.AppError)
}
