package timelog_repo

import (
	"context"
	"time"

	"github.com/DevITJAX/FlowOps/internal/abstraction/tx"
	"github.com/DevITJAX/FlowOps/internal/entity"
	app_errors "github.com/DevITJAX/FlowOps/internal/errors"
)

type TimeLogRepoContract interface {
	CreateTimeLog(ctx context.Context, t tx.Tx, timeLog *entity.TimeLogEntity) (*entity.TimeLogEntity, *app_errors.AppError)
	FindTimeLogByID(ctx context.Context, timeLogID string) (*entity.TimeLogEntity, *app_errors.AppError)
	ListTimeLogsByTask(ctx context.Context, taskID string) ([]entity.TimeLogDetail, *app_errors.AppError)
	UpdateTimeLog(ctx context.Context, t tx.Tx, timeLogID string, timeSpent *int, description *string, loggedAt *time.Time) (*entity.TimeLogEntity, *app_errors.AppError)
	DeleteTimeLog(ctx context.Context, t tx.Tx, timeLogID string) *app_errors.AppError
	// SumForTask liest die Summe innerhalb der laufenden Transaktion, damit
	// die Aggregat-Neuberechnung den eigenen Schreibzugriff sieht.
	SumForTask(ctx context.Context, t tx.Tx, taskID string) (int, *app_errors.AppError)
}
