package sprint_repo

import (
	"context"

	"github.com/DevITJAX/FlowOps/internal/abstraction/tx"
	"github.com/DevITJAX/FlowOps/internal/entity"
	app_errors "github.com/DevITJAX/FlowOps/internal/errors"
)

type SprintRepoContract interface {
	CreateSprint(ctx context.Context, sprint *entity.SprintEntity) (*entity.SprintEntity, *app_errors.AppError)
	FindSprintByID(ctx context.Context, sprintID string) (*entity.SprintEntity, *app_errors.AppError)
	ListSprintsByProject(ctx context.Context, projectID string) ([]entity.SprintEntity, *app_errors.AppError)
	UpdateSprint(ctx context.Context, sprintID string, model entity.SprintUpdate) (*entity.SprintEntity, *app_errors.AppError)
	DeleteSprint(ctx context.Context, t tx.Tx, sprintID string) *app_errors.AppError

	// ActivateSprint schaltet planned → active. Die Eindeutigkeit des aktiven
	// Sprints pro Projekt sichert ein partieller Unique-Index; die Verletzung
	// kommt als Conflict zurück.
	ActivateSprint(ctx context.Context, t tx.Tx, sprintID string) (*entity.SprintEntity, *app_errors.AppError)
	CompleteSprint(ctx context.Context, t tx.Tx, sprintID string, completedPoints int) (*entity.SprintEntity, *app_errors.AppError)

	GetTaskStats(ctx context.Context, sprintID string) (*entity.SprintTaskStats, *app_errors.AppError)
	ListCompletedSprints(ctx context.Context, projectID string, limit int) ([]entity.SprintEntity, *app_errors.AppError)
}
