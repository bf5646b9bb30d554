package sprint_case

import (
	"context"
	"fmt"
	"time"

	"github.com/DevITJAX/FlowOps/internal/abstraction/tx"
	"github.com/DevITJAX/FlowOps/internal/authz"
	sprint_dto "github.com/DevITJAX/FlowOps/internal/dtos/sprint-dto"
	"github.com/DevITJAX/FlowOps/internal/entity"
	app_errors "github.com/DevITJAX/FlowOps/internal/errors"
	"github.com/DevITJAX/FlowOps/internal/queue"
	"github.com/DevITJAX/FlowOps/internal/realtime"
	activity_repo "github.com/DevITJAX/FlowOps/internal/repo/activity-repo"
	project_repo "github.com/DevITJAX/FlowOps/internal/repo/project-repo"
	sprint_repo "github.com/DevITJAX/FlowOps/internal/repo/sprint-repo"
	task_repo "github.com/DevITJAX/FlowOps/internal/repo/task-repo"
	worker_task "github.com/DevITJAX/FlowOps/internal/worker/tasks"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const velocitySprintWindow = 5

type SprintService struct {
	repo      sprint_repo.SprintRepoContract
	tasks     task_repo.TaskRepoContract
	projects  project_repo.ProjectRepoContract
	ar        activity_repo.ActivityRepoContract
	txm       tx.TxManager
	taskQueue queue.TaskQueueContract
	publisher realtime.Publisher
}

func NewSprintService(db *pgxpool.Pool, redis *redis.Client) SprintServiceContract {
	return &SprintService{
		repo:      sprint_repo.NewSprintRepo(db),
		tasks:     task_repo.NewTaskRepo(db),
		projects:  project_repo.NewProjectRepo(db),
		ar:        activity_repo.NewActivityRepo(db),
		txm:       tx.NewPgxTxManager(db),
		taskQueue: queue.NewTaskQueue(redis),
		publisher: realtime.NewRedisPublisher(redis),
	}
}

// authorizeProject wertet die Regel-Tabelle gegen das Projekt des Sprints aus.
// Sprint-Verwaltung steht allen Projektbeteiligten offen.
func (s *SprintService) authorizeProject(ctx context.Context, actor authz.Actor, projectID string, op authz.Operation) (*entity.ProjectEntity, *app_errors.AppError) {
	project, appErr := s.projects.FindProjectByID(ctx, projectID)
	if appErr != nil {
		return nil, appErr
	}

	memberIDs, appErr := s.projects.ListMemberIDs(ctx, projectID)
	if appErr != nil {
		return nil, appErr
	}

	if !authz.Authorize(actor, op, authz.Target{
		ProjectOwnerID:   project.OwnerID,
		ProjectMemberIDs: memberIDs,
	}) {
		return nil, app_errors.Forbidden("forbidden")
	}

	return project, nil
}

func (s *SprintService) logActivity(ctx context.Context, userID, action, sprintID string, details map[string]any) {
	id, err := uuid.NewV7()
	if err != nil {
		return
	}
	if appErr := s.ar.CreateActivity(ctx, &entity.ActivityEntity{
		ID:         id.String(),
		UserID:     userID,
		Action:     action,
		TargetType: "sprint",
		TargetID:   sprintID,
		Details:    details,
		CreatedAt:  time.Now(),
	}); appErr != nil {
		log.Warn().Err(appErr.Err).Str("action", action).Msg("Aktivität konnte nicht protokolliert werden")
	}
}

// notifyParticipants reiht eine Benachrichtigung an Owner und Mitglieder ein.
func (s *SprintService) notifyParticipants(ctx context.Context, actorID string, project *entity.ProjectEntity, nType entity.NotificationType, title, message string) {
	memberIDs, appErr := s.projects.ListMemberIDs(ctx, project.ID)
	if appErr != nil {
		log.Warn().Err(appErr.Err).Msg("Fehler beim Laden der Projektmitglieder")
		return
	}

	recipients := append(memberIDs, project.OwnerID)

	err := s.taskQueue.EnqueueDeliverNotification(&worker_task.DeliverNotificationPayload{
		RecipientIDs: recipients,
		ActorID:      actorID,
		Type:         string(nType),
		Title:        title,
		Message:      message,
		ProjectID:    &project.ID,
	})
	if err != nil {
		log.Warn().Err(err).Str("type", string(nType)).Msg("Fehler beim Einreihen der Benachrichtigung")
	}
}

func (s *SprintService) CreateSprint(ctx context.Context, actor authz.Actor, projectID string, req *sprint_dto.CreateSprintRequest) (*entity.SprintEntity, *app_errors.AppError) {
	if _, appErr := s.authorizeProject(ctx, actor, projectID, authz.TaskCreate); appErr != nil {
		return nil, appErr
	}

	sprintID, idErr := uuid.NewV7()
	if idErr != nil {
		return nil, app_errors.Internal(idErr)
	}

	sprint, appErr := s.repo.CreateSprint(ctx, &entity.SprintEntity{
		ID:        sprintID.String(),
		ProjectID: projectID,
		Name:      req.Name,
		Goal:      req.Goal,
		Status:    entity.SprintPlanned,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		CreatedBy: actor.ID,
		CreatedAt: time.Now(),
	})
	if appErr != nil {
		return nil, appErr
	}

	s.logActivity(ctx, actor.ID, "sprint_created", sprint.ID, map[string]any{"name": sprint.Name})

	return sprint, nil
}

func (s *SprintService) ListSprints(ctx context.Context, actor authz.Actor, projectID string) ([]entity.SprintEntity, *app_errors.AppError) {
	if _, appErr := s.authorizeProject(ctx, actor, projectID, authz.ProjectRead); appErr != nil {
		return nil, appErr
	}

	return s.repo.ListSprintsByProject(ctx, projectID)
}

func (s *SprintService) GetSprint(ctx context.Context, actor authz.Actor, sprintID string) (*sprint_dto.SprintDetailResponse, *app_errors.AppError) {
	sprint, appErr := s.repo.FindSprintByID(ctx, sprintID)
	if appErr != nil {
		return nil, appErr
	}

	if _, appErr := s.authorizeProject(ctx, actor, sprint.ProjectID, authz.ProjectRead); appErr != nil {
		return nil, appErr
	}

	stats, appErr := s.repo.GetTaskStats(ctx, sprintID)
	if appErr != nil {
		return nil, appErr
	}

	tasks, appErr := s.tasks.ListBySprint(ctx, sprintID)
	if appErr != nil {
		return nil, appErr
	}

	return &sprint_dto.SprintDetailResponse{
		SprintResponse: sprint_dto.ToSprintResponse(sprint),
		Stats:          *stats,
		Tasks:          tasks,
	}, nil
}

func (s *SprintService) UpdateSprint(ctx context.Context, actor authz.Actor, sprintID string, req *sprint_dto.UpdateSprintRequest) (*entity.SprintEntity, *app_errors.AppError) {
	sprint, appErr := s.repo.FindSprintByID(ctx, sprintID)
	if appErr != nil {
		return nil, appErr
	}

	if _, appErr := s.authorizeProject(ctx, actor, sprint.ProjectID, authz.TaskCreate); appErr != nil {
		return nil, appErr
	}

	// Abgeschlossene Sprints gehen in die Velocity ein und bleiben unverändert.
	if sprint.Status == entity.SprintCompleted {
		return nil, app_errors.Conflict("sprint.already_completed")
	}

	start := sprint.StartDate
	if req.StartDate != nil {
		start = *req.StartDate
	}
	end := sprint.EndDate
	if req.EndDate != nil {
		end = *req.EndDate
	}
	if !end.After(start) {
		return nil, app_errors.BadRequest("sprint.invalid_date_range")
	}

	return s.repo.UpdateSprint(ctx, sprintID, entity.SprintUpdate{
		Name:      req.Name,
		Goal:      req.Goal,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	})
}

// DeleteSprint löst zuerst alle Aufgaben vom Sprint (zurück ins Backlog)
// und entfernt dann den Sprint, beides in einer Transaktion.
func (s *SprintService) DeleteSprint(ctx context.Context, actor authz.Actor, sprintID string) *app_errors.AppError {
	sprint, appErr := s.repo.FindSprintByID(ctx, sprintID)
	if appErr != nil {
		return appErr
	}

	if _, appErr := s.authorizeProject(ctx, actor, sprint.ProjectID, authz.TaskCreate); appErr != nil {
		return appErr
	}

	t, appErr := s.txm.Begin(ctx)
	if appErr != nil {
		return appErr
	}
	committed := false
	defer func() {
		if !committed {
			_ = t.Rollback(ctx)
		}
	}()

	if appErr := s.tasks.ClearSprint(ctx, t, sprintID, false); appErr != nil {
		return appErr
	}

	if appErr := s.repo.DeleteSprint(ctx, t, sprintID); appErr != nil {
		return appErr
	}

	if appErr := t.Commit(ctx); appErr != nil {
		return appErr
	}
	committed = true

	s.logActivity(ctx, actor.ID, "sprint_deleted", sprintID, map[string]any{"name": sprint.Name})

	return nil
}

func (s *SprintService) StartSprint(ctx context.Context, actor authz.Actor, sprintID string) (*entity.SprintEntity, *app_errors.AppError) {
	sprint, appErr := s.repo.FindSprintByID(ctx, sprintID)
	if appErr != nil {
		return nil, appErr
	}

	project, appErr := s.authorizeProject(ctx, actor, sprint.ProjectID, authz.TaskCreate)
	if appErr != nil {
		return nil, appErr
	}

	t, appErr := s.txm.Begin(ctx)
	if appErr != nil {
		return nil, appErr
	}
	committed := false
	defer func() {
		if !committed {
			_ = t.Rollback(ctx)
		}
	}()

	started, appErr := s.repo.ActivateSprint(ctx, t, sprintID)
	if appErr != nil {
		return nil, appErr
	}

	if appErr := t.Commit(ctx); appErr != nil {
		return nil, appErr
	}
	committed = true

	if err := s.publisher.ToProject(ctx, sprint.ProjectID, realtime.EventSprintStarted, started); err != nil {
		log.Warn().Err(err).Msg("Fehler beim Veröffentlichen des Sprint-Events")
	}

	s.notifyParticipants(ctx, actor.ID, project, entity.NotifySprintStarted,
		started.Name, fmt.Sprintf("Sprint %q wurde gestartet", started.Name))

	s.logActivity(ctx, actor.ID, "sprint_started", sprintID, map[string]any{"name": started.Name})

	return started, nil
}

// CompleteSprint schließt den aktiven Sprint ab: completedPoints ist die
// Summe der Story Points aller erledigten Aufgaben, velocity wird darauf
// gesetzt. Auf Wunsch wandern unfertige Aufgaben zurück ins Backlog.
func (s *SprintService) CompleteSprint(ctx context.Context, actor authz.Actor, sprintID string, req *sprint_dto.CompleteSprintRequest) (*entity.SprintEntity, *app_errors.AppError) {
	sprint, appErr := s.repo.FindSprintByID(ctx, sprintID)
	if appErr != nil {
		return nil, appErr
	}

	project, appErr := s.authorizeProject(ctx, actor, sprint.ProjectID, authz.TaskCreate)
	if appErr != nil {
		return nil, appErr
	}

	t, appErr := s.txm.Begin(ctx)
	if appErr != nil {
		return nil, appErr
	}
	committed := false
	defer func() {
		if !committed {
			_ = t.Rollback(ctx)
		}
	}()

	donePoints, appErr := s.tasks.SumDonePoints(ctx, t, sprintID)
	if appErr != nil {
		return nil, appErr
	}

	completed, appErr := s.repo.CompleteSprint(ctx, t, sprintID, donePoints)
	if appErr != nil {
		return nil, appErr
	}

	if req.MoveToBacklog {
		if appErr := s.tasks.ClearSprint(ctx, t, sprintID, true); appErr != nil {
			return nil, appErr
		}
	}

	if appErr := t.Commit(ctx); appErr != nil {
		return nil, appErr
	}
	committed = true

	if err := s.publisher.ToProject(ctx, sprint.ProjectID, realtime.EventSprintCompleted, completed); err != nil {
		log.Warn().Err(err).Msg("Fehler beim Veröffentlichen des Sprint-Events")
	}

	s.notifyParticipants(ctx, actor.ID, project, entity.NotifySprintCompleted,
		completed.Name, fmt.Sprintf("Sprint %q wurde abgeschlossen (%d Punkte)", completed.Name, completed.CompletedPoints))

	s.logActivity(ctx, actor.ID, "sprint_completed", sprintID, map[string]any{
		"name":             completed.Name,
		"completed_points": completed.CompletedPoints,
	})

	return completed, nil
}

func (s *SprintService) AddTasks(ctx context.Context, actor authz.Actor, sprintID string, req *sprint_dto.SprintTasksRequest) *app_errors.AppError {
	sprint, appErr := s.repo.FindSprintByID(ctx, sprintID)
	if appErr != nil {
		return appErr
	}

	if _, appErr := s.authorizeProject(ctx, actor, sprint.ProjectID, authz.TaskCreate); appErr != nil {
		return appErr
	}

	t, appErr := s.txm.Begin(ctx)
	if appErr != nil {
		return appErr
	}
	committed := false
	defer func() {
		if !committed {
			_ = t.Rollback(ctx)
		}
	}()

	// Nur Aufgaben des eigenen Projekts werden zugeordnet, fremde IDs
	// bleiben wirkungslos.
	if appErr := s.tasks.AssignTasksToSprint(ctx, t, sprint.ProjectID, sprintID, req.TaskIDs); appErr != nil {
		return appErr
	}

	if appErr := t.Commit(ctx); appErr != nil {
		return appErr
	}
	committed = true

	return nil
}

func (s *SprintService) RemoveTasks(ctx context.Context, actor authz.Actor, sprintID string, req *sprint_dto.SprintTasksRequest) *app_errors.AppError {
	sprint, appErr := s.repo.FindSprintByID(ctx, sprintID)
	if appErr != nil {
		return appErr
	}

	if _, appErr := s.authorizeProject(ctx, actor, sprint.ProjectID, authz.TaskCreate); appErr != nil {
		return appErr
	}

	t, appErr := s.txm.Begin(ctx)
	if appErr != nil {
		return appErr
	}
	committed := false
	defer func() {
		if !committed {
			_ = t.Rollback(ctx)
		}
	}()

	if appErr := s.tasks.RemoveTasksFromSprint(ctx, t, sprintID, req.TaskIDs); appErr != nil {
		return appErr
	}

	if appErr := t.Commit(ctx); appErr != nil {
		return appErr
	}
	committed = true

	return nil
}

func (s *SprintService) GetBacklog(ctx context.Context, actor authz.Actor, projectID string) (*sprint_dto.BacklogResponse, *app_errors.AppError) {
	if _, appErr := s.authorizeProject(ctx, actor, projectID, authz.ProjectRead); appErr != nil {
		return nil, appErr
	}

	tasks, appErr := s.tasks.ListBacklog(ctx, projectID)
	if appErr != nil {
		return nil, appErr
	}

	total := 0
	for _, task := range tasks {
		total += task.StoryPoints
	}

	return &sprint_dto.BacklogResponse{Tasks: tasks, TotalPoints: total}, nil
}

func (s *SprintService) GetVelocity(ctx context.Context, actor authz.Actor, projectID string) (*sprint_dto.VelocityResponse, *app_errors.AppError) {
	if _, appErr := s.authorizeProject(ctx, actor, projectID, authz.ProjectRead); appErr != nil {
		return nil, appErr
	}

	sprints, appErr := s.repo.ListCompletedSprints(ctx, projectID, velocitySprintWindow)
	if appErr != nil {
		return nil, appErr
	}

	entries := make([]sprint_dto.VelocityEntry, 0, len(sprints))
	sum := 0
	for _, sp := range sprints {
		entries = append(entries, sprint_dto.VelocityEntry{
			SprintID:        sp.ID,
			Name:            sp.Name,
			Velocity:        sp.Velocity,
			CompletedPoints: sp.CompletedPoints,
		})
		sum += sp.Velocity
	}

	average := 0.0
	if len(entries) > 0 {
		average = float64(sum) / float64(len(entries))
	}

	return &sprint_dto.VelocityResponse{Sprints: entries, Average: average}, nil
}
