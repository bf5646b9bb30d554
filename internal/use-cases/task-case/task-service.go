package task_case

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/DevITJAX/FlowOps/internal/abstraction/tx"
	"github.com/DevITJAX/FlowOps/internal/authz"
	task_dto "github.com/DevITJAX/FlowOps/internal/dtos/task-dto"
	"github.com/DevITJAX/FlowOps/internal/entity"
	app_errors "github.com/DevITJAX/FlowOps/internal/errors"
	"github.com/DevITJAX/FlowOps/internal/queue"
	"github.com/DevITJAX/FlowOps/internal/realtime"
	activity_repo "github.com/DevITJAX/FlowOps/internal/repo/activity-repo"
	label_repo "github.com/DevITJAX/FlowOps/internal/repo/label-repo"
	project_repo "github.com/DevITJAX/FlowOps/internal/repo/project-repo"
	sprint_repo "github.com/DevITJAX/FlowOps/internal/repo/sprint-repo"
	task_repo "github.com/DevITJAX/FlowOps/internal/repo/task-repo"
	"github.com/DevITJAX/FlowOps/internal/utils"
	worker_task "github.com/DevITJAX/FlowOps/internal/worker/tasks"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

type TaskService struct {
	repo      task_repo.TaskRepoContract
	projects  project_repo.ProjectRepoContract
	sprints   sprint_repo.SprintRepoContract
	labels    label_repo.LabelRepoContract
	ar        activity_repo.ActivityRepoContract
	txm       tx.TxManager
	taskQueue queue.TaskQueueContract
	publisher realtime.Publisher
}

func NewTaskService(db *pgxpool.Pool, redis *redis.Client) TaskServiceContract {
	return &TaskService{
		repo:      task_repo.NewTaskRepo(db),
		projects:  project_repo.NewProjectRepo(db),
		sprints:   sprint_repo.NewSprintRepo(db),
		labels:    label_repo.NewLabelRepo(db),
		ar:        activity_repo.NewActivityRepo(db),
		txm:       tx.NewPgxTxManager(db),
		taskQueue: queue.NewTaskQueue(redis),
		publisher: realtime.NewRedisPublisher(redis),
	}
}

// projectScope lädt Projekt und Mitgliederliste für die Regel-Auswertung.
func (s *TaskService) projectScope(ctx context.Context, projectID string) (*entity.ProjectEntity, []string, *app_errors.AppError) {
	project, appErr := s.projects.FindProjectByID(ctx, projectID)
	if appErr != nil {
		return nil, nil, appErr
	}

	memberIDs, appErr := s.projects.ListMemberIDs(ctx, projectID)
	if appErr != nil {
		return nil, nil, appErr
	}

	return project, memberIDs, nil
}

func isParticipant(project *entity.ProjectEntity, memberIDs []string, userID string) bool {
	return userID == project.OwnerID || slices.Contains(memberIDs, userID)
}

func (s *TaskService) logActivity(ctx context.Context, userID, action, taskID string, details map[string]any) {
	id, err := uuid.NewV7()
	if err != nil {
		return
	}
	if appErr := s.ar.CreateActivity(ctx, &entity.ActivityEntity{
		ID:         id.String(),
		UserID:     userID,
		Action:     action,
		TargetType: "task",
		TargetID:   taskID,
		Details:    details,
		CreatedAt:  time.Now(),
	}); appErr != nil {
		log.Warn().Err(appErr.Err).Str("action", action).Msg("Aktivität konnte nicht protokolliert werden")
	}
}

func (s *TaskService) notify(actorID string, recipients []string, nType entity.NotificationType, title, message string, projectID, taskID string) {
	if len(recipients) == 0 {
		return
	}
	err := s.taskQueue.EnqueueDeliverNotification(&worker_task.DeliverNotificationPayload{
		RecipientIDs: recipients,
		ActorID:      actorID,
		Type:         string(nType),
		Title:        title,
		Message:      message,
		ProjectID:    &projectID,
		TaskID:       &taskID,
	})
	if err != nil {
		log.Warn().Err(err).Str("type", string(nType)).Msg("Fehler beim Einreihen der Benachrichtigung")
	}
}

// validateRefs prüft Zuweisungs-, Sprint-, Eltern- und Label-Referenzen
// gegen das Projekt.
func (s *TaskService) validateRefs(ctx context.Context, project *entity.ProjectEntity, memberIDs []string, assigneeID, sprintID, parentID *string, taskID string, labelIDs []string) *app_errors.AppError {
	if assigneeID != nil && *assigneeID != "" {
		if !isParticipant(project, memberIDs, *assigneeID) {
			return app_errors.BadRequest("task.assignee_not_member")
		}
	}

	if sprintID != nil {
		sprint, appErr := s.sprints.FindSprintByID(ctx, *sprintID)
		if appErr != nil {
			return appErr
		}
		if sprint.ProjectID != project.ID {
			return app_errors.BadRequest("sprint.not_in_project")
		}
	}

	if parentID != nil && *parentID != "" {
		if taskID != "" && *parentID == taskID {
			return app_errors.BadRequest("task.parent_is_self")
		}
		parent, appErr := s.repo.FindTaskByID(ctx, *parentID)
		if appErr != nil {
			return appErr
		}
		if parent.ProjectID != project.ID {
			return app_errors.BadRequest("task.parent_not_in_project")
		}
	}

	if len(labelIDs) > 0 {
		count, appErr := s.labels.CountLabelsInProject(ctx, project.ID, labelIDs)
		if appErr != nil {
			return appErr
		}
		if count != len(labelIDs) {
			return app_errors.BadRequest("label.not_in_project")
		}
	}

	return nil
}

func (s *TaskService) CreateTask(ctx context.Context, actor authz.Actor, projectID string, req *task_dto.CreateTaskRequest) (*entity.TaskEntity, *app_errors.AppError) {
	project, memberIDs, appErr := s.projectScope(ctx, projectID)
	if appErr != nil {
		return nil, appErr
	}

	if !authz.Authorize(actor, authz.TaskCreate, authz.Target{
		ProjectOwnerID:   project.OwnerID,
		ProjectMemberIDs: memberIDs,
	}) {
		return nil, app_errors.Forbidden("forbidden")
	}

	if appErr := s.validateRefs(ctx, project, memberIDs, req.AssigneeID, req.SprintID, req.ParentID, "", req.LabelIDs); appErr != nil {
		return nil, appErr
	}

	taskID, idErr := uuid.NewV7()
	if idErr != nil {
		return nil, app_errors.Internal(idErr)
	}

	taskType := entity.TypeTask
	if req.Type != nil {
		taskType = entity.TaskType(*req.Type)
	}
	status := entity.TaskTodo
	if req.Status != nil {
		status = entity.TaskStatus(*req.Status)
	}
	priority := entity.PriorityMedium
	if req.Priority != nil {
		priority = entity.TaskPriority(*req.Priority)
	}
	storyPoints := 0
	if req.StoryPoints != nil {
		storyPoints = *req.StoryPoints
	}
	estimate := 0
	if req.OriginalEstimate != nil {
		estimate = *req.OriginalEstimate
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

	seq, appErr := s.repo.NextTaskSeq(ctx, t, projectID)
	if appErr != nil {
		return nil, appErr
	}

	task, appErr := s.repo.CreateTask(ctx, t, &entity.TaskEntity{
		ID:                taskID.String(),
		ProjectID:         projectID,
		TaskKey:           utils.TaskKey(project.Name, seq),
		Title:             req.Title,
		Description:       req.Description,
		Type:              taskType,
		Status:            status,
		Priority:          priority,
		StoryPoints:       storyPoints,
		OriginalEstimate:  estimate,
		RemainingEstimate: estimate,
		DueDate:           req.DueDate,
		AssigneeID:        req.AssigneeID,
		ReporterID:        actor.ID,
		ParentID:          req.ParentID,
		SprintID:          req.SprintID,
		CreatedAt:         time.Now(),
	})
	if appErr != nil {
		return nil, appErr
	}

	if len(req.LabelIDs) > 0 {
		if appErr := s.repo.SetLabels(ctx, t, task.ID, req.LabelIDs); appErr != nil {
			return nil, appErr
		}
	}

	if appErr := t.Commit(ctx); appErr != nil {
		return nil, appErr
	}
	committed = true

	if task.AssigneeID != nil && *task.AssigneeID != actor.ID {
		s.notify(actor.ID, []string{*task.AssigneeID}, entity.NotifyAssigned,
			task.TaskKey, fmt.Sprintf("%s wurde Ihnen zugewiesen: %s", task.TaskKey, task.Title),
			projectID, task.ID)
	}

	if err := s.publisher.ToProject(ctx, projectID, realtime.EventTaskCreated, task); err != nil {
		log.Warn().Err(err).Msg("Fehler beim Veröffentlichen des Task-Events")
	}

	s.logActivity(ctx, actor.ID, "task_created", task.ID, map[string]any{"task_key": task.TaskKey, "title": task.Title})

	return task, nil
}

func (s *TaskService) ListTasks(ctx context.Context, actor authz.Actor, projectID string, query *task_dto.TaskListQuery) ([]entity.TaskEntity, *app_errors.AppError) {
	project, memberIDs, appErr := s.projectScope(ctx, projectID)
	if appErr != nil {
		return nil, appErr
	}

	if !authz.Authorize(actor, authz.ProjectRead, authz.Target{
		ProjectOwnerID:   project.OwnerID,
		ProjectMemberIDs: memberIDs,
	}) {
		return nil, app_errors.Forbidden("forbidden")
	}

	filter := entity.TaskListFilter{
		AssigneeID: query.AssigneeID,
		SprintID:   query.SprintID,
	}
	if query.Status != nil {
		st := entity.TaskStatus(*query.Status)
		filter.Status = &st
	}
	if query.Type != nil {
		tt := entity.TaskType(*query.Type)
		filter.Type = &tt
	}
	if query.Priority != nil {
		pr := entity.TaskPriority(*query.Priority)
		filter.Priority = &pr
	}

	return s.repo.ListTasksByProject(ctx, projectID, filter)
}

func (s *TaskService) GetTask(ctx context.Context, actor authz.Actor, taskID string) (*entity.TaskDetail, *app_errors.AppError) {
	detail, appErr := s.repo.FindTaskDetail(ctx, taskID)
	if appErr != nil {
		return nil, appErr
	}

	project, memberIDs, appErr := s.projectScope(ctx, detail.ProjectID)
	if appErr != nil {
		return nil, appErr
	}

	if !authz.Authorize(actor, authz.ProjectRead, authz.Target{
		ProjectOwnerID:   project.OwnerID,
		ProjectMemberIDs: memberIDs,
	}) {
		return nil, app_errors.Forbidden("forbidden")
	}

	return detail, nil
}

func (s *TaskService) UpdateTask(ctx context.Context, actor authz.Actor, taskID string, req *task_dto.UpdateTaskRequest) (*entity.TaskEntity, *app_errors.AppError) {
	task, appErr := s.repo.FindTaskByID(ctx, taskID)
	if appErr != nil {
		return nil, appErr
	}

	project, memberIDs, appErr := s.projectScope(ctx, task.ProjectID)
	if appErr != nil {
		return nil, appErr
	}

	if !authz.Authorize(actor, authz.TaskUpdate, authz.Target{
		ProjectOwnerID:   project.OwnerID,
		ProjectMemberIDs: memberIDs,
		AssigneeID:       task.AssigneeID,
		ReporterID:       task.ReporterID,
	}) {
		return nil, app_errors.Forbidden("forbidden")
	}

	model := entity.TaskUpdate{
		Title:            req.Title,
		Description:      req.Description,
		StoryPoints:      req.StoryPoints,
		OriginalEstimate: req.OriginalEstimate,
		DueDate:          req.DueDate,
		ClearDueDate:     req.ClearDueDate,
	}
	if req.Type != nil {
		tt := entity.TaskType(*req.Type)
		model.Type = &tt
	}
	if req.Status != nil {
		st := entity.TaskStatus(*req.Status)
		model.Status = &st
	}
	if req.Priority != nil {
		pr := entity.TaskPriority(*req.Priority)
		model.Priority = &pr
	}
	if req.AssigneeID != nil {
		if *req.AssigneeID == "" {
			model.ClearAssignee = true
		} else {
			model.AssigneeID = req.AssigneeID
		}
	}
	if req.ParentID != nil {
		if *req.ParentID == "" {
			model.ClearParent = true
		} else {
			model.ParentID = req.ParentID
		}
	}

	if appErr := s.validateRefs(ctx, project, memberIDs, model.AssigneeID, nil, model.ParentID, taskID, req.LabelIDs); appErr != nil {
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

	updated, appErr := s.repo.UpdateTask(ctx, t, taskID, model)
	if appErr != nil {
		return nil, appErr
	}

	if req.LabelIDs != nil {
		if appErr := s.repo.SetLabels(ctx, t, taskID, req.LabelIDs); appErr != nil {
			return nil, appErr
		}
	}

	if appErr := t.Commit(ctx); appErr != nil {
		return nil, appErr
	}
	committed = true

	statusChanged := model.Status != nil && *model.Status != task.Status
	assigneeChanged := model.AssigneeID != nil && (task.AssigneeID == nil || *model.AssigneeID != *task.AssigneeID)

	if assigneeChanged && *model.AssigneeID != actor.ID {
		s.notify(actor.ID, []string{*model.AssigneeID}, entity.NotifyAssigned,
			updated.TaskKey, fmt.Sprintf("%s wurde Ihnen zugewiesen: %s", updated.TaskKey, updated.Title),
			task.ProjectID, taskID)
	}

	if statusChanged {
		recipients := s.statusChangeRecipients(ctx, updated, actor.ID)
		s.notify(actor.ID, recipients, entity.NotifyStatusChange,
			updated.TaskKey, fmt.Sprintf("%s ist jetzt %s", updated.TaskKey, *model.Status),
			task.ProjectID, taskID)
	}

	if err := s.publisher.ToProject(ctx, task.ProjectID, realtime.EventTaskUpdated, updated); err != nil {
		log.Warn().Err(err).Msg("Fehler beim Veröffentlichen des Task-Events")
	}

	s.logActivity(ctx, actor.ID, "task_updated", taskID, map[string]any{"task_key": updated.TaskKey})

	return updated, nil
}

// statusChangeRecipients sammelt Reporter, Assignee und Beobachter ohne den
// Auslöser; Duplikate filtert der Worker bei der Zustellung.
func (s *TaskService) statusChangeRecipients(ctx context.Context, task *entity.TaskEntity, actorID string) []string {
	recipients := make([]string, 0, 4)
	if task.ReporterID != actorID {
		recipients = append(recipients, task.ReporterID)
	}
	if task.AssigneeID != nil && *task.AssigneeID != actorID {
		recipients = append(recipients, *task.AssigneeID)
	}

	watcherIDs, appErr := s.repo.ListWatcherIDs(ctx, task.ID)
	if appErr != nil {
		log.Warn().Err(appErr.Err).Msg("Fehler beim Laden der Beobachter")
		return recipients
	}
	for _, id := range watcherIDs {
		if id != actorID {
			recipients = append(recipients, id)
		}
	}

	return recipients
}

func (s *TaskService) DeleteTask(ctx context.Context, actor authz.Actor, taskID string) *app_errors.AppError {
	task, appErr := s.repo.FindTaskByID(ctx, taskID)
	if appErr != nil {
		return appErr
	}

	project, memberIDs, appErr := s.projectScope(ctx, task.ProjectID)
	if appErr != nil {
		return appErr
	}

	if !authz.Authorize(actor, authz.TaskDelete, authz.Target{
		ProjectOwnerID:   project.OwnerID,
		ProjectMemberIDs: memberIDs,
		AssigneeID:       task.AssigneeID,
		ReporterID:       task.ReporterID,
	}) {
		return app_errors.Forbidden("forbidden")
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

	if appErr := s.repo.DeleteTask(ctx, t, taskID); appErr != nil {
		return appErr
	}

	if appErr := t.Commit(ctx); appErr != nil {
		return appErr
	}
	committed = true

	if err := s.publisher.ToProject(ctx, task.ProjectID, realtime.EventTaskDeleted, map[string]any{"id": taskID, "task_key": task.TaskKey}); err != nil {
		log.Warn().Err(err).Msg("Fehler beim Veröffentlichen des Task-Events")
	}

	s.logActivity(ctx, actor.ID, "task_deleted", taskID, map[string]any{"task_key": task.TaskKey})

	return nil
}

func (s *TaskService) WatchTask(ctx context.Context, actor authz.Actor, taskID string) *app_errors.AppError {
	task, appErr := s.repo.FindTaskByID(ctx, taskID)
	if appErr != nil {
		return appErr
	}

	project, memberIDs, appErr := s.projectScope(ctx, task.ProjectID)
	if appErr != nil {
		return appErr
	}

	if !authz.Authorize(actor, authz.ProjectRead, authz.Target{
		ProjectOwnerID:   project.OwnerID,
		ProjectMemberIDs: memberIDs,
	}) {
		return app_errors.Forbidden("forbidden")
	}

	return s.repo.AddWatcher(ctx, taskID, actor.ID)
}

func (s *TaskService) UnwatchTask(ctx context.Context, actor authz.Actor, taskID string) *app_errors.AppError {
	if _, appErr := s.repo.FindTaskByID(ctx, taskID); appErr != nil {
		return appErr
	}

	return s.repo.RemoveWatcher(ctx, taskID, actor.ID)
}
