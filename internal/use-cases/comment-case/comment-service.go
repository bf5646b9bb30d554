package comment_case

import (
	"context"
	"fmt"
	"regexp"
	"slices"
	"time"

	"github.com/DevITJAX/FlowOps/internal/authz"
	comment_dto "github.com/DevITJAX/FlowOps/internal/dtos/comment-dto"
	"github.com/DevITJAX/FlowOps/internal/entity"
	app_errors "github.com/DevITJAX/FlowOps/internal/errors"
	"github.com/DevITJAX/FlowOps/internal/queue"
	"github.com/DevITJAX/FlowOps/internal/realtime"
	comment_repo "github.com/DevITJAX/FlowOps/internal/repo/comment-repo"
	project_repo "github.com/DevITJAX/FlowOps/internal/repo/project-repo"
	task_repo "github.com/DevITJAX/FlowOps/internal/repo/task-repo"
	worker_task "github.com/DevITJAX/FlowOps/internal/worker/tasks"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// mentionPattern erkennt @[Anzeigename](benutzer-id) im Kommentartext.
var mentionPattern = regexp.MustCompile(`@\[([^\]]+)\]\(([^)]+)\)`)

type CommentService struct {
	repo      comment_repo.CommentRepoContract
	tasks     task_repo.TaskRepoContract
	projects  project_repo.ProjectRepoContract
	taskQueue queue.TaskQueueContract
	publisher realtime.Publisher
}

func NewCommentService(db *pgxpool.Pool, redis *redis.Client) CommentServiceContract {
	return &CommentService{
		repo:      comment_repo.NewCommentRepo(db),
		tasks:     task_repo.NewTaskRepo(db),
		projects:  project_repo.NewProjectRepo(db),
		taskQueue: queue.NewTaskQueue(redis),
		publisher: realtime.NewRedisPublisher(redis),
	}
}

// taskScope lädt Aufgabe, Projekt und Mitgliederliste.
func (s *CommentService) taskScope(ctx context.Context, taskID string) (*entity.TaskEntity, *entity.ProjectEntity, []string, *app_errors.AppError) {
	task, appErr := s.tasks.FindTaskByID(ctx, taskID)
	if appErr != nil {
		return nil, nil, nil, appErr
	}

	project, appErr := s.projects.FindProjectByID(ctx, task.ProjectID)
	if appErr != nil {
		return nil, nil, nil, appErr
	}

	memberIDs, appErr := s.projects.ListMemberIDs(ctx, task.ProjectID)
	if appErr != nil {
		return nil, nil, nil, appErr
	}

	return task, project, memberIDs, nil
}

// parseMentions extrahiert die erwähnten Benutzer-IDs und behält nur
// Projektbeteiligte; Duplikate werden verworfen.
func parseMentions(content string, project *entity.ProjectEntity, memberIDs []string) []string {
	matches := mentionPattern.FindAllStringSubmatch(content, -1)
	mentions := make([]string, 0, len(matches))
	for _, m := range matches {
		userID := m[2]
		if slices.Contains(mentions, userID) {
			continue
		}
		if userID == project.OwnerID || slices.Contains(memberIDs, userID) {
			mentions = append(mentions, userID)
		}
	}
	return mentions
}

func (s *CommentService) notify(actorID string, recipients []string, nType entity.NotificationType, title, message, projectID, taskID string) {
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

func (s *CommentService) CreateComment(ctx context.Context, actor authz.Actor, taskID string, req *comment_dto.CreateCommentRequest) (*entity.CommentEntity, *app_errors.AppError) {
	task, project, memberIDs, appErr := s.taskScope(ctx, taskID)
	if appErr != nil {
		return nil, appErr
	}

	if !authz.Authorize(actor, authz.TaskCreate, authz.Target{
		ProjectOwnerID:   project.OwnerID,
		ProjectMemberIDs: memberIDs,
	}) {
		return nil, app_errors.Forbidden("forbidden")
	}

	commentID, idErr := uuid.NewV7()
	if idErr != nil {
		return nil, app_errors.Internal(idErr)
	}

	mentions := parseMentions(req.Content, project, memberIDs)

	comment, appErr := s.repo.CreateComment(ctx, &entity.CommentEntity{
		ID:        commentID.String(),
		TaskID:    taskID,
		AuthorID:  actor.ID,
		Content:   req.Content,
		Mentions:  mentions,
		CreatedAt: time.Now(),
	})
	if appErr != nil {
		return nil, appErr
	}

	s.notify(actor.ID, mentions, entity.NotifyMentioned,
		task.TaskKey, fmt.Sprintf("Sie wurden in einem Kommentar zu %s erwähnt", task.TaskKey),
		task.ProjectID, taskID)

	// Reporter und Assignee erfahren von neuen Kommentaren, Erwähnte nicht
	// doppelt.
	recipients := make([]string, 0, 2)
	if task.ReporterID != actor.ID && !slices.Contains(mentions, task.ReporterID) {
		recipients = append(recipients, task.ReporterID)
	}
	if task.AssigneeID != nil && *task.AssigneeID != actor.ID && !slices.Contains(mentions, *task.AssigneeID) {
		recipients = append(recipients, *task.AssigneeID)
	}
	s.notify(actor.ID, recipients, entity.NotifyComment,
		task.TaskKey, fmt.Sprintf("Neuer Kommentar zu %s", task.TaskKey),
		task.ProjectID, taskID)

	if err := s.publisher.ToProject(ctx, task.ProjectID, realtime.EventCommentAdded, comment); err != nil {
		log.Warn().Err(err).Msg("Fehler beim Veröffentlichen des Kommentar-Events")
	}

	return comment, nil
}

func (s *CommentService) ListComments(ctx context.Context, actor authz.Actor, taskID string) ([]entity.CommentDetail, *app_errors.AppError) {
	_, project, memberIDs, appErr := s.taskScope(ctx, taskID)
	if appErr != nil {
		return nil, appErr
	}

	if !authz.Authorize(actor, authz.ProjectRead, authz.Target{
		ProjectOwnerID:   project.OwnerID,
		ProjectMemberIDs: memberIDs,
	}) {
		return nil, app_errors.Forbidden("forbidden")
	}

	return s.repo.ListCommentsByTask(ctx, taskID)
}

func (s *CommentService) UpdateComment(ctx context.Context, actor authz.Actor, commentID string, req *comment_dto.UpdateCommentRequest) (*entity.CommentEntity, *app_errors.AppError) {
	comment, appErr := s.repo.FindCommentByID(ctx, commentID)
	if appErr != nil {
		return nil, appErr
	}

	if !authz.Authorize(actor, authz.CommentModify, authz.Target{
		RecordOwnerID: comment.AuthorID,
	}) {
		return nil, app_errors.Forbidden("forbidden")
	}

	task, project, memberIDs, appErr := s.taskScope(ctx, comment.TaskID)
	if appErr != nil {
		return nil, appErr
	}

	mentions := parseMentions(req.Content, project, memberIDs)

	updated, appErr := s.repo.UpdateComment(ctx, commentID, req.Content, mentions)
	if appErr != nil {
		return nil, appErr
	}

	// Nur neu hinzugekommene Erwähnungen lösen eine Benachrichtigung aus.
	added := make([]string, 0, len(mentions))
	for _, id := range mentions {
		if !slices.Contains(comment.Mentions, id) {
			added = append(added, id)
		}
	}
	s.notify(actor.ID, added, entity.NotifyMentioned,
		task.TaskKey, fmt.Sprintf("Sie wurden in einem Kommentar zu %s erwähnt", task.TaskKey),
		task.ProjectID, comment.TaskID)

	if err := s.publisher.ToProject(ctx, task.ProjectID, realtime.EventCommentUpdated, updated); err != nil {
		log.Warn().Err(err).Msg("Fehler beim Veröffentlichen des Kommentar-Events")
	}

	return updated, nil
}

func (s *CommentService) DeleteComment(ctx context.Context, actor authz.Actor, commentID string) *app_errors.AppError {
	comment, appErr := s.repo.FindCommentByID(ctx, commentID)
	if appErr != nil {
		return appErr
	}

	if !authz.Authorize(actor, authz.CommentModify, authz.Target{
		RecordOwnerID: comment.AuthorID,
	}) {
		return app_errors.Forbidden("forbidden")
	}

	task, appErr := s.tasks.FindTaskByID(ctx, comment.TaskID)
	if appErr != nil {
		return appErr
	}

	if appErr := s.repo.DeleteComment(ctx, commentID); appErr != nil {
		return appErr
	}

	if err := s.publisher.ToProject(ctx, task.ProjectID, realtime.EventCommentDeleted, map[string]any{"id": commentID, "task_id": comment.TaskID}); err != nil {
		log.Warn().Err(err).Msg("Fehler beim Veröffentlichen des Kommentar-Events")
	}

	return nil
}
