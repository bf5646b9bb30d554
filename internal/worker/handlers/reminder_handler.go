package worker_handler

import (
	"context"
	"fmt"
	"time"

	"github.com/DevITJAX/FlowOps/internal/entity"
	"github.com/DevITJAX/FlowOps/internal/realtime"
	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"
)

// DueSoonRemindersHandler läuft per Cron: für jede offene Aufgabe mit
// Fälligkeit in den nächsten 24 Stunden bekommt der Assignee eine
// Benachrichtigung und eine Erinnerungsmail. Fehler einzelner Empfänger
// brechen den Lauf nicht ab.
func (wh *WorkerHandler) DueSoonRemindersHandler() asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		tasks, appErr := wh.tr.ListDueSoon(ctx, 24*time.Hour)
		if appErr != nil {
			log.Error().Err(appErr.Err).Msg("Worker: Fälligkeits-Scan fehlgeschlagen")
			return appErr
		}
		if len(tasks) == 0 {
			return nil
		}

		log.Info().Int("count", len(tasks)).Msg("Worker: fällige Aufgaben gefunden")

		now := time.Now()
		for _, task := range tasks {
			n := entity.NotificationEntity{
				ID:               uuid.Must(uuid.NewV7()).String(),
				UserID:           task.AssigneeID,
				Type:             entity.NotifyDueSoon,
				Title:            "Task due soon",
				Message:          fmt.Sprintf("%s \"%s\" is due at %s", task.TaskKey, task.Title, task.DueDate.Format("02 Jan 2006 15:04")),
				RelatedTaskID:    &task.TaskID,
				RelatedProjectID: &task.ProjectID,
				CreatedAt:        now,
			}

			if appErr := wh.nr.CreateNotifications(ctx, []entity.NotificationEntity{n}); appErr != nil {
				log.Warn().Err(appErr.Err).Str("task_id", task.TaskID).Msg("Worker: Erinnerung konnte nicht angelegt werden")
				continue
			}

			if err := wh.publisher.ToUser(ctx, task.AssigneeID, realtime.EventNotification, n); err != nil {
				log.Warn().Err(err).Str("user_id", task.AssigneeID).Msg("Worker: Push der Erinnerung fehlgeschlagen")
			}

			if err := wh.mailer.SendDueSoonReminder(&task); err != nil {
				log.Warn().Err(err).Str("task_id", task.TaskID).Msg("Worker: Erinnerungsmail fehlgeschlagen")
			}
		}

		return nil
	}
}
