package worker_handler

import (
	"context"
	"time"

	"github.com/DevITJAX/FlowOps/internal/entity"
	"github.com/DevITJAX/FlowOps/internal/realtime"
	worker_task "github.com/DevITJAX/FlowOps/internal/worker/tasks"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"
)

// DeliverNotificationHandler legt pro Empfänger eine Benachrichtigung an und
// pusht sie anschließend in dessen Benutzer-Raum. Der Auslöser selbst erhält
// keine Benachrichtigung.
func (wh *WorkerHandler) DeliverNotificationHandler() asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		var p worker_task.DeliverNotificationPayload
		if err := json.Unmarshal(t.Payload(), &p); err != nil {
			log.Error().Err(err).Msg("Worker: ungültiger Benachrichtigungs-Payload")
			return err
		}

		now := time.Now()
		notifications := make([]entity.NotificationEntity, 0, len(p.RecipientIDs))
		seen := make(map[string]bool)
		for _, recipientID := range p.RecipientIDs {
			if recipientID == p.ActorID || seen[recipientID] {
				continue
			}
			seen[recipientID] = true

			notifications = append(notifications, entity.NotificationEntity{
				ID:               uuid.Must(uuid.NewV7()).String(),
				UserID:           recipientID,
				Type:             entity.NotificationType(p.Type),
				Title:            p.Title,
				Message:          p.Message,
				RelatedTaskID:    p.TaskID,
				RelatedProjectID: p.ProjectID,
				CreatedAt:        now,
			})
		}

		if len(notifications) == 0 {
			return nil
		}

		if appErr := wh.nr.CreateNotifications(ctx, notifications); appErr != nil {
			log.Error().Err(appErr.Err).Msg("Worker: Fehler beim Anlegen der Benachrichtigungen")
			return appErr
		}

		for _, n := range notifications {
			if err := wh.publisher.ToUser(ctx, n.UserID, realtime.EventNotification, n); err != nil {
				log.Warn().Err(err).Str("user_id", n.UserID).Msg("Worker: Push der Benachrichtigung fehlgeschlagen")
			}
		}

		return nil
	}
}
