package worker_handler

import (
	"context"
	"fmt"

	worker_task "github.com/DevITJAX/FlowOps/internal/worker/tasks"
	"github.com/goccy/go-json"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"
)

func (wh *WorkerHandler) SendPasswordResetEmailHandler() asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		var p worker_task.SendPasswordResetEmailPayload
		if err := json.Unmarshal(t.Payload(), &p); err != nil {
			log.Error().Err(err).Msg("Worker: ungültiger Reset-Mail-Payload")
			return err
		}

		link := fmt.Sprintf("%s/reset-password/%s", wh.appURL, p.RawToken)
		return wh.mailer.SendPasswordResetEmail(p.Email, p.Name, link)
	}
}
