package worker

import (
	"fmt"

	worker_handler "github.com/DevITJAX/FlowOps/internal/worker/handlers"
	worker_task "github.com/DevITJAX/FlowOps/internal/worker/tasks"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"
)

func RegisterWorkerHandlers(mux *asynq.ServeMux, h *worker_handler.WorkerHandler) {
	mux.HandleFunc(worker_task.TaskDeliverNotification, h.DeliverNotificationHandler())
	mux.HandleFunc(worker_task.TaskSendPasswordResetEmail, h.SendPasswordResetEmailHandler())
	mux.HandleFunc(worker_task.TaskDueSoonReminders, h.DueSoonRemindersHandler())
}

func RegisterCronJobs(s *asynq.Scheduler) error {
	jobs := []struct {
		spec  string
		task  *asynq.Task
		queue string
		desc  string
	}{
		{
			spec:  "0 8 * * *",
			task:  asynq.NewTask(worker_task.TaskDueSoonReminders, nil),
			queue: "low",
			desc:  "due soon reminders",
		},
	}

	for _, job := range jobs {
		if _, err := s.Register(job.spec, job.task, asynq.Queue(job.queue)); err != nil {
			return fmt.Errorf("register %s failed: %w", job.desc, err)
		}
		log.Info().Msgf("scheduled: %s", job.desc)
	}

	return nil
}
