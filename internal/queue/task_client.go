package queue

import (
	worker_task "github.com/DevITJAX/FlowOps/internal/worker/tasks"
	"github.com/goccy/go-json"
	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
)

// TaskQueueContract ist die von den Use-Cases benötigte Enqueue-Fähigkeit.
// Fehler beim Einreihen sind best-effort und brechen die Operation nicht ab.
type TaskQueueContract interface {
	EnqueueDeliverNotification(payload *worker_task.DeliverNotificationPayload) error
	EnqueueSendPasswordResetEmail(payload *worker_task.SendPasswordResetEmailPayload) error
}

type TaskQueue struct {
	client *asynq.Client
}

func NewTaskQueue(redis *redis.Client) *TaskQueue {
	return &TaskQueue{
		client: asynq.NewClientFromRedisClient(redis),
	}
}

func (q *TaskQueue) EnqueueDeliverNotification(payload *worker_task.DeliverNotificationPayload) error {
	p, _ := json.Marshal(payload)
	task := asynq.NewTask(worker_task.TaskDeliverNotification, p, asynq.Queue("default"), asynq.MaxRetry(3))

	_, err := q.client.Enqueue(task)
	return err
}

func (q *TaskQueue) EnqueueSendPasswordResetEmail(payload *worker_task.SendPasswordResetEmailPayload) error {
	p, _ := json.Marshal(payload)
	task := asynq.NewTask(worker_task.TaskSendPasswordResetEmail, p, asynq.Queue("email"), asynq.MaxRetry(5))

	_, err := q.client.Enqueue(task)
	return err
}

// NoopTaskQueue verwirft alle Aufträge. Für Tests.
type NoopTaskQueue struct{}

func (NoopTaskQueue) EnqueueDeliverNotification(*worker_task.DeliverNotificationPayload) error {
	return nil
}

func (NoopTaskQueue) EnqueueSendPasswordResetEmail(*worker_task.SendPasswordResetEmailPayload) error {
	return nil
}
