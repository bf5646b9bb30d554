package worker_handler

import (
	"github.com/DevITJAX/FlowOps/internal/config"
	"github.com/DevITJAX/FlowOps/internal/mail"
	"github.com/DevITJAX/FlowOps/internal/realtime"
	notification_repo "github.com/DevITJAX/FlowOps/internal/repo/notification-repo"
	task_repo "github.com/DevITJAX/FlowOps/internal/repo/task-repo"
	user_repo "github.com/DevITJAX/FlowOps/internal/repo/user-repo"
	"github.com/jackc/pgx/v5/pgxpool"
)

type WorkerHandler struct {
	nr        notification_repo.NotificationRepoContract
	tr        task_repo.TaskRepoContract
	ur        user_repo.UserRepoContract
	mailer    mail.Mailer
	publisher realtime.Publisher
	appURL    string
}

func NewWorkerHandler(db *pgxpool.Pool, cfg *config.AppConfig, mailer mail.Mailer, publisher realtime.Publisher) *WorkerHandler {
	return &WorkerHandler{
		nr:        notification_repo.NewNotificationRepo(db),
		tr:        task_repo.NewTaskRepo(db),
		ur:        user_repo.NewUserRepo(db),
		mailer:    mailer,
		publisher: publisher,
		appURL:    cfg.APP.URL,
	}
}
