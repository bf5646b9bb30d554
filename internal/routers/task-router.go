package routers

import (
	"github.com/DevITJAX/FlowOps/internal/handlers/task"
	"github.com/DevITJAX/FlowOps/internal/i18n"
	"github.com/DevITJAX/FlowOps/internal/middleware"
	"github.com/DevITJAX/FlowOps/internal/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

func TaskRouter(api fiber.Router, db *pgxpool.Pool, redis *redis.Client, i18nSvc *i18n.I18nService, paseto *utils.PasetoMaker) {
	handler := task.NewTaskHandler(db, redis, i18nSvc)

	authed := middleware.AuthMiddleware(paseto, redis)

	api.Post("/projects/:projectId/tasks", authed, handler.CreateTask)
	api.Get("/projects/:projectId/tasks", authed, handler.ListTasks)

	r := api.Group("/tasks", authed)
	r.Get("/:id", handler.GetTask)
	r.Put("/:id", handler.UpdateTask)
	r.Delete("/:id", handler.DeleteTask)
	r.Post("/:id/watch", handler.WatchTask)
	r.Delete("/:id/watch", handler.UnwatchTask)
}
