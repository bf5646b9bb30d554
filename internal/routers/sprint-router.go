package routers

import (
	"github.com/DevITJAX/FlowOps/internal/handlers/sprint"
	"github.com/DevITJAX/FlowOps/internal/i18n"
	"github.com/DevITJAX/FlowOps/internal/middleware"
	"github.com/DevITJAX/FlowOps/internal/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

func SprintRouter(api fiber.Router, db *pgxpool.Pool, redis *redis.Client, i18nSvc *i18n.I18nService, paseto *utils.PasetoMaker) {
	handler := sprint.NewSprintHandler(db, redis, i18nSvc)

	authed := middleware.AuthMiddleware(paseto, redis)

	api.Post("/projects/:projectId/sprints", authed, handler.CreateSprint)
	api.Get("/projects/:projectId/sprints", authed, handler.ListSprints)
	api.Get("/projects/:projectId/backlog", authed, handler.GetBacklog)
	api.Get("/projects/:projectId/velocity", authed, handler.GetVelocity)

	r := api.Group("/sprints", authed)
	r.Get("/:id", handler.GetSprint)
	r.Put("/:id", handler.UpdateSprint)
	r.Delete("/:id", handler.DeleteSprint)
	r.Put("/:id/start", handler.StartSprint)
	r.Put("/:id/complete", handler.CompleteSprint)
	r.Post("/:id/tasks", handler.AddTasks)
	r.Delete("/:id/tasks", handler.RemoveTasks)
}
