package routers

import (
	"github.com/DevITJAX/FlowOps/internal/handlers/timelog"
	"github.com/DevITJAX/FlowOps/internal/i18n"
	"github.com/DevITJAX/FlowOps/internal/middleware"
	"github.com/DevITJAX/FlowOps/internal/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

func TimeLogRouter(api fiber.Router, db *pgxpool.Pool, redis *redis.Client, i18nSvc *i18n.I18nService, paseto *utils.PasetoMaker) {
	handler := timelog.NewTimeLogHandler(db, i18nSvc)

	authed := middleware.AuthMiddleware(paseto, redis)

	api.Post("/tasks/:taskId/timelogs", authed, handler.CreateTimeLog)
	api.Get("/tasks/:taskId/timelogs", authed, handler.ListTimeLogs)

	r := api.Group("/timelogs", authed)
	r.Put("/:id", handler.UpdateTimeLog)
	r.Delete("/:id", handler.DeleteTimeLog)
}
