package routers

import (
	"github.com/DevITJAX/FlowOps/internal/handlers/label"
	"github.com/DevITJAX/FlowOps/internal/i18n"
	"github.com/DevITJAX/FlowOps/internal/middleware"
	"github.com/DevITJAX/FlowOps/internal/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

func LabelRouter(api fiber.Router, db *pgxpool.Pool, redis *redis.Client, i18nSvc *i18n.I18nService, paseto *utils.PasetoMaker) {
	handler := label.NewLabelHandler(db, i18nSvc)

	authed := middleware.AuthMiddleware(paseto, redis)

	api.Post("/projects/:projectId/labels", authed, handler.CreateLabel)
	api.Get("/projects/:projectId/labels", authed, handler.ListLabels)

	r := api.Group("/labels", authed)
	r.Put("/:id", handler.UpdateLabel)
	r.Delete("/:id", handler.DeleteLabel)
}
