package routers

import (
	"github.com/DevITJAX/FlowOps/internal/handlers/link"
	"github.com/DevITJAX/FlowOps/internal/i18n"
	"github.com/DevITJAX/FlowOps/internal/middleware"
	"github.com/DevITJAX/FlowOps/internal/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

func LinkRouter(api fiber.Router, db *pgxpool.Pool, redis *redis.Client, i18nSvc *i18n.I18nService, paseto *utils.PasetoMaker) {
	handler := link.NewLinkHandler(db, i18nSvc)

	authed := middleware.AuthMiddleware(paseto, redis)

	api.Post("/tasks/:taskId/links", authed, handler.CreateLink)
	api.Get("/tasks/:taskId/links", authed, handler.ListLinks)

	api.Delete("/links/:id", authed, handler.DeleteLink)
}
