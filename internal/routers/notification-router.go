package routers

import (
	"github.com/DevITJAX/FlowOps/internal/handlers/notification"
	"github.com/DevITJAX/FlowOps/internal/i18n"
	"github.com/DevITJAX/FlowOps/internal/middleware"
	"github.com/DevITJAX/FlowOps/internal/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

func NotificationRouter(api fiber.Router, db *pgxpool.Pool, redis *redis.Client, i18nSvc *i18n.I18nService, paseto *utils.PasetoMaker) {
	handler := notification.NewNotificationHandler(db, i18nSvc)

	r := api.Group("/notifications", middleware.AuthMiddleware(paseto, redis))

	r.Get("/", handler.ListNotifications)
	// Literale Pfade vor den :id-Routen registrieren.
	r.Put("/read-all", handler.MarkAllRead)
	r.Delete("/clear", handler.ClearNotifications)
	r.Put("/:id/read", handler.MarkRead)
	r.Delete("/:id", handler.DeleteNotification)
}
