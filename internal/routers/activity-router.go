package routers

import (
	"github.com/DevITJAX/FlowOps/internal/handlers/activity"
	"github.com/DevITJAX/FlowOps/internal/i18n"
	"github.com/DevITJAX/FlowOps/internal/middleware"
	"github.com/DevITJAX/FlowOps/internal/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

func ActivityRouter(api fiber.Router, db *pgxpool.Pool, redis *redis.Client, i18nSvc *i18n.I18nService, paseto *utils.PasetoMaker) {
	handler := activity.NewActivityHandler(db, i18nSvc)

	r := api.Group("/activity", middleware.AuthMiddleware(paseto, redis))

	r.Get("/", handler.ListRecent)
	r.Get("/user/:userId", handler.ListByUser)
	r.Get("/target/:targetType/:targetId", handler.ListByTarget)
}
