package routers

import (
	"github.com/DevITJAX/FlowOps/internal/handlers/search"
	"github.com/DevITJAX/FlowOps/internal/i18n"
	"github.com/DevITJAX/FlowOps/internal/middleware"
	"github.com/DevITJAX/FlowOps/internal/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

func SearchRouter(api fiber.Router, db *pgxpool.Pool, redis *redis.Client, i18nSvc *i18n.I18nService, paseto *utils.PasetoMaker) {
	handler := search.NewSearchHandler(db, i18nSvc)

	api.Get("/search", middleware.AuthMiddleware(paseto, redis), handler.Search)
}
