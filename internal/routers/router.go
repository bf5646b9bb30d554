package routers

import (
	"github.com/DevITJAX/FlowOps/internal/config"
	"github.com/DevITJAX/FlowOps/internal/i18n"
	"github.com/DevITJAX/FlowOps/internal/realtime"
	"github.com/DevITJAX/FlowOps/internal/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

// SetupRoutes richtet die API-Routen ein.
func SetupRoutes(app *fiber.App, db *pgxpool.Pool, redis *redis.Client, i18n *i18n.I18nService, paseto *utils.PasetoMaker, cfg *config.AppConfig, hub *realtime.Hub) {
	api := app.Group("/api/v1")

	AuthRouter(api, db, redis, i18n, paseto, CfgRedisStorage{
		Host:     cfg.DATABASE.Redis.Addr,
		Password: cfg.DATABASE.Redis.Password,
	})
	ProjectRouter(api, db, redis, i18n, paseto)
	TaskRouter(api, db, redis, i18n, paseto)
	SprintRouter(api, db, redis, i18n, paseto)
	TeamRouter(api, db, redis, i18n, paseto)
	LabelRouter(api, db, redis, i18n, paseto)
	CommentRouter(api, db, redis, i18n, paseto)
	TimeLogRouter(api, db, redis, i18n, paseto)
	LinkRouter(api, db, redis, i18n, paseto)
	AttachmentRouter(api, db, redis, i18n, paseto, cfg.STORAGE.UploadDir)
	NotificationRouter(api, db, redis, i18n, paseto)
	ActivityRouter(api, db, redis, i18n, paseto)
	SearchRouter(api, db, redis, i18n, paseto)

	WebsocketRouter(app, redis, paseto, hub)
	HealthRouter(app, db, redis)
}
