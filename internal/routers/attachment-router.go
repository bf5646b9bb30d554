package routers

import (
	"github.com/DevITJAX/FlowOps/internal/handlers/attachment"
	"github.com/DevITJAX/FlowOps/internal/i18n"
	"github.com/DevITJAX/FlowOps/internal/middleware"
	"github.com/DevITJAX/FlowOps/internal/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

func AttachmentRouter(api fiber.Router, db *pgxpool.Pool, redis *redis.Client, i18nSvc *i18n.I18nService, paseto *utils.PasetoMaker, uploadDir string) {
	handler := attachment.NewAttachmentHandler(db, uploadDir, i18nSvc)

	authed := middleware.AuthMiddleware(paseto, redis)

	api.Post("/tasks/:taskId/attachments", authed, handler.UploadAttachment)
	api.Get("/tasks/:taskId/attachments", authed, handler.ListAttachments)

	r := api.Group("/attachments", authed)
	r.Get("/:id/download", handler.DownloadAttachment)
	r.Delete("/:id", handler.DeleteAttachment)
}
