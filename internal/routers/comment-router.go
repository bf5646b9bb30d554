package routers

import (
	"github.com/DevITJAX/FlowOps/internal/handlers/comment"
	"github.com/DevITJAX/FlowOps/internal/i18n"
	"github.com/DevITJAX/FlowOps/internal/middleware"
	"github.com/DevITJAX/FlowOps/internal/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

func CommentRouter(api fiber.Router, db *pgxpool.Pool, redis *redis.Client, i18nSvc *i18n.I18nService, paseto *utils.PasetoMaker) {
	handler := comment.NewCommentHandler(db, redis, i18nSvc)

	authed := middleware.AuthMiddleware(paseto, redis)

	api.Post("/tasks/:taskId/comments", authed, handler.CreateComment)
	api.Get("/tasks/:taskId/comments", authed, handler.ListComments)

	r := api.Group("/comments", authed)
	r.Put("/:id", handler.UpdateComment)
	r.Delete("/:id", handler.DeleteComment)
}
