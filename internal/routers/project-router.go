package routers

import (
	"github.com/DevITJAX/FlowOps/internal/handlers/project"
	"github.com/DevITJAX/FlowOps/internal/i18n"
	"github.com/DevITJAX/FlowOps/internal/middleware"
	"github.com/DevITJAX/FlowOps/internal/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

func ProjectRouter(api fiber.Router, db *pgxpool.Pool, redis *redis.Client, i18nSvc *i18n.I18nService, paseto *utils.PasetoMaker) {
	handler := project.NewProjectHandler(db, i18nSvc)

	r := api.Group("/projects", middleware.AuthMiddleware(paseto, redis))

	r.Post("/", handler.CreateProject)
	r.Get("/", handler.ListProjects)
	r.Get("/:id", handler.GetProject)
	r.Put("/:id", handler.UpdateProject)
	r.Delete("/:id", handler.DeleteProject)

	r.Get("/:id/members", handler.ListMembers)
	r.Post("/:id/members", handler.AddMember)
	r.Delete("/:id/members/:userId", handler.RemoveMember)
	r.Get("/:id/available-users", handler.ListAvailableUsers)
}
