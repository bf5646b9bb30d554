package routers

import (
	"github.com/DevITJAX/FlowOps/internal/handlers/team"
	"github.com/DevITJAX/FlowOps/internal/i18n"
	"github.com/DevITJAX/FlowOps/internal/middleware"
	"github.com/DevITJAX/FlowOps/internal/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

func TeamRouter(api fiber.Router, db *pgxpool.Pool, redis *redis.Client, i18nSvc *i18n.I18nService, paseto *utils.PasetoMaker) {
	handler := team.NewTeamHandler(db, i18nSvc)

	authed := middleware.AuthMiddleware(paseto, redis)

	api.Post("/projects/:projectId/teams", authed, handler.CreateTeam)
	api.Get("/projects/:projectId/teams", authed, handler.ListTeams)

	r := api.Group("/teams", authed)
	r.Get("/:id", handler.GetTeam)
	r.Put("/:id", handler.UpdateTeam)
	r.Delete("/:id", handler.DeleteTeam)
	r.Post("/:id/members", handler.AddMember)
	r.Put("/:id/members/:userId", handler.UpdateMemberRole)
	r.Delete("/:id/members/:userId", handler.RemoveMember)
	r.Get("/:id/available-users", handler.ListAvailableUsers)
}
