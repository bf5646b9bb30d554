package team

import (
	team_dto "github.com/DevITJAX/FlowOps/internal/dtos/team-dto"
	"github.com/DevITJAX/FlowOps/internal/handlers"
	internal_i18n "github.com/DevITJAX/FlowOps/internal/i18n"
	team_case "github.com/DevITJAX/FlowOps/internal/use-cases/team-case"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
)

type TeamHandler struct {
	validator *validator.Validate
	service   team_case.TeamServiceContract
	i18n      internal_i18n.Service
}

func NewTeamHandler(db *pgxpool.Pool, i18n *internal_i18n.I18nService) *TeamHandler {
	validate := validator.New()
	validate.RegisterValidation("teamRole", team_dto.IsValidTeamRole)
	return &TeamHandler{
		validator: validate,
		i18n:      i18n,
		service:   team_case.NewTeamService(db),
	}
}

func (h *TeamHandler) CreateTeam(c *fiber.Ctx) error {
	actor, appErr := handlers.GetActor(c)
	if appErr != nil {
		return appErr
	}

	projectID, appErr := handlers.GetParamProjectID(c, h.validator)
	if appErr != nil {
		return appErr
	}

	req, appErr := handlers.ParseBody[team_dto.CreateTeamRequest](c, h.validator)
	if appErr != nil {
		return appErr
	}

	team, appErr := h.service.CreateTeam(c.Context(), actor, projectID, req)
	if appErr != nil {
		return appErr
	}

	webResp := handlers.CreateResponse(h.i18n.T(handlers.GetLang(c), "response.team_created", nil), team, handlers.GetRequestID(c))
	return c.Status(fiber.StatusCreated).JSON(webResp)
}

func (h *TeamHandler) ListTeams(c *fiber.Ctx) error {
	actor, appErr := handlers.GetActor(c)
	if appErr != nil {
		return appErr
	}

	projectID, appErr := handlers.GetParamProjectID(c, h.validator)
	if appErr != nil {
		return appErr
	}

	teams, appErr := h.service.ListTeams(c.Context(), actor, projectID)
	if appErr != nil {
		return appErr
	}

	webResp := handlers.CreateResponse(h.i18n.T(handlers.GetLang(c), "response.success", nil), teams, handlers.GetRequestID(c))
	return c.Status(fiber.StatusOK).JSON(webResp)
}

func (h *TeamHandler) GetTeam(c *fiber.Ctx) error {
	actor, appErr := handlers.GetActor(c)
	if appErr != nil {
		return appErr
	}

	teamID, appErr := handlers.GetParamID(c, h.validator)
	if appErr != nil {
		return appErr
	}

	team, appErr := h.service.GetTeam(c.Context(), actor, teamID)
	if appErr != nil {
		return appErr
	}

	webResp := handlers.CreateResponse(h.i18n.T(handlers.GetLang(c), "response.success", nil), team, handlers.GetRequestID(c))
	return c.Status(fiber.StatusOK).JSON(webResp)
}

func (h *TeamHandler) UpdateTeam(c *fiber.Ctx) error {
	actor, appErr := handlers.GetActor(c)
	if appErr != nil {
		return appErr
	}

	teamID, appErr := handlers.GetParamID(c, h.validator)
	if appErr != nil {
		return appErr
	}

	req, appErr := handlers.ParseBody[team_dto.UpdateTeamRequest](c, h.validator)
	if appErr != nil {
		return appErr
	}

	team, appErr := h.service.UpdateTeam(c.Context(), actor, teamID, req)
	if appErr != nil {
		return appErr
	}

	webResp := handlers.CreateResponse(h.i18n.T(handlers.GetLang(c), "response.team_updated", nil), team, handlers.GetRequestID(c))
	return c.Status(fiber.StatusOK).JSON(webResp)
}

func (h *TeamHandler) DeleteTeam(c *fiber.Ctx) error {
	actor, appErr := handlers.GetActor(c)
	if appErr != nil {
		return appErr
	}

	teamID, appErr := handlers.GetParamID(c, h.validator)
	if appErr != nil {
		return appErr
	}

	if appErr := h.service.DeleteTeam(c.Context(), actor, teamID); appErr != nil {
		return appErr
	}

	webResp := handlers.CreateResponse(h.i18n.T(handlers.GetLang(c), "response.team_deleted", nil), "OK", handlers.GetRequestID(c))
	return c.Status(fiber.StatusOK).JSON(webResp)
}

func (h *TeamHandler) AddMember(c *fiber.Ctx) error {
	actor, appErr := handlers.GetActor(c)
	if appErr != nil {
		return appErr
	}

	teamID, appErr := handlers.GetParamID(c, h.validator)
	if appErr != nil {
		return appErr
	}

	req, appErr := handlers.ParseBody[team_dto.AddTeamMemberRequest](c, h.validator)
	if appErr != nil {
		return appErr
	}

	if appErr := h.service.AddMember(c.Context(), actor, teamID, req); appErr != nil {
		return appErr
	}

	webResp := handlers.CreateResponse(h.i18n.T(handlers.GetLang(c), "response.member_added", nil), "OK", handlers.GetRequestID(c))
	return c.Status(fiber.StatusCreated).JSON(webResp)
}

func (h *TeamHandler) UpdateMemberRole(c *fiber.Ctx) error {
	actor, appErr := handlers.GetActor(c)
	if appErr != nil {
		return appErr
	}

	teamID, appErr := handlers.GetParamID(c, h.validator)
	if appErr != nil {
		return appErr
	}

	userID, appErr := handlers.GetParamUserID(c, h.validator)
	if appErr != nil {
		return appErr
	}

	req, appErr := handlers.ParseBody[team_dto.UpdateTeamMemberRoleRequest](c, h.validator)
	if appErr != nil {
		return appErr
	}

	if appErr := h.service.UpdateMemberRole(c.Context(), actor, teamID, userID, req); appErr != nil {
		return appErr
	}

	webResp := handlers.CreateResponse(h.i18n.T(handlers.GetLang(c), "response.success", nil), "OK", handlers.GetRequestID(c))
	return c.Status(fiber.StatusOK).JSON(webResp)
}

func (h *TeamHandler) RemoveMember(c *fiber.Ctx) error {
	actor, appErr := handlers.GetActor(c)
	if appErr != nil {
		return appErr
	}

	teamID, appErr := handlers.GetParamID(c, h.validator)
	if appErr != nil {
		return appErr
	}

	userID, appErr := handlers.GetParamUserID(c, h.validator)
	if appErr != nil {
		return appErr
	}

	if appErr := h.service.RemoveMember(c.Context(), actor, teamID, userID); appErr != nil {
		return appErr
	}

	webResp := handlers.CreateResponse(h.i18n.T(handlers.GetLang(c), "response.member_removed", nil), "OK", handlers.GetRequestID(c))
	return c.Status(fiber.StatusOK).JSON(webResp)
}

func (h *TeamHandler) ListAvailableUsers(c *fiber.Ctx) error {
	actor, appErr := handlers.GetActor(c)
	if appErr != nil {
		return appErr
	}

	teamID, appErr := handlers.GetParamID(c, h.validator)
	if appErr != nil {
		return appErr
	}

	users, appErr := h.service.ListAvailableUsers(c.Context(), actor, teamID)
	if appErr != nil {
		return appErr
	}

	webResp := handlers.CreateResponse(h.i18n.T(handlers.GetLang(c), "response.success", nil), users, handlers.GetRequestID(c))
	return c.Status(fiber.StatusOK).JSON(webResp)
}
