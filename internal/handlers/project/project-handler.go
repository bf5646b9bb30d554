package project

import (
	project_dto "github.com/DevITJAX/FlowOps/internal/dtos/project-dto"
	"github.com/DevITJAX/FlowOps/internal/handlers"
	internal_i18n "github.com/DevITJAX/FlowOps/internal/i18n"
	project_case "github.com/DevITJAX/FlowOps/internal/use-cases/project-case"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ProjectHandler struct {
	validator *validator.Validate
	service   project_case.ProjectServiceContract
	i18n      internal_i18n.Service
}

func NewProjectHandler(db *pgxpool.Pool, i18n *internal_i18n.I18nService) *ProjectHandler {
	validate := validator.New()
	validate.RegisterValidation("projectStatus", project_dto.IsValidProjectStatus)
	return &ProjectHandler{
		validator: validate,
		i18n:      i18n,
		service:   project_case.NewProjectService(db),
	}
}

func (h *ProjectHandler) CreateProject(c *fiber.Ctx) error {
	actor, appErr := handlers.GetActor(c)
	if appErr != nil {
		return appErr
	}

	req, appErr := handlers.ParseBody[project_dto.CreateProjectRequest](c, h.validator)
	if appErr != nil {
		return appErr
	}

	project, appErr := h.service.CreateProject(c.Context(), actor, req)
	if appErr != nil {
		return appErr
	}

	webResp := handlers.CreateResponse(h.i18n.T(handlers.GetLang(c), "response.project_created", nil), project, handlers.GetRequestID(c))
	return c.Status(fiber.StatusCreated).JSON(webResp)
}

func (h *ProjectHandler) ListProjects(c *fiber.Ctx) error {
	actor, appErr := handlers.GetActor(c)
	if appErr != nil {
		return appErr
	}

	projects, appErr := h.service.ListProjects(c.Context(), actor)
	if appErr != nil {
		return appErr
	}

	webResp := handlers.CreateResponse(h.i18n.T(handlers.GetLang(c), "response.success", nil), projects, handlers.GetRequestID(c))
	return c.Status(fiber.StatusOK).JSON(webResp)
}

func (h *ProjectHandler) GetProject(c *fiber.Ctx) error {
	actor, appErr := handlers.GetActor(c)
	if appErr != nil {
		return appErr
	}

	projectID, appErr := handlers.GetParamID(c, h.validator)
	if appErr != nil {
		return appErr
	}

	project, appErr := h.service.GetProject(c.Context(), actor, projectID)
	if appErr != nil {
		return appErr
	}

	webResp := handlers.CreateResponse(h.i18n.T(handlers.GetLang(c), "response.success", nil), project, handlers.GetRequestID(c))
	return c.Status(fiber.StatusOK).JSON(webResp)
}

func (h *ProjectHandler) UpdateProject(c *fiber.Ctx) error {
	actor, appErr := handlers.GetActor(c)
	if appErr != nil {
		return appErr
	}

	projectID, appErr := handlers.GetParamID(c, h.validator)
	if appErr != nil {
		return appErr
	}

	req, appErr := handlers.ParseBody[project_dto.UpdateProjectRequest](c, h.validator)
	if appErr != nil {
		return appErr
	}

	project, appErr := h.service.UpdateProject(c.Context(), actor, projectID, req)
	if appErr != nil {
		return appErr
	}

	webResp := handlers.CreateResponse(h.i18n.T(handlers.GetLang(c), "response.project_updated", nil), project, handlers.GetRequestID(c))
	return c.Status(fiber.StatusOK).JSON(webResp)
}

func (h *ProjectHandler) DeleteProject(c *fiber.Ctx) error {
	actor, appErr := handlers.GetActor(c)
	if appErr != nil {
		return appErr
	}

	projectID, appErr := handlers.GetParamID(c, h.validator)
	if appErr != nil {
		return appErr
	}

	if appErr := h.service.DeleteProject(c.Context(), actor, projectID); appErr != nil {
		return appErr
	}

	webResp := handlers.CreateResponse(h.i18n.T(handlers.GetLang(c), "response.project_deleted", nil), "OK", handlers.GetRequestID(c))
	return c.Status(fiber.StatusOK).JSON(webResp)
}

func (h *ProjectHandler) ListMembers(c *fiber.Ctx) error {
	actor, appErr := handlers.GetActor(c)
	if appErr != nil {
		return appErr
	}

	projectID, appErr := handlers.GetParamID(c, h.validator)
	if appErr != nil {
		return appErr
	}

	members, appErr := h.service.ListMembers(c.Context(), actor, projectID)
	if appErr != nil {
		return appErr
	}

	webResp := handlers.CreateResponse(h.i18n.T(handlers.GetLang(c), "response.success", nil), members, handlers.GetRequestID(c))
	return c.Status(fiber.StatusOK).JSON(webResp)
}

func (h *ProjectHandler) AddMember(c *fiber.Ctx) error {
	actor, appErr := handlers.GetActor(c)
	if appErr != nil {
		return appErr
	}

	projectID, appErr := handlers.GetParamID(c, h.validator)
	if appErr != nil {
		return appErr
	}

	req, appErr := handlers.ParseBody[project_dto.AddMemberRequest](c, h.validator)
	if appErr != nil {
		return appErr
	}

	if appErr := h.service.AddMember(c.Context(), actor, projectID, req); appErr != nil {
		return appErr
	}

	webResp := handlers.CreateResponse(h.i18n.T(handlers.GetLang(c), "response.member_added", nil), "OK", handlers.GetRequestID(c))
	return c.Status(fiber.StatusCreated).JSON(webResp)
}

func (h *ProjectHandler) RemoveMember(c *fiber.Ctx) error {
	actor, appErr := handlers.GetActor(c)
	if appErr != nil {
		return appErr
	}

	projectID, appErr := handlers.GetParamID(c, h.validator)
	if appErr != nil {
		return appErr
	}

	userID, appErr := handlers.GetParamUserID(c, h.validator)
	if appErr != nil {
		return appErr
	}

	if appErr := h.service.RemoveMember(c.Context(), actor, projectID, userID); appErr != nil {
		return appErr
	}

	webResp := handlers.CreateResponse(h.i18n.T(handlers.GetLang(c), "response.member_removed", nil), "OK", handlers.GetRequestID(c))
	return c.Status(fiber.StatusOK).JSON(webResp)
}

func (h *ProjectHandler) ListAvailableUsers(c *fiber.Ctx) error {
	actor, appErr := handlers.GetActor(c)
	if appErr != nil {
		return appErr
	}

	projectID, appErr := handlers.GetParamID(c, h.validator)
	if appErr != nil {
		return appErr
	}

	users, appErr := h.service.ListAvailableUsers(c.Context(), actor, projectID)
	if appErr != nil {
		return appErr
	}

	webResp := handlers.CreateResponse(h.i18n.T(handlers.GetLang(c), "response.success", nil), users, handlers.GetRequestID(c))
	return c.Status(fiber.StatusOK).JSON(webResp)
}
