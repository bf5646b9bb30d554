package sprint

import (
	sprint_dto "github.com/DevITJAX/FlowOps/internal/dtos/sprint-dto"
	"github.com/DevITJAX/FlowOps/internal/handlers"
	internal_i18n "github.com/DevITJAX/FlowOps/internal/i18n"
	sprint_case "github.com/DevITJAX/FlowOps/internal/use-cases/sprint-case"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

type SprintHandler struct {
	validator *validator.Validate
	service   sprint_case.SprintServiceContract
	i18n      internal_i18n.Service
}

func NewSprintHandler(db *pgxpool.Pool, redis *redis.Client, i18n *internal_i18n.I18nService) *SprintHandler {
	return &SprintHandler{
		validator: validator.New(),
		i18n:      i18n,
		service:   sprint_case.NewSprintService(db, redis),
	}
}

func (h *SprintHandler) CreateSprint(c *fiber.Ctx) error {
	actor, appErr := handlers.GetActor(c)
	if appErr != nil {
		return appErr
	}

	projectID, appErr := handlers.GetParamProjectID(c, h.validator)
	if appErr != nil {
		return appErr
	}

	req, appErr := handlers.ParseBody[sprint_dto.CreateSprintRequest](c, h.validator)
	if appErr != nil {
		return appErr
	}

	sprint, appErr := h.service.CreateSprint(c.Context(), actor, projectID, req)
	if appErr != nil {
		return appErr
	}

	webResp := handlers.CreateResponse(h.i18n.T(handlers.GetLang(c), "response.sprint_created", nil), sprint_dto.ToSprintResponse(sprint), handlers.GetRequestID(c))
	return c.Status(fiber.StatusCreated).JSON(webResp)
}

func (h *SprintHandler) ListSprints(c *fiber.Ctx) error {
	actor, appErr := handlers.GetActor(c)
	if appErr != nil {
		return appErr
	}

	projectID, appErr := handlers.GetParamProjectID(c, h.validator)
	if appErr != nil {
		return appErr
	}

	sprints, appErr := h.service.ListSprints(c.Context(), actor, projectID)
	if appErr != nil {
		return appErr
	}

	responses := make([]sprint_dto.SprintResponse, 0, len(sprints))
	for i := range sprints {
		responses = append(responses, sprint_dto.ToSprintResponse(&sprints[i]))
	}

	webResp := handlers.CreateResponse(h.i18n.T(handlers.GetLang(c), "response.success", nil), responses, handlers.GetRequestID(c))
	return c.Status(fiber.StatusOK).JSON(webResp)
}

func (h *SprintHandler) GetSprint(c *fiber.Ctx) error {
	actor, appErr := handlers.GetActor(c)
	if appErr != nil {
		return appErr
	}

	sprintID, appErr := handlers.GetParamID(c, h.validator)
	if appErr != nil {
		return appErr
	}

	detail, appErr := h.service.GetSprint(c.Context(), actor, sprintID)
	if appErr != nil {
		return appErr
	}

	webResp := handlers.CreateResponse(h.i18n.T(handlers.GetLang(c), "response.success", nil), detail, handlers.GetRequestID(c))
	return c.Status(fiber.StatusOK).JSON(webResp)
}

func (h *SprintHandler) UpdateSprint(c *fiber.Ctx) error {
	actor, appErr := handlers.GetActor(c)
	if appErr != nil {
		return appErr
	}

	sprintID, appErr := handlers.GetParamID(c, h.validator)
	if appErr != nil {
		return appErr
	}

	req, appErr := handlers.ParseBody[sprint_dto.UpdateSprintRequest](c, h.validator)
	if appErr != nil {
		return appErr
	}

	sprint, appErr := h.service.UpdateSprint(c.Context(), actor, sprintID, req)
	if appErr != nil {
		return appErr
	}

	webResp := handlers.CreateResponse(h.i18n.T(handlers.GetLang(c), "response.sprint_updated", nil), sprint_dto.ToSprintResponse(sprint), handlers.GetRequestID(c))
	return c.Status(fiber.StatusOK).JSON(webResp)
}

func (h *SprintHandler) DeleteSprint(c *fiber.Ctx) error {
	actor, appErr := handlers.GetActor(c)
	if appErr != nil {
		return appErr
	}

	sprintID, appErr := handlers.GetParamID(c, h.validator)
	if appErr != nil {
		return appErr
	}

	if appErr := h.service.DeleteSprint(c.Context(), actor, sprintID); appErr != nil {
		return appErr
	}

	webResp := handlers.CreateResponse(h.i18n.T(handlers.GetLang(c), "response.sprint_deleted", nil), "OK", handlers.GetRequestID(c))
	return c.Status(fiber.StatusOK).JSON(webResp)
}

func (h *SprintHandler) StartSprint(c *fiber.Ctx) error {
	actor, appErr := handlers.GetActor(c)
	if appErr != nil {
		return appErr
	}

	sprintID, appErr := handlers.GetParamID(c, h.validator)
	if appErr != nil {
		return appErr
	}

	sprint, appErr := h.service.StartSprint(c.Context(), actor, sprintID)
	if appErr != nil {
		return appErr
	}

	webResp := handlers.CreateResponse(h.i18n.T(handlers.GetLang(c), "response.sprint_started", nil), sprint_dto.ToSprintResponse(sprint), handlers.GetRequestID(c))
	return c.Status(fiber.StatusOK).JSON(webResp)
}

func (h *SprintHandler) CompleteSprint(c *fiber.Ctx) error {
	actor, appErr := handlers.GetActor(c)
	if appErr != nil {
		return appErr
	}

	sprintID, appErr := handlers.GetParamID(c, h.validator)
	if appErr != nil {
		return appErr
	}

	// Der Body ist optional; ohne Body bleiben unfertige Aufgaben im Sprint.
	var req sprint_dto.CompleteSprintRequest
	if len(c.Body()) > 0 {
		parsed, appErr := handlers.ParseBody[sprint_dto.CompleteSprintRequest](c, h.validator)
		if appErr != nil {
			return appErr
		}
		req = *parsed
	}

	sprint, appErr := h.service.CompleteSprint(c.Context(), actor, sprintID, &req)
	if appErr != nil {
		return appErr
	}

	webResp := handlers.CreateResponse(h.i18n.T(handlers.GetLang(c), "response.sprint_completed", nil), sprint_dto.ToSprintResponse(sprint), handlers.GetRequestID(c))
	return c.Status(fiber.StatusOK).JSON(webResp)
}

func (h *SprintHandler) AddTasks(c *fiber.Ctx) error {
	actor, appErr := handlers.GetActor(c)
	if appErr != nil {
		return appErr
	}

	sprintID, appErr := handlers.GetParamID(c, h.validator)
	if appErr != nil {
		return appErr
	}

	req, appErr := handlers.ParseBody[sprint_dto.SprintTasksRequest](c, h.validator)
	if appErr != nil {
		return appErr
	}

	if appErr := h.service.AddTasks(c.Context(), actor, sprintID, req); appErr != nil {
		return appErr
	}

	webResp := handlers.CreateResponse(h.i18n.T(handlers.GetLang(c), "response.success", nil), "OK", handlers.GetRequestID(c))
	return c.Status(fiber.StatusOK).JSON(webResp)
}

func (h *SprintHandler) RemoveTasks(c *fiber.Ctx) error {
	actor, appErr := handlers.GetActor(c)
	if appErr != nil {
		return appErr
	}

	sprintID, appErr := handlers.GetParamID(c, h.validator)
	if appErr != nil {
		return appErr
	}

	req, appErr := handlers.ParseBody[sprint_dto.SprintTasksRequest](c, h.validator)
	if appErr != nil {
		return appErr
	}

	if appErr := h.service.RemoveTasks(c.Context(), actor, sprintID, req); appErr != nil {
		return appErr
	}

	webResp := handlers.CreateResponse(h.i18n.T(handlers.GetLang(c), "response.success", nil), "OK", handlers.GetRequestID(c))
	return c.Status(fiber.StatusOK).JSON(webResp)
}

func (h *SprintHandler) GetBacklog(c *fiber.Ctx) error {
	actor, appErr := handlers.GetActor(c)
	if appErr != nil {
		return appErr
	}

	projectID, appErr := handlers.GetParamProjectID(c, h.validator)
	if appErr != nil {
		return appErr
	}

	backlog, appErr := h.service.GetBacklog(c.Context(), actor, projectID)
	if appErr != nil {
		return appErr
	}

	webResp := handlers.CreateResponse(h.i18n.T(handlers.GetLang(c), "response.success", nil), backlog, handlers.GetRequestID(c))
	return c.Status(fiber.StatusOK).JSON(webResp)
}

func (h *SprintHandler) GetVelocity(c *fiber.Ctx) error {
	actor, appErr := handlers.GetActor(c)
	if appErr != nil {
		return appErr
	}

	projectID, appErr := handlers.GetParamProjectID(c, h.validator)
	if appErr != nil {
		return appErr
	}

	velocity, appErr := h.service.GetVelocity(c.Context(), actor, projectID)
	if appErr != nil {
		return appErr
	}

	webResp := handlers.CreateResponse(h.i18n.T(handlers.GetLang(c), "response.success", nil), velocity, handlers.GetRequestID(c))
	return c.Status(fiber.StatusOK).JSON(webResp)
}
