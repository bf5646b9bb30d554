package timelog

import (
	timelog_dto "github.com/DevITJAX/FlowOps/internal/dtos/timelog-dto"
	"github.com/DevITJAX/FlowOps/internal/handlers"
	internal_i18n "github.com/DevITJAX/FlowOps/internal/i18n"
	timelog_case "github.com/DevITJAX/FlowOps/internal/use-cases/timelog-case"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
)

type TimeLogHandler struct {
	validator *validator.Validate
	service   timelog_case.TimeLogServiceContract
	i18n      internal_i18n.Service
}

func NewTimeLogHandler(db *pgxpool.Pool, i18n *internal_i18n.I18nService) *TimeLogHandler {
	return &TimeLogHandler{
		validator: validator.New(),
		i18n:      i18n,
		service:   timelog_case.NewTimeLogService(db),
	}
}

func (h *TimeLogHandler) CreateTimeLog(c *fiber.Ctx) error {
	actor, appErr := handlers.GetActor(c)
	if appErr != nil {
		return appErr
	}

	taskID, appErr := handlers.GetParamTaskID(c, h.validator)
	if appErr != nil {
		return appErr
	}

	req, appErr := handlers.ParseBody[timelog_dto.CreateTimeLogRequest](c, h.validator)
	if appErr != nil {
		return appErr
	}

	timeLog, appErr := h.service.CreateTimeLog(c.Context(), actor, taskID, req)
	if appErr != nil {
		return appErr
	}

	webResp := handlers.CreateResponse(h.i18n.T(handlers.GetLang(c), "response.timelog_created", nil), timeLog, handlers.GetRequestID(c))
	return c.Status(fiber.StatusCreated).JSON(webResp)
}

func (h *TimeLogHandler) ListTimeLogs(c *fiber.Ctx) error {
	actor, appErr := handlers.GetActor(c)
	if appErr != nil {
		return appErr
	}

	taskID, appErr := handlers.GetParamTaskID(c, h.validator)
	if appErr != nil {
		return appErr
	}

	timeLogs, appErr := h.service.ListTimeLogs(c.Context(), actor, taskID)
	if appErr != nil {
		return appErr
	}

	webResp := handlers.CreateResponse(h.i18n.T(handlers.GetLang(c), "response.success", nil), timeLogs, handlers.GetRequestID(c))
	return c.Status(fiber.StatusOK).JSON(webResp)
}

func (h *TimeLogHandler) UpdateTimeLog(c *fiber.Ctx) error {
	actor, appErr := handlers.GetActor(c)
	if appErr != nil {
		return appErr
	}

	timeLogID, appErr := handlers.GetParamID(c, h.validator)
	if appErr != nil {
		return appErr
	}

	req, appErr := handlers.ParseBody[timelog_dto.UpdateTimeLogRequest](c, h.validator)
	if appErr != nil {
		return appErr
	}

	timeLog, appErr := h.service.UpdateTimeLog(c.Context(), actor, timeLogID, req)
	if appErr != nil {
		return appErr
	}

	webResp := handlers.CreateResponse(h.i18n.T(handlers.GetLang(c), "response.timelog_updated", nil), timeLog, handlers.GetRequestID(c))
	return c.Status(fiber.StatusOK).JSON(webResp)
}

func (h *TimeLogHandler) DeleteTimeLog(c *fiber.Ctx) error {
	actor, appErr := handlers.GetActor(c)
	if appErr != nil {
		return appErr
	}

	timeLogID, appErr := handlers.GetParamID(c, h.validator)
	if appErr != nil {
		return appErr
	}

	if appErr := h.service.DeleteTimeLog(c.Context(), actor, timeLogID); appErr != nil {
		return appErr
	}

	webResp := handlers.CreateResponse(h.i18n.T(handlers.GetLang(c), "response.timelog_deleted", nil), "OK", handlers.GetRequestID(c))
	return c.Status(fiber.StatusOK).JSON(webResp)
}
