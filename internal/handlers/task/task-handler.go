package task

import (
	task_dto "github.com/DevITJAX/FlowOps/internal/dtos/task-dto"
	app_errors "github.com/DevITJAX/FlowOps/internal/errors"
	"github.com/DevITJAX/FlowOps/internal/handlers"
	internal_i18n "github.com/DevITJAX/FlowOps/internal/i18n"
	task_case "github.com/DevITJAX/FlowOps/internal/use-cases/task-case"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

type TaskHandler struct {
	validator *validator.Validate
	service   task_case.TaskServiceContract
	i18n      internal_i18n.Service
}

func NewTaskHandler(db *pgxpool.Pool, redis *redis.Client, i18n *internal_i18n.I18nService) *TaskHandler {
	validate := validator.New()
	validate.RegisterValidation("taskStatus", task_dto.IsValidTaskStatus)
	validate.RegisterValidation("taskType", task_dto.IsValidTaskType)
	validate.RegisterValidation("taskPriority", task_dto.IsValidTaskPriority)
	validate.RegisterValidation("storyPoints", task_dto.IsValidStoryPoints)
	return &TaskHandler{
		validator: validate,
		i18n:      i18n,
		service:   task_case.NewTaskService(db, redis),
	}
}

func (h *TaskHandler) CreateTask(c *fiber.Ctx) error {
	actor, appErr := handlers.GetActor(c)
	if appErr != nil {
		return appErr
	}

	projectID, appErr := handlers.GetParamProjectID(c, h.validator)
	if appErr != nil {
		return appErr
	}

	req, appErr := handlers.ParseBody[task_dto.CreateTaskRequest](c, h.validator)
	if appErr != nil {
		return appErr
	}

	task, appErr := h.service.CreateTask(c.Context(), actor, projectID, req)
	if appErr != nil {
		return appErr
	}

	webResp := handlers.CreateResponse(h.i18n.T(handlers.GetLang(c), "response.task_created", nil), task, handlers.GetRequestID(c))
	return c.Status(fiber.StatusCreated).JSON(webResp)
}

func (h *TaskHandler) ListTasks(c *fiber.Ctx) error {
	actor, appErr := handlers.GetActor(c)
	if appErr != nil {
		return appErr
	}

	projectID, appErr := handlers.GetParamProjectID(c, h.validator)
	if appErr != nil {
		return appErr
	}

	var query task_dto.TaskListQuery
	if err := c.QueryParser(&query); err != nil {
		return app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidQuery, "request.invalid_query", err)
	}
	if err := h.validator.Struct(&query); err != nil {
		return app_errors.NewValidationError(app_errors.ParseValidationError(err))
	}

	tasks, appErr := h.service.ListTasks(c.Context(), actor, projectID, &query)
	if appErr != nil {
		return appErr
	}

	webResp := handlers.CreateResponse(h.i18n.T(handlers.GetLang(c), "response.success", nil), tasks, handlers.GetRequestID(c))
	return c.Status(fiber.StatusOK).JSON(webResp)
}

func (h *TaskHandler) GetTask(c *fiber.Ctx) error {
	actor, appErr := handlers.GetActor(c)
	if appErr != nil {
		return appErr
	}

	taskID, appErr := handlers.GetParamID(c, h.validator)
	if appErr != nil {
		return appErr
	}

	task, appErr := h.service.GetTask(c.Context(), actor, taskID)
	if appErr != nil {
		return appErr
	}

	webResp := handlers.CreateResponse(h.i18n.T(handlers.GetLang(c), "response.success", nil), task, handlers.GetRequestID(c))
	return c.Status(fiber.StatusOK).JSON(webResp)
}

func (h *TaskHandler) UpdateTask(c *fiber.Ctx) error {
	actor, appErr := handlers.GetActor(c)
	if appErr != nil {
		return appErr
	}

	taskID, appErr := handlers.GetParamID(c, h.validator)
	if appErr != nil {
		return appErr
	}

	req, appErr := handlers.ParseBody[task_dto.UpdateTaskRequest](c, h.validator)
	if appErr != nil {
		return appErr
	}

	task, appErr := h.service.UpdateTask(c.Context(), actor, taskID, req)
	if appErr != nil {
		return appErr
	}

	webResp := handlers.CreateResponse(h.i18n.T(handlers.GetLang(c), "response.task_updated", nil), task, handlers.GetRequestID(c))
	return c.Status(fiber.StatusOK).JSON(webResp)
}

func (h *TaskHandler) DeleteTask(c *fiber.Ctx) error {
	actor, appErr := handlers.GetActor(c)
	if appErr != nil {
		return appErr
	}

	taskID, appErr := handlers.GetParamID(c, h.validator)
	if appErr != nil {
		return appErr
	}

	if appErr := h.service.DeleteTask(c.Context(), actor, taskID); appErr != nil {
		return appErr
	}

	webResp := handlers.CreateResponse(h.i18n.T(handlers.GetLang(c), "response.task_deleted", nil), "OK", handlers.GetRequestID(c))
	return c.Status(fiber.StatusOK).JSON(webResp)
}

func (h *TaskHandler) WatchTask(c *fiber.Ctx) error {
	actor, appErr := handlers.GetActor(c)
	if appErr != nil {
		return appErr
	}

	taskID, appErr := handlers.GetParamID(c, h.validator)
	if appErr != nil {
		return appErr
	}

	if appErr := h.service.WatchTask(c.Context(), actor, taskID); appErr != nil {
		return appErr
	}

	webResp := handlers.CreateResponse(h.i18n.T(handlers.GetLang(c), "response.success", nil), "OK", handlers.GetRequestID(c))
	return c.Status(fiber.StatusCreated).JSON(webResp)
}

func (h *TaskHandler) UnwatchTask(c *fiber.Ctx) error {
	actor, appErr := handlers.GetActor(c)
	if appErr != nil {
		return appErr
	}

	taskID, appErr := handlers.GetParamID(c, h.validator)
	if appErr != nil {
		return appErr
	}

	if appErr := h.service.UnwatchTask(c.Context(), actor, taskID); appErr != nil {
		return appErr
	}

	webResp := handlers.CreateResponse(h.i18n.T(handlers.GetLang(c), "response.success", nil), "OK", handlers.GetRequestID(c))
	return c.Status(fiber.StatusOK).JSON(webResp)
}
