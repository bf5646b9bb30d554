package activity

import (
	"github.com/DevITJAX/FlowOps/internal/handlers"
	internal_i18n "github.com/DevITJAX/FlowOps/internal/i18n"
	activity_case "github.com/DevITJAX/FlowOps/internal/use-cases/activity-case"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ActivityHandler struct {
	validator *validator.Validate
	service   activity_case.ActivityServiceContract
	i18n      internal_i18n.Service
}

func NewActivityHandler(db *pgxpool.Pool, i18n *internal_i18n.I18nService) *ActivityHandler {
	return &ActivityHandler{
		validator: validator.New(),
		i18n:      i18n,
		service:   activity_case.NewActivityService(db),
	}
}

func (h *ActivityHandler) ListRecent(c *fiber.Ctx) error {
	actor, appErr := handlers.GetActor(c)
	if appErr != nil {
		return appErr
	}

	activities, appErr := h.service.ListRecent(c.Context(), actor, c.QueryInt("limit"))
	if appErr != nil {
		return appErr
	}

	webResp := handlers.CreateResponse(h.i18n.T(handlers.GetLang(c), "response.success", nil), activities, handlers.GetRequestID(c))
	return c.Status(fiber.StatusOK).JSON(webResp)
}

func (h *ActivityHandler) ListByUser(c *fiber.Ctx) error {
	actor, appErr := handlers.GetActor(c)
	if appErr != nil {
		return appErr
	}

	userID, appErr := handlers.GetParamUserID(c, h.validator)
	if appErr != nil {
		return appErr
	}

	activities, appErr := h.service.ListByUser(c.Context(), actor, userID, c.QueryInt("limit"))
	if appErr != nil {
		return appErr
	}

	webResp := handlers.CreateResponse(h.i18n.T(handlers.GetLang(c), "response.success", nil), activities, handlers.GetRequestID(c))
	return c.Status(fiber.StatusOK).JSON(webResp)
}

func (h *ActivityHandler) ListByTarget(c *fiber.Ctx) error {
	actor, appErr := handlers.GetActor(c)
	if appErr != nil {
		return appErr
	}

	targetType := c.Params("targetType")
	targetID := c.Params("targetId")

	activities, appErr := h.service.ListByTarget(c.Context(), actor, targetType, targetID, c.QueryInt("limit"))
	if appErr != nil {
		return appErr
	}

	webResp := handlers.CreateResponse(h.i18n.T(handlers.GetLang(c), "response.success", nil), activities, handlers.GetRequestID(c))
	return c.Status(fiber.StatusOK).JSON(webResp)
}
