package label

import (
	label_dto "github.com/DevITJAX/FlowOps/internal/dtos/label-dto"
	"github.com/DevITJAX/FlowOps/internal/handlers"
	internal_i18n "github.com/DevITJAX/FlowOps/internal/i18n"
	label_case "github.com/DevITJAX/FlowOps/internal/use-cases/label-case"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
)

type LabelHandler struct {
	validator *validator.Validate
	service   label_case.LabelServiceContract
	i18n      internal_i18n.Service
}

func NewLabelHandler(db *pgxpool.Pool, i18n *internal_i18n.I18nService) *LabelHandler {
	return &LabelHandler{
		validator: validator.New(),
		i18n:      i18n,
		service:   label_case.NewLabelService(db),
	}
}

func (h *LabelHandler) CreateLabel(c *fiber.Ctx) error {
	actor, appErr := handlers.GetActor(c)
	if appErr != nil {
		return appErr
	}

	projectID, appErr := handlers.GetParamProjectID(c, h.validator)
	if appErr != nil {
		return appErr
	}

	req, appErr := handlers.ParseBody[label_dto.CreateLabelRequest](c, h.validator)
	if appErr != nil {
		return appErr
	}

	label, appErr := h.service.CreateLabel(c.Context(), actor, projectID, req)
	if appErr != nil {
		return appErr
	}

	webResp := handlers.CreateResponse(h.i18n.T(handlers.GetLang(c), "response.label_created", nil), label, handlers.GetRequestID(c))
	return c.Status(fiber.StatusCreated).JSON(webResp)
}

func (h *LabelHandler) ListLabels(c *fiber.Ctx) error {
	actor, appErr := handlers.GetActor(c)
	if appErr != nil {
		return appErr
	}

	projectID, appErr := handlers.GetParamProjectID(c, h.validator)
	if appErr != nil {
		return appErr
	}

	labels, appErr := h.service.ListLabels(c.Context(), actor, projectID)
	if appErr != nil {
		return appErr
	}

	webResp := handlers.CreateResponse(h.i18n.T(handlers.GetLang(c), "response.success", nil), labels, handlers.GetRequestID(c))
	return c.Status(fiber.StatusOK).JSON(webResp)
}

func (h *LabelHandler) UpdateLabel(c *fiber.Ctx) error {
	actor, appErr := handlers.GetActor(c)
	if appErr != nil {
		return appErr
	}

	labelID, appErr := handlers.GetParamID(c, h.validator)
	if appErr != nil {
		return appErr
	}

	req, appErr := handlers.ParseBody[label_dto.UpdateLabelRequest](c, h.validator)
	if appErr != nil {
		return appErr
	}

	label, appErr := h.service.UpdateLabel(c.Context(), actor, labelID, req)
	if appErr != nil {
		return appErr
	}

	webResp := handlers.CreateResponse(h.i18n.T(handlers.GetLang(c), "response.label_updated", nil), label, handlers.GetRequestID(c))
	return c.Status(fiber.StatusOK).JSON(webResp)
}

func (h *LabelHandler) DeleteLabel(c *fiber.Ctx) error {
	actor, appErr := handlers.GetActor(c)
	if appErr != nil {
		return appErr
	}

	labelID, appErr := handlers.GetParamID(c, h.validator)
	if appErr != nil {
		return appErr
	}

	if appErr := h.service.DeleteLabel(c.Context(), actor, labelID); appErr != nil {
		return appErr
	}

	webResp := handlers.CreateResponse(h.i18n.T(handlers.GetLang(c), "response.label_deleted", nil), "OK", handlers.GetRequestID(c))
	return c.Status(fiber.StatusOK).JSON(webResp)
}
