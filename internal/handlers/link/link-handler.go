package link

import (
	link_dto "github.com/DevITJAX/FlowOps/internal/dtos/link-dto"
	"github.com/DevITJAX/FlowOps/internal/handlers"
	internal_i18n "github.com/DevITJAX/FlowOps/internal/i18n"
	link_case "github.com/DevITJAX/FlowOps/internal/use-cases/link-case"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
)

type LinkHandler struct {
	validator *validator.Validate
	service   link_case.LinkServiceContract
	i18n      internal_i18n.Service
}

func NewLinkHandler(db *pgxpool.Pool, i18n *internal_i18n.I18nService) *LinkHandler {
	validate := validator.New()
	validate.RegisterValidation("linkType", link_dto.IsValidLinkType)
	return &LinkHandler{
		validator: validate,
		i18n:      i18n,
		service:   link_case.NewLinkService(db),
	}
}

func (h *LinkHandler) CreateLink(c *fiber.Ctx) error {
	actor, appErr := handlers.GetActor(c)
	if appErr != nil {
		return appErr
	}

	taskID, appErr := handlers.GetParamTaskID(c, h.validator)
	if appErr != nil {
		return appErr
	}

	req, appErr := handlers.ParseBody[link_dto.CreateLinkRequest](c, h.validator)
	if appErr != nil {
		return appErr
	}

	link, appErr := h.service.CreateLink(c.Context(), actor, taskID, req)
	if appErr != nil {
		return appErr
	}

	webResp := handlers.CreateResponse(h.i18n.T(handlers.GetLang(c), "response.link_created", nil), link, handlers.GetRequestID(c))
	return c.Status(fiber.StatusCreated).JSON(webResp)
}

func (h *LinkHandler) ListLinks(c *fiber.Ctx) error {
	actor, appErr := handlers.GetActor(c)
	if appErr != nil {
		return appErr
	}

	taskID, appErr := handlers.GetParamTaskID(c, h.validator)
	if appErr != nil {
		return appErr
	}

	links, appErr := h.service.ListLinks(c.Context(), actor, taskID)
	if appErr != nil {
		return appErr
	}

	webResp := handlers.CreateResponse(h.i18n.T(handlers.GetLang(c), "response.success", nil), links, handlers.GetRequestID(c))
	return c.Status(fiber.StatusOK).JSON(webResp)
}

func (h *LinkHandler) DeleteLink(c *fiber.Ctx) error {
	actor, appErr := handlers.GetActor(c)
	if appErr != nil {
		return appErr
	}

	linkID, appErr := handlers.GetParamID(c, h.validator)
	if appErr != nil {
		return appErr
	}

	if appErr := h.service.DeleteLink(c.Context(), actor, linkID); appErr != nil {
		return appErr
	}

	webResp := handlers.CreateResponse(h.i18n.T(handlers.GetLang(c), "response.link_deleted", nil), "OK", handlers.GetRequestID(c))
	return c.Status(fiber.StatusOK).JSON(webResp)
}
