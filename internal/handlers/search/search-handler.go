package search

import (
	search_dto "github.com/DevITJAX/FlowOps/internal/dtos/search-dto"
	app_errors "github.com/DevITJAX/FlowOps/internal/errors"
	"github.com/DevITJAX/FlowOps/internal/handlers"
	internal_i18n "github.com/DevITJAX/FlowOps/internal/i18n"
	search_case "github.com/DevITJAX/FlowOps/internal/use-cases/search-case"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
)

type SearchHandler struct {
	validator *validator.Validate
	service   search_case.SearchServiceContract
	i18n      internal_i18n.Service
}

func NewSearchHandler(db *pgxpool.Pool, i18n *internal_i18n.I18nService) *SearchHandler {
	return &SearchHandler{
		validator: validator.New(),
		i18n:      i18n,
		service:   search_case.NewSearchService(db),
	}
}

func (h *SearchHandler) Search(c *fiber.Ctx) error {
	actor, appErr := handlers.GetActor(c)
	if appErr != nil {
		return appErr
	}

	var query search_dto.SearchQuery
	if err := c.QueryParser(&query); err != nil {
		return app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidQuery, "request.invalid_query", err)
	}
	if err := h.validator.Struct(&query); err != nil {
		return app_errors.NewValidationError(app_errors.ParseValidationError(err))
	}

	resp, appErr := h.service.Search(c.Context(), actor, &query)
	if appErr != nil {
		return appErr
	}

	webResp := handlers.CreateResponse(h.i18n.T(handlers.GetLang(c), "response.success", nil), resp, handlers.GetRequestID(c))
	return c.Status(fiber.StatusOK).JSON(webResp)
}
