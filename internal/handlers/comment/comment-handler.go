package comment

import (
	comment_dto "github.com/DevITJAX/FlowOps/internal/dtos/comment-dto"
	"github.com/DevITJAX/FlowOps/internal/handlers"
	internal_i18n "github.com/DevITJAX/FlowOps/internal/i18n"
	comment_case "github.com/DevITJAX/FlowOps/internal/use-cases/comment-case"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

type CommentHandler struct {
	validator *validator.Validate
	service   comment_case.CommentServiceContract
	i18n      internal_i18n.Service
}

func NewCommentHandler(db *pgxpool.Pool, redis *redis.Client, i18n *internal_i18n.I18nService) *CommentHandler {
	return &CommentHandler{
		validator: validator.New(),
		i18n:      i18n,
		service:   comment_case.NewCommentService(db, redis),
	}
}

func (h *CommentHandler) CreateComment(c *fiber.Ctx) error {
	actor, appErr := handlers.GetActor(c)
	if appErr != nil {
		return appErr
	}

	taskID, appErr := handlers.GetParamTaskID(c, h.validator)
	if appErr != nil {
		return appErr
	}

	req, appErr := handlers.ParseBody[comment_dto.CreateCommentRequest](c, h.validator)
	if appErr != nil {
		return appErr
	}

	comment, appErr := h.service.CreateComment(c.Context(), actor, taskID, req)
	if appErr != nil {
		return appErr
	}

	webResp := handlers.CreateResponse(h.i18n.T(handlers.GetLang(c), "response.comment_created", nil), comment, handlers.GetRequestID(c))
	return c.Status(fiber.StatusCreated).JSON(webResp)
}

func (h *CommentHandler) ListComments(c *fiber.Ctx) error {
	actor, appErr := handlers.GetActor(c)
	if appErr != nil {
		return appErr
	}

	taskID, appErr := handlers.GetParamTaskID(c, h.validator)
	if appErr != nil {
		return appErr
	}

	comments, appErr := h.service.ListComments(c.Context(), actor, taskID)
	if appErr != nil {
		return appErr
	}

	webResp := handlers.CreateResponse(h.i18n.T(handlers.GetLang(c), "response.success", nil), comments, handlers.GetRequestID(c))
	return c.Status(fiber.StatusOK).JSON(webResp)
}

func (h *CommentHandler) UpdateComment(c *fiber.Ctx) error {
	actor, appErr := handlers.GetActor(c)
	if appErr != nil {
		return appErr
	}

	commentID, appErr := handlers.GetParamID(c, h.validator)
	if appErr != nil {
		return appErr
	}

	req, appErr := handlers.ParseBody[comment_dto.UpdateCommentRequest](c, h.validator)
	if appErr != nil {
		return appErr
	}

	comment, appErr := h.service.UpdateComment(c.Context(), actor, commentID, req)
	if appErr != nil {
		return appErr
	}

	webResp := handlers.CreateResponse(h.i18n.T(handlers.GetLang(c), "response.comment_updated", nil), comment, handlers.GetRequestID(c))
	return c.Status(fiber.StatusOK).JSON(webResp)
}

func (h *CommentHandler) DeleteComment(c *fiber.Ctx) error {
	actor, appErr := handlers.GetActor(c)
	if appErr != nil {
		return appErr
	}

	commentID, appErr := handlers.GetParamID(c, h.validator)
	if appErr != nil {
		return appErr
	}

	if appErr := h.service.DeleteComment(c.Context(), actor, commentID); appErr != nil {
		return appErr
	}

	webResp := handlers.CreateResponse(h.i18n.T(handlers.GetLang(c), "response.comment_deleted", nil), "OK", handlers.GetRequestID(c))
	return c.Status(fiber.StatusOK).JSON(webResp)
}
