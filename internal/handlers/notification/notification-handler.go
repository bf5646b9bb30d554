package notification

import (
	"github.com/DevITJAX/FlowOps/internal/handlers"
	internal_i18n "github.com/DevITJAX/FlowOps/internal/i18n"
	notification_case "github.com/DevITJAX/FlowOps/internal/use-cases/notification-case"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
)

type NotificationHandler struct {
	validator *validator.Validate
	service   notification_case.NotificationServiceContract
	i18n      internal_i18n.Service
}

func NewNotificationHandler(db *pgxpool.Pool, i18n *internal_i18n.I18nService) *NotificationHandler {
	return &NotificationHandler{
		validator: validator.New(),
		i18n:      i18n,
		service:   notification_case.NewNotificationService(db),
	}
}

func (h *NotificationHandler) ListNotifications(c *fiber.Ctx) error {
	userID, appErr := handlers.GetUserID(c)
	if appErr != nil {
		return appErr
	}

	limit := c.QueryInt("limit")

	resp, appErr := h.service.ListNotifications(c.Context(), userID, limit)
	if appErr != nil {
		return appErr
	}

	webResp := handlers.CreateResponse(h.i18n.T(handlers.GetLang(c), "response.success", nil), resp, handlers.GetRequestID(c))
	return c.Status(fiber.StatusOK).JSON(webResp)
}

func (h *NotificationHandler) MarkRead(c *fiber.Ctx) error {
	userID, appErr := handlers.GetUserID(c)
	if appErr != nil {
		return appErr
	}

	notificationID, appErr := handlers.GetParamID(c, h.validator)
	if appErr != nil {
		return appErr
	}

	notification, appErr := h.service.MarkRead(c.Context(), userID, notificationID)
	if appErr != nil {
		return appErr
	}

	webResp := handlers.CreateResponse(h.i18n.T(handlers.GetLang(c), "response.success", nil), notification, handlers.GetRequestID(c))
	return c.Status(fiber.StatusOK).JSON(webResp)
}

func (h *NotificationHandler) MarkAllRead(c *fiber.Ctx) error {
	userID, appErr := handlers.GetUserID(c)
	if appErr != nil {
		return appErr
	}

	if appErr := h.service.MarkAllRead(c.Context(), userID); appErr != nil {
		return appErr
	}

	webResp := handlers.CreateResponse(h.i18n.T(handlers.GetLang(c), "response.success", nil), "OK", handlers.GetRequestID(c))
	return c.Status(fiber.StatusOK).JSON(webResp)
}

func (h *NotificationHandler) DeleteNotification(c *fiber.Ctx) error {
	userID, appErr := handlers.GetUserID(c)
	if appErr != nil {
		return appErr
	}

	notificationID, appErr := handlers.GetParamID(c, h.validator)
	if appErr != nil {
		return appErr
	}

	if appErr := h.service.DeleteNotification(c.Context(), userID, notificationID); appErr != nil {
		return appErr
	}

	webResp := handlers.CreateResponse(h.i18n.T(handlers.GetLang(c), "response.success", nil), "OK", handlers.GetRequestID(c))
	return c.Status(fiber.StatusOK).JSON(webResp)
}

func (h *NotificationHandler) ClearNotifications(c *fiber.Ctx) error {
	userID, appErr := handlers.GetUserID(c)
	if appErr != nil {
		return appErr
	}

	if appErr := h.service.ClearNotifications(c.Context(), userID); appErr != nil {
		return appErr
	}

	webResp := handlers.CreateResponse(h.i18n.T(handlers.GetLang(c), "response.success", nil), "OK", handlers.GetRequestID(c))
	return c.Status(fiber.StatusOK).JSON(webResp)
}
