package handlers

import (
	"github.com/DevITJAX/FlowOps/internal/authz"
	"github.com/DevITJAX/FlowOps/internal/dtos"
	"github.com/DevITJAX/FlowOps/internal/entity"
	app_errors "github.com/DevITJAX/FlowOps/internal/errors"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// CreateResponse erstellt eine standardisierte WebResponse.
func CreateResponse[T any](message string, data T, requestID string, details ...any) dtos.WebResponse[T] {
	return dtos.WebResponse[T]{
		Message:   message,
		Data:      data,
		RequestID: requestID,
		Details:   details,
	}
}

func GetUserID(c *fiber.Ctx) (string, *app_errors.AppError) {
	userID, ok := c.Locals("user_id").(string)
	if !ok || userID == "" {
		return "", app_errors.NewAppError(fiber.StatusUnauthorized, app_errors.ErrUnauthorized, "auth.unauthorized", nil)
	}

	return userID, nil
}

// GetActor baut den Akteur für die Regel-Auswertung aus den von der
// Auth-Middleware gesetzten Context-Lokalen.
func GetActor(c *fiber.Ctx) (authz.Actor, *app_errors.AppError) {
	userID, appErr := GetUserID(c)
	if appErr != nil {
		return authz.Actor{}, appErr
	}

	role, ok := c.Locals("role").(string)
	if !ok || role == "" {
		return authz.Actor{}, app_errors.NewAppError(fiber.StatusUnauthorized, app_errors.ErrUnauthorized, "auth.unauthorized", nil)
	}

	return authz.Actor{ID: userID, Role: entity.UserRole(role)}, nil
}

func GetRequestID(c *fiber.Ctx) string {
	reqID, ok := c.Locals("request_id").(string)
	if !ok {
		reqID = "unknown"
	}
	return reqID
}

func GetLang(c *fiber.Ctx) string {
	lang, _ := c.Locals("lang").(string)
	return lang
}

type paramID struct {
	ID string `params:"id" validate:"required,uuid"`
}

// GetParamID liest den :id-Pfadparameter und validiert ihn als UUID.
func GetParamID(c *fiber.Ctx, v *validator.Validate) (string, *app_errors.AppError) {
	var param paramID
	if err := c.ParamsParser(&param); err != nil {
		return "", app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidParam, "request.invalid_param", err)
	}

	if err := v.Struct(param); err != nil {
		return "", app_errors.NewValidationError(app_errors.ParseValidationError(err))
	}
	return param.ID, nil
}

type paramProjectScope struct {
	ProjectID string `params:"projectId" validate:"required,uuid"`
}

func GetParamProjectID(c *fiber.Ctx, v *validator.Validate) (string, *app_errors.AppError) {
	var param paramProjectScope
	if err := c.ParamsParser(&param); err != nil {
		return "", app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidParam, "request.invalid_param", err)
	}

	if err := v.Struct(param); err != nil {
		return "", app_errors.NewValidationError(app_errors.ParseValidationError(err))
	}
	return param.ProjectID, nil
}

type paramTaskScope struct {
	TaskID string `params:"taskId" validate:"required,uuid"`
}

func GetParamTaskID(c *fiber.Ctx, v *validator.Validate) (string, *app_errors.AppError) {
	var param paramTaskScope
	if err := c.ParamsParser(&param); err != nil {
		return "", app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidParam, "request.invalid_param", err)
	}

	if err := v.Struct(param); err != nil {
		return "", app_errors.NewValidationError(app_errors.ParseValidationError(err))
	}
	return param.TaskID, nil
}

type paramUserScope struct {
	UserID string `params:"userId" validate:"required,uuid"`
}

func GetParamUserID(c *fiber.Ctx, v *validator.Validate) (string, *app_errors.AppError) {
	var param paramUserScope
	if err := c.ParamsParser(&param); err != nil {
		return "", app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidParam, "request.invalid_param", err)
	}

	if err := v.Struct(param); err != nil {
		return "", app_errors.NewValidationError(app_errors.ParseValidationError(err))
	}
	return param.UserID, nil
}

// ParseBody parst und validiert den Request-Body in einem Schritt.
func ParseBody[T any](c *fiber.Ctx, v *validator.Validate) (*T, *app_errors.AppError) {
	var req T
	if err := c.BodyParser(&req); err != nil {
		return nil, app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidBody, "request.invalid_body", err)
	}

	if err := v.Struct(&req); err != nil {
		return nil, app_errors.NewValidationError(app_errors.ParseValidationError(err))
	}
	return &req, nil
}
