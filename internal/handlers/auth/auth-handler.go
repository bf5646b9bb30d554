package auth

import (
	auth_dto "github.com/DevITJAX/FlowOps/internal/dtos/auth-dto"
	app_errors "github.com/DevITJAX/FlowOps/internal/errors"
	"github.com/DevITJAX/FlowOps/internal/handlers"
	internal_i18n "github.com/DevITJAX/FlowOps/internal/i18n"
	auth_case "github.com/DevITJAX/FlowOps/internal/use-cases/auth-case"
	"github.com/DevITJAX/FlowOps/internal/utils"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

type AuthHandler struct {
	validator *validator.Validate
	service   auth_case.AuthServiceContract
	i18n      internal_i18n.Service
}

func NewAuthHandler(db *pgxpool.Pool, redis *redis.Client, i18n *internal_i18n.I18nService, paseto *utils.PasetoMaker) *AuthHandler {
	validate := validator.New()
	validate.RegisterValidation("userRole", auth_dto.IsValidUserRole)
	return &AuthHandler{
		validator: validate,
		i18n:      i18n,
		service:   auth_case.NewAuthService(db, redis, paseto),
	}
}

// Register behandelt die Registrierung eines neuen Benutzers.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	req, appErr := handlers.ParseBody[auth_dto.RegisterUserRequest](c, h.validator)
	if appErr != nil {
		return appErr
	}

	resp, appErr := h.service.Register(c.Context(), req)
	if appErr != nil {
		return appErr
	}

	webResp := handlers.CreateResponse(h.i18n.T(handlers.GetLang(c), "response.success_register", nil), resp, handlers.GetRequestID(c))
	return c.Status(fiber.StatusCreated).JSON(webResp)
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	req, appErr := handlers.ParseBody[auth_dto.LoginUserRequest](c, h.validator)
	if appErr != nil {
		return appErr
	}

	resp, appErr := h.service.Login(c.Context(), req)
	if appErr != nil {
		return appErr
	}

	webResp := handlers.CreateResponse(h.i18n.T(handlers.GetLang(c), "response.success_login", nil), resp, handlers.GetRequestID(c))
	return c.Status(fiber.StatusOK).JSON(webResp)
}

func (h *AuthHandler) Me(c *fiber.Ctx) error {
	userID, appErr := handlers.GetUserID(c)
	if appErr != nil {
		return appErr
	}

	resp, appErr := h.service.Me(c.Context(), userID)
	if appErr != nil {
		return appErr
	}

	webResp := handlers.CreateResponse(h.i18n.T(handlers.GetLang(c), "response.success", nil), resp, handlers.GetRequestID(c))
	return c.Status(fiber.StatusOK).JSON(webResp)
}

// ForgotPassword stößt die Passwort-Zurücksetzung an. Die Antwort ist
// unabhängig davon, ob die Adresse bekannt ist, immer gleich.
func (h *AuthHandler) ForgotPassword(c *fiber.Ctx) error {
	req, appErr := handlers.ParseBody[auth_dto.ForgotPasswordRequest](c, h.validator)
	if appErr != nil {
		return appErr
	}

	if appErr := h.service.ForgotPassword(c.Context(), req); appErr != nil {
		return appErr
	}

	webResp := handlers.CreateResponse(h.i18n.T(handlers.GetLang(c), "response.reset_mail_sent", nil), "OK", handlers.GetRequestID(c))
	return c.Status(fiber.StatusOK).JSON(webResp)
}

func (h *AuthHandler) ResetPassword(c *fiber.Ctx) error {
	token := c.Params("token")
	if token == "" {
		return app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidParam, "request.invalid_param", nil)
	}

	req, appErr := handlers.ParseBody[auth_dto.ResetPasswordRequest](c, h.validator)
	if appErr != nil {
		return appErr
	}

	if appErr := h.service.ResetPassword(c.Context(), token, req); appErr != nil {
		return appErr
	}

	webResp := handlers.CreateResponse(h.i18n.T(handlers.GetLang(c), "response.password_reset", nil), "OK", handlers.GetRequestID(c))
	return c.Status(fiber.StatusOK).JSON(webResp)
}

func (h *AuthHandler) RefreshToken(c *fiber.Ctx) error {
	req, appErr := handlers.ParseBody[auth_dto.RefreshTokenRequest](c, h.validator)
	if appErr != nil {
		return appErr
	}

	resp, appErr := h.service.RefreshToken(c.Context(), req)
	if appErr != nil {
		return appErr
	}

	webResp := handlers.CreateResponse(h.i18n.T(handlers.GetLang(c), "response.success", nil), resp, handlers.GetRequestID(c))
	return c.Status(fiber.StatusOK).JSON(webResp)
}

func (h *AuthHandler) UpdatePassword(c *fiber.Ctx) error {
	userID, appErr := handlers.GetUserID(c)
	if appErr != nil {
		return appErr
	}

	req, appErr := handlers.ParseBody[auth_dto.UpdatePasswordRequest](c, h.validator)
	if appErr != nil {
		return appErr
	}

	if appErr := h.service.UpdatePassword(c.Context(), userID, req); appErr != nil {
		return appErr
	}

	webResp := handlers.CreateResponse(h.i18n.T(handlers.GetLang(c), "response.password_updated", nil), "OK", handlers.GetRequestID(c))
	return c.Status(fiber.StatusOK).JSON(webResp)
}

func (h *AuthHandler) UpdateProfile(c *fiber.Ctx) error {
	userID, appErr := handlers.GetUserID(c)
	if appErr != nil {
		return appErr
	}

	req, appErr := handlers.ParseBody[auth_dto.UpdateProfileRequest](c, h.validator)
	if appErr != nil {
		return appErr
	}

	resp, appErr := h.service.UpdateProfile(c.Context(), userID, req)
	if appErr != nil {
		return appErr
	}

	webResp := handlers.CreateResponse(h.i18n.T(handlers.GetLang(c), "response.success", nil), resp, handlers.GetRequestID(c))
	return c.Status(fiber.StatusOK).JSON(webResp)
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	userID, appErr := handlers.GetUserID(c)
	if appErr != nil {
		return appErr
	}

	jti, ok := c.Locals("jti").(string)
	if !ok || jti == "" {
		return app_errors.NewAppError(fiber.StatusUnauthorized, app_errors.ErrUnauthorized, "auth.unauthorized", nil)
	}

	if appErr := h.service.Logout(c.Context(), userID, jti); appErr != nil {
		return appErr
	}

	webResp := handlers.CreateResponse(h.i18n.T(handlers.GetLang(c), "response.success_logout", nil), "OK", handlers.GetRequestID(c))
	return c.Status(fiber.StatusOK).JSON(webResp)
}
