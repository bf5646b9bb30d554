package attachment

import (
	app_errors "github.com/DevITJAX/FlowOps/internal/errors"
	"github.com/DevITJAX/FlowOps/internal/handlers"
	internal_i18n "github.com/DevITJAX/FlowOps/internal/i18n"
	attachment_case "github.com/DevITJAX/FlowOps/internal/use-cases/attachment-case"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AttachmentHandler struct {
	validator *validator.Validate
	service   attachment_case.AttachmentServiceContract
	i18n      internal_i18n.Service
}

func NewAttachmentHandler(db *pgxpool.Pool, uploadDir string, i18n *internal_i18n.I18nService) *AttachmentHandler {
	return &AttachmentHandler{
		validator: validator.New(),
		i18n:      i18n,
		service:   attachment_case.NewAttachmentService(db, uploadDir),
	}
}

// UploadAttachment nimmt eine Multipart-Datei unter dem Feldnamen "file"
// entgegen.
func (h *AttachmentHandler) UploadAttachment(c *fiber.Ctx) error {
	actor, appErr := handlers.GetActor(c)
	if appErr != nil {
		return appErr
	}

	taskID, appErr := handlers.GetParamTaskID(c, h.validator)
	if appErr != nil {
		return appErr
	}

	file, err := c.FormFile("file")
	if err != nil {
		return app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidBody, "attachment.missing_file", err)
	}

	attachment, appErr := h.service.UploadAttachment(c.Context(), actor, taskID, file)
	if appErr != nil {
		return appErr
	}

	webResp := handlers.CreateResponse(h.i18n.T(handlers.GetLang(c), "response.attachment_uploaded", nil), attachment, handlers.GetRequestID(c))
	return c.Status(fiber.StatusCreated).JSON(webResp)
}

func (h *AttachmentHandler) ListAttachments(c *fiber.Ctx) error {
	actor, appErr := handlers.GetActor(c)
	if appErr != nil {
		return appErr
	}

	taskID, appErr := handlers.GetParamTaskID(c, h.validator)
	if appErr != nil {
		return appErr
	}

	attachments, appErr := h.service.ListAttachments(c.Context(), actor, taskID)
	if appErr != nil {
		return appErr
	}

	webResp := handlers.CreateResponse(h.i18n.T(handlers.GetLang(c), "response.success", nil), attachments, handlers.GetRequestID(c))
	return c.Status(fiber.StatusOK).JSON(webResp)
}

// DownloadAttachment streamt die Datei unter ihrem Originalnamen.
func (h *AttachmentHandler) DownloadAttachment(c *fiber.Ctx) error {
	actor, appErr := handlers.GetActor(c)
	if appErr != nil {
		return appErr
	}

	attachmentID, appErr := handlers.GetParamID(c, h.validator)
	if appErr != nil {
		return appErr
	}

	attachment, appErr := h.service.GetAttachmentFile(c.Context(), actor, attachmentID)
	if appErr != nil {
		return appErr
	}

	return c.Download(attachment.Path, attachment.OriginalName)
}

func (h *AttachmentHandler) DeleteAttachment(c *fiber.Ctx) error {
	actor, appErr := handlers.GetActor(c)
	if appErr != nil {
		return appErr
	}

	attachmentID, appErr := handlers.GetParamID(c, h.validator)
	if appErr != nil {
		return appErr
	}

	if appErr := h.service.DeleteAttachment(c.Context(), actor, attachmentID); appErr != nil {
		return appErr
	}

	webResp := handlers.CreateResponse(h.i18n.T(handlers.GetLang(c), "response.attachment_deleted", nil), "OK", handlers.GetRequestID(c))
	return c.Status(fiber.StatusOK).JSON(webResp)
}
