package attachment_case

import (
	"context"
	"mime/multipart"

	"github.com/DevITJAX/FlowOps/internal/authz"
	"github.com/DevITJAX/FlowOps/internal/entity"
	app_errors "github.com/DevITJAX/FlowOps/internal/errors"
)

type AttachmentServiceContract interface {
	UploadAttachment(ctx context.Context, actor authz.Actor, taskID string, file *multipart.FileHeader) (*entity.AttachmentEntity, *app_errors.AppError)
	ListAttachments(ctx context.Context, actor authz.Actor, taskID string) ([]entity.AttachmentDetail, *app_errors.AppError)
	// GetAttachmentFile liefert den Datensatz für den Download; der Handler
	// streamt die Datei anhand des Pfads.
	GetAttachmentFile(ctx context.Context, actor authz.Actor, attachmentID string) (*entity.AttachmentEntity, *app_errors.AppError)
	DeleteAttachment(ctx context.Context, actor authz.Actor, attachmentID string) *app_errors.AppError
}
