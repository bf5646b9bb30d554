package attachment_repo

import (
	"context"

	"github.com/DevITJAX/FlowOps/internal/entity"
	app_errors "github.com/DevITJAX/FlowOps/internal/errors"
)

type AttachmentRepoContract interface {
	CreateAttachment(ctx context.Context, attachment *entity.AttachmentEntity) (*entity.AttachmentEntity, *app_errors.AppError)
	FindAttachmentByID(ctx context.Context, attachmentID string) (*entity.AttachmentEntity, *app_errors.AppError)
	ListAttachmentsByTask(ctx context.Context, taskID string) ([]entity.AttachmentDetail, *app_errors.AppError)
	DeleteAttachment(ctx context.Context, attachmentID string) *app_errors.AppError
}
