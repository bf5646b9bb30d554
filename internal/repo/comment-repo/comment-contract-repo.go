package comment_repo

import (
	"context"

	"github.com/DevITJAX/FlowOps/internal/entity"
	app_errors "github.com/DevITJAX/FlowOps/internal/errors"
)

type CommentRepoContract interface {
	CreateComment(ctx context.Context, comment *entity.CommentEntity) (*entity.CommentEntity, *app_errors.AppError)
	FindCommentByID(ctx context.Context, commentID string) (*entity.CommentEntity, *app_errors.AppError)
	ListCommentsByTask(ctx context.Context, taskID string) ([]entity.CommentDetail, *app_errors.AppError)
	UpdateComment(ctx context.Context, commentID string, content string, mentions []string) (*entity.CommentEntity, *app_errors.AppError)
	DeleteComment(ctx context.Context, commentID string) *app_errors.AppError
}
