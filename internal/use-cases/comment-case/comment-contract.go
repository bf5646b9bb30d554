package comment_case

import (
	"context"

	"github.com/DevITJAX/FlowOps/internal/authz"
	comment_dto "github.com/DevITJAX/FlowOps/internal/dtos/comment-dto"
	"github.com/DevITJAX/FlowOps/internal/entity"
	app_errors "github.com/DevITJAX/FlowOps/internal/errors"
)

type CommentServiceContract interface {
	CreateComment(ctx context.Context, actor authz.Actor, taskID string, req *comment_dto.CreateCommentRequest) (*entity.CommentEntity, *app_errors.AppError)
	ListComments(ctx context.Context, actor authz.Actor, taskID string) ([]entity.CommentDetail, *app_errors.AppError)
	UpdateComment(ctx context.Context, actor authz.Actor, commentID string, req *comment_dto.UpdateCommentRequest) (*entity.CommentEntity, *app_errors.AppError)
	DeleteComment(ctx context.Context, actor authz.Actor, commentID string) *app_errors.AppError
}
