package link_case

import (
	"context"

	"github.com/DevITJAX/FlowOps/internal/authz"
	link_dto "github.com/DevITJAX/FlowOps/internal/dtos/link-dto"
	"github.com/DevITJAX/FlowOps/internal/entity"
	app_errors "github.com/DevITJAX/FlowOps/internal/errors"
)

type LinkServiceContract interface {
	CreateLink(ctx context.Context, actor authz.Actor, sourceTaskID string, req *link_dto.CreateLinkRequest) (*entity.IssueLinkEntity, *app_errors.AppError)
	ListLinks(ctx context.Context, actor authz.Actor, taskID string) ([]entity.IssueLinkView, *app_errors.AppError)
	DeleteLink(ctx context.Context, actor authz.Actor, linkID string) *app_errors.AppError
}
