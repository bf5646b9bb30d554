package link_repo

import (
	"context"

	"github.com/DevITJAX/FlowOps/internal/entity"
	app_errors "github.com/DevITJAX/FlowOps/internal/errors"
)

type LinkRepoContract interface {
	CreateLink(ctx context.Context, link *entity.IssueLinkEntity) (*entity.IssueLinkEntity, *app_errors.AppError)
	FindLinkByID(ctx context.Context, linkID string) (*entity.IssueLinkEntity, *app_errors.AppError)
	// ListLinksForTask liefert ausgehende und eingehende Links; bei
	// eingehenden ist der Typ bereits über die Reverse-Tabelle gedreht.
	ListLinksForTask(ctx context.Context, taskID string) ([]entity.IssueLinkView, *app_errors.AppError)
	DeleteLink(ctx context.Context, linkID string) *app_errors.AppError
}
