package search_case

import (
	"context"

	"github.com/DevITJAX/FlowOps/internal/authz"
	search_dto "github.com/DevITJAX/FlowOps/internal/dtos/search-dto"
	app_errors "github.com/DevITJAX/FlowOps/internal/errors"
)

type SearchServiceContract interface {
	Search(ctx context.Context, actor authz.Actor, query *search_dto.SearchQuery) (*search_dto.SearchResponse, *app_errors.AppError)
}
