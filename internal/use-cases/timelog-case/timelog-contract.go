package timelog_case

import (
	"context"

	"github.com/DevITJAX/FlowOps/internal/authz"
	timelog_dto "github.com/DevITJAX/FlowOps/internal/dtos/timelog-dto"
	"github.com/DevITJAX/FlowOps/internal/entity"
	app_errors "github.com/DevITJAX/FlowOps/internal/errors"
)

type TimeLogServiceContract interface {
	CreateTimeLog(ctx context.Context, actor authz.Actor, taskID string, req *timelog_dto.CreateTimeLogRequest) (*entity.TimeLogEntity, *app_errors.AppError)
	ListTimeLogs(ctx context.Context, actor authz.Actor, taskID string) ([]entity.TimeLogDetail, *app_errors.AppError)
	UpdateTimeLog(ctx context.Context, actor authz.Actor, timeLogID string, req *timelog_dto.UpdateTimeLogRequest) (*entity.TimeLogEntity, *app_errors.AppError)
	DeleteTimeLog(ctx context.Context, actor authz.Actor, timeLogID string) *app_errors.AppError
}
