package timelog_case

import (
	"context"
	"testing"

	"github.com/DevITJAX/FlowOps/internal/abstraction/tx"
	"github.com/DevITJAX/FlowOps/internal/authz"
	timelog_dto "github.com/DevITJAX/FlowOps/internal/dtos/timelog-dto"
	"github.com/DevITJAX/FlowOps/internal/entity"
	app_errors "github.com/DevITJAX/FlowOps/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// Nur der Ersteller (oder ein Admin) darf fremde Zeiteinträge ändern.
func TestUpdateTimeLog_OtherUserForbidden(t *testing.T) {
	ctx := context.Background()

	repo := new(MockTimeLogRepo)
	service := &TimeLogService{repo: repo}

	repo.On("FindTimeLogByID", ctx, "log-1").Return(&entity.TimeLogEntity{
		ID:     "log-1",
		TaskID: "task-1",
		UserID: "owner-of-log",
	}, (*app_errors.AppError)(nil))

	updated, appErr := service.UpdateTimeLog(ctx, authz.Actor{ID: "someone-else", Role: entity.RoleMember}, "log-1", &timelog_dto.UpdateTimeLogRequest{})

	assert.Nil(t, updated)
	assert.NotNil(t, appErr)
	assert.Equal(t, app_errors.ErrForbidden, appErr.Type)
}

func TestUpdateTimeLog_AdminAllowed(t *testing.T) {
	ctx := context.Background()

	repo := new(MockTimeLogRepo)
	tasks := new(MockTaskRepo)
	txm := new(MockTxManager)
	mockTx := new(MockTx)

	service := &TimeLogService{
		repo:  repo,
		tasks: tasks,
		txm:   txm,
	}

	newSpent := 45

	repo.On("FindTimeLogByID", ctx, "log-1").Return(&entity.TimeLogEntity{
		ID:     "log-1",
		TaskID: "task-1",
		UserID: "owner-of-log",
	}, (*app_errors.AppError)(nil))
	tasks.On("FindTaskByID", ctx, "task-1").Return(&entity.TaskEntity{
		ID:               "task-1",
		ProjectID:        "project-1",
		OriginalEstimate: 60,
	}, (*app_errors.AppError)(nil))

	txm.On("Begin", ctx).Return(tx.Tx(mockTx), (*app_errors.AppError)(nil))
	repo.On("UpdateTimeLog", ctx, mockTx, "log-1", &newSpent, (*string)(nil), mock.Anything).Return(&entity.TimeLogEntity{
		ID:        "log-1",
		TaskID:    "task-1",
		UserID:    "owner-of-log",
		TimeSpent: newSpent,
	}, (*app_errors.AppError)(nil))
	repo.On("SumForTask", ctx, mockTx, "task-1").Return(45, (*app_errors.AppError)(nil))
	tasks.On("UpdateTimeAggregates", ctx, mockTx, "task-1", 45, 15).Return((*app_errors.AppError)(nil))
	mockTx.On("Commit", ctx).Return((*app_errors.AppError)(nil))

	updated, appErr := service.UpdateTimeLog(ctx, authz.Actor{ID: "admin-1", Role: entity.RoleAdmin}, "log-1", &timelog_dto.UpdateTimeLogRequest{
		TimeSpent: &newSpent,
	})

	assert.Nil(t, appErr)
	assert.Equal(t, 45, updated.TimeSpent)

	repo.AssertExpectations(t)
	tasks.AssertExpectations(t)
}

// Nach dem Löschen steigt remaining wieder bis zur Originalschätzung.
func TestDeleteTimeLog_RestoresRemaining(t *testing.T) {
	ctx := context.Background()

	repo := new(MockTimeLogRepo)
	tasks := new(MockTaskRepo)
	txm := new(MockTxManager)
	mockTx := new(MockTx)

	service := &TimeLogService{
		repo:  repo,
		tasks: tasks,
		txm:   txm,
	}

	repo.On("FindTimeLogByID", ctx, "log-1").Return(&entity.TimeLogEntity{
		ID:     "log-1",
		TaskID: "task-1",
		UserID: "user-1",
	}, (*app_errors.AppError)(nil))
	tasks.On("FindTaskByID", ctx, "task-1").Return(&entity.TaskEntity{
		ID:               "task-1",
		ProjectID:        "project-1",
		OriginalEstimate: 100,
	}, (*app_errors.AppError)(nil))

	txm.On("Begin", ctx).Return(tx.Tx(mockTx), (*app_errors.AppError)(nil))
	repo.On("DeleteTimeLog", ctx, mockTx, "log-1").Return((*app_errors.AppError)(nil))
	repo.On("SumForTask", ctx, mockTx, "task-1").Return(0, (*app_errors.AppError)(nil))
	tasks.On("UpdateTimeAggregates", ctx, mockTx, "task-1", 0, 100).Return((*app_errors.AppError)(nil))
	mockTx.On("Commit", ctx).Return((*app_errors.AppError)(nil))

	appErr := service.DeleteTimeLog(ctx, authz.Actor{ID: "user-1", Role: entity.RoleMember}, "log-1")

	assert.Nil(t, appErr)
	repo.AssertExpectations(t)
	tasks.AssertExpectations(t)
}
