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

// Happy path: das Log wird geschrieben und die Aggregate der Aufgabe
// werden innerhalb derselben Transaktion neu berechnet.
func TestCreateTimeLog_RecomputesAggregates(t *testing.T) {
	ctx := context.Background()

	repo := new(MockTimeLogRepo)
	tasks := new(MockTaskRepo)
	projects := new(MockProjectRepo)
	txm := new(MockTxManager)
	mockTx := new(MockTx)

	service := &TimeLogService{
		repo:     repo,
		tasks:    tasks,
		projects: projects,
		txm:      txm,
	}

	actor := authz.Actor{ID: "user-1", Role: entity.RoleMember}
	task := &entity.TaskEntity{
		ID:               "task-1",
		ProjectID:        "project-1",
		OriginalEstimate: 100,
	}

	tasks.On("FindTaskByID", ctx, "task-1").Return(task, (*app_errors.AppError)(nil))
	projects.On("FindProjectByID", ctx, "project-1").Return(&entity.ProjectEntity{
		ID:      "project-1",
		OwnerID: "owner-1",
	}, (*app_errors.AppError)(nil))
	projects.On("ListMemberIDs", ctx, "project-1").Return([]string{"user-1"}, (*app_errors.AppError)(nil))

	txm.On("Begin", ctx).Return(tx.Tx(mockTx), (*app_errors.AppError)(nil))
	repo.On("CreateTimeLog", ctx, mockTx, mock.AnythingOfType("*entity.TimeLogEntity")).Return(&entity.TimeLogEntity{
		ID:        "log-1",
		TaskID:    "task-1",
		UserID:    "user-1",
		TimeSpent: 90,
	}, (*app_errors.AppError)(nil))
	repo.On("SumForTask", ctx, mockTx, "task-1").Return(90, (*app_errors.AppError)(nil))
	tasks.On("UpdateTimeAggregates", ctx, mockTx, "task-1", 90, 10).Return((*app_errors.AppError)(nil))
	mockTx.On("Commit", ctx).Return((*app_errors.AppError)(nil))

	timeLog, appErr := service.CreateTimeLog(ctx, actor, "task-1", &timelog_dto.CreateTimeLogRequest{
		TimeSpent: 90,
	})

	assert.Nil(t, appErr)
	assert.NotNil(t, timeLog)
	assert.Equal(t, 90, timeLog.TimeSpent)

	repo.AssertExpectations(t)
	tasks.AssertExpectations(t)
	mockTx.AssertExpectations(t)
}

// Übersteigt die Summe die Originalschätzung, wird remaining auf 0 geklemmt.
func TestCreateTimeLog_ClampsRemainingToZero(t *testing.T) {
	ctx := context.Background()

	repo := new(MockTimeLogRepo)
	tasks := new(MockTaskRepo)
	projects := new(MockProjectRepo)
	txm := new(MockTxManager)
	mockTx := new(MockTx)

	service := &TimeLogService{
		repo:     repo,
		tasks:    tasks,
		projects: projects,
		txm:      txm,
	}

	actor := authz.Actor{ID: "user-1", Role: entity.RoleMember}
	task := &entity.TaskEntity{
		ID:               "task-1",
		ProjectID:        "project-1",
		OriginalEstimate: 100,
	}

	tasks.On("FindTaskByID", ctx, "task-1").Return(task, (*app_errors.AppError)(nil))
	projects.On("FindProjectByID", ctx, "project-1").Return(&entity.ProjectEntity{
		ID:      "project-1",
		OwnerID: "owner-1",
	}, (*app_errors.AppError)(nil))
	projects.On("ListMemberIDs", ctx, "project-1").Return([]string{"user-1"}, (*app_errors.AppError)(nil))

	txm.On("Begin", ctx).Return(tx.Tx(mockTx), (*app_errors.AppError)(nil))
	repo.On("CreateTimeLog", ctx, mockTx, mock.AnythingOfType("*entity.TimeLogEntity")).Return(&entity.TimeLogEntity{
		ID:        "log-2",
		TaskID:    "task-1",
		UserID:    "user-1",
		TimeSpent: 30,
	}, (*app_errors.AppError)(nil))
	// 90 + 30 überschreiten die Schätzung von 100
	repo.On("SumForTask", ctx, mockTx, "task-1").Return(120, (*app_errors.AppError)(nil))
	tasks.On("UpdateTimeAggregates", ctx, mockTx, "task-1", 120, 0).Return((*app_errors.AppError)(nil))
	mockTx.On("Commit", ctx).Return((*app_errors.AppError)(nil))

	_, appErr := service.CreateTimeLog(ctx, actor, "task-1", &timelog_dto.CreateTimeLogRequest{
		TimeSpent: 30,
	})

	assert.Nil(t, appErr)
	tasks.AssertExpectations(t)
}

func TestCreateTimeLog_NonMemberForbidden(t *testing.T) {
	ctx := context.Background()

	repo := new(MockTimeLogRepo)
	tasks := new(MockTaskRepo)
	projects := new(MockProjectRepo)

	service := &TimeLogService{
		repo:     repo,
		tasks:    tasks,
		projects: projects,
	}

	actor := authz.Actor{ID: "stranger", Role: entity.RoleMember}

	tasks.On("FindTaskByID", ctx, "task-1").Return(&entity.TaskEntity{
		ID:        "task-1",
		ProjectID: "project-1",
	}, (*app_errors.AppError)(nil))
	projects.On("FindProjectByID", ctx, "project-1").Return(&entity.ProjectEntity{
		ID:      "project-1",
		OwnerID: "owner-1",
	}, (*app_errors.AppError)(nil))
	projects.On("ListMemberIDs", ctx, "project-1").Return([]string{"user-1"}, (*app_errors.AppError)(nil))

	timeLog, appErr := service.CreateTimeLog(ctx, actor, "task-1", &timelog_dto.CreateTimeLogRequest{
		TimeSpent: 15,
	})

	assert.Nil(t, timeLog)
	assert.NotNil(t, appErr)
	assert.Equal(t, app_errors.ErrForbidden, appErr.Type)

	repo.AssertNotCalled(t, "CreateTimeLog", mock.Anything, mock.Anything, mock.Anything)
}
