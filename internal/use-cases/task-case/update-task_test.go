package task_case

import (
	"context"
	"testing"

	"github.com/DevITJAX/FlowOps/internal/abstraction/tx"
	"github.com/DevITJAX/FlowOps/internal/authz"
	task_dto "github.com/DevITJAX/FlowOps/internal/dtos/task-dto"
	"github.com/DevITJAX/FlowOps/internal/entity"
	app_errors "github.com/DevITJAX/FlowOps/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestUpdateTask_ParentIsSelf(t *testing.T) {
	ctx := context.Background()
	service, repo, projects, _, _, _, _, txm, _ := taskTestFixture()

	actor := authz.Actor{ID: "user-1", Role: entity.RoleMember}
	reporter := "user-1"
	repo.On("FindTaskByID", ctx, "task-1").Return(&entity.TaskEntity{
		ID:         "task-1",
		ProjectID:  "project-1",
		TaskKey:    "FLOW-1",
		ReporterID: reporter,
	}, (*app_errors.AppError)(nil))
	expectTaskProjectScope(projects, ctx, "project-1", "FlowOps", "owner-1", []string{"user-1"})

	parent := "task-1"
	_, appErr := service.UpdateTask(ctx, actor, "task-1", &task_dto.UpdateTaskRequest{ParentID: &parent})

	assert.NotNil(t, appErr)
	assert.Equal(t, "task.parent_is_self", appErr.MessageKey)
	txm.AssertNotCalled(t, "Begin", mock.Anything)
}

func TestUpdateTask_PlainMemberForbidden(t *testing.T) {
	ctx := context.Background()
	service, repo, projects, _, _, _, _, _, _ := taskTestFixture()

	actor := authz.Actor{ID: "user-3", Role: entity.RoleMember}
	assignee := "user-1"
	repo.On("FindTaskByID", ctx, "task-1").Return(&entity.TaskEntity{
		ID:         "task-1",
		ProjectID:  "project-1",
		AssigneeID: &assignee,
		ReporterID: "user-2",
	}, (*app_errors.AppError)(nil))
	expectTaskProjectScope(projects, ctx, "project-1", "FlowOps", "owner-1", []string{"user-1", "user-2", "user-3"})

	title := "Neuer Titel"
	_, appErr := service.UpdateTask(ctx, actor, "task-1", &task_dto.UpdateTaskRequest{Title: &title})

	assert.NotNil(t, appErr)
	assert.Equal(t, app_errors.ErrForbidden, appErr.Type)
	repo.AssertNotCalled(t, "UpdateTask", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateTask_StatusChangeNotifiesWatchers(t *testing.T) {
	ctx := context.Background()
	service, repo, projects, _, _, ar, queue, txm, mockTx := taskTestFixture()

	actor := authz.Actor{ID: "user-1", Role: entity.RoleMember}
	repo.On("FindTaskByID", ctx, "task-1").Return(&entity.TaskEntity{
		ID:         "task-1",
		ProjectID:  "project-1",
		TaskKey:    "FLOW-1",
		Status:     entity.TaskTodo,
		ReporterID: "user-1",
	}, (*app_errors.AppError)(nil))
	expectTaskProjectScope(projects, ctx, "project-1", "FlowOps", "owner-1", []string{"user-1", "user-2"})

	txm.On("Begin", ctx).Return(tx.Tx(mockTx), (*app_errors.AppError)(nil))
	repo.On("UpdateTask", ctx, mockTx, "task-1", mock.MatchedBy(func(u entity.TaskUpdate) bool {
		return u.Status != nil && *u.Status == entity.TaskDoing
	})).Return(&entity.TaskEntity{
		ID:         "task-1",
		ProjectID:  "project-1",
		TaskKey:    "FLOW-1",
		Status:     entity.TaskDoing,
		ReporterID: "user-1",
	}, (*app_errors.AppError)(nil))
	mockTx.On("Commit", ctx).Return((*app_errors.AppError)(nil))

	repo.On("ListWatcherIDs", ctx, "task-1").Return([]string{"user-2"}, (*app_errors.AppError)(nil))
	queue.On("EnqueueDeliverNotification", mock.Anything).Return(nil)
	ar.On("CreateActivity", ctx, mock.AnythingOfType("*entity.ActivityEntity")).Return((*app_errors.AppError)(nil))

	status := string(entity.TaskDoing)
	updated, appErr := service.UpdateTask(ctx, actor, "task-1", &task_dto.UpdateTaskRequest{Status: &status})

	assert.Nil(t, appErr)
	assert.Equal(t, entity.TaskDoing, updated.Status)

	repo.AssertExpectations(t)
	queue.AssertExpectations(t)
	mockTx.AssertExpectations(t)
}
