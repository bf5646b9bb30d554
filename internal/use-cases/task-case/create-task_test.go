package task_case

import (
	"context"
	"testing"

	"github.com/DevITJAX/FlowOps/internal/abstraction/tx"
	"github.com/DevITJAX/FlowOps/internal/authz"
	task_dto "github.com/DevITJAX/FlowOps/internal/dtos/task-dto"
	"github.com/DevITJAX/FlowOps/internal/entity"
	app_errors "github.com/DevITJAX/FlowOps/internal/errors"
	"github.com/DevITJAX/FlowOps/internal/realtime"
	worker_task "github.com/DevITJAX/FlowOps/internal/worker/tasks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func taskTestFixture() (*TaskService, *MockTaskRepo, *MockProjectRepo, *MockSprintRepo, *MockLabelRepo, *MockActivityRepo, *MockTaskQueue, *MockTxManager, *MockTx) {
	repo := new(MockTaskRepo)
	projects := new(MockProjectRepo)
	sprints := new(MockSprintRepo)
	labels := new(MockLabelRepo)
	ar := new(MockActivityRepo)
	queue := new(MockTaskQueue)
	txm := new(MockTxManager)
	mockTx := new(MockTx)

	service := &TaskService{
		repo:      repo,
		projects:  projects,
		sprints:   sprints,
		labels:    labels,
		ar:        ar,
		txm:       txm,
		taskQueue: queue,
		publisher: realtime.NoopPublisher{},
	}

	return service, repo, projects, sprints, labels, ar, queue, txm, mockTx
}

func expectTaskProjectScope(projects *MockProjectRepo, ctx context.Context, projectID, name, ownerID string, memberIDs []string) {
	projects.On("FindProjectByID", ctx, projectID).Return(&entity.ProjectEntity{
		ID:      projectID,
		Name:    name,
		Key:     "FLOW",
		OwnerID: ownerID,
	}, (*app_errors.AppError)(nil))
	projects.On("ListMemberIDs", ctx, projectID).Return(memberIDs, (*app_errors.AppError)(nil))
}

func TestCreateTask_DerivesKeyAndDefaults(t *testing.T) {
	ctx := context.Background()
	service, repo, projects, _, _, ar, _, txm, mockTx := taskTestFixture()

	actor := authz.Actor{ID: "user-1", Role: entity.RoleMember}
	expectTaskProjectScope(projects, ctx, "project-1", "FlowOps", "owner-1", []string{"user-1"})

	estimate := 120
	txm.On("Begin", ctx).Return(tx.Tx(mockTx), (*app_errors.AppError)(nil))
	repo.On("NextTaskSeq", ctx, mockTx, "project-1").Return(1, (*app_errors.AppError)(nil))
	repo.On("CreateTask", ctx, mockTx, mock.MatchedBy(func(task *entity.TaskEntity) bool {
		return task.TaskKey == "FLOW-1" &&
			task.Type == entity.TypeTask &&
			task.Status == entity.TaskTodo &&
			task.Priority == entity.PriorityMedium &&
			task.OriginalEstimate == 120 &&
			task.RemainingEstimate == 120 &&
			task.ReporterID == "user-1"
	})).Return(&entity.TaskEntity{
		ID:        "task-1",
		ProjectID: "project-1",
		TaskKey:   "FLOW-1",
		Title:     "Login-Formular bauen",
	}, (*app_errors.AppError)(nil))
	mockTx.On("Commit", ctx).Return((*app_errors.AppError)(nil))
	ar.On("CreateActivity", ctx, mock.AnythingOfType("*entity.ActivityEntity")).Return((*app_errors.AppError)(nil))

	task, appErr := service.CreateTask(ctx, actor, "project-1", &task_dto.CreateTaskRequest{
		Title:            "Login-Formular bauen",
		OriginalEstimate: &estimate,
	})

	assert.Nil(t, appErr)
	assert.Equal(t, "FLOW-1", task.TaskKey)

	repo.AssertNotCalled(t, "SetLabels", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	repo.AssertExpectations(t)
	mockTx.AssertExpectations(t)
}

func TestCreateTask_SetsLabelsAndNotifiesAssignee(t *testing.T) {
	ctx := context.Background()
	service, repo, projects, _, labels, ar, queue, txm, mockTx := taskTestFixture()

	actor := authz.Actor{ID: "user-1", Role: entity.RoleMember}
	expectTaskProjectScope(projects, ctx, "project-1", "FlowOps", "owner-1", []string{"user-1", "user-2"})

	assignee := "user-2"
	labelIDs := []string{"label-1", "label-2"}
	labels.On("CountLabelsInProject", ctx, "project-1", labelIDs).Return(2, (*app_errors.AppError)(nil))

	txm.On("Begin", ctx).Return(tx.Tx(mockTx), (*app_errors.AppError)(nil))
	repo.On("NextTaskSeq", ctx, mockTx, "project-1").Return(7, (*app_errors.AppError)(nil))
	repo.On("CreateTask", ctx, mockTx, mock.Anything).Return(&entity.TaskEntity{
		ID:         "task-7",
		ProjectID:  "project-1",
		TaskKey:    "FLOW-7",
		Title:      "Review",
		AssigneeID: &assignee,
	}, (*app_errors.AppError)(nil))
	repo.On("SetLabels", ctx, mockTx, "task-7", labelIDs).Return((*app_errors.AppError)(nil))
	mockTx.On("Commit", ctx).Return((*app_errors.AppError)(nil))

	queue.On("EnqueueDeliverNotification", mock.MatchedBy(func(p *worker_task.DeliverNotificationPayload) bool {
		return len(p.RecipientIDs) == 1 && p.RecipientIDs[0] == "user-2" && p.Type == string(entity.NotifyAssigned)
	})).Return(nil)
	ar.On("CreateActivity", ctx, mock.AnythingOfType("*entity.ActivityEntity")).Return((*app_errors.AppError)(nil))

	_, appErr := service.CreateTask(ctx, actor, "project-1", &task_dto.CreateTaskRequest{
		Title:      "Review",
		AssigneeID: &assignee,
		LabelIDs:   labelIDs,
	})

	assert.Nil(t, appErr)

	repo.AssertExpectations(t)
	queue.AssertExpectations(t)
	mockTx.AssertExpectations(t)
}

func TestCreateTask_SelfAssignedSkipsNotification(t *testing.T) {
	ctx := context.Background()
	service, repo, projects, _, _, ar, queue, txm, mockTx := taskTestFixture()

	actor := authz.Actor{ID: "user-1", Role: entity.RoleMember}
	expectTaskProjectScope(projects, ctx, "project-1", "FlowOps", "owner-1", []string{"user-1"})

	assignee := "user-1"
	txm.On("Begin", ctx).Return(tx.Tx(mockTx), (*app_errors.AppError)(nil))
	repo.On("NextTaskSeq", ctx, mockTx, "project-1").Return(2, (*app_errors.AppError)(nil))
	repo.On("CreateTask", ctx, mockTx, mock.Anything).Return(&entity.TaskEntity{
		ID:         "task-2",
		ProjectID:  "project-1",
		TaskKey:    "FLOW-2",
		AssigneeID: &assignee,
	}, (*app_errors.AppError)(nil))
	mockTx.On("Commit", ctx).Return((*app_errors.AppError)(nil))
	ar.On("CreateActivity", ctx, mock.AnythingOfType("*entity.ActivityEntity")).Return((*app_errors.AppError)(nil))

	_, appErr := service.CreateTask(ctx, actor, "project-1", &task_dto.CreateTaskRequest{
		Title:      "Eigenes Ticket",
		AssigneeID: &assignee,
	})

	assert.Nil(t, appErr)
	queue.AssertNotCalled(t, "EnqueueDeliverNotification", mock.Anything)
}

func TestCreateTask_AssigneeNotMember(t *testing.T) {
	ctx := context.Background()
	service, _, projects, _, _, _, _, txm, _ := taskTestFixture()

	actor := authz.Actor{ID: "user-1", Role: entity.RoleMember}
	expectTaskProjectScope(projects, ctx, "project-1", "FlowOps", "owner-1", []string{"user-1"})

	outsider := "user-99"
	_, appErr := service.CreateTask(ctx, actor, "project-1", &task_dto.CreateTaskRequest{
		Title:      "Fremdzuweisung",
		AssigneeID: &outsider,
	})

	assert.NotNil(t, appErr)
	assert.Equal(t, "task.assignee_not_member", appErr.MessageKey)
	txm.AssertNotCalled(t, "Begin", mock.Anything)
}

func TestCreateTask_SprintFromOtherProject(t *testing.T) {
	ctx := context.Background()
	service, _, projects, sprints, _, _, _, txm, _ := taskTestFixture()

	actor := authz.Actor{ID: "user-1", Role: entity.RoleMember}
	expectTaskProjectScope(projects, ctx, "project-1", "FlowOps", "owner-1", []string{"user-1"})

	sprintID := "sprint-9"
	sprints.On("FindSprintByID", ctx, sprintID).Return(&entity.SprintEntity{
		ID:        sprintID,
		ProjectID: "project-2",
	}, (*app_errors.AppError)(nil))

	_, appErr := service.CreateTask(ctx, actor, "project-1", &task_dto.CreateTaskRequest{
		Title:    "Falscher Sprint",
		SprintID: &sprintID,
	})

	assert.NotNil(t, appErr)
	assert.Equal(t, "sprint.not_in_project", appErr.MessageKey)
	txm.AssertNotCalled(t, "Begin", mock.Anything)
}

func TestCreateTask_LabelOutsideProject(t *testing.T) {
	ctx := context.Background()
	service, _, projects, _, labels, _, _, txm, _ := taskTestFixture()

	actor := authz.Actor{ID: "user-1", Role: entity.RoleMember}
	expectTaskProjectScope(projects, ctx, "project-1", "FlowOps", "owner-1", []string{"user-1"})

	labelIDs := []string{"label-1", "label-x"}
	labels.On("CountLabelsInProject", ctx, "project-1", labelIDs).Return(1, (*app_errors.AppError)(nil))

	_, appErr := service.CreateTask(ctx, actor, "project-1", &task_dto.CreateTaskRequest{
		Title:    "Mit fremdem Label",
		LabelIDs: labelIDs,
	})

	assert.NotNil(t, appErr)
	assert.Equal(t, "label.not_in_project", appErr.MessageKey)
	txm.AssertNotCalled(t, "Begin", mock.Anything)
}

func TestCreateTask_NonParticipantForbidden(t *testing.T) {
	ctx := context.Background()
	service, repo, projects, _, _, _, _, _, _ := taskTestFixture()

	actor := authz.Actor{ID: "user-9", Role: entity.RoleMember}
	expectTaskProjectScope(projects, ctx, "project-1", "FlowOps", "owner-1", []string{"user-1"})

	_, appErr := service.CreateTask(ctx, actor, "project-1", &task_dto.CreateTaskRequest{Title: "Verboten"})

	assert.NotNil(t, appErr)
	assert.Equal(t, app_errors.ErrForbidden, appErr.Type)
	repo.AssertNotCalled(t, "CreateTask", mock.Anything, mock.Anything, mock.Anything)
}
