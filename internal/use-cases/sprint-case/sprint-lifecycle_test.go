package sprint_case

import (
	"context"
	"testing"

	"github.com/DevITJAX/FlowOps/internal/abstraction/tx"
	"github.com/DevITJAX/FlowOps/internal/authz"
	sprint_dto "github.com/DevITJAX/FlowOps/internal/dtos/sprint-dto"
	"github.com/DevITJAX/FlowOps/internal/entity"
	app_errors "github.com/DevITJAX/FlowOps/internal/errors"
	"github.com/DevITJAX/FlowOps/internal/realtime"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func sprintTestFixture() (*SprintService, *MockSprintRepo, *MockTaskRepo, *MockProjectRepo, *MockActivityRepo, *MockTaskQueue, *MockTxManager, *MockTx) {
	repo := new(MockSprintRepo)
	tasks := new(MockTaskRepo)
	projects := new(MockProjectRepo)
	ar := new(MockActivityRepo)
	queue := new(MockTaskQueue)
	txm := new(MockTxManager)
	mockTx := new(MockTx)

	service := &SprintService{
		repo:      repo,
		tasks:     tasks,
		projects:  projects,
		ar:        ar,
		txm:       txm,
		taskQueue: queue,
		publisher: realtime.NoopPublisher{},
	}

	return service, repo, tasks, projects, ar, queue, txm, mockTx
}

func expectProjectScope(projects *MockProjectRepo, ctx context.Context, projectID, ownerID string, memberIDs []string) {
	projects.On("FindProjectByID", ctx, projectID).Return(&entity.ProjectEntity{
		ID:      projectID,
		OwnerID: ownerID,
	}, (*app_errors.AppError)(nil))
	projects.On("ListMemberIDs", ctx, projectID).Return(memberIDs, (*app_errors.AppError)(nil))
}

func TestStartSprint_Success(t *testing.T) {
	ctx := context.Background()
	service, repo, _, projects, ar, queue, txm, mockTx := sprintTestFixture()

	actor := authz.Actor{ID: "user-1", Role: entity.RoleMember}

	repo.On("FindSprintByID", ctx, "sprint-1").Return(&entity.SprintEntity{
		ID:        "sprint-1",
		ProjectID: "project-1",
		Name:      "Sprint 1",
		Status:    entity.SprintPlanned,
	}, (*app_errors.AppError)(nil))
	expectProjectScope(projects, ctx, "project-1", "owner-1", []string{"user-1"})

	txm.On("Begin", ctx).Return(tx.Tx(mockTx), (*app_errors.AppError)(nil))
	repo.On("ActivateSprint", ctx, mockTx, "sprint-1").Return(&entity.SprintEntity{
		ID:        "sprint-1",
		ProjectID: "project-1",
		Name:      "Sprint 1",
		Status:    entity.SprintActive,
	}, (*app_errors.AppError)(nil))
	mockTx.On("Commit", ctx).Return((*app_errors.AppError)(nil))

	queue.On("EnqueueDeliverNotification", mock.Anything).Return(nil)
	ar.On("CreateActivity", ctx, mock.AnythingOfType("*entity.ActivityEntity")).Return((*app_errors.AppError)(nil))

	started, appErr := service.StartSprint(ctx, actor, "sprint-1")

	assert.Nil(t, appErr)
	assert.Equal(t, entity.SprintActive, started.Status)

	repo.AssertExpectations(t)
	mockTx.AssertExpectations(t)
}

// Der partielle Unique-Index lässt nur einen aktiven Sprint pro Projekt zu;
// die Verletzung kommt als Conflict zurück und die Transaktion rollt zurück.
func TestStartSprint_SecondActiveConflicts(t *testing.T) {
	ctx := context.Background()
	service, repo, _, projects, _, _, txm, mockTx := sprintTestFixture()

	repo.On("FindSprintByID", ctx, "sprint-2").Return(&entity.SprintEntity{
		ID:        "sprint-2",
		ProjectID: "project-1",
		Status:    entity.SprintPlanned,
	}, (*app_errors.AppError)(nil))
	expectProjectScope(projects, ctx, "project-1", "owner-1", []string{"user-1"})

	txm.On("Begin", ctx).Return(tx.Tx(mockTx), (*app_errors.AppError)(nil))
	repo.On("ActivateSprint", ctx, mockTx, "sprint-2").Return((*entity.SprintEntity)(nil), app_errors.Conflict("sprint.already_active"))
	mockTx.On("Rollback", ctx).Return((*app_errors.AppError)(nil))

	started, appErr := service.StartSprint(ctx, authz.Actor{ID: "user-1", Role: entity.RoleMember}, "sprint-2")

	assert.Nil(t, started)
	assert.NotNil(t, appErr)
	assert.Equal(t, app_errors.ErrConflict, appErr.Type)

	mockTx.AssertCalled(t, "Rollback", ctx)
	mockTx.AssertNotCalled(t, "Commit", ctx)
}

// Abschluss setzt completedPoints aus den erledigten Story Points und
// schiebt unfertige Aufgaben auf Wunsch zurück ins Backlog.
func TestCompleteSprint_MoveToBacklog(t *testing.T) {
	ctx := context.Background()
	service, repo, tasks, projects, ar, queue, txm, mockTx := sprintTestFixture()

	repo.On("FindSprintByID", ctx, "sprint-1").Return(&entity.SprintEntity{
		ID:        "sprint-1",
		ProjectID: "project-1",
		Name:      "Sprint 1",
		Status:    entity.SprintActive,
	}, (*app_errors.AppError)(nil))
	expectProjectScope(projects, ctx, "project-1", "owner-1", []string{"user-1"})

	txm.On("Begin", ctx).Return(tx.Tx(mockTx), (*app_errors.AppError)(nil))
	tasks.On("SumDonePoints", ctx, mockTx, "sprint-1").Return(21, (*app_errors.AppError)(nil))
	repo.On("CompleteSprint", ctx, mockTx, "sprint-1", 21).Return(&entity.SprintEntity{
		ID:              "sprint-1",
		ProjectID:       "project-1",
		Name:            "Sprint 1",
		Status:          entity.SprintCompleted,
		Velocity:        21,
		CompletedPoints: 21,
	}, (*app_errors.AppError)(nil))
	tasks.On("ClearSprint", ctx, mockTx, "sprint-1", true).Return((*app_errors.AppError)(nil))
	mockTx.On("Commit", ctx).Return((*app_errors.AppError)(nil))

	queue.On("EnqueueDeliverNotification", mock.Anything).Return(nil)
	ar.On("CreateActivity", ctx, mock.AnythingOfType("*entity.ActivityEntity")).Return((*app_errors.AppError)(nil))

	completed, appErr := service.CompleteSprint(ctx, authz.Actor{ID: "user-1", Role: entity.RoleMember}, "sprint-1", &sprint_dto.CompleteSprintRequest{
		MoveToBacklog: true,
	})

	assert.Nil(t, appErr)
	assert.Equal(t, 21, completed.CompletedPoints)
	assert.Equal(t, entity.SprintCompleted, completed.Status)

	tasks.AssertCalled(t, "ClearSprint", ctx, mockTx, "sprint-1", true)
}

func TestCompleteSprint_KeepTasksInSprint(t *testing.T) {
	ctx := context.Background()
	service, repo, tasks, projects, ar, queue, txm, mockTx := sprintTestFixture()

	repo.On("FindSprintByID", ctx, "sprint-1").Return(&entity.SprintEntity{
		ID:        "sprint-1",
		ProjectID: "project-1",
		Name:      "Sprint 1",
		Status:    entity.SprintActive,
	}, (*app_errors.AppError)(nil))
	expectProjectScope(projects, ctx, "project-1", "owner-1", []string{"user-1"})

	txm.On("Begin", ctx).Return(tx.Tx(mockTx), (*app_errors.AppError)(nil))
	tasks.On("SumDonePoints", ctx, mockTx, "sprint-1").Return(8, (*app_errors.AppError)(nil))
	repo.On("CompleteSprint", ctx, mockTx, "sprint-1", 8).Return(&entity.SprintEntity{
		ID:              "sprint-1",
		ProjectID:       "project-1",
		Name:            "Sprint 1",
		Status:          entity.SprintCompleted,
		Velocity:        8,
		CompletedPoints: 8,
	}, (*app_errors.AppError)(nil))
	mockTx.On("Commit", ctx).Return((*app_errors.AppError)(nil))

	queue.On("EnqueueDeliverNotification", mock.Anything).Return(nil)
	ar.On("CreateActivity", ctx, mock.AnythingOfType("*entity.ActivityEntity")).Return((*app_errors.AppError)(nil))

	_, appErr := service.CompleteSprint(ctx, authz.Actor{ID: "user-1", Role: entity.RoleMember}, "sprint-1", &sprint_dto.CompleteSprintRequest{})

	assert.Nil(t, appErr)
	tasks.AssertNotCalled(t, "ClearSprint", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestGetVelocity_AveragesCompletedSprints(t *testing.T) {
	ctx := context.Background()
	service, repo, _, projects, _, _, _, _ := sprintTestFixture()

	expectProjectScope(projects, ctx, "project-1", "owner-1", []string{"user-1"})
	repo.On("ListCompletedSprints", ctx, "project-1", velocitySprintWindow).Return([]entity.SprintEntity{
		{ID: "s1", Name: "Sprint 1", Velocity: 10, CompletedPoints: 10},
		{ID: "s2", Name: "Sprint 2", Velocity: 14, CompletedPoints: 14},
		{ID: "s3", Name: "Sprint 3", Velocity: 12, CompletedPoints: 12},
	}, (*app_errors.AppError)(nil))

	resp, appErr := service.GetVelocity(ctx, authz.Actor{ID: "user-1", Role: entity.RoleMember}, "project-1")

	assert.Nil(t, appErr)
	assert.Len(t, resp.Sprints, 3)
	assert.InDelta(t, 12.0, resp.Average, 0.001)
}

func TestGetVelocity_NoCompletedSprints(t *testing.T) {
	ctx := context.Background()
	service, repo, _, projects, _, _, _, _ := sprintTestFixture()

	expectProjectScope(projects, ctx, "project-1", "owner-1", []string{"user-1"})
	repo.On("ListCompletedSprints", ctx, "project-1", velocitySprintWindow).Return([]entity.SprintEntity{}, (*app_errors.AppError)(nil))

	resp, appErr := service.GetVelocity(ctx, authz.Actor{ID: "user-1", Role: entity.RoleMember}, "project-1")

	assert.Nil(t, appErr)
	assert.Empty(t, resp.Sprints)
	assert.Equal(t, 0.0, resp.Average)
}

func TestDeleteSprint_MovesTasksToBacklogFirst(t *testing.T) {
	ctx := context.Background()
	service, repo, tasks, projects, ar, _, txm, mockTx := sprintTestFixture()

	actor := authz.Actor{ID: "owner-1", Role: entity.RoleMember}

	repo.On("FindSprintByID", ctx, "sprint-1").Return(&entity.SprintEntity{
		ID:        "sprint-1",
		ProjectID: "project-1",
		Name:      "Sprint 1",
		Status:    entity.SprintPlanned,
	}, (*app_errors.AppError)(nil))
	expectProjectScope(projects, ctx, "project-1", "owner-1", []string{"user-1"})

	txm.On("Begin", ctx).Return(tx.Tx(mockTx), (*app_errors.AppError)(nil))
	tasks.On("ClearSprint", ctx, mockTx, "sprint-1", false).Return((*app_errors.AppError)(nil))
	repo.On("DeleteSprint", ctx, mockTx, "sprint-1").Return((*app_errors.AppError)(nil))
	mockTx.On("Commit", ctx).Return((*app_errors.AppError)(nil))
	ar.On("CreateActivity", ctx, mock.AnythingOfType("*entity.ActivityEntity")).Return((*app_errors.AppError)(nil))

	appErr := service.DeleteSprint(ctx, actor, "sprint-1")

	assert.Nil(t, appErr)
	tasks.AssertExpectations(t)
	repo.AssertExpectations(t)
	mockTx.AssertExpectations(t)
}

// Abgeschlossene Sprints sind Teil der Velocity-Historie und damit
// unveränderlich.
func TestUpdateSprint_CompletedSprintRejected(t *testing.T) {
	ctx := context.Background()
	service, repo, _, projects, _, _, _, _ := sprintTestFixture()

	repo.On("FindSprintByID", ctx, "sprint-1").Return(&entity.SprintEntity{
		ID:        "sprint-1",
		ProjectID: "project-1",
		Status:    entity.SprintCompleted,
	}, (*app_errors.AppError)(nil))
	expectProjectScope(projects, ctx, "project-1", "owner-1", []string{"user-1"})

	actor := authz.Actor{ID: "user-1", Role: entity.RoleMember}
	name := "Sprint 1b"
	_, appErr := service.UpdateSprint(ctx, actor, "sprint-1", &sprint_dto.UpdateSprintRequest{Name: &name})

	assert.NotNil(t, appErr)
	assert.Equal(t, "sprint.already_completed", appErr.MessageKey)
	repo.AssertNotCalled(t, "UpdateSprint", mock.Anything, mock.Anything, mock.Anything)
}
