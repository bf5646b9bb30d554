package sprint_case

import (
	"context"
	"time"

	"github.com/DevITJAX/FlowOps/internal/abstraction/tx"
	"github.com/DevITJAX/FlowOps/internal/entity"
	app_errors "github.com/DevITJAX/FlowOps/internal/errors"
	worker_task "github.com/DevITJAX/FlowOps/internal/worker/tasks"
	"github.com/stretchr/testify/mock"
)

// MockTaskRepo und MockProjectRepo implementieren die vollen Repo-Contracts.
type MockTaskRepo struct {
	mock.Mock
}

func (m *MockTaskRepo) NextTaskSeq(ctx context.Context, t tx.Tx, projectID string) (int, *app_errors.AppError) {
	args := m.Called(ctx, t, projectID)
	return args.Int(0), args.Get(1).(*app_errors.AppError)
}

func (m *MockTaskRepo) CreateTask(ctx context.Context, t tx.Tx, task *entity.TaskEntity) (*entity.TaskEntity, *app_errors.AppError) {
	args := m.Called(ctx, t, task)
	return args.Get(0).(*entity.TaskEntity), args.Get(1).(*app_errors.AppError)
}

func (m *MockTaskRepo) FindTaskByID(ctx context.Context, taskID string) (*entity.TaskEntity, *app_errors.AppError) {
	args := m.Called(ctx, taskID)
	return args.Get(0).(*entity.TaskEntity), args.Get(1).(*app_errors.AppError)
}

func (m *MockTaskRepo) FindTaskDetail(ctx context.Context, taskID string) (*entity.TaskDetail, *app_errors.AppError) {
	args := m.Called(ctx, taskID)
	return args.Get(0).(*entity.TaskDetail), args.Get(1).(*app_errors.AppError)
}

func (m *MockTaskRepo) ListTasksByProject(ctx context.Context, projectID string, filter entity.TaskListFilter) ([]entity.TaskEntity, *app_errors.AppError) {
	args := m.Called(ctx, projectID, filter)
	return args.Get(0).([]entity.TaskEntity), args.Get(1).(*app_errors.AppError)
}

func (m *MockTaskRepo) UpdateTask(ctx context.Context, t tx.Tx, taskID string, model entity.TaskUpdate) (*entity.TaskEntity, *app_errors.AppError) {
	args := m.Called(ctx, t, taskID, model)
	return args.Get(0).(*entity.TaskEntity), args.Get(1).(*app_errors.AppError)
}

func (m *MockTaskRepo) DeleteTask(ctx context.Context, t tx.Tx, taskID string) *app_errors.AppError {
	args := m.Called(ctx, t, taskID)
	return args.Get(0).(*app_errors.AppError)
}

func (m *MockTaskRepo) SetLabels(ctx context.Context, t tx.Tx, taskID string, labelIDs []string) *app_errors.AppError {
	args := m.Called(ctx, t, taskID, labelIDs)
	return args.Get(0).(*app_errors.AppError)
}

func (m *MockTaskRepo) AddWatcher(ctx context.Context, taskID, userID string) *app_errors.AppError {
	args := m.Called(ctx, taskID, userID)
	return args.Get(0).(*app_errors.AppError)
}

func (m *MockTaskRepo) RemoveWatcher(ctx context.Context, taskID, userID string) *app_errors.AppError {
	args := m.Called(ctx, taskID, userID)
	return args.Get(0).(*app_errors.AppError)
}

func (m *MockTaskRepo) ListWatcherIDs(ctx context.Context, taskID string) ([]string, *app_errors.AppError) {
	args := m.Called(ctx, taskID)
	return args.Get(0).([]string), args.Get(1).(*app_errors.AppError)
}

func (m *MockTaskRepo) ListBacklog(ctx context.Context, projectID string) ([]entity.TaskEntity, *app_errors.AppError) {
	args := m.Called(ctx, projectID)
	return args.Get(0).([]entity.TaskEntity), args.Get(1).(*app_errors.AppError)
}

func (m *MockTaskRepo) ListBySprint(ctx context.Context, sprintID string) ([]entity.TaskEntity, *app_errors.AppError) {
	args := m.Called(ctx, sprintID)
	return args.Get(0).([]entity.TaskEntity), args.Get(1).(*app_errors.AppError)
}

func (m *MockTaskRepo) AssignTasksToSprint(ctx context.Context, t tx.Tx, projectID, sprintID string, taskIDs []string) *app_errors.AppError {
	args := m.Called(ctx, t, projectID, sprintID, taskIDs)
	return args.Get(0).(*app_errors.AppError)
}

func (m *MockTaskRepo) RemoveTasksFromSprint(ctx context.Context, t tx.Tx, sprintID string, taskIDs []string) *app_errors.AppError {
	args := m.Called(ctx, t, sprintID, taskIDs)
	return args.Get(0).(*app_errors.AppError)
}

func (m *MockTaskRepo) ClearSprint(ctx context.Context, t tx.Tx, sprintID string, onlyIncomplete bool) *app_errors.AppError {
	args := m.Called(ctx, t, sprintID, onlyIncomplete)
	return args.Get(0).(*app_errors.AppError)
}

func (m *MockTaskRepo) SumDonePoints(ctx context.Context, t tx.Tx, sprintID string) (int, *app_errors.AppError) {
	args := m.Called(ctx, t, sprintID)
	return args.Int(0), args.Get(1).(*app_errors.AppError)
}

func (m *MockTaskRepo) UpdateTimeAggregates(ctx context.Context, t tx.Tx, taskID string, timeSpent, remaining int) *app_errors.AppError {
	args := m.Called(ctx, t, taskID, timeSpent, remaining)
	return args.Get(0).(*app_errors.AppError)
}

func (m *MockTaskRepo) SearchTasks(ctx context.Context, query string, userID string, isAdmin bool, limit int) ([]entity.TaskEntity, *app_errors.AppError) {
	args := m.Called(ctx, query, userID, isAdmin, limit)
	return args.Get(0).([]entity.TaskEntity), args.Get(1).(*app_errors.AppError)
}

func (m *MockTaskRepo) ListDueSoon(ctx context.Context, within time.Duration) ([]entity.DueSoonTask, *app_errors.AppError) {
	args := m.Called(ctx, within)
	return args.Get(0).([]entity.DueSoonTask), args.Get(1).(*app_errors.AppError)
}

type MockProjectRepo struct {
	mock.Mock
}

func (m *MockProjectRepo) CreateProject(ctx context.Context, t tx.Tx, project *entity.ProjectEntity) (*entity.ProjectEntity, *app_errors.AppError) {
	args := m.Called(ctx, t, project)
	return args.Get(0).(*entity.ProjectEntity), args.Get(1).(*app_errors.AppError)
}

func (m *MockProjectRepo) FindProjectByID(ctx context.Context, projectID string) (*entity.ProjectEntity, *app_errors.AppError) {
	args := m.Called(ctx, projectID)
	return args.Get(0).(*entity.ProjectEntity), args.Get(1).(*app_errors.AppError)
}

func (m *MockProjectRepo) FindProjectDetail(ctx context.Context, projectID string) (*entity.ProjectDetail, *app_errors.AppError) {
	args := m.Called(ctx, projectID)
	return args.Get(0).(*entity.ProjectDetail), args.Get(1).(*app_errors.AppError)
}

func (m *MockProjectRepo) ListProjectsForUser(ctx context.Context, userID string, isAdmin bool) ([]entity.ProjectDetail, *app_errors.AppError) {
	args := m.Called(ctx, userID, isAdmin)
	return args.Get(0).([]entity.ProjectDetail), args.Get(1).(*app_errors.AppError)
}

func (m *MockProjectRepo) UpdateProject(ctx context.Context, t tx.Tx, projectID string, model entity.ProjectUpdate) (*entity.ProjectEntity, *app_errors.AppError) {
	args := m.Called(ctx, t, projectID, model)
	return args.Get(0).(*entity.ProjectEntity), args.Get(1).(*app_errors.AppError)
}

func (m *MockProjectRepo) DeleteProject(ctx context.Context, t tx.Tx, projectID string) *app_errors.AppError {
	args := m.Called(ctx, t, projectID)
	return args.Get(0).(*app_errors.AppError)
}

func (m *MockProjectRepo) ExistsKey(ctx context.Context, key string) (bool, *app_errors.AppError) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Get(1).(*app_errors.AppError)
}

func (m *MockProjectRepo) ListMemberIDs(ctx context.Context, projectID string) ([]string, *app_errors.AppError) {
	args := m.Called(ctx, projectID)
	return args.Get(0).([]string), args.Get(1).(*app_errors.AppError)
}

func (m *MockProjectRepo) ListMembers(ctx context.Context, projectID string) ([]entity.UserRef, *app_errors.AppError) {
	args := m.Called(ctx, projectID)
	return args.Get(0).([]entity.UserRef), args.Get(1).(*app_errors.AppError)
}

func (m *MockProjectRepo) AddMember(ctx context.Context, t tx.Tx, projectID, userID string) *app_errors.AppError {
	args := m.Called(ctx, t, projectID, userID)
	return args.Get(0).(*app_errors.AppError)
}

func (m *MockProjectRepo) RemoveMember(ctx context.Context, t tx.Tx, projectID, userID string) *app_errors.AppError {
	args := m.Called(ctx, t, projectID, userID)
	return args.Get(0).(*app_errors.AppError)
}

func (m *MockProjectRepo) ListAvailableUsers(ctx context.Context, projectID string) ([]entity.UserRef, *app_errors.AppError) {
	args := m.Called(ctx, projectID)
	return args.Get(0).([]entity.UserRef), args.Get(1).(*app_errors.AppError)
}

func (m *MockProjectRepo) UserLeadsAnyTeam(ctx context.Context, projectID, userID string) (bool, *app_errors.AppError) {
	args := m.Called(ctx, projectID, userID)
	return args.Bool(0), args.Get(1).(*app_errors.AppError)
}

func (m *MockProjectRepo) RemoveUserFromProjectTeams(ctx context.Context, t tx.Tx, projectID, userID string) *app_errors.AppError {
	args := m.Called(ctx, t, projectID, userID)
	return args.Get(0).(*app_errors.AppError)
}

func (m *MockProjectRepo) SearchProjects(ctx context.Context, query string, userID string, isAdmin bool, limit int) ([]entity.ProjectEntity, *app_errors.AppError) {
	args := m.Called(ctx, query, userID, isAdmin, limit)
	return args.Get(0).([]entity.ProjectEntity), args.Get(1).(*app_errors.AppError)
}

type MockSprintRepo struct {
	mock.Mock
}

func (m *MockSprintRepo) CreateSprint(ctx context.Context, sprint *entity.SprintEntity) (*entity.SprintEntity, *app_errors.AppError) {
	args := m.Called(ctx, sprint)
	return args.Get(0).(*entity.SprintEntity), args.Get(1).(*app_errors.AppError)
}

func (m *MockSprintRepo) FindSprintByID(ctx context.Context, sprintID string) (*entity.SprintEntity, *app_errors.AppError) {
	args := m.Called(ctx, sprintID)
	return args.Get(0).(*entity.SprintEntity), args.Get(1).(*app_errors.AppError)
}

func (m *MockSprintRepo) ListSprintsByProject(ctx context.Context, projectID string) ([]entity.SprintEntity, *app_errors.AppError) {
	args := m.Called(ctx, projectID)
	return args.Get(0).([]entity.SprintEntity), args.Get(1).(*app_errors.AppError)
}

func (m *MockSprintRepo) UpdateSprint(ctx context.Context, sprintID string, model entity.SprintUpdate) (*entity.SprintEntity, *app_errors.AppError) {
	args := m.Called(ctx, sprintID, model)
	return args.Get(0).(*entity.SprintEntity), args.Get(1).(*app_errors.AppError)
}

func (m *MockSprintRepo) DeleteSprint(ctx context.Context, t tx.Tx, sprintID string) *app_errors.AppError {
	args := m.Called(ctx, t, sprintID)
	return args.Get(0).(*app_errors.AppError)
}

func (m *MockSprintRepo) ActivateSprint(ctx context.Context, t tx.Tx, sprintID string) (*entity.SprintEntity, *app_errors.AppError) {
	args := m.Called(ctx, t, sprintID)
	return args.Get(0).(*entity.SprintEntity), args.Get(1).(*app_errors.AppError)
}

func (m *MockSprintRepo) CompleteSprint(ctx context.Context, t tx.Tx, sprintID string, completedPoints int) (*entity.SprintEntity, *app_errors.AppError) {
	args := m.Called(ctx, t, sprintID, completedPoints)
	return args.Get(0).(*entity.SprintEntity), args.Get(1).(*app_errors.AppError)
}

func (m *MockSprintRepo) GetTaskStats(ctx context.Context, sprintID string) (*entity.SprintTaskStats, *app_errors.AppError) {
	args := m.Called(ctx, sprintID)
	return args.Get(0).(*entity.SprintTaskStats), args.Get(1).(*app_errors.AppError)
}

func (m *MockSprintRepo) ListCompletedSprints(ctx context.Context, projectID string, limit int) ([]entity.SprintEntity, *app_errors.AppError) {
	args := m.Called(ctx, projectID, limit)
	return args.Get(0).([]entity.SprintEntity), args.Get(1).(*app_errors.AppError)
}

type MockActivityRepo struct {
	mock.Mock
}

func (m *MockActivityRepo) CreateActivity(ctx context.Context, activity *entity.ActivityEntity) *app_errors.AppError {
	args := m.Called(ctx, activity)
	return args.Get(0).(*app_errors.AppError)
}

func (m *MockActivityRepo) ListActivities(ctx context.Context, limit int) ([]entity.ActivityDetail, *app_errors.AppError) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]entity.ActivityDetail), args.Get(1).(*app_errors.AppError)
}

func (m *MockActivityRepo) ListActivitiesByUser(ctx context.Context, userID string, limit int) ([]entity.ActivityDetail, *app_errors.AppError) {
	args := m.Called(ctx, userID, limit)
	return args.Get(0).([]entity.ActivityDetail), args.Get(1).(*app_errors.AppError)
}

func (m *MockActivityRepo) ListActivitiesByTarget(ctx context.Context, targetType, targetID string, limit int) ([]entity.ActivityDetail, *app_errors.AppError) {
	args := m.Called(ctx, targetType, targetID, limit)
	return args.Get(0).([]entity.ActivityDetail), args.Get(1).(*app_errors.AppError)
}

type MockTaskQueue struct {
	mock.Mock
}

func (m *MockTaskQueue) EnqueueDeliverNotification(payload *worker_task.DeliverNotificationPayload) error {
	args := m.Called(payload)
	return args.Error(0)
}

func (m *MockTaskQueue) EnqueueSendPasswordResetEmail(payload *worker_task.SendPasswordResetEmailPayload) error {
	args := m.Called(payload)
	return args.Error(0)
}
