package timelog_case

import (
	"context"
	"time"

	"github.com/DevITJAX/FlowOps/internal/abstraction/tx"
	"github.com/DevITJAX/FlowOps/internal/entity"
	app_errors "github.com/DevITJAX/FlowOps/internal/errors"
	"github.com/stretchr/testify/mock"
)

type MockTimeLogRepo struct {
	mock.Mock
}

func (m *MockTimeLogRepo) CreateTimeLog(ctx context.Context, t tx.Tx, timeLog *entity.TimeLogEntity) (*entity.TimeLogEntity, *app_errors.AppError) {
	args := m.Called(ctx, t, timeLog)
	return args.Get(0).(*entity.TimeLogEntity), args.Get(1).(*app_errors.AppError)
}

func (m *MockTimeLogRepo) FindTimeLogByID(ctx context.Context, timeLogID string) (*entity.TimeLogEntity, *app_errors.AppError) {
	args := m.Called(ctx, timeLogID)
	return args.Get(0).(*entity.TimeLogEntity), args.Get(1).(*app_errors.AppError)
}

func (m *MockTimeLogRepo) ListTimeLogsByTask(ctx context.Context, taskID string) ([]entity.TimeLogDetail, *app_errors.AppError) {
	args := m.Called(ctx, taskID)
	return args.Get(0).([]entity.TimeLogDetail), args.Get(1).(*app_errors.AppError)
}

func (m *MockTimeLogRepo) UpdateTimeLog(ctx context.Context, t tx.Tx, timeLogID string, timeSpent *int, description *string, loggedAt *time.Time) (*entity.TimeLogEntity, *app_errors.AppError) {
	args := m.Called(ctx, t, timeLogID, timeSpent, description, loggedAt)
	return args.Get(0).(*entity.TimeLogEntity), args.Get(1).(*app_errors.AppError)
}

func (m *MockTimeLogRepo) DeleteTimeLog(ctx context.Context, t tx.Tx, timeLogID string) *app_errors.AppError {
	args := m.Called(ctx, t, timeLogID)
	return args.Get(0).(*app_errors.AppError)
}

func (m *MockTimeLogRepo) SumForTask(ctx context.Context, t tx.Tx, taskID string) (int, *app_errors.AppError) {
	args := m.Called(ctx, t, taskID)
	return args.Int(0), args.Get(1).(*app_errors.AppError)
}

// MockTaskRepo deckt nur die hier benutzten Methoden des Task-Repos ab,
// implementiert aber den vollen Contract.
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
