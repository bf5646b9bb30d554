package project_case

import (
	"context"
	"time"

	"github.com/DevITJAX/FlowOps/internal/abstraction/tx"
	"github.com/DevITJAX/FlowOps/internal/entity"
	app_errors "github.com/DevITJAX/FlowOps/internal/errors"
	"github.com/stretchr/testify/mock"
)

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

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) CreateUser(ctx context.Context, t tx.Tx, user *entity.UserEntity) (*entity.UserEntity, *app_errors.AppError) {
	args := m.Called(ctx, t, user)
	return args.Get(0).(*entity.UserEntity), args.Get(1).(*app_errors.AppError)
}

func (m *MockUserRepo) FindByID(ctx context.Context, userID string) (*entity.UserEntity, *app_errors.AppError) {
	args := m.Called(ctx, userID)
	return args.Get(0).(*entity.UserEntity), args.Get(1).(*app_errors.AppError)
}

func (m *MockUserRepo) FindByEmail(ctx context.Context, email string) (*entity.UserEntity, *app_errors.AppError) {
	args := m.Called(ctx, email)
	return args.Get(0).(*entity.UserEntity), args.Get(1).(*app_errors.AppError)
}

func (m *MockUserRepo) UpdateProfile(ctx context.Context, t tx.Tx, userID string, name, email *string) (*entity.UserEntity, *app_errors.AppError) {
	args := m.Called(ctx, t, userID, name, email)
	return args.Get(0).(*entity.UserEntity), args.Get(1).(*app_errors.AppError)
}

func (m *MockUserRepo) UpdatePassword(ctx context.Context, userID string, passwordHash string) *app_errors.AppError {
	args := m.Called(ctx, userID, passwordHash)
	return args.Get(0).(*app_errors.AppError)
}

func (m *MockUserRepo) SetResetToken(ctx context.Context, userID string, tokenHash string, expires time.Time) *app_errors.AppError {
	args := m.Called(ctx, userID, tokenHash, expires)
	return args.Get(0).(*app_errors.AppError)
}

func (m *MockUserRepo) FindByResetTokenHash(ctx context.Context, tokenHash string) (*entity.UserEntity, *app_errors.AppError) {
	args := m.Called(ctx, tokenHash)
	return args.Get(0).(*entity.UserEntity), args.Get(1).(*app_errors.AppError)
}

func (m *MockUserRepo) ResetPassword(ctx context.Context, t tx.Tx, userID string, passwordHash string) *app_errors.AppError {
	args := m.Called(ctx, t, userID, passwordHash)
	return args.Get(0).(*app_errors.AppError)
}

func (m *MockUserRepo) SetRefreshToken(ctx context.Context, userID string, refreshToken *string) *app_errors.AppError {
	args := m.Called(ctx, userID, refreshToken)
	return args.Get(0).(*app_errors.AppError)
}

func (m *MockUserRepo) ListRefsByIDs(ctx context.Context, userIDs []string) ([]entity.UserRef, *app_errors.AppError) {
	args := m.Called(ctx, userIDs)
	return args.Get(0).([]entity.UserRef), args.Get(1).(*app_errors.AppError)
}

func (m *MockUserRepo) SearchUsers(ctx context.Context, query string, limit int) ([]entity.UserRef, *app_errors.AppError) {
	args := m.Called(ctx, query, limit)
	return args.Get(0).([]entity.UserRef), args.Get(1).(*app_errors.AppError)
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
