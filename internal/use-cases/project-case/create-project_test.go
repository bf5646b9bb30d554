package project_case

import (
	"context"
	"testing"

	"github.com/DevITJAX/FlowOps/internal/abstraction/tx"
	"github.com/DevITJAX/FlowOps/internal/authz"
	project_dto "github.com/DevITJAX/FlowOps/internal/dtos/project-dto"
	"github.com/DevITJAX/FlowOps/internal/entity"
	app_errors "github.com/DevITJAX/FlowOps/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newProjectService(repo *MockProjectRepo, users *MockUserRepo, ar *MockActivityRepo, txm *MockTxManager) *ProjectService {
	return &ProjectService{
		repo:  repo,
		users: users,
		ar:    ar,
		txm:   txm,
	}
}

func TestCreateProject_DerivesKeyFromName(t *testing.T) {
	ctx := context.Background()

	repo := new(MockProjectRepo)
	ar := new(MockActivityRepo)
	txm := new(MockTxManager)
	mockTx := new(MockTx)

	service := newProjectService(repo, new(MockUserRepo), ar, txm)

	repo.On("ExistsKey", ctx, "FLOW").Return(false, (*app_errors.AppError)(nil))
	txm.On("Begin", ctx).Return(tx.Tx(mockTx), (*app_errors.AppError)(nil))
	repo.On("CreateProject", ctx, mockTx, mock.MatchedBy(func(p *entity.ProjectEntity) bool {
		return p.Key == "FLOW" && p.Name == "FlowOps Project" && p.OwnerID == "user-1" && p.Status == entity.ProjectPlanned
	})).Return(&entity.ProjectEntity{
		ID:      "project-1",
		Name:    "FlowOps Project",
		Key:     "FLOW",
		OwnerID: "user-1",
	}, (*app_errors.AppError)(nil))
	mockTx.On("Commit", ctx).Return((*app_errors.AppError)(nil))
	ar.On("CreateActivity", ctx, mock.AnythingOfType("*entity.ActivityEntity")).Return((*app_errors.AppError)(nil))

	project, appErr := service.CreateProject(ctx, authz.Actor{ID: "user-1", Role: entity.RoleMember}, &project_dto.CreateProjectRequest{
		Name: "FlowOps Project",
	})

	assert.Nil(t, appErr)
	assert.Equal(t, "FLOW", project.Key)

	repo.AssertExpectations(t)
}

// Kollidiert der abgeleitete Schlüssel, wird eine laufende Nummer angehängt.
func TestCreateProject_KeyCollisionGetsSuffix(t *testing.T) {
	ctx := context.Background()

	repo := new(MockProjectRepo)
	ar := new(MockActivityRepo)
	txm := new(MockTxManager)
	mockTx := new(MockTx)

	service := newProjectService(repo, new(MockUserRepo), ar, txm)

	repo.On("ExistsKey", ctx, "FLOW").Return(true, (*app_errors.AppError)(nil))
	repo.On("ExistsKey", ctx, "FLOW1").Return(true, (*app_errors.AppError)(nil))
	repo.On("ExistsKey", ctx, "FLOW2").Return(false, (*app_errors.AppError)(nil))

	txm.On("Begin", ctx).Return(tx.Tx(mockTx), (*app_errors.AppError)(nil))
	repo.On("CreateProject", ctx, mockTx, mock.MatchedBy(func(p *entity.ProjectEntity) bool {
		return p.Key == "FLOW2"
	})).Return(&entity.ProjectEntity{
		ID:  "project-2",
		Key: "FLOW2",
	}, (*app_errors.AppError)(nil))
	mockTx.On("Commit", ctx).Return((*app_errors.AppError)(nil))
	ar.On("CreateActivity", ctx, mock.AnythingOfType("*entity.ActivityEntity")).Return((*app_errors.AppError)(nil))

	project, appErr := service.CreateProject(ctx, authz.Actor{ID: "user-1", Role: entity.RoleMember}, &project_dto.CreateProjectRequest{
		Name: "flowops two",
	})

	assert.Nil(t, appErr)
	assert.Equal(t, "FLOW2", project.Key)
}

// Ein explizit angegebener Schlüssel wird normalisiert, nicht neu abgeleitet.
func TestCreateProject_ExplicitKeyUppercased(t *testing.T) {
	ctx := context.Background()

	repo := new(MockProjectRepo)
	ar := new(MockActivityRepo)
	txm := new(MockTxManager)
	mockTx := new(MockTx)

	service := newProjectService(repo, new(MockUserRepo), ar, txm)

	explicitKey := "ops"

	txm.On("Begin", ctx).Return(tx.Tx(mockTx), (*app_errors.AppError)(nil))
	repo.On("CreateProject", ctx, mockTx, mock.MatchedBy(func(p *entity.ProjectEntity) bool {
		return p.Key == "OPS"
	})).Return(&entity.ProjectEntity{ID: "project-3", Key: "OPS"}, (*app_errors.AppError)(nil))
	mockTx.On("Commit", ctx).Return((*app_errors.AppError)(nil))
	ar.On("CreateActivity", ctx, mock.AnythingOfType("*entity.ActivityEntity")).Return((*app_errors.AppError)(nil))

	project, appErr := service.CreateProject(ctx, authz.Actor{ID: "user-1", Role: entity.RoleMember}, &project_dto.CreateProjectRequest{
		Name: "Operations",
		Key:  &explicitKey,
	})

	assert.Nil(t, appErr)
	assert.Equal(t, "OPS", project.Key)

	repo.AssertNotCalled(t, "ExistsKey", mock.Anything, mock.Anything)
}
