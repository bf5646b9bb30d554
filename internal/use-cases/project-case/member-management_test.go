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

func TestRemoveMember_OwnerRejected(t *testing.T) {
	ctx := context.Background()

	repo := new(MockProjectRepo)
	service := newProjectService(repo, new(MockUserRepo), new(MockActivityRepo), new(MockTxManager))

	repo.On("FindProjectByID", ctx, "project-1").Return(&entity.ProjectEntity{
		ID:      "project-1",
		OwnerID: "owner-1",
	}, (*app_errors.AppError)(nil))
	repo.On("ListMemberIDs", ctx, "project-1").Return([]string{"user-1"}, (*app_errors.AppError)(nil))

	appErr := service.RemoveMember(ctx, authz.Actor{ID: "owner-1", Role: entity.RoleMember}, "project-1", "owner-1")

	assert.NotNil(t, appErr)
	assert.Equal(t, "project.cannot_remove_owner", appErr.MessageKey)

	repo.AssertNotCalled(t, "RemoveMember", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// Wer noch ein Team im Projekt leitet, kann nicht entfernt werden.
func TestRemoveMember_TeamLeadConflict(t *testing.T) {
	ctx := context.Background()

	repo := new(MockProjectRepo)
	service := newProjectService(repo, new(MockUserRepo), new(MockActivityRepo), new(MockTxManager))

	repo.On("FindProjectByID", ctx, "project-1").Return(&entity.ProjectEntity{
		ID:      "project-1",
		OwnerID: "owner-1",
	}, (*app_errors.AppError)(nil))
	repo.On("ListMemberIDs", ctx, "project-1").Return([]string{"user-1"}, (*app_errors.AppError)(nil))
	repo.On("UserLeadsAnyTeam", ctx, "project-1", "user-1").Return(true, (*app_errors.AppError)(nil))

	appErr := service.RemoveMember(ctx, authz.Actor{ID: "owner-1", Role: entity.RoleMember}, "project-1", "user-1")

	assert.NotNil(t, appErr)
	assert.Equal(t, app_errors.ErrConflict, appErr.Type)
	assert.Equal(t, "project.member_leads_team", appErr.MessageKey)
}

// Das Entfernen räumt in derselben Transaktion auch alle
// Team-Mitgliedschaften des Benutzers im Projekt ab.
func TestRemoveMember_CascadesTeamMemberships(t *testing.T) {
	ctx := context.Background()

	repo := new(MockProjectRepo)
	ar := new(MockActivityRepo)
	txm := new(MockTxManager)
	mockTx := new(MockTx)

	service := newProjectService(repo, new(MockUserRepo), ar, txm)

	repo.On("FindProjectByID", ctx, "project-1").Return(&entity.ProjectEntity{
		ID:      "project-1",
		OwnerID: "owner-1",
	}, (*app_errors.AppError)(nil))
	repo.On("ListMemberIDs", ctx, "project-1").Return([]string{"user-1"}, (*app_errors.AppError)(nil))
	repo.On("UserLeadsAnyTeam", ctx, "project-1", "user-1").Return(false, (*app_errors.AppError)(nil))

	txm.On("Begin", ctx).Return(tx.Tx(mockTx), (*app_errors.AppError)(nil))
	repo.On("RemoveUserFromProjectTeams", ctx, mockTx, "project-1", "user-1").Return((*app_errors.AppError)(nil))
	repo.On("RemoveMember", ctx, mockTx, "project-1", "user-1").Return((*app_errors.AppError)(nil))
	mockTx.On("Commit", ctx).Return((*app_errors.AppError)(nil))
	ar.On("CreateActivity", ctx, mock.AnythingOfType("*entity.ActivityEntity")).Return((*app_errors.AppError)(nil))

	appErr := service.RemoveMember(ctx, authz.Actor{ID: "owner-1", Role: entity.RoleMember}, "project-1", "user-1")

	assert.Nil(t, appErr)
	repo.AssertExpectations(t)
	mockTx.AssertExpectations(t)
}

func TestAddMember_OwnerIsImplicitMember(t *testing.T) {
	ctx := context.Background()

	repo := new(MockProjectRepo)
	users := new(MockUserRepo)
	service := newProjectService(repo, users, new(MockActivityRepo), new(MockTxManager))

	repo.On("FindProjectByID", ctx, "project-1").Return(&entity.ProjectEntity{
		ID:      "project-1",
		OwnerID: "owner-1",
	}, (*app_errors.AppError)(nil))
	repo.On("ListMemberIDs", ctx, "project-1").Return([]string{}, (*app_errors.AppError)(nil))
	users.On("FindByID", ctx, "owner-1").Return(&entity.UserEntity{
		ID:       "owner-1",
		IsActive: true,
	}, (*app_errors.AppError)(nil))

	appErr := service.AddMember(ctx, authz.Actor{ID: "owner-1", Role: entity.RoleMember}, "project-1", &project_dto.AddMemberRequest{
		UserID: "owner-1",
	})

	assert.NotNil(t, appErr)
	assert.Equal(t, "project.owner_is_implicit_member", appErr.MessageKey)
}

func TestAddMember_InactiveUserRejected(t *testing.T) {
	ctx := context.Background()

	repo := new(MockProjectRepo)
	users := new(MockUserRepo)
	service := newProjectService(repo, users, new(MockActivityRepo), new(MockTxManager))

	repo.On("FindProjectByID", ctx, "project-1").Return(&entity.ProjectEntity{
		ID:      "project-1",
		OwnerID: "owner-1",
	}, (*app_errors.AppError)(nil))
	repo.On("ListMemberIDs", ctx, "project-1").Return([]string{}, (*app_errors.AppError)(nil))
	users.On("FindByID", ctx, "user-9").Return(&entity.UserEntity{
		ID:       "user-9",
		IsActive: false,
	}, (*app_errors.AppError)(nil))

	appErr := service.AddMember(ctx, authz.Actor{ID: "owner-1", Role: entity.RoleMember}, "project-1", &project_dto.AddMemberRequest{
		UserID: "user-9",
	})

	assert.NotNil(t, appErr)
	assert.Equal(t, "user.inactive", appErr.MessageKey)
}

// Nur Admin und Owner verwalten Mitglieder, normale Mitglieder nicht.
func TestAddMember_MemberForbidden(t *testing.T) {
	ctx := context.Background()

	repo := new(MockProjectRepo)
	service := newProjectService(repo, new(MockUserRepo), new(MockActivityRepo), new(MockTxManager))

	repo.On("FindProjectByID", ctx, "project-1").Return(&entity.ProjectEntity{
		ID:      "project-1",
		OwnerID: "owner-1",
	}, (*app_errors.AppError)(nil))
	repo.On("ListMemberIDs", ctx, "project-1").Return([]string{"user-1"}, (*app_errors.AppError)(nil))

	appErr := service.AddMember(ctx, authz.Actor{ID: "user-1", Role: entity.RoleMember}, "project-1", &project_dto.AddMemberRequest{
		UserID: "user-2",
	})

	assert.NotNil(t, appErr)
	assert.Equal(t, app_errors.ErrForbidden, appErr.Type)
}
