package team_case

import (
	"context"
	"testing"

	"github.com/DevITJAX/FlowOps/internal/abstraction/tx"
	"github.com/DevITJAX/FlowOps/internal/authz"
	team_dto "github.com/DevITJAX/FlowOps/internal/dtos/team-dto"
	"github.com/DevITJAX/FlowOps/internal/entity"
	app_errors "github.com/DevITJAX/FlowOps/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func teamTestFixture() (*TeamService, *MockTeamRepo, *MockProjectRepo, *MockUserRepo, *MockActivityRepo, *MockTxManager, *MockTx) {
	repo := new(MockTeamRepo)
	projects := new(MockProjectRepo)
	users := new(MockUserRepo)
	ar := new(MockActivityRepo)
	txm := new(MockTxManager)
	mockTx := new(MockTx)

	service := &TeamService{
		repo:     repo,
		projects: projects,
		users:    users,
		ar:       ar,
		txm:      txm,
	}

	return service, repo, projects, users, ar, txm, mockTx
}

func expectTeamScope(repo *MockTeamRepo, projects *MockProjectRepo, ctx context.Context, team *entity.TeamEntity, ownerID string, memberIDs []string) {
	repo.On("FindTeamByID", ctx, team.ID).Return(team, (*app_errors.AppError)(nil))
	projects.On("FindProjectByID", ctx, team.ProjectID).Return(&entity.ProjectEntity{
		ID:      team.ProjectID,
		OwnerID: ownerID,
	}, (*app_errors.AppError)(nil))
	projects.On("ListMemberIDs", ctx, team.ProjectID).Return(memberIDs, (*app_errors.AppError)(nil))
}

// Wer einem Team beitritt, wird in derselben Transaktion auch
// Projektmitglied.
func TestAddTeamMember_UnionsProjectMembership(t *testing.T) {
	ctx := context.Background()
	service, repo, projects, users, ar, txm, mockTx := teamTestFixture()

	team := &entity.TeamEntity{
		ID:        "team-1",
		ProjectID: "project-1",
	}
	expectTeamScope(repo, projects, ctx, team, "owner-1", []string{"user-1"})

	users.On("FindByID", ctx, "user-2").Return(&entity.UserEntity{
		ID:       "user-2",
		IsActive: true,
	}, (*app_errors.AppError)(nil))

	txm.On("Begin", ctx).Return(tx.Tx(mockTx), (*app_errors.AppError)(nil))
	repo.On("AddTeamMember", ctx, mockTx, "team-1", "user-2", entity.TeamRoleMember).Return((*app_errors.AppError)(nil))
	projects.On("AddMember", ctx, mockTx, "project-1", "user-2").Return((*app_errors.AppError)(nil))
	mockTx.On("Commit", ctx).Return((*app_errors.AppError)(nil))
	ar.On("CreateActivity", ctx, mock.AnythingOfType("*entity.ActivityEntity")).Return((*app_errors.AppError)(nil))

	appErr := service.AddMember(ctx, authz.Actor{ID: "owner-1", Role: entity.RoleMember}, "team-1", &team_dto.AddTeamMemberRequest{
		UserID: "user-2",
	})

	assert.Nil(t, appErr)
	projects.AssertCalled(t, "AddMember", ctx, mockTx, "project-1", "user-2")
}

// Der Projekt-Owner ist implizit beteiligt und landet nie in der
// Projektmitgliederliste.
func TestAddTeamMember_OwnerNotAddedToProjectMembers(t *testing.T) {
	ctx := context.Background()
	service, repo, projects, users, ar, txm, mockTx := teamTestFixture()

	team := &entity.TeamEntity{
		ID:        "team-1",
		ProjectID: "project-1",
	}
	expectTeamScope(repo, projects, ctx, team, "owner-1", []string{"user-1"})

	users.On("FindByID", ctx, "owner-1").Return(&entity.UserEntity{
		ID:       "owner-1",
		IsActive: true,
	}, (*app_errors.AppError)(nil))

	txm.On("Begin", ctx).Return(tx.Tx(mockTx), (*app_errors.AppError)(nil))
	repo.On("AddTeamMember", ctx, mockTx, "team-1", "owner-1", entity.TeamRoleMember).Return((*app_errors.AppError)(nil))
	mockTx.On("Commit", ctx).Return((*app_errors.AppError)(nil))
	ar.On("CreateActivity", ctx, mock.AnythingOfType("*entity.ActivityEntity")).Return((*app_errors.AppError)(nil))

	appErr := service.AddMember(ctx, authz.Actor{ID: "owner-1", Role: entity.RoleMember}, "team-1", &team_dto.AddTeamMemberRequest{
		UserID: "owner-1",
	})

	assert.Nil(t, appErr)
	projects.AssertNotCalled(t, "AddMember", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// Die aktuelle Teamleitung kann nicht über die Mitgliederverwaltung
// entfernt werden.
func TestRemoveTeamMember_LeadRejected(t *testing.T) {
	ctx := context.Background()
	service, repo, projects, _, _, _, _ := teamTestFixture()

	lead := "lead-1"
	team := &entity.TeamEntity{
		ID:        "team-1",
		ProjectID: "project-1",
		LeadID:    &lead,
	}
	expectTeamScope(repo, projects, ctx, team, "owner-1", []string{"lead-1"})

	appErr := service.RemoveMember(ctx, authz.Actor{ID: "owner-1", Role: entity.RoleMember}, "team-1", "lead-1")

	assert.NotNil(t, appErr)
	assert.Equal(t, app_errors.ErrConflict, appErr.Type)
	assert.Equal(t, "team.cannot_remove_lead", appErr.MessageKey)

	repo.AssertNotCalled(t, "RemoveTeamMember", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// Der Teamaustritt lässt die Projektmitgliedschaft unberührt.
func TestRemoveTeamMember_KeepsProjectMembership(t *testing.T) {
	ctx := context.Background()
	service, repo, projects, _, ar, txm, mockTx := teamTestFixture()

	team := &entity.TeamEntity{
		ID:        "team-1",
		ProjectID: "project-1",
	}
	expectTeamScope(repo, projects, ctx, team, "owner-1", []string{"user-2"})

	repo.On("IsTeamMember", ctx, "team-1", "user-2").Return(true, (*app_errors.AppError)(nil))
	txm.On("Begin", ctx).Return(tx.Tx(mockTx), (*app_errors.AppError)(nil))
	repo.On("RemoveTeamMember", ctx, mockTx, "team-1", "user-2").Return((*app_errors.AppError)(nil))
	mockTx.On("Commit", ctx).Return((*app_errors.AppError)(nil))
	ar.On("CreateActivity", ctx, mock.AnythingOfType("*entity.ActivityEntity")).Return((*app_errors.AppError)(nil))

	appErr := service.RemoveMember(ctx, authz.Actor{ID: "owner-1", Role: entity.RoleMember}, "team-1", "user-2")

	assert.Nil(t, appErr)
	projects.AssertNotCalled(t, "RemoveMember", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateTeam_LeadMustBeParticipant(t *testing.T) {
	ctx := context.Background()
	service, _, projects, _, _, _, _ := teamTestFixture()

	projects.On("FindProjectByID", ctx, "project-1").Return(&entity.ProjectEntity{
		ID:      "project-1",
		OwnerID: "owner-1",
	}, (*app_errors.AppError)(nil))
	projects.On("ListMemberIDs", ctx, "project-1").Return([]string{"user-1"}, (*app_errors.AppError)(nil))

	outsider := "stranger"
	team, appErr := service.CreateTeam(ctx, authz.Actor{ID: "owner-1", Role: entity.RoleMember}, "project-1", &team_dto.CreateTeamRequest{
		Name:   "Backend",
		LeadID: &outsider,
	})

	assert.Nil(t, team)
	assert.NotNil(t, appErr)
	assert.Equal(t, "team.lead_not_member", appErr.MessageKey)
}

// Die Teamleitung wird beim Anlegen sofort Mitglied des eigenen Teams.
func TestCreateTeam_LeadAutoEnrolled(t *testing.T) {
	ctx := context.Background()
	service, repo, projects, _, ar, txm, mockTx := teamTestFixture()

	projects.On("FindProjectByID", ctx, "project-1").Return(&entity.ProjectEntity{
		ID:      "project-1",
		OwnerID: "owner-1",
	}, (*app_errors.AppError)(nil))
	projects.On("ListMemberIDs", ctx, "project-1").Return([]string{"lead-1"}, (*app_errors.AppError)(nil))

	lead := "lead-1"
	repo.On("CreateTeam", ctx, mock.MatchedBy(func(team *entity.TeamEntity) bool {
		return team.Name == "Backend" && team.LeadID != nil && *team.LeadID == "lead-1" && team.Color == defaultTeamColor
	})).Return(&entity.TeamEntity{
		ID:        "team-1",
		ProjectID: "project-1",
		Name:      "Backend",
		LeadID:    &lead,
	}, (*app_errors.AppError)(nil))

	txm.On("Begin", ctx).Return(tx.Tx(mockTx), (*app_errors.AppError)(nil))
	repo.On("AddTeamMember", ctx, mockTx, "team-1", "lead-1", entity.TeamLead).Return((*app_errors.AppError)(nil))
	projects.On("AddMember", ctx, mockTx, "project-1", "lead-1").Return((*app_errors.AppError)(nil))
	mockTx.On("Commit", ctx).Return((*app_errors.AppError)(nil))
	ar.On("CreateActivity", ctx, mock.AnythingOfType("*entity.ActivityEntity")).Return((*app_errors.AppError)(nil))

	team, appErr := service.CreateTeam(ctx, authz.Actor{ID: "owner-1", Role: entity.RoleMember}, "project-1", &team_dto.CreateTeamRequest{
		Name:   "Backend",
		LeadID: &lead,
	})

	assert.Nil(t, appErr)
	assert.Equal(t, "Backend", team.Name)

	repo.AssertCalled(t, "AddTeamMember", ctx, mockTx, "team-1", "lead-1", entity.TeamLead)
}

// Der Zielbenutzer kommt aus dem Pfad; der Body trägt nur die neue Rolle.
func TestUpdateMemberRole_TargetsPathUser(t *testing.T) {
	ctx := context.Background()
	service, repo, projects, _, _, _, _ := teamTestFixture()

	lead := "user-1"
	team := &entity.TeamEntity{
		ID:        "team-1",
		ProjectID: "project-1",
		LeadID:    &lead,
	}
	expectTeamScope(repo, projects, ctx, team, "owner-1", []string{"user-1", "user-2"})

	repo.On("IsTeamMember", ctx, "team-1", "user-2").Return(true, (*app_errors.AppError)(nil))
	repo.On("UpdateTeamMemberRole", ctx, "team-1", "user-2", entity.TeamLead).Return((*app_errors.AppError)(nil))

	actor := authz.Actor{ID: "user-1", Role: entity.RoleMember}
	appErr := service.UpdateMemberRole(ctx, actor, "team-1", "user-2", &team_dto.UpdateTeamMemberRoleRequest{Role: string(entity.TeamLead)})

	assert.Nil(t, appErr)
	repo.AssertExpectations(t)
}

func TestUpdateMemberRole_NotAMember(t *testing.T) {
	ctx := context.Background()
	service, repo, projects, _, _, _, _ := teamTestFixture()

	team := &entity.TeamEntity{
		ID:        "team-1",
		ProjectID: "project-1",
	}
	expectTeamScope(repo, projects, ctx, team, "owner-1", []string{"user-1"})

	repo.On("IsTeamMember", ctx, "team-1", "user-9").Return(false, (*app_errors.AppError)(nil))

	actor := authz.Actor{ID: "owner-1", Role: entity.RoleMember}
	appErr := service.UpdateMemberRole(ctx, actor, "team-1", "user-9", &team_dto.UpdateTeamMemberRoleRequest{Role: string(entity.TeamRoleMember)})

	assert.NotNil(t, appErr)
	assert.Equal(t, "team.member_not_found", appErr.MessageKey)
	repo.AssertNotCalled(t, "UpdateTeamMemberRole", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
