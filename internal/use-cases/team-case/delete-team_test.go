package team_case

import (
	"context"
	"testing"

	"github.com/DevITJAX/FlowOps/internal/abstraction/tx"
	"github.com/DevITJAX/FlowOps/internal/authz"
	"github.com/DevITJAX/FlowOps/internal/entity"
	app_errors "github.com/DevITJAX/FlowOps/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// Das Standard-Team eines Projekts darf auch der Owner nicht löschen.
func TestDeleteTeam_DefaultTeamRejected(t *testing.T) {
	ctx := context.Background()
	service, repo, projects, _, _, txm, _ := teamTestFixture()

	team := &entity.TeamEntity{
		ID:        "team-1",
		ProjectID: "project-1",
		Name:      "Kernteam",
		IsDefault: true,
	}
	expectTeamScope(repo, projects, ctx, team, "owner-1", []string{"user-1"})

	actor := authz.Actor{ID: "owner-1", Role: entity.RoleMember}
	appErr := service.DeleteTeam(ctx, actor, "team-1")

	assert.NotNil(t, appErr)
	assert.Equal(t, "team.cannot_delete_default", appErr.MessageKey)
	txm.AssertNotCalled(t, "Begin", mock.Anything)
	repo.AssertNotCalled(t, "DeleteTeam", mock.Anything, mock.Anything, mock.Anything)
}

func TestDeleteTeam_RegularTeam(t *testing.T) {
	ctx := context.Background()
	service, repo, projects, _, ar, txm, mockTx := teamTestFixture()

	team := &entity.TeamEntity{
		ID:        "team-2",
		ProjectID: "project-1",
		Name:      "Feature-Team",
	}
	expectTeamScope(repo, projects, ctx, team, "owner-1", []string{"user-1"})

	txm.On("Begin", ctx).Return(tx.Tx(mockTx), (*app_errors.AppError)(nil))
	repo.On("DeleteTeam", ctx, mockTx, "team-2").Return((*app_errors.AppError)(nil))
	mockTx.On("Commit", ctx).Return((*app_errors.AppError)(nil))
	ar.On("CreateActivity", ctx, mock.AnythingOfType("*entity.ActivityEntity")).Return((*app_errors.AppError)(nil))

	actor := authz.Actor{ID: "owner-1", Role: entity.RoleMember}
	appErr := service.DeleteTeam(ctx, actor, "team-2")

	assert.Nil(t, appErr)
	repo.AssertExpectations(t)
	mockTx.AssertExpectations(t)
}
