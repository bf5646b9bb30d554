package link_case

import (
	"context"
	"testing"

	"github.com/DevITJAX/FlowOps/internal/authz"
	link_dto "github.com/DevITJAX/FlowOps/internal/dtos/link-dto"
	"github.com/DevITJAX/FlowOps/internal/entity"
	app_errors "github.com/DevITJAX/FlowOps/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCreateLink_Success(t *testing.T) {
	ctx := context.Background()

	repo := new(MockLinkRepo)
	tasks := new(MockTaskRepo)
	projects := new(MockProjectRepo)

	service := &LinkService{
		repo:     repo,
		tasks:    tasks,
		projects: projects,
	}

	actor := authz.Actor{ID: "user-1", Role: entity.RoleMember}

	tasks.On("FindTaskByID", ctx, "task-1").Return(&entity.TaskEntity{
		ID:        "task-1",
		ProjectID: "project-1",
	}, (*app_errors.AppError)(nil))
	tasks.On("FindTaskByID", ctx, "task-2").Return(&entity.TaskEntity{
		ID:        "task-2",
		ProjectID: "project-1",
	}, (*app_errors.AppError)(nil))
	projects.On("FindProjectByID", ctx, "project-1").Return(&entity.ProjectEntity{
		ID:      "project-1",
		OwnerID: "owner-1",
	}, (*app_errors.AppError)(nil))
	projects.On("ListMemberIDs", ctx, "project-1").Return([]string{"user-1"}, (*app_errors.AppError)(nil))

	repo.On("CreateLink", ctx, mock.MatchedBy(func(link *entity.IssueLinkEntity) bool {
		return link.SourceTaskID == "task-1" &&
			link.TargetTaskID == "task-2" &&
			link.LinkType == entity.LinkBlocks &&
			link.CreatedBy == "user-1"
	})).Return(&entity.IssueLinkEntity{
		ID:           "link-1",
		LinkType:     entity.LinkBlocks,
		SourceTaskID: "task-1",
		TargetTaskID: "task-2",
	}, (*app_errors.AppError)(nil))

	link, appErr := service.CreateLink(ctx, actor, "task-1", &link_dto.CreateLinkRequest{
		TargetTaskID: "task-2",
		LinkType:     "blocks",
	})

	assert.Nil(t, appErr)
	assert.Equal(t, entity.LinkBlocks, link.LinkType)

	repo.AssertExpectations(t)
}

func TestCreateLink_SelfLinkRejected(t *testing.T) {
	ctx := context.Background()

	service := &LinkService{}

	link, appErr := service.CreateLink(ctx, authz.Actor{ID: "user-1", Role: entity.RoleMember}, "task-1", &link_dto.CreateLinkRequest{
		TargetTaskID: "task-1",
		LinkType:     "relates_to",
	})

	assert.Nil(t, link)
	assert.NotNil(t, appErr)
	assert.Equal(t, "link.self_link", appErr.MessageKey)
}

// Liegt das Ziel in einem anderen Projekt, braucht der Akteur dort Lesezugriff.
func TestCreateLink_CrossProjectRequiresReadOnTarget(t *testing.T) {
	ctx := context.Background()

	repo := new(MockLinkRepo)
	tasks := new(MockTaskRepo)
	projects := new(MockProjectRepo)

	service := &LinkService{
		repo:     repo,
		tasks:    tasks,
		projects: projects,
	}

	actor := authz.Actor{ID: "user-1", Role: entity.RoleMember}

	tasks.On("FindTaskByID", ctx, "task-1").Return(&entity.TaskEntity{
		ID:        "task-1",
		ProjectID: "project-1",
	}, (*app_errors.AppError)(nil))
	tasks.On("FindTaskByID", ctx, "task-9").Return(&entity.TaskEntity{
		ID:        "task-9",
		ProjectID: "project-2",
	}, (*app_errors.AppError)(nil))

	projects.On("FindProjectByID", ctx, "project-1").Return(&entity.ProjectEntity{
		ID:      "project-1",
		OwnerID: "owner-1",
	}, (*app_errors.AppError)(nil))
	projects.On("ListMemberIDs", ctx, "project-1").Return([]string{"user-1"}, (*app_errors.AppError)(nil))

	// kein Mitglied im Zielprojekt
	projects.On("FindProjectByID", ctx, "project-2").Return(&entity.ProjectEntity{
		ID:      "project-2",
		OwnerID: "owner-2",
	}, (*app_errors.AppError)(nil))
	projects.On("ListMemberIDs", ctx, "project-2").Return([]string{"other"}, (*app_errors.AppError)(nil))

	link, appErr := service.CreateLink(ctx, actor, "task-1", &link_dto.CreateLinkRequest{
		TargetTaskID: "task-9",
		LinkType:     "blocks",
	})

	assert.Nil(t, link)
	assert.NotNil(t, appErr)
	assert.Equal(t, app_errors.ErrForbidden, appErr.Type)

	repo.AssertNotCalled(t, "CreateLink", mock.Anything, mock.Anything)
}

func TestCreateLink_DuplicateConflict(t *testing.T) {
	ctx := context.Background()

	repo := new(MockLinkRepo)
	tasks := new(MockTaskRepo)
	projects := new(MockProjectRepo)

	service := &LinkService{
		repo:     repo,
		tasks:    tasks,
		projects: projects,
	}

	actor := authz.Actor{ID: "user-1", Role: entity.RoleMember}

	tasks.On("FindTaskByID", ctx, "task-1").Return(&entity.TaskEntity{
		ID:        "task-1",
		ProjectID: "project-1",
	}, (*app_errors.AppError)(nil))
	tasks.On("FindTaskByID", ctx, "task-2").Return(&entity.TaskEntity{
		ID:        "task-2",
		ProjectID: "project-1",
	}, (*app_errors.AppError)(nil))
	projects.On("FindProjectByID", ctx, "project-1").Return(&entity.ProjectEntity{
		ID:      "project-1",
		OwnerID: "owner-1",
	}, (*app_errors.AppError)(nil))
	projects.On("ListMemberIDs", ctx, "project-1").Return([]string{"user-1"}, (*app_errors.AppError)(nil))

	repo.On("CreateLink", ctx, mock.AnythingOfType("*entity.IssueLinkEntity")).Return((*entity.IssueLinkEntity)(nil), app_errors.Conflict("link.already_exists"))

	link, appErr := service.CreateLink(ctx, actor, "task-1", &link_dto.CreateLinkRequest{
		TargetTaskID: "task-2",
		LinkType:     "blocks",
	})

	assert.Nil(t, link)
	assert.NotNil(t, appErr)
	assert.Equal(t, app_errors.ErrConflict, appErr.Type)
}
