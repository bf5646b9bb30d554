package search_case

import (
	"context"

	"github.com/DevITJAX/FlowOps/internal/authz"
	search_dto "github.com/DevITJAX/FlowOps/internal/dtos/search-dto"
	"github.com/DevITJAX/FlowOps/internal/entity"
	app_errors "github.com/DevITJAX/FlowOps/internal/errors"
	project_repo "github.com/DevITJAX/FlowOps/internal/repo/project-repo"
	task_repo "github.com/DevITJAX/FlowOps/internal/repo/task-repo"
	user_repo "github.com/DevITJAX/FlowOps/internal/repo/user-repo"
	"github.com/jackc/pgx/v5/pgxpool"
)

const defaultSearchLimit = 20

type SearchService struct {
	tasks    task_repo.TaskRepoContract
	projects project_repo.ProjectRepoContract
	users    user_repo.UserRepoContract
}

func NewSearchService(db *pgxpool.Pool) SearchServiceContract {
	return &SearchService{
		tasks:    task_repo.NewTaskRepo(db),
		projects: project_repo.NewProjectRepo(db),
		users:    user_repo.NewUserRepo(db),
	}
}

// Search durchsucht Aufgaben, Projekte und Benutzer. Die Treffermenge ist
// auf die Projekte eingeschränkt, an denen der Akteur beteiligt ist;
// Administratoren sehen alles.
func (s *SearchService) Search(ctx context.Context, actor authz.Actor, query *search_dto.SearchQuery) (*search_dto.SearchResponse, *app_errors.AppError) {
	limit := query.Limit
	if limit <= 0 {
		limit = defaultSearchLimit
	}

	searchType := query.Type
	if searchType == "" {
		searchType = "all"
	}

	isAdmin := actor.Role == entity.RoleAdmin
	response := &search_dto.SearchResponse{}

	if searchType == "all" || searchType == "tasks" {
		tasks, appErr := s.tasks.SearchTasks(ctx, query.Q, actor.ID, isAdmin, limit)
		if appErr != nil {
			return nil, appErr
		}
		response.Tasks = tasks
	}

	if searchType == "all" || searchType == "projects" {
		projects, appErr := s.projects.SearchProjects(ctx, query.Q, actor.ID, isAdmin, limit)
		if appErr != nil {
			return nil, appErr
		}
		response.Projects = projects
	}

	if searchType == "all" || searchType == "users" {
		users, appErr := s.users.SearchUsers(ctx, query.Q, limit)
		if appErr != nil {
			return nil, appErr
		}
		response.Users = users
	}

	return response, nil
}
