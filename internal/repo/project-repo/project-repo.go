package project_repo

import (
	"context"
	"errors"

	"github.com/DevITJAX/FlowOps/internal/abstraction/tx"
	"github.com/DevITJAX/FlowOps/internal/entity"
	app_errors "github.com/DevITJAX/FlowOps/internal/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ProjectRepo struct {
	db *pgxpool.Pool
}

func NewProjectRepo(db *pgxpool.Pool) ProjectRepoContract {
	return &ProjectRepo{
		db: db,
	}
}

const projectColumns = `id, name, key, description, status, owner_id, created_at, updated_at`

func scanProject(row pgx.Row) (*entity.ProjectEntity, error) {
	var p entity.ProjectEntity
	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Key,
		&p.Description,
		&p.Status,
		&p.OwnerID,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	return &p, err
}

func (r *ProjectRepo) CreateProject(ctx context.Context, t tx.Tx, project *entity.ProjectEntity) (*entity.ProjectEntity, *app_errors.AppError) {
	query := `
		INSERT INTO projects (id, name, key, description, status, owner_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + projectColumns

	row := tx.Unwrap(t).QueryRow(ctx, query,
		project.ID,
		project.Name,
		project.Key,
		project.Description,
		project.Status,
		project.OwnerID,
		project.CreatedAt,
	)

	created, err := scanProject(row)
	if err != nil {
		return nil, app_errors.MapPgxError(err, "project.key_taken")
	}
	return created, nil
}

func (r *ProjectRepo) FindProjectByID(ctx context.Context, projectID string) (*entity.ProjectEntity, *app_errors.AppError) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE id = $1 LIMIT 1`

	p, err := scanProject(r.db.QueryRow(ctx, query, projectID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, app_errors.NotFound("project.not_found")
		}
		return nil, app_errors.Internal(err)
	}
	return p, nil
}

func (r *ProjectRepo) FindProjectDetail(ctx context.Context, projectID string) (*entity.ProjectDetail, *app_errors.AppError) {
	p, appErr := r.FindProjectByID(ctx, projectID)
	if appErr != nil {
		return nil, appErr
	}

	detail := entity.ProjectDetail{ProjectEntity: *p}

	query := `SELECT id, name, email FROM users WHERE id = $1 LIMIT 1`
	if err := r.db.QueryRow(ctx, query, p.OwnerID).Scan(&detail.Owner.ID, &detail.Owner.Name, &detail.Owner.Email); err != nil {
		return nil, app_errors.Internal(err)
	}

	members, appErr := r.ListMembers(ctx, projectID)
	if appErr != nil {
		return nil, appErr
	}
	detail.Members = members

	return &detail, nil
}

func (r *ProjectRepo) ListProjectsForUser(ctx context.Context, userID string, isAdmin bool) ([]entity.ProjectDetail, *app_errors.AppError) {
	query := `
		SELECT ` + projectColumns + `
		FROM projects p
		WHERE $1
			OR p.owner_id = $2
			OR EXISTS (SELECT 1 FROM project_members pm WHERE pm.project_id = p.id AND pm.user_id = $2)
		ORDER BY p.created_at DESC`

	rows, err := r.db.Query(ctx, query, isAdmin, userID)
	if err != nil {
		return nil, app_errors.Internal(err)
	}
	defer rows.Close()

	projects := []entity.ProjectDetail{}
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, app_errors.Internal(err)
		}
		projects = append(projects, entity.ProjectDetail{ProjectEntity: *p})
	}
	rows.Close()

	for i := range projects {
		ownerQuery := `SELECT id, name, email FROM users WHERE id = $1`
		if err := r.db.QueryRow(ctx, ownerQuery, projects[i].OwnerID).Scan(
			&projects[i].Owner.ID, &projects[i].Owner.Name, &projects[i].Owner.Email,
		); err != nil {
			return nil, app_errors.Internal(err)
		}

		members, appErr := r.ListMembers(ctx, projects[i].ID)
		if appErr != nil {
			return nil, appErr
		}
		projects[i].Members = members
	}

	return projects, nil
}

func (r *ProjectRepo) UpdateProject(ctx context.Context, t tx.Tx, projectID string, model entity.ProjectUpdate) (*entity.ProjectEntity, *app_errors.AppError) {
	query := `
		UPDATE projects
		SET name = COALESCE($1, name),
			description = COALESCE($2, description),
			status = COALESCE($3, status),
			updated_at = now()
		WHERE id = $4
		RETURNING ` + projectColumns

	p, err := scanProject(tx.Unwrap(t).QueryRow(ctx, query, model.Name, model.Description, model.Status, projectID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, app_errors.NotFound("project.not_found")
		}
		return nil, app_errors.Internal(err)
	}
	return p, nil
}

func (r *ProjectRepo) DeleteProject(ctx context.Context, t tx.Tx, projectID string) *app_errors.AppError {
	tag, err := tx.Unwrap(t).Exec(ctx, `DELETE FROM projects WHERE id = $1`, projectID)
	if err != nil {
		return app_errors.Internal(err)
	}
	if tag.RowsAffected() == 0 {
		return app_errors.NotFound("project.not_found")
	}
	return nil
}

func (r *ProjectRepo) ExistsKey(ctx context.Context, key string) (bool, *app_errors.AppError) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM projects WHERE key = $1)`, key).Scan(&exists)
	if err != nil {
		return false, app_errors.Internal(err)
	}
	return exists, nil
}

func (r *ProjectRepo) ListMemberIDs(ctx context.Context, projectID string) ([]string, *app_errors.AppError) {
	rows, err := r.db.Query(ctx, `SELECT user_id FROM project_members WHERE project_id = $1`, projectID)
	if err != nil {
		return nil, app_errors.Internal(err)
	}
	defer rows.Close()

	ids := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, app_errors.Internal(err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func (r *ProjectRepo) ListMembers(ctx context.Context, projectID string) ([]entity.UserRef, *app_errors.AppError) {
	query := `
		SELECT u.id, u.name, u.email
		FROM project_members pm
		JOIN users u ON u.id = pm.user_id
		WHERE pm.project_id = $1
		ORDER BY pm.joined_at`

	rows, err := r.db.Query(ctx, query, projectID)
	if err != nil {
		return nil, app_errors.Internal(err)
	}
	defer rows.Close()

	members := []entity.UserRef{}
	for rows.Next() {
		var m entity.UserRef
		if err := rows.Scan(&m.ID, &m.Name, &m.Email); err != nil {
			return nil, app_errors.Internal(err)
		}
		members = append(members, m)
	}
	return members, nil
}

// AddMember ist idempotent: ein bereits vorhandenes Mitglied bleibt unverändert.
func (r *ProjectRepo) AddMember(ctx context.Context, t tx.Tx, projectID, userID string) *app_errors.AppError {
	query := `
		INSERT INTO project_members (project_id, user_id, joined_at)
		VALUES ($1, $2, now())
		ON CONFLICT (project_id, user_id) DO NOTHING`

	if _, err := tx.Unwrap(t).Exec(ctx, query, projectID, userID); err != nil {
		return app_errors.MapPgxError(err)
	}
	return nil
}

func (r *ProjectRepo) RemoveMember(ctx context.Context, t tx.Tx, projectID, userID string) *app_errors.AppError {
	tag, err := tx.Unwrap(t).Exec(ctx, `DELETE FROM project_members WHERE project_id = $1 AND user_id = $2`, projectID, userID)
	if err != nil {
		return app_errors.Internal(err)
	}
	if tag.RowsAffected() == 0 {
		return app_errors.NotFound("project.member_not_found")
	}
	return nil
}

// ListAvailableUsers liefert alle aktiven Benutzer, die weder Owner noch
// Mitglied des Projekts sind.
func (r *ProjectRepo) ListAvailableUsers(ctx context.Context, projectID string) ([]entity.UserRef, *app_errors.AppError) {
	query := `
		SELECT u.id, u.name, u.email
		FROM users u
		WHERE u.is_active
			AND u.id <> (SELECT owner_id FROM projects WHERE id = $1)
			AND NOT EXISTS (SELECT 1 FROM project_members pm WHERE pm.project_id = $1 AND pm.user_id = u.id)
		ORDER BY u.name`

	rows, err := r.db.Query(ctx, query, projectID)
	if err != nil {
		return nil, app_errors.Internal(err)
	}
	defer rows.Close()

	users := []entity.UserRef{}
	for rows.Next() {
		var u entity.UserRef
		if err := rows.Scan(&u.ID, &u.Name, &u.Email); err != nil {
			return nil, app_errors.Internal(err)
		}
		users = append(users, u)
	}
	return users, nil
}

func (r *ProjectRepo) UserLeadsAnyTeam(ctx context.Context, projectID, userID string) (bool, *app_errors.AppError) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM teams
			WHERE project_id = $1 AND lead_id = $2
		)`

	var leads bool
	if err := r.db.QueryRow(ctx, query, projectID, userID).Scan(&leads); err != nil {
		return false, app_errors.Internal(err)
	}
	return leads, nil
}

// RemoveUserFromProjectTeams räumt beim Entfernen aus dem Projekt alle
// Team-Mitgliedschaften des Benutzers in diesem Projekt mit ab.
func (r *ProjectRepo) RemoveUserFromProjectTeams(ctx context.Context, t tx.Tx, projectID, userID string) *app_errors.AppError {
	query := `
		DELETE FROM team_members tm
		USING teams te
		WHERE te.id = tm.team_id AND te.project_id = $1 AND tm.user_id = $2`

	if _, err := tx.Unwrap(t).Exec(ctx, query, projectID, userID); err != nil {
		return app_errors.Internal(err)
	}
	return nil
}

func (r *ProjectRepo) SearchProjects(ctx context.Context, query string, userID string, isAdmin bool, limit int) ([]entity.ProjectEntity, *app_errors.AppError) {
	sql := `
		SELECT ` + projectColumns + `
		FROM projects p
		WHERE (p.name ILIKE '%' || $1 || '%' OR p.key ILIKE '%' || $1 || '%' OR p.description ILIKE '%' || $1 || '%')
			AND ($2
				OR p.owner_id = $3
				OR EXISTS (SELECT 1 FROM project_members pm WHERE pm.project_id = p.id AND pm.user_id = $3))
		ORDER BY p.name
		LIMIT $4`

	rows, err := r.db.Query(ctx, sql, query, isAdmin, userID, limit)
	if err != nil {
		return nil, app_errors.Internal(err)
	}
	defer rows.Close()

	projects := []entity.ProjectEntity{}
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, app_errors.Internal(err)
		}
		projects = append(projects, *p)
	}
	return projects, nil
}
