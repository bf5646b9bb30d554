package team_repo

import (
	"context"
	"errors"

	"github.com/DevITJAX/FlowOps/internal/abstraction/tx"
	"github.com/DevITJAX/FlowOps/internal/entity"
	app_errors "github.com/DevITJAX/FlowOps/internal/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type TeamRepo struct {
	db *pgxpool.Pool
}

func NewTeamRepo(db *pgxpool.Pool) TeamRepoContract {
	return &TeamRepo{
		db: db,
	}
}

const teamColumns = `id, project_id, name, description, color, lead_id, is_default, created_by, created_at`

func scanTeam(row pgx.Row) (*entity.TeamEntity, error) {
	var t entity.TeamEntity
	err := row.Scan(
		&t.ID,
		&t.ProjectID,
		&t.Name,
		&t.Description,
		&t.Color,
		&t.LeadID,
		&t.IsDefault,
		&t.CreatedBy,
		&t.CreatedAt,
	)
	return &t, err
}

func (r *TeamRepo) CreateTeam(ctx context.Context, team *entity.TeamEntity) (*entity.TeamEntity, *app_errors.AppError) {
	query := `
		INSERT INTO teams (id, project_id, name, description, color, lead_id, is_default, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + teamColumns

	row := r.db.QueryRow(ctx, query,
		team.ID,
		team.ProjectID,
		team.Name,
		team.Description,
		team.Color,
		team.LeadID,
		team.IsDefault,
		team.CreatedBy,
		team.CreatedAt,
	)

	created, err := scanTeam(row)
	if err != nil {
		return nil, app_errors.MapPgxError(err, "team.name_taken")
	}
	return created, nil
}

func (r *TeamRepo) FindTeamByID(ctx context.Context, teamID string) (*entity.TeamEntity, *app_errors.AppError) {
	query := `SELECT ` + teamColumns + ` FROM teams WHERE id = $1 LIMIT 1`

	t, err := scanTeam(r.db.QueryRow(ctx, query, teamID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, app_errors.NotFound("team.not_found")
		}
		return nil, app_errors.Internal(err)
	}
	return t, nil
}

func (r *TeamRepo) listMembers(ctx context.Context, teamID string) ([]entity.TeamMember, error) {
	query := `
		SELECT tm.user_id, u.name, u.email, tm.role, tm.joined_at
		FROM team_members tm
		JOIN users u ON u.id = tm.user_id
		WHERE tm.team_id = $1
		ORDER BY tm.joined_at`

	rows, err := r.db.Query(ctx, query, teamID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	members := []entity.TeamMember{}
	for rows.Next() {
		var m entity.TeamMember
		if err := rows.Scan(&m.UserID, &m.Name, &m.Email, &m.Role, &m.JoinedAt); err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	return members, nil
}

func (r *TeamRepo) FindTeamDetail(ctx context.Context, teamID string) (*entity.TeamDetail, *app_errors.AppError) {
	t, appErr := r.FindTeamByID(ctx, teamID)
	if appErr != nil {
		return nil, appErr
	}

	detail := entity.TeamDetail{TeamEntity: *t}

	if t.LeadID != nil {
		var lead entity.UserRef
		query := `SELECT id, name, email FROM users WHERE id = $1`
		if err := r.db.QueryRow(ctx, query, *t.LeadID).Scan(&lead.ID, &lead.Name, &lead.Email); err != nil {
			return nil, app_errors.Internal(err)
		}
		detail.Lead = &lead
	}

	members, err := r.listMembers(ctx, teamID)
	if err != nil {
		return nil, app_errors.Internal(err)
	}
	detail.Members = members

	return &detail, nil
}

func (r *TeamRepo) ListTeamsByProject(ctx context.Context, projectID string) ([]entity.TeamDetail, *app_errors.AppError) {
	query := `SELECT ` + teamColumns + ` FROM teams WHERE project_id = $1 ORDER BY created_at`

	rows, err := r.db.Query(ctx, query, projectID)
	if err != nil {
		return nil, app_errors.Internal(err)
	}
	defer rows.Close()

	teams := []entity.TeamDetail{}
	for rows.Next() {
		t, err := scanTeam(rows)
		if err != nil {
			return nil, app_errors.Internal(err)
		}
		teams = append(teams, entity.TeamDetail{TeamEntity: *t})
	}
	rows.Close()

	for i := range teams {
		if teams[i].LeadID != nil {
			var lead entity.UserRef
			leadQuery := `SELECT id, name, email FROM users WHERE id = $1`
			if err := r.db.QueryRow(ctx, leadQuery, *teams[i].LeadID).Scan(&lead.ID, &lead.Name, &lead.Email); err != nil {
				return nil, app_errors.Internal(err)
			}
			teams[i].Lead = &lead
		}

		members, err := r.listMembers(ctx, teams[i].ID)
		if err != nil {
			return nil, app_errors.Internal(err)
		}
		teams[i].Members = members
	}

	return teams, nil
}

func (r *TeamRepo) UpdateTeam(ctx context.Context, teamID string, model entity.TeamUpdate) (*entity.TeamEntity, *app_errors.AppError) {
	query := `
		UPDATE teams
		SET name = COALESCE($1, name),
			description = COALESCE($2, description),
			color = COALESCE($3, color),
			lead_id = CASE WHEN $4 THEN NULL ELSE COALESCE($5, lead_id) END
		WHERE id = $6
		RETURNING ` + teamColumns

	t, err := scanTeam(r.db.QueryRow(ctx, query, model.Name, model.Description, model.Color, model.ClearLead, model.LeadID, teamID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, app_errors.NotFound("team.not_found")
		}
		return nil, app_errors.MapPgxError(err, "team.name_taken")
	}
	return t, nil
}

func (r *TeamRepo) DeleteTeam(ctx context.Context, t tx.Tx, teamID string) *app_errors.AppError {
	tag, err := tx.Unwrap(t).Exec(ctx, `DELETE FROM teams WHERE id = $1`, teamID)
	if err != nil {
		return app_errors.Internal(err)
	}
	if tag.RowsAffected() == 0 {
		return app_errors.NotFound("team.not_found")
	}
	return nil
}

func (r *TeamRepo) AddTeamMember(ctx context.Context, t tx.Tx, teamID, userID string, role entity.TeamRole) *app_errors.AppError {
	query := `
		INSERT INTO team_members (team_id, user_id, role, joined_at)
		VALUES ($1, $2, $3, now())`

	if _, err := tx.Unwrap(t).Exec(ctx, query, teamID, userID, role); err != nil {
		return app_errors.MapPgxError(err, "team.member_exists")
	}
	return nil
}

func (r *TeamRepo) UpdateTeamMemberRole(ctx context.Context, teamID, userID string, role entity.TeamRole) *app_errors.AppError {
	tag, err := r.db.Exec(ctx, `UPDATE team_members SET role = $1 WHERE team_id = $2 AND user_id = $3`, role, teamID, userID)
	if err != nil {
		return app_errors.Internal(err)
	}
	if tag.RowsAffected() == 0 {
		return app_errors.NotFound("team.member_not_found")
	}
	return nil
}

func (r *TeamRepo) RemoveTeamMember(ctx context.Context, t tx.Tx, teamID, userID string) *app_errors.AppError {
	tag, err := tx.Unwrap(t).Exec(ctx, `DELETE FROM team_members WHERE team_id = $1 AND user_id = $2`, teamID, userID)
	if err != nil {
		return app_errors.Internal(err)
	}
	if tag.RowsAffected() == 0 {
		return app_errors.NotFound("team.member_not_found")
	}
	return nil
}

func (r *TeamRepo) IsTeamMember(ctx context.Context, teamID, userID string) (bool, *app_errors.AppError) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM team_members WHERE team_id = $1 AND user_id = $2)`
	if err := r.db.QueryRow(ctx, query, teamID, userID).Scan(&exists); err != nil {
		return false, app_errors.Internal(err)
	}
	return exists, nil
}

func (r *TeamRepo) ListAvailableUsers(ctx context.Context, teamID string) ([]entity.UserRef, *app_errors.AppError) {
	query := `
		SELECT u.id, u.name, u.email
		FROM teams te
		JOIN projects p ON p.id = te.project_id
		JOIN users u ON u.is_active AND (
			u.id = p.owner_id
			OR EXISTS (SELECT 1 FROM project_members pm WHERE pm.project_id = p.id AND pm.user_id = u.id)
		)
		WHERE te.id = $1
			AND NOT EXISTS (SELECT 1 FROM team_members tm WHERE tm.team_id = te.id AND tm.user_id = u.id)
		ORDER BY u.name`

	rows, err := r.db.Query(ctx, query, teamID)
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
