package label_repo

import (
	"context"
	"errors"

	"github.com/DevITJAX/FlowOps/internal/entity"
	app_errors "github.com/DevITJAX/FlowOps/internal/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type LabelRepo struct {
	db *pgxpool.Pool
}

func NewLabelRepo(db *pgxpool.Pool) LabelRepoContract {
	return &LabelRepo{
		db: db,
	}
}

const labelColumns = `id, project_id, name, color, created_at`

func scanLabel(row pgx.Row) (*entity.LabelEntity, error) {
	var l entity.LabelEntity
	err := row.Scan(&l.ID, &l.ProjectID, &l.Name, &l.Color, &l.CreatedAt)
	return &l, err
}

func (r *LabelRepo) CreateLabel(ctx context.Context, label *entity.LabelEntity) (*entity.LabelEntity, *app_errors.AppError) {
	query := `
		INSERT INTO labels (id, project_id, name, color, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + labelColumns

	created, err := scanLabel(r.db.QueryRow(ctx, query, label.ID, label.ProjectID, label.Name, label.Color, label.CreatedAt))
	if err != nil {
		return nil, app_errors.MapPgxError(err, "label.name_taken")
	}
	return created, nil
}

func (r *LabelRepo) FindLabelByID(ctx context.Context, labelID string) (*entity.LabelEntity, *app_errors.AppError) {
	l, err := scanLabel(r.db.QueryRow(ctx, `SELECT `+labelColumns+` FROM labels WHERE id = $1 LIMIT 1`, labelID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, app_errors.NotFound("label.not_found")
		}
		return nil, app_errors.Internal(err)
	}
	return l, nil
}

func (r *LabelRepo) ListLabelsByProject(ctx context.Context, projectID string) ([]entity.LabelEntity, *app_errors.AppError) {
	rows, err := r.db.Query(ctx, `SELECT `+labelColumns+` FROM labels WHERE project_id = $1 ORDER BY name`, projectID)
	if err != nil {
		return nil, app_errors.Internal(err)
	}
	defer rows.Close()

	labels := []entity.LabelEntity{}
	for rows.Next() {
		l, err := scanLabel(rows)
		if err != nil {
			return nil, app_errors.Internal(err)
		}
		labels = append(labels, *l)
	}
	return labels, nil
}

func (r *LabelRepo) CountLabelsInProject(ctx context.Context, projectID string, labelIDs []string) (int, *app_errors.AppError) {
	var count int
	query := `SELECT COUNT(*) FROM labels WHERE project_id = $1 AND id = ANY($2)`
	if err := r.db.QueryRow(ctx, query, projectID, labelIDs).Scan(&count); err != nil {
		return 0, app_errors.Internal(err)
	}
	return count, nil
}

func (r *LabelRepo) UpdateLabel(ctx context.Context, labelID string, name, color *string) (*entity.LabelEntity, *app_errors.AppError) {
	query := `
		UPDATE labels
		SET name = COALESCE($1, name),
			color = COALESCE($2, color)
		WHERE id = $3
		RETURNING ` + labelColumns

	l, err := scanLabel(r.db.QueryRow(ctx, query, name, color, labelID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, app_errors.NotFound("label.not_found")
		}
		return nil, app_errors.MapPgxError(err, "label.name_taken")
	}
	return l, nil
}

func (r *LabelRepo) DeleteLabel(ctx context.Context, labelID string) *app_errors.AppError {
	tag, err := r.db.Exec(ctx, `DELETE FROM labels WHERE id = $1`, labelID)
	if err != nil {
		return app_errors.Internal(err)
	}
	if tag.RowsAffected() == 0 {
		return app_errors.NotFound("label.not_found")
	}
	return nil
}
