package link_repo

import (
	"context"
	"errors"

	"github.com/DevITJAX/FlowOps/internal/entity"
	app_errors "github.com/DevITJAX/FlowOps/internal/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type LinkRepo struct {
	db *pgxpool.Pool
}

func NewLinkRepo(db *pgxpool.Pool) LinkRepoContract {
	return &LinkRepo{
		db: db,
	}
}

const linkColumns = `id, link_type, source_task_id, target_task_id, created_by, created_at`

func scanLink(row pgx.Row) (*entity.IssueLinkEntity, error) {
	var l entity.IssueLinkEntity
	err := row.Scan(
		&l.ID,
		&l.LinkType,
		&l.SourceTaskID,
		&l.TargetTaskID,
		&l.CreatedBy,
		&l.CreatedAt,
	)
	return &l, err
}

func (r *LinkRepo) CreateLink(ctx context.Context, link *entity.IssueLinkEntity) (*entity.IssueLinkEntity, *app_errors.AppError) {
	query := `
		INSERT INTO issue_links (id, link_type, source_task_id, target_task_id, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + linkColumns

	created, err := scanLink(r.db.QueryRow(ctx, query,
		link.ID,
		link.LinkType,
		link.SourceTaskID,
		link.TargetTaskID,
		link.CreatedBy,
		link.CreatedAt,
	))
	if err != nil {
		return nil, app_errors.MapPgxError(err, "link.already_exists")
	}
	return created, nil
}

func (r *LinkRepo) FindLinkByID(ctx context.Context, linkID string) (*entity.IssueLinkEntity, *app_errors.AppError) {
	l, err := scanLink(r.db.QueryRow(ctx, `SELECT `+linkColumns+` FROM issue_links WHERE id = $1 LIMIT 1`, linkID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, app_errors.NotFound("link.not_found")
		}
		return nil, app_errors.Internal(err)
	}
	return l, nil
}

func (r *LinkRepo) ListLinksForTask(ctx context.Context, taskID string) ([]entity.IssueLinkView, *app_errors.AppError) {
	query := `
		SELECT il.id, il.link_type, il.source_task_id, il.created_by, il.created_at,
			t.id, t.title, t.task_key, t.status, t.type
		FROM issue_links il
		JOIN tasks t ON t.id = CASE WHEN il.source_task_id = $1 THEN il.target_task_id ELSE il.source_task_id END
		WHERE il.source_task_id = $1 OR il.target_task_id = $1
		ORDER BY il.created_at`

	rows, err := r.db.Query(ctx, query, taskID)
	if err != nil {
		return nil, app_errors.Internal(err)
	}
	defer rows.Close()

	links := []entity.IssueLinkView{}
	for rows.Next() {
		var v entity.IssueLinkView
		var sourceTaskID string
		if err := rows.Scan(
			&v.ID, &v.LinkType, &sourceTaskID, &v.CreatedBy, &v.CreatedAt,
			&v.Task.ID, &v.Task.Title, &v.Task.TaskKey, &v.Task.Status, &v.Task.Type,
		); err != nil {
			return nil, app_errors.Internal(err)
		}

		// Eingehende Links in Leserichtung der abgefragten Aufgabe drehen.
		if sourceTaskID != taskID {
			v.LinkType = v.LinkType.Reverse()
		}
		links = append(links, v)
	}
	return links, nil
}

func (r *LinkRepo) DeleteLink(ctx context.Context, linkID string) *app_errors.AppError {
	tag, err := r.db.Exec(ctx, `DELETE FROM issue_links WHERE id = $1`, linkID)
	if err != nil {
		return app_errors.Internal(err)
	}
	if tag.RowsAffected() == 0 {
		return app_errors.NotFound("link.not_found")
	}
	return nil
}
