package attachment_repo

import (
	"context"
	"errors"

	"github.com/DevITJAX/FlowOps/internal/entity"
	app_errors "github.com/DevITJAX/FlowOps/internal/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AttachmentRepo struct {
	db *pgxpool.Pool
}

func NewAttachmentRepo(db *pgxpool.Pool) AttachmentRepoContract {
	return &AttachmentRepo{
		db: db,
	}
}

const attachmentColumns = `id, task_id, file_name, original_name, mime_type, size, path, uploaded_by, created_at`

func scanAttachment(row pgx.Row) (*entity.AttachmentEntity, error) {
	var a entity.AttachmentEntity
	err := row.Scan(
		&a.ID,
		&a.TaskID,
		&a.FileName,
		&a.OriginalName,
		&a.MimeType,
		&a.Size,
		&a.Path,
		&a.UploadedBy,
		&a.CreatedAt,
	)
	return &a, err
}

func (r *AttachmentRepo) CreateAttachment(ctx context.Context, attachment *entity.AttachmentEntity) (*entity.AttachmentEntity, *app_errors.AppError) {
	query := `
		INSERT INTO attachments (id, task_id, file_name, original_name, mime_type, size, path, uploaded_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + attachmentColumns

	created, err := scanAttachment(r.db.QueryRow(ctx, query,
		attachment.ID,
		attachment.TaskID,
		attachment.FileName,
		attachment.OriginalName,
		attachment.MimeType,
		attachment.Size,
		attachment.Path,
		attachment.UploadedBy,
		attachment.CreatedAt,
	))
	if err != nil {
		return nil, app_errors.MapPgxError(err)
	}
	return created, nil
}

func (r *AttachmentRepo) FindAttachmentByID(ctx context.Context, attachmentID string) (*entity.AttachmentEntity, *app_errors.AppError) {
	a, err := scanAttachment(r.db.QueryRow(ctx, `SELECT `+attachmentColumns+` FROM attachments WHERE id = $1 LIMIT 1`, attachmentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, app_errors.NotFound("attachment.not_found")
		}
		return nil, app_errors.Internal(err)
	}
	return a, nil
}

func (r *AttachmentRepo) ListAttachmentsByTask(ctx context.Context, taskID string) ([]entity.AttachmentDetail, *app_errors.AppError) {
	query := `
		SELECT a.id, a.task_id, a.file_name, a.original_name, a.mime_type, a.size, a.path, a.uploaded_by, a.created_at,
			u.id, u.name, u.email
		FROM attachments a
		JOIN users u ON u.id = a.uploaded_by
		WHERE a.task_id = $1
		ORDER BY a.created_at DESC`

	rows, err := r.db.Query(ctx, query, taskID)
	if err != nil {
		return nil, app_errors.Internal(err)
	}
	defer rows.Close()

	attachments := []entity.AttachmentDetail{}
	for rows.Next() {
		var d entity.AttachmentDetail
		if err := rows.Scan(
			&d.ID, &d.TaskID, &d.FileName, &d.OriginalName, &d.MimeType, &d.Size, &d.Path, &d.UploadedBy, &d.CreatedAt,
			&d.Uploader.ID, &d.Uploader.Name, &d.Uploader.Email,
		); err != nil {
			return nil, app_errors.Internal(err)
		}
		attachments = append(attachments, d)
	}
	return attachments, nil
}

func (r *AttachmentRepo) DeleteAttachment(ctx context.Context, attachmentID string) *app_errors.AppError {
	tag, err := r.db.Exec(ctx, `DELETE FROM attachments WHERE id = $1`, attachmentID)
	if err != nil {
		return app_errors.Internal(err)
	}
	if tag.RowsAffected() == 0 {
		return app_errors.NotFound("attachment.not_found")
	}
	return nil
}
