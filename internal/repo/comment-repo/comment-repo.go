package comment_repo

import (
	"context"
	"errors"

	"github.com/DevITJAX/FlowOps/internal/entity"
	app_errors "github.com/DevITJAX/FlowOps/internal/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CommentRepo struct {
	db *pgxpool.Pool
}

func NewCommentRepo(db *pgxpool.Pool) CommentRepoContract {
	return &CommentRepo{
		db: db,
	}
}

const commentColumns = `id, task_id, author_id, content, mentions, is_edited, created_at, updated_at`

func scanComment(row pgx.Row) (*entity.CommentEntity, error) {
	var c entity.CommentEntity
	err := row.Scan(
		&c.ID,
		&c.TaskID,
		&c.AuthorID,
		&c.Content,
		&c.Mentions,
		&c.IsEdited,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	return &c, err
}

func (r *CommentRepo) CreateComment(ctx context.Context, comment *entity.CommentEntity) (*entity.CommentEntity, *app_errors.AppError) {
	query := `
		INSERT INTO comments (id, task_id, author_id, content, mentions, is_edited, created_at)
		VALUES ($1, $2, $3, $4, $5, false, $6)
		RETURNING ` + commentColumns

	created, err := scanComment(r.db.QueryRow(ctx, query,
		comment.ID,
		comment.TaskID,
		comment.AuthorID,
		comment.Content,
		comment.Mentions,
		comment.CreatedAt,
	))
	if err != nil {
		return nil, app_errors.MapPgxError(err)
	}
	return created, nil
}

func (r *CommentRepo) FindCommentByID(ctx context.Context, commentID string) (*entity.CommentEntity, *app_errors.AppError) {
	c, err := scanComment(r.db.QueryRow(ctx, `SELECT `+commentColumns+` FROM comments WHERE id = $1 LIMIT 1`, commentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, app_errors.NotFound("comment.not_found")
		}
		return nil, app_errors.Internal(err)
	}
	return c, nil
}

func (r *CommentRepo) ListCommentsByTask(ctx context.Context, taskID string) ([]entity.CommentDetail, *app_errors.AppError) {
	query := `
		SELECT c.id, c.task_id, c.author_id, c.content, c.mentions, c.is_edited, c.created_at, c.updated_at,
			u.id, u.name, u.email
		FROM comments c
		JOIN users u ON u.id = c.author_id
		WHERE c.task_id = $1
		ORDER BY c.created_at`

	rows, err := r.db.Query(ctx, query, taskID)
	if err != nil {
		return nil, app_errors.Internal(err)
	}
	defer rows.Close()

	comments := []entity.CommentDetail{}
	for rows.Next() {
		var d entity.CommentDetail
		if err := rows.Scan(
			&d.ID, &d.TaskID, &d.AuthorID, &d.Content, &d.Mentions, &d.IsEdited, &d.CreatedAt, &d.UpdatedAt,
			&d.Author.ID, &d.Author.Name, &d.Author.Email,
		); err != nil {
			return nil, app_errors.Internal(err)
		}
		comments = append(comments, d)
	}
	rows.Close()

	for i := range comments {
		if len(comments[i].Mentions) == 0 {
			continue
		}
		mRows, err := r.db.Query(ctx, `SELECT id, name, email FROM users WHERE id = ANY($1)`, comments[i].Mentions)
		if err != nil {
			return nil, app_errors.Internal(err)
		}
		for mRows.Next() {
			var u entity.UserRef
			if err := mRows.Scan(&u.ID, &u.Name, &u.Email); err != nil {
				mRows.Close()
				return nil, app_errors.Internal(err)
			}
			comments[i].MentionedUsers = append(comments[i].MentionedUsers, u)
		}
		mRows.Close()
	}

	return comments, nil
}

func (r *CommentRepo) UpdateComment(ctx context.Context, commentID string, content string, mentions []string) (*entity.CommentEntity, *app_errors.AppError) {
	query := `
		UPDATE comments
		SET content = $1, mentions = $2, is_edited = true, updated_at = now()
		WHERE id = $3
		RETURNING ` + commentColumns

	c, err := scanComment(r.db.QueryRow(ctx, query, content, mentions, commentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, app_errors.NotFound("comment.not_found")
		}
		return nil, app_errors.Internal(err)
	}
	return c, nil
}

func (r *CommentRepo) DeleteComment(ctx context.Context, commentID string) *app_errors.AppError {
	tag, err := r.db.Exec(ctx, `DELETE FROM comments WHERE id = $1`, commentID)
	if err != nil {
		return app_errors.Internal(err)
	}
	if tag.RowsAffected() == 0 {
		return app_errors.NotFound("comment.not_found")
	}
	return nil
}
