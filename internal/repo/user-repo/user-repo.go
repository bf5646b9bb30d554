package user_repo

import (
	"context"
	"errors"
	"time"

	"github.com/DevITJAX/FlowOps/internal/abstraction/tx"
	"github.com/DevITJAX/FlowOps/internal/entity"
	app_errors "github.com/DevITJAX/FlowOps/internal/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepo struct {
	db *pgxpool.Pool
}

func NewUserRepo(db *pgxpool.Pool) UserRepoContract {
	return &UserRepo{
		db: db,
	}
}

const userColumns = `id, name, email, password_hash, role, is_active, reset_token_hash, reset_token_expires, refresh_token, created_at, updated_at`

func scanUser(row pgx.Row) (*entity.UserEntity, error) {
	var u entity.UserEntity
	err := row.Scan(
		&u.ID,
		&u.Name,
		&u.Email,
		&u.PasswordHash,
		&u.Role,
		&u.IsActive,
		&u.ResetTokenHash,
		&u.ResetTokenExpires,
		&u.RefreshToken,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	return &u, err
}

func (r *UserRepo) CreateUser(ctx context.Context, t tx.Tx, user *entity.UserEntity) (*entity.UserEntity, *app_errors.AppError) {
	query := `
		INSERT INTO users (id, name, email, password_hash, role, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + userColumns

	row := tx.Unwrap(t).QueryRow(ctx, query,
		user.ID,
		user.Name,
		user.Email,
		user.PasswordHash,
		user.Role,
		user.IsActive,
		user.CreatedAt,
	)

	created, err := scanUser(row)
	if err != nil {
		return nil, app_errors.MapPgxError(err, "auth.email_taken")
	}
	return created, nil
}

func (r *UserRepo) FindByID(ctx context.Context, userID string) (*entity.UserEntity, *app_errors.AppError) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1 LIMIT 1`

	u, err := scanUser(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, app_errors.NotFound("user.not_found")
		}
		return nil, app_errors.Internal(err)
	}
	return u, nil
}

func (r *UserRepo) FindByEmail(ctx context.Context, email string) (*entity.UserEntity, *app_errors.AppError) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1 LIMIT 1`

	u, err := scanUser(r.db.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, app_errors.NotFound("user.not_found")
		}
		return nil, app_errors.Internal(err)
	}
	return u, nil
}

func (r *UserRepo) UpdateProfile(ctx context.Context, t tx.Tx, userID string, name, email *string) (*entity.UserEntity, *app_errors.AppError) {
	query := `
		UPDATE users
		SET name = COALESCE($1, name),
			email = COALESCE($2, email),
			updated_at = now()
		WHERE id = $3
		RETURNING ` + userColumns

	u, err := scanUser(tx.Unwrap(t).QueryRow(ctx, query, name, email, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, app_errors.NotFound("user.not_found")
		}
		return nil, app_errors.MapPgxError(err, "auth.email_taken")
	}
	return u, nil
}

func (r *UserRepo) UpdatePassword(ctx context.Context, userID string, passwordHash string) *app_errors.AppError {
	query := `UPDATE users SET password_hash = $1, updated_at = now() WHERE id = $2`

	tag, err := r.db.Exec(ctx, query, passwordHash, userID)
	if err != nil {
		return app_errors.Internal(err)
	}
	if tag.RowsAffected() == 0 {
		return app_errors.NotFound("user.not_found")
	}
	return nil
}

func (r *UserRepo) SetResetToken(ctx context.Context, userID string, tokenHash string, expires time.Time) *app_errors.AppError {
	query := `UPDATE users SET reset_token_hash = $1, reset_token_expires = $2 WHERE id = $3`

	if _, err := r.db.Exec(ctx, query, tokenHash, expires, userID); err != nil {
		return app_errors.Internal(err)
	}
	return nil
}

func (r *UserRepo) FindByResetTokenHash(ctx context.Context, tokenHash string) (*entity.UserEntity, *app_errors.AppError) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE reset_token_hash = $1 AND reset_token_expires > now()
		LIMIT 1`

	u, err := scanUser(r.db.QueryRow(ctx, query, tokenHash))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, app_errors.BadRequest("auth.reset_token_invalid")
		}
		return nil, app_errors.Internal(err)
	}
	return u, nil
}

// ResetPassword setzt das Passwort und verwirft den Reset-Token in einem Schritt.
func (r *UserRepo) ResetPassword(ctx context.Context, t tx.Tx, userID string, passwordHash string) *app_errors.AppError {
	query := `
		UPDATE users
		SET password_hash = $1,
			reset_token_hash = NULL,
			reset_token_expires = NULL,
			refresh_token = NULL,
			updated_at = now()
		WHERE id = $2`

	if _, err := tx.Unwrap(t).Exec(ctx, query, passwordHash, userID); err != nil {
		return app_errors.Internal(err)
	}
	return nil
}

func (r *UserRepo) SetRefreshToken(ctx context.Context, userID string, refreshToken *string) *app_errors.AppError {
	query := `UPDATE users SET refresh_token = $1 WHERE id = $2`

	if _, err := r.db.Exec(ctx, query, refreshToken, userID); err != nil {
		return app_errors.Internal(err)
	}
	return nil
}

func (r *UserRepo) ListRefsByIDs(ctx context.Context, userIDs []string) ([]entity.UserRef, *app_errors.AppError) {
	if len(userIDs) == 0 {
		return []entity.UserRef{}, nil
	}

	query := `SELECT id, name, email FROM users WHERE id = ANY($1)`

	rows, err := r.db.Query(ctx, query, userIDs)
	if err != nil {
		return nil, app_errors.Internal(err)
	}
	defer rows.Close()

	refs := []entity.UserRef{}
	for rows.Next() {
		var ref entity.UserRef
		if err := rows.Scan(&ref.ID, &ref.Name, &ref.Email); err != nil {
			return nil, app_errors.Internal(err)
		}
		refs = append(refs, ref)
	}
	return refs, nil
}

func (r *UserRepo) SearchUsers(ctx context.Context, query string, limit int) ([]entity.UserRef, *app_errors.AppError) {
	sql := `
		SELECT id, name, email
		FROM users
		WHERE is_active AND (name ILIKE '%' || $1 || '%' OR email ILIKE '%' || $1 || '%')
		ORDER BY name
		LIMIT $2`

	rows, err := r.db.Query(ctx, sql, query, limit)
	if err != nil {
		return nil, app_errors.Internal(err)
	}
	defer rows.Close()

	refs := []entity.UserRef{}
	for rows.Next() {
		var ref entity.UserRef
		if err := rows.Scan(&ref.ID, &ref.Name, &ref.Email); err != nil {
			return nil, app_errors.Internal(err)
		}
		refs = append(refs, ref)
	}
	return refs, nil
}
