package user_repo

import (
	"context"
	"time"

	"github.com/DevITJAX/FlowOps/internal/abstraction/tx"
	"github.com/DevITJAX/FlowOps/internal/entity"
	app_errors "github.com/DevITJAX/FlowOps/internal/errors"
)

type UserRepoContract interface {
	CreateUser(ctx context.Context, t tx.Tx, user *entity.UserEntity) (*entity.UserEntity, *app_errors.AppError)
	FindByID(ctx context.Context, userID string) (*entity.UserEntity, *app_errors.AppError)
	FindByEmail(ctx context.Context, email string) (*entity.UserEntity, *app_errors.AppError)
	UpdateProfile(ctx context.Context, t tx.Tx, userID string, name, email *string) (*entity.UserEntity, *app_errors.AppError)
	UpdatePassword(ctx context.Context, userID string, passwordHash string) *app_errors.AppError
	SetResetToken(ctx context.Context, userID string, tokenHash string, expires time.Time) *app_errors.AppError
	FindByResetTokenHash(ctx context.Context, tokenHash string) (*entity.UserEntity, *app_errors.AppError)
	ResetPassword(ctx context.Context, t tx.Tx, userID string, passwordHash string) *app_errors.AppError
	SetRefreshToken(ctx context.Context, userID string, refreshToken *string) *app_errors.AppError
	ListRefsByIDs(ctx context.Context, userIDs []string) ([]entity.UserRef, *app_errors.AppError)
	SearchUsers(ctx context.Context, query string, limit int) ([]entity.UserRef, *app_errors.AppError)
}
