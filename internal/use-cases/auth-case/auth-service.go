package auth_case

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/DevITJAX/FlowOps/internal/abstraction/tx"
	auth_dto "github.com/DevITJAX/FlowOps/internal/dtos/auth-dto"
	"github.com/DevITJAX/FlowOps/internal/entity"
	app_errors "github.com/DevITJAX/FlowOps/internal/errors"
	"github.com/DevITJAX/FlowOps/internal/middleware"
	"github.com/DevITJAX/FlowOps/internal/queue"
	user_repo "github.com/DevITJAX/FlowOps/internal/repo/user-repo"
	"github.com/DevITJAX/FlowOps/internal/utils"
	worker_task "github.com/DevITJAX/FlowOps/internal/worker/tasks"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	accessTokenDuration  = 15 * time.Minute
	refreshTokenDuration = 7 * 24 * time.Hour
	resetTokenDuration   = 10 * time.Minute
)

type AuthService struct {
	redis     *redis.Client
	repo      user_repo.UserRepoContract
	txm       tx.TxManager
	maker     *utils.PasetoMaker
	taskQueue queue.TaskQueueContract
}

func NewAuthService(db *pgxpool.Pool, redis *redis.Client, maker *utils.PasetoMaker) AuthServiceContract {
	return &AuthService{
		redis:     redis,
		repo:      user_repo.NewUserRepo(db),
		txm:       tx.NewPgxTxManager(db),
		maker:     maker,
		taskQueue: queue.NewTaskQueue(redis),
	}
}

// issueTokens erstellt Access- und Refresh-Token mit gemeinsamer Session-ID,
// hinterlegt die Session in Redis und den Refresh-Token am Benutzer.
func (s *AuthService) issueTokens(ctx context.Context, user *entity.UserEntity) (*auth_dto.AuthResponse, *app_errors.AppError) {
	jti, err := gonanoid.New()
	if err != nil {
		return nil, app_errors.Internal(err)
	}

	accessToken, err := s.maker.CreateToken(user.ID, user.Name, user.Email, string(user.Role), jti, utils.ScopeAccess, accessTokenDuration)
	if err != nil {
		return nil, app_errors.Internal(err)
	}

	refreshToken, err := s.maker.CreateToken(user.ID, user.Name, user.Email, string(user.Role), jti, utils.ScopeRefresh, refreshTokenDuration)
	if err != nil {
		return nil, app_errors.Internal(err)
	}

	session := middleware.SessionTracker{
		JTI:     jti,
		UserID:  user.ID,
		Token:   accessToken,
		LoginAt: time.Now().Format(time.RFC3339),
	}
	if appErr := utils.SetCacheData(ctx, s.redis, "session:"+jti, &session, accessTokenDuration); appErr != nil {
		return nil, appErr
	}

	if appErr := s.repo.SetRefreshToken(ctx, user.ID, &refreshToken); appErr != nil {
		return nil, appErr
	}

	return &auth_dto.AuthResponse{
		User:         auth_dto.ToUserResponse(user),
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func (s *AuthService) Register(ctx context.Context, req *auth_dto.RegisterUserRequest) (*auth_dto.AuthResponse, *app_errors.AppError) {
	hash, err := utils.GenerateHash(req.Password)
	if err != nil {
		return nil, app_errors.Internal(err)
	}

	role := entity.RoleMember
	if req.Role != "" {
		role = entity.UserRole(req.Role)
	}

	userID, idErr := uuid.NewV7()
	if idErr != nil {
		return nil, app_errors.Internal(idErr)
	}

	t, appErr := s.txm.Begin(ctx)
	if appErr != nil {
		return nil, appErr
	}
	committed := false
	defer func() {
		if !committed {
			_ = t.Rollback(ctx)
		}
	}()

	user, appErr := s.repo.CreateUser(ctx, t, &entity.UserEntity{
		ID:           userID.String(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         role,
		IsActive:     true,
		CreatedAt:    time.Now(),
	})
	if appErr != nil {
		return nil, appErr
	}

	if appErr := t.Commit(ctx); appErr != nil {
		return nil, appErr
	}
	committed = true

	return s.issueTokens(ctx, user)
}

func (s *AuthService) Login(ctx context.Context, req *auth_dto.LoginUserRequest) (*auth_dto.AuthResponse, *app_errors.AppError) {
	user, appErr := s.repo.FindByEmail(ctx, req.Email)
	if appErr != nil {
		if appErr.Type == app_errors.ErrNotFound {
			return nil, app_errors.Unauthorized("auth.invalid_credentials")
		}
		return nil, appErr
	}

	if !user.IsActive {
		return nil, app_errors.Unauthorized("auth.account_disabled")
	}

	if ok, _ := utils.VerifyHash(user.PasswordHash, req.Password); !ok {
		return nil, app_errors.Unauthorized("auth.invalid_credentials")
	}

	return s.issueTokens(ctx, user)
}

func (s *AuthService) Me(ctx context.Context, userID string) (*auth_dto.UserResponse, *app_errors.AppError) {
	user, appErr := s.repo.FindByID(ctx, userID)
	if appErr != nil {
		return nil, appErr
	}

	resp := auth_dto.ToUserResponse(user)
	return &resp, nil
}

// ForgotPassword verhält sich für unbekannte Adressen identisch zu bekannten,
// damit sich keine Konten enumerieren lassen.
func (s *AuthService) ForgotPassword(ctx context.Context, req *auth_dto.ForgotPasswordRequest) *app_errors.AppError {
	user, appErr := s.repo.FindByEmail(ctx, req.Email)
	if appErr != nil {
		if appErr.Type == app_errors.ErrNotFound {
			return nil
		}
		return appErr
	}

	rawToken, err := gonanoid.New(48)
	if err != nil {
		return app_errors.Internal(err)
	}

	hash := sha256.Sum256([]byte(rawToken))
	tokenHash := hex.EncodeToString(hash[:])

	if appErr := s.repo.SetResetToken(ctx, user.ID, tokenHash, time.Now().Add(resetTokenDuration)); appErr != nil {
		return appErr
	}

	if err := s.taskQueue.EnqueueSendPasswordResetEmail(&worker_task.SendPasswordResetEmailPayload{
		Email:    user.Email,
		Name:     user.Name,
		RawToken: rawToken,
	}); err != nil {
		log.Error().Err(err).Msg("Fehler beim Einreihen der Reset-Mail")
	}

	return nil
}

func (s *AuthService) ResetPassword(ctx context.Context, rawToken string, req *auth_dto.ResetPasswordRequest) *app_errors.AppError {
	hash := sha256.Sum256([]byte(rawToken))
	tokenHash := hex.EncodeToString(hash[:])

	user, appErr := s.repo.FindByResetTokenHash(ctx, tokenHash)
	if appErr != nil {
		return appErr
	}

	passwordHash, err := utils.GenerateHash(req.Password)
	if err != nil {
		return app_errors.Internal(err)
	}

	t, appErr := s.txm.Begin(ctx)
	if appErr != nil {
		return appErr
	}
	committed := false
	defer func() {
		if !committed {
			_ = t.Rollback(ctx)
		}
	}()

	if appErr := s.repo.ResetPassword(ctx, t, user.ID, passwordHash); appErr != nil {
		return appErr
	}

	if appErr := t.Commit(ctx); appErr != nil {
		return appErr
	}
	committed = true

	return nil
}

func (s *AuthService) RefreshToken(ctx context.Context, req *auth_dto.RefreshTokenRequest) (*auth_dto.AuthResponse, *app_errors.AppError) {
	payload, err := s.maker.VerifyToken(req.RefreshToken)
	if err != nil || payload.Scope != utils.ScopeRefresh {
		return nil, app_errors.Unauthorized("auth.invalid_token")
	}

	user, appErr := s.repo.FindByID(ctx, payload.UserID)
	if appErr != nil {
		return nil, appErr
	}

	// Nur der zuletzt ausgegebene Refresh-Token ist gültig (Rotation).
	if user.RefreshToken == nil || *user.RefreshToken != req.RefreshToken || !user.IsActive {
		return nil, app_errors.Unauthorized("auth.invalid_token")
	}

	if err := utils.DeleteCacheData(ctx, s.redis, "session:"+payload.JTI); err != nil {
		log.Warn().Err(err).Msg("Fehler beim Verwerfen der alten Session")
	}

	return s.issueTokens(ctx, user)
}

func (s *AuthService) UpdatePassword(ctx context.Context, userID string, req *auth_dto.UpdatePasswordRequest) *app_errors.AppError {
	user, appErr := s.repo.FindByID(ctx, userID)
	if appErr != nil {
		return appErr
	}

	if ok, _ := utils.VerifyHash(user.PasswordHash, req.CurrentPassword); !ok {
		return app_errors.Unauthorized("auth.invalid_credentials")
	}

	hash, err := utils.GenerateHash(req.NewPassword)
	if err != nil {
		return app_errors.Internal(err)
	}

	return s.repo.UpdatePassword(ctx, userID, hash)
}

func (s *AuthService) UpdateProfile(ctx context.Context, userID string, req *auth_dto.UpdateProfileRequest) (*auth_dto.UserResponse, *app_errors.AppError) {
	t, appErr := s.txm.Begin(ctx)
	if appErr != nil {
		return nil, appErr
	}
	committed := false
	defer func() {
		if !committed {
			_ = t.Rollback(ctx)
		}
	}()

	user, appErr := s.repo.UpdateProfile(ctx, t, userID, req.Name, req.Email)
	if appErr != nil {
		return nil, appErr
	}

	if appErr := t.Commit(ctx); appErr != nil {
		return nil, appErr
	}
	committed = true

	resp := auth_dto.ToUserResponse(user)
	return &resp, nil
}

func (s *AuthService) Logout(ctx context.Context, userID, jti string) *app_errors.AppError {
	if err := utils.DeleteCacheData(ctx, s.redis, "session:"+jti); err != nil {
		log.Warn().Err(err).Msg("Fehler beim Löschen der Session")
	}

	return s.repo.SetRefreshToken(ctx, userID, nil)
}
