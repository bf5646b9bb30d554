package auth_case

import (
	"context"

	auth_dto "github.com/DevITJAX/FlowOps/internal/dtos/auth-dto"
	app_errors "github.com/DevITJAX/FlowOps/internal/errors"
)

type AuthServiceContract interface {
	Register(ctx context.Context, req *auth_dto.RegisterUserRequest) (*auth_dto.AuthResponse, *app_errors.AppError)
	Login(ctx context.Context, req *auth_dto.LoginUserRequest) (*auth_dto.AuthResponse, *app_errors.AppError)
	Me(ctx context.Context, userID string) (*auth_dto.UserResponse, *app_errors.AppError)
	ForgotPassword(ctx context.Context, req *auth_dto.ForgotPasswordRequest) *app_errors.AppError
	ResetPassword(ctx context.Context, rawToken string, req *auth_dto.ResetPasswordRequest) *app_errors.AppError
	RefreshToken(ctx context.Context, req *auth_dto.RefreshTokenRequest) (*auth_dto.AuthResponse, *app_errors.AppError)
	UpdatePassword(ctx context.Context, userID string, req *auth_dto.UpdatePasswordRequest) *app_errors.AppError
	UpdateProfile(ctx context.Context, userID string, req *auth_dto.UpdateProfileRequest) (*auth_dto.UserResponse, *app_errors.AppError)
	Logout(ctx context.Context, userID, jti string) *app_errors.AppError
}
