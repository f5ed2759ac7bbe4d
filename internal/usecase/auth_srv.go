package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/MuruliCGPayroute/superpetzjp/internal/data/entity"
	"github.com/MuruliCGPayroute/superpetzjp/internal/data/repository"
	"github.com/MuruliCGPayroute/superpetzjp/internal/dto/request"
	"github.com/MuruliCGPayroute/superpetzjp/internal/dto/response"
	"github.com/MuruliCGPayroute/superpetzjp/pkg/mailer"
	"github.com/MuruliCGPayroute/superpetzjp/pkg/utils"

	"go.uber.org/zap"
)

const resetTokenTTL = time.Hour

type AuthService interface {
	Signup(ctx context.Context, req *request.SignupRequest) error
	AdminSignup(ctx context.Context, req *request.AdminSignupRequest) error
	Login(ctx context.Context, req *request.LoginRequest) (*response.SessionUser, error)
	AdminLogin(ctx context.Context, req *request.LoginRequest) (*response.SessionUser, error)
	RequestPasswordReset(ctx context.Context, req *request.RequestResetRequest) error
	ResetPassword(ctx context.Context, req *request.ResetPasswordRequest) error
}

type authService struct {
	userRepo  repository.UserRepository
	adminRepo repository.AdminRepository
	tokenRepo repository.ResetTokenRepository
	mail      mailer.Mailer
	cfg       *utils.Config
	log       *zap.Logger
}

func NewAuthService(repo *repository.Repository, mail mailer.Mailer, cfg *utils.Config, log *zap.Logger) AuthService {
	return &authService{
		userRepo:  repo.User,
		adminRepo: repo.Admin,
		tokenRepo: repo.ResetToken,
		mail:      mail,
		cfg:       cfg,
		log:       log,
	}
}

func (as *authService) Signup(ctx context.Context, req *request.SignupRequest) error {
	if errs := utils.ValidateStruct(req); errs != nil {
		return ErrValidation(utils.FormatValidationErrors(errs))
	}

	existing, err := as.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		as.log.Error("Failed to check existing user", zap.Error(err), zap.String("email", req.Email))
		return fmt.Errorf("failed to sign up: %w", err)
	}
	if existing != nil {
		return ErrConflict("Email already registered")
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		as.log.Error("Failed to hash password", zap.Error(err))
		return fmt.Errorf("failed to sign up: %w", err)
	}

	user := &entity.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         entity.RoleUser,
	}
	id, err := as.userRepo.Create(ctx, user)
	if err != nil {
		as.log.Error("Failed to create user", zap.Error(err), zap.String("email", req.Email))
		return fmt.Errorf("failed to sign up: %w", err)
	}

	as.log.Info("User registered", zap.Int64("user_id", id), zap.String("email", req.Email))
	return nil
}

func (as *authService) AdminSignup(ctx context.Context, req *request.AdminSignupRequest) error {
	if errs := utils.ValidateStruct(req); errs != nil {
		return ErrValidation(utils.FormatValidationErrors(errs))
	}
	if req.SecretKey != as.cfg.Admin.SignupSecret {
		as.log.Warn("Admin signup with wrong secret", zap.String("email", req.Email))
		return ErrForbidden("Invalid secret key")
	}

	existing, err := as.adminRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		as.log.Error("Failed to check existing admin", zap.Error(err), zap.String("email", req.Email))
		return fmt.Errorf("failed to sign up: %w", err)
	}
	if existing != nil {
		return ErrConflict("Email already registered")
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		as.log.Error("Failed to hash password", zap.Error(err))
		return fmt.Errorf("failed to sign up: %w", err)
	}

	id, err := as.adminRepo.Create(ctx, &entity.Admin{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         entity.RoleAdmin,
	})
	if err != nil {
		as.log.Error("Failed to create admin", zap.Error(err), zap.String("email", req.Email))
		return fmt.Errorf("failed to sign up: %w", err)
	}

	as.log.Info("Admin registered", zap.Int64("admin_id", id), zap.String("email", req.Email))
	return nil
}

// Login checks the customer table. Failures are reported with one uniform
// message so callers cannot probe which emails are registered.
func (as *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.SessionUser, error) {
	if errs := utils.ValidateStruct(req); errs != nil {
		return nil, ErrValidation(utils.FormatValidationErrors(errs))
	}

	user, err := as.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		as.log.Error("Failed to find user", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("failed to log in: %w", err)
	}
	if user == nil || !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, ErrUnauthorized("Invalid email or password")
	}

	sessionUser := response.UserToSession(user)
	return &sessionUser, nil
}

func (as *authService) AdminLogin(ctx context.Context, req *request.LoginRequest) (*response.SessionUser, error) {
	if errs := utils.ValidateStruct(req); errs != nil {
		return nil, ErrValidation(utils.FormatValidationErrors(errs))
	}

	admin, err := as.adminRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		as.log.Error("Failed to find admin", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("failed to log in: %w", err)
	}
	if admin == nil || !utils.CheckPasswordHash(req.Password, admin.PasswordHash) {
		return nil, ErrUnauthorized("Invalid email or password")
	}

	return &response.SessionUser{
		UserID:   admin.ID,
		Username: admin.Username,
		Email:    admin.Email,
		Role:     string(admin.Role),
	}, nil
}

// RequestPasswordReset issues a single-use token and mails a reset link.
// An unknown email is not an error: the response is identical either way.
func (as *authService) RequestPasswordReset(ctx context.Context, req *request.RequestResetRequest) error {
	if errs := utils.ValidateStruct(req); errs != nil {
		return ErrValidation(utils.FormatValidationErrors(errs))
	}

	user, err := as.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		as.log.Error("Failed to find user for reset", zap.Error(err), zap.String("email", req.Email))
		return fmt.Errorf("failed to request reset: %w", err)
	}
	if user == nil {
		as.log.Info("Password reset requested for unknown email", zap.String("email", req.Email))
		return nil
	}

	token, err := utils.GenerateResetToken()
	if err != nil {
		as.log.Error("Failed to generate reset token", zap.Error(err))
		return fmt.Errorf("failed to request reset: %w", err)
	}

	expiry := time.Now().Add(resetTokenTTL).UnixMilli()
	if err := as.tokenRepo.Upsert(ctx, user.ID, utils.HashToken(token), expiry); err != nil {
		as.log.Error("Failed to store reset token", zap.Error(err), zap.Int64("user_id", user.ID))
		return fmt.Errorf("failed to request reset: %w", err)
	}

	link := fmt.Sprintf("%s/reset-password/%s", as.cfg.App.ClientURL, token)
	body := fmt.Sprintf(`<p>Hello %s,</p>
<p>We received a request to reset your password. Click the link below to choose a new one. The link expires in 1 hour.</p>
<p><a href="%s">Reset your password</a></p>
<p>If you did not ask for this, you can ignore this email.</p>`, user.Username, link)

	// Mail delivery must not block or fail the request.
	go func() {
		if err := as.mail.Send(user.Email, "Password Reset Request", body); err != nil {
			as.log.Error("Failed to send reset email", zap.Error(err), zap.String("email", user.Email))
		}
	}()

	as.log.Info("Password reset token issued", zap.Int64("user_id", user.ID))
	return nil
}

func (as *authService) ResetPassword(ctx context.Context, req *request.ResetPasswordRequest) error {
	if errs := utils.ValidateStruct(req); errs != nil {
		return ErrValidation(utils.FormatValidationErrors(errs))
	}

	record, err := as.tokenRepo.FindValid(ctx, utils.HashToken(req.Token), time.Now().UnixMilli())
	if err != nil {
		as.log.Error("Failed to look up reset token", zap.Error(err))
		return fmt.Errorf("failed to reset password: %w", err)
	}
	if record == nil {
		return ErrValidation("Invalid or expired token")
	}

	hash, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		as.log.Error("Failed to hash new password", zap.Error(err))
		return fmt.Errorf("failed to reset password: %w", err)
	}
	if err := as.userRepo.UpdatePassword(ctx, record.UserID, hash); err != nil {
		as.log.Error("Failed to update password", zap.Error(err), zap.Int64("user_id", record.UserID))
		return fmt.Errorf("failed to reset password: %w", err)
	}

	// Token is single use.
	if err := as.tokenRepo.DeleteByUserID(ctx, record.UserID); err != nil {
		as.log.Error("Failed to delete used reset token", zap.Error(err), zap.Int64("user_id", record.UserID))
	}

	as.log.Info("Password reset", zap.Int64("user_id", record.UserID))
	return nil
}
