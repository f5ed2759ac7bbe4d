package adaptor

import (
	"encoding/json"
	"net/http"

	"github.com/MuruliCGPayroute/superpetzjp/internal/dto/request"
	"github.com/MuruliCGPayroute/superpetzjp/internal/usecase"
	"github.com/MuruliCGPayroute/superpetzjp/pkg/session"
	"github.com/MuruliCGPayroute/superpetzjp/pkg/utils"

	"go.uber.org/zap"
)

type AuthHandler struct {
	service  usecase.AuthService
	sessions *session.Manager
	log      *zap.Logger
}

func NewAuthHandler(service usecase.AuthService, sessions *session.Manager, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		service:  service,
		sessions: sessions,
		log:      log,
	}
}

// Signup handles POST /api/auth/signup
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req request.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if err := h.service.Signup(r.Context(), &req); err != nil {
		handleServiceError(w, h.log, err, "signup")
		return
	}

	utils.ResponseCreated(w, "User registered successfully", nil)
}

// AdminSignup handles POST /api/admin/auth/signup
func (h *AuthHandler) AdminSignup(w http.ResponseWriter, r *http.Request) {
	var req request.AdminSignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if err := h.service.AdminSignup(r.Context(), &req); err != nil {
		handleServiceError(w, h.log, err, "admin signup")
		return
	}

	utils.ResponseCreated(w, "Admin registered successfully", nil)
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	user, err := h.service.Login(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "login")
		return
	}

	identity := &utils.Identity{
		UserID:   user.UserID,
		Username: user.Username,
		Email:    user.Email,
		Role:     user.Role,
	}
	if _, err := h.sessions.Create(r.Context(), w, identity); err != nil {
		h.log.Error("Failed to create session", zap.Error(err), zap.Int64("user_id", user.UserID))
		utils.ResponseInternalError(w, "Internal server error")
		return
	}

	utils.ResponseSuccess(w, "Login successful", utils.Envelope{"user": user})
}

// AdminLogin handles POST /api/admin/auth/login
func (h *AuthHandler) AdminLogin(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	user, err := h.service.AdminLogin(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "admin login")
		return
	}

	identity := &utils.Identity{
		UserID:   user.UserID,
		Username: user.Username,
		Email:    user.Email,
		Role:     user.Role,
	}
	if _, err := h.sessions.Create(r.Context(), w, identity); err != nil {
		h.log.Error("Failed to create session", zap.Error(err), zap.Int64("user_id", user.UserID))
		utils.ResponseInternalError(w, "Internal server error")
		return
	}

	utils.ResponseSuccess(w, "Login successful", utils.Envelope{"user": user})
}

// Logout handles POST /api/auth/logout. Logging out without a live
// session still succeeds.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.Destroy(r.Context(), w, r); err != nil {
		h.log.Error("Failed to destroy session", zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
		return
	}
	utils.ResponseSuccess(w, "Logged out successfully", nil)
}

// AdminOnly handles GET /api/auth/admin-only, a role probe for the
// frontend's route guards.
func (h *AuthHandler) AdminOnly(w http.ResponseWriter, r *http.Request) {
	identity, ok := utils.GetIdentityFromContext(r.Context())
	if !ok {
		utils.ResponseForbidden(w, "Not authenticated")
		return
	}
	utils.ResponseSuccess(w, "Admin access granted", utils.Envelope{"user": identity})
}

// UserOnly handles GET /api/auth/user-only
func (h *AuthHandler) UserOnly(w http.ResponseWriter, r *http.Request) {
	identity, ok := utils.GetIdentityFromContext(r.Context())
	if !ok {
		utils.ResponseForbidden(w, "Not authenticated")
		return
	}
	utils.ResponseSuccess(w, "User access granted", utils.Envelope{"user": identity})
}

// RequestPasswordReset handles POST /api/request-reset. The reply is
// the same whether or not the email is registered.
func (h *AuthHandler) RequestPasswordReset(w http.ResponseWriter, r *http.Request) {
	var req request.RequestResetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if err := h.service.RequestPasswordReset(r.Context(), &req); err != nil {
		handleServiceError(w, h.log, err, "request password reset")
		return
	}

	utils.ResponseSuccess(w, "If that email is registered, a reset link has been sent", nil)
}

// ResetPassword handles POST /api/reset-password
func (h *AuthHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req request.ResetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if err := h.service.ResetPassword(r.Context(), &req); err != nil {
		handleServiceError(w, h.log, err, "reset password")
		return
	}

	utils.ResponseSuccess(w, "Password reset successfully", nil)
}
