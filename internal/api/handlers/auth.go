package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/baharkarakas/blog-backend/internal/api/httpx"
	"github.com/baharkarakas/blog-backend/internal/api/validate"
	"github.com/baharkarakas/blog-backend/internal/metrics"
	"github.com/baharkarakas/blog-backend/internal/services"
)

type AuthHandler struct {
	svc *services.AuthService
}

func NewAuthHandler(svc *services.AuthService) *AuthHandler { return &AuthHandler{svc: svc} }

type registerReq struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	RoleID   int64  `json:"roleId"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if errs := validate.Collect(
		validate.Required("username", req.Username, "Username is required"),
		validate.Email("email", req.Email),
		validate.MinLen("password", req.Password, 8, "Password must be at least 8 characters long"),
		validate.Positive("roleId", req.RoleID, "Valid role ID is required"),
	); errs != nil {
		slog.Error("register: validation failed", "errors", errs.Error())
		httpx.WriteFieldErrors(w, errs)
		return
	}

	err := h.svc.Register(r.Context(), req.Username, req.Email, req.Password, req.RoleID)
	switch {
	case err == nil:
		httpx.WriteMessage(w, http.StatusCreated, "User registered successfully")
	case errors.Is(err, services.ErrInvalidEmail):
		httpx.WriteMessage(w, http.StatusBadRequest, "Invalid email format")
	case errors.Is(err, services.ErrWeakPassword):
		httpx.WriteMessage(w, http.StatusBadRequest, "Password does not meet criteria")
	case errors.Is(err, services.ErrEmailTaken):
		slog.Error("register: user already exists", "email", req.Email)
		httpx.WriteMessage(w, http.StatusBadRequest, "User already exists")
	case errors.Is(err, services.ErrInvalidRole):
		httpx.WriteMessage(w, http.StatusBadRequest, "Invalid role")
	default:
		slog.Error("register: failed", "err", err)
		httpx.WriteMessage(w, http.StatusInternalServerError, "Error registering the user")
	}
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginUser struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     int64  `json:"role"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if errs := validate.Collect(
		validate.Email("email", req.Email),
		validate.Required("password", req.Password, "Password is required"),
	); errs != nil {
		httpx.WriteFieldErrors(w, errs)
		return
	}

	token, u, err := h.svc.Login(r.Context(), req.Email, req.Password)
	switch {
	case err == nil:
		httpx.WriteJSON(w, http.StatusOK, map[string]any{
			"message": "User logged in successfully",
			"token":   token,
			"user":    loginUser{ID: u.ID, Username: u.Username, Email: u.Email, Role: u.RoleID},
		})
	case errors.Is(err, services.ErrUserNotFound):
		httpx.WriteMessage(w, http.StatusNotFound, "User not found")
	case errors.Is(err, services.ErrInvalidCredentials):
		metrics.AuthFailuresTotal.WithLabelValues("bad_credentials").Inc()
		httpx.WriteMessage(w, http.StatusUnauthorized, "Invalid credentials")
	default:
		slog.Error("login: failed", "err", err)
		httpx.WriteMessage(w, http.StatusInternalServerError, "Error logging in")
	}
}

type forgotPasswordReq struct {
	Email string `json:"email"`
}

func (h *AuthHandler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req forgotPasswordReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if errs := validate.Collect(validate.Email("email", req.Email)); errs != nil {
		httpx.WriteFieldErrors(w, errs)
		return
	}

	err := h.svc.ForgotPassword(r.Context(), req.Email)
	switch {
	case err == nil:
		httpx.WriteMessage(w, http.StatusOK, "Password reset email sent")
	case errors.Is(err, services.ErrUserNotFound):
		httpx.WriteMessage(w, http.StatusNotFound, "User not found")
	default:
		slog.Error("forgot password: failed", "err", err)
		httpx.WriteMessage(w, http.StatusInternalServerError, "Error sending password reset email")
	}
}

type resetPasswordReq struct {
	Token       string `json:"token"`
	NewPassword string `json:"newPassword"`
}

func (h *AuthHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req resetPasswordReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if errs := validate.Collect(
		validate.Required("token", req.Token, "Token is required"),
		validate.MinLen("newPassword", req.NewPassword, 8, "Password must be at least 8 characters long"),
	); errs != nil {
		httpx.WriteFieldErrors(w, errs)
		return
	}

	err := h.svc.ResetPassword(r.Context(), req.Token, req.NewPassword)
	switch {
	case err == nil:
		httpx.WriteMessage(w, http.StatusOK, "Password has been reset successfully")
	case errors.Is(err, services.ErrInvalidToken):
		httpx.WriteMessage(w, http.StatusBadRequest, "Invalid token.")
	case errors.Is(err, services.ErrUserNotFound):
		httpx.WriteMessage(w, http.StatusNotFound, "User not found")
	case errors.Is(err, services.ErrWeakPassword):
		httpx.WriteMessage(w, http.StatusBadRequest, "Password does not meet criteria")
	default:
		slog.Error("reset password: failed", "err", err)
		httpx.WriteMessage(w, http.StatusInternalServerError, "Error resetting password")
	}
}
