package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/yizeng/gab/gin/gorm/travel-booking/internal/api/handler/v1/request"
	"github.com/yizeng/gab/gin/gorm/travel-booking/internal/api/handler/v1/response"
	"github.com/yizeng/gab/gin/gorm/travel-booking/internal/api/middleware"
	"github.com/yizeng/gab/gin/gorm/travel-booking/internal/service"
)

type AuthService interface {
	Login(ctx context.Context, username, password string) error
}

type SessionManager interface {
	StartSession(ctx *gin.Context) error
	EndSession(ctx *gin.Context) error
}

type AuthHandler struct {
	svc      AuthService
	sessions SessionManager
}

func NewAuthHandler(svc AuthService, sessions SessionManager) *AuthHandler {
	return &AuthHandler{
		svc:      svc,
		sessions: sessions,
	}
}

func (h *AuthHandler) HandleLoginForm(ctx *gin.Context) {
	if _, ok := middleware.AdminFromContext(ctx); ok {
		redirect(ctx, dashboardPath)
		return
	}

	renderLogin(ctx, request.LoginForm{}, nil)
}

// HandleLogin starts an admin session when the submitted credentials match
// the configured pair. A mismatch never says which field was wrong.
func (h *AuthHandler) HandleLogin(ctx *gin.Context) {
	var form request.LoginForm
	if err := ctx.ShouldBind(&form); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if fields := form.Parse(); fields != nil {
		renderLogin(ctx, form, fields)
		return
	}

	err := h.svc.Login(ctx.Request.Context(), form.Username, form.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) || errors.Is(err, service.ErrAdminLoginDisabled) {
			response.AddFlash(ctx, response.FlashDanger, "Invalid credentials!")
			renderLogin(ctx, form, nil)
			return
		}

		err = fmt.Errorf("v1.HandleLogin -> h.svc.Login -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	if err = h.sessions.StartSession(ctx); err != nil {
		err = fmt.Errorf("v1.HandleLogin -> h.sessions.StartSession -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	response.SetFlash(ctx, response.FlashSuccess, "Logged in as admin")
	redirect(ctx, dashboardPath)
}

func (h *AuthHandler) HandleLogout(ctx *gin.Context) {
	if err := h.sessions.EndSession(ctx); err != nil {
		// The cookie is already cleared; only the revocation failed.
		zap.L().Error("could not revoke admin session", zap.Error(err))
	}

	response.SetFlash(ctx, response.FlashInfo, "Logged out successfully.")
	redirect(ctx, "/")
}

func renderLogin(ctx *gin.Context, form request.LoginForm, fields request.FieldErrors) {
	form.Password = ""

	response.Render(ctx, http.StatusOK, "admin_login.html", gin.H{
		"Title":  "Admin login",
		"Form":   form,
		"Errors": fields,
	})
}
