package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/alazar/finance-backend/internal/apperrors"
	"github.com/alazar/finance-backend/internal/core/services"
	"github.com/alazar/finance-backend/internal/dto"
	"github.com/alazar/finance-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// authHandler serves login, token verification and logout.
type authHandler struct {
	svc *services.AuthService
}

func newAuthHandler(svc *services.AuthService) *authHandler {
	return &authHandler{svc: svc}
}

func registerAuthRoutes(rg *gin.RouterGroup, svc *services.AuthService, rateLimit gin.HandlerFunc) {
	h := newAuthHandler(svc)

	auth := rg.Group("/auth")
	auth.POST("/login", rateLimit, h.login)
	auth.POST("/verify", h.verify)
	auth.POST("/logout", h.logout)
}

func (h *authHandler) login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username and password are required"})
		return
	}

	token, username, err := h.svc.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, apperrors.ErrUnauthorized) {
			logger.Warn("Login failed", slog.String("username", req.Username))
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}
		logger.Error("Login error", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	logger.Info("Login succeeded", slog.String("username", username))
	c.JSON(http.StatusOK, dto.LoginResponse{Token: token, Username: username})
}

func (h *authHandler) verify(c *gin.Context) {
	var req dto.VerifyRequest
	_ = c.ShouldBindJSON(&req)

	if h.svc.Verify(c.Request.Context(), req.Token) {
		c.JSON(http.StatusOK, dto.VerifyResponse{Valid: true})
		return
	}
	c.JSON(http.StatusUnauthorized, dto.VerifyResponse{Valid: false})
}

// logout always reports success, even without a token to revoke.
func (h *authHandler) logout(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if token, ok := middleware.BearerToken(c); ok {
		if err := h.svc.Logout(c.Request.Context(), token); err != nil {
			logger.Error("Failed to persist token revocation", slog.String("error", err.Error()))
		}
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
