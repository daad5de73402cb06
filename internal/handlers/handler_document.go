package handlers

import (
	"log/slog"
	"net/http"

	"github.com/alazar/finance-backend/internal/core/services"
	"github.com/alazar/finance-backend/internal/dto"
	"github.com/alazar/finance-backend/internal/middleware"
	"github.com/alazar/finance-backend/internal/models"
	"github.com/gin-gonic/gin"
)

// documentHandler serves whole-document fetch/replace and the singleton
// organization and app-settings records.
type documentHandler struct {
	svc *services.DocumentService
}

func newDocumentHandler(svc *services.DocumentService) *documentHandler {
	return &documentHandler{svc: svc}
}

func registerDocumentRoutes(rg *gin.RouterGroup, svc *services.DocumentService) {
	h := newDocumentHandler(svc)

	rg.GET("/data", h.getDocument)
	rg.PUT("/data", h.replaceDocument)
	rg.GET("/organization", h.getOrganization)
	rg.PUT("/organization", h.updateOrganization)
	rg.GET("/app-settings", h.getAppSettings)
	rg.PUT("/app-settings", h.updateAppSettings)
}

func (h *documentHandler) getDocument(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	doc, err := h.svc.Get(c.Request.Context())
	if err != nil {
		logger.Error("Failed to load document", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, doc)
}

func (h *documentHandler) replaceDocument(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var doc models.Document
	if err := c.ShouldBindJSON(&doc); err != nil {
		logger.Warn("Failed to bind document", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	if err := h.svc.Replace(c.Request.Context(), doc); err != nil {
		logger.Error("Failed to save document", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save data"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *documentHandler) getOrganization(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	org, err := h.svc.GetOrganization(c.Request.Context())
	if err != nil {
		logger.Error("Failed to load organization", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, org)
}

func (h *documentHandler) updateOrganization(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var patch dto.OrganizationPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		logger.Warn("Failed to bind organization patch", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	org, err := h.svc.UpdateOrganization(c.Request.Context(), patch)
	if err != nil {
		logger.Error("Failed to update organization", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, org)
}

func (h *documentHandler) getAppSettings(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	settings, err := h.svc.GetAppSettings(c.Request.Context())
	if err != nil {
		logger.Error("Failed to load app settings", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, settings)
}

func (h *documentHandler) updateAppSettings(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var patch dto.AppSettingsPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		logger.Warn("Failed to bind app settings patch", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	settings, err := h.svc.UpdateAppSettings(c.Request.Context(), patch)
	if err != nil {
		logger.Error("Failed to update app settings", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, settings)
}
