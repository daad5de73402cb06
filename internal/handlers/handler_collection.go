package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/alazar/finance-backend/internal/apperrors"
	"github.com/alazar/finance-backend/internal/core/services"
	"github.com/alazar/finance-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// collectionHandler serves the uniform CRUD surface of one entity
// collection. kind names the entity in error bodies ("Client not found").
type collectionHandler[T services.Entity[T], P services.Patch[T]] struct {
	svc  *services.CollectionService[T, P]
	kind string
}

func newCollectionHandler[T services.Entity[T], P services.Patch[T]](
	svc *services.CollectionService[T, P], kind string,
) *collectionHandler[T, P] {
	return &collectionHandler[T, P]{svc: svc, kind: kind}
}

// registerCollectionRoutes wires the full CRUD route set under path.
func registerCollectionRoutes[T services.Entity[T], P services.Patch[T]](
	rg *gin.RouterGroup, path string, h *collectionHandler[T, P],
) {
	rg.GET(path, h.list)
	rg.POST(path, h.create)
	rg.PUT(path+"/:id", h.update)
	rg.DELETE(path+"/:id", h.remove)
}

func (h *collectionHandler[T, P]) list(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	items, err := h.svc.List(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list collection", slog.String("kind", h.kind), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *collectionHandler[T, P]) create(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var entity T
	if err := c.ShouldBindJSON(&entity); err != nil {
		logger.Warn("Failed to bind create request", slog.String("kind", h.kind), slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	created, err := h.svc.Create(c.Request.Context(), entity)
	if err != nil {
		logger.Error("Failed to create entity", slog.String("kind", h.kind), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, created)
}

func (h *collectionHandler[T, P]) update(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id := c.Param("id")

	var patch P
	if err := c.ShouldBindJSON(&patch); err != nil {
		logger.Warn("Failed to bind update request", slog.String("kind", h.kind), slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updated, err := h.svc.Update(c.Request.Context(), id, patch)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": h.kind + " not found"})
			return
		}
		logger.Error("Failed to update entity", slog.String("kind", h.kind), slog.String("id", id), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *collectionHandler[T, P]) remove(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id := c.Param("id")

	if err := h.svc.Remove(c.Request.Context(), id); err != nil {
		logger.Error("Failed to remove entity", slog.String("kind", h.kind), slog.String("id", id), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
