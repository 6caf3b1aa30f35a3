package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/amzplat/assetsvc/internal/core/ports/services"
	"github.com/amzplat/assetsvc/internal/dto"
	"github.com/amzplat/assetsvc/internal/middleware"
	"github.com/gin-gonic/gin"
)

// catalogHandler handles HTTP requests for the two reference catalogs.
type catalogHandler struct {
	catalogService portssvc.CatalogSvcFacade
}

// newCatalogHandler creates a new catalogHandler.
func newCatalogHandler(cs portssvc.CatalogSvcFacade) *catalogHandler {
	return &catalogHandler{
		catalogService: cs,
	}
}

// registerCatalogRoutes registers routes for asset and action type listings.
func registerCatalogRoutes(r *gin.Engine, catalogService portssvc.CatalogSvcFacade) {
	h := newCatalogHandler(catalogService)

	r.GET("/asset-types", h.listAssetTypes)
	r.GET("/action-types", h.listActionTypes)
}

// listAssetTypes returns every active asset type, served from the snapshot
// cache when it is fresh.
func (h *catalogHandler) listAssetTypes(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	assetTypes, err := h.catalogService.ListAssetTypes(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list asset types", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list asset types"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListAssetTypeResponse(assetTypes))
}

// listActionTypes returns every active action type with its directional rules.
func (h *catalogHandler) listActionTypes(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	actionTypes, err := h.catalogService.ListActionTypes(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list action types", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list action types"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListActionTypeResponse(actionTypes))
}
