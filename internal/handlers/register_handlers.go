package handlers

import (
	portssvc "github.com/amzplat/assetsvc/internal/core/ports/services"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(r *gin.Engine, services *portssvc.ServiceContainer) {
	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	registerCatalogRoutes(r, services.Catalog)
	registerAccountRoutes(r, services.Account)
}
