package routes

import (
	"projeto_solar/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

func addAccessRoutes(rg *gin.RouterGroup, h *handlers.AccessHandler) {
	access := rg.Group("/access")

	access.GET("/:clientTaxId", h.GetAccess)
	access.PUT("/:clientTaxId", h.UpdateAccess)
}
