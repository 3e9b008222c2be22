package routes

import (
	"projeto_solar/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

func addEquipmentRoutes(rg *gin.RouterGroup, h *handlers.EquipmentHandler) {
	equipment := rg.Group("/equipment")

	equipment.POST("", h.RegisterEquipment)
	equipment.GET("", h.ListEquipment)
}
