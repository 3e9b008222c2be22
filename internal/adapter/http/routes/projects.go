package routes

import (
	"projeto_solar/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

func addProjectRoutes(rg *gin.RouterGroup, h *handlers.ProjectHandler) {
	projects := rg.Group("/projects")

	projects.POST("", h.CreateProject)
	projects.GET("", h.ListProjects)
	projects.GET("/:id", h.GetProject)
	projects.POST("/steps/:step/validate", h.ValidateStep)
}
