package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/sanikac1014/Altu-health-app/internal/api/handlers"
)

type AssistantRoutes struct {
	handler *handlers.AssistantHandler
}

func NewAssistantRoutes(handler *handlers.AssistantHandler) *AssistantRoutes {
	return &AssistantRoutes{handler: handler}
}

// RegisterRoutes registers all assistant-related routes
func (a *AssistantRoutes) RegisterRoutes(router *gin.Engine) {
	assistant := router.Group("/api/assistant")

	assistant.POST("/ask", a.handler.Ask)
}
