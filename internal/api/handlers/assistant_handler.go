package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sanikac1014/Altu-health-app/internal/ai"
	"github.com/sanikac1014/Altu-health-app/internal/api/dto"
	"github.com/sanikac1014/Altu-health-app/internal/api/middleware"
	"github.com/sanikac1014/Altu-health-app/internal/domain/assistant"
)

// AssistantHandler handles HTTP requests for the Q&A assistant
type AssistantHandler struct {
	service assistant.Service
}

// NewAssistantHandler creates a new AssistantHandler instance
func NewAssistantHandler(service assistant.Service) *AssistantHandler {
	return &AssistantHandler{service: service}
}

// Ask godoc
// @Summary Ask a question about the loaded data
// @Description Answer a natural-language question using computed metrics and an external language model
// @Tags assistant
// @Accept json
// @Produce json
// @Param question body dto.AskRequest true "Question"
// @Success 200 {object} dto.AskResponse "Answer"
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 503 {object} map[string]string "Assistant not configured"
// @Router /api/assistant/ask [post]
func (h *AssistantHandler) Ask(c *gin.Context) {
	var req dto.AskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	answer, err := h.service.Ask(c.Request.Context(), assistant.AskInput{
		Question: req.Question,
		Chart:    req.Chart,
	})
	if err != nil {
		switch {
		case errors.Is(err, assistant.ErrEmptyQuestion):
			middleware.CountAssistantRequest("invalid")
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, ai.ErrMissingAPIKey):
			// Setup problem, not a transient failure. Tell the caller how
			// to fix it instead of suggesting a retry.
			middleware.CountAssistantRequest("unconfigured")
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"error": err.Error(),
				"hint":  "set the ASSISTANT_API_KEY (or OPENAI_API_KEY) environment variable and restart the server",
			})
		default:
			middleware.CountAssistantRequest("error")
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		}
		return
	}

	middleware.CountAssistantRequest("success")
	c.JSON(http.StatusOK, gin.H{"data": AnswerToResponse(answer)})
}
