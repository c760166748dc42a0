package handlers

import (
	"net/http"

	"trimly/models"
	"trimly/services/agent"

	"github.com/gin-gonic/gin"
)

// ChatHandler exposes the conversational booking endpoint.
type ChatHandler struct {
	Agent *agent.Service
}

func NewChatHandler(agentSvc *agent.Service) *ChatHandler {
	return &ChatHandler{Agent: agentSvc}
}

// HandleChat processes one chat turn.
func (h *ChatHandler) HandleChat(c *gin.Context) {
	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if req.SessionID == "" {
		req.SessionID = "default"
	}

	resp := h.Agent.HandleMessage(c.Request.Context(), req.SessionID, req.Message)
	c.JSON(http.StatusOK, resp)
}
