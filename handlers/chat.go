package handlers

import (
	"net/http"

	"flightassist/models"
	"flightassist/services/assistant"
	"flightassist/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ChatHandler exposes the assistant over HTTP.
type ChatHandler struct {
	Service assistant.AssistantService
}

func NewChatHandler(service assistant.AssistantService) *ChatHandler {
	return &ChatHandler{Service: service}
}

// HandleChat runs one conversational turn. Pipeline-internal failures are
// part of the normal response (explanatory reply plus the error field),
// never a 5xx; only a broken pipeline itself is a server error.
func (h *ChatHandler) HandleChat(c *gin.Context) {
	logger := utils.GetLogger()

	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid chat request", zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}

	resp, err := h.Service.Chat(c.Request.Context(), req.ConversationID, req.Message)
	if err != nil {
		logger.Error("Chat turn failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Assistant error", err.Error())
		return
	}

	c.JSON(http.StatusOK, resp)
}

// HandleReset discards a conversation's state.
func (h *ChatHandler) HandleReset(c *gin.Context) {
	id := c.Param("id")
	if !h.Service.Reset(id) {
		utils.JSONError(c, http.StatusNotFound, "Unknown conversation", id)
		return
	}
	c.JSON(http.StatusOK, gin.H{"conversation_id": id, "reset": true})
}

// HandleHistory returns the conversation's message log.
func (h *ChatHandler) HandleHistory(c *gin.Context) {
	id := c.Param("id")
	history, ok := h.Service.History(id)
	if !ok {
		utils.JSONError(c, http.StatusNotFound, "Unknown conversation", id)
		return
	}
	c.JSON(http.StatusOK, gin.H{"conversation_id": id, "messages": history})
}

// HandleHealth reports process liveness and provider configuration.
func HandleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, utils.GetHealthStatus())
}
