package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Chat endpoints.
	ChatHandler        gin.HandlerFunc
	ResetChatHandler   gin.HandlerFunc
	ChatHistoryHandler gin.HandlerFunc

	// Health endpoint.
	HealthHandler gin.HandlerFunc
}

// NewHandlerBundle assembles the bundle from the chat handler.
func NewHandlerBundle(chat *ChatHandler) *HandlerBundle {
	return &HandlerBundle{
		ChatHandler:        chat.HandleChat,
		ResetChatHandler:   chat.HandleReset,
		ChatHistoryHandler: chat.HandleHistory,
		HealthHandler:      HandleHealth,
	}
}
