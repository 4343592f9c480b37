package models

// ChatMessage is one turn in the conversation log.
type ChatMessage struct {
	Role    string `json:"role"` // "user" or "assistant"
	Content string `json:"content"`
}

// ChatRequest is the payload coming from the frontend into /api/chat.
type ChatRequest struct {
	ConversationID string `json:"conversation_id"` // empty starts a new conversation
	Message        string `json:"message" binding:"required"`
}

// ChatResponse is what the chat handler returns to the frontend.
type ChatResponse struct {
	ConversationID string        `json:"conversation_id"`
	Reply          string        `json:"reply"`
	CurrentStep    Step          `json:"current_step"`
	MissingFields  []string      `json:"missing_fields,omitempty"`
	Offers         []FlightOffer `json:"offers,omitempty"`
	Analysis       string        `json:"analysis,omitempty"`
	Error          string        `json:"error,omitempty"`
}
