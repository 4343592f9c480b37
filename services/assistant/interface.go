package assistant

import (
	"context"

	"flightassist/models"
)

// AssistantService is the surface the chat handlers talk to.
type AssistantService interface {
	// Chat appends the user message to the conversation and runs one full
	// pipeline pass, returning the display-ready response.
	Chat(ctx context.Context, conversationID, message string) (*models.ChatResponse, error)
	// Reset discards a conversation's state. Reports false when the
	// conversation is unknown.
	Reset(conversationID string) bool
	// History returns the conversation's message log.
	History(conversationID string) ([]models.ChatMessage, bool)
}

// DefaultAssistantService wires the session registry to the pipeline.
type DefaultAssistantService struct {
	Sessions *SessionStore
	Pipeline *Pipeline
}

func NewDefaultAssistantService(sessions *SessionStore, pipeline *Pipeline) *DefaultAssistantService {
	return &DefaultAssistantService{Sessions: sessions, Pipeline: pipeline}
}

func (s *DefaultAssistantService) Chat(ctx context.Context, conversationID, message string) (*models.ChatResponse, error) {
	sess := s.Sessions.GetOrCreate(conversationID)

	var resp *models.ChatResponse
	var runErr error
	sess.Do(func(st *models.ConversationState) {
		st.Messages = append(st.Messages, models.ChatMessage{Role: "user", Content: message})

		if _, err := s.Pipeline.RunTurn(ctx, st); err != nil {
			runErr = err
			return
		}

		reply := ""
		if n := len(st.Messages); n > 0 && st.Messages[n-1].Role == "assistant" {
			reply = st.Messages[n-1].Content
		}

		resp = &models.ChatResponse{
			ConversationID: sess.ID,
			Reply:          reply,
			CurrentStep:    st.CurrentStep,
			MissingFields:  st.MissingFields,
			Offers:         st.FlightOffers,
			Analysis:       st.LLMAnalysis,
			Error:          st.LastError,
		}
	})

	if runErr != nil {
		return nil, runErr
	}
	return resp, nil
}

func (s *DefaultAssistantService) Reset(conversationID string) bool {
	_, ok := s.Sessions.Reset(conversationID)
	return ok
}

func (s *DefaultAssistantService) History(conversationID string) ([]models.ChatMessage, bool) {
	sess, ok := s.Sessions.Get(conversationID)
	if !ok {
		return nil, false
	}

	var history []models.ChatMessage
	sess.Do(func(st *models.ConversationState) {
		history = append(history, st.Messages...)
	})
	return history, true
}
