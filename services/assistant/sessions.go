package assistant

import (
	"sync"

	"flightassist/models"

	"github.com/google/uuid"
)

// Session pairs a conversation ID with its state. The per-session mutex
// serializes pipeline passes so one conversation is always a single logical
// thread of control, even with concurrent HTTP clients.
type Session struct {
	ID string

	mu    sync.Mutex
	state *models.ConversationState
}

// Do runs fn with exclusive access to the session's state.
func (s *Session) Do(fn func(st *models.ConversationState)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.state)
}

// SessionStore is an in-memory registry of live conversations. Nothing is
// persisted; a conversation exists until it is reset or the process exits.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[string]*Session)}
}

// GetOrCreate returns the session for id, creating a fresh conversation
// when id is empty or unknown.
func (s *SessionStore) GetOrCreate(id string) *Session {
	if id != "" {
		if sess, ok := s.Get(id); ok {
			return sess
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if id == "" {
		id = uuid.NewString()
	}
	if sess, ok := s.sessions[id]; ok {
		return sess
	}
	sess := &Session{ID: id, state: models.NewConversationState()}
	s.sessions[id] = sess
	return sess
}

// Get looks up an existing session.
func (s *SessionStore) Get(id string) (*Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[id]
	return sess, ok
}

// Reset discards the conversation's state, keeping the ID so the client can
// continue under the same identifier.
func (s *SessionStore) Reset(id string) (*Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, false
	}
	sess.mu.Lock()
	sess.state = models.NewConversationState()
	sess.mu.Unlock()
	return sess, true
}
