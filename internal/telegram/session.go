package telegram

import "sync"

type State int

const (
	StateAwaitingPhone State = iota
	StateAwaitingCode
	StateAdminMenu
	StateAwaitingBroadcast
)

// Session is the in-flight conversation for one chat. It is not
// persisted; a restart drops every session.
type Session struct {
	State      State
	Phone      string
	RandomHash string
}

// SessionStore owns the per-chat sessions. The bot processes one
// message at a time, the mutex only guards map access.
type SessionStore struct {
	mu sync.Mutex
	m  map[int64]*Session
}

func NewSessionStore() *SessionStore {
	return &SessionStore{m: make(map[int64]*Session)}
}

func (s *SessionStore) Get(chatID int64) (*Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.m[chatID]
	return sess, ok
}

func (s *SessionStore) Set(chatID int64, sess *Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[chatID] = sess
}

func (s *SessionStore) Delete(chatID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.m, chatID)
}
