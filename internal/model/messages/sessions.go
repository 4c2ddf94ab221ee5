package messages

import "sync"

// Sessions maps a chat to the ledger it is logged in to.
type Sessions struct {
	mu     sync.RWMutex
	ledger map[int64]string
}

func NewSessions() *Sessions {
	return &Sessions{ledger: make(map[int64]string)}
}

func (s *Sessions) Get(chatID int64) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.ledger[chatID]
	return id, ok
}

func (s *Sessions) Set(chatID int64, ledgerID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ledger[chatID] = ledgerID
}

func (s *Sessions) Delete(chatID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.ledger, chatID)
}
