// Package session keeps per-user conversation state between messages.
package session

import (
	"context"
	"sync"

	"namebot/internal/domain"
)

// Memory holds sessions in process memory. State is lost on restart.
type Memory struct {
	mu       sync.RWMutex
	sessions map[string]domain.ConversationState
}

func NewMemory() *Memory {
	return &Memory{sessions: make(map[string]domain.ConversationState)}
}

// Get returns the idle state for unknown sessions.
func (m *Memory) Get(_ context.Context, sessionID string) (domain.ConversationState, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	st, ok := m.sessions[sessionID]
	if !ok {
		return domain.ConversationState{Phase: domain.PhaseIdle}, nil
	}
	return st, nil
}

func (m *Memory) Save(_ context.Context, sessionID string, st domain.ConversationState) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[sessionID] = st
	return nil
}
