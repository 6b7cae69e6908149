// Package store holds completed recommendation responses for later retrieval
// by request id. The store is append-only: responses are written once and
// never updated or evicted.
package store

import (
	"sync"

	"github.com/pixie/outfit-stylist/internal/types"
)

// Store is the session store consumed by the orchestrator and the server.
type Store interface {
	// Get returns the response for a request id, or false when absent.
	Get(id string) (*types.RecommendationResponse, bool)
	// Set records a response under its request id. Later writes to the same
	// id are ignored.
	Set(id string, response *types.RecommendationResponse)
	// Len reports the number of stored responses.
	Len() int
}

// Memory is an in-memory Store implementation safe for concurrent use.
type Memory struct {
	mu        sync.RWMutex
	responses map[string]*types.RecommendationResponse
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		responses: make(map[string]*types.RecommendationResponse),
	}
}

// Get returns the response for a request id.
func (m *Memory) Get(id string) (*types.RecommendationResponse, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	response, ok := m.responses[id]
	return response, ok
}

// Set records a response, keeping the first write for an id.
func (m *Memory) Set(id string, response *types.RecommendationResponse) {
	if id == "" || response == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.responses[id]; exists {
		return
	}
	m.responses[id] = response
}

// Len reports the number of stored responses.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.responses)
}
