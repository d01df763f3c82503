package llm

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
)

// MockResponse is one scripted reply for the MockProvider.
type MockResponse struct {
	Content json.RawMessage
	Usage   Usage
	Err     error
}

// MockCall records one Generate invocation with the purpose it ran
// under.
type MockCall struct {
	Purpose Purpose
	Request Request
}

// MockProvider is a deterministic Provider for tests. Replies can be
// scripted per purpose (so a reading call and a quiz call in the same
// test get the right payloads) with a FIFO fallback queue for tests
// that do not care.
type MockProvider struct {
	mu      sync.Mutex
	scripts map[Purpose][]MockResponse
	queue   []MockResponse
	Calls   []MockCall
}

// NewMockProvider creates a MockProvider whose fallback queue holds the
// given replies.
func NewMockProvider(responses ...MockResponse) *MockProvider {
	return &MockProvider{
		scripts: map[Purpose][]MockResponse{},
		queue:   responses,
	}
}

// Script queues replies for calls made under one purpose.
func (m *MockProvider) Script(p Purpose, responses ...MockResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.scripts[p] = append(m.scripts[p], responses...)
}

// Enqueue appends a reply to the fallback queue.
func (m *MockProvider) Enqueue(resp MockResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.queue = append(m.queue, resp)
}

func (m *MockProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	purpose := PurposeFrom(ctx)
	m.Calls = append(m.Calls, MockCall{Purpose: purpose, Request: req})

	next, ok := m.pop(purpose)
	if !ok {
		return nil, transportErr(errors.New("mock provider: no scripted response"))
	}
	if next.Err != nil {
		return nil, next.Err
	}

	return &Response{
		Content:    next.Content,
		Usage:      next.Usage,
		Model:      "mock",
		StopReason: "end",
	}, nil
}

// pop takes the next reply for the purpose, falling back to the shared
// queue. Callers hold the lock.
func (m *MockProvider) pop(p Purpose) (MockResponse, bool) {
	if q := m.scripts[p]; len(q) > 0 {
		m.scripts[p] = q[1:]
		return q[0], true
	}
	if len(m.queue) > 0 {
		next := m.queue[0]
		m.queue = m.queue[1:]
		return next, true
	}
	return MockResponse{}, false
}

// ModelID returns "mock".
func (m *MockProvider) ModelID() string {
	return "mock"
}

// CallCount returns the number of Generate calls made.
func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}
