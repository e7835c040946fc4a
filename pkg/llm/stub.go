package llm

import (
	"context"
	"strings"
	"sync"
)

// StubClient returns canned responses for tests and offline runs.
// Responses are matched by substring against the prompt; the first match
// wins, otherwise Default is returned.
type StubClient struct {
	mu        sync.Mutex
	Default   string
	Responses map[string]string // prompt substring → response
	calls     []string
	Err       error
}

// NewStubClient creates a stub with a default response.
func NewStubClient(defaultResponse string) *StubClient {
	return &StubClient{Default: defaultResponse}
}

// Think implements Client.
func (s *StubClient) Think(_ context.Context, prompt string, _ map[string]any) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, prompt)
	if s.Err != nil {
		return "", s.Err
	}
	for sub, resp := range s.Responses {
		if sub != "" && strings.Contains(prompt, sub) {
			return resp, nil
		}
	}
	return s.Default, nil
}

// Embed implements Client. Returns a deterministic vector derived from the
// text length.
func (s *StubClient) Embed(_ context.Context, text string) ([]float32, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	vec := make([]float32, EmbeddingDim)
	for i := range vec {
		vec[i] = float32((len(text)+i)%97) / 97
	}
	return vec, nil
}

// Calls returns the prompts seen so far.
func (s *StubClient) Calls() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.calls))
	copy(out, s.calls)
	return out
}

// CallCount returns the number of Think calls.
func (s *StubClient) CallCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.calls)
}
