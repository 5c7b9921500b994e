// ABOUTME: ModelPreference remembers the last chat model that worked
// ABOUTME: Injectable so tests can control stickiness without process restarts
package llm

import "sync"

// ModelPreference holds the preferred chat model. After a fallback model
// succeeds it becomes the first candidate for subsequent calls. The value
// is an optimization hint; a stale read only costs one extra fallback hop.
type ModelPreference struct {
	mu    sync.Mutex
	model string
}

// NewModelPreference seeds the holder with the configured primary model.
func NewModelPreference(model string) *ModelPreference {
	return &ModelPreference{model: model}
}

// Get returns the currently preferred model, which may be empty.
func (p *ModelPreference) Get() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.model
}

// Set records model as the new preferred model.
func (p *ModelPreference) Set(model string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.model = model
}
