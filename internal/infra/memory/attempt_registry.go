package memory

import (
	"sync"

	"jobsim-assessment-service/internal/app"
)

// AttemptRegistry is the in-memory implementation of app.AttemptRegistry.
type AttemptRegistry struct {
	mu       sync.RWMutex
	attempts map[string]*app.Attempt
}

func NewAttemptRegistry() *AttemptRegistry {
	return &AttemptRegistry{attempts: make(map[string]*app.Attempt)}
}

func (r *AttemptRegistry) Put(attempt *app.Attempt) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.attempts[attempt.ID] = attempt
}

func (r *AttemptRegistry) Get(id string) (*app.Attempt, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	attempt, ok := r.attempts[id]
	return attempt, ok
}

func (r *AttemptRegistry) Delete(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.attempts, id)
}

// Range visits live attempts until fn returns false.
func (r *AttemptRegistry) Range(fn func(*app.Attempt) bool) {
	r.mu.RLock()
	snapshot := make([]*app.Attempt, 0, len(r.attempts))
	for _, attempt := range r.attempts {
		snapshot = append(snapshot, attempt)
	}
	r.mu.RUnlock()

	for _, attempt := range snapshot {
		if !fn(attempt) {
			return
		}
	}
}
