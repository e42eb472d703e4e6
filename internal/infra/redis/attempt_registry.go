package redis

import (
	"context"
	"sync"
	"time"

	"jobsim-assessment-service/internal/app"
	"github.com/redis/go-redis/v9"
)

// AttemptRegistry is a Redis-aware implementation of app.AttemptRegistry.
// Notes:
//   - Attempts stay in a local map because the scoring state machine is an
//     in-process object driven by one connection.
//   - Redis only marks attempt liveness, which lets an operator see active
//     attempts across instances and lets keys age out on abandonment.
type AttemptRegistry struct {
	client *redis.Client
	ttl    time.Duration
	mu     sync.RWMutex

	attempts map[string]*app.Attempt
}

func NewAttemptRegistry(client *redis.Client, ttl time.Duration) *AttemptRegistry {
	return &AttemptRegistry{
		client:   client,
		ttl:      ttl,
		attempts: make(map[string]*app.Attempt),
	}
}

func (r *AttemptRegistry) Put(attempt *app.Attempt) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.attempts[attempt.ID] = attempt
	// best-effort liveness marker
	_ = r.client.Set(context.Background(), r.key(attempt.ID), "1", r.ttl).Err()
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
	_ = r.client.Del(context.Background(), r.key(id)).Err()
}

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

func (r *AttemptRegistry) key(id string) string {
	return "assessment:attempt:" + id
}
