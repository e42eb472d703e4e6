package memory

import (
	"testing"
	"time"

	"jobsim-assessment-service/internal/app"
	"jobsim-assessment-service/internal/engine"
)

func TestAttemptRegistryLifecycle(t *testing.T) {
	registry := NewAttemptRegistry()
	attempt := &app.Attempt{ID: "a1", State: engine.New("a1", nil, time.Minute)}

	registry.Put(attempt)
	if got, ok := registry.Get("a1"); !ok || got != attempt {
		t.Fatalf("expected stored attempt back")
	}

	visited := 0
	registry.Range(func(*app.Attempt) bool {
		visited++
		return true
	})
	if visited != 1 {
		t.Fatalf("expected one live attempt, visited %d", visited)
	}

	registry.Delete("a1")
	if _, ok := registry.Get("a1"); ok {
		t.Fatalf("expected attempt removed")
	}
}
