package redis

import (
	"testing"
	"time"

	"jobsim-assessment-service/internal/app"
	"jobsim-assessment-service/internal/engine"
	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func TestAttemptRegistrySetsAndClearsKeys(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("run miniredis: %v", err)
	}
	defer mr.Close()

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	registry := NewAttemptRegistry(client, time.Minute)

	registry.Put(&app.Attempt{ID: "a1", State: engine.New("a1", nil, time.Minute)})
	if !mr.Exists("assessment:attempt:a1") {
		t.Fatalf("expected liveness marker in redis")
	}
	if _, ok := registry.Get("a1"); !ok {
		t.Fatalf("expected local attempt present")
	}

	registry.Delete("a1")
	if mr.Exists("assessment:attempt:a1") {
		t.Fatalf("expected liveness marker removed")
	}
}
