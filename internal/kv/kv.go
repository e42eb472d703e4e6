package kv

import (
	"context"
	"encoding/json"
)

// Store is the injected key-value abstraction behind all attempt-scoped
// persistence (cooldown entries, seen-question sets, outcomes). Implementations
// live in internal/infra; engine logic never touches a concrete backend.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}

// GetJSON reads key and unmarshals it into v. A missing key returns (false, nil).
func GetJSON(ctx context.Context, store Store, key string, v any) (bool, error) {
	raw, ok, err := store.Get(ctx, key)
	if err != nil || !ok {
		return false, err
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		return false, err
	}
	return true, nil
}

// SetJSON marshals v and writes it under key.
func SetJSON(ctx context.Context, store Store, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return store.Set(ctx, key, string(data))
}
