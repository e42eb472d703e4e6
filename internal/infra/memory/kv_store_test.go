package memory

import (
	"context"
	"testing"
)

func TestKVStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewKVStore()

	if _, ok, _ := store.Get(ctx, "missing"); ok {
		t.Fatalf("expected miss for unknown key")
	}

	if err := store.Set(ctx, "k", "v"); err != nil {
		t.Fatalf("set: %v", err)
	}
	value, ok, err := store.Get(ctx, "k")
	if err != nil || !ok || value != "v" {
		t.Fatalf("get: value=%q ok=%v err=%v", value, ok, err)
	}

	if err := store.Remove(ctx, "k"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if _, ok, _ := store.Get(ctx, "k"); ok {
		t.Fatalf("expected miss after remove")
	}
}
