package cooldown_test

import (
	"context"
	"testing"
	"time"

	"jobsim-assessment-service/internal/cooldown"
	"jobsim-assessment-service/internal/infra/memory"
	"jobsim-assessment-service/internal/policy"
)

func TestBlockedImmediatelyAfterFailure(t *testing.T) {
	ctx := context.Background()
	ledger := cooldown.NewLedger(memory.NewKVStore(), nil)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	retry := policy.RetryCooldown(0)

	if err := ledger.RecordFailure(ctx, retry, "Tech Company", 28, 75, []string{"Data structures"}, now); err != nil {
		t.Fatalf("record: %v", err)
	}

	status, err := ledger.IsBlocked(ctx, retry, "Tech Company", now)
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if !status.Blocked {
		t.Fatalf("expected blocked right after failure")
	}
	if status.Remaining != 30*time.Minute {
		t.Fatalf("expected 30m remaining, got %v", status.Remaining)
	}
	if status.Entry == nil || status.Entry.LastScore != 28 || status.Entry.Cutoff != 75 {
		t.Fatalf("entry not round-tripped: %+v", status.Entry)
	}
}

func TestUnblockedAfterExpiry(t *testing.T) {
	ctx := context.Background()
	ledger := cooldown.NewLedger(memory.NewKVStore(), nil)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	retry := policy.RetryCooldown(0)

	if err := ledger.RecordFailure(ctx, retry, "Tech Company", 10, 70, nil, now); err != nil {
		t.Fatalf("record: %v", err)
	}

	status, err := ledger.IsBlocked(ctx, retry, "Tech Company", now.Add(31*time.Minute))
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if status.Blocked {
		t.Fatalf("expected gate lifted after the window")
	}
	// The stale entry stays readable, it is just inert.
	if status.Entry == nil {
		t.Fatalf("expected inert entry to remain readable")
	}
}

func TestPoliciesAreIndependent(t *testing.T) {
	ctx := context.Background()
	ledger := cooldown.NewLedger(memory.NewKVStore(), nil)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	retry := policy.RetryCooldown(0)
	topic := policy.TopicCooldown(0)

	if err := ledger.RecordFailure(ctx, topic, "Tech Company", 28, 75, []string{"SQL and indexing"}, now); err != nil {
		t.Fatalf("record: %v", err)
	}

	retryStatus, _ := ledger.IsBlocked(ctx, retry, "Tech Company", now)
	if retryStatus.Blocked {
		t.Fatalf("topic window must not trip the retry gate")
	}

	topicStatus, _ := ledger.IsBlocked(ctx, topic, "Tech Company", now.Add(13*24*time.Hour))
	if !topicStatus.Blocked {
		t.Fatalf("topic window should still block at day 13")
	}
}

func TestOtherCompaniesUnaffected(t *testing.T) {
	ctx := context.Background()
	ledger := cooldown.NewLedger(memory.NewKVStore(), nil)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	retry := policy.RetryCooldown(0)

	_ = ledger.RecordFailure(ctx, retry, "Tech Company", 28, 75, nil, now)

	status, _ := ledger.IsBlocked(ctx, retry, "Global Corp", now)
	if status.Blocked {
		t.Fatalf("cooldown must be scoped per company")
	}
}

func TestCorruptEntryDegradesToUnblocked(t *testing.T) {
	ctx := context.Background()
	store := memory.NewKVStore()
	ledger := cooldown.NewLedger(store, nil)
	retry := policy.RetryCooldown(0)

	if err := store.Set(ctx, "cooldown:retry:tech company", "{not json"); err != nil {
		t.Fatalf("seed: %v", err)
	}
	status, err := ledger.IsBlocked(ctx, retry, "Tech Company", time.Now())
	if err != nil {
		t.Fatalf("corrupt entry must not error: %v", err)
	}
	if status.Blocked {
		t.Fatalf("corrupt entry must not block")
	}
}
