package cooldown

import (
	"context"
	"strings"
	"time"

	"jobsim-assessment-service/internal/domain"
	"jobsim-assessment-service/internal/kv"
	"jobsim-assessment-service/internal/policy"
	"go.uber.org/zap"
)

// Status is the result of a cooldown check for one company.
type Status struct {
	Blocked   bool
	Remaining time.Duration
	Entry     *domain.CooldownEntry
}

// Ledger records failed attempts per company and gates re-attempts. Entries
// are written through the injected KV store and are never evicted: an expired
// entry stays readable but inert.
type Ledger struct {
	store  kv.Store
	logger *zap.Logger
}

func NewLedger(store kv.Store, logger *zap.Logger) *Ledger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Ledger{store: store, logger: logger}
}

// RecordFailure writes or overwrites the entry for company under the given
// policy window.
func (l *Ledger) RecordFailure(ctx context.Context, pol policy.Cooldown, company string, score, cutoff int, topics []string, now time.Time) error {
	entry := domain.CooldownEntry{
		Company:         company,
		FailedAt:        now,
		CooldownUntil:   now.Add(pol.Window),
		LastScore:       score,
		Cutoff:          cutoff,
		SuggestedTopics: topics,
	}
	return kv.SetJSON(ctx, l.store, l.key(pol, company), entry)
}

// IsBlocked reports whether company is still inside the policy window at now.
// A corrupt or unreadable entry degrades to "not blocked" rather than locking
// the candidate out.
func (l *Ledger) IsBlocked(ctx context.Context, pol policy.Cooldown, company string, now time.Time) (Status, error) {
	var entry domain.CooldownEntry
	ok, err := kv.GetJSON(ctx, l.store, l.key(pol, company), &entry)
	if err != nil {
		l.logger.Warn("unreadable cooldown entry, treating as absent",
			zap.String("company", company),
			zap.String("policy", pol.Name),
			zap.Error(err))
		return Status{}, nil
	}
	if !ok || entry.Expired(now) {
		if ok {
			return Status{Entry: &entry}, nil
		}
		return Status{}, nil
	}
	return Status{
		Blocked:   true,
		Remaining: entry.CooldownUntil.Sub(now),
		Entry:     &entry,
	}, nil
}

func (l *Ledger) key(pol policy.Cooldown, company string) string {
	return "cooldown:" + pol.Name + ":" + strings.ToLower(strings.TrimSpace(company))
}
