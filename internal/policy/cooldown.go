package policy

import "time"

// Cooldown is a named lockout window applied to a company after a failed
// attempt. The source system carries two distinct windows that are triggered
// by different flows; they are kept as separate named policies on purpose
// rather than merged (likely unintentional duplication upstream, flagged to
// product, do not guess which one is "correct").
type Cooldown struct {
	Name   string
	Window time.Duration
}

const (
	// DefaultTopicCooldown locks the quiz-level failure-summary flow.
	DefaultTopicCooldown = 14 * 24 * time.Hour
	// DefaultRetryCooldown locks the page-level retry flow.
	DefaultRetryCooldown = 30 * time.Minute
)

// TopicCooldown is the 14-day window written together with improvement topics.
func TopicCooldown(window time.Duration) Cooldown {
	if window <= 0 {
		window = DefaultTopicCooldown
	}
	return Cooldown{Name: "topic", Window: window}
}

// RetryCooldown is the 30-minute window gating a new attempt for the company.
func RetryCooldown(window time.Duration) Cooldown {
	if window <= 0 {
		window = DefaultRetryCooldown
	}
	return Cooldown{Name: "retry", Window: window}
}
