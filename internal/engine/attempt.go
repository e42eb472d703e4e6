package engine

import (
	"math"
	"time"

	"jobsim-assessment-service/internal/domain"
)

// DefaultAttemptDuration is the overall time budget for one assessment.
const DefaultAttemptDuration = 600 * time.Second

// Attempt is the per-assessment scoring state machine. It owns all mutable
// attempt state for its lifetime and is driven from a single goroutine; the
// orchestrator serializes access.
//
// States: in progress at question index 0..n-1, then complete. The index only
// moves forward. A countdown expiry forces the complete transition with
// whatever selection is pending.
type Attempt struct {
	id        string
	questions []domain.Question
	clock     func() time.Time
	startedAt time.Time
	deadline  time.Time

	index     int
	selected  *int
	score     float64
	incorrect int
	answered  map[int]struct{}
	missed    []string
	missedSet map[string]struct{}
	complete  bool
}

// New creates an attempt over questions with the given time budget.
func New(id string, questions []domain.Question, duration time.Duration) *Attempt {
	return NewWithClock(id, questions, duration, time.Now)
}

// NewWithClock allows deterministic timestamps in tests.
func NewWithClock(id string, questions []domain.Question, duration time.Duration, now func() time.Time) *Attempt {
	if duration <= 0 {
		duration = DefaultAttemptDuration
	}
	start := now()
	return &Attempt{
		id:        id,
		questions: questions,
		clock:     now,
		startedAt: start,
		deadline:  start.Add(duration),
		answered:  make(map[int]struct{}),
		missedSet: make(map[string]struct{}),
		complete:  len(questions) == 0,
	}
}

// ID returns the attempt identifier.
func (a *Attempt) ID() string { return a.id }

// Questions returns the question set backing this attempt.
func (a *Attempt) Questions() []domain.Question { return a.questions }

// Current returns the question at the live index, or false once complete.
func (a *Attempt) Current() (domain.Question, bool) {
	if a.complete || a.index >= len(a.questions) {
		return domain.Question{}, false
	}
	return a.questions[a.index], true
}

// Index returns the live question index.
func (a *Attempt) Index() int { return a.index }

// SelectOption stores the chosen option for the current question. The value is
// not validated against the option count here; an out-of-range pick simply
// grades as incorrect. Ignored once complete.
func (a *Attempt) SelectOption(option int) {
	if a.complete {
		return
	}
	a.selected = &option
}

// Selected returns the pending selection, if any.
func (a *Attempt) Selected() (int, bool) {
	if a.selected == nil {
		return 0, false
	}
	return *a.selected, true
}

// Advance grades the current question and moves to the next one, transitioning
// to complete after the last. Advancing a finished attempt is a no-op.
func (a *Attempt) Advance() {
	if a.complete {
		return
	}
	a.gradeCurrent()
	if a.index+1 < len(a.questions) {
		a.index++
		a.selected = nil
		return
	}
	a.complete = true
}

// ForceComplete ends the attempt immediately, grading any pending selection
// first. Used on timer expiry and teardown. Idempotent.
func (a *Attempt) ForceComplete() {
	if a.complete {
		return
	}
	if a.selected != nil {
		a.gradeCurrent()
	}
	a.complete = true
}

func (a *Attempt) gradeCurrent() {
	if _, done := a.answered[a.index]; done {
		return
	}
	q := a.questions[a.index]
	a.answered[a.index] = struct{}{}

	if a.selected != nil && *a.selected == q.CorrectOption {
		a.score += q.Difficulty.Points()
		return
	}
	a.score -= q.Difficulty.Penalty()
	if a.score < 0 {
		a.score = 0
	}
	a.incorrect++
	if _, seen := a.missedSet[q.Category]; !seen {
		a.missedSet[q.Category] = struct{}{}
		a.missed = append(a.missed, q.Category)
	}
}

// IsComplete reports whether the attempt reached its terminal state.
func (a *Attempt) IsComplete() bool { return a.complete }

// Score returns the raw accumulated score.
func (a *Attempt) Score() float64 { return a.score }

// IncorrectCount returns how many questions were graded incorrect.
func (a *Attempt) IncorrectCount() int { return a.incorrect }

// MissedCategories returns the categories of missed questions in first-seen
// order, so downstream topic recommendations are deterministic.
func (a *Attempt) MissedCategories() []string {
	out := make([]string, len(a.missed))
	copy(out, a.missed)
	return out
}

// TimeRemaining returns the seconds left on the attempt clock, floored at zero.
func (a *Attempt) TimeRemaining() time.Duration {
	if a.complete {
		return 0
	}
	remaining := a.deadline.Sub(a.clock())
	if remaining < 0 {
		return 0
	}
	return remaining
}

// Expired reports whether the attempt ran past its deadline.
func (a *Attempt) Expired() bool {
	return !a.complete && !a.clock().Before(a.deadline)
}

// MaxScore is the sum of per-question maximum points over the full set.
func (a *Attempt) MaxScore() float64 {
	var max float64
	for _, q := range a.questions {
		max += q.Difficulty.Points()
	}
	return max
}

// Finalize computes the percentage outcome against the cutoff. An empty
// question set finalizes as an automatic 0% fail instead of dividing by zero.
func (a *Attempt) Finalize(cutoff int) domain.Outcome {
	max := a.MaxScore()
	pct := 0
	if max > 0 {
		pct = int(math.Round(100 * a.score / max))
	}
	return domain.Outcome{
		PercentageScore: pct,
		Cutoff:          cutoff,
		Passed:          max > 0 && pct >= cutoff,
		IncorrectCount:  a.incorrect,
	}
}
