package engine

import (
	"testing"
	"time"

	"jobsim-assessment-service/internal/domain"
)

func fixedClock(at time.Time) func() time.Time {
	return func() time.Time { return at }
}

func questionSet() []domain.Question {
	return []domain.Question{
		{ID: 1, Text: "q1", Options: []string{"a", "b", "c", "d"}, CorrectOption: 0, Difficulty: domain.DifficultyEasy, Category: "frontend"},
		{ID: 2, Text: "q2", Options: []string{"a", "b", "c", "d"}, CorrectOption: 1, Difficulty: domain.DifficultyEasy, Category: "frontend"},
		{ID: 3, Text: "q3", Options: []string{"a", "b", "c", "d"}, CorrectOption: 2, Difficulty: domain.DifficultyMedium, Category: "algorithms"},
		{ID: 4, Text: "q4", Options: []string{"a", "b", "c", "d"}, CorrectOption: 3, Difficulty: domain.DifficultyMedium, Category: "databases"},
		{ID: 5, Text: "q5", Options: []string{"a", "b", "c", "d"}, CorrectOption: 0, Difficulty: domain.DifficultyHard, Category: "algorithms"},
	}
}

func TestRewardAndPenaltyPerDifficulty(t *testing.T) {
	cases := []struct {
		difficulty domain.Difficulty
		points     float64
		penalty    float64
	}{
		{domain.DifficultyEasy, 1, 0.25},
		{domain.DifficultyMedium, 2, 0.5},
		{domain.DifficultyHard, 3, 1},
	}
	for _, tc := range cases {
		if got := tc.difficulty.Points(); got != tc.points {
			t.Fatalf("%s points: expected %v, got %v", tc.difficulty, tc.points, got)
		}
		if got := tc.difficulty.Penalty(); got != tc.penalty {
			t.Fatalf("%s penalty: expected %v, got %v", tc.difficulty, tc.penalty, got)
		}
	}
}

func TestScoreNeverGoesNegative(t *testing.T) {
	a := New("a1", questionSet(), time.Minute)
	// Wrong answer on every question.
	for !a.IsComplete() {
		q, _ := a.Current()
		a.SelectOption(q.CorrectOption + 1)
		a.Advance()
	}
	if a.Score() != 0 {
		t.Fatalf("expected floored score 0, got %v", a.Score())
	}
	if a.IncorrectCount() != 5 {
		t.Fatalf("expected 5 incorrect, got %d", a.IncorrectCount())
	}
}

func TestFailureScenarioScoresTwentyEightPercent(t *testing.T) {
	// 2 easy, 2 medium, 1 hard (max 9): correct, correct, incorrect, correct,
	// incorrect -> 1+1-0.5+2-1 = 2.5 -> round(100*2.5/9) = 28.
	a := New("a1", questionSet(), time.Minute)

	answers := []bool{true, true, false, true, false}
	for i := 0; !a.IsComplete(); i++ {
		q, ok := a.Current()
		if !ok {
			t.Fatalf("expected live question at step %d", i)
		}
		if answers[i] {
			a.SelectOption(q.CorrectOption)
		} else {
			a.SelectOption(q.CorrectOption + 1)
		}
		a.Advance()
	}

	if a.Score() != 2.5 {
		t.Fatalf("expected raw score 2.5, got %v", a.Score())
	}
	out := a.Finalize(75)
	if out.PercentageScore != 28 {
		t.Fatalf("expected 28%%, got %d", out.PercentageScore)
	}
	if out.Passed {
		t.Fatalf("28 should not pass a 75 cutoff")
	}
	if out.IncorrectCount != 2 {
		t.Fatalf("expected 2 incorrect, got %d", out.IncorrectCount)
	}
}

func TestFinalizeDeterministic(t *testing.T) {
	run := func() domain.Outcome {
		a := New("a1", questionSet(), time.Minute)
		answers := []bool{true, false, true, false, true}
		for i := 0; !a.IsComplete(); i++ {
			q, _ := a.Current()
			if answers[i] {
				a.SelectOption(q.CorrectOption)
			} else {
				a.SelectOption(q.CorrectOption + 2)
			}
			a.Advance()
		}
		return a.Finalize(70)
	}
	first, second := run(), run()
	if first != second {
		t.Fatalf("identical answer sequences diverged: %+v vs %+v", first, second)
	}
}

func TestForceCompleteGradesPendingSelection(t *testing.T) {
	a := New("a1", questionSet(), time.Minute)
	q, _ := a.Current()
	a.SelectOption(q.CorrectOption)
	a.ForceComplete()

	if !a.IsComplete() {
		t.Fatalf("expected complete after force")
	}
	if a.Score() != 1 {
		t.Fatalf("pending correct selection should grade, score=%v", a.Score())
	}
}

func TestForceCompleteIdempotent(t *testing.T) {
	a := New("a1", questionSet(), time.Minute)
	q, _ := a.Current()
	a.SelectOption(q.CorrectOption)
	a.ForceComplete()
	before := a.Score()

	a.ForceComplete()
	a.Advance()
	a.SelectOption(2)

	if !a.IsComplete() || a.Score() != before {
		t.Fatalf("second force/advance mutated state: score %v -> %v", before, a.Score())
	}
}

func TestAdvancePastEndIsNoOp(t *testing.T) {
	a := New("a1", questionSet()[:1], time.Minute)
	a.SelectOption(0)
	a.Advance()
	if !a.IsComplete() {
		t.Fatalf("expected complete after last question")
	}
	a.Advance()
	if a.IncorrectCount() != 0 || a.Score() != 1 {
		t.Fatalf("advance past end corrupted state: score=%v incorrect=%d", a.Score(), a.IncorrectCount())
	}
}

func TestUnansweredAdvanceCountsIncorrect(t *testing.T) {
	a := New("a1", questionSet()[:1], time.Minute)
	a.Advance()
	if a.IncorrectCount() != 1 {
		t.Fatalf("expected no-selection advance to grade incorrect")
	}
}

func TestOutOfRangeSelectionGradesIncorrect(t *testing.T) {
	a := New("a1", questionSet()[:1], time.Minute)
	a.SelectOption(42)
	a.Advance()
	if a.IncorrectCount() != 1 {
		t.Fatalf("expected out-of-range option to grade incorrect")
	}
}

func TestMissedCategoriesFirstSeenOrder(t *testing.T) {
	a := New("a1", questionSet(), time.Minute)
	// Miss questions 3 (algorithms), 4 (databases), 5 (algorithms).
	answers := []bool{true, true, false, false, false}
	for i := 0; !a.IsComplete(); i++ {
		q, _ := a.Current()
		if answers[i] {
			a.SelectOption(q.CorrectOption)
		} else {
			a.SelectOption(q.CorrectOption + 1)
		}
		a.Advance()
	}
	missed := a.MissedCategories()
	if len(missed) != 2 || missed[0] != "algorithms" || missed[1] != "databases" {
		t.Fatalf("expected [algorithms databases], got %v", missed)
	}
}

func TestTimeRemainingAndExpiry(t *testing.T) {
	start := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	current := start
	clock := func() time.Time { return current }

	a := NewWithClock("a1", questionSet(), 600*time.Second, clock)
	if a.TimeRemaining() != 600*time.Second {
		t.Fatalf("expected full budget, got %v", a.TimeRemaining())
	}
	if a.Expired() {
		t.Fatalf("fresh attempt must not be expired")
	}

	current = start.Add(601 * time.Second)
	if !a.Expired() {
		t.Fatalf("expected expiry past deadline")
	}
	if a.TimeRemaining() != 0 {
		t.Fatalf("expected zero remaining, got %v", a.TimeRemaining())
	}
}

func TestEmptyQuestionSetFinalizesAsFail(t *testing.T) {
	a := New("a1", nil, time.Minute)
	if !a.IsComplete() {
		t.Fatalf("empty set should start complete")
	}
	out := a.Finalize(70)
	if out.PercentageScore != 0 || out.Passed {
		t.Fatalf("empty set must finalize 0%% fail, got %+v", out)
	}
}
