package domain

import "time"

// Difficulty classifies how hard a catalog question is.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Points returns the reward for answering a question of this difficulty correctly.
func (d Difficulty) Points() float64 {
	switch d {
	case DifficultyMedium:
		return 2
	case DifficultyHard:
		return 3
	default:
		return 1
	}
}

// Penalty returns the negative-marking deduction for a wrong answer.
func (d Difficulty) Penalty() float64 {
	switch d {
	case DifficultyMedium:
		return 0.5
	case DifficultyHard:
		return 1
	default:
		return 0.25
	}
}

// PackageTier is the compensation package chosen by the candidate.
// It controls both the difficulty mix and the cutoff adjustment.
type PackageTier string

const (
	TierEntry   PackageTier = "entry"
	TierMid     PackageTier = "mid"
	TierPremium PackageTier = "premium"
)

// ParseTier normalizes a raw tier string, defaulting to entry.
func ParseTier(raw string) PackageTier {
	switch PackageTier(raw) {
	case TierMid:
		return TierMid
	case TierPremium:
		return TierPremium
	default:
		return TierEntry
	}
}

// Question models one MCQ from the assessment catalog with exactly four options.
type Question struct {
	ID            int        `json:"id"`
	Text          string     `json:"text"`
	Options       []string   `json:"options"`
	CorrectOption int        `json:"correctOption"`
	Difficulty    Difficulty `json:"difficulty"`
	Category      string     `json:"category"`
}

// Outcome is the persisted result of one finished attempt, consumed by the
// results page downstream.
type Outcome struct {
	PercentageScore int  `json:"percentageScore"`
	Cutoff          int  `json:"cutoff"`
	Passed          bool `json:"passed"`
	IncorrectCount  int  `json:"incorrectCount"`
}

// CooldownEntry records a failed attempt against a company. Entries are never
// deleted; they simply become inert once the deadline passes.
type CooldownEntry struct {
	Company         string    `json:"company"`
	FailedAt        time.Time `json:"failedAt"`
	CooldownUntil   time.Time `json:"cooldownUntil"`
	LastScore       int       `json:"lastScore"`
	Cutoff          int       `json:"cutoff"`
	SuggestedTopics []string  `json:"suggestedTopics"`
}

// Expired reports whether the entry no longer blocks attempts at now.
func (e CooldownEntry) Expired(now time.Time) bool {
	return !now.Before(e.CooldownUntil)
}
