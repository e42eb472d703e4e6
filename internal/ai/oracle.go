package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	"jobsim-assessment-service/internal/domain"
	"jobsim-assessment-service/internal/logger"
	"go.uber.org/zap"
)

// oracleIDBase keeps generated question IDs clear of the static catalog range.
const oracleIDBase = 10000

const defaultMaxLogLength = 200

// Oracle asks the model for role-specific questions. It is strictly optional:
// every failure path returns an error and the caller falls back to the static
// catalog.
type Oracle struct {
	generator Generator
	logger    *zap.Logger
	maxLogLen int
}

func NewOracle(generator Generator, log *zap.Logger, maxLogLength int) *Oracle {
	if log == nil {
		log = zap.NewNop()
	}
	if maxLogLength <= 0 {
		maxLogLength = defaultMaxLogLength
	}
	return &Oracle{generator: generator, logger: log, maxLogLen: maxLogLength}
}

type generatedQuestion struct {
	Text          string   `json:"text"`
	Options       []string `json:"options"`
	CorrectOption int      `json:"correctOption"`
	Difficulty    string   `json:"difficulty"`
	Category      string   `json:"category"`
}

// GenerateQuestions prompts the model for count MCQs and parses the JSON
// reply. Malformed items are skipped; a reply with no usable question is an
// error.
func (o *Oracle) GenerateQuestions(ctx context.Context, role string, tier domain.PackageTier, count int) ([]domain.Question, error) {
	prompt := buildPrompt(role, tier, count)

	o.logger.Debug("oracle request",
		zap.String("role", role),
		zap.String("tier", string(tier)),
		zap.Int("prompt_length", utf8.RuneCountInString(prompt)),
		zap.String("prompt_preview", logger.TruncateForLog(prompt, o.maxLogLen)))

	raw, err := o.generator.GenerateContent(ctx, prompt)
	if err != nil {
		return nil, err
	}

	o.logger.Debug("oracle response",
		zap.Int("response_length", utf8.RuneCountInString(raw)),
		zap.String("response_preview", logger.TruncateForLog(raw, o.maxLogLen)))

	items, err := parseQuestions(raw)
	if err != nil {
		return nil, err
	}

	questions := make([]domain.Question, 0, count)
	for i, item := range items {
		if len(questions) == count {
			break
		}
		q, ok := item.toDomain(oracleIDBase + i)
		if !ok {
			continue
		}
		questions = append(questions, q)
	}
	if len(questions) == 0 {
		return nil, fmt.Errorf("model returned no usable questions")
	}
	return questions, nil
}

func (g generatedQuestion) toDomain(id int) (domain.Question, bool) {
	if strings.TrimSpace(g.Text) == "" || len(g.Options) != 4 {
		return domain.Question{}, false
	}
	if g.CorrectOption < 0 || g.CorrectOption > 3 {
		return domain.Question{}, false
	}
	difficulty := domain.Difficulty(strings.ToLower(g.Difficulty))
	switch difficulty {
	case domain.DifficultyEasy, domain.DifficultyMedium, domain.DifficultyHard:
	default:
		difficulty = domain.DifficultyMedium
	}
	category := strings.ToLower(strings.TrimSpace(g.Category))
	if category == "" {
		category = "general"
	}
	return domain.Question{
		ID:            id,
		Text:          strings.TrimSpace(g.Text),
		Options:       g.Options,
		CorrectOption: g.CorrectOption,
		Difficulty:    difficulty,
		Category:      category,
	}, true
}

func buildPrompt(role string, tier domain.PackageTier, count int) string {
	difficultyHint := "easy and medium"
	switch tier {
	case domain.TierMid:
		difficultyHint = "easy, medium and hard"
	case domain.TierPremium:
		difficultyHint = "medium and hard"
	}
	return fmt.Sprintf(`Generate %d multiple-choice screening questions for a %q candidate.
Difficulties allowed: %s.
Reply with a JSON array only, no prose. Each element:
{"text": string, "options": [4 strings], "correctOption": 0-3, "difficulty": "easy"|"medium"|"hard", "category": string}`,
		count, role, difficultyHint)
}

// parseQuestions tolerates the usual model quirks: code fences and prose
// around the JSON array.
func parseQuestions(raw string) ([]generatedQuestion, error) {
	payload := strings.TrimSpace(raw)
	payload = strings.TrimPrefix(payload, "```json")
	payload = strings.TrimPrefix(payload, "```")
	payload = strings.TrimSuffix(payload, "```")
	payload = strings.TrimSpace(payload)

	start := strings.Index(payload, "[")
	end := strings.LastIndex(payload, "]")
	if start == -1 || end == -1 || end < start {
		return nil, fmt.Errorf("no JSON array in model response")
	}

	var items []generatedQuestion
	if err := json.Unmarshal([]byte(payload[start:end+1]), &items); err != nil {
		return nil, fmt.Errorf("unmarshal model response: %w", err)
	}
	return items, nil
}
