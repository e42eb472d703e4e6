package app

import (
	"context"
	"strings"
	"sync"
	"time"

	"jobsim-assessment-service/internal/cooldown"
	"jobsim-assessment-service/internal/domain"
	"jobsim-assessment-service/internal/engine"
	"jobsim-assessment-service/internal/kv"
	"jobsim-assessment-service/internal/policy"
	"jobsim-assessment-service/internal/topics"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AttemptRegistry abstracts how live attempts are tracked (in-memory, Redis-marked).
type AttemptRegistry interface {
	Put(attempt *Attempt)
	Get(id string) (*Attempt, bool)
	Delete(id string)
	Range(fn func(*Attempt) bool)
}

// QuestionSource selects a relevance-filtered question set for one attempt.
type QuestionSource interface {
	Select(ctx context.Context, role string, tier domain.PackageTier, count int, exclude map[int]struct{}) ([]domain.Question, error)
}

// QuestionOracle optionally generates extra questions (AI path). Never required
// for correctness: any failure falls back to the static catalog source.
type QuestionOracle interface {
	GenerateQuestions(ctx context.Context, role string, tier domain.PackageTier, count int) ([]domain.Question, error)
}

// Attempt couples the scoring state machine with the candidate context it was
// started for. Access is serialized through mu by the service.
type Attempt struct {
	ID      string
	Session string
	Company string
	Role    string
	Tier    domain.PackageTier
	Cutoff  int
	State   *engine.Attempt

	mu sync.Mutex
}

// Options carries the assessment knobs. Zero values fall back to the
// production defaults.
type Options struct {
	QuestionCount   int
	AttemptDuration time.Duration
	RetryCooldown   policy.Cooldown
	TopicCooldown   policy.Cooldown
	Clock           func() time.Time
	Oracle          QuestionOracle
}

const defaultQuestionCount = 5

func (o Options) withDefaults() Options {
	if o.QuestionCount <= 0 {
		o.QuestionCount = defaultQuestionCount
	}
	if o.AttemptDuration <= 0 {
		o.AttemptDuration = engine.DefaultAttemptDuration
	}
	if o.RetryCooldown.Window <= 0 {
		o.RetryCooldown = policy.RetryCooldown(0)
	}
	if o.TopicCooldown.Window <= 0 {
		o.TopicCooldown = policy.TopicCooldown(0)
	}
	if o.Clock == nil {
		o.Clock = time.Now
	}
	return o
}

// AssessmentService drives the attempt lifecycle: cooldown gate, question
// selection with session dedup, one-question-at-a-time scoring, finalization
// and failure bookkeeping.
type AssessmentService struct {
	registry  AttemptRegistry
	questions QuestionSource
	store     kv.Store
	ledger    *cooldown.Ledger
	logger    *zap.Logger
	opts      Options
}

func NewAssessmentService(registry AttemptRegistry, questions QuestionSource, store kv.Store, ledger *cooldown.Ledger, logger *zap.Logger, opts Options) *AssessmentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AssessmentService{
		registry:  registry,
		questions: questions,
		store:     store,
		ledger:    ledger,
		logger:    logger,
		opts:      opts.withDefaults(),
	}
}

// QuestionView is a question as shown to the candidate, with the answer kept
// server side.
type QuestionView struct {
	ID       int      `json:"id"`
	Text     string   `json:"text"`
	Options  []string `json:"options"`
	Category string   `json:"category"`
}

// Progress reports where an attempt stands after an operation.
type Progress struct {
	AttemptID     string
	Done          bool
	Question      QuestionView
	Index         int
	Total         int
	TimeRemaining time.Duration
	Result        *Result
}

// Result is the terminal outcome of an attempt, with failure extras.
type Result struct {
	Outcome domain.Outcome
	Topics  []string
	Entry   *domain.CooldownEntry
}

// Start gates on the retry cooldown, selects a question set deduplicated
// against the session's seen IDs, computes the cutoff once, and registers a
// live attempt. A blocked company returns ErrCooldownActive with the status.
func (s *AssessmentService) Start(ctx context.Context, session, company, role, tierRaw string) (*Progress, *cooldown.Status, error) {
	if strings.TrimSpace(session) == "" || strings.TrimSpace(company) == "" || strings.TrimSpace(role) == "" {
		return nil, nil, domain.ErrMissingPrerequisite
	}
	tier := domain.ParseTier(tierRaw)
	now := s.opts.Clock()

	status, err := s.ledger.IsBlocked(ctx, s.opts.RetryCooldown, company, now)
	if err != nil {
		return nil, nil, err
	}
	if status.Blocked {
		return nil, &status, domain.ErrCooldownActive
	}

	seen, err := s.seenIDs(ctx, session)
	if err != nil {
		// A broken store must not block starts; treat as never-seen.
		s.logger.Warn("unreadable seen-question set, starting fresh", zap.String("session", session), zap.Error(err))
		seen = map[int]struct{}{}
	}

	questions := s.generateQuestions(ctx, role, tier)
	if len(questions) == 0 {
		questions, err = s.questions.Select(ctx, role, tier, s.opts.QuestionCount, seen)
		if err != nil {
			return nil, nil, err
		}
		if len(questions) == 0 {
			return nil, nil, domain.ErrEmptyQuestionSet
		}
		s.markSeen(ctx, session, questions)
	}

	id := uuid.NewString()
	attempt := &Attempt{
		ID:      id,
		Session: session,
		Company: company,
		Role:    role,
		Tier:    tier,
		Cutoff:  policy.ComputeCutoff(company, role, tier),
		State:   engine.NewWithClock(id, questions, s.opts.AttemptDuration, s.opts.Clock),
	}
	s.registry.Put(attempt)

	s.logger.Info("attempt started",
		zap.String("attempt", attempt.ID),
		zap.String("company", company),
		zap.String("role", role),
		zap.String("tier", string(tier)),
		zap.Int("cutoff", attempt.Cutoff),
		zap.Int("questions", len(questions)))

	return s.progressLocked(attempt), nil, nil
}

// generateQuestions consults the oracle when configured; any error or empty
// result falls back to the catalog path.
func (s *AssessmentService) generateQuestions(ctx context.Context, role string, tier domain.PackageTier) []domain.Question {
	if s.opts.Oracle == nil {
		return nil
	}
	questions, err := s.opts.Oracle.GenerateQuestions(ctx, role, tier, s.opts.QuestionCount)
	if err != nil {
		s.logger.Warn("question oracle failed, using static catalog", zap.Error(err))
		return nil
	}
	return questions
}

// SelectOption records the candidate's pick for the current question.
func (s *AssessmentService) SelectOption(ctx context.Context, attemptID string, option int) (*Progress, error) {
	attempt, ok := s.registry.Get(attemptID)
	if !ok {
		return nil, domain.ErrAttemptNotFound
	}
	attempt.mu.Lock()
	defer attempt.mu.Unlock()

	if attempt.State.Expired() {
		return s.expireLocked(ctx, attempt), nil
	}
	attempt.State.SelectOption(option)
	return s.progressLocked(attempt), nil
}

// Advance grades the current question and serves the next one, finalizing the
// attempt after the last question or on timer expiry.
func (s *AssessmentService) Advance(ctx context.Context, attemptID string) (*Progress, error) {
	attempt, ok := s.registry.Get(attemptID)
	if !ok {
		return nil, domain.ErrAttemptNotFound
	}
	attempt.mu.Lock()
	defer attempt.mu.Unlock()

	if attempt.State.Expired() {
		return s.expireLocked(ctx, attempt), nil
	}
	attempt.State.Advance()
	if attempt.State.IsComplete() {
		return s.finishLocked(ctx, attempt), nil
	}
	return s.progressLocked(attempt), nil
}

// Abandon drops an in-flight attempt without persisting partial progress.
func (s *AssessmentService) Abandon(attemptID string) {
	attempt, ok := s.registry.Get(attemptID)
	if !ok {
		return
	}
	attempt.mu.Lock()
	done := attempt.State.IsComplete()
	attempt.mu.Unlock()
	s.registry.Delete(attemptID)
	if !done {
		s.logger.Info("attempt abandoned", zap.String("attempt", attemptID))
	}
}

// ExpireOverdue force-completes every attempt past its deadline. Called by the
// janitor so abandoned-but-connected attempts still finalize.
func (s *AssessmentService) ExpireOverdue(ctx context.Context) int {
	expired := 0
	s.registry.Range(func(attempt *Attempt) bool {
		attempt.mu.Lock()
		if attempt.State.Expired() {
			s.expireLocked(ctx, attempt)
			expired++
		}
		attempt.mu.Unlock()
		return true
	})
	return expired
}

// Outcome reads the persisted attempt outcome for a session, if any.
func (s *AssessmentService) Outcome(ctx context.Context, session string) (domain.Outcome, bool, error) {
	var outcome domain.Outcome
	ok, err := kv.GetJSON(ctx, s.store, outcomeKey(session), &outcome)
	if err != nil {
		s.logger.Warn("unreadable outcome, treating as absent", zap.String("session", session), zap.Error(err))
		return domain.Outcome{}, false, nil
	}
	return outcome, ok, nil
}

// Blocked exposes the cooldown gate for hosts that want to check before starting.
func (s *AssessmentService) Blocked(ctx context.Context, company string) (cooldown.Status, error) {
	return s.ledger.IsBlocked(ctx, s.opts.RetryCooldown, company, s.opts.Clock())
}

func (s *AssessmentService) expireLocked(ctx context.Context, attempt *Attempt) *Progress {
	attempt.State.ForceComplete()
	return s.finishLocked(ctx, attempt)
}

// finishLocked finalizes a completed attempt: persists the outcome and, on
// failure, records both cooldown windows together with improvement topics.
func (s *AssessmentService) finishLocked(ctx context.Context, attempt *Attempt) *Progress {
	outcome := attempt.State.Finalize(attempt.Cutoff)
	now := s.opts.Clock()

	// Fire and forget: a failed write is logged, never retried.
	if err := kv.SetJSON(ctx, s.store, outcomeKey(attempt.Session), outcome); err != nil {
		s.logger.Warn("persist outcome failed", zap.String("attempt", attempt.ID), zap.Error(err))
	}

	result := &Result{Outcome: outcome}
	if !outcome.Passed {
		suggested := topics.Recommend(attempt.State.MissedCategories(), attempt.Role)
		result.Topics = suggested

		if err := s.ledger.RecordFailure(ctx, s.opts.TopicCooldown, attempt.Company, outcome.PercentageScore, outcome.Cutoff, suggested, now); err != nil {
			s.logger.Warn("record topic cooldown failed", zap.String("company", attempt.Company), zap.Error(err))
		}
		if err := s.ledger.RecordFailure(ctx, s.opts.RetryCooldown, attempt.Company, outcome.PercentageScore, outcome.Cutoff, suggested, now); err != nil {
			s.logger.Warn("record retry cooldown failed", zap.String("company", attempt.Company), zap.Error(err))
		}
		result.Entry = &domain.CooldownEntry{
			Company:         attempt.Company,
			FailedAt:        now,
			CooldownUntil:   now.Add(s.opts.RetryCooldown.Window),
			LastScore:       outcome.PercentageScore,
			Cutoff:          outcome.Cutoff,
			SuggestedTopics: suggested,
		}
	}

	s.registry.Delete(attempt.ID)
	s.logger.Info("attempt finished",
		zap.String("attempt", attempt.ID),
		zap.Int("percentage", outcome.PercentageScore),
		zap.Int("cutoff", outcome.Cutoff),
		zap.Bool("passed", outcome.Passed))

	progress := s.progressLocked(attempt)
	progress.Result = result
	return progress
}

func (s *AssessmentService) progressLocked(attempt *Attempt) *Progress {
	p := &Progress{
		AttemptID:     attempt.ID,
		Done:          attempt.State.IsComplete(),
		Index:         attempt.State.Index(),
		Total:         len(attempt.State.Questions()),
		TimeRemaining: attempt.State.TimeRemaining(),
	}
	if q, ok := attempt.State.Current(); ok {
		p.Question = QuestionView{ID: q.ID, Text: q.Text, Options: q.Options, Category: q.Category}
	}
	return p
}

func (s *AssessmentService) seenIDs(ctx context.Context, session string) (map[int]struct{}, error) {
	var ids []int
	if _, err := kv.GetJSON(ctx, s.store, seenKey(session), &ids); err != nil {
		return nil, err
	}
	seen := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		seen[id] = struct{}{}
	}
	return seen, nil
}

// markSeen unions the new selection into the session's seen set so later
// attempts avoid repeats.
func (s *AssessmentService) markSeen(ctx context.Context, session string, questions []domain.Question) {
	seen, err := s.seenIDs(ctx, session)
	if err != nil {
		seen = map[int]struct{}{}
	}
	for _, q := range questions {
		seen[q.ID] = struct{}{}
	}
	ids := make([]int, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	if err := kv.SetJSON(ctx, s.store, seenKey(session), ids); err != nil {
		s.logger.Warn("persist seen set failed", zap.String("session", session), zap.Error(err))
	}
}

func seenKey(session string) string    { return "session:" + session + ":seen" }
func outcomeKey(session string) string { return "session:" + session + ":outcome" }
