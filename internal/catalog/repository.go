package catalog

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"jobsim-assessment-service/internal/domain"
	"golang.org/x/sync/singleflight"
)

// Loader fetches the full question catalog from a backing store.
type Loader interface {
	LoadCatalog(ctx context.Context) ([]domain.Question, error)
}

// StaticLoader serves the built-in bank. Used when no Postgres catalog is
// configured and as the degraded fallback everywhere else.
type StaticLoader struct {
	questions []domain.Question
}

func NewStaticLoader() *StaticLoader {
	return &StaticLoader{questions: builtinBank()}
}

// NewStaticLoaderWith serves a caller-provided bank (tests).
func NewStaticLoaderWith(questions []domain.Question) *StaticLoader {
	return &StaticLoader{questions: questions}
}

func (l *StaticLoader) LoadCatalog(_ context.Context) ([]domain.Question, error) {
	return l.questions, nil
}

// Repository caches the catalog with a TTL and answers relevance-filtered,
// shuffled samples for one assessment attempt.
type Repository struct {
	loader Loader
	ttl    time.Duration
	clock  func() time.Time
	sf     singleflight.Group
	rnd    *rand.Rand
	rndMu  sync.Mutex

	mu        sync.RWMutex
	cached    []domain.Question
	expiresAt time.Time
}

func NewRepository(loader Loader, ttl time.Duration) *Repository {
	return NewRepositoryWithRand(loader, ttl, rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewRepositoryWithRand takes the random source so tests can fix the seed.
func NewRepositoryWithRand(loader Loader, ttl time.Duration, rnd *rand.Rand) *Repository {
	return &Repository{
		loader: loader,
		ttl:    ttl,
		clock:  time.Now,
		rnd:    rnd,
	}
}

// Catalog returns the full cached catalog, loading through singleflight on miss.
func (r *Repository) Catalog(ctx context.Context) ([]domain.Question, error) {
	now := r.clock()

	r.mu.RLock()
	if r.cached != nil && r.expiresAt.After(now) {
		cached := r.cached
		r.mu.RUnlock()
		return cached, nil
	}
	r.mu.RUnlock()

	result, err, _ := r.sf.Do("catalog", func() (interface{}, error) {
		now := r.clock()
		r.mu.RLock()
		if r.cached != nil && r.expiresAt.After(now) {
			cached := r.cached
			r.mu.RUnlock()
			return cached, nil
		}
		r.mu.RUnlock()

		questions, err := r.loader.LoadCatalog(ctx)
		if err != nil {
			return nil, err
		}

		r.mu.Lock()
		r.cached = questions
		r.expiresAt = now.Add(r.ttlWithJitter())
		r.mu.Unlock()
		return questions, nil
	})
	if err != nil {
		return nil, err
	}
	return result.([]domain.Question), nil
}

func (r *Repository) ttlWithJitter() time.Duration {
	if r.ttl <= 0 {
		return 0
	}
	// up to 10% jitter to spread refreshes
	jitterMax := int64(r.ttl) / 10
	r.rndMu.Lock()
	defer r.rndMu.Unlock()
	return r.ttl + time.Duration(r.rnd.Int63n(jitterMax+1))
}

// Select picks up to count questions relevant to the role and tier, excluding
// previously seen IDs when enough unseen questions exist. A short result is
// allowed when the catalog is exhausted; Select never fails on an empty pool.
func (r *Repository) Select(ctx context.Context, role string, tier domain.PackageTier, count int, exclude map[int]struct{}) ([]domain.Question, error) {
	bank, err := r.Catalog(ctx)
	if err != nil {
		return nil, err
	}
	r.rndMu.Lock()
	defer r.rndMu.Unlock()
	return sample(bank, role, tier, count, exclude, r.rnd), nil
}

// sample implements the selection rules over a fixed bank.
func sample(bank []domain.Question, role string, tier domain.PackageTier, count int, exclude map[int]struct{}, rnd *rand.Rand) []domain.Question {
	if count <= 0 {
		return nil
	}

	categories := make(map[string]struct{})
	for _, c := range categoriesForRole(role) {
		categories[c] = struct{}{}
	}
	difficulties := difficultiesForTier(tier)

	relevant := func(q domain.Question) bool {
		if _, ok := categories[q.Category]; !ok {
			return false
		}
		_, ok := difficulties[q.Difficulty]
		return ok
	}

	pool := make([]domain.Question, 0, len(bank))
	for _, q := range bank {
		if !relevant(q) {
			continue
		}
		if _, seen := exclude[q.ID]; seen {
			continue
		}
		pool = append(pool, q)
	}
	rnd.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })

	result := pool
	if len(result) > count {
		result = result[:count]
	}
	if len(result) == count {
		return result
	}

	// Backfill: not enough unseen questions, so rerun ignoring the exclusion
	// set with a doubled buffer and top up without duplicating inside this set.
	taken := make(map[int]struct{}, len(result))
	for _, q := range result {
		taken[q.ID] = struct{}{}
	}
	refill := make([]domain.Question, 0, 2*count)
	for _, q := range bank {
		if relevant(q) {
			refill = append(refill, q)
		}
	}
	rnd.Shuffle(len(refill), func(i, j int) { refill[i], refill[j] = refill[j], refill[i] })
	if len(refill) > 2*count {
		refill = refill[:2*count]
	}
	for _, q := range refill {
		if len(result) == count {
			break
		}
		if _, dup := taken[q.ID]; dup {
			continue
		}
		taken[q.ID] = struct{}{}
		result = append(result, q)
	}
	return result
}
