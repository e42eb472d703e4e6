package catalog

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"jobsim-assessment-service/internal/domain"
)

func testRepo(seed int64) *Repository {
	return NewRepositoryWithRand(NewStaticLoader(), time.Minute, rand.New(rand.NewSource(seed)))
}

func TestSelectPremiumFrontendDifficultyWindow(t *testing.T) {
	repo := testRepo(1)
	questions, err := repo.Select(context.Background(), "Frontend Developer", domain.TierPremium, 5, nil)
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	if len(questions) != 5 {
		t.Fatalf("expected 5 questions, got %d", len(questions))
	}
	allowedCats := map[string]struct{}{"frontend": {}, "programming": {}, "algorithms": {}}
	for _, q := range questions {
		if q.Difficulty == domain.DifficultyEasy {
			t.Fatalf("premium tier must not serve easy questions, got %+v", q)
		}
		if _, ok := allowedCats[q.Category]; !ok {
			t.Fatalf("unexpected category %q for frontend role", q.Category)
		}
	}
}

func TestSelectEntryTierExcludesHard(t *testing.T) {
	repo := testRepo(2)
	questions, err := repo.Select(context.Background(), "Backend Developer", domain.TierEntry, 5, nil)
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	for _, q := range questions {
		if q.Difficulty == domain.DifficultyHard {
			t.Fatalf("entry tier must not serve hard questions, got %+v", q)
		}
	}
}

func TestSelectExcludesSeenIDs(t *testing.T) {
	repo := testRepo(3)
	ctx := context.Background()

	first, err := repo.Select(ctx, "Software Developer", domain.TierMid, 5, nil)
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	exclude := make(map[int]struct{})
	for _, q := range first {
		exclude[q.ID] = struct{}{}
	}

	second, err := repo.Select(ctx, "Software Developer", domain.TierMid, 5, exclude)
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	for _, q := range second {
		if _, seen := exclude[q.ID]; seen {
			t.Fatalf("question %d repeated while unseen questions remained", q.ID)
		}
	}
}

func TestSelectBackfillsWhenPoolExhausted(t *testing.T) {
	repo := testRepo(4)
	ctx := context.Background()

	// Exclude every catalog question; backfill must still serve a full set.
	bank, err := repo.Catalog(ctx)
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	exclude := make(map[int]struct{}, len(bank))
	for _, q := range bank {
		exclude[q.ID] = struct{}{}
	}

	questions, err := repo.Select(ctx, "Frontend Developer", domain.TierPremium, 5, exclude)
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	if len(questions) != 5 {
		t.Fatalf("expected backfilled set of 5, got %d", len(questions))
	}
	ids := make(map[int]struct{})
	for _, q := range questions {
		if _, dup := ids[q.ID]; dup {
			t.Fatalf("duplicate question %d inside one result set", q.ID)
		}
		ids[q.ID] = struct{}{}
	}
}

func TestSelectShortResultWhenCatalogTooSmall(t *testing.T) {
	tiny := []domain.Question{
		{ID: 1, Text: "only one", Options: []string{"a", "b", "c", "d"}, CorrectOption: 0, Difficulty: domain.DifficultyMedium, Category: "programming"},
	}
	repo := NewRepositoryWithRand(NewStaticLoaderWith(tiny), time.Minute, rand.New(rand.NewSource(5)))

	questions, err := repo.Select(context.Background(), "Anything", domain.TierMid, 5, nil)
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	if len(questions) != 1 {
		t.Fatalf("expected short result of 1, got %d", len(questions))
	}
}

func TestCatalogCaches(t *testing.T) {
	loader := &countingLoader{inner: NewStaticLoader()}
	repo := NewRepositoryWithRand(loader, time.Minute, rand.New(rand.NewSource(6)))

	if _, err := repo.Catalog(context.Background()); err != nil {
		t.Fatalf("catalog: %v", err)
	}
	if _, err := repo.Catalog(context.Background()); err != nil {
		t.Fatalf("catalog 2: %v", err)
	}
	if loader.calls != 1 {
		t.Fatalf("expected one loader call, got %d", loader.calls)
	}
}

type countingLoader struct {
	inner Loader
	calls int
}

func (l *countingLoader) LoadCatalog(ctx context.Context) ([]domain.Question, error) {
	l.calls++
	return l.inner.LoadCatalog(ctx)
}
