package store

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/DrGenie/LonelyLess-AU/internal/costbenefit"
	"github.com/DrGenie/LonelyLess-AU/internal/scenario"
)

func TestRepositoryNaming(t *testing.T) {
	repo := NewRepository(uuid.New())
	for i := 0; i < 5; i++ {
		repo.Append(scenario.Scenario{BaseCost: float64(i)}, costbenefit.EvaluationResult{})
	}

	if repo.Count() != 5 {
		t.Fatalf("expected 5 entries, got %d", repo.Count())
	}
	for i, e := range repo.All() {
		want := fmt.Sprintf("Scenario %d", i+1)
		if e.Name != want {
			t.Errorf("entry %d: expected name %q, got %q", i, want, e.Name)
		}
		if e.Position != i+1 {
			t.Errorf("entry %d: expected position %d, got %d", i, i+1, e.Position)
		}
		if e.Scenario.BaseCost != float64(i) {
			t.Errorf("entry %d out of insertion order", i)
		}
	}
}

func TestRepositoryNamingIgnoresEvaluationOrder(t *testing.T) {
	repo := NewRepository(uuid.New())

	// Results computed out of order are still named by append position.
	results := []costbenefit.EvaluationResult{{NetBenefit: 3}, {NetBenefit: 1}, {NetBenefit: 2}}
	for _, r := range results {
		repo.Append(scenario.Scenario{}, r)
	}

	all := repo.All()
	if all[0].Name != "Scenario 1" || all[0].Result.NetBenefit != 3 {
		t.Errorf("unexpected first entry %+v", all[0])
	}
	if all[2].Name != "Scenario 3" || all[2].Result.NetBenefit != 2 {
		t.Errorf("unexpected last entry %+v", all[2])
	}
}

func TestRepositoryAllReturnsCopy(t *testing.T) {
	repo := NewRepository(uuid.New())
	repo.Append(scenario.Scenario{}, costbenefit.EvaluationResult{})

	all := repo.All()
	all[0].Name = "mutated"
	if repo.All()[0].Name != "Scenario 1" {
		t.Error("All exposed internal storage")
	}
}

func TestRepositoryStampsEntries(t *testing.T) {
	sessionID := uuid.New()
	repo := NewRepository(sessionID)
	fixed := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	repo.now = func() time.Time { return fixed }

	e := repo.Append(scenario.Scenario{}, costbenefit.EvaluationResult{})
	if e.SessionID != sessionID {
		t.Errorf("expected session %s, got %s", sessionID, e.SessionID)
	}
	if e.ID == uuid.Nil {
		t.Error("expected entry id")
	}
	if !e.SavedAt.Equal(fixed) {
		t.Errorf("expected saved_at %s, got %s", fixed, e.SavedAt)
	}
}

func TestRepositoryConcurrentAppend(t *testing.T) {
	repo := NewRepository(uuid.New())
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			repo.Append(scenario.Scenario{}, costbenefit.EvaluationResult{})
		}()
	}
	wg.Wait()

	seen := make(map[string]bool)
	for _, e := range repo.All() {
		if seen[e.Name] {
			t.Fatalf("duplicate name %s", e.Name)
		}
		seen[e.Name] = true
	}
	if len(seen) != 50 {
		t.Errorf("expected 50 unique names, got %d", len(seen))
	}
}

func TestSessionsLifecycle(t *testing.T) {
	sessions := NewSessions()
	sess := sessions.Start()

	got, err := sessions.Get(sess.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.Repository == nil || got.Repository.Count() != 0 {
		t.Fatal("expected empty repository")
	}
	if sessions.Count() != 1 {
		t.Errorf("expected 1 session, got %d", sessions.Count())
	}

	if err := sessions.End(sess.ID); err != nil {
		t.Fatalf("End failed: %v", err)
	}
	if _, err := sessions.Get(sess.ID); err != ErrSessionNotFound {
		t.Errorf("expected ErrSessionNotFound after end, got %v", err)
	}
	if err := sessions.End(sess.ID); err != ErrSessionNotFound {
		t.Errorf("expected ErrSessionNotFound on double end, got %v", err)
	}
}

func TestSessionsAreIsolated(t *testing.T) {
	sessions := NewSessions()
	a := sessions.Start()
	b := sessions.Start()

	a.Repository.Append(scenario.Scenario{}, costbenefit.EvaluationResult{})
	if b.Repository.Count() != 0 {
		t.Error("sessions share a repository")
	}
}
