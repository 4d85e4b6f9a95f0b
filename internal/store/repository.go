package store

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/DrGenie/LonelyLess-AU/internal/costbenefit"
	"github.com/DrGenie/LonelyLess-AU/internal/scenario"
)

// Repository is an ordered, append-only list of saved scenarios owned by one
// session. Entries are never removed.
type Repository struct {
	mu        sync.RWMutex
	sessionID uuid.UUID
	entries   []SavedScenario
	now       func() time.Time
}

// NewRepository creates an empty repository for sessionID.
func NewRepository(sessionID uuid.UUID) *Repository {
	return &Repository{sessionID: sessionID, now: time.Now}
}

// Append stores an evaluated scenario and names it "Scenario N", where N is
// its 1-based insertion position.
func (r *Repository) Append(s scenario.Scenario, result costbenefit.EvaluationResult) SavedScenario {
	r.mu.Lock()
	defer r.mu.Unlock()

	pos := len(r.entries) + 1
	entry := SavedScenario{
		ID:        uuid.New(),
		SessionID: r.sessionID,
		Position:  pos,
		Name:      fmt.Sprintf("Scenario %d", pos),
		Scenario:  s,
		Result:    result,
		SavedAt:   r.now().UTC(),
	}
	r.entries = append(r.entries, entry)
	return entry
}

// All returns a copy of the entries in insertion order.
func (r *Repository) All() []SavedScenario {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]SavedScenario, len(r.entries))
	copy(out, r.entries)
	return out
}

// Count returns the number of saved entries.
func (r *Repository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}
