package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/DrGenie/LonelyLess-AU/internal/costbenefit"
	"github.com/DrGenie/LonelyLess-AU/internal/scenario"
)

var ErrSessionNotFound = errors.New("session not found")

// SavedScenario is one evaluated scenario kept for later comparison.
type SavedScenario struct {
	ID        uuid.UUID                    `json:"id"`
	SessionID uuid.UUID                    `json:"session_id"`
	Position  int                          `json:"position"`
	Name      string                       `json:"name"`
	Scenario  scenario.Scenario            `json:"scenario"`
	Result    costbenefit.EvaluationResult `json:"result"`
	SavedAt   time.Time                    `json:"saved_at"`
}

// Archive persists saved scenarios beyond the lifetime of a session.
type Archive interface {
	SaveScenario(ctx context.Context, s *SavedScenario) error
	ListScenarios(ctx context.Context, sessionID uuid.UUID) ([]*SavedScenario, error)
	Close() error
}
