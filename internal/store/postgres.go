package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const schema = `
CREATE TABLE IF NOT EXISTS lonelyless_saved_scenarios (
	id          UUID PRIMARY KEY,
	session_id  UUID NOT NULL,
	position    INTEGER NOT NULL,
	name        TEXT NOT NULL,
	scenario    JSONB NOT NULL,
	result      JSONB NOT NULL,
	saved_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
	UNIQUE (session_id, position)
)`

type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	if _, err := pool.Exec(ctx, schema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}
	return &PostgresStore{pool: pool}, nil
}

func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}

const savedScenarioColumns = `id, session_id, position, name, scenario, result, saved_at`

func (s *PostgresStore) SaveScenario(ctx context.Context, sc *SavedScenario) error {
	scenarioJSON, err := json.Marshal(sc.Scenario)
	if err != nil {
		return fmt.Errorf("marshal scenario: %w", err)
	}
	resultJSON, err := json.Marshal(sc.Result)
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}

	_, err = s.pool.Exec(ctx, `
		INSERT INTO lonelyless_saved_scenarios (`+savedScenarioColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		sc.ID, sc.SessionID, sc.Position, sc.Name, scenarioJSON, resultJSON, sc.SavedAt,
	)
	if err != nil {
		return fmt.Errorf("insert saved scenario: %w", err)
	}
	return nil
}

func (s *PostgresStore) ListScenarios(ctx context.Context, sessionID uuid.UUID) ([]*SavedScenario, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT `+savedScenarioColumns+`
		FROM lonelyless_saved_scenarios WHERE session_id = $1
		ORDER BY position ASC`, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanSavedScenarios(rows)
}

func scanSavedScenarios(rows pgx.Rows) ([]*SavedScenario, error) {
	var out []*SavedScenario
	for rows.Next() {
		sc := &SavedScenario{}
		var scenarioJSON, resultJSON []byte
		if err := rows.Scan(
			&sc.ID, &sc.SessionID, &sc.Position, &sc.Name,
			&scenarioJSON, &resultJSON, &sc.SavedAt,
		); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(scenarioJSON, &sc.Scenario); err != nil {
			return nil, fmt.Errorf("decode scenario %s: %w", sc.ID, err)
		}
		if err := json.Unmarshal(resultJSON, &sc.Result); err != nil {
			return nil, fmt.Errorf("decode result %s: %w", sc.ID, err)
		}
		out = append(out, sc)
	}
	return out, rows.Err()
}
