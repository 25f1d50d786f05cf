package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"news_harvester/internal/domain"
)

type HarvestStateStore struct {
	db *sqlx.DB
}

func NewHarvestStateStore(db *sqlx.DB) *HarvestStateStore {
	return &HarvestStateStore{db: db}
}

func (s *HarvestStateStore) Get(ctx context.Context, month domain.Month) (*domain.HarvestState, error) {
	var state domain.HarvestState
	query := `
		SELECT id, year, month, last_harvested_at, article_count, failure_count, total_runs
		FROM harvest_state
		WHERE year = $1 AND month = $2`

	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &state, query, month.Year, month.Month)
	if errors.Is(err, sql.ErrNoRows) {
		// never harvested
		return &domain.HarvestState{Year: month.Year, Month: month.Month}, nil
	}
	if err != nil {
		return nil, err
	}
	return &state, nil
}

func (s *HarvestStateStore) Update(ctx context.Context, state *domain.HarvestState) error {
	query := `
		INSERT INTO harvest_state (year, month, last_harvested_at, article_count, failure_count, total_runs)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (year, month) DO UPDATE SET
			last_harvested_at = EXCLUDED.last_harvested_at,
			article_count = EXCLUDED.article_count,
			failure_count = EXCLUDED.failure_count,
			total_runs = EXCLUDED.total_runs`

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, query,
		state.Year,
		state.Month,
		state.LastHarvestAt,
		state.ArticleCount,
		state.FailureCount,
		state.TotalRuns,
	)
	return err
}
