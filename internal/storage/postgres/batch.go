package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"news_harvester/internal/domain"
)

// BatchStore keeps a copy of every month's batch. Writing a month replaces
// whatever was stored for it before, like the JSON file does.
type BatchStore struct {
	db *sqlx.DB
}

func NewBatchStore(db *sqlx.DB) *BatchStore {
	return &BatchStore{db: db}
}

func (s *BatchStore) ReplaceMonth(ctx context.Context, month domain.Month, articles []domain.Article) error {
	exec := GetExecutor(ctx, s.db)

	_, err := exec.ExecContext(ctx,
		"DELETE FROM harvested_articles WHERE year = $1 AND month = $2",
		month.Year, month.Month,
	)
	if err != nil {
		return fmt.Errorf("delete month: %w", err)
	}

	query := `
		INSERT INTO harvested_articles (
			year, month, position, url, postid, title, lang, published_time, keywords, record
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10
		)`

	for i := range articles {
		a := &articles[i]

		record, err := json.Marshal(a)
		if err != nil {
			return fmt.Errorf("marshal article %d: %w", i, err)
		}

		_, err = exec.ExecContext(ctx, query,
			month.Year,
			month.Month,
			i,
			a.URL,
			a.PostID,
			a.Title,
			a.Lang,
			a.PublishedTime,
			pq.Array(a.Keywords),
			string(record),
		)
		if err != nil {
			return fmt.Errorf("insert article %d: %w", i, err)
		}
	}

	return nil
}

// ListMonth returns the stored batch of a month in its original order.
func (s *BatchStore) ListMonth(ctx context.Context, month domain.Month) ([]domain.Article, error) {
	var records [][]byte
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &records,
		"SELECT record FROM harvested_articles WHERE year = $1 AND month = $2 ORDER BY position",
		month.Year, month.Month,
	)
	if err != nil {
		return nil, err
	}

	articles := make([]domain.Article, 0, len(records))
	for _, raw := range records {
		var a domain.Article
		if err := json.Unmarshal(raw, &a); err != nil {
			return nil, fmt.Errorf("unmarshal record: %w", err)
		}
		articles = append(articles, a)
	}
	return articles, nil
}
