package domain

import (
	"fmt"
	"time"
)

// Month identifies one monthly sitemap. Year and Month are kept as written
// in the sitemap URL, so "2023-07" and "2023-7" are different months.
type Month struct {
	Year  string
	Month string
}

func (m Month) String() string {
	return fmt.Sprintf("%s-%s", m.Year, m.Month)
}

// ArticleResult is the outcome of extracting a single article URL.
type ArticleResult struct {
	URL     string
	Article *Article
	Err     error
}

func (r ArticleResult) OK() bool {
	return r.Err == nil && r.Article != nil
}

// MonthStats holds statistics about one harvested month.
type MonthStats struct {
	Month     Month
	Listed    int
	Attempted int
	Extracted int
	Failed    int
	Path      string
}

// HarvestStats holds statistics about a full harvest run.
type HarvestStats struct {
	Sitemaps        int
	SkippedSitemaps int
	Months          []MonthStats
	Extracted       int
	Failed          int
	Published       int
	PublishErrors   int
	Duration        time.Duration
}

// HarvestState is the persisted summary of the last harvest of a month.
type HarvestState struct {
	ID            int64     `db:"id"`
	Year          string    `db:"year"`
	Month         string    `db:"month"`
	LastHarvestAt time.Time `db:"last_harvested_at"`
	ArticleCount  int       `db:"article_count"`
	FailureCount  int       `db:"failure_count"`
	TotalRuns     int64     `db:"total_runs"`
}

// BatchEvent announces that a month's batch has been written.
type BatchEvent struct {
	Year      string    `json:"year"`
	Month     string    `json:"month"`
	Path      string    `json:"path"`
	Articles  int       `json:"articles"`
	Failures  int       `json:"failures"`
	Timestamp time.Time `json:"timestamp"`
}
