package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"news_harvester/internal/domain"
)

type SitemapReader interface {
	ListMonthlySitemaps(ctx context.Context) ([]string, error)
	ListArticleURLs(ctx context.Context, sitemapURL string) ([]string, error)
}

type ArticleExtractor interface {
	Extract(ctx context.Context, articleURL string) (*domain.Article, error)
}

type BatchWriter interface {
	Write(ctx context.Context, month domain.Month, articles []domain.Article) (string, error)
}

type BatchStore interface {
	ReplaceMonth(ctx context.Context, month domain.Month, articles []domain.Article) error
}

type HarvestStateStore interface {
	Get(ctx context.Context, month domain.Month) (*domain.HarvestState, error)
	Update(ctx context.Context, state *domain.HarvestState) error
}

type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type Publisher interface {
	Publish(ctx context.Context, event *domain.BatchEvent) error
	Close() error
}
