package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"time"

	"news_harvester/internal/config"
	"news_harvester/internal/domain"
)

// HarvestService walks the sitemap index month by month, extracts the
// articles of each month and hands every month's batch to the writer.
//
// Listing and writing failures abort the run; a failed article is logged
// and left out of its month's batch.
type HarvestService struct {
	sitemaps  SitemapReader
	extractor ArticleExtractor
	writer    BatchWriter
	batches   BatchStore
	states    HarvestStateStore
	txManager TransactionManager
	publisher Publisher
	logger    *slog.Logger

	maxArticles  int
	monthPattern *regexp.Regexp
}

// NewHarvestService wires the pipeline. batches, states, txManager and
// publisher are optional: pass nil to disable archiving or publishing.
// Archiving needs all three of batches, states and txManager.
func NewHarvestService(
	sitemaps SitemapReader,
	extractor ArticleExtractor,
	writer BatchWriter,
	batches BatchStore,
	states HarvestStateStore,
	txManager TransactionManager,
	publisher Publisher,
	logger *slog.Logger,
	cfg config.HarvestConfig,
) (*HarvestService, error) {
	pattern := cfg.MonthPattern
	if pattern == "" {
		pattern = config.DefaultMonthPattern
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("compile month pattern: %w", err)
	}
	if re.NumSubexp() < 2 {
		return nil, fmt.Errorf("month pattern %q needs year and month groups", pattern)
	}

	if batches != nil && (states == nil || txManager == nil) {
		return nil, errors.New("archiving needs a state store and a transaction manager")
	}

	return &HarvestService{
		sitemaps:     sitemaps,
		extractor:    extractor,
		writer:       writer,
		batches:      batches,
		states:       states,
		txManager:    txManager,
		publisher:    publisher,
		logger:       logger,
		maxArticles:  cfg.MaxArticlesPerMonth,
		monthPattern: re,
	}, nil
}

// Run performs a full harvest.
func (s *HarvestService) Run(ctx context.Context) (*domain.HarvestStats, error) {
	startTime := time.Now()
	s.logger.Info("retrieving monthly sitemaps", "max_articles_per_month", s.maxArticles)

	sitemaps, err := s.sitemaps.ListMonthlySitemaps(ctx)
	if err != nil {
		return nil, fmt.Errorf("list monthly sitemaps: %w", err)
	}

	stats := &domain.HarvestStats{Sitemaps: len(sitemaps)}
	s.logger.Info("fetched sitemap index", "sitemaps", len(sitemaps))

	for i, sitemapURL := range sitemaps {
		if err := ctx.Err(); err != nil {
			return stats, err
		}

		month, ok := s.MonthOf(sitemapURL)
		if !ok {
			stats.SkippedSitemaps++
			s.logger.Debug("skipping sitemap", "url", sitemapURL)
			continue
		}

		s.logger.Info("processing monthly sitemap",
			"month", month.String(),
			"sitemap", i+1,
			"of", len(sitemaps),
		)

		if err := s.harvestMonth(ctx, sitemapURL, month, stats); err != nil {
			return stats, err
		}
	}

	stats.Duration = time.Since(startTime)

	s.logger.Info("harvest completed",
		"months", len(stats.Months),
		"skipped_sitemaps", stats.SkippedSitemaps,
		"extracted", stats.Extracted,
		"failed", stats.Failed,
		"published", stats.Published,
		"duration", stats.Duration,
	)

	return stats, nil
}

// MonthOf reads year and month from a monthly sitemap URL.
func (s *HarvestService) MonthOf(sitemapURL string) (domain.Month, bool) {
	m := s.monthPattern.FindStringSubmatch(sitemapURL)
	if m == nil {
		return domain.Month{}, false
	}
	return domain.Month{Year: m[1], Month: m[2]}, true
}

func (s *HarvestService) harvestMonth(ctx context.Context, sitemapURL string, month domain.Month, stats *domain.HarvestStats) error {
	logger := s.logger.With("month", month.String())

	urls, err := s.sitemaps.ListArticleURLs(ctx, sitemapURL)
	if err != nil {
		return fmt.Errorf("list article urls for %s: %w", month, err)
	}

	ms := domain.MonthStats{Month: month, Listed: len(urls)}
	urls = s.limit(urls)
	ms.Attempted = len(urls)

	results := s.ExtractAll(ctx, urls)
	if err := ctx.Err(); err != nil {
		logger.Warn("month interrupted, batch not written", "attempted", len(results))
		return err
	}

	articles := make([]domain.Article, 0, len(results))
	for _, r := range results {
		if !r.OK() {
			ms.Failed++
			logger.Error("failed to extract article", "url", r.URL, "error", r.Err)
			continue
		}
		articles = append(articles, *r.Article)
	}
	ms.Extracted = len(articles)

	path, err := s.writer.Write(ctx, month, articles)
	if err != nil {
		return fmt.Errorf("write batch %s: %w", month, err)
	}
	ms.Path = path

	if err := s.archive(ctx, &ms, articles); err != nil {
		return fmt.Errorf("archive batch %s: %w", month, err)
	}

	stats.Months = append(stats.Months, ms)
	stats.Extracted += ms.Extracted
	stats.Failed += ms.Failed

	s.publish(ctx, logger, &ms, stats)

	logger.Info("saved articles",
		"path", path,
		"listed", ms.Listed,
		"attempted", ms.Attempted,
		"extracted", ms.Extracted,
		"failed", ms.Failed,
	)

	return nil
}

// ExtractAll extracts urls one after another. Results keep the order of urls.
// It stops early once ctx is done.
func (s *HarvestService) ExtractAll(ctx context.Context, urls []string) []domain.ArticleResult {
	results := make([]domain.ArticleResult, 0, len(urls))
	for _, u := range urls {
		if ctx.Err() != nil {
			break
		}
		article, err := s.extractor.Extract(ctx, u)
		if err == nil && article == nil {
			err = errors.New("no article returned")
		}
		results = append(results, domain.ArticleResult{URL: u, Article: article, Err: err})
	}
	return results
}

// limit caps the extraction attempts of a month. Failed attempts count.
func (s *HarvestService) limit(urls []string) []string {
	if s.maxArticles >= 0 && len(urls) > s.maxArticles {
		return urls[:s.maxArticles]
	}
	return urls
}

func (s *HarvestService) archive(ctx context.Context, ms *domain.MonthStats, articles []domain.Article) error {
	if s.batches == nil {
		return nil
	}

	return s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.batches.ReplaceMonth(txCtx, ms.Month, articles); err != nil {
			return fmt.Errorf("replace month: %w", err)
		}

		state, err := s.states.Get(txCtx, ms.Month)
		if err != nil {
			return fmt.Errorf("get harvest state: %w", err)
		}

		state.Year = ms.Month.Year
		state.Month = ms.Month.Month
		state.LastHarvestAt = time.Now()
		state.ArticleCount = ms.Extracted
		state.FailureCount = ms.Failed
		state.TotalRuns++

		if err := s.states.Update(txCtx, state); err != nil {
			return fmt.Errorf("update harvest state: %w", err)
		}
		return nil
	})
}

func (s *HarvestService) publish(ctx context.Context, logger *slog.Logger, ms *domain.MonthStats, stats *domain.HarvestStats) {
	if s.publisher == nil {
		return
	}

	event := &domain.BatchEvent{
		Year:      ms.Month.Year,
		Month:     ms.Month.Month,
		Path:      ms.Path,
		Articles:  ms.Extracted,
		Failures:  ms.Failed,
		Timestamp: time.Now().UTC(),
	}

	if err := s.publisher.Publish(ctx, event); err != nil {
		stats.PublishErrors++
		logger.Warn("failed to publish batch event", "error", err)
		return
	}
	stats.Published++
}
