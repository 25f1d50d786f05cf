package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"news_harvester/internal/config"
	"news_harvester/internal/extractor"
	"news_harvester/internal/publisher"
	"news_harvester/internal/scheduler"
	"news_harvester/internal/service"
	"news_harvester/internal/source/sitemap"
	"news_harvester/internal/source/web"
	"news_harvester/internal/storage/jsonfile"
	"news_harvester/internal/storage/postgres"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	// Setup logger
	logger := setupLogger("info", "text")

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger = setupLogger(cfg.LogLevel, cfg.LogFormat)

	client := web.New(web.Config{
		Timeout:   cfg.HTTP.Timeout,
		UserAgent: cfg.HTTP.UserAgent,
	}, logger)

	reader := sitemap.New(client, cfg.Sitemap.IndexURL, logger)

	articleExtractor, err := extractor.New(client, extractor.Config{
		MetadataScriptID: cfg.Extractor.MetadataScriptID,
		IncludeBodyText:  cfg.Extractor.IncludeBodyText,
	}, logger)
	if err != nil {
		logger.Error("failed to create extractor", "error", err)
		os.Exit(1)
	}

	writer := jsonfile.NewWriter(cfg.Output.Dir, cfg.Output.Indent, logger)

	// Optional postgres archive
	var (
		batches   service.BatchStore
		states    service.HarvestStateStore
		txManager service.TransactionManager
	)
	if cfg.Database.Enabled {
		db, err := sqlx.Connect("postgres", cfg.Database.DSN())
		if err != nil {
			logger.Error("failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer db.Close()

		logger.Info("connected to database", "host", cfg.Database.Host, "dbname", cfg.Database.DBName)

		batches = postgres.NewBatchStore(db)
		states = postgres.NewHarvestStateStore(db)
		txManager = postgres.NewTransactionManager(db)
	}

	// Optional RabbitMQ notifications
	var pub service.Publisher
	if cfg.RabbitMQ.Enabled {
		rabbitMQ, err := publisher.NewRabbitMQ(publisher.Config{
			URL:        cfg.RabbitMQ.URL,
			Exchange:   cfg.RabbitMQ.Exchange,
			RoutingKey: cfg.RabbitMQ.RoutingKey,
			QueueName:  cfg.RabbitMQ.QueueName,
		}, logger)
		if err != nil {
			logger.Error("failed to connect to rabbitmq", "error", err)
			os.Exit(1)
		}
		defer rabbitMQ.Close()
		pub = rabbitMQ
	}

	harvestService, err := service.NewHarvestService(
		reader,
		articleExtractor,
		writer,
		batches,
		states,
		txManager,
		pub,
		logger,
		cfg.Harvest,
	)
	if err != nil {
		logger.Error("failed to create harvest service", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info("starting news harvester",
		"index_url", cfg.Sitemap.IndexURL,
		"max_articles_per_month", cfg.Harvest.MaxArticlesPerMonth,
		"output_dir", cfg.Output.Dir,
		"interval", cfg.Harvest.Interval,
	)

	if cfg.Harvest.Interval > 0 {
		sched := scheduler.NewScheduler(harvestService, cfg.Harvest.Interval, logger)
		if err := sched.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("scheduler error", "error", err)
			os.Exit(1)
		}
		return
	}

	if _, err := harvestService.Run(ctx); err != nil {
		logger.Error("harvest failed", "error", err)
		os.Exit(1)
	}
}

func setupLogger(level, format string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}

	var handler slog.Handler
	if format == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	return slog.New(handler)
}
