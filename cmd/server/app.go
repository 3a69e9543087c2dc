package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"sathorn/internal/config"
	"sathorn/internal/logger"
	"sathorn/internal/repository"
	"sathorn/internal/service"
)

// app holds the wired components shared by the serve and search commands
type app struct {
	cfg       *config.Config
	logger    *logrus.Logger
	catalogue *repository.MemoryCatalogue
	queryLog  repository.QueryLog
	closers   []func() error

	properties *service.PropertyService
	search     *service.SearchService
	analytics  *service.AnalyticsService
}

func newApp(ctx context.Context) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	catalogue := repository.NewMemoryCatalogue()
	if err := catalogue.Seed(ctx, repository.SeedProperties()); err != nil {
		return nil, fmt.Errorf("failed to seed catalogue: %w", err)
	}
	log.WithField("properties", len(catalogue.GetAll(ctx))).Info("Catalogue seeded")

	a := &app{cfg: cfg, logger: log, catalogue: catalogue}

	if err := a.openQueryLog(ctx); err != nil {
		return nil, err
	}

	aiClient := service.NewOpenAIClient(&cfg.OpenAI, log)
	log.WithFields(logrus.Fields{
		"api_base":    cfg.OpenAI.APIBase,
		"chat_model":  cfg.OpenAI.ChatModel,
		"temperature": cfg.OpenAI.ChatTemperature,
		"max_tokens":  cfg.OpenAI.ChatMaxTokens,
		"timeout":     cfg.OpenAI.RequestTimeout().String(),
	}).Info("OpenAI client initialized")

	a.properties = service.NewPropertyService(catalogue)
	a.search = service.NewSearchService(catalogue, a.queryLog, aiClient, cfg.Search, log)
	a.analytics = service.NewAnalyticsService(catalogue)

	return a, nil
}

func (a *app) openQueryLog(ctx context.Context) error {
	switch strings.ToLower(a.cfg.QueryLog.Backend) {
	case config.BackendPostgres:
		pg, err := repository.NewPostgresQueryLog(ctx,
			a.cfg.QueryLog.DSN,
			a.cfg.QueryLog.MaxConnections,
			a.cfg.QueryLog.MaxIdleConnections,
		)
		if err != nil {
			return fmt.Errorf("failed to open postgres query log: %w", err)
		}
		a.queryLog = pg
		a.closers = append(a.closers, pg.Close)
		a.logger.Info("Query log backed by PostgreSQL")
	default:
		a.queryLog = repository.NewMemoryQueryLog()
		a.logger.Info("Query log kept in memory")
	}
	return nil
}

func (a *app) Close() {
	for _, closeFn := range a.closers {
		if err := closeFn(); err != nil {
			a.logger.WithError(err).Warn("Close failed")
		}
	}
}
