package cmd

import (
	"log/slog"

	"orderprocessing/internal/adapters/out/classifier"
	"orderprocessing/internal/adapters/out/filesink"
	"orderprocessing/internal/adapters/out/postgres/orderrepo"
	"orderprocessing/internal/core/application/usecases/commands"
	"orderprocessing/internal/core/application/usecases/queries"
	"orderprocessing/internal/jobs"
	"orderprocessing/internal/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	classifier *classifier.HTTPClient
	registry   *prometheus.Registry
	recorder   *metrics.Recorder
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) (*CompositionRoot, error) {
	client, err := classifier.NewHTTPClient(classifier.Config{
		BaseURL: config.ClassifierBaseURL,
		Timeout: config.ClassifierTimeout,
	})
	if err != nil {
		return nil, err
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	recorder, err := metrics.NewRecorder(registry)
	if err != nil {
		return nil, err
	}

	return &CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		classifier: client,
		registry:   registry,
		recorder:   recorder,
		logger:     logger,
	}, nil
}

func (c *CompositionRoot) CreateProcessUserOrdersCommandHandler() *commands.ProcessUserOrdersCommandHandler {
	handler := commands.NewProcessUserOrdersCommandHandler(
		orderrepo.NewGormOrderStore(c.gormDB),
		c.classifier,
		filesink.NewDirSink(c.config.ExportDir),
		c.recorder,
		c.logger,
	)
	return &handler
}

func (c *CompositionRoot) CreateGetUserOrdersQueryHandler() queries.GetUserOrdersQueryHandler {
	return queries.NewGetUserOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateProcessUserOrdersCommandHandler(),
		c.config.ProcessingSchedule,
		c.config.ProcessingUserIDs,
		c.logger,
	)
}

func (c *CompositionRoot) MetricsRegistry() *prometheus.Registry {
	return c.registry
}
