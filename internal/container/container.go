package container

import (
	"fmt"
	"net/http"

	"go-radiology-assistant/internal/config"
	"go-radiology-assistant/internal/factory"
	"go-radiology-assistant/internal/llm"
	"go-radiology-assistant/internal/repository"
	"go-radiology-assistant/internal/service"
	"go-radiology-assistant/internal/storage"
	"go-radiology-assistant/internal/transport"
)

// Container holds all application dependencies
type Container struct {
	config        *config.Config
	imageFetcher  storage.ImageFetcher
	imageSource   repository.ImageSource
	modelClient   llm.Client
	reportService service.ReportService
	handler       http.Handler
}

// NewContainer creates a new dependency injection container
func NewContainer() (*Container, error) {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	// Build dependency graph
	imageFetcher := storage.NewHTTPImageFetcher(cfg.ImageFetchTimeout)
	imageSource := repository.NewImageSource(imageFetcher)

	modelClient, err := factory.NewClientFactory().CreateClient(cfg)
	if err != nil {
		return nil, err
	}

	reportService := service.NewReportService(modelClient, cfg)
	handler := transport.NewHandler(reportService, imageSource, cfg)

	return &Container{
		config:        cfg,
		imageFetcher:  imageFetcher,
		imageSource:   imageSource,
		modelClient:   modelClient,
		reportService: reportService,
		handler:       handler,
	}, nil
}

// Handler returns the HTTP handler
func (c *Container) Handler() http.Handler {
	return c.handler
}

// Config returns the configuration
func (c *Container) Config() *config.Config {
	return c.config
}

// ReportService returns the analysis pipeline boundary
func (c *Container) ReportService() service.ReportService {
	return c.reportService
}
