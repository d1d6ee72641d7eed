// Package container centralizes the creation and wiring of application
// dependencies, making them explicit and testable.
package container

import (
	"context"
	"fmt"

	"github.com/hoangkien2400-crypto/thongkesosach/internal/advisory"
	"github.com/hoangkien2400-crypto/thongkesosach/internal/config"
	"github.com/hoangkien2400-crypto/thongkesosach/internal/exporter"
	"github.com/hoangkien2400-crypto/thongkesosach/internal/extractor"
	"github.com/hoangkien2400-crypto/thongkesosach/internal/logging"
	"github.com/hoangkien2400-crypto/thongkesosach/internal/session"
)

// Container holds the wired application dependencies. Immutable after
// creation; everything is reached through getters.
type Container struct {
	config    *config.Config
	logger    logging.Logger
	catalog   advisory.Catalog
	aiClient  extractor.AIClient
	extractor *extractor.Extractor
	session   *session.Session
	closeFn   func() error
}

// NewContainer creates and wires all dependencies from the configuration.
// When no API key is configured the AI client is left nil; analysis requests
// then fail with the generic extraction advisory instead of at startup.
func NewContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}

	logger := logging.NewLogrusAdapter(cfg.Log.Level, cfg.Log.Format)

	catalog := advisory.Default()
	if cfg.Advisory.File != "" {
		loaded, err := advisory.Load(cfg.Advisory.File)
		if err != nil {
			logger.WithError(err).Warn("Failed to load advisory overrides, using defaults")
		} else {
			catalog = loaded
		}
	}

	exporter.SetLogger(logger)
	exporter.SetDelimiter([]rune(cfg.CSV.Delimiter)[0])

	var aiClient extractor.AIClient
	closeFn := func() error { return nil }
	if cfg.AI.APIKey != "" {
		gemini, err := extractor.NewGeminiClient(ctx, cfg.AI.APIKey, cfg.AI.Model, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to create AI client: %w", err)
		}
		aiClient = gemini
		closeFn = gemini.Close
	} else {
		logger.Warn("GEMINI_API_KEY not set, AI analysis will be unavailable")
	}

	ext := extractor.New(aiClient, catalog, logger)
	sess := session.New(ext, catalog, logger)

	return &Container{
		config:    cfg,
		logger:    logger,
		catalog:   catalog,
		aiClient:  aiClient,
		extractor: ext,
		session:   sess,
		closeFn:   closeFn,
	}, nil
}

// Logger returns the application logger.
func (c *Container) Logger() logging.Logger { return c.logger }

// Config returns the application configuration.
func (c *Container) Config() *config.Config { return c.config }

// Catalog returns the advisory message catalog.
func (c *Container) Catalog() advisory.Catalog { return c.catalog }

// Extractor returns the AI extraction adapter.
func (c *Container) Extractor() *extractor.Extractor { return c.extractor }

// Session returns the session controller.
func (c *Container) Session() *session.Session { return c.session }

// Close releases held resources (the AI client connection).
func (c *Container) Close() error { return c.closeFn() }
