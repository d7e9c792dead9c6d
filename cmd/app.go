package cmd

import (
	"context"
	"fmt"
	"time"

	"fixture-server/core/config"
	"fixture-server/core/loader"
	"fixture-server/core/mimetypes"
	"fixture-server/core/server"
	"fixture-server/core/source"
	"fixture-server/core/storage"
	"fixture-server/feature/assets"
	"fixture-server/feature/fixtures"
	"fixture-server/feature/integrity"
	"fixture-server/feature/page"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"

	_ "fixture-server/docs/swagger"
)

// Version is reported on the index page.
var Version = "0.0.1"

// @title Fixture Server API
// @version 1.0
// @description Serves the linked-data visualiser page and its test fixtures.
// @host localhost:5001
// @BasePath /

// newSource creates the fixture source for the configured driver.
func newSource(cfg *config.Config) (source.Source, error) {
	var client storage.Client
	if cfg.Content.Driver == source.DriverS3 {
		c, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return nil, fmt.Errorf("failed to create storage client: %w", err)
		}
		client = c
	}

	timeout := time.Duration(cfg.Storage.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return openSource(ctx, cfg, client)
}

// openSource builds the source and, for buckets, fails when the bucket is missing.
func openSource(ctx context.Context, cfg *config.Config, client storage.Client) (source.Source, error) {
	src, err := source.New(cfg.Content, client, cfg.Storage.Bucket)
	if err != nil {
		return nil, err
	}
	if b, ok := src.(*source.Bucket); ok {
		if err := b.Check(ctx); err != nil {
			return nil, err
		}
	}
	return src, nil
}

// newApp wires every feature onto a new Fiber app.
func newApp(cfg *config.Config, logg *zap.Logger) (*fiber.App, error) {
	registry, err := mimetypes.New(cfg.Mime)
	if err != nil {
		return nil, err
	}
	logg.Debug("MIME overrides registered", zap.Strings("overrides", registry.Overrides()))

	src, err := newSource(cfg)
	if err != nil {
		return nil, err
	}

	app := server.NewApp(logg)
	app.Get("/swagger/*", swagger.HandlerDefault)

	mgr := loader.NewManager(logg)
	// Fixtures before assets: both live under /static.
	mgr.Register(fixtures.NewFeature(src, registry, logg))
	mgr.Register(assets.NewFeature(cfg.Content.StaticDir, cfg.Server.Debug))
	mgr.Register(page.NewFeature(cfg.Content.TemplatesDir, cfg.Server.Debug, page.Data{
		Title:       "Linked Data Visualiser",
		Version:     Version,
		StaticURL:   assets.RoutePrefix,
		FixturesURL: fixtures.RoutePrefix,
	}, logg))
	mgr.Register(integrity.NewFeature(src, registry, logg))

	if err := mgr.LoadAll(app); err != nil {
		return nil, err
	}
	return app, nil
}
