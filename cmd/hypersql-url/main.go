package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/belphemur/hypersql/internal/config"
	"github.com/belphemur/hypersql/internal/database"
	"github.com/belphemur/hypersql/internal/datasource"
	"github.com/belphemur/hypersql/internal/driver"
	"github.com/belphemur/hypersql/internal/logging"
	appSignals "github.com/belphemur/hypersql/internal/signals"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const defaultConfigPath = "configs/datasources.toml"

func main() {
	isDev := os.Getenv("ENV") != "production"
	logging.Initialize(isDev)

	logger := logging.GetLogger("main")
	logger.Debug().
		Str("version", version).
		Str("commit", commit).
		Str("build_date", date).
		Msg("Starting HyperSQL URL builder")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		logger.Error().Err(err).Msg("Run failed")
		stop()
		os.Exit(1)
	}
}

// configPath picks the config file: first argument, then CONFIG_FILE, then the default
func configPath(args []string) string {
	if len(args) > 0 && args[0] != "" {
		return args[0]
	}
	if p := os.Getenv("CONFIG_FILE"); p != "" {
		return p
	}
	return defaultConfigPath
}

func run(ctx context.Context, args []string, out io.Writer) error {
	logger := logging.GetLogger("main")

	path := configPath(args)
	cfg, err := config.Load(path)
	if err != nil {
		logger.Error().Err(err).Str("config_path", path).Msg("Failed to load configuration")
		return err
	}

	logging.SetLogLevel(cfg.Service.LogLevel)
	logger.Debug().Str("log_level", cfg.Service.LogLevel).Msg("Log level set")

	if cfg.Service.StateFile != "" {
		closeCatalog, err := openCatalog(cfg.Service.StateFile)
		if err != nil {
			return err
		}
		defer closeCatalog()
	}

	registry := driver.NewDefaultRegistry()
	logger.Debug().Strs("drivers", registry.Names()).Msg("Drivers registered")

	resolver := datasource.NewResolver(registry)
	results, resolveErr := resolver.ResolveAll(ctx, cfg.DatasourceProperties())
	for _, res := range results {
		fmt.Fprintf(out, "%s\t%s\n", res.Name, res.URL)
	}

	if resolveErr != nil {
		return fmt.Errorf("failed to resolve datasources: %w", resolveErr)
	}
	logger.Info().Int("datasources", len(results)).Msg("All datasources resolved")
	return nil
}

// openCatalog opens the SQLite catalog and records every resolved datasource in it
func openCatalog(stateFile string) (func(), error) {
	logger := logging.GetLogger("main")

	if err := os.MkdirAll(filepath.Dir(stateFile), 0755); err != nil {
		logger.Error().Err(err).Str("path", filepath.Dir(stateFile)).Msg("Failed to create data directory")
		return nil, err
	}

	db, err := database.New(database.NewDefaultOptions(stateFile))
	if err != nil {
		wrappedErr := fmt.Errorf("failed to initialize catalog database: %w", err)
		logger.Error().Err(wrappedErr).Str("db_path", stateFile).Msg("Catalog initialization failed")
		return nil, wrappedErr
	}

	if err := db.MigrateDatabase(); err != nil {
		db.Close()
		wrappedErr := fmt.Errorf("failed to initialize catalog schema: %w", err)
		logger.Error().Err(wrappedErr).Msg("Catalog schema initialization failed")
		return nil, wrappedErr
	}

	store := database.NewCatalogStore(db)
	appSignals.OnDatasourceResolved(func(ctx context.Context, data appSignals.DatasourceResolvedData) {
		signalLogger := logging.GetLogger("signal-datasource-resolved")
		entry := database.CatalogEntry{
			Name:       data.Name,
			Driver:     data.Driver,
			URL:        data.URL,
			ResolvedAt: time.Now(),
		}
		if err := store.Save(ctx, entry); err != nil {
			signalLogger.Warn().Err(err).Str("datasource", data.Name).Msg("Failed to record datasource in catalog")
		}
	}, "main-catalog-handler")

	return func() {
		appSignals.OffDatasourceResolved("main-catalog-handler")
		db.Close()
	}, nil
}
