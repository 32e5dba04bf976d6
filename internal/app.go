package internal

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/fluent/fluent-logger-golang/fluent"
	"github.com/jackc/pgx/v5/pgxpool"

	cache_adapter "github.com/Kaneki016/superhomes-website-sub000/internal/adapters/cache"
	logger_adapter "github.com/Kaneki016/superhomes-website-sub000/internal/adapters/logger"
	postgres_adapter "github.com/Kaneki016/superhomes-website-sub000/internal/adapters/postgres"
	"github.com/Kaneki016/superhomes-website-sub000/internal/adapters/rest"
	"github.com/Kaneki016/superhomes-website-sub000/internal/configs"
	"github.com/Kaneki016/superhomes-website-sub000/internal/core/port"
	"github.com/Kaneki016/superhomes-website-sub000/internal/core/usecase"
	"github.com/Kaneki016/superhomes-website-sub000/pkg/fluentlogger"
	"github.com/Kaneki016/superhomes-website-sub000/pkg/postgres"
)

// App wires the adapters, use cases and the HTTP server together.
type App struct {
	config       *configs.AppConfig
	dbPool       *pgxpool.Pool
	apiServer    *rest.Server
	fluentClient *fluent.Fluent // kept so it can be closed on shutdown
	logger       port.LoggerPort
}

// NewApp builds a fully wired application instance.
func NewApp() (*App, error) {
	appConfig, err := configs.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("error loading application configuration: %w", err)
	}

	// Loggers
	var activeLoggers []port.LoggerPort

	slogCfg := logger_adapter.SlogConfig{
		Level:    parseLogLevel(appConfig.StdoutLogger.Level),
		IsJSON:   false,
		UseColor: true,
	}
	stdoutLogger := logger_adapter.NewSlogAdapter(slogCfg)
	activeLoggers = append(activeLoggers, stdoutLogger)

	var fluentClient *fluent.Fluent
	if appConfig.FluentBit.Enabled {
		fluentClient, err = fluentlogger.NewClient(fluentlogger.Config{
			Host:      appConfig.FluentBit.Host,
			Port:      appConfig.FluentBit.Port,
			TagPrefix: appConfig.AppName,
		})
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit client", err, nil)
			return nil, fmt.Errorf("failed to create fluentbit client: %w", err)
		}

		fluentAdapter, err := logger_adapter.NewFluentLoggerAdapter(fluentClient, parseLogLevel(appConfig.FluentBit.Level))
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit adapter", err, nil)
			fluentClient.Close()
			return nil, err
		}
		activeLoggers = append(activeLoggers, fluentAdapter)
	}

	multiLogger, err := logger_adapter.NewMultiloggerAdapter(activeLoggers...)
	if err != nil {
		return nil, fmt.Errorf("failed to create multi-logger: %w", err)
	}

	baseLogger := multiLogger.WithFields(port.Fields{
		"service_name": appConfig.AppName,
	})

	appLogger := baseLogger.WithFields(port.Fields{"component": "app"})
	appLogger.Info("Logger system initialized", port.Fields{
		"active_loggers": len(activeLoggers), "fluent_enabled": appConfig.FluentBit.Enabled,
	})

	// Database
	dbPool, err := postgres.NewClient(context.Background(), postgres.Config{DatabaseURL: appConfig.Database.URL})
	if err != nil {
		appLogger.Error("Failed to connect to PostgreSQL", err, nil)
		return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	appLogger.Info("Successfully connected to PostgreSQL pool", nil)

	// Outgoing adapters
	listingStorage, err := postgres_adapter.NewListingStorageAdapter(dbPool)
	if err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to create listing storage adapter: %w", err)
	}
	agentStorage, err := postgres_adapter.NewAgentStorageAdapter(dbPool)
	if err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to create agent storage adapter: %w", err)
	}
	filterRepo, err := postgres_adapter.NewFilterRepository(dbPool)
	if err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to create filter repository: %w", err)
	}
	queryCache := cache_adapter.NewMemoryCache(cache_adapter.RealClock{})
	appLogger.Info("All outgoing adapters initialized", nil)

	// Use cases
	searchPropertiesUC := usecase.NewSearchPropertiesUseCase(listingStorage, appConfig.Search.PriorityStates)
	getPropertyByIDUC := usecase.NewGetPropertyByIDUseCase(listingStorage)
	resolveSlugUC := usecase.NewResolveSlugUseCase(listingStorage)
	getFeaturedUC := usecase.NewGetFeaturedPropertiesUseCase(listingStorage, queryCache, appConfig.Search.FeaturedTTL)
	listAgentsUC := usecase.NewListAgentsUseCase(agentStorage, appConfig.Search.PriorityStates)
	getFilterOptionsUC := usecase.NewGetFilterOptionsUseCase(filterRepo, queryCache, appConfig.Search.FilterTTL)
	regionMetricsUC := usecase.NewComputeRegionMetricsUseCase(listingStorage, queryCache, appConfig.Search.RegionTTL)
	appLogger.Info("All use cases initialized", nil)

	// REST API server
	propertyHandlers := rest.NewPropertyHandlers(searchPropertiesUC, getPropertyByIDUC, resolveSlugUC, getFeaturedUC)
	agentHandlers := rest.NewAgentHandlers(listAgentsUC)
	metaHandlers := rest.NewMetaHandlers(getFilterOptionsUC, regionMetricsUC)
	apiServer := rest.NewServer(appConfig.Rest.PORT, propertyHandlers, agentHandlers, metaHandlers, baseLogger)

	return &App{
		config:       appConfig,
		dbPool:       dbPool,
		apiServer:    apiServer,
		fluentClient: fluentClient,
		logger:       appLogger,
	}, nil
}

// Run starts the application components and manages their lifecycle.
func (a *App) Run() error {
	appCtx, cancelApp := context.WithCancel(context.Background())

	defer func() {
		a.logger.Info("App: Shutdown sequence initiated...", nil)

		if a.apiServer != nil {
			if err := a.apiServer.Stop(context.Background()); err != nil {
				a.logger.Error("App: Error closing api server", err, nil)
			}
		}

		if a.dbPool != nil {
			a.dbPool.Close()
			a.logger.Info("App: PostgreSQL pool closed", nil)
		}

		if a.fluentClient != nil {
			if err := a.fluentClient.Close(); err != nil {
				// Log to stdout, fluent itself may already be gone.
				fmt.Printf("ERROR: Error closing fluent client: %v\n", err)
			}
		}

		a.logger.Info("Application shut down gracefully", nil)
	}()

	a.logger.Info("Application is starting...", nil)

	serverErrors := make(chan error, 1)
	go func() {
		if err := a.apiServer.Start(); err != nil && err != http.ErrServerClosed {
			serverErrors <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	a.logger.Info("Application running. Waiting for signals or server error...", nil)
	select {
	case receivedSignal := <-quit:
		a.logger.Info("App: Received signal. Shutting down...", port.Fields{"signal": receivedSignal.String()})
	case err := <-serverErrors:
		a.logger.Error("App: HTTP server failed. Shutting down...", err, nil)
	case <-appCtx.Done():
		a.logger.Warn("App: Context was cancelled unexpectedly. Shutting down...", nil)
	}

	cancelApp()

	return nil
}

func parseLogLevel(levelStr string) slog.Level {
	switch strings.ToLower(levelStr) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		log.Printf("Warning: Unknown log level '%s'. Defaulting to 'info'.", levelStr)
		return slog.LevelInfo
	}
}
