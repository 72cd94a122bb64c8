package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/spf13/cobra"
	gormPostgres "gorm.io/driver/postgres"
	gormSqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"

	internal "github.com/yuchingtw/trip-companion/internal"
	itineraryDatamodel "github.com/yuchingtw/trip-companion/internal/core/datamodel/itinerary"
	"github.com/yuchingtw/trip-companion/internal/core/events"
	"github.com/yuchingtw/trip-companion/internal/itinerary"
	"github.com/yuchingtw/trip-companion/internal/itinerary/gormstore"
	"github.com/yuchingtw/trip-companion/internal/ledger"
	ledgerstore "github.com/yuchingtw/trip-companion/internal/ledger/store"
	"github.com/yuchingtw/trip-companion/internal/location"
	"github.com/yuchingtw/trip-companion/internal/seed"
	"github.com/yuchingtw/trip-companion/internal/transport"
	"github.com/yuchingtw/trip-companion/internal/transport/rest"
	"github.com/yuchingtw/trip-companion/internal/transport/swagger"
	"github.com/yuchingtw/trip-companion/pkg/logger"
)

var httpServerCmd = &cobra.Command{
	Use:   "server",
	Short: "Start HTTP server",
	Long:  `Start the HTTP server to handle API requests`,
	Run: func(cmd *cobra.Command, args []string) {
		startHTTPServer()
	},
}

type Dependencies struct {
	Config           *internal.Config
	DB               *sqlx.DB
	GormDB           *gorm.DB
	Router           *chi.Mux
	LedgerHandler    *ledger.Handler
	ItineraryHandler *itinerary.Handler
	LocationHandler  *location.Handler
	Logger           *slog.Logger
}

func startHTTPServer() {
	deps, err := initializeDependencies()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize dependencies: %v\n", err)
		os.Exit(1)
	}

	rest.RegisterAllRoutes(
		deps.Router,
		deps.DB.DB,
		deps.Config.Server.AllowedOrigins,
		deps.LedgerHandler,
		deps.ItineraryHandler,
		deps.LocationHandler,
		deps.Logger,
	)

	addr := fmt.Sprintf(":%d", deps.Config.Server.Port)
	deps.Logger.Info("Starting HTTP server", "address", addr)

	server := &http.Server{
		Addr:              addr,
		Handler:           deps.Router,
		ReadHeaderTimeout: deps.Config.Server.ReadHeaderTimeout,
		ReadTimeout:       deps.Config.Server.ReadTimeout,
		WriteTimeout:      deps.Config.Server.WriteTimeout,
		IdleTimeout:       deps.Config.Server.IdleTimeout,
	}

	// Signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	serverErrChan := make(chan error, 1)
	go func() {
		serverErrChan <- server.ListenAndServe()
	}()

	select {
	case sig := <-sigChan:
		deps.Logger.Info("Received signal, shutting down...", "signal", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			deps.Logger.Error("Server shutdown error", "error", err)
		}
		if err := deps.DB.Close(); err != nil {
			deps.Logger.Error("Database close error", "error", err)
		}
	case err := <-serverErrChan:
		if err != nil && err != http.ErrServerClosed {
			deps.Logger.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}

	deps.Logger.Info("Server stopped")
}

func initializeDependencies() (*Dependencies, error) {
	config, err := loadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger.Init(config.Observability.Logging.Level, config.Observability.Logging.Format)
	lg := logger.L()

	ctx := context.Background()

	if err := swagger.ValidateSpec(ctx, "./api/openapi.yml"); err != nil {
		lg.Warn("OpenAPI spec validation failed, Swagger UI may be broken", "error", err)
	}

	db, err := initDB(config.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	gormDB, err := initGorm(config.Database, db)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize orm: %w", err)
	}

	// sqlite installs run without migrations, the schema comes from the models
	if config.Database.Driver == "sqlite" {
		if err := gormDB.AutoMigrate(&itineraryDatamodel.Day{}, &itineraryDatamodel.Event{}); err != nil {
			return nil, fmt.Errorf("failed to migrate schedule schema: %w", err)
		}
	}

	bus := events.NewEventBus(lg)

	store, err := ledgerstore.New(ctx, config.LedgerStore, lg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize ledger store: %w", err)
	}

	ledgerService := ledger.NewService(store, bus, lg, config.LedgerStore.SheetURL)
	if err := ledgerService.Refresh(ctx); err != nil {
		// the remote store may be briefly unreachable; reads retry on demand
		lg.Warn("initial ledger fetch failed", "error", err)
	}

	scheduleRepo := gormstore.NewScheduleRepository(gormDB)
	itineraryService := itinerary.NewService(scheduleRepo, lg)
	if err := itineraryService.Reload(ctx); err != nil {
		return nil, fmt.Errorf("failed to load itinerary: %w", err)
	}

	trip, err := seed.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load bundled trip data: %w", err)
	}
	locationService := location.NewService(location.NewStaticRepository(trip.Locations), lg)

	baseHandler := transport.NewBaseHandler(lg)

	return &Dependencies{
		Config:           config,
		Logger:           lg,
		DB:               db,
		GormDB:           gormDB,
		Router:           chi.NewRouter(),
		LedgerHandler:    ledger.NewHandler(ledgerService),
		ItineraryHandler: itinerary.NewHandler(itineraryService),
		LocationHandler:  location.NewHandler(baseHandler, locationService),
	}, nil
}

// initDB initializes the database connection
func initDB(cfg internal.DatabaseConfig) (*sqlx.DB, error) {
	driver := "pgx"
	if cfg.Driver == "sqlite" {
		driver = "sqlite3"
	}

	dbConn, err := sqlx.Connect(driver, cfg.Source)
	if err != nil {
		return nil, fmt.Errorf("failed to open db connection: %w", err)
	}

	dbConn.SetMaxIdleConns(cfg.MaxIdleConns)
	dbConn.SetMaxOpenConns(cfg.MaxOpenConns)
	dbConn.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	// verify connection; close underlying *sql.DB on failure
	if err := dbConn.Ping(); err != nil {
		_ = dbConn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return dbConn, nil
}

// initGorm wraps the already-open connection pool for the ORM layer.
func initGorm(cfg internal.DatabaseConfig, db *sqlx.DB) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.Driver {
	case "sqlite":
		dialector = gormSqlite.Dialector{Conn: db.DB}
	default:
		dialector = gormPostgres.New(gormPostgres.Config{Conn: db.DB})
	}

	return gorm.Open(dialector, &gorm.Config{})
}
