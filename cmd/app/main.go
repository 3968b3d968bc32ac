package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"restaurant/cmd"
	httpin "restaurant/internal/adapters/in/http"
	"restaurant/internal/adapters/out/jsonstore"
	"restaurant/internal/adapters/out/menu"
	"restaurant/internal/core/domain/model/table"
	"restaurant/internal/jobs"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	store, journal, catalog := buildAdapters(configs, logger)
	seedTables(store, configs, logger)

	app := cmd.NewCompositionRoot(store, journal, catalog, logger)

	jobManager := jobs.NewJobManager(
		app.CreateFlagDelayedOrdersCommandHandler(),
		delayThreshold(configs),
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		logger.Error("failed to start jobs", "error", err)
		os.Exit(1)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:          goDotEnvVariable("HTTP_PORT"),
		DataDir:           goDotEnvVariable("DATA_DIR"),
		StorePath:         goDotEnvVariable("STORE_PATH"),
		HistoryDir:        goDotEnvVariable("HISTORY_DIR"),
		MenuPath:          goDotEnvVariable("MENU_PATH"),
		DelayThresholdMin: goDotEnvVariable("DELAY_THRESHOLD_MINUTES"),
		SeedTables:        goDotEnvVariable("SEED_TABLES"),
		SeedTableCapacity: goDotEnvVariable("SEED_TABLE_CAPACITY"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func buildAdapters(configs cmd.Config, logger *slog.Logger) (*jsonstore.Store, *jsonstore.PaymentJournal, *menu.Catalog) {
	dataDir := configs.DataDir
	if dataDir == "" {
		dataDir = "data"
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		log.Fatalf("Error creating data directory: %v", err)
	}

	storePath := configs.StorePath
	if storePath == "" {
		storePath = filepath.Join(dataDir, "tables.json")
	}
	historyDir := configs.HistoryDir
	if historyDir == "" {
		historyDir = filepath.Join(dataDir, "history")
	}
	menuPath := configs.MenuPath
	if menuPath == "" {
		menuPath = filepath.Join(dataDir, "menu.json")
	}

	store, err := jsonstore.NewStore(storePath, logger)
	if err != nil {
		log.Fatalf("Error opening table store: %v", err)
	}

	journal, err := jsonstore.NewPaymentJournal(historyDir, logger)
	if err != nil {
		log.Fatalf("Error opening payment journal: %v", err)
	}

	catalog, err := menu.NewCatalog(menuPath)
	if err != nil {
		log.Fatalf("Error loading menu: %v", err)
	}

	return store, journal, catalog
}

// seedTables ensures the configured number of tables exists. Tables already
// in the store keep their state and access tokens across restarts.
func seedTables(store *jsonstore.Store, configs cmd.Config, logger *slog.Logger) {
	count := intOrDefault(configs.SeedTables, 6)
	capacity := intOrDefault(configs.SeedTableCapacity, 4)

	tables := make([]*table.Table, 0, count)
	for i := 1; i <= count; i++ {
		t, err := table.NewTable(
			fmt.Sprintf("table-%d", i),
			fmt.Sprintf("Mesa %d", i),
			uuid.NewString(),
			capacity,
		)
		if err != nil {
			log.Fatalf("Error building seed table: %v", err)
		}
		tables = append(tables, t)
	}

	if err := store.Seed(context.Background(), tables); err != nil {
		log.Fatalf("Error seeding tables: %v", err)
	}
	logger.Info("table store ready", "tables", count, "capacity", capacity)
}

func delayThreshold(configs cmd.Config) time.Duration {
	return time.Duration(intOrDefault(configs.DelayThresholdMin, 15)) * time.Minute
}

func intOrDefault(raw string, fallback int) int {
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 1 {
		return fallback
	}
	return value
}

func startWebServer(app cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpin.NewServer(app.CreateServerHandlers())
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
