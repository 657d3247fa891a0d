package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/dfcarvalho/posto/internal/config"
	"github.com/dfcarvalho/posto/internal/database"
	"github.com/dfcarvalho/posto/internal/employee"
	employeeStore "github.com/dfcarvalho/posto/internal/employee/store"
	postoHttp "github.com/dfcarvalho/posto/internal/http"
	directoryHandler "github.com/dfcarvalho/posto/internal/http/directory"
	importHandler "github.com/dfcarvalho/posto/internal/http/importcsv"
	recordsHandler "github.com/dfcarvalho/posto/internal/http/records"
	reportHandler "github.com/dfcarvalho/posto/internal/http/report"
	"github.com/dfcarvalho/posto/internal/importer"
	"github.com/dfcarvalho/posto/internal/refueling"
	refuelingStore "github.com/dfcarvalho/posto/internal/refueling/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.Migrate(context.Background(), db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	var (
		refuelingService = refueling.NewService(refuelingStore.New(db))
		employeeService  = employee.NewService(employeeStore.New(db))
		importService    = importer.NewService()
	)

	var (
		importH    = importHandler.NewHandler(importService, refuelingService, employeeService, cfg.App.OwnerID)
		reportH    = reportHandler.NewHandler(refuelingService, employeeService, cfg.Report.PageSize)
		directoryH = directoryHandler.NewHandler(employeeService)
		recordsH   = recordsHandler.NewHandler(refuelingService)
	)

	router := postoHttp.New(importH, reportH, directoryH, recordsH)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "app", cfg.App.Name, "port", port)

	server := &http.Server{
		Addr:         port,
		Handler:      router,
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
	}

	if err := server.ListenAndServe(); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
