package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/droschke/fleet-rate-service/internal/app/background"
	"github.com/droschke/fleet-rate-service/internal/app/setup"
	"github.com/droschke/fleet-rate-service/internal/infrastructure/migrate"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("failed to load .env")
	}

	deps, err := setup.InitializeDependencies()
	if err != nil {
		log.Fatalf("failed to init dependencies: %v", err)
	}
	cfg := deps.Config

	if cfg.Migrations.Path != "" {
		if err := migrate.RunMigrations(deps.DB, cfg.Migrations.Path); err != nil {
			log.Fatalf("failed to run migrations: %v", err)
		}
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	usecases := setup.InitializeUsecases(deps, logger)

	// Denormalized counter/pointer reconciler
	tasks := background.NewBackgroundTasks(usecases.Reconcile)
	tasks.StartAll(context.Background())

	addr := fmt.Sprintf("%s:%s", cfg.MetricsServer.Host, cfg.MetricsServer.Port)
	http.Handle("/metrics", promhttp.Handler())

	log.Printf("metrics server started on %s\n", addr)
	if err := http.ListenAndServe(addr, nil); err != nil {
		log.Fatalf("failed to serve: %v\n", err)
	}
}
