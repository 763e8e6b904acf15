package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/wawbus/fleet-analytics-go/internal/analysis"
	"github.com/wawbus/fleet-analytics-go/internal/api"
	"github.com/wawbus/fleet-analytics-go/internal/collector"
	"github.com/wawbus/fleet-analytics-go/internal/config"
	"github.com/wawbus/fleet-analytics-go/internal/database"
	"github.com/wawbus/fleet-analytics-go/internal/district"
	"github.com/wawbus/fleet-analytics-go/internal/handler"
	"github.com/wawbus/fleet-analytics-go/internal/metrics"
	"github.com/wawbus/fleet-analytics-go/internal/repository"
	"github.com/wawbus/fleet-analytics-go/internal/service"
)

func main() {
	cfg := config.Load()

	db, err := database.Open(database.Config{Path: cfg.DBPath})
	if err != nil {
		log.Fatal("Failed to initialize database: ", err)
	}
	defer db.Close()

	// District boundaries are mandatory: every aggregate depends on them.
	classifier, err := district.Load(cfg.DistrictsPath)
	if err != nil {
		log.Fatal("Failed to load district boundaries: ", err)
	}

	m := metrics.NewCollector()

	snapshotRepo := repository.NewSnapshotRepository(db)
	stopRepo := repository.NewStopRepository(db)
	resultRepo := repository.NewResultRepository(db)

	engine := analysis.NewEngine(cfg.Engine, classifier.Classify)
	analysisService := service.NewAnalysisService(snapshotRepo, stopRepo, resultRepo, engine, m)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.APIKey != "" {
		url := collector.BuildPositionsURL(cfg.PositionsURL, cfg.APIKey)
		go collector.New(url, cfg.PollInterval, snapshotRepo, m).Run(ctx)
	} else {
		log.Printf("[Server] API_KEY not set, background collection disabled")
	}

	router := api.SetupRouter(api.Handlers{
		Analysis: handler.NewAnalysisHandler(analysisService),
		Ingest:   handler.NewIngestHandler(snapshotRepo, stopRepo, classifier),
		District: handler.NewDistrictHandler(classifier),
		Metrics:  m,
	})

	log.Printf("Server starting on port %s", cfg.Port)
	if err := router.Run(cfg.Port); err != nil {
		log.Fatal("Failed to start server: ", err)
	}
}
