package main

import (
	"log"

	"goscrub/adapters/ingest"
	"goscrub/adapters/postgres"
	"goscrub/app"
	"goscrub/internal"
	"goscrub/internal/config"
	"goscrub/internal/inference"
	"goscrub/internal/profile"
	"goscrub/ports"
	"goscrub/ui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	logger := internal.NewDefaultLogger()

	engine := inference.NewEngine(inference.Config{
		NumericThreshold: cfg.Inference.NumericThreshold,
		MaxCategories:    cfg.Inference.MaxCategories,
		CategoricalRatio: cfg.Inference.CategoricalRatio,
		SampleLimit:      cfg.Inference.SampleLimit,
	})
	profiler := profile.NewProfiler(profile.Config{
		ZScoreThreshold: cfg.Profiler.ZScoreThreshold,
		TopK:            cfg.Profiler.TopK,
	})

	var recipes ports.RecipeRepository
	if cfg.Database.URL != "" {
		db, err := postgres.Connect(cfg.Database.URL)
		if err != nil {
			log.Fatalf("database: %v", err)
		}
		defer db.Close()
		recipes = postgres.NewRecipeRepository(db)
		logger.Info("recipe persistence enabled")
	} else {
		logger.Warn("DATABASE_URL not set, recipe persistence disabled")
	}

	service := app.NewCleaningService(engine, profiler, recipes, logger)
	reader := ingest.NewDataReader(engine, cfg.Upload.MaxPreviewRow)

	server := ui.NewServer(cfg, service, reader, logger)
	if err := server.ListenAndServe(); err != nil {
		log.Fatalf("server: %v", err)
	}
}
