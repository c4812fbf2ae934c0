package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"scistat/adapters/graphs"
	"scistat/adapters/memory"
	"scistat/adapters/postgres"
	"scistat/app"
	"scistat/internal/config"
	"scistat/ports"
	"scistat/ui"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("[api] no .env file loaded: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("[api] config: %v", err)
	}
	gin.SetMode(cfg.Server.GinMode)

	repo := buildRepository(cfg)

	// The API collects chart specs only; nothing is sketched to a terminal
	grapher := graphs.NewTextGrapher(nil)
	analyzer := app.NewAnalyzerService(repo, grapher)

	server := ui.NewServer(analyzer, repo, cfg.Server.Port)
	if err := server.Run(); err != nil {
		log.Fatalf("[api] server: %v", err)
	}
}

func buildRepository(cfg *config.Config) ports.ReportRepository {
	if cfg.Database.URL == "" {
		log.Printf("[api] DATABASE_URL not set, using in-memory report store")
		return memory.NewReportRepository()
	}

	db, err := sqlx.Connect("postgres", cfg.Database.URL)
	if err != nil {
		log.Fatalf("[api] failed to connect to database: %v", err)
	}
	if err := postgres.Migrate(db); err != nil {
		log.Fatalf("[api] migration: %v", err)
	}
	return postgres.NewReportRepository(db)
}
