// Command seed populates a local SQLite database with a demo SEO
// dataset so the API can be exercised without a crawl pipeline.
package main

import (
	"log"

	"github.com/joho/godotenv"

	"seograph-backend/internal/config"
	"seograph-backend/internal/repository/sqlite"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	store, err := sqlite.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to open database at %s: %v", cfg.Database.Path, err)
	}
	defer store.Close()

	if err := sqlite.Seed(store.DB()); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}

	log.Printf("Seeded demo dataset into %s", cfg.Database.Path)
}
