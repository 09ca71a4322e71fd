package main

import (
	"context"
	"database/sql"
	"flag"
	"hos-recap-service/internal/adapters/repositories"
	"hos-recap-service/internal/config"
	"hos-recap-service/internal/platform/db"
	"log"
)

func main() {
	skipSeed := flag.Bool("schema-only", false, "create tables without loading seed trips")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()

	sqlDB, err := db.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer sqlDB.Close()

	seedPath := cfg.SeedPath
	if *skipSeed {
		seedPath = ""
	}
	if err := initAndSeed(ctx, sqlDB, seedPath); err != nil {
		log.Fatal(err)
	}
}

func initAndSeed(ctx context.Context, sqlDB *sql.DB, seedPath string) error {
	log.Println("Initializing database schema...")
	if err := repositories.InitSchema(ctx, sqlDB); err != nil {
		log.Fatalf("schema initialization failed: %v", err)
	}
	log.Println("Schema ready.")

	if seedPath == "" {
		return nil
	}

	log.Printf("Seeding database from %s...", seedPath)
	repo := repositories.NewPostgresTripRepository(sqlDB)
	if err := repositories.SeedFromJSON(ctx, repo, seedPath); err != nil {
		log.Fatalf("seeding failed: %v", err)
	}
	log.Println("Seeding complete.")

	return nil
}
