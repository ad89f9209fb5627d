package main

import (
	"database/sql"
	"fmt"
	"log"

	"github.com/F1oxyz/coffe-cat-cop/internal/config"
	"github.com/F1oxyz/coffe-cat-cop/internal/db"

	_ "github.com/lib/pq"
)

func main() {
	cfg := config.LoadConfig()

	database := db.InitDB(cfg)
	defer database.Close()

	if err := run(database); err != nil {
		log.Fatal(err)
	}

	log.Println("schema is up to date")
}

func run(database *sql.DB) error {
	_, err := database.Exec(`
		CREATE TABLE IF NOT EXISTS documents (
			collection TEXT NOT NULL,
			key        TEXT NOT NULL,
			doc        JSONB NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			PRIMARY KEY (collection, key)
		);
	`)
	if err != nil {
		return fmt.Errorf("failed to ensure documents table: %w", err)
	}

	_, err = database.Exec(`
		CREATE INDEX IF NOT EXISTS documents_collection_created_at_idx
			ON documents (collection, created_at);
	`)
	if err != nil {
		return fmt.Errorf("failed to ensure documents index: %w", err)
	}

	return nil
}
