package main

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"

	"itpf-legal-backend/config"
)

func main() {
	if path := config.LoadDotEnv(); path == "" {
		log.Printf("Warning: No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if cfg.Database.URL == "" {
		log.Fatal("DATABASE_URL is required")
	}

	pool, err := pgxpool.New(context.Background(), cfg.Database.URL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	ctx := context.Background()

	tables := []struct {
		name string
		sql  string
	}{
		{
			name: "legal_entries",
			sql: `
CREATE TABLE IF NOT EXISTS legal_entries (
    language VARCHAR(16) NOT NULL CHECK (language IN ('arabic', 'english')),
    kind VARCHAR(16) NOT NULL CHECK (kind IN ('article', 'appendix')),
    number VARCHAR(16) NOT NULL,
    title TEXT NOT NULL DEFAULT '',
    content TEXT NOT NULL DEFAULT '',

    -- corpus order within a language and kind
    position INTEGER NOT NULL,

    PRIMARY KEY (language, kind, number)
);`,
		},
		{
			name: "query_logs",
			sql: `
CREATE TABLE IF NOT EXISTS query_logs (
    id UUID PRIMARY KEY,
    question TEXT NOT NULL,
    language VARCHAR(16) NOT NULL,
    intent VARCHAR(32) NOT NULL,
    source VARCHAR(16) NOT NULL,
    provider VARCHAR(32) NOT NULL DEFAULT '',
    fallback BOOLEAN NOT NULL DEFAULT false,
    not_found BOOLEAN NOT NULL DEFAULT false,
    cited JSONB NOT NULL DEFAULT '[]'::jsonb,
    duration_ms BIGINT NOT NULL DEFAULT 0,
    created_at TIMESTAMP NOT NULL DEFAULT NOW()
);`,
		},
	}

	for _, table := range tables {
		if _, err := pool.Exec(ctx, table.sql); err != nil {
			log.Fatalf("Failed to create %s table: %v", table.name, err)
		}
		log.Printf("✓ Created %s table", table.name)
	}

	indexes := []struct {
		name string
		sql  string
	}{
		{
			name: "Corpus order",
			sql:  "CREATE INDEX IF NOT EXISTS idx_legal_entries_order ON legal_entries(language, kind, position);",
		},
		{
			name: "Recent queries",
			sql:  "CREATE INDEX IF NOT EXISTS idx_query_logs_created_at ON query_logs(created_at DESC);",
		},
		{
			name: "Queries by intent",
			sql:  "CREATE INDEX IF NOT EXISTS idx_query_logs_intent ON query_logs(intent);",
		},
	}

	for _, idx := range indexes {
		if _, err := pool.Exec(ctx, idx.sql); err != nil {
			log.Printf("Warning: Failed to create index %s: %v", idx.name, err)
		} else {
			log.Printf("✓ Created index: %s", idx.name)
		}
	}

	fmt.Println("\n✅ Database schema created successfully!")
	fmt.Println("   Tables: legal_entries, query_logs")
	fmt.Printf("   Indexes: %d indexes created\n", len(indexes))
}
