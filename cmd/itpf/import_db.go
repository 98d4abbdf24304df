package main

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"itpf-legal-backend/corpus"
	"itpf-legal-backend/repository"
	"itpf-legal-backend/storage"
)

// importDBCmd copies the shard corpus into Postgres
var importDBCmd = &cobra.Command{
	Use:   "import-db",
	Short: "Load the shard files from storage and write them to Postgres",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if cfg.Database.URL == "" {
			return errors.New("DATABASE_URL is required")
		}

		store, err := storage.NewStorage(ctx, cfg.Storage)
		if err != nil {
			return fmt.Errorf("failed to initialize storage: %w", err)
		}
		c, err := corpus.NewShardSource(store, cfg.Corpus.Prefix, logger).Load(ctx)
		if err != nil {
			return err
		}
		for _, issue := range corpus.Validate(c) {
			logger.Warn("corpus integrity: " + issue.String())
		}

		pool, err := pgxpool.New(ctx, cfg.Database.URL)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer pool.Close()

		n, err := repository.NewLegalEntryRepository(pool).ReplaceAll(ctx, c)
		if err != nil {
			return err
		}
		fmt.Printf("✓ Imported %d legal entries\n", n)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(importDBCmd)
}
