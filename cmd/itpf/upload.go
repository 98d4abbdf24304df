package main

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"github.com/spf13/cobra"

	"itpf-legal-backend/corpus"
	"itpf-legal-backend/models"
	"itpf-legal-backend/storage"
)

// uploadCmd publishes local shard files to the configured storage
var uploadCmd = &cobra.Command{
	Use:   "upload <dir>",
	Short: "Upload shard files from a directory to the configured storage",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		store, err := storage.NewStorage(ctx, cfg.Storage)
		if err != nil {
			return fmt.Errorf("failed to initialize storage: %w", err)
		}

		var names []string
		for _, lang := range []models.Language{models.LanguageArabic, models.LanguageEnglish} {
			names = append(names, corpus.ShardNames(lang)...)
			names = append(names, corpus.FallbackName(lang))
		}

		uploaded := 0
		for _, name := range names {
			data, err := os.ReadFile(filepath.Join(args[0], name))
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			if err != nil {
				return err
			}
			// a shard that does not parse would replace a good one
			if _, err := corpus.ParseShard(data, shardLanguage(name)); err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}

			key := name
			if cfg.Corpus.Prefix != "" {
				key = path.Join(cfg.Corpus.Prefix, name)
			}
			location, err := store.Upload(ctx, key, bytes.NewReader(data))
			if err != nil {
				return fmt.Errorf("failed to upload %s: %w", name, err)
			}
			fmt.Printf("✓ %s -> %s\n", name, location)
			uploaded++
		}

		if uploaded == 0 {
			return fmt.Errorf("no shard files found in %s", args[0])
		}
		return nil
	},
}

func shardLanguage(name string) models.Language {
	for _, n := range append(corpus.ShardNames(models.LanguageEnglish), corpus.FallbackName(models.LanguageEnglish)) {
		if n == name {
			return models.LanguageEnglish
		}
	}
	return models.LanguageArabic
}

func init() {
	rootCmd.AddCommand(uploadCmd)
}
