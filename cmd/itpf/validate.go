package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"itpf-legal-backend/models"
)

// validateCmd checks the corpus for missing, duplicated or empty entries
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the corpus for missing or duplicated provisions",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		a, err := newApp(ctx)
		if err != nil {
			return err
		}
		defer a.Close()

		snap, err := a.Store.Snapshot(ctx)
		if err != nil {
			return err
		}

		for _, lang := range []models.Language{models.LanguageArabic, models.LanguageEnglish} {
			lc := snap.Corpus.Language(lang)
			fmt.Printf("%-8s %3d articles, %d appendices\n", lang, len(lc.Articles), len(lc.Appendices))
		}

		if len(snap.Issues) == 0 {
			fmt.Println("✓ corpus is complete")
			return nil
		}
		fmt.Println()
		for _, issue := range snap.Issues {
			fmt.Println("  " + issue.String())
		}
		return fmt.Errorf("%d integrity issues", len(snap.Issues))
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
