package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"itpf-legal-backend/formatter"
	"itpf-legal-backend/models"
	"itpf-legal-backend/service"
)

var (
	searchLanguage string
	searchLimit    int
)

// searchCmd lists the ranked entries for a query
var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Rank rulebook entries against a query",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		a, err := newApp(ctx)
		if err != nil {
			return err
		}
		defer a.Close()

		result, err := a.AnswerService.Search(ctx, service.SearchRequest{
			Query:      strings.Join(args, " "),
			Language:   models.ParseLanguage(searchLanguage),
			MaxResults: searchLimit,
		})
		if err != nil {
			return err
		}

		fmt.Printf("intent: %s, %d results\n\n", result.Intent.Primary, result.Total)
		for i, r := range result.Results {
			fmt.Printf("%2d. %-12s %6.1f  %s\n", i+1, r.Entry.Label(), r.Score, r.Entry.Title)
			fmt.Printf("    %s\n", formatter.Truncate(r.Entry.Content, 120))
		}
		return nil
	},
}

func init() {
	searchCmd.Flags().StringVarP(&searchLanguage, "language", "l", "arabic", "corpus language (arabic, english or both)")
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", 10, "maximum number of results")
	rootCmd.AddCommand(searchCmd)
}
