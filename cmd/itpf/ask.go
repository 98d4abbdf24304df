package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"itpf-legal-backend/models"
	"itpf-legal-backend/service"
)

var (
	askLanguage string
	askUseAI    bool
	askJSON     bool
)

// askCmd answers one question
var askCmd = &cobra.Command{
	Use:   "ask <question>",
	Short: "Answer a question from the rulebook",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		a, err := newApp(ctx)
		if err != nil {
			return err
		}
		defer a.Close()

		result, err := a.AnswerService.Answer(ctx, service.AnswerRequest{
			Question: strings.Join(args, " "),
			Language: models.ParseLanguage(askLanguage),
			UseAI:    askUseAI,
		})
		if err != nil {
			return err
		}

		if askJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(result)
		}

		fmt.Println(result.Answer.Body)
		if len(result.Answer.Cited) > 0 {
			fmt.Println()
			for _, c := range result.Answer.Cited {
				fmt.Printf("  %s  %s (%.1f)\n", c.Label, c.Title, c.Score)
			}
		}
		fmt.Printf("\n[%s, %s, %dms]\n", result.Answer.Intent, result.Source, result.DurationMs)
		return nil
	},
}

func init() {
	askCmd.Flags().StringVarP(&askLanguage, "language", "l", "arabic", "corpus language (arabic, english or both)")
	askCmd.Flags().BoolVar(&askUseAI, "ai", false, "rewrite the answer with the configured generator")
	askCmd.Flags().BoolVar(&askJSON, "json", false, "print the full result as JSON")
	rootCmd.AddCommand(askCmd)
}
