package main

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"itpf-legal-backend/app"
	"itpf-legal-backend/config"
	"itpf-legal-backend/logging"
)

var (
	v      = viper.New()
	cfg    *config.Config
	logger *logrus.Logger
)

// rootCmd is the itpf command line tool
var rootCmd = &cobra.Command{
	Use:           "itpf",
	Short:         "Query and maintain the ITPF rulebook",
	Long:          `Answer questions against the ITPF tent pegging rulebook, check the corpus and publish shard files.`,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config.LoadDotEnv()

		var err error
		cfg, err = config.LoadFrom(v)
		if err != nil {
			return err
		}
		logger, err = logging.New(cfg.Log.Level, cfg.Log.Format)
		if err != nil {
			return err
		}
		return nil
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("log-level", "", "log level (debug, info, warn, error)")
	flags.String("log-format", "", "log format (json or text)")
	flags.String("storage-type", "", "shard storage backend (local or s3)")
	flags.String("data-dir", "", "directory of local shard files")
	flags.String("prefix", "", "object key prefix of the shard files")

	bind := map[string]string{
		"LOG_LEVEL":          "log-level",
		"LOG_FORMAT":         "log-format",
		"STORAGE_TYPE":       "storage-type",
		"STORAGE_LOCAL_PATH": "data-dir",
		"CORPUS_PREFIX":      "prefix",
	}
	for key, name := range bind {
		if err := v.BindPFlag(key, flags.Lookup(name)); err != nil {
			panic(fmt.Sprintf("bind flag %s: %v", name, err))
		}
	}
}

// newApp builds the application for commands that answer questions
func newApp(ctx context.Context) (*app.App, error) {
	a, err := app.New(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize: %w", err)
	}
	return a, nil
}
