package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"

	"itpf-legal-backend/config"
	"itpf-legal-backend/logging"
	"itpf-legal-backend/models"
	"itpf-legal-backend/service"
)

func TestNew_LocalShardsWithoutGenerator(t *testing.T) {
	dir := t.TempDir()
	src, err := os.ReadFile(filepath.Join("..", "corpus", "testdata", "english_data_part1.json"))
	if err != nil {
		t.Fatalf("read fixture: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "english_data_part1.json"), src, 0o644); err != nil {
		t.Fatalf("write shard: %v", err)
	}

	v := viper.New()
	v.Set("STORAGE_LOCAL_PATH", dir)
	v.Set("GENERATOR_PROVIDER", config.ProviderNone)
	v.Set("DATABASE_URL", "")
	v.Set("REDIS_ADDR", "")
	cfg, err := config.LoadFrom(v)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}

	logger := logging.Discard()
	a, err := New(context.Background(), cfg, logger)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer a.Close()

	if a.Generator != nil || a.DB != nil || a.Cache != nil || a.QueryLog != nil {
		t.Errorf("optional components enabled: %+v", a)
	}

	stats, err := a.AnswerService.Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats() error = %v", err)
	}
	if stats.English.Articles == 0 || stats.Arabic.Articles != 0 {
		t.Errorf("stats = %+v", stats)
	}

	result, err := a.AnswerService.Answer(context.Background(), service.AnswerRequest{
		Question: "appendix 9",
		Language: models.LanguageEnglish,
		UseAI:    true,
	})
	if err != nil {
		t.Fatalf("Answer() error = %v", err)
	}
	if result.Source != models.SourceLocal {
		t.Errorf("Source = %q, want local without a generator", result.Source)
	}
}
