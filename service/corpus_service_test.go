package service

import (
	"context"
	"errors"
	"testing"

	"itpf-legal-backend/models"
)

func TestAnswerService_Search(t *testing.T) {
	s := newTestService()

	result, err := s.Search(context.Background(), SearchRequest{Query: "ملحق 9", MaxResults: 2})
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if result.Total == 0 || result.Total > 2 || len(result.Results) != result.Total {
		t.Fatalf("Search() returned %d results", result.Total)
	}
	if e := result.Results[0].Entry; e.Kind != models.KindAppendix || e.Number != "9" {
		t.Errorf("first result = %s, want appendix 9", e.Label())
	}

	if _, err := s.Search(context.Background(), SearchRequest{Query: ""}); !errors.Is(err, ErrEmptyQuestion) {
		t.Errorf("Search() error = %v, want ErrEmptyQuestion", err)
	}
}

func TestAnswerService_Appendix(t *testing.T) {
	s := newTestService()

	entry, err := s.Appendix(context.Background(), models.LanguageEnglish, "10")
	if err != nil {
		t.Fatalf("Appendix() error = %v", err)
	}
	if entry.Title != "Team Event Program" {
		t.Errorf("Appendix() title = %q", entry.Title)
	}

	entry, err = s.Appendix(context.Background(), models.LanguageBoth, "٩")
	if err != nil {
		t.Fatalf("Appendix() error = %v", err)
	}
	if entry.Language != models.LanguageArabic || entry.Number != "9" {
		t.Errorf("Appendix() = %s %s", entry.Language, entry.Label())
	}

	if _, err := s.Appendix(context.Background(), models.LanguageArabic, "11"); !errors.Is(err, ErrEntryNotFound) {
		t.Errorf("Appendix() error = %v, want ErrEntryNotFound", err)
	}
}

func TestAnswerService_Stats(t *testing.T) {
	stats, err := newTestService().Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats() error = %v", err)
	}
	want := LanguageStats{Articles: 8, Appendices: 2}
	if stats.Arabic != want || stats.English != want {
		t.Errorf("Stats() = %+v / %+v, want %+v", stats.Arabic, stats.English, want)
	}
	if len(stats.Issues) == 0 {
		t.Error("fixture corpus should report missing articles")
	}
	if stats.LoadedAt.IsZero() {
		t.Error("LoadedAt not set")
	}
}

func TestAnswerService_WithoutCorpus(t *testing.T) {
	s := NewAnswerService()
	if _, err := s.Stats(context.Background()); !errors.Is(err, ErrCorpusNotSet) {
		t.Errorf("Stats() error = %v, want ErrCorpusNotSet", err)
	}
	if err := s.Reload(context.Background()); !errors.Is(err, ErrCorpusNotSet) {
		t.Errorf("Reload() error = %v, want ErrCorpusNotSet", err)
	}
}
