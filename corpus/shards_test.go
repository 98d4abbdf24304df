package corpus

import (
	"context"
	"errors"
	"testing"

	"itpf-legal-backend/logging"
	"itpf-legal-backend/models"
	"itpf-legal-backend/storage"
)

func testdataStorage(t *testing.T) storage.Storage {
	t.Helper()
	s, err := storage.NewLocalStorage("testdata")
	if err != nil {
		t.Fatalf("NewLocalStorage: %v", err)
	}
	return s
}

func numbers(entries []models.LegalEntry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Number
	}
	return out
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestShardSource_LoadsBothLanguages(t *testing.T) {
	src := NewShardSource(testdataStorage(t), "", logging.Discard())
	c, err := src.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	tests := []struct {
		lang       models.Language
		articles   []string
		appendices []string
	}{
		{models.LanguageArabic, []string{"100", "132", "144"}, []string{"9", "10"}},
		{models.LanguageEnglish, []string{"100", "132", "144"}, []string{"9", "10"}},
	}
	for _, tt := range tests {
		lc := c.Language(tt.lang)
		if got := numbers(lc.Articles); !equal(got, tt.articles) {
			t.Errorf("%s articles = %v, want %v", tt.lang, got, tt.articles)
		}
		if got := numbers(lc.Appendices); !equal(got, tt.appendices) {
			t.Errorf("%s appendices = %v, want %v", tt.lang, got, tt.appendices)
		}
		for _, e := range lc.Entries() {
			if e.Language != tt.lang {
				t.Errorf("entry %s has language %s", e.Key(), e.Language)
			}
		}
	}
	if got := c.English.Appendices[0]; got.Kind != models.KindAppendix || got.Title != "Tent Pegging Event Program" {
		t.Errorf("unexpected appendix %+v", got)
	}
}

func TestShardSource_FallbackFile(t *testing.T) {
	src := NewShardSource(testdataStorage(t), "fallback", logging.Discard())
	c, err := src.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !c.Arabic.Empty() {
		t.Errorf("expected empty Arabic corpus, got %+v", c.Arabic)
	}
	if len(c.English.Articles) != 1 || len(c.English.Appendices) != 1 {
		t.Errorf("unexpected English corpus %+v", c.English)
	}
}

func TestShardSource_Unavailable(t *testing.T) {
	src := NewShardSource(testdataStorage(t), "missing", logging.Discard())
	if _, err := src.Load(context.Background()); !errors.Is(err, ErrCorpusUnavailable) {
		t.Errorf("expected ErrCorpusUnavailable, got %v", err)
	}
}

func TestParseShard_InvalidJSON(t *testing.T) {
	if _, err := ParseShard([]byte(`{"articles": [`), models.LanguageArabic); err == nil {
		t.Error("expected error for truncated shard")
	}
}

func TestShardNames(t *testing.T) {
	got := ShardNames(models.LanguageEnglish)
	want := []string{"english_data_part1.json", "english_data_part2.json", "english_data_part3.json"}
	if !equal(got, want) {
		t.Errorf("ShardNames = %v", got)
	}
}
