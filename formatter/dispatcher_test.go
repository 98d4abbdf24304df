package formatter

import (
	"errors"
	"strings"
	"testing"

	"itpf-legal-backend/corpus/corpustest"
	"itpf-legal-backend/models"
)

func scored(entries ...models.LegalEntry) []models.ScoredEntry {
	out := make([]models.ScoredEntry, len(entries))
	for i, e := range entries {
		out[i] = models.ScoredEntry{Entry: e, Score: float64(10 - i), Position: i}
	}
	return out
}

func englishArticle(number string) models.LegalEntry {
	return corpustest.Find(corpustest.Corpus(), models.LanguageEnglish, models.KindArticle, number)
}

func intent(i models.Intent) models.IntentResult {
	return models.IntentResult{Primary: i}
}

type stubFormatter struct {
	body  string
	err   error
	panic bool
}

func (s stubFormatter) Format(Input) (string, error) {
	if s.panic {
		panic("boom")
	}
	return s.body, s.err
}

type stubRelated struct {
	entries []models.LegalEntry
}

func (s stubRelated) Related(models.LegalEntry) []models.LegalEntry {
	return s.entries
}

func TestDispatcher_NotFound(t *testing.T) {
	d := NewDispatcher()
	for _, lang := range []models.Language{models.LanguageArabic, models.LanguageEnglish} {
		got := d.Format(Input{Question: "xyz completely unrelated nonsense", Language: lang, Intent: intent(models.IntentGeneral)})
		if !got.NotFound {
			t.Errorf("%s: expected NotFound", lang)
		}
		if got.Body != NotFoundMessage(lang) {
			t.Errorf("%s: body = %q", lang, got.Body)
		}
		if len(got.Cited) != 0 {
			t.Errorf("%s: expected no citations, got %d", lang, len(got.Cited))
		}
	}
}

func TestDispatcher_FallsBackToGeneral(t *testing.T) {
	tests := []struct {
		name string
		stub stubFormatter
	}{
		{"no extraction", stubFormatter{err: ErrNoExtraction}},
		{"other error", stubFormatter{err: errors.New("regexp exploded")}},
		{"empty body", stubFormatter{body: "  "}},
		{"panic", stubFormatter{panic: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDispatcher(DispatcherWithTemplate(models.IntentDefinitions, tt.stub))
			got := d.Format(Input{
				Question: "who wins?",
				Entries:  scored(englishArticle("103")),
				Intent:   intent(models.IntentDefinitions),
				Language: models.LanguageEnglish,
			})
			if !got.FellBack {
				t.Error("expected FellBack")
			}
			if !strings.Contains(got.Body, "## Legal analysis") {
				t.Errorf("expected general body, got %q", got.Body)
			}
			if len(got.Cited) != 1 || got.Cited[0].Number != "103" {
				t.Errorf("unexpected citations %+v", got.Cited)
			}
		})
	}
}

func TestDispatcher_UsesTemplate(t *testing.T) {
	d := NewDispatcher(DispatcherWithTemplate(models.IntentPenalties, stubFormatter{body: "custom"}))
	got := d.Format(Input{Entries: scored(englishArticle("144")), Intent: intent(models.IntentPenalties)})
	if got.Body != "custom" || got.FellBack || got.NotFound {
		t.Errorf("unexpected answer %+v", got)
	}
	if got.Intent != models.IntentPenalties {
		t.Errorf("intent = %s", got.Intent)
	}
}

func TestCite_BoundsCitationsAndExcerpts(t *testing.T) {
	long := models.LegalEntry{Number: "1", Kind: models.KindArticle, Language: models.LanguageEnglish, Content: strings.Repeat("a", 500)}
	var entries []models.ScoredEntry
	for i := 0; i < 8; i++ {
		entries = append(entries, models.ScoredEntry{Entry: long, Score: 1})
	}
	got := Cite(entries)
	if len(got) != maxCitations {
		t.Fatalf("expected %d citations, got %d", maxCitations, len(got))
	}
	if n := len([]rune(got[0].Excerpt)); n != excerptRunes+3 {
		t.Errorf("excerpt length = %d", n)
	}
	if got[0].Label != "Article 1" {
		t.Errorf("label = %q", got[0].Label)
	}
}

func TestGeneral_ListsRelatedProvisions(t *testing.T) {
	in := Input{
		Question: "what is the winner and total points?",
		Entries:  scored(englishArticle("103"), englishArticle("143")),
		Intent:   intent(models.IntentGeneral),
		Language: models.LanguageEnglish,
		Related:  stubRelated{entries: []models.LegalEntry{englishArticle("143"), englishArticle("144")}},
	}
	got := NewDispatcher().Format(in)
	if got.FellBack {
		t.Error("general answer must not be flagged as a fallback")
	}
	for _, want := range []string{"**Summary:** 2 relevant provisions", "(Reference: Article 103)", "### Related provisions", "Article 144: Timekeeping"} {
		if !strings.Contains(got.Body, want) {
			t.Errorf("body missing %q:\n%s", want, got.Body)
		}
	}
	if strings.Contains(got.Body, "- Article 143: Awarding") {
		t.Errorf("already ranked entry listed as related:\n%s", got.Body)
	}
}
