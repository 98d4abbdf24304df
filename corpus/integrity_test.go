package corpus

import (
	"strconv"
	"strings"
	"testing"

	"itpf-legal-backend/models"
)

func completeLanguage(lang models.Language) models.LanguageCorpus {
	var lc models.LanguageCorpus
	for n := FirstArticle; n <= LastArticle; n++ {
		lc.Articles = append(lc.Articles, models.LegalEntry{Number: strconv.Itoa(n), Content: "text", Kind: models.KindArticle, Language: lang})
	}
	lc.Appendices = []models.LegalEntry{
		{Number: "9", Content: "programme", Kind: models.KindAppendix, Language: lang},
		{Number: "10", Content: "programme", Kind: models.KindAppendix, Language: lang},
	}
	return lc
}

func TestValidate_CompleteCorpus(t *testing.T) {
	c := &models.Corpus{Arabic: completeLanguage(models.LanguageArabic), English: completeLanguage(models.LanguageEnglish)}
	if issues := Validate(c); len(issues) != 0 {
		t.Errorf("expected no issues, got %v", issues)
	}
}

func TestValidate_ReportsProblems(t *testing.T) {
	ar := completeLanguage(models.LanguageArabic)
	ar.Articles = append(ar.Articles[1:], ar.Articles[5])
	ar.Articles[0].Content = ""
	ar.Appendices = ar.Appendices[:1]
	c := &models.Corpus{Arabic: ar, English: completeLanguage(models.LanguageEnglish)}

	issues := Validate(c)
	var got []string
	for _, i := range issues {
		if i.Language != models.LanguageArabic {
			t.Errorf("unexpected English issue %s", i)
		}
		got = append(got, i.String())
	}
	joined := strings.Join(got, "\n")
	for _, want := range []string{
		"arabic article 101: empty content",
		"arabic article 100: missing",
		"arabic article 105: duplicated 2 times",
		"arabic appendix: expected at least 2 appendices, found 1",
	} {
		if !strings.Contains(joined, want) {
			t.Errorf("missing issue %q in:\n%s", want, joined)
		}
	}
}
