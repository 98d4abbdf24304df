package scoring

import (
	"reflect"
	"strconv"
	"testing"

	"itpf-legal-backend/analysis"
	"itpf-legal-backend/corpus/corpustest"
	"itpf-legal-backend/models"
)

func buildQuery(question string) Query {
	exp := analysis.NewExpander().Expand(question)
	intent := analysis.NewClassifier().Classify(question, nil)
	return NewQuery(question, exp, intent)
}

func plainQuery(terms ...string) Query {
	return Query{
		Question: "",
		Terms:    terms,
		Intent: models.IntentResult{
			Primary: models.IntentGeneral,
			Style:   models.StyleBalanced,
			Context: models.ContextAnalysis{Primary: models.ContextGeneral, Style: models.StyleBalanced},
		},
	}
}

func TestScorer_TitleOutweighsBody(t *testing.T) {
	s := NewScorer(DefaultWeights())
	q := plainQuery("penalty")

	inTitle, _ := s.Score(models.LegalEntry{Title: "Penalty", Content: "other text", Kind: models.KindArticle}, q)
	inBody, _ := s.Score(models.LegalEntry{Title: "Other", Content: "a penalty applies", Kind: models.KindArticle}, q)
	inAppendixBody, _ := s.Score(models.LegalEntry{Title: "Other", Content: "a penalty applies", Kind: models.KindAppendix}, q)

	if !(inTitle > inBody) {
		t.Errorf("title score %v should exceed body score %v", inTitle, inBody)
	}
	if !(inAppendixBody > inBody) {
		t.Errorf("appendix body score %v should exceed article body score %v", inAppendixBody, inBody)
	}
}

func TestScorer_EmptyContent(t *testing.T) {
	s := NewScorer(DefaultWeights())
	q := plainQuery("penalty")

	score, _ := s.Score(models.LegalEntry{Title: "Penalty", Kind: models.KindArticle}, q)
	if score != 0 {
		t.Errorf("empty content scored %v, want 0", score)
	}

	q.Intent.TargetAppendix = "9"
	score, _ = s.Score(models.LegalEntry{Number: "9", Title: "Penalty", Kind: models.KindAppendix}, q)
	w := DefaultWeights()
	if score != w.AnyAppendix+w.TargetAppendix {
		t.Errorf("empty appendix scored %v, want appendix boosts only", score)
	}
}

func TestScorer_ShortTermsIgnored(t *testing.T) {
	s := NewScorer(DefaultWeights())
	score, _ := s.Score(models.LegalEntry{Content: "at of in", Kind: models.KindArticle}, plainQuery("at", "of"))
	if score != 0 {
		t.Errorf("short terms scored %v", score)
	}
}

func TestScorer_NumericDominance(t *testing.T) {
	c := corpustest.Corpus()
	s := NewScorer(DefaultWeights())
	q := buildQuery("how is the program of 18 runs for the athlete in the competition organised?")

	scored := s.ScoreAll(c.English.Entries(), q)
	var withNumber float64
	for _, se := range scored {
		if se.Entry.Kind == models.KindAppendix && se.Entry.Number == "9" {
			withNumber = se.Score
		}
	}
	if withNumber == 0 {
		t.Fatalf("appendix 9 was not scored")
	}
	for _, se := range scored {
		if se.Entry.Number == "9" && se.Entry.Kind == models.KindAppendix {
			continue
		}
		if se.Score >= withNumber {
			t.Errorf("%s scored %v, not below the numeric match %v", se.Entry.Label(), se.Score, withNumber)
		}
	}
}

func TestScorer_AppendixTargeting(t *testing.T) {
	c := corpustest.Corpus()
	s := NewScorer(DefaultWeights())

	for _, tt := range []struct {
		question string
		lang     models.Language
	}{
		{"ملحق 9", models.LanguageArabic},
		{"ما هو الملحق تسعة", models.LanguageArabic},
		{"what does appendix nine say about the competition points and rules?", models.LanguageEnglish},
	} {
		ranked := Rank(s.ScoreAll(c.Entries(tt.lang), buildQuery(tt.question)), GeneralLimit)
		if len(ranked) == 0 {
			t.Fatalf("%q: no results", tt.question)
		}
		first := ranked[0].Entry
		if first.Kind != models.KindAppendix || first.Number != "9" {
			t.Errorf("%q: first result %s, want appendix 9", tt.question, first.Label())
		}
	}
}

func TestScorer_AppendixTargetingBeatsNumericOverlap(t *testing.T) {
	var entries []models.LegalEntry
	for n := 110; n < 120; n++ {
		entries = append(entries, models.LegalEntry{
			Language: models.LanguageEnglish,
			Kind:     models.KindArticle,
			Number:   strconv.Itoa(n),
			Title:    "Riders",
			Content:  "A team of 4 riders earns points for every peg.",
		})
	}
	entries = append(entries, models.LegalEntry{
		Language: models.LanguageEnglish,
		Kind:     models.KindAppendix,
		Number:   "9",
		Title:    "Program",
		Content:  "The program runs over three days.",
	})

	q := plainQuery("points", "riders")
	q.Numeric = []string{"4"}
	q.Intent.TargetAppendix = "9"

	ranked := Rank(NewScorer(DefaultWeights()).ScoreAll(entries, q), GeneralLimit)
	if len(ranked) == 0 {
		t.Fatalf("no results")
	}
	if first := ranked[0].Entry; !first.IsAppendix() || first.Number != "9" {
		t.Errorf("first result %s, want appendix 9", first.Label())
	}
	for _, se := range ranked[1:] {
		if se.Score <= 0 || len(se.MatchedTerms) == 0 {
			t.Errorf("%s lost its numeric score", se.Entry.Label())
		}
	}
}

func TestScorer_UnrelatedQuestion(t *testing.T) {
	c := corpustest.Corpus()
	s := NewScorer(DefaultWeights())
	q := buildQuery("xyz completely unrelated nonsense")

	for _, lang := range []models.Language{models.LanguageArabic, models.LanguageEnglish} {
		if got := s.ScoreAll(c.Entries(lang), q); len(got) != 0 {
			t.Errorf("%s: expected no results, got %d", lang, len(got))
		}
	}
}

func TestScorer_Deterministic(t *testing.T) {
	c := corpustest.Corpus()
	s := NewScorer(DefaultWeights())
	q := buildQuery("ما هي عقوبة سقوط السلاح بين خط البداية وخط النهاية؟")

	a := Rank(s.ScoreAll(c.Arabic.Entries(), q), ExpertLimit)
	b := Rank(s.ScoreAll(c.Arabic.Entries(), q), ExpertLimit)
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("ranking differs between runs")
	}
	if len(a) == 0 || a[0].Entry.Number != "132" {
		t.Errorf("expected article 132 first, got %+v", a)
	}
}

func TestRank_StableAndTruncated(t *testing.T) {
	in := []models.ScoredEntry{
		{Entry: models.LegalEntry{Number: "1"}, Score: 2, Position: 0},
		{Entry: models.LegalEntry{Number: "2"}, Score: 5, Position: 1},
		{Entry: models.LegalEntry{Number: "3"}, Score: 2, Position: 2},
		{Entry: models.LegalEntry{Number: "4"}, Score: 5, Position: 3},
		{Entry: models.LegalEntry{Number: "5"}, Score: 1, Position: 4},
	}
	got := Rank(in, 3)
	var numbers []string
	for _, se := range got {
		numbers = append(numbers, se.Entry.Number)
	}
	if !reflect.DeepEqual(numbers, []string{"2", "4", "1"}) {
		t.Errorf("Rank order = %v", numbers)
	}
	if in[0].Entry.Number != "1" {
		t.Errorf("Rank mutated its input")
	}
	if len(Rank(in, 0)) != len(in) {
		t.Errorf("k=0 should keep all entries")
	}
}

func TestLimitFor(t *testing.T) {
	if LimitFor(models.IntentGeneral) != GeneralLimit {
		t.Errorf("general limit")
	}
	if LimitFor(models.IntentPenalties) != ExpertLimit {
		t.Errorf("expert limit")
	}
}
