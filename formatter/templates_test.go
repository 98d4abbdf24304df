package formatter

import (
	"strings"
	"testing"

	"itpf-legal-backend/corpus/corpustest"
	"itpf-legal-backend/models"
)

func format(t *testing.T, i models.Intent, question string, entries ...models.LegalEntry) models.FormattedAnswer {
	t.Helper()
	return NewDispatcher().Format(Input{
		Question: question,
		Entries:  scored(entries...),
		Intent:   intent(i),
		Language: models.LanguageEnglish,
	})
}

func assertContains(t *testing.T, body string, wants ...string) {
	t.Helper()
	for _, w := range wants {
		if !strings.Contains(body, w) {
			t.Errorf("body missing %q:\n%s", w, body)
		}
	}
}

func TestTechnical_MultipleChoicePegDiameter(t *testing.T) {
	q := "a) 2 meters b) 2.5 meters c) 3 meters — what is the minimum peg diameter?"
	got := format(t, models.IntentTechnicalSpecs, q, englishArticle("140"))
	if got.FellBack {
		t.Fatalf("technical template fell back:\n%s", got.Body)
	}
	assertContains(t, got.Body, "**Correct answer: b) 2.5 meters**", "According to Article 140", "(difference 0)", "the unit differs")
	if strings.Contains(got.Body, "247.5") {
		t.Errorf("nominal match reports the converted difference:\n%s", got.Body)
	}
}

func TestTechnical_CountQuestion(t *testing.T) {
	a9 := corpustest.Find(corpustest.Corpus(), models.LanguageEnglish, models.KindAppendix, "9")
	got := format(t, models.IntentTechnicalSpecs, "how many runs are in appendix 9", englishArticle("140"), a9)
	if got.FellBack {
		t.Fatalf("technical template fell back:\n%s", got.Body)
	}
	assertContains(t, got.Body, "## Technical specifications", "runs: 18", "(Appendix 9)")
	if strings.Contains(got.Body, "30 cm") {
		t.Errorf("count answer lists physical measurements:\n%s", got.Body)
	}
}

func TestTechnical_ListsMeasurements(t *testing.T) {
	got := format(t, models.IntentTechnicalSpecs, "what is the peg length?", englishArticle("140"))
	assertContains(t, got.Body, "## Technical specifications", "length: 30 cm (Article 140)")
}

func TestPenalty_TimeOverage(t *testing.T) {
	got := format(t, models.IntentPenalties, "a competitor exceeded the time limit by 3 seconds", englishArticle("144"))
	if got.FellBack {
		t.Fatalf("penalty template fell back:\n%s", got.Body)
	}
	assertContains(t, got.Body, "3 seconds × ½ point = 1.5 penalty points", "**Article 144** (main rule)")
}

func TestPenalty_WeaponDropChoice(t *testing.T) {
	q := "The lance fell before the finish line. a) no penalty b) zero points for the run c) half a point"
	got := format(t, models.IntentPenalties, q, englishArticle("132"))
	assertContains(t, got.Body, "scores zero points", "**Correct choice: b) zero points for the run**")
}

func TestPenalty_WeaponDropAfterFinish(t *testing.T) {
	got := format(t, models.IntentPenalties, "the sword dropped after crossing the finish line, is there a penalty?", englishArticle("132"))
	assertContains(t, got.Body, "carries no penalty")
}

func TestComplexScoring_TeamTotal(t *testing.T) {
	q := "In the team event the first rider carried the peg more than 10 meters, the second rider struck the peg, the third rider missed."
	got := format(t, models.IntentComplexScoring, q, englishArticle("143"), englishArticle("144"))
	assertContains(t, got.Body, "Rider 1: carried the peg 10 meters or more = 6 points", "Rider 2: struck the peg without carrying it = 2 points", "Rider 3: missed", "**Total: 8 points**", "Article 143")
}

func TestComplexScoring_TimePenalty(t *testing.T) {
	q := "In a relay the first rider carried the peg 12 meters, the time was 11.2 seconds."
	got := format(t, models.IntentComplexScoring, q, englishArticle("143"))
	// 1.2 s over the relay standard time rounds up to 2 s
	assertContains(t, got.Body, "standard time (10 s, relay)", "1 point penalty", "**Total: 5 points**")
}

func TestParseRiders(t *testing.T) {
	got := ParseRiders("المتسابق الأول حمل الوتد 12 متر، المتسابق الثاني لم يشارك")
	if len(got) != 2 {
		t.Fatalf("expected 2 riders, got %+v", got)
	}
	if got[0].Ordinal != 1 || got[0].Points != pointsLongCarry {
		t.Errorf("rider 1 = %+v", got[0])
	}
	if got[1].Ordinal != 2 || got[1].Points != pointsMiss {
		t.Errorf("rider 2 = %+v", got[1])
	}
}

func TestTrueFalse_Statements(t *testing.T) {
	q := "1. The time limit penalty is half a point per second ( )\n2. The groom is responsible for the condition of equipment ( )"
	got := format(t, models.IntentTrueFalse, q, englishArticle("144"), englishArticle("102"))
	assertContains(t, got.Body,
		"## Answers",
		"**1. The time limit penalty is half a point per second (✓)**",
		"Answer: True - half a point per second",
		"Reference: Article 144",
		"**2. The groom is responsible for the condition of equipment (?)**",
		"Reference: no matching provision",
	)
	if strings.Contains(got.Body, "المرجع") || strings.Contains(got.Body, "الإجابة") {
		t.Errorf("english answer carries arabic labels:\n%s", got.Body)
	}
}

func TestTrueFalse_ArabicLabels(t *testing.T) {
	ar := corpustest.Find(corpustest.Corpus(), models.LanguageArabic, models.KindArticle, "144")
	got := NewDispatcher().Format(Input{
		Question: "يتم خصم نصف نقطة عن كل ثانية تزيد عن الوقت ( )",
		Entries:  scored(ar),
		Intent:   intent(models.IntentTrueFalse),
		Language: models.LanguageArabic,
	})
	assertContains(t, got.Body, "## الإجابات على الأسئلة", "(✓)", "المرجع: المادة 144")
}

func TestCheckStatement_NoEvidenceIsIndeterminate(t *testing.T) {
	entries := scored(englishArticle("144"), englishArticle("102"))
	for _, statement := range []string{
		"The groom is responsible for the condition of the equipment",
		"Horses of any breed are allowed",
		"A reserve may replace an injured rider",
		"The time penalty is half a point per second",
	} {
		r := CheckStatement(statement, nil, models.LanguageEnglish)
		if r.Verdict != VerdictUnclear || r.Reference != "" {
			t.Errorf("%q without entries: got %v %q, want indeterminate", statement, r.Verdict.Symbol(), r.Reference)
		}
		if !strings.HasPrefix(r.Answer, "Indeterminate") {
			t.Errorf("%q: answer %q", statement, r.Answer)
		}
	}

	for _, statement := range []string{
		"The groom is responsible for the condition of the equipment",
		"Horses of any breed are allowed",
		"A reserve may replace an injured rider",
	} {
		if r := CheckStatement(statement, entries, models.LanguageEnglish); r.Verdict != VerdictUnclear {
			t.Errorf("%q: got %v without a supporting provision", statement, r.Verdict.Symbol())
		}
	}
}

func TestCheckStatement_ConfirmedVerdictCitesEntry(t *testing.T) {
	r := CheckStatement("The time penalty is half a point per second", scored(englishArticle("144")), models.LanguageEnglish)
	if r.Verdict != VerdictTrue || r.Reference != "Article 144" {
		t.Errorf("got %v %q, want true citing Article 144", r.Verdict.Symbol(), r.Reference)
	}
}

func TestParseStatements_SingleFallback(t *testing.T) {
	got := ParseStatements("Horses of any breed are allowed ( )")
	if len(got) != 1 || got[0].Number != "1" || got[0].Text != "Horses of any breed are allowed" {
		t.Errorf("ParseStatements = %+v", got)
	}
}

func TestDefinitions_Winner(t *testing.T) {
	got := format(t, models.IntentDefinitions, "who is the winner?", englishArticle("103"))
	assertContains(t, got.Body, "## Definition", "The winner of a competition is the athlete with the highest total of points (Article 103)")
}

func TestProcedures_Appeal(t *testing.T) {
	got := format(t, models.IntentProcedures, "how is an appeal submitted?", englishArticle("120"))
	assertContains(t, got.Body, "## Required procedure", "| 30 minutes | mandatory |", "**Committee:** 3 to 5 members")
}

func TestTiming_StagedTimeline(t *testing.T) {
	got := format(t, models.IntentTimingAnalysis, "when can I appeal?", englishArticle("120"))
	assertContains(t, got.Body, "## Timeline", "1. **one hour**", "2. **30 minutes**")
}

func TestResponsibilities_Categories(t *testing.T) {
	got := format(t, models.IntentResponsibilities, "who is responsible?", englishArticle("102"))
	assertContains(t, got.Body, "### Safety", "### Medical insurance", "### Emergencies")
}
