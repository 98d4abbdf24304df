package formatter

import (
	"reflect"
	"testing"
)

func TestSplitSentences_KeepsDecimals(t *testing.T) {
	got := SplitSentences("The peg is 2.5 cm. Next rule! Arabic؟ done")
	want := []string{"The peg is 2.5 cm", "Next rule", "Arabic", "done"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SplitSentences = %q, want %q", got, want)
	}
}

func TestExtractNumber(t *testing.T) {
	tests := []struct {
		in    string
		value float64
		unit  string
	}{
		{"2 meters and 20 cm", 2.2, "m"},
		{"2.5 meters", 2.5, "m"},
		{"٣٠ سم", 30, "cm"},
		{"6 runs", 6, ""},
	}
	for _, tt := range tests {
		v, unit, ok := ExtractNumber(tt.in)
		if !ok || v != tt.value || unit != tt.unit {
			t.Errorf("ExtractNumber(%q) = %v %q %v", tt.in, v, unit, ok)
		}
	}
	if _, _, ok := ExtractNumber("no number"); ok {
		t.Error("expected no number")
	}
}

func TestParseChoices(t *testing.T) {
	got := ParseChoices("a) 2 meters b) 2.5 meters c) 3 meters — what is the minimum peg diameter?")
	want := []Choice{{"a", "2 meters"}, {"b", "2.5 meters"}, {"c", "3 meters"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParseChoices = %+v", got)
	}
	if stem := QuestionStem("a) 2 meters b) 2.5 meters c) 3 meters — what is the minimum peg diameter?"); stem != "what is the minimum peg diameter?" {
		t.Errorf("QuestionStem = %q", stem)
	}
	if ParseChoices("only a) one") != nil {
		t.Error("a single option is not a multiple-choice question")
	}
}

func TestExtractMeasurements_KeepsKindsApart(t *testing.T) {
	got := ExtractMeasurements(englishArticle("140"))
	kinds := map[MeasurementKind]int{}
	for _, m := range got {
		kinds[m.Kind]++
	}
	if kinds[KindTrackDistance] != 1 || kinds[KindPhysical] != 2 || kinds[KindCount] != 0 {
		t.Errorf("unexpected measurements %+v", got)
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("المادة الأولى", 6); got != "المادة..." {
		t.Errorf("Truncate = %q", got)
	}
	if got := Truncate("short", 10); got != "short" {
		t.Errorf("Truncate = %q", got)
	}
}
