package analysis

import (
	"reflect"
	"testing"
)

func TestTargetAppendix(t *testing.T) {
	tests := []struct {
		question string
		want     string
	}{
		{"ملحق 9", "9"},
		{"ما هو برنامج الملحق تسعة؟", "9"},
		{"الملحق رقم ١٠", "10"},
		{"Appendix ten schedule", "10"},
		{"appendix nine", "9"},
		{"appendix 12", "12"},
		{"appendix tent pegging", ""},
		{"no reference here", ""},
	}
	for _, tt := range tests {
		if got := TargetAppendix(tt.question); got != tt.want {
			t.Errorf("TargetAppendix(%q) = %q, want %q", tt.question, got, tt.want)
		}
	}
}

func TestNumericTokens_ExcludesAppendixReference(t *testing.T) {
	if got := NumericTokens("ملحق 9"); len(got) != 0 {
		t.Errorf("expected no numeric tokens, got %v", got)
	}
	got := NumericTokens("appendix 9: how many of the 18 runs, 18 in total, with 6 runs each")
	want := []string{"18", "6"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("NumericTokens = %v, want %v", got, want)
	}
}

func TestNumericTokens_ArabicIndicDigits(t *testing.T) {
	got := NumericTokens("تجاوز الوقت ب ٣ ثواني في المادة ١٤٤")
	want := []string{"3", "144"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("NumericTokens = %v, want %v", got, want)
	}
}

func TestChoiceLetters(t *testing.T) {
	got := ChoiceLetters("a) 2 meters b) 2.5 meters c) 3 meters")
	if !reflect.DeepEqual(got, []string{"a", "b", "c"}) {
		t.Errorf("ChoiceLetters = %v", got)
	}
	if IsMultipleChoice("what is a) only") {
		t.Errorf("single marker is not multiple choice")
	}
}
