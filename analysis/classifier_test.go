package analysis

import (
	"testing"

	"itpf-legal-backend/models"
)

func TestClassifier_Intents(t *testing.T) {
	c := NewClassifier()
	tests := []struct {
		name     string
		question string
		want     models.Intent
	}{
		{"penalty overage", "a competitor exceeded the time limit by 3 seconds", models.IntentPenalties},
		{"multiple choice spec", "a) 2 meters b) 2.5 meters c) 3 meters - what is the minimum peg diameter?", models.IntentTechnicalSpecs},
		{"arabic penalty", "ما هي عقوبة سقوط السلاح؟", models.IntentPenalties},
		{"procedure", "كيف يتم تقديم الاستئناف؟", models.IntentProcedures},
		{"definition", "what is the meaning of the winner of a competition?", models.IntentDefinitions},
		{"responsibility", "who is responsible for medical insurance and safety?", models.IntentResponsibilities},
		{"timing", "متى تبدأ مدة الاستئناف في البطولة؟", models.IntentTimingAnalysis},
		{"relay scoring", "In a relay the first rider carried the peg 12 meters then dropped it, the time was 6.8 seconds. How many points?", models.IntentComplexScoring},
		{"count", "how many runs are in appendix 9", models.IntentTechnicalSpecs},
		{"arabic count", "كم عدد الجولات في الملحق 9؟", models.IntentTechnicalSpecs},
		{"committee", "what does the appeal committee consist of", models.IntentTechnicalSpecs},
		{"points count", "how many points does the first rider get for a carried peg?", models.IntentComplexScoring},
		{"nothing", "xyz completely unrelated nonsense", models.IntentGeneral},
		{"empty", "", models.IntentGeneral},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Classify(tt.question, nil)
			if got.Primary != tt.want {
				t.Errorf("Classify(%q) = %s, want %s (scores %v)", tt.question, got.Primary, tt.want, got.Scores)
			}
		})
	}
}

func TestClassifier_TrueFalseOverrides(t *testing.T) {
	q := "1. The groom is responsible for equipment ( )\n2. The penalty is half a point per second ( )"
	got := NewClassifier().Classify(q, nil)
	if got.Primary != models.IntentTrueFalse {
		t.Fatalf("expected true_false, got %s", got.Primary)
	}
}

func TestIsTrueFalse_WholeWords(t *testing.T) {
	tests := []struct {
		question string
		want     bool
	}{
		{"ضع علامة صح أو خطأ: يجب ارتداء الخوذة", true},
		{"صواب أم خطأ: الفائز هو صاحب أعلى نقاط", true},
		{"true or false: the groom is responsible for equipment", true},
		{"ما هو الإجراء الصحيح عند الخطأ في التسجيل؟", false},
		{"هل شهادة الصحة مطلوبة في حال الخطأ؟", false},
		{"is it untrue that a false start is penalised", false},
	}
	for _, tt := range tests {
		if got := IsTrueFalse(tt.question); got != tt.want {
			t.Errorf("IsTrueFalse(%q) = %v, want %v", tt.question, got, tt.want)
		}
	}
}

func TestClassifier_EvidenceFromCandidates(t *testing.T) {
	c := NewClassifier()
	q := "tell me about article text"
	before := c.Classify(q, nil)
	if before.Primary != models.IntentGeneral {
		t.Fatalf("expected general before retrieval, got %s", before.Primary)
	}
	candidates := []models.ScoredEntry{{
		Entry: models.LegalEntry{Number: "103", Kind: models.KindArticle, Title: "Winner", Content: "The winner of a competition is the athlete with most points."},
	}}
	after := c.Classify(q, candidates)
	if after.Primary != models.IntentDefinitions {
		t.Errorf("expected definitions after retrieval, got %s (scores %v)", after.Primary, after.Scores)
	}
}

func TestClassifier_TieGoesToDeclarationOrder(t *testing.T) {
	// "jury" scores technical_specs, "medical" scores responsibilities; both +2
	got := NewClassifier().Classify("jury medical", nil)
	if got.Primary != models.IntentTechnicalSpecs {
		t.Errorf("expected earlier intent to win tie, got %s (scores %v)", got.Primary, got.Scores)
	}
}

func TestClassifier_TargetAppendixAndStyle(t *testing.T) {
	got := NewClassifier().Classify("what must the rider wear according to appendix nine?", nil)
	if got.TargetAppendix != "9" {
		t.Errorf("TargetAppendix = %q, want 9", got.TargetAppendix)
	}
	if got.Style == "" {
		t.Errorf("expected a response style")
	}
}

func TestAnalyzeContext(t *testing.T) {
	tests := []struct {
		question string
		want     models.ContextType
		style    models.ResponseStyle
	}{
		{"كيف يتم التسجيل؟", models.ContextProcedural, models.StyleStepByStep},
		{"the rider must wear a helmet, it is mandatory", models.ContextRegulatory, models.StyleComplianceFocused},
		{"technical specifications of the lance", models.ContextTechnical, models.StyleSpecificationDetailed},
		{"نقاط الفوز في البطولة", models.ContextCompetitive, models.StyleOutcomeFocused},
		{"xyz", models.ContextGeneral, models.StyleBalanced},
	}
	for _, tt := range tests {
		got := AnalyzeContext(tt.question)
		if got.Primary != tt.want || got.Style != tt.style {
			t.Errorf("AnalyzeContext(%q) = %s/%s, want %s/%s", tt.question, got.Primary, got.Style, tt.want, tt.style)
		}
	}
}

func TestAnalyzeContext_Relationships(t *testing.T) {
	got := AnalyzeContext("نقاط الفوز في البطولة")
	if len(got.Relationships) == 0 {
		t.Fatalf("expected contextual relationships for competitive context")
	}
	if got.Relationships[0] != "competition_scoring" {
		t.Errorf("first relationship = %s, want competition_scoring", got.Relationships[0])
	}
}
