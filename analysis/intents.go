package analysis

import (
	"regexp"
	"strings"
	"unicode"

	"itpf-legal-backend/models"

	mapset "github.com/deckarep/golang-set/v2"
)

// intentRule is one row of the ordered intent table
type intentRule struct {
	intent   models.Intent
	keywords []string
	patterns []*regexp.Regexp
	// lead is matched against the start of the question for the shape bonus
	lead []string
	// extra adds points for keyword combinations
	extra func(q string) int
	// evidence lists phrases that, found in retrieved entries, support the intent
	evidence []string
}

var (
	choiceMarker      = regexp.MustCompile(`(?:^|[\s(])([a-eA-E])\)`)
	distancePattern   = regexp.MustCompile(`\d+\s*(?:meters?|متر)`)
	decimalSeconds    = regexp.MustCompile(`\d+\.\d+\s*(?:seconds?|ثانية|ثواني)`)
	trueFalseLine     = regexp.MustCompile(`(?m)\(\s*\)\s*$`)
	scenarioNarrative = []string{"carried", "dropped", "time", "seconds", "meters", "weapon", "peg", "حمل", "أسقط", "ثانية", "متر", "السلاح", "الوتد"}
)

var intentTable = []intentRule{
	{
		intent: models.IntentTechnicalSpecs,
		keywords: []string{
			"مواصفات", "قياسات", "أبعاد", "طول", "قطر", "سمك", "عرض", "الحد الأدنى", "الحد الأقصى",
			"specification", "measurement", "dimension", "length", "diameter", "thickness", "width", "size",
			"minimum", "maximum", " cm", " سم", "jury", "جهاز فني", "reserve", "substitute", "احتياطي",
			"video", "camera", "فيديو", "starting line", "course",
			"how many", "number of", "كم عدد", "عدد", "committee", "لجنة",
		},
		evidence: []string{"jury", "جهاز فني", "مواصفات", "specification", " cm", " سم"},
	},
	{
		intent:   models.IntentTimingAnalysis,
		keywords: []string{"متى", "مدة", "موعد", "جدول", "when", "how long", "deadline", "schedule", "duration"},
		lead:     []string{"متى", "when", "how long"},
		extra: func(q string) int {
			if containsAny(q, "متى تبدأ", "مدة") && containsAny(q, "بطولة", "استئناف") {
				return 2
			}
			if strings.Contains(q, "when") && containsAny(q, "start", "end", "begin") {
				return 2
			}
			return 0
		},
		evidence: []string{"timekeeping", "توقيت", "دقيقة", "minutes"},
	},
	{
		intent:   models.IntentProcedures,
		keywords: []string{"إجراءات", "خطوات", "كيفية", "طريقة", "تقديم", "procedure", "steps", "how to", "process", "submit"},
		// "how many" and "how long" are counts and durations, not procedures
		lead: []string{
			"كيف", "how to", "how do", "how does", "how is", "how are", "how can", "how should",
			"ما هي الإجراءات", "what are the steps",
		},
		evidence: []string{"appeal", "استئناف", "اعتراض", "كتابياً", "in writing"},
	},
	{
		intent: models.IntentPenalties,
		keywords: []string{
			"عقوبة", "جزاء", "استبعاد", "خصم", "مخالفة", "تجاوز",
			"penalty", "punishment", "disqualif", "what happens if", "drop", "fall", "fell",
			"no points", "zero points", "exceed", "time limit", "deduct", "violation",
		},
		lead:     []string{"what happens", "ماذا يحدث", "what is the penalty", "ما عقوبة", "ما هي عقوبة"},
		evidence: []string{"عقوبة", "penalty", "disqualif", "استبعاد"},
	},
	{
		intent:   models.IntentComplexScoring,
		keywords: []string{"determine", "calculate", "score", "relay", "تتابع", "first rider", "المتسابق الأول", "كم نقطة", "how many points"},
		patterns: []*regexp.Regexp{distancePattern, decimalSeconds},
		lead:     []string{"how many points", "كم نقطة", "calculate", "احسب"},
		extra: func(q string) int {
			hits := 0
			for _, w := range scenarioNarrative {
				if strings.Contains(q, w) {
					hits++
				}
			}
			if hits >= 3 {
				return 3
			}
			return 0
		},
		evidence: []string{"awarding of points", "منح النقاط"},
	},
	{
		intent: models.IntentResponsibilities,
		keywords: []string{
			"مسؤوليات", "مسؤولية", "واجبات", "أمان", "سلامة", "تأمين", "طبي", "طوارئ",
			"responsibilit", "duties", "safety", "insurance", "medical", "emergency",
		},
		lead:     []string{"من المسؤول", "who is responsible", "who"},
		evidence: []string{"مسؤول", "responsib", "duties", "جهاز فني"},
	},
	{
		intent: models.IntentDefinitions,
		keywords: []string{
			"تعريف", "ما هو", "ما هي", "معنى", "يقصد", "فائز", "بطل",
			"definition", "what is", "meaning", "winner", "overall", "total", "determined",
		},
		lead:     []string{"ما هو", "ما هي", "what is", "what are", "define", "عرف"},
		evidence: []string{"winner", "الفائز"},
	},
}

// anchorArticles are articles whose presence among the top results is a strong
// signal for one intent
var anchorArticles = map[string]models.Intent{
	"102": models.IntentResponsibilities,
	"103": models.IntentDefinitions,
}

// IsTrueFalse reports whether the question is a set of true/false statements
func IsTrueFalse(question string) bool {
	q := Normalize(question)
	words := mapset.NewThreadUnsafeSet(strings.FieldsFunc(q, func(r rune) bool { return !unicode.IsLetter(r) })...)
	switch {
	case words.Contains("true") && words.Contains("false"):
		return true
	case words.Contains("خطأ") && (words.Contains("صح") || words.Contains("صواب")):
		return true
	case trueFalseLine.MatchString(q):
		return true
	case containsAny(q, "✓", "✗", "✔", "✘"):
		return true
	}
	return false
}

// ChoiceLetters returns the distinct multiple-choice letters in order of appearance
func ChoiceLetters(question string) []string {
	var letters []string
	seen := map[string]bool{}
	for _, m := range choiceMarker.FindAllStringSubmatch(question, -1) {
		l := strings.ToLower(m[1])
		if !seen[l] {
			seen[l] = true
			letters = append(letters, l)
		}
	}
	return letters
}

// IsMultipleChoice reports whether the question carries at least two choice markers
func IsMultipleChoice(question string) bool {
	return len(ChoiceLetters(question)) >= 2
}
