package formatter

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"itpf-legal-backend/analysis"
	"itpf-legal-backend/models"
)

// Verdict is the outcome of checking one statement against the retrieved text
type Verdict int

const (
	VerdictUnclear Verdict = iota
	VerdictTrue
	VerdictFalse
)

// Symbol renders the verdict mark
func (v Verdict) Symbol() string {
	switch v {
	case VerdictTrue:
		return "✓"
	case VerdictFalse:
		return "✗"
	default:
		return "?"
	}
}

// Statement is one true/false claim in a question
type Statement struct {
	Number string
	Text   string
}

// Ruling is the checked outcome of a statement
type Ruling struct {
	Verdict   Verdict
	Answer    string
	Reference string
}

const minStatementRunes = 6

var (
	numberedLine = regexp.MustCompile(`^\s*(\d+)\s*[.)-]\s*(.+)$`)
	blankMarker  = regexp.MustCompile(`\(\s*\)`)
)

// ParseStatements splits a question into its numbered statements. An
// unnumbered question is a single statement.
func ParseStatements(question string) []Statement {
	var out []Statement
	for _, line := range strings.Split(question, "\n") {
		line = strings.TrimSpace(blankMarker.ReplaceAllString(line, ""))
		if utf8.RuneCountInString(line) < minStatementRunes {
			continue
		}
		if m := numberedLine.FindStringSubmatch(analysis.NormalizeDigits(line)); m != nil {
			out = append(out, Statement{Number: m[1], Text: strings.TrimSpace(m[2])})
		}
	}
	if len(out) > 0 {
		return out
	}
	text := strings.TrimSpace(blankMarker.ReplaceAllString(question, ""))
	return []Statement{{Number: "1", Text: text}}
}

// statementCheck applies when the statement mentions its subject, then
// decides against the retrieved entries. A confirmed verdict always carries
// the entry that backs it.
type statementCheck struct {
	applies func(s string) bool
	decide  func(entries []models.ScoredEntry, lang models.Language) Ruling
}

func ruling(lang models.Language, v Verdict, ar, en string, ref models.LegalEntry) Ruling {
	return Ruling{Verdict: v, Answer: pick(lang, ar, en), Reference: ref.Label()}
}

func unclear(lang models.Language, ar, en string) Ruling {
	return Ruling{Verdict: VerdictUnclear, Answer: pick(lang, ar, en)}
}

var statementChecks = []statementCheck{
	{
		applies: func(s string) bool {
			return containsAny(s, "groom", "السائس") && containsAny(s, "equipment", "condition", "معدات", "حالة")
		},
		decide: func(entries []models.ScoredEntry, lang models.Language) Ruling {
			if e, ok := entryWithAll(entries, []string{"groom", "السائس"}, []string{"responsib", "مسؤول"}, []string{"equipment", "tack", "معدات"}); ok {
				return ruling(lang, VerdictTrue,
					"صح - النص القانوني يحدد مسؤولية السائس عن المعدات",
					"True - the rules make the groom responsible for the equipment", e)
			}
			return unclear(lang,
				"غير محدد - لم يرد نص يحدد مسؤولية السائس عن المعدات",
				"Indeterminate - no provision on the groom's responsibility for equipment was found")
		},
	},
	{
		applies: func(s string) bool {
			return containsAny(s, "horse", "خيل", "خيول") && containsAny(s, "breed", "سلالة", "سلالات", "أنواع")
		},
		decide: func(entries []models.ScoredEntry, lang models.Language) Ruling {
			if e, ok := entryWithAll(entries, []string{"horse", "خيل", "خيول"}, []string{"breed", "سلال"}, []string{"not allowed", "prohibited", "restricted", "forbidden", "يمنع", "غير مسموح"}); ok {
				return ruling(lang, VerdictFalse,
					"خطأ - توجد قيود على سلالات الخيول",
					"False - the rules restrict horse breeds", e)
			}
			return unclear(lang,
				"غير محدد - لم يرد نص عن سلالات الخيول",
				"Indeterminate - no provision on horse breeds was found")
		},
	},
	{
		applies: func(s string) bool {
			return containsAny(s, "time", "وقت", "الزمن") && containsAny(s, halfPointVocabulary...)
		},
		decide: func(entries []models.ScoredEntry, lang models.Language) Ruling {
			if e, ok := entryWithAll(entries, []string{"time", "وقت", "الزمن"}, halfPointVocabulary, []string{"point", "نقطة"}); ok {
				return ruling(lang, VerdictTrue,
					"صح - نصف نقطة لكل ثانية أو جزء منها",
					"True - half a point per second or part of a second", e)
			}
			if e, ok := entryWithAll(entries, []string{"time", "وقت"}, []string{"penalty", "جزاء", "خصم"}); ok {
				return ruling(lang, VerdictFalse,
					"خطأ - الجزاء ليس نصف نقطة كما هو محدد في القوانين",
					"False - the rules set a different time penalty", e)
			}
			return unclear(lang,
				"غير محدد - لم يرد نص عن جزاءات تجاوز الوقت",
				"Indeterminate - no provision on time overage penalties was found")
		},
	},
	{
		applies: func(s string) bool {
			return containsAny(s, "reserve", "احتياط") && containsAny(s, "injur", "ill", "replace", "مصاب", "إصابة", "مرض", "استبدال")
		},
		decide: func(entries []models.ScoredEntry, lang models.Language) Ruling {
			if e, ok := entryWithAll(entries, []string{"substitut", "replace", "استبدال", "بديل"}, []string{"injur", " ill", "unable", "إصابة", "مصاب", "مرض"}); ok {
				return ruling(lang, VerdictTrue,
					"صح - يمكن للاعب الاحتياطي الاستبدال في حالة الإصابة أو المرض",
					"True - a reserve may replace an injured or ill rider", e)
			}
			return unclear(lang,
				"غير محدد - لم يرد نص عن استبدال اللاعب الاحتياطي",
				"Indeterminate - no provision on reserve substitution was found")
		},
	},
}

// CheckStatement rules on a single statement
func CheckStatement(text string, entries []models.ScoredEntry, lang models.Language) Ruling {
	s := analysis.Normalize(text)
	for _, c := range statementChecks {
		if c.applies(s) {
			return c.decide(entries, lang)
		}
	}
	return numericConsistency(s, entries, lang)
}

// numericConsistency confirms a statement whose numbers appear together in
// an entry sharing its words.
func numericConsistency(s string, entries []models.ScoredEntry, lang models.Language) Ruling {
	numbers := analysis.DigitRuns(s)
	if len(numbers) == 0 {
		return unclear(lang, "غير محدد - يتطلب تحليل إضافي للنصوص القانونية", "Indeterminate - the statement needs further analysis")
	}
	words := questionWords(s)
	for _, se := range entries {
		c := lowerContent(se.Entry)
		shared := 0
		for _, w := range words {
			if strings.Contains(c, w) {
				shared++
			}
		}
		if shared < 2 {
			continue
		}
		all := true
		for _, n := range numbers {
			if !strings.Contains(c, n) {
				all = false
				break
			}
		}
		if all {
			return ruling(lang, VerdictTrue, "صح - الأرقام مطابقة للنص القانوني", "True - the figures match the rules", se.Entry)
		}
		return ruling(lang, VerdictFalse, "خطأ - الأرقام لا تطابق النص القانوني", "False - the figures do not match the rules", se.Entry)
	}
	return unclear(lang, "غير محدد - لا توجد مادة تتناول هذه الأرقام", "Indeterminate - no provision covers these figures")
}

// entryWithAll finds the first entry whose content matches at least one
// needle from every group.
func entryWithAll(entries []models.ScoredEntry, groups ...[]string) (models.LegalEntry, bool) {
	for _, se := range entries {
		c := lowerContent(se.Entry)
		ok := true
		for _, g := range groups {
			if !containsAny(c, g...) {
				ok = false
				break
			}
		}
		if ok {
			return se.Entry, true
		}
	}
	return models.LegalEntry{}, false
}

type trueFalseFormatter struct{}

func (trueFalseFormatter) Format(in Input) (string, error) {
	lang := in.Language
	var b strings.Builder
	b.WriteString(pick(lang, "## الإجابات على الأسئلة\n\n", "## Answers\n\n"))
	for _, st := range ParseStatements(in.Question) {
		r := CheckStatement(st.Text, in.Entries, lang)
		fmt.Fprintf(&b, "**%s. %s (%s)**\n", st.Number, st.Text, r.Verdict.Symbol())
		fmt.Fprintf(&b, "   %s: %s\n", pick(lang, "الإجابة", "Answer"), r.Answer)
		ref := r.Reference
		if ref == "" {
			ref = pick(lang, "لا توجد مادة مطابقة", "no matching provision")
		}
		fmt.Fprintf(&b, "   %s: %s\n\n", pick(lang, "المرجع", "Reference"), ref)
	}
	return b.String(), nil
}
