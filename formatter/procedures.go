package formatter

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	maxProcedureSteps = 5
	minProcedureRunes = 15
	maxProcedureRunes = 200
)

var (
	procedureIndicators = []string{"يجب", "يتم", "تقديم", "كتابياً", "كتابيا", "لجنة", "must", "shall", "submitted", "in writing", "committee"}
	mandatoryIndicators = []string{"يجب", "must", "shall"}
	durationPattern     = regexp.MustCompile(`(?i)(\d+)\s*(دقيقة|دقائق|ساعة|ساعات|minutes?|hours?)|(نصف ساعة|ساعة واحدة|half an hour|one hour)`)
)

type proceduresFormatter struct{}

func (proceduresFormatter) Format(in Input) (string, error) {
	var steps []sentenceHit
	for _, h := range findSentences(in.Entries, 0, procedureIndicators...) {
		n := utf8.RuneCountInString(h.Sentence)
		if n < minProcedureRunes || n > maxProcedureRunes {
			continue
		}
		steps = append(steps, h)
		if len(steps) == maxProcedureSteps {
			break
		}
	}
	if len(steps) == 0 {
		return "", ErrNoExtraction
	}

	lang := in.Language
	var b strings.Builder
	b.WriteString(pick(lang, "## الإجراءات المطلوبة\n\n", "## Required procedure\n\n"))
	for i, s := range steps {
		fmt.Fprintf(&b, "%d. %s (%s)\n", i+1, s.Sentence, s.Entry.Label())
	}

	var rows []string
	for _, s := range steps {
		d := Duration(s.Sentence)
		if d == "" {
			continue
		}
		requirement := pick(lang, "إرشادي", "advisory")
		if containsAny(strings.ToLower(s.Sentence), mandatoryIndicators...) {
			requirement = pick(lang, "إلزامي", "mandatory")
		}
		rows = append(rows, fmt.Sprintf("| %s | %s | %s |", Truncate(s.Sentence, 60), d, requirement))
	}
	if len(rows) > 0 {
		b.WriteString(pick(lang, "\n### الجدول الزمني\n| المرحلة | المدة | المتطلب |\n|---|---|---|\n",
			"\n### Time limits\n| Stage | Duration | Requirement |\n|---|---|---|\n"))
		b.WriteString(strings.Join(rows, "\n"))
		b.WriteString("\n")
	}

	if size := committeeSize(in); size != "" {
		fmt.Fprintf(&b, pick(lang, "\n**تشكيل اللجنة:** %s\n", "\n**Committee:** %s\n"), size)
	}
	return b.String(), nil
}

// Duration returns the first time span mentioned in a sentence
func Duration(sentence string) string {
	m := durationPattern.FindStringSubmatch(sentence)
	if m == nil {
		return ""
	}
	if m[3] != "" {
		return m[3]
	}
	return m[1] + " " + m[2]
}

func committeeSize(in Input) string {
	for _, se := range in.Entries {
		c := lowerContent(se.Entry)
		if !containsAny(c, "لجنة", "committee") {
			continue
		}
		if strings.Contains(c, "ثلاثة") && strings.Contains(c, "خمسة") {
			return pick(in.Language, "من 3 إلى 5 أعضاء", "3 to 5 members")
		}
		if strings.Contains(c, "three") && strings.Contains(c, "five") {
			return pick(in.Language, "من 3 إلى 5 أعضاء", "3 to 5 members")
		}
	}
	return ""
}
