package formatter

import (
	"fmt"
	"strings"
)

var (
	timingVocabulary = []string{"time", "minute", "hour", "deadline", "within", "seconds", "وقت", "دقيقة", "دقائق", "ساعة", "خلال", "مهلة", "ثانية"}
	appealVocabulary = []string{"appeal", "protest", "objection", "استئناف", "احتجاج", "اعتراض"}
)

type timingFormatter struct{}

// Format renders a staged timeline when the entries describe both time
// limits and an appeal path, otherwise a plain list of time limits.
func (timingFormatter) Format(in Input) (string, error) {
	timing := findSentences(in.Entries, 0, timingVocabulary...)
	if len(timing) == 0 {
		return "", ErrNoExtraction
	}
	var appeals []sentenceHit
	for _, h := range timing {
		if containsAny(strings.ToLower(h.Sentence), appealVocabulary...) {
			appeals = append(appeals, h)
		}
	}

	lang := in.Language
	var b strings.Builder
	if len(timing) >= 2 && len(appeals) >= 1 {
		b.WriteString(pick(lang, "## التسلسل الزمني للإجراءات\n\n", "## Timeline\n\n"))
		stage := 1
		for _, h := range timing {
			if isAppeal(h, appeals) {
				continue
			}
			writeStage(&b, stage, h)
			stage++
		}
		for _, h := range appeals {
			writeStage(&b, stage, h)
			stage++
		}
		return b.String(), nil
	}

	b.WriteString(pick(lang, "## المهل الزمنية\n\n", "## Time limits\n\n"))
	for _, h := range timing {
		fmt.Fprintf(&b, "- %s (%s)\n", Truncate(h.Sentence, maxResponsibilityRunes), h.Entry.Label())
	}
	return b.String(), nil
}

func writeStage(b *strings.Builder, n int, h sentenceHit) {
	label := h.Entry.Label()
	if d := Duration(h.Sentence); d != "" {
		fmt.Fprintf(b, "%d. **%s** %s (%s)\n", n, d, Truncate(h.Sentence, maxResponsibilityRunes), label)
		return
	}
	fmt.Fprintf(b, "%d. %s (%s)\n", n, Truncate(h.Sentence, maxResponsibilityRunes), label)
}

func isAppeal(h sentenceHit, appeals []sentenceHit) bool {
	for _, a := range appeals {
		if a.Sentence == h.Sentence {
			return true
		}
	}
	return false
}
