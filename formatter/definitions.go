package formatter

import (
	"fmt"
	"strings"
)

const maxDefinitionSentences = 4

var definitionIndicators = []string{
	"winner", "winning", "is defined", "means", "definition", "overall", "total", "determined",
	"فائز", "الفائز", "تعريف", "يقصد", "يعتبر", "مجموع", "تحديد",
}

type definitionsFormatter struct{}

func (definitionsFormatter) Format(in Input) (string, error) {
	hits := findSentences(in.Entries, maxDefinitionSentences, definitionIndicators...)
	if len(hits) == 0 {
		return "", ErrNoExtraction
	}
	lang := in.Language
	var b strings.Builder
	b.WriteString(pick(lang, "## التعريف القانوني\n\n", "## Definition\n\n"))
	for _, h := range hits {
		fmt.Fprintf(&b, "- %s (%s)\n", h.Sentence, h.Entry.Label())
	}
	return b.String(), nil
}
