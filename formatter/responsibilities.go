package formatter

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	minResponsibilityRunes = 20
	maxResponsibilityRunes = 200
)

type responsibilityCategory struct {
	arabic, english string
	keywords        []string
}

var responsibilityCategories = []responsibilityCategory{
	{"السلامة", "Safety", []string{"safety", "safe", "سلامة", "أمان", "helmet", "خوذة"}},
	{"التأمين الطبي", "Medical insurance", []string{"medical", "insurance", "طبي", "تأمين"}},
	{"الطوارئ", "Emergencies", []string{"emergency", "ambulance", "طوارئ", "إسعاف"}},
	{"المشاركون", "Participants", []string{"participant", "athlete", "المشاركين", "المتسابقين", "المشارك"}},
}

type responsibilitiesFormatter struct{}

func (responsibilitiesFormatter) Format(in Input) (string, error) {
	lang := in.Language
	var b strings.Builder
	b.WriteString(pick(lang, "## المسؤوليات والواجبات\n\n", "## Responsibilities\n\n"))

	used := map[string]bool{}
	found := 0
	for _, cat := range responsibilityCategories {
		var lines []string
		for _, h := range findSentences(in.Entries, 0, cat.keywords...) {
			if used[h.Sentence] || utf8.RuneCountInString(h.Sentence) < minResponsibilityRunes {
				continue
			}
			used[h.Sentence] = true
			lines = append(lines, fmt.Sprintf("- %s (%s)", Truncate(h.Sentence, maxResponsibilityRunes), h.Entry.Label()))
		}
		if len(lines) == 0 {
			continue
		}
		found += len(lines)
		fmt.Fprintf(&b, "### %s\n%s\n\n", pick(lang, cat.arabic, cat.english), strings.Join(lines, "\n"))
	}
	if found == 0 {
		return "", ErrNoExtraction
	}
	return b.String(), nil
}
