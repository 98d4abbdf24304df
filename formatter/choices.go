package formatter

import (
	"regexp"
	"strings"
)

var choiceMarker = regexp.MustCompile(`(?:^|[\s(])([a-eA-E])\)`)

// Choice is one option of a multiple-choice question
type Choice struct {
	Letter string
	Text   string
}

// String renders the choice as it appeared in the question
func (c Choice) String() string {
	return c.Letter + ") " + c.Text
}

// ParseChoices extracts lettered options a) through e). The text of each
// option runs to the next marker; the last one stops at the question proper.
func ParseChoices(question string) []Choice {
	matches := choiceMarker.FindAllStringSubmatchIndex(question, -1)
	var out []Choice
	seen := map[string]bool{}
	for i, m := range matches {
		letter := strings.ToLower(question[m[2]:m[3]])
		end := len(question)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}
		text := question[m[1]:end]
		if i == len(matches)-1 {
			text = cutAtAny(text, "—", "–", " - ", "\n", "?", "؟")
		}
		text = strings.TrimSpace(strings.TrimRight(strings.TrimSpace(text), ",;"))
		if seen[letter] || text == "" {
			continue
		}
		seen[letter] = true
		out = append(out, Choice{Letter: letter, Text: text})
	}
	if len(out) < 2 {
		return nil
	}
	return out
}

// QuestionStem returns the question with the choices removed
func QuestionStem(question string) string {
	matches := choiceMarker.FindAllStringIndex(question, -1)
	if len(matches) == 0 {
		return question
	}
	first := matches[0][0]
	last := question[matches[len(matches)-1][1]:]
	for _, sep := range []string{"—", "–", " - ", "\n"} {
		if i := strings.Index(last, sep); i >= 0 {
			return strings.TrimSpace(question[:first] + " " + last[i+len(sep):])
		}
	}
	if stem := strings.TrimSpace(question[:first]); stem != "" {
		return stem
	}
	return question
}

func cutAtAny(s string, seps ...string) string {
	cut := len(s)
	for _, sep := range seps {
		if i := strings.Index(s, sep); i >= 0 && i < cut {
			cut = i
		}
	}
	return s[:cut]
}

// choiceContaining returns the first choice whose text contains any needle
func choiceContaining(choices []Choice, needles ...string) (Choice, bool) {
	for _, c := range choices {
		if containsAny(strings.ToLower(c.Text), needles...) {
			return c, true
		}
	}
	return Choice{}, false
}
