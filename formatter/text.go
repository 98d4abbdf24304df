package formatter

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"itpf-legal-backend/analysis"
	"itpf-legal-backend/models"
)

// SplitSentences splits text on sentence punctuation and newlines. A period
// between two digits is part of a decimal number and does not split.
func SplitSentences(text string) []string {
	runes := []rune(text)
	var out []string
	start := 0
	flush := func(end int) {
		if s := strings.TrimSpace(string(runes[start:end])); s != "" {
			out = append(out, s)
		}
		start = end + 1
	}
	for i, r := range runes {
		switch r {
		case '.':
			if i > 0 && i+1 < len(runes) && unicode.IsDigit(runes[i-1]) && unicode.IsDigit(runes[i+1]) {
				continue
			}
			flush(i)
		case '!', '?', '؟', '\n', '؛':
			flush(i)
		}
	}
	if start < len(runes) {
		flush(len(runes))
	}
	return out
}

// Truncate shortens s to n runes, appending "..." when it cut anything
func Truncate(s string, n int) string {
	s = strings.TrimSpace(s)
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n]) + "..."
}

// KeySentence returns the first sentence of text that contains one of the keywords
func KeySentence(text string, keywords ...string) string {
	for _, s := range SplitSentences(text) {
		if containsAny(strings.ToLower(s), keywords...) {
			return s
		}
	}
	return ""
}

// BestSentence returns the sentence sharing the most question words longer
// than three runes, or the first 200 runes of the content when none match.
func BestSentence(content, question string) string {
	words := questionWords(question)
	best, bestHits := "", 0
	for _, s := range SplitSentences(content) {
		lower := strings.ToLower(s)
		hits := 0
		for _, w := range words {
			if strings.Contains(lower, w) {
				hits++
			}
		}
		if hits > bestHits {
			best, bestHits = s, hits
		}
	}
	if best == "" {
		return Truncate(content, 200)
	}
	return best
}

func questionWords(question string) []string {
	var out []string
	for _, w := range analysis.Tokenize(question) {
		if utf8.RuneCountInString(w) > 3 {
			out = append(out, w)
		}
	}
	return out
}

func containsAny(s string, needles ...string) bool {
	for _, n := range needles {
		if strings.Contains(s, n) {
			return true
		}
	}
	return false
}

func lowerContent(e models.LegalEntry) string {
	return strings.ToLower(analysis.NormalizeDigits(e.Content))
}

// sentenceHit is a sentence found in one entry
type sentenceHit struct {
	Entry    models.LegalEntry
	Sentence string
}

// findSentences collects sentences containing any keyword, at most limit
// (zero for no limit), skipping duplicates.
func findSentences(entries []models.ScoredEntry, limit int, keywords ...string) []sentenceHit {
	var out []sentenceHit
	seen := map[string]bool{}
	for _, se := range entries {
		for _, s := range SplitSentences(se.Entry.Content) {
			if seen[s] || !containsAny(strings.ToLower(s), keywords...) {
				continue
			}
			seen[s] = true
			out = append(out, sentenceHit{Entry: se.Entry, Sentence: s})
			if limit > 0 && len(out) == limit {
				return out
			}
		}
	}
	return out
}

// pick chooses the Arabic or English rendering of a heading
func pick(lang models.Language, ar, en string) string {
	if lang == models.LanguageEnglish {
		return en
	}
	return ar
}

func joinLabels(lang models.Language, entries []models.LegalEntry) string {
	labels := make([]string, 0, len(entries))
	for _, e := range entries {
		labels = append(labels, e.Label())
	}
	return strings.Join(labels, pick(lang, "، ", ", "))
}

// according renders "وفقاً للمادة N" or "According to Article N"
func according(e models.LegalEntry) string {
	if e.Language == models.LanguageEnglish {
		return "According to " + e.Label()
	}
	if e.IsAppendix() {
		return "وفقاً للملحق " + e.Number
	}
	return "وفقاً للمادة " + e.Number
}
