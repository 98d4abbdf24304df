package corpus

import (
	"fmt"
	"strconv"

	"itpf-legal-backend/models"
)

// Expected shape of a complete rulebook
const (
	FirstArticle  = 100
	LastArticle   = 154
	MinAppendices  = 2
)

// Issue is one integrity problem found in a loaded corpus
type Issue struct {
	Language models.Language  `json:"language"`
	Kind     models.EntryKind `json:"kind"`
	Number   string           `json:"number,omitempty"`
	Message  string           `json:"message"`
}

func (i Issue) String() string {
	if i.Number != "" {
		return fmt.Sprintf("%s %s %s: %s", i.Language, i.Kind, i.Number, i.Message)
	}
	return fmt.Sprintf("%s %s: %s", i.Language, i.Kind, i.Message)
}

// Validate checks each language for the full 100..154 article range, at
// least two appendices, duplicate numbers and empty content.
func Validate(c *models.Corpus) []Issue {
	var issues []Issue
	for _, lang := range []models.Language{models.LanguageArabic, models.LanguageEnglish} {
		issues = append(issues, validateLanguage(lang, c.Language(lang))...)
	}
	return issues
}

func validateLanguage(lang models.Language, lc models.LanguageCorpus) []Issue {
	var issues []Issue
	add := func(kind models.EntryKind, number, msg string) {
		issues = append(issues, Issue{Language: lang, Kind: kind, Number: number, Message: msg})
	}

	seen := map[string]int{}
	for _, e := range lc.Articles {
		seen[e.Number]++
		if e.Content == "" {
			add(models.KindArticle, e.Number, "empty content")
		}
		n, err := strconv.Atoi(e.Number)
		if err != nil || n < FirstArticle || n > LastArticle {
			add(models.KindArticle, e.Number, "number outside the rulebook range")
		}
	}
	for n := FirstArticle; n <= LastArticle; n++ {
		num := strconv.Itoa(n)
		switch seen[num] {
		case 0:
			add(models.KindArticle, num, "missing")
		case 1:
		default:
			add(models.KindArticle, num, fmt.Sprintf("duplicated %d times", seen[num]))
		}
	}

	if len(lc.Appendices) < MinAppendices {
		add(models.KindAppendix, "", fmt.Sprintf("expected at least %d appendices, found %d", MinAppendices, len(lc.Appendices)))
	}
	for _, e := range lc.Appendices {
		if e.Content == "" {
			add(models.KindAppendix, e.Number, "empty content")
		}
	}
	return issues
}
