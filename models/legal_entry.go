package models

import "fmt"

// Language identifies which half of the bilingual corpus an entry belongs to
type Language string

const (
	LanguageArabic  Language = "arabic"
	LanguageEnglish Language = "english"
	LanguageBoth    Language = "both"
)

// ParseLanguage maps a request value to a Language, defaulting to Arabic
func ParseLanguage(s string) Language {
	switch Language(s) {
	case LanguageEnglish:
		return LanguageEnglish
	case LanguageBoth:
		return LanguageBoth
	default:
		return LanguageArabic
	}
}

// EntryKind distinguishes articles from appendices
type EntryKind string

const (
	KindArticle  EntryKind = "article"
	KindAppendix EntryKind = "appendix"
)

// LegalEntry is a single article or appendix of the rulebook.
// Entries are never modified after load.
type LegalEntry struct {
	Number   string    `json:"number"`
	Title    string    `json:"title"`
	Content  string    `json:"content"`
	Kind     EntryKind `json:"kind"`
	Language Language  `json:"language"`
}

// Key uniquely identifies the entry across the whole corpus
func (e LegalEntry) Key() string {
	return fmt.Sprintf("%s/%s/%s", e.Language, e.Kind, e.Number)
}

// Label returns the citation label used in answers, e.g. "المادة 144" or "Appendix 9"
func (e LegalEntry) Label() string {
	if e.Language == LanguageEnglish {
		if e.Kind == KindAppendix {
			return "Appendix " + e.Number
		}
		return "Article " + e.Number
	}
	if e.Kind == KindAppendix {
		return "الملحق " + e.Number
	}
	return "المادة " + e.Number
}

// IsAppendix reports whether the entry is an appendix
func (e LegalEntry) IsAppendix() bool {
	return e.Kind == KindAppendix
}

// ScoredEntry wraps an entry with query-scoped relevance data
type ScoredEntry struct {
	Entry        LegalEntry `json:"entry"`
	Score        float64    `json:"relevance_score"`
	MatchedTerms []string   `json:"matched_terms"`
	// Position is the entry's index in corpus order, used for stable ranking.
	Position int `json:"-"`
}

// ContentType mirrors the entry kind for response consumers
func (s ScoredEntry) ContentType() string {
	return string(s.Entry.Kind)
}
