package models

// LanguageCorpus holds the articles and appendices of one language
type LanguageCorpus struct {
	Articles   []LegalEntry `json:"articles"`
	Appendices []LegalEntry `json:"appendices"`
}

// Entries returns articles followed by appendices, which is the corpus order
func (c LanguageCorpus) Entries() []LegalEntry {
	out := make([]LegalEntry, 0, len(c.Articles)+len(c.Appendices))
	out = append(out, c.Articles...)
	out = append(out, c.Appendices...)
	return out
}

// Empty reports whether the language has no entries at all
func (c LanguageCorpus) Empty() bool {
	return len(c.Articles) == 0 && len(c.Appendices) == 0
}

// Corpus is the full bilingual rulebook
type Corpus struct {
	Arabic  LanguageCorpus `json:"arabic"`
	English LanguageCorpus `json:"english"`
}

// Language returns the collection for a single language
func (c *Corpus) Language(lang Language) LanguageCorpus {
	if lang == LanguageEnglish {
		return c.English
	}
	return c.Arabic
}

// Entries returns the entries to search for the requested language.
// LanguageBoth yields Arabic entries followed by English entries.
func (c *Corpus) Entries(lang Language) []LegalEntry {
	switch lang {
	case LanguageEnglish:
		return c.English.Entries()
	case LanguageBoth:
		return append(c.Arabic.Entries(), c.English.Entries()...)
	default:
		return c.Arabic.Entries()
	}
}

// Empty reports whether both languages failed to load
func (c *Corpus) Empty() bool {
	return c == nil || (c.Arabic.Empty() && c.English.Empty())
}
