package corpus

import (
	"regexp"
	"strings"

	"itpf-legal-backend/analysis"
	"itpf-legal-backend/models"
)

var citationPattern = regexp.MustCompile(`(?i)(article|appendix|المادة|مادة|الملحق|ملحق)\s*(?:رقم\s*|no\.?\s*)?\(?(\d+)\)?`)

// Index links every entry to the entries its text cites. It is built once
// per loaded corpus and never modified.
type Index struct {
	byKey map[string]models.LegalEntry
	links map[string][]models.LegalEntry
}

// BuildIndex resolves cross references within each language
func BuildIndex(c *models.Corpus) *Index {
	idx := &Index{
		byKey: map[string]models.LegalEntry{},
		links: map[string][]models.LegalEntry{},
	}
	all := c.Entries(models.LanguageBoth)
	for _, e := range all {
		idx.byKey[e.Key()] = e
	}
	for _, e := range all {
		seen := map[string]bool{e.Key(): true}
		for _, m := range citationPattern.FindAllStringSubmatch(analysis.NormalizeDigits(e.Content), -1) {
			kind := models.KindArticle
			switch strings.ToLower(m[1]) {
			case "appendix", "الملحق", "ملحق":
				kind = models.KindAppendix
			}
			target, ok := idx.byKey[models.LegalEntry{Number: m[2], Kind: kind, Language: e.Language}.Key()]
			if !ok || seen[target.Key()] {
				continue
			}
			seen[target.Key()] = true
			idx.links[e.Key()] = append(idx.links[e.Key()], target)
		}
	}
	return idx
}

// Related returns the entries cited by e in citation order
func (idx *Index) Related(e models.LegalEntry) []models.LegalEntry {
	if idx == nil {
		return nil
	}
	return idx.links[e.Key()]
}

// Lookup finds an entry by language, kind and number
func (idx *Index) Lookup(lang models.Language, kind models.EntryKind, number string) (models.LegalEntry, bool) {
	if idx == nil {
		return models.LegalEntry{}, false
	}
	e, ok := idx.byKey[models.LegalEntry{Number: number, Kind: kind, Language: lang}.Key()]
	return e, ok
}
