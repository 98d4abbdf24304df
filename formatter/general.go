package formatter

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"itpf-legal-backend/models"
)

const (
	generalEntryLimit = 5
	maxRelatedEntries = 3
	minKeyRuleRunes   = 20
)

var obligationVocabulary = []string{"يجب", "تكون", "يتم", "المطلوب", "الضروري", "must", "shall"}

type generalFormatter struct{}

// Format never fails; it summarises whatever entries it is given.
func (generalFormatter) Format(in Input) (string, error) {
	lang := in.Language
	entries := in.Entries
	if len(entries) > generalEntryLimit {
		entries = entries[:generalEntryLimit]
	}

	var b strings.Builder
	b.WriteString(pick(lang, "## التحليل القانوني الذكي\n\n", "## Legal analysis\n\n"))
	fmt.Fprintf(&b, pick(lang,
		"**الخلاصة:** تم العثور على %d مادة قانونية ذات صلة بالاستفسار.\n\n",
		"**Summary:** %d relevant provisions were found for this question.\n\n"), len(in.Entries))

	if rule, e, ok := keyRule(entries); ok {
		fmt.Fprintf(&b, pick(lang, "**القاعدة الأساسية:** %s (المرجع: %s)\n\n", "**Key rule:** %s (Reference: %s)\n\n"),
			rule, e.Label())
	}

	b.WriteString(pick(lang, "### النصوص ذات الصلة\n", "### Relevant provisions\n"))
	for _, se := range entries {
		fmt.Fprintf(&b, "- **%s: %s** %s\n", se.Entry.Label(), se.Entry.Title, BestSentence(se.Entry.Content, in.Question))
	}

	if related := relatedEntries(in, entries); len(related) > 0 {
		b.WriteString(pick(lang, "\n### أحكام مرتبطة\n", "\n### Related provisions\n"))
		for _, e := range related {
			fmt.Fprintf(&b, "- %s: %s\n", e.Label(), e.Title)
		}
	}
	return b.String(), nil
}

// keyRule returns the first obligation sentence among the entries, or the
// best sentence of the top entry.
func keyRule(entries []models.ScoredEntry) (string, models.LegalEntry, bool) {
	for _, h := range findSentences(entries, 0, obligationVocabulary...) {
		if utf8.RuneCountInString(h.Sentence) > minKeyRuleRunes {
			return h.Sentence, h.Entry, true
		}
	}
	if len(entries) == 0 {
		return "", models.LegalEntry{}, false
	}
	top := entries[0].Entry
	return Truncate(top.Content, 200), top, true
}

// relatedEntries asks the finder for cross-references of the top entry that
// were not already ranked.
func relatedEntries(in Input, shown []models.ScoredEntry) []models.LegalEntry {
	if in.Related == nil || len(shown) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(shown))
	for _, se := range shown {
		seen[se.Entry.Key()] = true
	}
	var out []models.LegalEntry
	for _, e := range in.Related.Related(shown[0].Entry) {
		if seen[e.Key()] {
			continue
		}
		seen[e.Key()] = true
		out = append(out, e)
		if len(out) == maxRelatedEntries {
			break
		}
	}
	return out
}
