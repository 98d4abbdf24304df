package scoring

import (
	"sort"
	"unicode/utf8"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Similarity returns 2*M/T where M is the number of runes the two strings
// share in their diff and T is the total rune count of both.
func Similarity(a, b string) float64 {
	total := utf8.RuneCountInString(a) + utf8.RuneCountInString(b)
	if total == 0 {
		return 1
	}
	dmp := diffmatchpatch.New()
	matched := 0
	for _, d := range dmp.DiffMain(a, b, false) {
		if d.Type == diffmatchpatch.DiffEqual {
			matched += utf8.RuneCountInString(d.Text)
		}
	}
	return 2 * float64(matched) / float64(total)
}

// CloseMatches returns up to n distinct tokens whose similarity to term is at
// least cutoff, best first.
func CloseMatches(term string, tokens []string, n int, cutoff float64) []string {
	type candidate struct {
		token string
		ratio float64
	}
	seen := make(map[string]bool, len(tokens))
	var found []candidate
	for _, tok := range tokens {
		if seen[tok] {
			continue
		}
		seen[tok] = true
		if r := Similarity(term, tok); r >= cutoff {
			found = append(found, candidate{tok, r})
		}
	}
	sort.SliceStable(found, func(i, j int) bool {
		if found[i].ratio != found[j].ratio {
			return found[i].ratio > found[j].ratio
		}
		return found[i].token < found[j].token
	})
	if len(found) > n {
		found = found[:n]
	}
	out := make([]string, len(found))
	for i, c := range found {
		out[i] = c.token
	}
	return out
}
