// Package scoring ranks corpus entries against an analysed question.
package scoring

import (
	"math"
	"sort"
	"strings"
	"unicode/utf8"

	"itpf-legal-backend/analysis"
	"itpf-legal-backend/models"

	mapset "github.com/deckarep/golang-set/v2"
)

// importantTerms trigger a fuzzy pass over the entry body when they appear in the question
var importantTerms = []string{
	"المشاركة", "التسجيل", "النقاط", "المعدات", "البطولة", "القواعد", "النظام",
	"team", "registration", "points", "equipment", "championship", "rules", "system",
}

// styleSignatures is the vocabulary an entry needs to earn the intent boost
var styleSignatures = map[models.ResponseStyle][]string{
	models.StyleComplianceFocused:     {"يجب", "مطلوب", "ضروري", "must", "required", "shall"},
	models.StyleSpecificationDetailed: {"مواصفات", "أبعاد", "قياس", "specifications", "measurements", " cm", " سم", "متر", "meter"},
	models.StyleStepByStep:            {"خطوات", "كيفية", "طريقة", "إجراءات", "steps", "procedure"},
	models.StyleOutcomeFocused:        {"نتيجة", "فوز", "نقاط", "result", "win", "points"},
}

// Query is everything the scorer needs from the analysed question
type Query struct {
	Question string
	Terms    []string
	Numeric  []string
	Intent   models.IntentResult
}

// NewQuery bundles an expansion and classification into a Query
func NewQuery(question string, exp analysis.Expansion, intent models.IntentResult) Query {
	return Query{
		Question: analysis.Normalize(question),
		Terms:    exp.Sorted(),
		Numeric:  analysis.NumericTokens(question),
		Intent:   intent,
	}
}

// Scorer computes additive relevance scores
type Scorer struct {
	weights Weights
}

// NewScorer creates a scorer with the given weights
func NewScorer(weights Weights) *Scorer {
	return &Scorer{weights: weights}
}

// Score returns the raw score of one entry and the terms that matched it
func (s *Scorer) Score(entry models.LegalEntry, q Query) (float64, []string) {
	score, matched, _ := s.score(entry, q)
	return score, matched
}

func (s *Scorer) score(entry models.LegalEntry, q Query) (float64, []string, int) {
	w := s.weights
	var score float64
	var numericHits int
	matched := mapset.NewThreadUnsafeSet[string]()

	content := strings.ToLower(analysis.NormalizeDigits(entry.Content))
	if strings.TrimSpace(content) != "" {
		title := strings.ToLower(entry.Title)
		contentWeight, titleWeight := w.ContentArticle, w.TitleArticle
		if entry.IsAppendix() {
			contentWeight, titleWeight = w.ContentAppendix, w.TitleAppendix
		}

		for _, term := range q.Terms {
			if utf8.RuneCountInString(term) <= 2 {
				continue
			}
			if strings.Contains(content, term) {
				score += contentWeight
				matched.Add(term)
			}
			if title != "" && strings.Contains(title, term) {
				score += titleWeight
				matched.Add(term)
			}
		}

		if len(q.Numeric) > 0 {
			runs := mapset.NewThreadUnsafeSet(analysis.DigitRuns(content)...)
			for _, n := range q.Numeric {
				if runs.Contains(n) {
					score += w.Numeric
					numericHits++
					matched.Add(n)
				}
			}
		}

		var tokens []string
		for _, term := range importantTerms {
			if !strings.Contains(q.Question, term) {
				continue
			}
			if tokens == nil {
				tokens = strings.Fields(content)
			}
			for _, m := range CloseMatches(term, tokens, w.FuzzyMatches, w.FuzzyCutoff) {
				score += w.Fuzzy
				matched.Add(m)
			}
		}

		if score > 0 && q.Intent.Context.Primary != models.ContextGeneral {
			if sig, ok := styleSignatures[q.Intent.Style]; ok && containsAny(content, sig) {
				score += w.IntentBoost
			}
		}
	}

	if target := q.Intent.TargetAppendix; target != "" && entry.IsAppendix() {
		score += w.AnyAppendix
		if entry.Number == target {
			score += w.TargetAppendix
		}
	}

	terms := matched.ToSlice()
	sort.Strings(terms)
	return score, terms, numericHits
}

// ScoreAll scores every entry, drops those at or below zero and applies two
// floors: an entry that shares a number with the question ranks above every
// entry that does not, and the named appendix ranks above everything.
func (s *Scorer) ScoreAll(entries []models.LegalEntry, q Query) []models.ScoredEntry {
	out := make([]models.ScoredEntry, 0, len(entries))
	hits := make([]int, 0, len(entries))
	for i, e := range entries {
		score, terms, numeric := s.score(e, q)
		if score <= 0 {
			continue
		}
		out = append(out, models.ScoredEntry{Entry: e, Score: score, MatchedTerms: terms, Position: i})
		hits = append(hits, numeric)
	}

	target := q.Intent.TargetAppendix

	// the target appendix is raised separately below and must not lift the numeric ceiling
	ceiling := math.Inf(-1)
	for i, se := range out {
		if hits[i] == 0 && !isTarget(se.Entry, target) && se.Score > ceiling {
			ceiling = se.Score
		}
	}
	if !math.IsInf(ceiling, -1) {
		for i := range out {
			if hits[i] > 0 && out[i].Score <= ceiling {
				out[i].Score = ceiling + float64(hits[i])
			}
		}
	}

	if target != "" {
		top := math.Inf(-1)
		for _, se := range out {
			if !isTarget(se.Entry, target) && se.Score > top {
				top = se.Score
			}
		}
		for i := range out {
			if isTarget(out[i].Entry, target) && out[i].Score <= top {
				out[i].Score = top + 1
			}
		}
	}
	return out
}

func isTarget(e models.LegalEntry, target string) bool {
	return e.IsAppendix() && e.Number == target
}

func containsAny(s string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(s, n) {
			return true
		}
	}
	return false
}
