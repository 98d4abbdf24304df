package analysis

import (
	"strings"

	"itpf-legal-backend/models"
)

const (
	keywordPoints  = 2
	leadBonus      = 3
	evidencePoints = 1
	anchorPoints   = 3
	// evidenceDepth is how many ranked entries the post-retrieval pass inspects
	evidenceDepth = 3
	// evidenceWindow is how many runes of each entry's content are inspected
	evidenceWindow = 300
)

// Classifier assigns an answer intent to a question. It holds no mutable
// state and can be shared between requests.
type Classifier struct {
	rules []intentRule
}

// NewClassifier creates a classifier over the built-in intent table
func NewClassifier() *Classifier {
	return &Classifier{rules: intentTable}
}

// Classify scores every intent against the question. When candidates are
// given, their leading content adds evidence for the intents it supports.
// All-zero scores classify as general.
func (c *Classifier) Classify(question string, candidates []models.ScoredEntry) models.IntentResult {
	q := Normalize(question)
	ctx := AnalyzeContext(question)
	result := models.IntentResult{
		Primary:        models.IntentGeneral,
		TargetAppendix: TargetAppendix(question),
		Style:          ctx.Style,
		Context:        ctx,
		Scores:         make(map[models.Intent]int, len(c.rules)+1),
	}
	if q == "" {
		return result
	}

	if IsTrueFalse(question) {
		result.Primary = models.IntentTrueFalse
		result.Scores[models.IntentTrueFalse] = 1
		return result
	}

	multipleChoice := IsMultipleChoice(question)
	for _, rule := range c.rules {
		score := 0
		for _, kw := range rule.keywords {
			if strings.Contains(q, kw) {
				score += keywordPoints
			}
		}
		for _, p := range rule.patterns {
			if p.MatchString(q) {
				score += keywordPoints
			}
		}
		if hasAnyPrefix(q, rule.lead...) {
			score += leadBonus
		}
		if rule.intent == models.IntentTechnicalSpecs && multipleChoice {
			score += leadBonus
		}
		if rule.extra != nil {
			score += rule.extra(q)
		}
		result.Scores[rule.intent] = score
	}

	c.addEvidence(result.Scores, candidates)

	best := models.IntentGeneral
	bestScore := 0
	for _, rule := range c.rules {
		if s := result.Scores[rule.intent]; s > bestScore {
			best, bestScore = rule.intent, s
		}
	}
	result.Primary = best
	for _, rule := range c.rules {
		if rule.intent != best && result.Scores[rule.intent] > 1 {
			result.Secondary = append(result.Secondary, rule.intent)
		}
	}
	return result
}

func (c *Classifier) addEvidence(scores map[models.Intent]int, candidates []models.ScoredEntry) {
	if len(candidates) > evidenceDepth {
		candidates = candidates[:evidenceDepth]
	}
	for _, cand := range candidates {
		text := strings.ToLower(cand.Entry.Title + " " + firstRunes(cand.Entry.Content, evidenceWindow))
		for _, rule := range c.rules {
			for _, phrase := range rule.evidence {
				if strings.Contains(text, phrase) {
					scores[rule.intent] += evidencePoints
				}
			}
		}
		if cand.Entry.Kind == models.KindArticle {
			if intent, ok := anchorArticles[cand.Entry.Number]; ok {
				scores[intent] += anchorPoints
			}
		}
	}
}

func firstRunes(s string, n int) string {
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}
