package analysis

import (
	"strings"

	"itpf-legal-backend/models"
)

const (
	contextKeywordPoints = 2
	contextShapeBonus    = 3
)

// AnalyzeContext scores the question against the coarse contexts. The winner
// decides which concepts are prioritised and which response style applies.
func AnalyzeContext(question string) models.ContextAnalysis {
	q := Normalize(question)
	out := models.ContextAnalysis{
		Primary: models.ContextGeneral,
		Style:   models.StyleBalanced,
		Scores:  make(map[models.ContextType]int, len(contextHierarchies)),
	}
	if q == "" {
		return out
	}

	best := -1
	for i, h := range contextHierarchies {
		score := 0
		for _, kw := range h.Keywords {
			if strings.Contains(q, kw) {
				score += contextKeywordPoints
			}
		}
		if score > 0 && h.bonus(q) {
			score += contextShapeBonus
		}
		out.Scores[h.Type] = score
		if score > 0 && (best < 0 || score > out.Scores[contextHierarchies[best].Type]) {
			best = i
		}
	}
	if best < 0 {
		return out
	}

	winner := contextHierarchies[best]
	out.Primary = winner.Type
	out.Style = winner.Style
	out.PriorityConcepts = winner.PriorityConcepts
	for _, h := range contextHierarchies {
		if h.Type != winner.Type && out.Scores[h.Type] > 1 {
			out.Secondary = append(out.Secondary, h.Type)
		}
	}
	for _, r := range relationships {
		if overlaps(r.Concepts, winner.PriorityConcepts) {
			out.Relationships = append(out.Relationships, r.Name)
		}
	}
	return out
}

func overlaps(a, b []string) bool {
	for _, x := range a {
		for _, y := range b {
			if x == y {
				return true
			}
		}
	}
	return false
}
