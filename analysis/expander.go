package analysis

import (
	"sort"
	"strings"
	"unicode/utf8"

	"itpf-legal-backend/models"

	mapset "github.com/deckarep/golang-set/v2"
)

// relatedTermsPerLanguage caps how many terms a related concept contributes
const relatedTermsPerLanguage = 2

// numberForms groups the spellings of the numbers appendices are referred to by
var numberForms = [][]string{
	{"9", "تسعة", "nine"},
	{"10", "عشرة", "ten"},
}

// Expansion is the expanded vocabulary of a question
type Expansion struct {
	Terms    mapset.Set[string]
	Concepts []string
}

// Sorted returns the terms in a deterministic order
func (e Expansion) Sorted() []string {
	if e.Terms == nil {
		return nil
	}
	terms := e.Terms.ToSlice()
	sort.Strings(terms)
	return terms
}

// Expander maps question words onto the ontology
type Expander struct {
	ontology *Ontology
}

// ExpanderOption configures an Expander
type ExpanderOption func(*Expander)

// ExpanderWithOntology replaces the built-in concept table
func ExpanderWithOntology(o *Ontology) ExpanderOption {
	return func(e *Expander) {
		e.ontology = o
	}
}

// NewExpander creates an expander over the default ontology
func NewExpander(opts ...ExpanderOption) *Expander {
	e := &Expander{ontology: DefaultOntology()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Expand returns the question tokens plus the vocabulary of every concept
// the question mentions, with one hop of related concepts.
func (e *Expander) Expand(question string) Expansion {
	q := Normalize(question)
	terms := mapset.NewSet[string]()
	exp := Expansion{Terms: terms}
	if q == "" {
		return exp
	}

	for _, tok := range Tokenize(q) {
		terms.Add(tok)
	}

	for _, c := range e.ontology.Concepts() {
		if !e.mentions(q, c) {
			continue
		}
		exp.Concepts = append(exp.Concepts, c.Name)
		addAll(terms, c.ArabicTerms, c.EnglishTerms, c.ArabicSynonyms, c.EnglishSynonyms, c.ContextKeywords)
	}

	for _, name := range exp.Concepts {
		c, _ := e.ontology.Lookup(name)
		for _, rel := range c.Related {
			related, ok := e.ontology.Lookup(rel)
			if !ok {
				continue
			}
			addAll(terms, head(related.ArabicTerms, relatedTermsPerLanguage), head(related.EnglishTerms, relatedTermsPerLanguage))
		}
	}

	expandNumbers(q, terms)
	return exp
}

// Enhance adds the vocabulary the coarse context prioritises
func (e *Expander) Enhance(exp Expansion, ctx models.ContextAnalysis) Expansion {
	terms := mapset.NewSet[string]()
	if exp.Terms != nil {
		terms = exp.Terms.Clone()
	}
	for _, name := range ctx.PriorityConcepts {
		c, ok := e.ontology.Lookup(name)
		if !ok {
			continue
		}
		addAll(terms, head(c.ArabicTerms, 3), head(c.EnglishTerms, 2), head(c.ContextKeywords, 3))
	}
	for _, name := range ctx.Relationships {
		for _, r := range relationships {
			if r.Name == name {
				addAll(terms, r.CrossReferences)
			}
		}
	}
	return Expansion{Terms: terms, Concepts: exp.Concepts}
}

// mentions reports whether the question names the concept. Primary terms match
// as substrings; Arabic synonyms match on any of their longer words.
func (e *Expander) mentions(q string, c Concept) bool {
	if containsAny(q, c.ArabicTerms...) || containsAny(q, c.EnglishTerms...) {
		return true
	}
	for _, syn := range c.ArabicSynonyms {
		for _, w := range strings.Fields(syn) {
			if utf8.RuneCountInString(w) > 3 && strings.Contains(q, w) {
				return true
			}
		}
	}
	return false
}

func expandNumbers(q string, terms mapset.Set[string]) {
	digits := mapset.NewSet(DigitRuns(q)...)
	for _, forms := range numberForms {
		hit := digits.Contains(forms[0])
		for _, word := range forms[1:] {
			if terms.Contains(word) {
				hit = true
			}
		}
		if hit {
			terms.Append(forms...)
		}
	}
}

func addAll(set mapset.Set[string], lists ...[]string) {
	for _, list := range lists {
		for _, t := range list {
			t = strings.ToLower(t)
			if utf8.RuneCountInString(t) > 2 {
				set.Add(t)
			}
		}
	}
}

func head(list []string, n int) []string {
	if len(list) < n {
		return list
	}
	return list[:n]
}
