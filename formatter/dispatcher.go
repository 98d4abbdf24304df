package formatter

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"itpf-legal-backend/models"
)

// ErrNoExtraction is returned by a template that found nothing it could use
// in the ranked entries. The dispatcher answers with the general template.
var ErrNoExtraction = errors.New("no extractable content for this template")

const (
	maxCitations    = 6
	excerptRunes    = 400
	notFoundArabic  = "لم يتم العثور على نص قانوني مطابق لسؤالك في قاعدة البيانات. يرجى إعادة صياغة السؤال أو استخدام كلمات مفتاحية مختلفة."
	notFoundEnglish = "No matching legal provision was found in the rulebook. Please rephrase your question or use different keywords."
)

// RelatedFinder returns provisions cross-referenced by an entry
type RelatedFinder interface {
	Related(e models.LegalEntry) []models.LegalEntry
}

// Input is what every answer template works from
type Input struct {
	Question string
	Entries  []models.ScoredEntry
	Intent   models.IntentResult
	Language models.Language
	Related  RelatedFinder
}

// Formatter renders an answer body for one intent
type Formatter interface {
	Format(in Input) (string, error)
}

// Dispatcher selects the template for a classified question
type Dispatcher struct {
	templates map[models.Intent]Formatter
	general   Formatter
	logger    logrus.FieldLogger
}

// DispatcherOption configures a Dispatcher
type DispatcherOption func(*Dispatcher)

// DispatcherWithLogger sets the logger used when a template fails
func DispatcherWithLogger(l logrus.FieldLogger) DispatcherOption {
	return func(d *Dispatcher) {
		d.logger = l
	}
}

// DispatcherWithTemplate replaces the template for an intent
func DispatcherWithTemplate(intent models.Intent, f Formatter) DispatcherOption {
	return func(d *Dispatcher) {
		d.templates[intent] = f
	}
}

// NewDispatcher creates a dispatcher with every built-in template
func NewDispatcher(opts ...DispatcherOption) *Dispatcher {
	d := &Dispatcher{
		templates: map[models.Intent]Formatter{
			models.IntentTrueFalse:        trueFalseFormatter{},
			models.IntentTechnicalSpecs:   technicalFormatter{},
			models.IntentTimingAnalysis:   timingFormatter{},
			models.IntentProcedures:       proceduresFormatter{},
			models.IntentPenalties:        penaltyFormatter{},
			models.IntentComplexScoring:   complexScoringFormatter{},
			models.IntentResponsibilities: responsibilitiesFormatter{},
			models.IntentDefinitions:      definitionsFormatter{},
		},
		general: generalFormatter{},
		logger:  logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// NotFoundMessage is the fixed reply when retrieval found nothing
func NotFoundMessage(lang models.Language) string {
	return pick(lang, notFoundArabic, notFoundEnglish)
}

// Format builds the answer for a classified question. With no entries it
// returns the not-found message and never invents an answer.
func (d *Dispatcher) Format(in Input) models.FormattedAnswer {
	if len(in.Entries) == 0 {
		return models.FormattedAnswer{
			Body:     NotFoundMessage(in.Language),
			Intent:   in.Intent.Primary,
			NotFound: true,
		}
	}

	answer := models.FormattedAnswer{
		Intent: in.Intent.Primary,
		Cited:  Cite(in.Entries),
	}
	if f, ok := d.templates[in.Intent.Primary]; ok {
		body, err := d.run(f, in)
		if err == nil && strings.TrimSpace(body) != "" {
			answer.Body = body
			return answer
		}
		if err != nil && !errors.Is(err, ErrNoExtraction) {
			d.logger.WithError(err).WithField("intent", in.Intent.Primary).Warn("answer template failed")
		}
		answer.FellBack = true
	}
	answer.Body, _ = d.general.Format(in)
	return answer
}

// run shields the dispatcher from a panicking template
func (d *Dispatcher) run(f Formatter, in Input) (body string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("template panicked: %v", r)
		}
	}()
	return f.Format(in)
}

// Cite converts the top ranked entries into citations with bounded excerpts
func Cite(entries []models.ScoredEntry) []models.CitedEntry {
	n := len(entries)
	if n > maxCitations {
		n = maxCitations
	}
	out := make([]models.CitedEntry, 0, n)
	for _, se := range entries[:n] {
		out = append(out, models.CitedEntry{
			Number:   se.Entry.Number,
			Title:    se.Entry.Title,
			Label:    se.Entry.Label(),
			Kind:     se.Entry.Kind,
			Language: se.Entry.Language,
			Excerpt:  Truncate(se.Entry.Content, excerptRunes),
			Score:    se.Score,
		})
	}
	return out
}
