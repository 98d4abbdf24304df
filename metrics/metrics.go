// Package metrics holds the Prometheus collectors of the answer pipeline
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"itpf-legal-backend/models"
)

// Pipeline stages timed by StageDuration
const (
	StageExpand   = "expand"
	StageClassify = "classify"
	StageScore    = "score"
	StageFormat   = "format"
	StageGenerate = "generate"
)

var (
	QuestionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "itpf_questions_total",
			Help: "Answered questions by intent and answer source",
		},
		[]string{"intent", "source"},
	)

	NotFoundTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "itpf_not_found_total",
			Help: "Questions for which no provision was found",
		},
		[]string{"language"},
	)

	StageDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "itpf_stage_duration_seconds",
			Help:    "Time spent in each answer pipeline stage",
			Buckets: []float64{.0005, .001, .005, .01, .05, .1, .5, 1, 5, 15, 30},
		},
		[]string{"stage"},
	)

	GeneratorFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "itpf_generator_failures_total",
			Help: "Generator calls that fell back to the local answer",
		},
		[]string{"provider", "reason"},
	)

	CacheRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "itpf_cache_requests_total",
			Help: "Answer cache lookups by result",
		},
		[]string{"result"},
	)

	CorpusEntries = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "itpf_corpus_entries",
			Help: "Loaded articles and appendices per language",
		},
		[]string{"language", "kind"},
	)
)

// ObserveStage records the time elapsed since start for a stage
func ObserveStage(stage string, start time.Time) {
	StageDuration.WithLabelValues(stage).Observe(time.Since(start).Seconds())
}

// ObserveCorpus publishes the entry counts of a freshly loaded corpus
func ObserveCorpus(c *models.Corpus) {
	if c == nil {
		return
	}
	for _, lang := range []models.Language{models.LanguageArabic, models.LanguageEnglish} {
		lc := c.Language(lang)
		CorpusEntries.WithLabelValues(string(lang), string(models.KindArticle)).Set(float64(len(lc.Articles)))
		CorpusEntries.WithLabelValues(string(lang), string(models.KindAppendix)).Set(float64(len(lc.Appendices)))
	}
}
