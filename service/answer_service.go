package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"itpf-legal-backend/analysis"
	"itpf-legal-backend/cache"
	"itpf-legal-backend/corpus"
	"itpf-legal-backend/formatter"
	"itpf-legal-backend/generator"
	"itpf-legal-backend/metrics"
	"itpf-legal-backend/models"
	"itpf-legal-backend/scoring"
)

var (
	ErrEmptyQuestion    = errors.New("question is empty")
	ErrEntryNotFound    = errors.New("legal entry not found")
	ErrQueryLogDisabled = errors.New("query log is not configured")
	ErrCorpusNotSet     = errors.New("corpus store not set")
)

const (
	defaultMaxTokens    = 1000
	defaultPromptBudget = 3000
	supportingEntries   = 5
	supportingRunes     = 200
)

// CorpusProvider serves the loaded rulebook
type CorpusProvider interface {
	Snapshot(ctx context.Context) (*corpus.Snapshot, error)
	Reload(ctx context.Context) error
}

// QueryLog persists answered questions
type QueryLog interface {
	Create(ctx context.Context, entry *models.QueryLog) error
	ListRecent(ctx context.Context, limit int) ([]models.QueryLog, error)
}

// AnswerService answers rulebook questions: it retrieves and ranks provisions,
// renders them with the intent template and optionally asks a generator to
// rewrite the answer.
type AnswerService struct {
	corpus       CorpusProvider
	generator    generator.Generator
	cache        cache.AnswerCache
	queryLog     QueryLog
	logger       logrus.FieldLogger
	counter      generator.TokenCounter
	promptBudget int
	maxTokens    int

	expander   *analysis.Expander
	classifier *analysis.Classifier
	scorer     *scoring.Scorer
	dispatcher *formatter.Dispatcher
}

// AnswerServiceOption is a functional option for AnswerService
type AnswerServiceOption func(*AnswerService)

// AnswerWithCorpus sets the corpus provider
func AnswerWithCorpus(p CorpusProvider) AnswerServiceOption {
	return func(s *AnswerService) {
		s.corpus = p
	}
}

// AnswerWithGenerator enables generated answers
func AnswerWithGenerator(g generator.Generator) AnswerServiceOption {
	return func(s *AnswerService) {
		s.generator = g
	}
}

// AnswerWithCache sets the answer cache
func AnswerWithCache(c cache.AnswerCache) AnswerServiceOption {
	return func(s *AnswerService) {
		s.cache = c
	}
}

// AnswerWithQueryLog sets the query log
func AnswerWithQueryLog(l QueryLog) AnswerServiceOption {
	return func(s *AnswerService) {
		s.queryLog = l
	}
}

// AnswerWithLogger sets the logger
func AnswerWithLogger(l logrus.FieldLogger) AnswerServiceOption {
	return func(s *AnswerService) {
		s.logger = l
	}
}

// AnswerWithPromptBudget sets the prompt token budget
func AnswerWithPromptBudget(tokens int) AnswerServiceOption {
	return func(s *AnswerService) {
		s.promptBudget = tokens
	}
}

// AnswerWithTokenCounter sets how prompt tokens are counted
func AnswerWithTokenCounter(c generator.TokenCounter) AnswerServiceOption {
	return func(s *AnswerService) {
		s.counter = c
	}
}

// AnswerWithMaxTokens sets the completion token limit
func AnswerWithMaxTokens(tokens int) AnswerServiceOption {
	return func(s *AnswerService) {
		s.maxTokens = tokens
	}
}

// NewAnswerService creates a new answer service
func NewAnswerService(opts ...AnswerServiceOption) *AnswerService {
	s := &AnswerService{
		logger:       logrus.StandardLogger(),
		counter:      generator.RuneCounter{},
		promptBudget: defaultPromptBudget,
		maxTokens:    defaultMaxTokens,
		expander:     analysis.NewExpander(),
		classifier:   analysis.NewClassifier(),
		scorer:       scoring.NewScorer(scoring.DefaultWeights()),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.dispatcher = formatter.NewDispatcher(formatter.DispatcherWithLogger(s.logger))
	return s
}

// AnswerRequest represents a question to answer
type AnswerRequest struct {
	Question string
	Language models.Language
	UseAI    bool
}

// AnswerResult is the answer to one question
type AnswerResult struct {
	ID         uuid.UUID               `json:"question_id"`
	Question   string                  `json:"question"`
	Language   models.Language         `json:"language"`
	Answer     models.FormattedAnswer  `json:"answer"`
	Analysis   models.QuestionAnalysis `json:"analysis"`
	Supporting []models.CitedEntry     `json:"supporting_articles"`
	Source     models.AnswerSource     `json:"source"`
	Provider   string                  `json:"provider,omitempty"`
	Mode       generator.Mode          `json:"generation_mode,omitempty"`
	// GeneratorFailed is set when generation was requested but the local
	// answer was returned instead.
	GeneratorFailed bool          `json:"generator_failed,omitempty"`
	Duration        time.Duration `json:"-"`
	DurationMs      int64         `json:"duration_ms"`
}

// retrieval is the analysed and ranked form of a question
type retrieval struct {
	snapshot *corpus.Snapshot
	analysis models.QuestionAnalysis
	intent   models.IntentResult
	ranked   []models.ScoredEntry
}

// Answer answers a question. Only corpus failures and empty questions are
// returned as errors; generator and cache problems fall back to the local answer.
func (s *AnswerService) Answer(ctx context.Context, req AnswerRequest) (*AnswerResult, error) {
	start := time.Now()
	question := strings.TrimSpace(req.Question)
	if question == "" {
		return nil, ErrEmptyQuestion
	}
	lang := req.Language
	if lang == "" {
		lang = models.LanguageArabic
	}

	id := cache.QuestionID(question, lang, req.UseAI)
	log := s.logger.WithFields(logrus.Fields{
		"question_id": id,
		"language":    lang,
	})

	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	key := cache.Key(id, snap.Version)

	if cached := s.cached(ctx, key, log); cached != nil {
		result := &AnswerResult{
			ID:         id,
			Question:   question,
			Language:   lang,
			Answer:     cached.Answer,
			Analysis:   cached.Analysis,
			Supporting: cached.Supporting,
			Source:     models.SourceCache,
			Provider:   cached.Provider,
		}
		s.finish(ctx, result, start, log)
		return result, nil
	}

	r := s.retrieve(snap, question, lang, 0)

	formatStart := time.Now()
	answer := s.dispatcher.Format(formatter.Input{
		Question: question,
		Entries:  r.ranked,
		Intent:   r.intent,
		Language: lang,
		Related:  r.snapshot.Index,
	})
	metrics.ObserveStage(metrics.StageFormat, formatStart)

	result := &AnswerResult{
		ID:         id,
		Question:   question,
		Language:   lang,
		Answer:     answer,
		Analysis:   r.analysis,
		Supporting: supporting(r.ranked),
		Source:     models.SourceLocal,
	}

	if req.UseAI && s.generator != nil && !answer.NotFound {
		s.generate(ctx, result, r.ranked, log)
	}

	if s.cache != nil && !result.GeneratorFailed {
		entry := &cache.Entry{
			Answer:     result.Answer,
			Analysis:   result.Analysis,
			Supporting: result.Supporting,
			Source:     result.Source,
			Provider:   result.Provider,
			CachedAt:   time.Now(),
		}
		if err := s.cache.Set(ctx, key, entry); err != nil {
			log.WithError(err).Warn("failed to cache answer")
		}
	}

	s.finish(ctx, result, start, log)
	return result, nil
}

func (s *AnswerService) snapshot(ctx context.Context) (*corpus.Snapshot, error) {
	if s.corpus == nil {
		return nil, ErrCorpusNotSet
	}
	return s.corpus.Snapshot(ctx)
}

// retrieve runs expansion, classification, scoring and ranking. A positive
// limit replaces the intent based truncation.
func (s *AnswerService) retrieve(snap *corpus.Snapshot, question string, lang models.Language, limit int) *retrieval {
	stageStart := time.Now()
	pre := s.classifier.Classify(question, nil)
	exp := s.expander.Enhance(s.expander.Expand(question), pre.Context)
	metrics.ObserveStage(metrics.StageExpand, stageStart)

	stageStart = time.Now()
	query := scoring.NewQuery(question, exp, pre)
	scored := s.scorer.ScoreAll(snap.Corpus.Entries(lang), query)
	ranked := scoring.Rank(scored, scoring.ExpertLimit)
	metrics.ObserveStage(metrics.StageScore, stageStart)

	stageStart = time.Now()
	intent := s.classifier.Classify(question, ranked)
	metrics.ObserveStage(metrics.StageClassify, stageStart)

	if limit > 0 {
		ranked = scoring.Rank(scored, limit)
	} else {
		ranked = scoring.Rank(ranked, scoring.LimitFor(intent.Primary))
	}

	return &retrieval{
		snapshot: snap,
		intent:   intent,
		ranked:   ranked,
		analysis: models.QuestionAnalysis{
			RawText:        question,
			ExpandedTerms:  query.Terms,
			Concepts:       exp.Concepts,
			Intent:         intent,
			TargetAppendix: intent.TargetAppendix,
			NumericTokens:  query.Numeric,
		},
	}
}

// generate replaces the local answer body with a generated one when the
// generator succeeds
func (s *AnswerService) generate(ctx context.Context, result *AnswerResult, ranked []models.ScoredEntry, log logrus.FieldLogger) {
	start := time.Now()
	prompt := generator.BuildPrompt(result.Question, ranked, result.Language, s.counter, s.promptBudget)
	text, err := s.generator.Complete(ctx, prompt.System, prompt.User, prompt.Mode.TokenCeiling(s.maxTokens))
	metrics.ObserveStage(metrics.StageGenerate, start)

	provider := s.generator.Name()
	if err != nil {
		reason := generator.Reason(err)
		metrics.GeneratorFailures.WithLabelValues(provider, reason).Inc()
		log.WithError(err).WithFields(logrus.Fields{
			"provider": provider,
			"reason":   reason,
		}).Warn("generator failed, using local answer")
		result.GeneratorFailed = true
		return
	}

	result.Answer.Body = generator.EnsureReferences(text, prompt.Quoted, result.Language)
	result.Source = models.SourceGenerator
	result.Provider = provider
	result.Mode = prompt.Mode
}

func (s *AnswerService) cached(ctx context.Context, key string, log logrus.FieldLogger) *cache.Entry {
	if s.cache == nil {
		return nil
	}
	entry, err := s.cache.Get(ctx, key)
	switch {
	case err == nil:
		metrics.CacheRequests.WithLabelValues("hit").Inc()
		return entry
	case errors.Is(err, cache.ErrMiss):
		metrics.CacheRequests.WithLabelValues("miss").Inc()
	default:
		metrics.CacheRequests.WithLabelValues("error").Inc()
		log.WithError(err).Warn("answer cache lookup failed")
	}
	return nil
}

// finish records metrics, the query log entry and the request log line
func (s *AnswerService) finish(ctx context.Context, result *AnswerResult, start time.Time, log logrus.FieldLogger) {
	result.Duration = time.Since(start)
	result.DurationMs = result.Duration.Milliseconds()

	metrics.QuestionsTotal.WithLabelValues(string(result.Answer.Intent), string(result.Source)).Inc()
	if result.Answer.NotFound {
		metrics.NotFoundTotal.WithLabelValues(string(result.Language)).Inc()
	}

	if s.queryLog != nil {
		entry := &models.QueryLog{
			ID:         uuid.New(),
			Question:   result.Question,
			Language:   result.Language,
			Intent:     result.Answer.Intent,
			Source:     result.Source,
			Provider:   result.Provider,
			Fallback:   result.GeneratorFailed || result.Answer.FellBack,
			NotFound:   result.Answer.NotFound,
			Cited:      citedLabels(result.Answer.Cited),
			DurationMs: result.DurationMs,
		}
		if err := s.queryLog.Create(ctx, entry); err != nil {
			log.WithError(err).Warn("failed to record query")
		}
	}

	log.WithFields(logrus.Fields{
		"intent":      result.Answer.Intent,
		"source":      result.Source,
		"duration_ms": result.DurationMs,
	}).Info("question answered")
}

// RecentQueries lists the latest logged questions
func (s *AnswerService) RecentQueries(ctx context.Context, limit int) ([]models.QueryLog, error) {
	if s.queryLog == nil {
		return nil, ErrQueryLogDisabled
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	logs, err := s.queryLog.ListRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list queries: %w", err)
	}
	return logs, nil
}

func supporting(ranked []models.ScoredEntry) []models.CitedEntry {
	if len(ranked) > supportingEntries {
		ranked = ranked[:supportingEntries]
	}
	out := make([]models.CitedEntry, 0, len(ranked))
	for _, se := range ranked {
		out = append(out, models.CitedEntry{
			Number:   se.Entry.Number,
			Title:    se.Entry.Title,
			Label:    se.Entry.Label(),
			Kind:     se.Entry.Kind,
			Language: se.Entry.Language,
			Excerpt:  formatter.Truncate(se.Entry.Content, supportingRunes),
			Score:    se.Score,
		})
	}
	return out
}

func citedLabels(cited []models.CitedEntry) models.CitedNumbers {
	out := make(models.CitedNumbers, 0, len(cited))
	for _, c := range cited {
		out = append(out, c.Label)
	}
	return out
}
