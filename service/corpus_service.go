package service

import (
	"context"
	"strings"
	"time"

	"itpf-legal-backend/analysis"
	"itpf-legal-backend/models"
)

const (
	defaultSearchResults = 10
	maxSearchResults     = 50
)

// SearchRequest represents a plain retrieval query
type SearchRequest struct {
	Query      string
	Language   models.Language
	MaxResults int
}

// SearchResult is a ranked list of entries without answer formatting
type SearchResult struct {
	Query    string               `json:"query"`
	Language models.Language      `json:"language"`
	Intent   models.IntentResult  `json:"intent"`
	Results  []models.ScoredEntry `json:"results"`
	Total    int                  `json:"total"`
}

// Search ranks the corpus against a query
func (s *AnswerService) Search(ctx context.Context, req SearchRequest) (*SearchResult, error) {
	query := strings.TrimSpace(req.Query)
	if query == "" {
		return nil, ErrEmptyQuestion
	}
	lang := req.Language
	if lang == "" {
		lang = models.LanguageArabic
	}
	limit := req.MaxResults
	if limit <= 0 {
		limit = defaultSearchResults
	}
	if limit > maxSearchResults {
		limit = maxSearchResults
	}

	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	r := s.retrieve(snap, query, lang, limit)
	return &SearchResult{
		Query:    query,
		Language: lang,
		Intent:   r.intent,
		Results:  r.ranked,
		Total:    len(r.ranked),
	}, nil
}

// Appendix returns an appendix by number. Both languages resolve to Arabic.
func (s *AnswerService) Appendix(ctx context.Context, lang models.Language, number string) (*models.LegalEntry, error) {
	if s.corpus == nil {
		return nil, ErrCorpusNotSet
	}
	snap, err := s.corpus.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	if lang != models.LanguageEnglish {
		lang = models.LanguageArabic
	}
	entry, ok := snap.Index.Lookup(lang, models.KindAppendix, analysis.NormalizeDigits(strings.TrimSpace(number)))
	if !ok {
		return nil, ErrEntryNotFound
	}
	return &entry, nil
}

// LanguageStats counts the entries of one language
type LanguageStats struct {
	Articles   int `json:"articles"`
	Appendices int `json:"appendices"`
}

// CorpusStats describes the loaded corpus
type CorpusStats struct {
	Arabic   LanguageStats `json:"arabic"`
	English  LanguageStats `json:"english"`
	Issues   []string      `json:"integrity_issues"`
	LoadedAt time.Time     `json:"loaded_at"`
}

// Stats reports entry counts and integrity issues of the current corpus
func (s *AnswerService) Stats(ctx context.Context) (*CorpusStats, error) {
	if s.corpus == nil {
		return nil, ErrCorpusNotSet
	}
	snap, err := s.corpus.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	stats := &CorpusStats{
		Arabic:   languageStats(snap.Corpus.Arabic),
		English:  languageStats(snap.Corpus.English),
		Issues:   make([]string, 0, len(snap.Issues)),
		LoadedAt: snap.LoadedAt,
	}
	for _, issue := range snap.Issues {
		stats.Issues = append(stats.Issues, issue.String())
	}
	return stats, nil
}

// Reload reloads the corpus from its source
func (s *AnswerService) Reload(ctx context.Context) error {
	if s.corpus == nil {
		return ErrCorpusNotSet
	}
	return s.corpus.Reload(ctx)
}

func languageStats(c models.LanguageCorpus) LanguageStats {
	return LanguageStats{Articles: len(c.Articles), Appendices: len(c.Appendices)}
}
