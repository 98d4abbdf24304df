package corpus

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/sirupsen/logrus"

	"itpf-legal-backend/models"
)

// Snapshot is an immutable loaded corpus with its derived data
type Snapshot struct {
	Corpus *models.Corpus
	Index  *Index
	Issues []Issue
	// Version fingerprints the corpus content; equal content gives equal versions
	Version  string
	LoadedAt time.Time
}

// Store loads the corpus lazily and serves the current snapshot. Requests
// read a snapshot without locking; a reload swaps in a new one.
type Store struct {
	src      Source
	logger   logrus.FieldLogger
	observer func(*Snapshot)

	mu   sync.Mutex
	snap atomic.Pointer[Snapshot]
}

// StoreOption configures a Store
type StoreOption func(*Store)

// StoreWithLogger sets the logger
func StoreWithLogger(l logrus.FieldLogger) StoreOption {
	return func(s *Store) {
		s.logger = l
	}
}

// StoreWithObserver registers a callback run after every successful load
func StoreWithObserver(fn func(*Snapshot)) StoreOption {
	return func(s *Store) {
		s.observer = fn
	}
}

// NewStore creates a store over src. Nothing is loaded until first use.
func NewStore(src Source, opts ...StoreOption) *Store {
	s := &Store{src: src, logger: logrus.StandardLogger()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewStaticStore serves a corpus that is already in memory
func NewStaticStore(c *models.Corpus, opts ...StoreOption) *Store {
	return NewStore(staticSource{c}, opts...)
}

type staticSource struct {
	c *models.Corpus
}

func (s staticSource) Load(context.Context) (*models.Corpus, error) {
	if s.c.Empty() {
		return nil, ErrCorpusUnavailable
	}
	return s.c, nil
}

// Snapshot returns the loaded corpus, loading it on first use. A failed
// first load is retried by the next caller.
func (s *Store) Snapshot(ctx context.Context) (*Snapshot, error) {
	if snap := s.snap.Load(); snap != nil {
		return snap, nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if snap := s.snap.Load(); snap != nil {
		return snap, nil
	}
	snap, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	s.snap.Store(snap)
	return snap, nil
}

// Reload loads the corpus again and swaps it in. On failure the previous
// snapshot stays in service.
func (s *Store) Reload(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap, err := s.load(ctx)
	if err != nil {
		return err
	}
	s.snap.Store(snap)
	s.logger.Info("corpus reloaded")
	return nil
}

func (s *Store) load(ctx context.Context) (*Snapshot, error) {
	c, err := s.src.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load corpus: %w", err)
	}
	if c.Empty() {
		return nil, ErrCorpusUnavailable
	}

	snap := &Snapshot{
		Corpus:   c,
		Index:    BuildIndex(c),
		Issues:   Validate(c),
		Version:  Fingerprint(c),
		LoadedAt: time.Now(),
	}
	for _, issue := range snap.Issues {
		s.logger.WithFields(logrus.Fields{
			"language": issue.Language,
			"kind":     issue.Kind,
			"number":   issue.Number,
		}).Warn("corpus integrity: " + issue.Message)
	}
	if s.observer != nil {
		s.observer(snap)
	}
	return snap, nil
}

// Fingerprint hashes every entry of both languages in corpus order
func Fingerprint(c *models.Corpus) string {
	d := xxhash.New()
	for _, lang := range []models.Language{models.LanguageArabic, models.LanguageEnglish} {
		for _, e := range c.Entries(lang) {
			for _, field := range []string{string(e.Language), string(e.Kind), e.Number, e.Title, e.Content} {
				_, _ = d.WriteString(field)
				_, _ = d.WriteString("\x00")
			}
		}
	}
	return fmt.Sprintf("%016x", d.Sum64())
}
