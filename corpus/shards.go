package corpus

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"

	"itpf-legal-backend/models"
	"itpf-legal-backend/storage"
)

// ErrCorpusUnavailable is returned when neither language could be loaded
var ErrCorpusUnavailable = errors.New("legal corpus unavailable")

// ShardParts is the number of shard files per language
const ShardParts = 3

// Source produces a freshly loaded corpus
type Source interface {
	Load(ctx context.Context) (*models.Corpus, error)
}

// ShardNames lists the shard files of a language in load order
func ShardNames(lang models.Language) []string {
	names := make([]string, 0, ShardParts)
	for i := 1; i <= ShardParts; i++ {
		names = append(names, fmt.Sprintf("%s_data_part%d.json", lang, i))
	}
	return names
}

// FallbackName is the single-file rulebook used when no shard has articles
func FallbackName(lang models.Language) string {
	return fmt.Sprintf("%s_legal_rules_complete_authentic.json", lang)
}

// ShardSource reads the rulebook shards from storage
type ShardSource struct {
	store  storage.Storage
	prefix string
	logger logrus.FieldLogger
}

// NewShardSource creates a source reading shards under prefix
func NewShardSource(store storage.Storage, prefix string, logger logrus.FieldLogger) *ShardSource {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &ShardSource{store: store, prefix: strings.Trim(prefix, "/"), logger: logger}
}

// Load reads both languages. A language whose shards all fail is left empty;
// when both are empty the load fails with ErrCorpusUnavailable.
func (s *ShardSource) Load(ctx context.Context) (*models.Corpus, error) {
	c := &models.Corpus{
		Arabic:  s.loadLanguage(ctx, models.LanguageArabic),
		English: s.loadLanguage(ctx, models.LanguageEnglish),
	}
	if c.Empty() {
		return nil, ErrCorpusUnavailable
	}
	return c, nil
}

func (s *ShardSource) loadLanguage(ctx context.Context, lang models.Language) models.LanguageCorpus {
	var out models.LanguageCorpus
	for i, name := range ShardNames(lang) {
		data, err := s.read(ctx, name)
		if err != nil {
			s.logger.WithError(err).WithFields(logrus.Fields{"language": lang, "shard": name}).Warn("skipping corpus shard")
			continue
		}
		shard, err := ParseShard(data, lang)
		if err != nil {
			s.logger.WithError(err).WithFields(logrus.Fields{"language": lang, "shard": name}).Warn("skipping corpus shard")
			continue
		}
		out.Articles = append(out.Articles, shard.Articles...)
		// Appendices live in the first part only
		if i == 0 {
			out.Appendices = shard.Appendices
		}
	}

	if len(out.Articles) == 0 {
		name := FallbackName(lang)
		data, err := s.read(ctx, name)
		if err != nil {
			s.logger.WithError(err).WithField("language", lang).Warn("no corpus shards and no fallback file")
			return out
		}
		shard, err := ParseShard(data, lang)
		if err != nil {
			s.logger.WithError(err).WithField("language", lang).Warn("invalid fallback corpus file")
			return out
		}
		out = shard
		s.logger.WithField("language", lang).Info("loaded fallback corpus file")
	}

	s.logger.WithFields(logrus.Fields{
		"language":   lang,
		"articles":   len(out.Articles),
		"appendices": len(out.Appendices),
	}).Info("corpus language loaded")
	return out
}

func (s *ShardSource) read(ctx context.Context, name string) ([]byte, error) {
	if s.prefix != "" {
		name = path.Join(s.prefix, name)
	}
	rc, err := s.store.Download(ctx, name)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}
	return data, nil
}

// ParseShard decodes one shard file. Articles may sit at the top level or
// inside chapters; numbers may be JSON strings or integers.
func ParseShard(data []byte, lang models.Language) (models.LanguageCorpus, error) {
	if !gjson.ValidBytes(data) {
		return models.LanguageCorpus{}, errors.New("invalid JSON")
	}
	doc := gjson.ParseBytes(data)

	var out models.LanguageCorpus
	collect := func(items gjson.Result) {
		for _, item := range items.Array() {
			if e, ok := parseEntry(item, lang, models.KindArticle); ok {
				out.Articles = append(out.Articles, e)
			}
		}
	}
	collect(doc.Get("articles"))
	for _, chapter := range doc.Get("chapters").Array() {
		collect(chapter.Get("articles"))
	}
	for _, item := range doc.Get("appendices").Array() {
		if e, ok := parseEntry(item, lang, models.KindAppendix); ok {
			out.Appendices = append(out.Appendices, e)
		}
	}
	return out, nil
}

func parseEntry(item gjson.Result, lang models.Language, kind models.EntryKind) (models.LegalEntry, bool) {
	numberField := "article_number"
	if kind == models.KindAppendix {
		numberField = "appendix_number"
	}
	number := strings.TrimSpace(item.Get(numberField).String())
	if number == "" {
		number = strings.TrimSpace(item.Get("number").String())
	}
	if number == "" {
		return models.LegalEntry{}, false
	}
	return models.LegalEntry{
		Number:   number,
		Title:    strings.TrimSpace(item.Get("title").String()),
		Content:  strings.TrimSpace(item.Get("content").String()),
		Kind:     kind,
		Language: lang,
	}, true
}
