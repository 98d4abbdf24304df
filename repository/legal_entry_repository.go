package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"itpf-legal-backend/models"
)

// LegalEntryRepository stores the rulebook in Postgres. It also serves as a
// corpus source, so the server can run from the database instead of shard files.
type LegalEntryRepository struct {
	db *pgxpool.Pool
}

// NewLegalEntryRepository creates a new legal entry repository
func NewLegalEntryRepository(db *pgxpool.Pool) *LegalEntryRepository {
	return &LegalEntryRepository{db: db}
}

// Load reads every entry back in corpus order
func (r *LegalEntryRepository) Load(ctx context.Context) (*models.Corpus, error) {
	query := `
		SELECT language, kind, number, title, content
		FROM legal_entries
		ORDER BY language, kind, position`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query legal entries: %w", err)
	}
	defer rows.Close()

	c := &models.Corpus{}
	for rows.Next() {
		var e models.LegalEntry
		if err := rows.Scan(&e.Language, &e.Kind, &e.Number, &e.Title, &e.Content); err != nil {
			return nil, fmt.Errorf("failed to scan legal entry: %w", err)
		}
		lc := &c.Arabic
		if e.Language == models.LanguageEnglish {
			lc = &c.English
		}
		if e.Kind == models.KindAppendix {
			lc.Appendices = append(lc.Appendices, e)
		} else {
			lc.Articles = append(lc.Articles, e)
		}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating legal entries: %w", err)
	}

	return c, nil
}

// ReplaceAll swaps the stored rulebook for c in a single transaction
func (r *LegalEntryRepository) ReplaceAll(ctx context.Context, c *models.Corpus) (int, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, "DELETE FROM legal_entries"); err != nil {
		return 0, fmt.Errorf("failed to clear legal entries: %w", err)
	}

	batch := &pgx.Batch{}
	queueInserts(batch, c)

	br := tx.SendBatch(ctx, batch)
	for i := 0; i < batch.Len(); i++ {
		if _, err := br.Exec(); err != nil {
			br.Close()
			return 0, fmt.Errorf("failed to insert legal entry %d: %w", i, err)
		}
	}
	if err := br.Close(); err != nil {
		return 0, fmt.Errorf("failed to finish batch: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("failed to commit legal entries: %w", err)
	}
	return batch.Len(), nil
}

const insertLegalEntry = `
	INSERT INTO legal_entries (language, kind, number, title, content, position)
	VALUES ($1, $2, $3, $4, $5, $6)`

// queueInserts adds one insert per entry; position keeps the corpus order
// within each language and kind.
func queueInserts(batch *pgx.Batch, c *models.Corpus) {
	for _, lc := range []models.LanguageCorpus{c.Arabic, c.English} {
		for _, group := range [][]models.LegalEntry{lc.Articles, lc.Appendices} {
			for pos, e := range group {
				batch.Queue(insertLegalEntry, string(e.Language), string(e.Kind), e.Number, e.Title, e.Content, pos)
			}
		}
	}
}
