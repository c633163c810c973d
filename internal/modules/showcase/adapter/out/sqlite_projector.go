package out

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/multierr"

	"folio/internal/modules/showcase/domain"

	_ "modernc.org/sqlite"
)

// SQLiteRecordProjector mirrors loaded records into a queryable index.
type SQLiteRecordProjector struct {
	db *sql.DB
}

func NewSQLiteRecordProjector(dbPath string) (*SQLiteRecordProjector, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	p := &SQLiteRecordProjector{db: db}
	if err := p.ensureSchema(context.Background()); err != nil {
		return nil, multierr.Append(err, db.Close())
	}
	return p, nil
}

func (p *SQLiteRecordProjector) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS records (
  page TEXT NOT NULL,
  position INTEGER NOT NULL,
  category TEXT NOT NULL,
  title TEXT NOT NULL,
  date TEXT NOT NULL,
  featured INTEGER NOT NULL,
  href TEXT,
  PRIMARY KEY (page, position)
);
CREATE TABLE IF NOT EXISTS record_tags (
  page TEXT NOT NULL,
  position INTEGER NOT NULL,
  tag TEXT NOT NULL,
  PRIMARY KEY (page, position, tag)
);
CREATE INDEX IF NOT EXISTS idx_records_page_category ON records(page, category);
CREATE INDEX IF NOT EXISTS idx_record_tags_page_tag ON record_tags(page, tag);
`
	if _, err := p.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create records tables: %w", err)
	}
	return nil
}

func (p *SQLiteRecordProjector) Reset(ctx context.Context, page string) error {
	if _, err := p.db.ExecContext(ctx, `DELETE FROM record_tags WHERE page = ?`, page); err != nil {
		return fmt.Errorf("reset record tags: %w", err)
	}
	if _, err := p.db.ExecContext(ctx, `DELETE FROM records WHERE page = ?`, page); err != nil {
		return fmt.Errorf("reset records: %w", err)
	}
	return nil
}

func (p *SQLiteRecordProjector) UpsertRecords(ctx context.Context, page string, records []domain.Record) (err error) {
	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin upsert: %w", err)
	}
	defer func() {
		if err != nil {
			err = multierr.Append(err, tx.Rollback())
		}
	}()

	const recordStmt = `
INSERT INTO records (page, position, category, title, date, featured, href)
VALUES (?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(page, position) DO UPDATE SET
  category=excluded.category,
  title=excluded.title,
  date=excluded.date,
  featured=excluded.featured,
  href=excluded.href;
`
	const tagStmt = `
INSERT INTO record_tags (page, position, tag)
VALUES (?, ?, ?)
ON CONFLICT(page, position, tag) DO NOTHING;
`
	for _, rec := range records {
		featured := 0
		if rec.Featured {
			featured = 1
		}
		if _, err = tx.ExecContext(ctx, recordStmt,
			page,
			rec.Position,
			string(rec.Category),
			rec.Title,
			rec.Date.Time().Format("2006-01-02"),
			featured,
			rec.PrimaryLink(),
		); err != nil {
			return fmt.Errorf("upsert record %d: %w", rec.Position, err)
		}
		for _, tag := range rec.Tags {
			if _, err = tx.ExecContext(ctx, tagStmt, page, rec.Position, tag); err != nil {
				return fmt.Errorf("upsert tag %q: %w", tag, err)
			}
		}
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit upsert: %w", err)
	}
	return nil
}

func (p *SQLiteRecordProjector) Stats(ctx context.Context, page string) (domain.Stats, error) {
	stats := domain.Stats{Page: page}
	if err := p.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM records WHERE page = ?`, page).Scan(&stats.Total); err != nil {
		return domain.Stats{}, fmt.Errorf("count records: %w", err)
	}
	var err error
	stats.Categories, err = p.counts(ctx, `
SELECT category, COUNT(*) AS n
FROM records
WHERE page = ?
GROUP BY category
ORDER BY n DESC, category ASC;
`, page)
	if err != nil {
		return domain.Stats{}, fmt.Errorf("count categories: %w", err)
	}
	stats.Tags, err = p.counts(ctx, `
SELECT tag, COUNT(*) AS n
FROM record_tags
WHERE page = ?
GROUP BY tag
ORDER BY n DESC, tag ASC;
`, page)
	if err != nil {
		return domain.Stats{}, fmt.Errorf("count tags: %w", err)
	}
	return stats, nil
}

func (p *SQLiteRecordProjector) counts(ctx context.Context, query, page string) ([]domain.Count, error) {
	rows, err := p.db.QueryContext(ctx, query, page)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []domain.Count
	for rows.Next() {
		var c domain.Count
		if err := rows.Scan(&c.Value, &c.N); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (p *SQLiteRecordProjector) Close() error {
	return p.db.Close()
}
