// Package store exports the assembled corpus to SQLite for consumers that
// prefer SQL over the JSON document.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strconv"
	"time"

	_ "modernc.org/sqlite"

	"github.com/mythindex/aggadah/internal/model"
)

const schema = `
CREATE TABLE IF NOT EXISTS myths (
	id TEXT PRIMARY KEY,
	number INTEGER,
	title TEXT NOT NULL,
	content TEXT NOT NULL,
	commentary TEXT,
	book TEXT,
	section TEXT,
	source_work TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS myth_themes (
	myth_id TEXT NOT NULL,
	theme TEXT NOT NULL,
	UNIQUE(myth_id, theme)
);

CREATE TABLE IF NOT EXISTS myth_refs (
	myth_id TEXT NOT NULL,
	ref TEXT NOT NULL,
	ord INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS myth_sources (
	myth_id TEXT NOT NULL,
	citation TEXT NOT NULL,
	ord INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS corpus_meta (
	key TEXT PRIMARY KEY,
	value TEXT NOT NULL
);
`

// Export writes the corpus to a fresh SQLite database at path. An existing
// file is replaced: the export is a point-in-time snapshot, not a store
// that accumulates runs.
func Export(ctx context.Context, path string, corpus *model.Corpus) error {
	_ = os.Remove(path)

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("open sqlite: %w", err)
	}
	defer db.Close()

	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		return fmt.Errorf("enable WAL: %w", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("init schema: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	if err := insertMeta(ctx, tx, corpus.Metadata); err != nil {
		return err
	}
	for _, m := range corpus.Myths {
		if err := insertMyth(ctx, tx, m); err != nil {
			return fmt.Errorf("insert %s: %w", m.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func insertMeta(ctx context.Context, tx *sql.Tx, meta model.Metadata) error {
	pairs := [][2]string{
		{"generated", meta.Generated.Format(time.RFC3339)},
		{"version", meta.Version},
		{"run_id", meta.RunID},
		{"total", strconv.Itoa(meta.Stats.Total)},
	}
	for _, p := range pairs {
		if _, err := tx.ExecContext(ctx,
			"INSERT OR REPLACE INTO corpus_meta(key, value) VALUES(?, ?)", p[0], p[1]); err != nil {
			return fmt.Errorf("insert meta %s: %w", p[0], err)
		}
	}
	return nil
}

func insertMyth(ctx context.Context, tx *sql.Tx, m model.MythRecord) error {
	// OR REPLACE: identifier collisions are unresolved upstream, so the
	// last record with a given slug wins, mirroring keyed-map consumers.
	if _, err := tx.ExecContext(ctx, `
INSERT OR REPLACE INTO myths(id, number, title, content, commentary, book, section, source_work)
VALUES(?, ?, ?, ?, ?, ?, ?, ?)`,
		m.ID, m.Number, m.Title, m.Content, m.Commentary, m.Book, m.Section, string(m.SourceWork)); err != nil {
		return err
	}

	for _, th := range m.Themes {
		if _, err := tx.ExecContext(ctx,
			"INSERT OR IGNORE INTO myth_themes(myth_id, theme) VALUES(?, ?)", m.ID, th); err != nil {
			return err
		}
	}
	for i, ref := range m.BiblicalReferences {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO myth_refs(myth_id, ref, ord) VALUES(?, ?, ?)", m.ID, ref, i); err != nil {
			return err
		}
	}
	for i, src := range m.Sources {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO myth_sources(myth_id, citation, ord) VALUES(?, ?, ?)", m.ID, src, i); err != nil {
			return err
		}
	}
	return nil
}
