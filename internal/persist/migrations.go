package persist

import (
	"context"
	"fmt"
)

const schema = `
CREATE TABLE IF NOT EXISTS subjects (
	subject_id    TEXT PRIMARY KEY,
	name          TEXT NOT NULL,
	color         TEXT NOT NULL DEFAULT '',
	position      INTEGER NOT NULL,
	created_at    INTEGER NOT NULL,
	last_modified INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS notes (
	note_id     TEXT PRIMARY KEY,
	subject_id  TEXT NOT NULL REFERENCES subjects(subject_id) ON DELETE CASCADE,
	title       TEXT NOT NULL,
	template_id TEXT NOT NULL DEFAULT '',
	position    INTEGER NOT NULL,
	created_at  INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS pages (
	page_id     TEXT PRIMARY KEY,
	note_id     TEXT NOT NULL REFERENCES notes(note_id) ON DELETE CASCADE,
	page_number INTEGER NOT NULL,
	template_id TEXT NOT NULL DEFAULT ''
);

CREATE INDEX IF NOT EXISTS idx_notes_subject ON notes(subject_id, position);
CREATE INDEX IF NOT EXISTS idx_pages_note ON pages(note_id, page_number);

CREATE TABLE IF NOT EXISTS settings (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
);
`

func (s *Store) migrate(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}
