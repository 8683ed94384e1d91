package persist

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/inklet/inklet/internal/state"
)

// Store is the sqlite-backed snapshot store.
type Store struct {
	db *sql.DB
}

// Open opens or creates the database at path and applies the schema.
func Open(ctx context.Context, path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	s := &Store{db: db}
	if err := s.migrate(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// SaveContent replaces the persisted content snapshot with c in a single
// transaction.
func (s *Store) SaveContent(ctx context.Context, c state.ContentState) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin save: %w", err)
	}
	defer tx.Rollback()

	// Full snapshot replace: child rows go via foreign-key cascade.
	if _, err := tx.ExecContext(ctx, `DELETE FROM subjects`); err != nil {
		return fmt.Errorf("clear subjects: %w", err)
	}

	for si, sub := range c.Subjects {
		_, err := tx.ExecContext(ctx, `
INSERT INTO subjects(subject_id, name, color, position, created_at, last_modified)
VALUES (?, ?, ?, ?, ?, ?)`,
			sub.ID.String(), sub.Name, sub.Color, si, ts(sub.CreatedAt), ts(sub.LastModified))
		if err != nil {
			return fmt.Errorf("insert subject: %w", err)
		}
		for ni, note := range sub.Notes {
			_, err := tx.ExecContext(ctx, `
INSERT INTO notes(note_id, subject_id, title, template_id, position, created_at)
VALUES (?, ?, ?, ?, ?, ?)`,
				note.ID.String(), sub.ID.String(), note.Title, note.TemplateID, ni, ts(note.CreatedAt))
			if err != nil {
				return fmt.Errorf("insert note: %w", err)
			}
			for _, page := range note.Pages {
				_, err := tx.ExecContext(ctx, `
INSERT INTO pages(page_id, note_id, page_number, template_id)
VALUES (?, ?, ?, ?)`,
					page.ID.String(), note.ID.String(), page.PageNumber, page.TemplateID)
				if err != nil {
					return fmt.Errorf("insert page: %w", err)
				}
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit save: %w", err)
	}
	return nil
}

// LoadContent reconstructs the content tree from the persisted snapshot.
// An empty database yields an empty ContentState.
func (s *Store) LoadContent(ctx context.Context) (state.ContentState, error) {
	var c state.ContentState

	rows, err := s.db.QueryContext(ctx, `
SELECT subject_id, name, color, created_at, last_modified
FROM subjects ORDER BY position`)
	if err != nil {
		return c, fmt.Errorf("query subjects: %w", err)
	}
	defer rows.Close()

	index := make(map[uuid.UUID]int)
	for rows.Next() {
		var (
			id, name, color      string
			createdAt, lastModMs int64
		)
		if err := rows.Scan(&id, &name, &color, &createdAt, &lastModMs); err != nil {
			return c, fmt.Errorf("scan subject: %w", err)
		}
		sid, err := uuid.Parse(id)
		if err != nil {
			return c, fmt.Errorf("parse subject id %q: %w", id, err)
		}
		index[sid] = len(c.Subjects)
		c.Subjects = append(c.Subjects, state.Subject{
			ID:           sid,
			Name:         name,
			Color:        color,
			CreatedAt:    fromTS(createdAt),
			LastModified: fromTS(lastModMs),
		})
	}
	if err := rows.Err(); err != nil {
		return c, fmt.Errorf("iterate subjects: %w", err)
	}

	if err := s.loadNotes(ctx, &c, index); err != nil {
		return c, err
	}
	return c, nil
}

func (s *Store) loadNotes(ctx context.Context, c *state.ContentState, index map[uuid.UUID]int) error {
	rows, err := s.db.QueryContext(ctx, `
SELECT note_id, subject_id, title, template_id, created_at
FROM notes ORDER BY subject_id, position`)
	if err != nil {
		return fmt.Errorf("query notes: %w", err)
	}
	defer rows.Close()

	noteOwner := make(map[uuid.UUID]struct{ si, ni int })
	for rows.Next() {
		var (
			id, subjectID, title, templateID string
			createdAt                        int64
		)
		if err := rows.Scan(&id, &subjectID, &title, &templateID, &createdAt); err != nil {
			return fmt.Errorf("scan note: %w", err)
		}
		nid, err := uuid.Parse(id)
		if err != nil {
			return fmt.Errorf("parse note id %q: %w", id, err)
		}
		sid, err := uuid.Parse(subjectID)
		if err != nil {
			return fmt.Errorf("parse note subject id %q: %w", subjectID, err)
		}
		si, ok := index[sid]
		if !ok {
			continue
		}
		noteOwner[nid] = struct{ si, ni int }{si, len(c.Subjects[si].Notes)}
		c.Subjects[si].Notes = append(c.Subjects[si].Notes, state.Note{
			ID:         nid,
			Title:      title,
			TemplateID: templateID,
			CreatedAt:  fromTS(createdAt),
		})
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate notes: %w", err)
	}

	pageRows, err := s.db.QueryContext(ctx, `
SELECT page_id, note_id, page_number, template_id
FROM pages ORDER BY note_id, page_number`)
	if err != nil {
		return fmt.Errorf("query pages: %w", err)
	}
	defer pageRows.Close()

	for pageRows.Next() {
		var (
			id, noteID, templateID string
			pageNumber             int
		)
		if err := pageRows.Scan(&id, &noteID, &pageNumber, &templateID); err != nil {
			return fmt.Errorf("scan page: %w", err)
		}
		pid, err := uuid.Parse(id)
		if err != nil {
			return fmt.Errorf("parse page id %q: %w", id, err)
		}
		nid, err := uuid.Parse(noteID)
		if err != nil {
			return fmt.Errorf("parse page note id %q: %w", noteID, err)
		}
		owner, ok := noteOwner[nid]
		if !ok {
			continue
		}
		note := &c.Subjects[owner.si].Notes[owner.ni]
		note.Pages = append(note.Pages, state.Page{
			ID:         pid,
			PageNumber: pageNumber,
			TemplateID: templateID,
		})
	}
	return pageRows.Err()
}

// SaveSettings upserts the settings key/value rows.
func (s *Store) SaveSettings(ctx context.Context, st state.SettingsState) error {
	pairs := map[string]string{
		"autosave_enabled":    strconv.FormatBool(st.AutoSaveEnabled),
		"thumbnails_enabled":  strconv.FormatBool(st.ThumbnailsEnabled),
		"debug_logging":       strconv.FormatBool(st.DebugLogging),
		"default_template_id": st.DefaultTemplateID,
	}
	for key, value := range pairs {
		_, err := s.db.ExecContext(ctx, `
INSERT INTO settings(key, value) VALUES (?, ?)
ON CONFLICT(key) DO UPDATE SET value=excluded.value`, key, value)
		if err != nil {
			return fmt.Errorf("upsert setting %s: %w", key, err)
		}
	}
	return nil
}

// LoadSettings reads persisted settings, falling back to defaults for
// missing keys.
func (s *Store) LoadSettings(ctx context.Context) (state.SettingsState, error) {
	st := state.Default().Settings

	rows, err := s.db.QueryContext(ctx, `SELECT key, value FROM settings`)
	if err != nil {
		return st, fmt.Errorf("query settings: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return st, fmt.Errorf("scan setting: %w", err)
		}
		switch key {
		case "autosave_enabled":
			st.AutoSaveEnabled = value == "true"
		case "thumbnails_enabled":
			st.ThumbnailsEnabled = value == "true"
		case "debug_logging":
			st.DebugLogging = value == "true"
		case "default_template_id":
			st.DefaultTemplateID = value
		}
	}
	return st, rows.Err()
}

// ts converts a time to the stored millisecond representation. Zero times
// store as zero.
func ts(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.UTC().UnixMilli()
}

func fromTS(ms int64) time.Time {
	if ms == 0 {
		return time.Time{}
	}
	return time.UnixMilli(ms).UTC()
}
