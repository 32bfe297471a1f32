// Package sqlite implements the SQLite persistence backend for the
// assistant. It hydrates the address and notes books at startup, rewrites
// them on save, and offers JSONL export/import for git-friendly snapshots.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/bezvoshchuk/project-zakarpatski-zhaboiidy/pkg/types"
)

// dbFileName is the database file created inside the data directory.
const dbFileName = "assistant.db"

// Compile-time interface check: Store must implement Storage.
var _ types.Storage = (*Store)(nil)

// Store implements the Storage interface on a single SQLite database.
// The mutex guards the attach state; the books themselves stay confined to
// the caller and are never shared.
type Store struct {
	mu       sync.Mutex
	attached bool
	config   types.Config
	db       *sql.DB
}

// NewStore creates a new store. It is not attached; call Attach with a
// Config to open the database.
func NewStore() *Store {
	return &Store{}
}

// Attach opens (or creates) the database under the configured data
// directory and applies the schema. Returns ErrAlreadyAttached if called
// while attached.
func (s *Store) Attach(config types.Config) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.attached {
		return types.ErrAlreadyAttached
	}
	if err := config.Validate(); err != nil {
		return err
	}

	dataDir := config.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}

	db, err := sql.Open("sqlite", filepath.Join(dataDir, dbFileName))
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	for _, stmt := range schemaStatements {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return fmt.Errorf("applying schema: %w", err)
		}
	}

	s.db = db
	s.config = config
	s.config.DataDir = dataDir
	s.attached = true
	return nil
}

// Detach closes the database. Idempotent: detaching a detached store
// succeeds.
func (s *Store) Detach() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.attached {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	s.attached = false
	if err != nil {
		return fmt.Errorf("closing database: %w", err)
	}
	return nil
}

// DataDir returns the effective data directory after Attach.
func (s *Store) DataDir() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.config.DataDir
}

// LoadBooks hydrates both books from the database. On first run both come
// back empty.
func (s *Store) LoadBooks() (*types.AddressBook, *types.NotesBook, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.attached {
		return nil, nil, types.ErrStoreDetached
	}
	ab, err := s.loadAddressBook()
	if err != nil {
		return nil, nil, fmt.Errorf("loading contacts: %w", err)
	}
	nb, err := s.loadNotesBook()
	if err != nil {
		return nil, nil, fmt.Errorf("loading notes: %w", err)
	}
	return ab, nb, nil
}

// SaveBooks replaces the stored state with the books' current contents in a
// single transaction and records a snapshot row with a fresh UUID v7.
func (s *Store) SaveBooks(ab *types.AddressBook, nb *types.NotesBook) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.attached {
		return types.ErrStoreDetached
	}
	return s.saveBooks(ab, nb)
}

func (s *Store) loadAddressBook() (*types.AddressBook, error) {
	phones := make(map[string][]string)
	rows, err := s.db.Query(
		"SELECT contact_name, phone FROM contact_phones ORDER BY contact_name, position")
	if err != nil {
		return nil, fmt.Errorf("querying phones: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var name, phone string
		if err := rows.Scan(&name, &phone); err != nil {
			return nil, fmt.Errorf("scanning phone row: %w", err)
		}
		phones[name] = append(phones[name], phone)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating phone rows: %w", err)
	}

	ab := types.NewAddressBook()
	contactRows, err := s.db.Query(
		"SELECT name, birthday, email, address FROM contacts ORDER BY ordinal")
	if err != nil {
		return nil, fmt.Errorf("querying contacts: %w", err)
	}
	defer contactRows.Close()
	for contactRows.Next() {
		var name string
		var birthday, email, address sql.NullString
		if err := contactRows.Scan(&name, &birthday, &email, &address); err != nil {
			return nil, fmt.Errorf("scanning contact row: %w", err)
		}
		record, err := hydrateRecord(name, phones[name], birthday, email, address)
		if err != nil {
			return nil, err
		}
		if _, ok := ab.Add(record); !ok {
			return nil, fmt.Errorf("duplicate contact %q in database", name)
		}
	}
	if err := contactRows.Err(); err != nil {
		return nil, fmt.Errorf("iterating contact rows: %w", err)
	}
	return ab, nil
}

// hydrateRecord rebuilds a Record through the same constructors the CLI
// uses, so stored data is revalidated on load.
func hydrateRecord(name string, phones []string, birthday, email, address sql.NullString) (*types.Record, error) {
	if len(phones) == 0 {
		return nil, fmt.Errorf("contact %q has no phones", name)
	}
	record, err := types.NewRecord(name, phones[0])
	if err != nil {
		return nil, fmt.Errorf("hydrating contact %q: %w", name, err)
	}
	for _, phone := range phones[1:] {
		if err := record.AddPhone(phone); err != nil {
			return nil, fmt.Errorf("hydrating contact %q: %w", name, err)
		}
	}
	if birthday.Valid {
		if err := record.AddBirthday(birthday.String); err != nil {
			return nil, fmt.Errorf("hydrating contact %q: %w", name, err)
		}
	}
	if email.Valid && email.String != "" {
		if err := record.AddEmail(email.String); err != nil {
			return nil, fmt.Errorf("hydrating contact %q: %w", name, err)
		}
	}
	if address.Valid && address.String != "" {
		if err := record.AddAddress(address.String); err != nil {
			return nil, fmt.Errorf("hydrating contact %q: %w", name, err)
		}
	}
	return record, nil
}

func (s *Store) loadNotesBook() (*types.NotesBook, error) {
	hobbies := make(map[string][]string)
	rows, err := s.db.Query(
		"SELECT note_name, hobby FROM note_hobbies ORDER BY note_name, position")
	if err != nil {
		return nil, fmt.Errorf("querying hobbies: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var name, hobby string
		if err := rows.Scan(&name, &hobby); err != nil {
			return nil, fmt.Errorf("scanning hobby row: %w", err)
		}
		hobbies[name] = append(hobbies[name], hobby)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating hobby rows: %w", err)
	}

	nb := types.NewNotesBook()
	noteRows, err := s.db.Query(
		"SELECT name, project_role, project_tasks FROM notes ORDER BY ordinal")
	if err != nil {
		return nil, fmt.Errorf("querying notes: %w", err)
	}
	defer noteRows.Close()
	for noteRows.Next() {
		var name, role, tasks string
		if err := noteRows.Scan(&name, &role, &tasks); err != nil {
			return nil, fmt.Errorf("scanning note row: %w", err)
		}
		note, err := types.NewNote(name, role)
		if err != nil {
			return nil, fmt.Errorf("hydrating note %q: %w", name, err)
		}
		if tasks != "" {
			note.AddProjectTasks(tasks)
		}
		for _, hobby := range hobbies[name] {
			note.AddHobby(hobby)
		}
		if _, ok := nb.Add(note); !ok {
			return nil, fmt.Errorf("duplicate note %q in database", name)
		}
	}
	if err := noteRows.Err(); err != nil {
		return nil, fmt.Errorf("iterating note rows: %w", err)
	}
	return nb, nil
}

// saveBooks is the lock-free core of SaveBooks, shared with ImportJSONL.
func (s *Store) saveBooks(ab *types.AddressBook, nb *types.NotesBook) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	// Full rewrite: children first, then parents.
	for _, stmt := range []string{
		"DELETE FROM contact_phones",
		"DELETE FROM contacts",
		"DELETE FROM note_hobbies",
		"DELETE FROM notes",
	} {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("clearing tables: %w", err)
		}
	}

	for ordinal, record := range ab.Records() {
		var birthday any
		if bd, ok := record.Birthday(); ok {
			birthday = bd.Format(types.DateLayout)
		}
		_, err := tx.Exec(
			"INSERT INTO contacts (name, ordinal, birthday, email, address) VALUES (?, ?, ?, ?, ?)",
			record.Name(), ordinal, birthday, nullable(record.Email()), nullable(record.Address()),
		)
		if err != nil {
			return fmt.Errorf("persisting contact %q: %w", record.Name(), err)
		}
		for position, phone := range record.Phones() {
			_, err := tx.Exec(
				"INSERT INTO contact_phones (contact_name, position, phone) VALUES (?, ?, ?)",
				record.Name(), position, phone,
			)
			if err != nil {
				return fmt.Errorf("persisting phones for %q: %w", record.Name(), err)
			}
		}
	}

	for ordinal, note := range nb.Notes() {
		_, err := tx.Exec(
			"INSERT INTO notes (name, ordinal, project_role, project_tasks) VALUES (?, ?, ?, ?)",
			note.Name(), ordinal, note.ProjectRole(), note.ProjectTasks(),
		)
		if err != nil {
			return fmt.Errorf("persisting note %q: %w", note.Name(), err)
		}
		for position, hobby := range note.Hobbies() {
			_, err := tx.Exec(
				"INSERT INTO note_hobbies (note_name, position, hobby) VALUES (?, ?, ?)",
				note.Name(), position, hobby,
			)
			if err != nil {
				return fmt.Errorf("persisting hobbies for %q: %w", note.Name(), err)
			}
		}
	}

	snapshotID, err := uuid.NewV7()
	if err != nil {
		return fmt.Errorf("generating snapshot ID: %w", err)
	}
	_, err = tx.Exec(
		"INSERT INTO snapshots (snapshot_id, saved_at) VALUES (?, ?)",
		snapshotID.String(), time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("recording snapshot: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing save: %w", err)
	}
	return nil
}

// nullable maps the empty string to SQL NULL.
func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
