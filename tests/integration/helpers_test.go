// Package integration provides shared test helpers for integration tests.
package integration

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bezvoshchuk/project-zakarpatski-zhaboiidy/internal/sqlite"
	"github.com/bezvoshchuk/project-zakarpatski-zhaboiidy/pkg/types"
)

// setupStore creates a store attached to an isolated temp directory.
// Each test case gets its own store instance for isolation.
func setupStore(t *testing.T) (*sqlite.Store, string) {
	t.Helper()
	dir := t.TempDir()
	s := sqlite.NewStore()
	if err := s.Attach(types.Config{Backend: types.BackendSQLite, DataDir: dir}); err != nil {
		t.Fatalf("Attach: %v", err)
	}
	t.Cleanup(func() { s.Detach() })
	return s, dir
}

// reattach detaches the store and attaches a fresh one to the same directory.
func reattach(t *testing.T, s *sqlite.Store, dir string) *sqlite.Store {
	t.Helper()
	if err := s.Detach(); err != nil {
		t.Fatalf("Detach: %v", err)
	}
	fresh := sqlite.NewStore()
	if err := fresh.Attach(types.Config{Backend: types.BackendSQLite, DataDir: dir}); err != nil {
		t.Fatalf("re-Attach: %v", err)
	}
	t.Cleanup(func() { fresh.Detach() })
	return fresh
}

// mustLoadBooks hydrates both books or fails the test.
func mustLoadBooks(t *testing.T, s *sqlite.Store) (*types.AddressBook, *types.NotesBook) {
	t.Helper()
	ab, nb, err := s.LoadBooks()
	if err != nil {
		t.Fatalf("LoadBooks: %v", err)
	}
	return ab, nb
}

// mustSaveBooks persists both books or fails the test.
func mustSaveBooks(t *testing.T, s *sqlite.Store, ab *types.AddressBook, nb *types.NotesBook) {
	t.Helper()
	if err := s.SaveBooks(ab, nb); err != nil {
		t.Fatalf("SaveBooks: %v", err)
	}
}

// mustAddContact creates a record with one phone and adds it to the book.
func mustAddContact(t *testing.T, ab *types.AddressBook, name, phone string) *types.Record {
	t.Helper()
	record, err := types.NewRecord(name, phone)
	if err != nil {
		t.Fatalf("NewRecord(%q, %q): %v", name, phone, err)
	}
	stored, ok := ab.Add(record)
	if !ok {
		t.Fatalf("Add(%q): name already taken", name)
	}
	return stored
}

// mustFindContact retrieves a record by name or fails the test.
func mustFindContact(t *testing.T, ab *types.AddressBook, name string) *types.Record {
	t.Helper()
	record, err := ab.Find(name)
	if err != nil {
		t.Fatalf("Find(%q): %v", name, err)
	}
	return record
}

// mustAddNote creates a note and adds it to the book.
func mustAddNote(t *testing.T, nb *types.NotesBook, name, role string) *types.Note {
	t.Helper()
	note, err := types.NewNote(name, role)
	if err != nil {
		t.Fatalf("NewNote(%q, %q): %v", name, role, err)
	}
	stored, ok := nb.Add(note)
	if !ok {
		t.Fatalf("Add note %q: name already taken", name)
	}
	return stored
}

// readJSONLFile reads a JSONL file and returns its non-empty lines.
func readJSONLFile(t *testing.T, dir, filename string) []string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, filename))
	if err != nil {
		t.Fatalf("reading %s: %v", filename, err)
	}
	var lines []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// assertJSONLContains checks that a JSONL file contains a substring.
func assertJSONLContains(t *testing.T, dir, filename, substr string) {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, filename))
	if err != nil {
		t.Fatalf("reading %s: %v", filename, err)
	}
	if !strings.Contains(string(data), substr) {
		t.Errorf("%s does not contain %q", filename, substr)
	}
}
