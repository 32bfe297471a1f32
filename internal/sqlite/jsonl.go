// JSONL read/write helpers with atomic persistence, plus the store's
// export/import operations built on them.
package sqlite

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bezvoshchuk/project-zakarpatski-zhaboiidy/pkg/types"
)

// Export file names inside the export directory.
const (
	contactsJSONLName = "contacts.jsonl"
	notesJSONLName    = "notes.jsonl"
)

// ExportJSONL writes the stored books as contacts.jsonl and notes.jsonl
// into dir, creating it if needed. Writes are atomic.
func (s *Store) ExportJSONL(dir string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.attached {
		return types.ErrStoreDetached
	}
	ab, err := s.loadAddressBook()
	if err != nil {
		return fmt.Errorf("loading contacts: %w", err)
	}
	nb, err := s.loadNotesBook()
	if err != nil {
		return fmt.Errorf("loading notes: %w", err)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating export dir: %w", err)
	}

	var contactLines []json.RawMessage
	for _, record := range ab.Records() {
		line, err := json.Marshal(encodeContact(record))
		if err != nil {
			return fmt.Errorf("encoding contact %q: %w", record.Name(), err)
		}
		contactLines = append(contactLines, line)
	}
	if err := writeJSONL(filepath.Join(dir, contactsJSONLName), contactLines); err != nil {
		return fmt.Errorf("writing %s: %w", contactsJSONLName, err)
	}

	var noteLines []json.RawMessage
	for _, note := range nb.Notes() {
		line, err := json.Marshal(encodeNote(note))
		if err != nil {
			return fmt.Errorf("encoding note %q: %w", note.Name(), err)
		}
		noteLines = append(noteLines, line)
	}
	if err := writeJSONL(filepath.Join(dir, notesJSONLName), noteLines); err != nil {
		return fmt.Errorf("writing %s: %w", notesJSONLName, err)
	}
	return nil
}

// ImportJSONL reads contacts.jsonl and notes.jsonl from dir and replaces the
// stored state with their contents. A missing file imports as empty.
// Malformed lines are skipped; duplicate names keep the first occurrence.
func (s *Store) ImportJSONL(dir string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.attached {
		return types.ErrStoreDetached
	}

	ab := types.NewAddressBook()
	contactLines, err := readJSONL(filepath.Join(dir, contactsJSONLName))
	if err != nil {
		return fmt.Errorf("reading %s: %w", contactsJSONLName, err)
	}
	for _, line := range contactLines {
		var c contactJSON
		if err := json.Unmarshal(line, &c); err != nil {
			continue
		}
		record, err := decodeContact(c)
		if err != nil {
			return err
		}
		ab.Add(record)
	}

	nb := types.NewNotesBook()
	noteLines, err := readJSONL(filepath.Join(dir, notesJSONLName))
	if err != nil {
		return fmt.Errorf("reading %s: %w", notesJSONLName, err)
	}
	for _, line := range noteLines {
		var n noteJSON
		if err := json.Unmarshal(line, &n); err != nil {
			continue
		}
		note, err := decodeNote(n)
		if err != nil {
			return err
		}
		nb.Add(note)
	}

	return s.saveBooks(ab, nb)
}

// readJSONL reads a JSONL file and returns each non-empty, parseable line.
// A missing file yields no lines. Malformed lines are skipped so a partially
// hand-edited export still imports.
func readJSONL(path string) ([]json.RawMessage, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	var records []json.RawMessage
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 || !json.Valid(line) {
			continue
		}
		cp := make([]byte, len(line))
		copy(cp, line)
		records = append(records, json.RawMessage(cp))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanning %s: %w", path, err)
	}
	return records, nil
}

// writeJSONL atomically writes records to path using the temp-file, fsync,
// rename pattern.
func writeJSONL(path string, records []json.RawMessage) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".jsonl-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()
	cleanup := func() {
		tmp.Close()
		os.Remove(tmpName)
	}

	w := bufio.NewWriter(tmp)
	for _, rec := range records {
		if _, err := w.Write(rec); err != nil {
			cleanup()
			return fmt.Errorf("writing record: %w", err)
		}
		if err := w.WriteByte('\n'); err != nil {
			cleanup()
			return fmt.Errorf("writing newline: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		cleanup()
		return fmt.Errorf("flushing buffer: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		cleanup()
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
