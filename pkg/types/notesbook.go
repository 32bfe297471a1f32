package types

import (
	"fmt"
	"slices"
)

// NotesBook is a name-keyed collection of notes. Names are unique;
// insertion order is preserved for deterministic listing output.
type NotesBook struct {
	notes map[string]*Note
	order []string
}

// NewNotesBook creates an empty notes book.
func NewNotesBook() *NotesBook {
	return &NotesBook{notes: make(map[string]*Note)}
}

// Add inserts a note and returns it with ok true. When a note with the same
// name already exists, it returns (nil, false) and the book is left
// unchanged. Same comma-ok contract as AddressBook.Add.
func (nb *NotesBook) Add(note *Note) (*Note, bool) {
	if _, exists := nb.notes[note.Name()]; exists {
		return nil, false
	}
	nb.notes[note.Name()] = note
	nb.order = append(nb.order, note.Name())
	return note, true
}

// Find returns the note stored under name.
// Returns ErrNoteNotFound wrapped with the name if absent.
func (nb *NotesBook) Find(name string) (*Note, error) {
	note, ok := nb.notes[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrNoteNotFound)
	}
	return note, nil
}

// Delete removes the note stored under name.
// Returns ErrNoteNotFound wrapped with the name if absent.
func (nb *NotesBook) Delete(name string) error {
	if _, ok := nb.notes[name]; !ok {
		return fmt.Errorf("%q: %w", name, ErrNoteNotFound)
	}
	delete(nb.notes, name)
	if i := slices.Index(nb.order, name); i >= 0 {
		nb.order = slices.Delete(nb.order, i, i+1)
	}
	return nil
}

// FindProjectRole returns every note whose project role equals role
// (exact, case-sensitive), in insertion order. Empty slice if none.
func (nb *NotesBook) FindProjectRole(role string) []*Note {
	matches := []*Note{}
	for _, name := range nb.order {
		note := nb.notes[name]
		if note.ProjectRole() == role {
			matches = append(matches, note)
		}
	}
	return matches
}

// FindHobby returns every note whose hobby list contains hobby (exact
// match), in insertion order. Empty slice if none.
func (nb *NotesBook) FindHobby(hobby string) []*Note {
	matches := []*Note{}
	for _, name := range nb.order {
		note := nb.notes[name]
		if note.HasHobby(hobby) {
			matches = append(matches, note)
		}
	}
	return matches
}

// Names returns all note names in insertion order.
func (nb *NotesBook) Names() []string {
	return slices.Clone(nb.order)
}

// Notes returns all notes in insertion order.
func (nb *NotesBook) Notes() []*Note {
	notes := make([]*Note, 0, len(nb.order))
	for _, name := range nb.order {
		notes = append(notes, nb.notes[name])
	}
	return notes
}

// Len returns the number of stored notes.
func (nb *NotesBook) Len() int { return len(nb.order) }
