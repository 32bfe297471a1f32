package types

import (
	"fmt"
	"slices"
	"strings"
)

// Note is one stored note: an immutable name, a project role fixed at
// creation, free-form task text built by appends, and an ordered hobby list.
type Note struct {
	name         string
	projectRole  string
	projectTasks string
	hobbies      []string
}

// NewNote creates a note with the given name and project role.
// Both must be non-empty.
func NewNote(name, projectRole string) (*Note, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidName
	}
	projectRole = strings.TrimSpace(projectRole)
	if projectRole == "" {
		return nil, ErrInvalidRole
	}
	return &Note{name: name, projectRole: projectRole}, nil
}

// Name returns the note name. It never changes after creation.
func (n *Note) Name() string { return n.name }

// ProjectRole returns the project role set at creation.
func (n *Note) ProjectRole() string { return n.projectRole }

// ProjectTasks returns the accumulated task text, empty if none.
func (n *Note) ProjectTasks() string { return n.projectTasks }

// Hobbies returns a copy of the hobby list in stored order.
func (n *Note) Hobbies() []string { return slices.Clone(n.hobbies) }

// AddProjectTasks appends text to the task string, separated by a single
// space when prior content exists. Free text, no validation.
func (n *Note) AddProjectTasks(text string) {
	if n.projectTasks == "" {
		n.projectTasks = text
		return
	}
	n.projectTasks += " " + text
}

// AddHobby appends one hobby entry. The entry may be a multi-word phrase;
// callers join words before the call.
func (n *Note) AddHobby(hobby string) {
	n.hobbies = append(n.hobbies, hobby)
}

// EditHobby replaces the first exact match of hobby with newHobby.
// Returns ErrHobbyNotFound if hobby is not in the list.
func (n *Note) EditHobby(hobby, newHobby string) error {
	i := slices.Index(n.hobbies, hobby)
	if i < 0 {
		return fmt.Errorf("%q: %w", hobby, ErrHobbyNotFound)
	}
	n.hobbies[i] = newHobby
	return nil
}

// HasHobby reports whether hobby appears (exact match) in the hobby list.
func (n *Note) HasHobby(hobby string) bool {
	return slices.Contains(n.hobbies, hobby)
}

// String renders the note for display: name and project role always, then
// tasks and hobbies when present.
func (n *Note) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Note name: %s, project role: %s", n.name, n.projectRole)
	if n.projectTasks != "" {
		fmt.Fprintf(&b, ", tasks: %s", n.projectTasks)
	}
	if len(n.hobbies) > 0 {
		fmt.Fprintf(&b, ", hobbies: %s", strings.Join(n.hobbies, "; "))
	}
	return b.String()
}
