// JSONL record shapes for export and import. One contact or note per line.
package sqlite

import (
	"fmt"

	"github.com/bezvoshchuk/project-zakarpatski-zhaboiidy/pkg/types"
)

// contactJSON represents one contact in contacts.jsonl.
type contactJSON struct {
	Name     string   `json:"name"`
	Phones   []string `json:"phones"`
	Birthday *string  `json:"birthday,omitempty"`
	Email    string   `json:"email,omitempty"`
	Address  string   `json:"address,omitempty"`
}

// noteJSON represents one note in notes.jsonl.
type noteJSON struct {
	Name         string   `json:"name"`
	ProjectRole  string   `json:"project_role"`
	ProjectTasks string   `json:"project_tasks,omitempty"`
	Hobbies      []string `json:"hobbies,omitempty"`
}

func encodeContact(record *types.Record) contactJSON {
	c := contactJSON{
		Name:    record.Name(),
		Phones:  record.Phones(),
		Email:   record.Email(),
		Address: record.Address(),
	}
	if bd, ok := record.Birthday(); ok {
		s := bd.Format(types.DateLayout)
		c.Birthday = &s
	}
	return c
}

func decodeContact(c contactJSON) (*types.Record, error) {
	if len(c.Phones) == 0 {
		return nil, fmt.Errorf("contact %q has no phones", c.Name)
	}
	record, err := types.NewRecord(c.Name, c.Phones[0])
	if err != nil {
		return nil, fmt.Errorf("decoding contact %q: %w", c.Name, err)
	}
	for _, phone := range c.Phones[1:] {
		if err := record.AddPhone(phone); err != nil {
			return nil, fmt.Errorf("decoding contact %q: %w", c.Name, err)
		}
	}
	if c.Birthday != nil {
		if err := record.AddBirthday(*c.Birthday); err != nil {
			return nil, fmt.Errorf("decoding contact %q: %w", c.Name, err)
		}
	}
	if c.Email != "" {
		if err := record.AddEmail(c.Email); err != nil {
			return nil, fmt.Errorf("decoding contact %q: %w", c.Name, err)
		}
	}
	if c.Address != "" {
		if err := record.AddAddress(c.Address); err != nil {
			return nil, fmt.Errorf("decoding contact %q: %w", c.Name, err)
		}
	}
	return record, nil
}

func encodeNote(note *types.Note) noteJSON {
	return noteJSON{
		Name:         note.Name(),
		ProjectRole:  note.ProjectRole(),
		ProjectTasks: note.ProjectTasks(),
		Hobbies:      note.Hobbies(),
	}
}

func decodeNote(n noteJSON) (*types.Note, error) {
	note, err := types.NewNote(n.Name, n.ProjectRole)
	if err != nil {
		return nil, fmt.Errorf("decoding note %q: %w", n.Name, err)
	}
	if n.ProjectTasks != "" {
		note.AddProjectTasks(n.ProjectTasks)
	}
	for _, hobby := range n.Hobbies {
		note.AddHobby(hobby)
	}
	return note, nil
}
