// Hobby commands: append and in-place edit.
package main

import (
	"strings"

	"github.com/spf13/cobra"
)

var noteAddHobbyCmd = &cobra.Command{
	Use:   "add-hobby <name> <hobby>...",
	Short: "Append a hobby to a note",
	Long: `Add-hobby appends one hobby entry to the note. Multiple words are
joined into a single phrase:

  assistant note add-hobby helen mountain biking`,
	Args:              cobra.MinimumNArgs(2),
	ValidArgsFunction: noteNameCompletion,
	RunE:              runNoteAddHobby,
}

var noteEditHobbyCmd = &cobra.Command{
	Use:   "edit-hobby <name> <old-hobby> <new-hobby>",
	Short: "Replace a hobby on a note",
	Long: `Edit-hobby replaces the first exact match of the old hobby with the
new one. The old hobby must already be on the note.`,
	Args:              cobra.ExactArgs(3),
	ValidArgsFunction: noteNameCompletion,
	RunE:              runNoteEditHobby,
}

func runNoteAddHobby(cmd *cobra.Command, args []string) error {
	store, ab, nb, err := openBooks()
	if err != nil {
		return err
	}
	defer store.Detach()

	note, err := nb.Find(args[0])
	if err != nil {
		return err
	}
	hobby := strings.Join(args[1:], " ")
	note.AddHobby(hobby)
	if err := persist(store, ab, nb); err != nil {
		return err
	}
	cmd.Printf("Hobby %q added to note %s.\n", hobby, note.Name())
	return nil
}

func runNoteEditHobby(cmd *cobra.Command, args []string) error {
	store, ab, nb, err := openBooks()
	if err != nil {
		return err
	}
	defer store.Detach()

	note, err := nb.Find(args[0])
	if err != nil {
		return err
	}
	if err := note.EditHobby(args[1], args[2]); err != nil {
		return err
	}
	if err := persist(store, ab, nb); err != nil {
		return err
	}
	cmd.Printf("Hobby %q replaced with %q on note %s.\n", args[1], args[2], note.Name())
	return nil
}
