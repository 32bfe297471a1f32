// Note add, show, list and delete commands.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bezvoshchuk/project-zakarpatski-zhaboiidy/pkg/types"
)

var noteAddCmd = &cobra.Command{
	Use:   "add <name> <project-role>",
	Short: "Create a new note",
	Long: `Add creates a note with the given name and project role. The role
is fixed at creation.

Example:
  assistant note add proj1 backend`,
	Args: cobra.ExactArgs(2),
	RunE: runNoteAdd,
}

var noteShowCmd = &cobra.Command{
	Use:               "show <name>",
	Short:             "Show a note by name",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: noteNameCompletion,
	RunE:              runNoteShow,
}

var noteListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all notes",
	Args:  cobra.NoArgs,
	RunE:  runNoteList,
}

var noteDeleteCmd = &cobra.Command{
	Use:               "delete <name>",
	Short:             "Delete a note",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: noteNameCompletion,
	RunE:              runNoteDelete,
}

func runNoteAdd(cmd *cobra.Command, args []string) error {
	store, ab, nb, err := openBooks()
	if err != nil {
		return err
	}
	defer store.Detach()

	note, err := types.NewNote(args[0], args[1])
	if err != nil {
		return err
	}
	stored, ok := nb.Add(note)
	if !ok {
		return fmt.Errorf("note %q already exists", args[0])
	}
	if err := persist(store, ab, nb); err != nil {
		return err
	}

	if flagJSON {
		return printJSON(cmd, stored.String())
	}
	cmd.Printf("Note %s created with project role: %s.\n", stored.Name(), stored.ProjectRole())
	return nil
}

func runNoteShow(cmd *cobra.Command, args []string) error {
	store, _, nb, err := openBooks()
	if err != nil {
		return err
	}
	defer store.Detach()

	note, err := nb.Find(args[0])
	if err != nil {
		return err
	}
	if flagJSON {
		return printJSON(cmd, note.String())
	}
	cmd.Println(note.String())
	return nil
}

func runNoteList(cmd *cobra.Command, args []string) error {
	store, _, nb, err := openBooks()
	if err != nil {
		return err
	}
	defer store.Detach()

	notes := nb.Notes()
	if len(notes) == 0 && !flagJSON {
		cmd.Println("No notes stored.")
		return nil
	}
	return printNotes(cmd, notes)
}

func runNoteDelete(cmd *cobra.Command, args []string) error {
	store, ab, nb, err := openBooks()
	if err != nil {
		return err
	}
	defer store.Detach()

	if err := nb.Delete(args[0]); err != nil {
		return err
	}
	if err := persist(store, ab, nb); err != nil {
		return err
	}
	cmd.Printf("Note %s deleted.\n", args[0])
	return nil
}
