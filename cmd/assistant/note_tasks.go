// Task text command appends to a note's free-form task description.
package main

import (
	"strings"

	"github.com/spf13/cobra"
)

var noteAddTasksCmd = &cobra.Command{
	Use:   "add-tasks <name> <text>...",
	Short: "Append task text to a note",
	Long: `Add-tasks appends free-form text to the note's task description.
Repeated calls accumulate text separated by single spaces.`,
	Args:              cobra.MinimumNArgs(2),
	ValidArgsFunction: noteNameCompletion,
	RunE:              runNoteAddTasks,
}

func runNoteAddTasks(cmd *cobra.Command, args []string) error {
	store, ab, nb, err := openBooks()
	if err != nil {
		return err
	}
	defer store.Detach()

	note, err := nb.Find(args[0])
	if err != nil {
		return err
	}
	note.AddProjectTasks(strings.Join(args[1:], " "))
	if err := persist(store, ab, nb); err != nil {
		return err
	}
	cmd.Printf("Tasks updated for note %s.\n", note.Name())
	return nil
}
