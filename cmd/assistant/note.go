// Parent command grouping the note verbs.
package main

import (
	"github.com/spf13/cobra"
)

var noteCmd = &cobra.Command{
	Use:   "note",
	Short: "Manage notes in the notes book",
}

func init() {
	noteCmd.AddCommand(noteAddCmd)
	noteCmd.AddCommand(noteDeleteCmd)
	noteCmd.AddCommand(noteListCmd)
	noteCmd.AddCommand(noteShowCmd)
	noteCmd.AddCommand(noteAddTasksCmd)
	noteCmd.AddCommand(noteAddHobbyCmd)
	noteCmd.AddCommand(noteEditHobbyCmd)
	noteCmd.AddCommand(noteFindRoleCmd)
	noteCmd.AddCommand(noteFindHobbyCmd)
}
