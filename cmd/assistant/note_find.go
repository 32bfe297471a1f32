// Note search commands by project role and by hobby.
package main

import (
	"strings"

	"github.com/spf13/cobra"
)

var noteFindRoleCmd = &cobra.Command{
	Use:   "find-role <project-role>",
	Short: "Find notes by project role",
	Long:  `Find-role lists notes whose project role matches exactly.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runNoteFindRole,
}

var noteFindHobbyCmd = &cobra.Command{
	Use:   "find-hobby <hobby>...",
	Short: "Find notes by hobby",
	Long: `Find-hobby lists notes whose hobby list contains the given hobby.
Multiple words are joined into a single phrase before matching.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runNoteFindHobby,
}

func runNoteFindRole(cmd *cobra.Command, args []string) error {
	store, _, nb, err := openBooks()
	if err != nil {
		return err
	}
	defer store.Detach()

	matches := nb.FindProjectRole(args[0])
	if len(matches) == 0 && !flagJSON {
		cmd.Println("No notes found with provided project role.")
		return nil
	}
	return printNotes(cmd, matches)
}

func runNoteFindHobby(cmd *cobra.Command, args []string) error {
	store, _, nb, err := openBooks()
	if err != nil {
		return err
	}
	defer store.Detach()

	matches := nb.FindHobby(strings.Join(args, " "))
	if len(matches) == 0 && !flagJSON {
		cmd.Println("No notes found with provided hobby.")
		return nil
	}
	return printNotes(cmd, matches)
}
