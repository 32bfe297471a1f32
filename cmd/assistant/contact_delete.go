// Contact delete command removes a contact.
package main

import (
	"github.com/spf13/cobra"
)

var contactDeleteCmd = &cobra.Command{
	Use:               "delete <name>",
	Short:             "Delete a contact",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: contactNameCompletion,
	RunE:              runContactDelete,
}

func runContactDelete(cmd *cobra.Command, args []string) error {
	store, ab, nb, err := openBooks()
	if err != nil {
		return err
	}
	defer store.Detach()

	if err := ab.Delete(args[0]); err != nil {
		return err
	}
	if err := persist(store, ab, nb); err != nil {
		return err
	}
	cmd.Printf("Contact %s deleted.\n", args[0])
	return nil
}
