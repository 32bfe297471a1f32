// Contact add command creates a new contact.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bezvoshchuk/project-zakarpatski-zhaboiidy/pkg/types"
)

var contactAddCmd = &cobra.Command{
	Use:   "add <name> <phone>",
	Short: "Create a new contact",
	Long: `Add creates a contact with the given name and phone.

The name must be unique within the address book; the phone must contain
exactly 10 digits (separators allowed).

Example:
  assistant contact add alice 123-456-78-90`,
	Args: cobra.ExactArgs(2),
	RunE: runContactAdd,
}

func runContactAdd(cmd *cobra.Command, args []string) error {
	store, ab, nb, err := openBooks()
	if err != nil {
		return err
	}
	defer store.Detach()

	record, err := types.NewRecord(args[0], args[1])
	if err != nil {
		return err
	}
	stored, ok := ab.Add(record)
	if !ok {
		return fmt.Errorf("contact %q already exists; use 'contact change' to update it", args[0])
	}
	if err := persist(store, ab, nb); err != nil {
		return err
	}

	if flagJSON {
		return printJSON(cmd, stored.String())
	}
	cmd.Printf("Contact %s created with phone: %s.\n", stored.Name(), stored.Phones()[0])
	return nil
}
