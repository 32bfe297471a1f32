// Contact change command replaces a contact's primary phone.
package main

import (
	"github.com/spf13/cobra"
)

var contactChangeCmd = &cobra.Command{
	Use:   "change <name> <phone>",
	Short: "Replace a contact's primary phone",
	Long: `Change replaces the first stored phone of an existing contact.

Example:
  assistant contact change alice 0987654321`,
	Args:              cobra.ExactArgs(2),
	ValidArgsFunction: contactNameCompletion,
	RunE:              runContactChange,
}

func runContactChange(cmd *cobra.Command, args []string) error {
	store, ab, nb, err := openBooks()
	if err != nil {
		return err
	}
	defer store.Detach()

	record, err := ab.Find(args[0])
	if err != nil {
		return err
	}
	if err := record.EditPhone(record.Phones()[0], args[1]); err != nil {
		return err
	}
	if err := persist(store, ab, nb); err != nil {
		return err
	}

	if flagJSON {
		return printJSON(cmd, record.String())
	}
	cmd.Printf("Contact %s updated with phone: %s.\n", record.Name(), record.Phones()[0])
	return nil
}
