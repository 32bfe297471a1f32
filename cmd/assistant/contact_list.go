// Contact list command prints every contact.
package main

import (
	"github.com/spf13/cobra"
)

var contactListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all contacts",
	Args:  cobra.NoArgs,
	RunE:  runContactList,
}

func runContactList(cmd *cobra.Command, args []string) error {
	store, ab, _, err := openBooks()
	if err != nil {
		return err
	}
	defer store.Detach()

	records := ab.Records()
	if len(records) == 0 && !flagJSON {
		cmd.Println("No contacts stored.")
		return nil
	}
	return printRecords(cmd, records)
}
