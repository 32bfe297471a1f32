// Contact show command prints one contact.
package main

import (
	"github.com/spf13/cobra"
)

var contactShowCmd = &cobra.Command{
	Use:               "show <name>",
	Short:             "Show a contact by name",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: contactNameCompletion,
	RunE:              runContactShow,
}

func runContactShow(cmd *cobra.Command, args []string) error {
	store, ab, _, err := openBooks()
	if err != nil {
		return err
	}
	defer store.Detach()

	record, err := ab.Find(args[0])
	if err != nil {
		return err
	}
	if flagJSON {
		return printJSON(cmd, record.String())
	}
	cmd.Println(record.String())
	return nil
}
