// Contact search command matches a query against contact renderings.
package main

import (
	"github.com/spf13/cobra"
)

var contactSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search contacts by substring",
	Long: `Search matches the query case-insensitively against each contact's
rendered fields: name, phones, birthday, email and address.

Example:
  assistant contact search uzhhorod`,
	Args: cobra.ExactArgs(1),
	RunE: runContactSearch,
}

func runContactSearch(cmd *cobra.Command, args []string) error {
	store, ab, _, err := openBooks()
	if err != nil {
		return err
	}
	defer store.Detach()

	matches := ab.Search(args[0])
	if len(matches) == 0 && !flagJSON {
		cmd.Println("No records found with provided query.")
		return nil
	}
	return printRecords(cmd, matches)
}
