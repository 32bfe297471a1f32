// Birthdays command buckets contacts by upcoming congratulation date.
package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/bezvoshchuk/project-zakarpatski-zhaboiidy/pkg/types"
)

var birthdaysCmd = &cobra.Command{
	Use:   "birthdays <days>",
	Short: "Show contacts with birthdays in the coming days",
	Long: `Birthdays lists contacts whose birthday falls within the given
number of days from today, grouped by congratulation date. Birthdays on a
Saturday or Sunday are congratulated on the following Monday.

Example:
  assistant birthdays 7`,
	Args: cobra.ExactArgs(1),
	RunE: runBirthdays,
}

func runBirthdays(cmd *cobra.Command, args []string) error {
	days, err := strconv.Atoi(args[0])
	if err != nil || days < 0 {
		return fmt.Errorf("expects a non-negative integer number of days, got %q", args[0])
	}

	store, ab, _, err := openBooks()
	if err != nil {
		return err
	}
	defer store.Detach()

	groups := ab.UpcomingBirthdays(days)
	if len(groups) == 0 {
		cmd.Println("No contacts found")
		return nil
	}

	if flagJSON {
		out := make(map[string][]string, len(groups))
		for _, group := range groups {
			rendered := make([]string, 0, len(group.Records))
			for _, record := range group.Records {
				rendered = append(rendered, record.String())
			}
			out[group.Date.Format(types.DateLayout)] = rendered
		}
		return printJSON(cmd, out)
	}

	cmd.Println("Contacts per day:")
	for _, group := range groups {
		cmd.Printf("Have birthday on %s:\n", group.Date.Format(types.DateLayout))
		for _, record := range group.Records {
			cmd.Printf(" | %s\n", record.String())
		}
	}
	return nil
}
