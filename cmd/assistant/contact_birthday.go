// Birthday commands: set, show and remove a contact's birthday.
package main

import (
	"github.com/spf13/cobra"

	"github.com/bezvoshchuk/project-zakarpatski-zhaboiidy/pkg/types"
)

var contactSetBirthdayCmd = &cobra.Command{
	Use:   "set-birthday <name> <date>",
	Short: "Set a contact's birthday",
	Long: `Set-birthday stores a birthday in the YYYY.MM.DD pattern,
overwriting any previous value.

Example:
  assistant contact set-birthday alice 1990.03.05`,
	Args:              cobra.ExactArgs(2),
	ValidArgsFunction: contactNameCompletion,
	RunE:              runContactSetBirthday,
}

var contactShowBirthdayCmd = &cobra.Command{
	Use:               "show-birthday <name>",
	Short:             "Show a contact's birthday",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: contactNameCompletion,
	RunE:              runContactShowBirthday,
}

var contactRemoveBirthdayCmd = &cobra.Command{
	Use:               "remove-birthday <name>",
	Short:             "Remove a contact's birthday",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: contactNameCompletion,
	RunE:              runContactRemoveBirthday,
}

func runContactSetBirthday(cmd *cobra.Command, args []string) error {
	store, ab, nb, err := openBooks()
	if err != nil {
		return err
	}
	defer store.Detach()

	record, err := ab.Find(args[0])
	if err != nil {
		return err
	}
	if err := record.AddBirthday(args[1]); err != nil {
		return err
	}
	if err := persist(store, ab, nb); err != nil {
		return err
	}
	cmd.Printf("Contact %s updated with date: %s.\n", record.Name(), args[1])
	return nil
}

func runContactShowBirthday(cmd *cobra.Command, args []string) error {
	store, ab, _, err := openBooks()
	if err != nil {
		return err
	}
	defer store.Detach()

	record, err := ab.Find(args[0])
	if err != nil {
		return err
	}
	birthday, ok := record.Birthday()
	if !ok {
		cmd.Printf("Contact %s has no birthday set.\n", record.Name())
		return nil
	}
	cmd.Printf("%s's birthday is: %s\n", record.Name(), birthday.Format(types.DateLayout))
	return nil
}

func runContactRemoveBirthday(cmd *cobra.Command, args []string) error {
	store, ab, nb, err := openBooks()
	if err != nil {
		return err
	}
	defer store.Detach()

	record, err := ab.Find(args[0])
	if err != nil {
		return err
	}
	record.RemoveBirthday()
	if err := persist(store, ab, nb); err != nil {
		return err
	}
	cmd.Printf("Birthday removed from contact %s.\n", record.Name())
	return nil
}
