// Email commands: set and remove a contact's email.
package main

import (
	"github.com/spf13/cobra"
)

var contactSetEmailCmd = &cobra.Command{
	Use:   "set-email <name> <email>",
	Short: "Set a contact's email",
	Long: `Set-email stores a validated email address, overwriting any
previous value.

Example:
  assistant contact set-email alice alice@example.com`,
	Args:              cobra.ExactArgs(2),
	ValidArgsFunction: contactNameCompletion,
	RunE:              runContactSetEmail,
}

var contactRemoveEmailCmd = &cobra.Command{
	Use:               "remove-email <name>",
	Short:             "Remove a contact's email",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: contactNameCompletion,
	RunE:              runContactRemoveEmail,
}

func runContactSetEmail(cmd *cobra.Command, args []string) error {
	store, ab, nb, err := openBooks()
	if err != nil {
		return err
	}
	defer store.Detach()

	record, err := ab.Find(args[0])
	if err != nil {
		return err
	}
	if err := record.AddEmail(args[1]); err != nil {
		return err
	}
	if err := persist(store, ab, nb); err != nil {
		return err
	}
	cmd.Printf("Contact %s updated with email: %s.\n", record.Name(), args[1])
	return nil
}

func runContactRemoveEmail(cmd *cobra.Command, args []string) error {
	store, ab, nb, err := openBooks()
	if err != nil {
		return err
	}
	defer store.Detach()

	record, err := ab.Find(args[0])
	if err != nil {
		return err
	}
	record.RemoveEmail()
	if err := persist(store, ab, nb); err != nil {
		return err
	}
	cmd.Printf("Email removed from contact %s.\n", record.Name())
	return nil
}
