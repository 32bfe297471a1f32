// Phone editing commands: replace or remove a specific phone value.
package main

import (
	"github.com/spf13/cobra"
)

var contactEditPhoneCmd = &cobra.Command{
	Use:   "edit-phone <name> <old-phone> <new-phone>",
	Short: "Replace one phone value on a contact",
	Long: `Edit-phone replaces a specific stored phone, keeping its position.

Example:
  assistant contact edit-phone alice 1234567890 0987654321`,
	Args:              cobra.ExactArgs(3),
	ValidArgsFunction: contactNameCompletion,
	RunE:              runContactEditPhone,
}

var contactRemovePhoneCmd = &cobra.Command{
	Use:               "remove-phone <name> <phone>",
	Short:             "Remove one phone value from a contact",
	Args:              cobra.ExactArgs(2),
	ValidArgsFunction: contactNameCompletion,
	RunE:              runContactRemovePhone,
}

func runContactEditPhone(cmd *cobra.Command, args []string) error {
	store, ab, nb, err := openBooks()
	if err != nil {
		return err
	}
	defer store.Detach()

	record, err := ab.Find(args[0])
	if err != nil {
		return err
	}
	if err := record.EditPhone(args[1], args[2]); err != nil {
		return err
	}
	if err := persist(store, ab, nb); err != nil {
		return err
	}
	cmd.Printf("Contact %s updated with phone: %s.\n", record.Name(), args[2])
	return nil
}

func runContactRemovePhone(cmd *cobra.Command, args []string) error {
	store, ab, nb, err := openBooks()
	if err != nil {
		return err
	}
	defer store.Detach()

	record, err := ab.Find(args[0])
	if err != nil {
		return err
	}
	if err := record.RemovePhone(args[1]); err != nil {
		return err
	}
	if err := persist(store, ab, nb); err != nil {
		return err
	}
	cmd.Printf("Phone %s removed from contact %s.\n", args[1], record.Name())
	return nil
}
