// Address commands: set and remove a contact's address.
package main

import (
	"strings"

	"github.com/spf13/cobra"
)

var contactSetAddressCmd = &cobra.Command{
	Use:   "set-address <name> <address>...",
	Short: "Set a contact's address",
	Long: `Set-address stores a free-text address, overwriting any previous
value. Everything after the name is joined into the address.

Example:
  assistant contact set-address alice Shevchenka 12, Uzhhorod`,
	Args:              cobra.MinimumNArgs(2),
	ValidArgsFunction: contactNameCompletion,
	RunE:              runContactSetAddress,
}

var contactRemoveAddressCmd = &cobra.Command{
	Use:               "remove-address <name>",
	Short:             "Remove a contact's address",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: contactNameCompletion,
	RunE:              runContactRemoveAddress,
}

func runContactSetAddress(cmd *cobra.Command, args []string) error {
	store, ab, nb, err := openBooks()
	if err != nil {
		return err
	}
	defer store.Detach()

	record, err := ab.Find(args[0])
	if err != nil {
		return err
	}
	address := strings.Join(args[1:], " ")
	if err := record.AddAddress(address); err != nil {
		return err
	}
	if err := persist(store, ab, nb); err != nil {
		return err
	}
	cmd.Printf("Contact %s updated with address: %s.\n", record.Name(), address)
	return nil
}

func runContactRemoveAddress(cmd *cobra.Command, args []string) error {
	store, ab, nb, err := openBooks()
	if err != nil {
		return err
	}
	defer store.Detach()

	record, err := ab.Find(args[0])
	if err != nil {
		return err
	}
	record.RemoveAddress()
	if err := persist(store, ab, nb); err != nil {
		return err
	}
	cmd.Printf("Address removed from contact %s.\n", record.Name())
	return nil
}
