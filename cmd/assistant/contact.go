// Parent command grouping the contact verbs.
package main

import (
	"github.com/spf13/cobra"
)

var contactCmd = &cobra.Command{
	Use:   "contact",
	Short: "Manage contacts in the address book",
}

func init() {
	contactCmd.AddCommand(contactAddCmd)
	contactCmd.AddCommand(contactChangeCmd)
	contactCmd.AddCommand(contactShowCmd)
	contactCmd.AddCommand(contactListCmd)
	contactCmd.AddCommand(contactSearchCmd)
	contactCmd.AddCommand(contactDeleteCmd)
	contactCmd.AddCommand(contactEditPhoneCmd)
	contactCmd.AddCommand(contactRemovePhoneCmd)
	contactCmd.AddCommand(contactSetBirthdayCmd)
	contactCmd.AddCommand(contactShowBirthdayCmd)
	contactCmd.AddCommand(contactRemoveBirthdayCmd)
	contactCmd.AddCommand(contactSetEmailCmd)
	contactCmd.AddCommand(contactRemoveEmailCmd)
	contactCmd.AddCommand(contactSetAddressCmd)
	contactCmd.AddCommand(contactRemoveAddressCmd)
}
