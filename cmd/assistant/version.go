package main

import (
	"github.com/spf13/cobra"
)

// version is the assistant release version.
const version = "0.1.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Println("assistant v" + version)
	},
}
