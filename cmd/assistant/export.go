// Export and import commands move book contents between the SQLite store
// and JSONL files.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export [dir]",
	Short: "Export books as JSONL files",
	Long: `Export writes contacts.jsonl and notes.jsonl into the given
directory, one JSON object per line. With no argument it writes into the
data directory.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExport,
}

var importCmd = &cobra.Command{
	Use:   "import [dir]",
	Short: "Import books from JSONL files",
	Long: `Import reads contacts.jsonl and notes.jsonl from the given
directory and replaces the store contents with them. Missing files are
treated as empty books; malformed lines are skipped.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runImport,
}

func runExport(cmd *cobra.Command, args []string) error {
	store, err := attachStore()
	if err != nil {
		return err
	}
	defer store.Detach()

	dir := store.DataDir()
	if len(args) == 1 {
		dir = args[0]
	}
	if err := store.ExportJSONL(dir); err != nil {
		return fmt.Errorf("export books: %w", err)
	}
	cmd.Printf("Books exported to %s.\n", dir)
	return nil
}

func runImport(cmd *cobra.Command, args []string) error {
	store, err := attachStore()
	if err != nil {
		return err
	}
	defer store.Detach()

	dir := store.DataDir()
	if len(args) == 1 {
		dir = args[0]
	}
	if err := store.ImportJSONL(dir); err != nil {
		return fmt.Errorf("import books: %w", err)
	}
	cmd.Printf("Books imported from %s.\n", dir)
	return nil
}
