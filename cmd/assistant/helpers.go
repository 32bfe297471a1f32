// Shared helpers for assistant CLI commands: store wiring, logging setup,
// output formatting and completion feeds.
package main

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/bezvoshchuk/project-zakarpatski-zhaboiidy/internal/sqlite"
	"github.com/bezvoshchuk/project-zakarpatski-zhaboiidy/pkg/types"
)

// logFileName is created inside the data directory.
const logFileName = "assistant.log"

// attachStore resolves the data directory, sets up logging there, and
// attaches a SQLite store. The caller must defer store.Detach().
func attachStore() (*sqlite.Store, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}
	initLogger(dataDir)

	store := sqlite.NewStore()
	cfg := types.Config{
		Backend: types.BackendSQLite,
		DataDir: dataDir,
	}
	if err := store.Attach(cfg); err != nil {
		return nil, fmt.Errorf("attach store: %w", err)
	}
	logger.Debug("store attached", zap.String("data_dir", dataDir))
	return store, nil
}

// openBooks attaches the store and hydrates both books.
// The caller must defer store.Detach().
func openBooks() (*sqlite.Store, *types.AddressBook, *types.NotesBook, error) {
	store, err := attachStore()
	if err != nil {
		return nil, nil, nil, err
	}
	ab, nb, err := store.LoadBooks()
	if err != nil {
		store.Detach()
		return nil, nil, nil, fmt.Errorf("load books: %w", err)
	}
	logger.Debug("books loaded",
		zap.Int("contacts", ab.Len()),
		zap.Int("notes", nb.Len()))
	return store, ab, nb, nil
}

// persist saves both books back to the store.
func persist(store *sqlite.Store, ab *types.AddressBook, nb *types.NotesBook) error {
	if err := store.SaveBooks(ab, nb); err != nil {
		return fmt.Errorf("save books: %w", err)
	}
	logger.Debug("books saved",
		zap.Int("contacts", ab.Len()),
		zap.Int("notes", nb.Len()))
	return nil
}

// initLogger replaces the no-op logger with a file-backed one. Failure to
// build the logger is not fatal; the CLI keeps the no-op logger.
func initLogger(dataDir string) {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{filepath.Join(dataDir, logFileName)}
	cfg.ErrorOutputPaths = cfg.OutputPaths
	if built, err := cfg.Build(); err == nil {
		logger = built
	}
}

// printRecords prints records one per line, or as a JSON array with --json.
func printRecords(cmd *cobra.Command, records []*types.Record) error {
	if flagJSON {
		rendered := make([]string, 0, len(records))
		for _, r := range records {
			rendered = append(rendered, r.String())
		}
		return printJSON(cmd, rendered)
	}
	for _, r := range records {
		cmd.Println(r.String())
	}
	return nil
}

// printNotes prints notes one per line, or as a JSON array with --json.
func printNotes(cmd *cobra.Command, notes []*types.Note) error {
	if flagJSON {
		rendered := make([]string, 0, len(notes))
		for _, n := range notes {
			rendered = append(rendered, n.String())
		}
		return printJSON(cmd, rendered)
	}
	for _, n := range notes {
		cmd.Println(n.String())
	}
	return nil
}

func printJSON(cmd *cobra.Command, v any) error {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	cmd.Println(string(output))
	return nil
}

// contactNameCompletion suggests known contact names for the first argument.
func contactNameCompletion(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) != 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return completeNames(func(ab *types.AddressBook, nb *types.NotesBook) []string {
		return ab.Names()
	}, toComplete)
}

// noteNameCompletion suggests known note names for the first argument.
func noteNameCompletion(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) != 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return completeNames(func(ab *types.AddressBook, nb *types.NotesBook) []string {
		return nb.Names()
	}, toComplete)
}

// completeNames loads the books read-only and filters names by prefix.
func completeNames(pick func(*types.AddressBook, *types.NotesBook) []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	store, ab, nb, err := openBooks()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	defer store.Detach()

	var matches []string
	for _, name := range pick(ab, nb) {
		if strings.HasPrefix(name, toComplete) {
			matches = append(matches, name)
		}
	}
	return matches, cobra.ShellCompDirectiveNoFileComp
}
