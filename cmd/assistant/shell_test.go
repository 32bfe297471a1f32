package main

import (
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bezvoshchuk/project-zakarpatski-zhaboiidy/internal/sqlite"
	"github.com/bezvoshchuk/project-zakarpatski-zhaboiidy/pkg/types"
)

func newTestSession() *shellSession {
	return newShellSession(types.NewAddressBook(), types.NewNotesBook())
}

func TestParseShellInput(t *testing.T) {
	t.Run("splits command and args", func(t *testing.T) {
		name, args := parseShellInput("add alice 1234567890")
		assert.Equal(t, "add", name)
		assert.Equal(t, []string{"alice", "1234567890"}, args)
	})

	t.Run("lowercases the command", func(t *testing.T) {
		name, args := parseShellInput("  HELLO  ")
		assert.Equal(t, "hello", name)
		assert.Empty(t, args)
	})

	t.Run("empty line", func(t *testing.T) {
		name, _ := parseShellInput("   ")
		assert.Equal(t, "", name)
	})
}

func TestShellSessionDispatch(t *testing.T) {
	t.Run("add creates a contact", func(t *testing.T) {
		s := newTestSession()
		output, err := s.execute("add", []string{"alice", "1234567890"})
		require.NoError(t, err)
		assert.Equal(t, "Contact alice created with phone: 1234567890.", output)
		assert.Equal(t, 1, s.ab.Len())
	})

	t.Run("duplicate add reports existing user", func(t *testing.T) {
		s := newTestSession()
		_, err := s.execute("add", []string{"alice", "1234567890"})
		require.NoError(t, err)

		_, err = s.execute("add", []string{"alice", "0987654321"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "already exist")
		assert.Equal(t, 1, s.ab.Len())
	})

	t.Run("change edits the primary phone", func(t *testing.T) {
		s := newTestSession()
		_, err := s.execute("add", []string{"alice", "1234567890"})
		require.NoError(t, err)

		output, err := s.execute("change", []string{"alice", "0987654321"})
		require.NoError(t, err)
		assert.Equal(t, "Contact alice updated with phone: 0987654321.", output)
	})

	t.Run("wrong argument count", func(t *testing.T) {
		s := newTestSession()
		_, err := s.execute("add", []string{"alice"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "command expects an input of two arguments")
	})

	t.Run("unsupported command", func(t *testing.T) {
		s := newTestSession()
		_, err := s.execute("bogus", nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "command 'bogus' is not supported!")
	})

	t.Run("close and exit stop the session", func(t *testing.T) {
		s := newTestSession()
		for _, name := range []string{"close", "exit"} {
			_, err := s.execute(name, nil)
			var stop errShellStop
			require.ErrorAs(t, err, &stop)
			assert.Equal(t, "Good bye!", stop.message)
		}
	})

	t.Run("note commands share the session", func(t *testing.T) {
		s := newTestSession()
		_, err := s.execute("add-note", []string{"helen", "backend"})
		require.NoError(t, err)
		_, err = s.execute("add-hobby", []string{"helen", "mountain", "biking"})
		require.NoError(t, err)

		output, err := s.execute("find-hobby", []string{"mountain", "biking"})
		require.NoError(t, err)
		assert.Contains(t, output, "helen")
	})

	t.Run("help lists commands", func(t *testing.T) {
		s := newTestSession()
		output, err := s.execute("help", nil)
		require.NoError(t, err)
		for _, name := range []string{"add", "birthdays", "find-role", "exit"} {
			assert.Contains(t, output, name)
		}
	})
}

// shellCommand builds a throwaway command wired to runShell with the given
// stdin script, routing the data dir to an isolated temp directory.
func shellCommand(t *testing.T, input string) (*cobra.Command, *strings.Builder, string) {
	t.Helper()
	dataDir := t.TempDir()
	t.Setenv("ASSISTANT_DATA_DIR", dataDir)

	var out strings.Builder
	cmd := &cobra.Command{RunE: runShell}
	cmd.SetIn(strings.NewReader(input))
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	return cmd, &out, dataDir
}

func loadSavedBooks(t *testing.T, dataDir string) (*types.AddressBook, *types.NotesBook) {
	t.Helper()
	store := sqlite.NewStore()
	cfg := types.Config{Backend: types.BackendSQLite, DataDir: dataDir}
	require.NoError(t, store.Attach(cfg))
	t.Cleanup(func() { _ = store.Detach() })
	ab, nb, err := store.LoadBooks()
	require.NoError(t, err)
	return ab, nb
}

func TestRunShellLoop(t *testing.T) {
	t.Run("failed commands keep the loop alive", func(t *testing.T) {
		cmd, out, _ := shellCommand(t,
			"add alice 1234567890\nadd alice 0987654321\nbogus\nexit\n")
		require.NoError(t, runShell(cmd, nil))

		output := out.String()
		assert.Contains(t, output, "Command 'add' executed successfully. Result is:\nContact alice created with phone: 1234567890.")
		assert.Contains(t, output, "Command 'add' failed: ")
		assert.Contains(t, output, "Command 'bogus' failed: command 'bogus' is not supported!")
		assert.Contains(t, output, "Good bye!")
	})

	t.Run("exit persists the books", func(t *testing.T) {
		cmd, _, dataDir := shellCommand(t,
			"add alice 1234567890\nadd-note helen backend\nexit\n")
		require.NoError(t, runShell(cmd, nil))

		ab, nb := loadSavedBooks(t, dataDir)
		assert.Equal(t, []string{"alice"}, ab.Names())
		assert.Equal(t, []string{"helen"}, nb.Names())
	})

	t.Run("end of input persists the books", func(t *testing.T) {
		cmd, _, dataDir := shellCommand(t, "add alice 1234567890\n")
		require.NoError(t, runShell(cmd, nil))

		ab, _ := loadSavedBooks(t, dataDir)
		assert.Equal(t, []string{"alice"}, ab.Names())
	})
}
