package sqlite

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bezvoshchuk/project-zakarpatski-zhaboiidy/pkg/types"
)

func testConfig(t *testing.T) types.Config {
	t.Helper()
	return types.Config{
		Backend: types.BackendSQLite,
		DataDir: t.TempDir(),
	}
}

func attachedStore(t *testing.T, cfg types.Config) *Store {
	t.Helper()
	store := NewStore()
	require.NoError(t, store.Attach(cfg))
	t.Cleanup(func() { _ = store.Detach() })
	return store
}

func TestStoreAttach(t *testing.T) {
	t.Run("creates data dir and database file", func(t *testing.T) {
		cfg := types.Config{
			Backend: types.BackendSQLite,
			DataDir: filepath.Join(t.TempDir(), "nested", "data"),
		}
		store := attachedStore(t, cfg)
		assert.Equal(t, cfg.DataDir, store.DataDir())

		_, err := os.Stat(filepath.Join(cfg.DataDir, dbFileName))
		assert.NoError(t, err)
	})

	t.Run("double attach rejected", func(t *testing.T) {
		cfg := testConfig(t)
		store := attachedStore(t, cfg)
		assert.ErrorIs(t, store.Attach(cfg), types.ErrAlreadyAttached)
	})

	t.Run("invalid config rejected", func(t *testing.T) {
		store := NewStore()
		assert.ErrorIs(t, store.Attach(types.Config{}), types.ErrBackendEmpty)
		assert.ErrorIs(t, store.Attach(types.Config{Backend: "postgres"}), types.ErrBackendUnknown)
	})
}

func TestStoreDetach(t *testing.T) {
	cfg := testConfig(t)
	store := attachedStore(t, cfg)

	require.NoError(t, store.Detach())
	require.NoError(t, store.Detach()) // idempotent

	_, _, err := store.LoadBooks()
	assert.ErrorIs(t, err, types.ErrStoreDetached)
	assert.ErrorIs(t, store.SaveBooks(types.NewAddressBook(), types.NewNotesBook()), types.ErrStoreDetached)
	assert.ErrorIs(t, store.ExportJSONL(t.TempDir()), types.ErrStoreDetached)
	assert.ErrorIs(t, store.ImportJSONL(t.TempDir()), types.ErrStoreDetached)
}

func TestStoreLoadBooksFirstRun(t *testing.T) {
	store := attachedStore(t, testConfig(t))

	ab, nb, err := store.LoadBooks()
	require.NoError(t, err)
	assert.Equal(t, 0, ab.Len())
	assert.Equal(t, 0, nb.Len())
}

func seedBooks(t *testing.T) (*types.AddressBook, *types.NotesBook) {
	t.Helper()
	ab := types.NewAddressBook()

	alice, err := types.NewRecord("alice", "1234567890")
	require.NoError(t, err)
	require.NoError(t, alice.AddPhone("0987654321"))
	require.NoError(t, alice.AddBirthday("1990.03.05"))
	require.NoError(t, alice.AddEmail("alice@example.com"))
	require.NoError(t, alice.AddAddress("Shevchenka 12, Uzhhorod"))
	ab.Add(alice)

	bob, err := types.NewRecord("bob", "5555555555")
	require.NoError(t, err)
	ab.Add(bob)

	nb := types.NewNotesBook()
	proj, err := types.NewNote("proj1", "backend")
	require.NoError(t, err)
	proj.AddProjectTasks("write parser")
	proj.AddProjectTasks("add tests")
	proj.AddHobby("chess")
	proj.AddHobby("long distance running")
	nb.Add(proj)

	return ab, nb
}

func TestStoreSaveLoadRoundTrip(t *testing.T) {
	cfg := testConfig(t)
	store := attachedStore(t, cfg)

	ab, nb := seedBooks(t)
	require.NoError(t, store.SaveBooks(ab, nb))

	loadedAB, loadedNB, err := store.LoadBooks()
	require.NoError(t, err)

	assert.Equal(t, []string{"alice", "bob"}, loadedAB.Names())

	alice, err := loadedAB.Find("alice")
	require.NoError(t, err)
	assert.Equal(t, []string{"1234567890", "0987654321"}, alice.Phones())
	bd, ok := alice.Birthday()
	require.True(t, ok)
	assert.Equal(t, "1990.03.05", bd.Format(types.DateLayout))
	assert.Equal(t, "alice@example.com", alice.Email())
	assert.Equal(t, "Shevchenka 12, Uzhhorod", alice.Address())

	bob, err := loadedAB.Find("bob")
	require.NoError(t, err)
	assert.Equal(t, []string{"5555555555"}, bob.Phones())
	_, ok = bob.Birthday()
	assert.False(t, ok)
	assert.Empty(t, bob.Email())

	proj, err := loadedNB.Find("proj1")
	require.NoError(t, err)
	assert.Equal(t, "backend", proj.ProjectRole())
	assert.Equal(t, "write parser add tests", proj.ProjectTasks())
	assert.Equal(t, []string{"chess", "long distance running"}, proj.Hobbies())
}

func TestStoreSaveReplacesPriorState(t *testing.T) {
	store := attachedStore(t, testConfig(t))

	ab, nb := seedBooks(t)
	require.NoError(t, store.SaveBooks(ab, nb))

	require.NoError(t, ab.Delete("alice"))
	require.NoError(t, store.SaveBooks(ab, nb))

	loadedAB, _, err := store.LoadBooks()
	require.NoError(t, err)
	assert.Equal(t, []string{"bob"}, loadedAB.Names())
	_, err = loadedAB.Find("alice")
	assert.ErrorIs(t, err, types.ErrContactNotFound)
}

func TestStorePersistsAcrossReattach(t *testing.T) {
	cfg := testConfig(t)
	store := attachedStore(t, cfg)

	ab, nb := seedBooks(t)
	require.NoError(t, store.SaveBooks(ab, nb))
	require.NoError(t, store.Detach())

	reopened := attachedStore(t, cfg)
	loadedAB, loadedNB, err := reopened.LoadBooks()
	require.NoError(t, err)
	assert.Equal(t, []string{"alice", "bob"}, loadedAB.Names())
	assert.Equal(t, []string{"proj1"}, loadedNB.Names())
}

func TestStoreReloadsAfterPhoneRemovalAttempts(t *testing.T) {
	store := attachedStore(t, testConfig(t))

	ab := types.NewAddressBook()
	alice, err := types.NewRecord("alice", "1234567890")
	require.NoError(t, err)
	_, ok := ab.Add(alice)
	require.True(t, ok)

	// A one-phone contact keeps its phone; the book stays loadable.
	assert.ErrorIs(t, alice.RemovePhone("1234567890"), types.ErrPhoneRequired)
	require.NoError(t, store.SaveBooks(ab, types.NewNotesBook()))

	loadedAB, _, err := store.LoadBooks()
	require.NoError(t, err)
	loaded, err := loadedAB.Find("alice")
	require.NoError(t, err)
	assert.Equal(t, []string{"1234567890"}, loaded.Phones())

	// Removing a spare phone round-trips normally.
	require.NoError(t, loaded.AddPhone("0987654321"))
	require.NoError(t, loaded.RemovePhone("1234567890"))
	require.NoError(t, store.SaveBooks(loadedAB, types.NewNotesBook()))

	loadedAB, _, err = store.LoadBooks()
	require.NoError(t, err)
	loaded, err = loadedAB.Find("alice")
	require.NoError(t, err)
	assert.Equal(t, []string{"0987654321"}, loaded.Phones())
}

func TestStoreRecordsSnapshots(t *testing.T) {
	store := attachedStore(t, testConfig(t))

	ab, nb := seedBooks(t)
	require.NoError(t, store.SaveBooks(ab, nb))
	require.NoError(t, store.SaveBooks(ab, nb))

	var count int
	require.NoError(t, store.db.QueryRow("SELECT COUNT(*) FROM snapshots").Scan(&count))
	assert.Equal(t, 2, count)
}
