package types

import "errors"

// Config holds backend selection and parameters for Storage.Attach.
type Config struct {
	Backend string `json:"backend" yaml:"backend"`
	DataDir string `json:"data_dir" yaml:"data_dir"`
}

// Supported backend names.
const (
	BackendSQLite = "sqlite"
)

// Config validation errors.
var (
	ErrBackendEmpty   = errors.New("backend must not be empty")
	ErrBackendUnknown = errors.New("unknown backend")
)

// knownBackends lists the backends that Validate accepts.
var knownBackends = map[string]bool{
	BackendSQLite: true,
}

// Validate checks that the Config is well-formed.
func (c Config) Validate() error {
	if c.Backend == "" {
		return ErrBackendEmpty
	}
	if !knownBackends[c.Backend] {
		return ErrBackendUnknown
	}
	return nil
}

// Storage is the persistence collaborator. At startup it supplies an
// AddressBook and a NotesBook (hydrated from prior state or empty); at clean
// shutdown it durably captures their final contents. The books themselves
// never serialize; Storage owns the format.
type Storage interface {
	// Attach connects to the backend described by config, creating the
	// DataDir if needed. Returns ErrAlreadyAttached on a second call.
	Attach(config Config) error

	// Detach releases backend resources. Idempotent. After Detach,
	// operations return ErrStoreDetached.
	Detach() error

	// LoadBooks hydrates both books from stored state, empty on first run.
	LoadBooks() (*AddressBook, *NotesBook, error)

	// SaveBooks replaces stored state with the books' current contents.
	SaveBooks(ab *AddressBook, nb *NotesBook) error

	// ExportJSONL writes both books as JSONL files into dir.
	ExportJSONL(dir string) error

	// ImportJSONL reads JSONL files from dir and replaces stored state.
	ImportJSONL(dir string) error
}

// Storage lifecycle errors.
var (
	ErrStoreDetached   = errors.New("store is detached")
	ErrAlreadyAttached = errors.New("store is already attached")
)
