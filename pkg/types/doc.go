// Package types defines the assistant's record-keeping core: the Record and
// Note entities, the AddressBook and NotesBook collections that own them,
// the field validators, and the sentinel error types shared with callers.
// The package is pure in-memory computation; it performs no I/O and no
// logging, and it is not safe for concurrent use.
package types
