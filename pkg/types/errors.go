package types

import (
	"errors"
	"fmt"
)

// Error kinds. Every specific error below wraps one of these two, so callers
// can branch on the kind with errors.Is while still matching the precise
// condition. The "already exists" outcome of AddressBook.Add and
// NotesBook.Add is deliberately not an error; it is reported through the
// comma-ok return value, and callers must check it.
var (
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("not found")
)

// Validation errors returned by the field validators and entity constructors.
var (
	ErrInvalidName    = fmt.Errorf("name must not be empty (%w)", ErrValidation)
	ErrInvalidPhone   = fmt.Errorf("phone must contain exactly 10 digits (%w)", ErrValidation)
	ErrInvalidEmail   = fmt.Errorf("malformed email address (%w)", ErrValidation)
	ErrInvalidDate    = fmt.Errorf("date must match YYYY.MM.DD (%w)", ErrValidation)
	ErrInvalidAddress = fmt.Errorf("address must not be empty (%w)", ErrValidation)
	ErrInvalidRole    = fmt.Errorf("project role must not be empty (%w)", ErrValidation)
	ErrPhoneRequired  = fmt.Errorf("a contact must keep at least one phone (%w)", ErrValidation)
)

// Lookup errors. Raise sites wrap these with the offending name or value so
// the CLI layer can build a user-facing message from the error alone.
var (
	ErrContactNotFound = fmt.Errorf("contact %w", ErrNotFound)
	ErrNoteNotFound    = fmt.Errorf("note %w", ErrNotFound)
	ErrPhoneNotFound   = fmt.Errorf("phone %w", ErrNotFound)
	ErrHobbyNotFound   = fmt.Errorf("hobby %w", ErrNotFound)
)
