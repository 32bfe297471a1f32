package types

import (
	"fmt"
	"slices"
	"strings"
	"time"
)

// Record is one contact: an immutable name, at least one phone, and optional
// birthday, email and address fields. All fields are unexported; mutation
// goes through methods so field validation cannot be bypassed.
type Record struct {
	name     string
	phones   []string
	birthday *time.Time
	email    string
	address  string
}

// NewRecord creates a contact with the given name and initial phone.
// The name must be non-empty and the phone must pass ValidatePhone.
func NewRecord(name, phone string) (*Record, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidName
	}
	normalized, err := ValidatePhone(phone)
	if err != nil {
		return nil, err
	}
	return &Record{name: name, phones: []string{normalized}}, nil
}

// Name returns the contact name. It never changes after creation.
func (r *Record) Name() string { return r.name }

// Phones returns a copy of the phone list in stored order.
func (r *Record) Phones() []string { return slices.Clone(r.phones) }

// Birthday returns the birthday and whether one is set.
func (r *Record) Birthday() (time.Time, bool) {
	if r.birthday == nil {
		return time.Time{}, false
	}
	return *r.birthday, true
}

// Email returns the email, empty if unset.
func (r *Record) Email() string { return r.email }

// Address returns the address, empty if unset.
func (r *Record) Address() string { return r.address }

// AddPhone validates and appends another phone. Duplicate values within the
// same record are allowed.
func (r *Record) AddPhone(phone string) error {
	normalized, err := ValidatePhone(phone)
	if err != nil {
		return err
	}
	r.phones = append(r.phones, normalized)
	return nil
}

// EditPhone replaces the first occurrence of oldPhone with newPhone,
// preserving its position. Returns ErrPhoneNotFound if oldPhone is not among
// the record's phones, and a validation error if newPhone is malformed.
// Not idempotent: after a successful edit the old value is gone, so
// repeating the call fails.
func (r *Record) EditPhone(oldPhone, newPhone string) error {
	i := slices.Index(r.phones, oldPhone)
	if i < 0 {
		return fmt.Errorf("%q: %w", oldPhone, ErrPhoneNotFound)
	}
	normalized, err := ValidatePhone(newPhone)
	if err != nil {
		return err
	}
	r.phones[i] = normalized
	return nil
}

// RemovePhone removes the first occurrence of phone. Returns
// ErrPhoneNotFound if the value is absent, and ErrPhoneRequired when it is
// the record's only phone: a contact always keeps at least the phone it was
// created with, so persisted records can be rebuilt through NewRecord.
func (r *Record) RemovePhone(phone string) error {
	i := slices.Index(r.phones, phone)
	if i < 0 {
		return fmt.Errorf("%q: %w", phone, ErrPhoneNotFound)
	}
	if len(r.phones) == 1 {
		return fmt.Errorf("%q: %w", phone, ErrPhoneRequired)
	}
	r.phones = slices.Delete(r.phones, i, i+1)
	return nil
}

// AddBirthday parses dateStr as YYYY.MM.DD and sets the birthday,
// overwriting any previous value.
func (r *Record) AddBirthday(dateStr string) error {
	d, err := ParseDate(dateStr)
	if err != nil {
		return err
	}
	r.birthday = &d
	return nil
}

// UpdateBirthday is an alias for AddBirthday.
func (r *Record) UpdateBirthday(dateStr string) error { return r.AddBirthday(dateStr) }

// RemoveBirthday clears the birthday. Idempotent.
func (r *Record) RemoveBirthday() { r.birthday = nil }

// AddEmail validates and sets the email, overwriting any previous value.
func (r *Record) AddEmail(email string) error {
	validated, err := ValidateEmail(email)
	if err != nil {
		return err
	}
	r.email = validated
	return nil
}

// UpdateEmail is an alias for AddEmail.
func (r *Record) UpdateEmail(email string) error { return r.AddEmail(email) }

// RemoveEmail clears the email. Idempotent.
func (r *Record) RemoveEmail() { r.email = "" }

// AddAddress sets the address. Free text, but must be non-empty.
func (r *Record) AddAddress(address string) error {
	address = strings.TrimSpace(address)
	if address == "" {
		return ErrInvalidAddress
	}
	r.address = address
	return nil
}

// UpdateAddress is an alias for AddAddress.
func (r *Record) UpdateAddress(address string) error { return r.AddAddress(address) }

// RemoveAddress clears the address. Idempotent.
func (r *Record) RemoveAddress() { r.address = "" }

// String renders the contact for display and search. The format is a stable
// contract: name and phones always, then birthday (as YYYY.MM.DD), email and
// address when set.
func (r *Record) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Contact name: %s, phones: %s", r.name, strings.Join(r.phones, "; "))
	if r.birthday != nil {
		fmt.Fprintf(&b, ", birthday: %s", r.birthday.Format(DateLayout))
	}
	if r.email != "" {
		fmt.Fprintf(&b, ", email: %s", r.email)
	}
	if r.address != "" {
		fmt.Fprintf(&b, ", address: %s", r.address)
	}
	return b.String()
}
