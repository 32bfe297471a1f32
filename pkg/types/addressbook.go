package types

import (
	"fmt"
	"slices"
	"strings"
	"time"
)

// AddressBook is a name-keyed collection of contacts. Names are unique;
// insertion order is preserved for deterministic listing output.
type AddressBook struct {
	records map[string]*Record
	order   []string
	now     func() time.Time
}

// NewAddressBook creates an empty address book.
func NewAddressBook() *AddressBook {
	return &AddressBook{
		records: make(map[string]*Record),
		now:     time.Now,
	}
}

// Add inserts a record and returns it with ok true. When a record with the
// same name already exists, it returns (nil, false) and the book is left
// unchanged. The false return is the expected "already exists" outcome, not
// an error; callers must check it.
func (ab *AddressBook) Add(record *Record) (*Record, bool) {
	if _, exists := ab.records[record.Name()]; exists {
		return nil, false
	}
	ab.records[record.Name()] = record
	ab.order = append(ab.order, record.Name())
	return record, true
}

// Find returns the record stored under name.
// Returns ErrContactNotFound wrapped with the name if absent.
func (ab *AddressBook) Find(name string) (*Record, error) {
	record, ok := ab.records[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrContactNotFound)
	}
	return record, nil
}

// Delete removes the record stored under name.
// Returns ErrContactNotFound wrapped with the name if absent.
func (ab *AddressBook) Delete(name string) error {
	if _, ok := ab.records[name]; !ok {
		return fmt.Errorf("%q: %w", name, ErrContactNotFound)
	}
	delete(ab.records, name)
	if i := slices.Index(ab.order, name); i >= 0 {
		ab.order = slices.Delete(ab.order, i, i+1)
	}
	return nil
}

// Search returns every record whose rendering contains query,
// case-insensitively, in insertion order. An empty result is an empty
// slice, never an error.
func (ab *AddressBook) Search(query string) []*Record {
	query = strings.ToLower(query)
	matches := []*Record{}
	for _, name := range ab.order {
		record := ab.records[name]
		if strings.Contains(strings.ToLower(record.String()), query) {
			matches = append(matches, record)
		}
	}
	return matches
}

// Names returns all contact names in insertion order. Side-effect-free;
// the CLI completion layer calls this between commands.
func (ab *AddressBook) Names() []string {
	return slices.Clone(ab.order)
}

// Records returns all records in insertion order.
func (ab *AddressBook) Records() []*Record {
	records := make([]*Record, 0, len(ab.order))
	for _, name := range ab.order {
		records = append(records, ab.records[name])
	}
	return records
}

// Len returns the number of stored records.
func (ab *AddressBook) Len() int { return len(ab.order) }

// BirthdayGroup is one congratulation date and the contacts celebrated on it,
// in insertion order.
type BirthdayGroup struct {
	Date    time.Time
	Records []*Record
}

// UpcomingBirthdays buckets contacts whose birthday occurs within the
// inclusive window [today, today+days]. An occurrence falling on Saturday or
// Sunday is congratulated on the following Monday; the groups are keyed by
// that congratulation date and ordered ascending. A negative days value
// yields no matches.
func (ab *AddressBook) UpcomingBirthdays(days int) []BirthdayGroup {
	return ab.upcomingBirthdays(ab.now(), days)
}

func (ab *AddressBook) upcomingBirthdays(today time.Time, days int) []BirthdayGroup {
	if days < 0 {
		return nil
	}
	today = time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	limit := today.AddDate(0, 0, days)

	byDate := make(map[time.Time][]*Record)
	var dates []time.Time
	for _, name := range ab.order {
		record := ab.records[name]
		birthday, ok := record.Birthday()
		if !ok {
			continue
		}
		occurrence := time.Date(today.Year(), birthday.Month(), birthday.Day(), 0, 0, 0, 0, time.UTC)
		if occurrence.Before(today) {
			occurrence = time.Date(today.Year()+1, birthday.Month(), birthday.Day(), 0, 0, 0, 0, time.UTC)
		}
		if occurrence.After(limit) {
			continue
		}
		congratulation := shiftFromWeekend(occurrence)
		if _, seen := byDate[congratulation]; !seen {
			dates = append(dates, congratulation)
		}
		byDate[congratulation] = append(byDate[congratulation], record)
	}

	slices.SortFunc(dates, func(a, b time.Time) int { return a.Compare(b) })
	groups := make([]BirthdayGroup, 0, len(dates))
	for _, date := range dates {
		groups = append(groups, BirthdayGroup{Date: date, Records: byDate[date]})
	}
	return groups
}

// shiftFromWeekend moves Saturday and Sunday dates to the following Monday.
func shiftFromWeekend(d time.Time) time.Time {
	switch d.Weekday() {
	case time.Saturday:
		return d.AddDate(0, 0, 2)
	case time.Sunday:
		return d.AddDate(0, 0, 1)
	}
	return d
}
